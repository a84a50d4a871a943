// Package configcmd implements the `dsctl config` subcommands for viewing
// and editing config.json.
package configcmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/docserve/dsctl/pkg/config"
	"github.com/docserve/dsctl/pkg/deploy"
)

var Cmd = &cobra.Command{
	Use:   "config",
	Short: "View and edit the dsctl configuration file",
}

var (
	filePath   string
	showSecret bool
)

func init() {
	// show resolves config the same way deploy does (honoring --config); the
	// --file flag belongs only to the subcommands that edit the file directly.
	for _, sub := range []*cobra.Command{setCmd, validateCmd, resetCmd} {
		sub.Flags().StringVar(&filePath, "file", config.DefaultFileName, "Config file to operate on")
	}

	showCmd.Flags().BoolVar(&showSecret, "show-secret", false, "Print the JWT secret in plaintext")

	Cmd.AddCommand(showCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(validateCmd)
	Cmd.AddCommand(resetCmd)
	Cmd.SetOut(os.Stdout)
	Cmd.SetErr(os.Stderr)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Long: `Show prints the configuration as the deploy command would resolve it:
file values where present, built-in defaults elsewhere, with environment
variables and flags applied on top.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load[config.Full]()
		if err != nil {
			return err
		}

		secret := deploy.RedactSecret(cfg.OnlyOffice.Secret)
		if showSecret {
			secret = cfg.OnlyOffice.Secret
		}

		cmd.Println("📋 Resolved configuration")
		cmd.Println()
		cmd.Println("Document server:")
		cmd.Printf("  JWT enabled:           %s\n", strconv.FormatBool(cfg.OnlyOffice.JWTEnabled))
		cmd.Printf("  JWT secret:            %s\n", secret)
		cmd.Printf("  Allow private IPs:     %s\n", strconv.FormatBool(cfg.OnlyOffice.AllowPrivateIP))
		cmd.Printf("  Allow metadata IPs:    %s\n", strconv.FormatBool(cfg.OnlyOffice.AllowMetaIP))
		cmd.Printf("  Unauthorized storage:  %s\n", strconv.FormatBool(cfg.OnlyOffice.UseUnauthorizedStorage))
		cmd.Println()
		cmd.Println("Container:")
		cmd.Printf("  Name:                  %s\n", cfg.Container.Name)
		cmd.Printf("  Image:                 %s\n", cfg.Container.Image)
		cmd.Printf("  Address:               %s\n", cfg.Container.ServerURL())
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set assigns a dot-path key in the config file, e.g.:

  dsctl config set onlyoffice.jwt_enabled false
  dsctl config set onlyoffice.secret mysecret

Values are coerced to the JSON type they read as (booleans, numbers, arrays);
everything else is stored as a string. The file is created if missing.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, raw := args[0], args[1]

		store := config.NewStore(filePath)
		if err := store.Load(); err != nil {
			return err
		}
		value := config.CoerceValue(raw)
		store.Set(key, value)
		if err := store.Save(); err != nil {
			return err
		}

		cmd.Printf("✅ %s set to %s\n", key, lo.Must(json.Marshal(value)))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the config file",
	Long: `Validate checks that the config file parses and that every required
document server key is present.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := config.NewStore(filePath)
		if !store.Exists() {
			return fmt.Errorf("config file %s does not exist", store.Path)
		}
		if err := store.Load(); err != nil {
			return err
		}

		var missing []string
		for _, key := range config.RequiredKeys {
			if _, ok := store.Get(string(key)); !ok {
				missing = append(missing, string(key))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required keys: %v", missing)
		}

		cmd.Printf("✅ %s is valid\n", store.Path)
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config file to built-in defaults",
	Long: `Reset writes the built-in defaults to the config file. An existing file is
kept as <file>.backup.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store := config.NewStore(filePath)
		backup, err := store.Reset()
		if err != nil {
			return err
		}
		if backup != "" {
			cmd.Printf("✅ Previous config backed up to %s\n", backup)
		}
		cmd.Printf("✅ %s reset to defaults\n", store.Path)
		return nil
	},
}
