package cli

import (
	"context"
	"errors"
	"strings"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docserve/dsctl/cmd/cli/configcmd"
	"github.com/docserve/dsctl/cmd/cli/deploy"
	"github.com/docserve/dsctl/cmd/cli/down"
	"github.com/docserve/dsctl/cmd/cli/status"
	"github.com/docserve/dsctl/cmd/cli/token"
	"github.com/docserve/dsctl/pkg/config"
)

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

var log = logging.Logger("cmd")

const dsctlShortDescription = `
dsctl manages a local OnlyOffice Document Server container
`

const dsctlLongDescription = `
dsctl - Document Server control
dsctl resolves the document server's security configuration from config.json
(or built-in defaults) and drives the container runtime to deploy, inspect and
tear down a single named document server instance.
`

var (
	cfgFile  string
	logLevel string
	rootCmd  = &cobra.Command{
		Use:   "dsctl",
		Short: dsctlShortDescription,
		Long:  dsctlLongDescription,
	}
)

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path (default ./config.json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level")

	rootCmd.PersistentFlags().String("container-name", "onlyoffice-documentserver", "Document server container name")
	cobra.CheckErr(viper.BindPFlag(string(config.ContainerName), rootCmd.PersistentFlags().Lookup("container-name")))

	rootCmd.PersistentFlags().String("image", "onlyoffice/documentserver:latest", "Document server image reference")
	cobra.CheckErr(viper.BindPFlag(string(config.ContainerImage), rootCmd.PersistentFlags().Lookup("image")))

	rootCmd.PersistentFlags().Uint("port", 8080, "Host port published to the document server")
	cobra.CheckErr(viper.BindPFlag(string(config.ContainerHostPort), rootCmd.PersistentFlags().Lookup("port")))

	// register all commands and their subcommands
	rootCmd.AddCommand(deploy.Cmd)
	rootCmd.AddCommand(down.Cmd)
	rootCmd.AddCommand(status.Cmd)
	rootCmd.AddCommand(configcmd.Cmd)
	rootCmd.AddCommand(token.Cmd)
}

func initConfig() {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("DSCTL")

	config.SetDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		cobra.CheckErr(viper.ReadInConfig())
		return
	}

	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Absent file falls back to defaults; a present-but-broken file
			// does not.
			log.Warnf("⚠️  %s not found, using built-in defaults", config.DefaultFileName)
			return
		}
		cobra.CheckErr(err)
	}
}

func initLogging() {
	if logLevel != "" {
		ll, err := logging.LevelFromString(logLevel)
		cobra.CheckErr(err)
		logging.SetAllLoggers(ll)
	} else {
		logging.SetLogLevel("cmd", "info")
		logging.SetLogLevel("config", "info")
		logging.SetLogLevel("deploy", "info")
	}
}
