package deploy

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/docserve/dsctl/pkg/config"
	"github.com/docserve/dsctl/pkg/deploy"
)

var Cmd = &cobra.Command{
	Use:   "deploy",
	Short: "Deploy the document server container",
	Long: `Deploy resolves the document server configuration and replaces any running
instance of the container.

This command performs the following operations:
  - Stops the named container if one is running (best effort)
  - Removes the stopped container (best effort)
  - Starts a new container from the configured image, publishing the host
    port and injecting the resolved security settings as environment
    variables
  - Prints a confirmation banner with the resolved configuration

Configuration is read from ./config.json (override with --config). When the
file is absent, built-in trial defaults are used and a warning is printed.

The --dry-run flag prints the runtime commands without executing them. The
--wait flag polls the server's healthcheck endpoint until the document server
is ready to accept requests; first startup can take a couple of minutes while
fonts are generated.`,
	Args: cobra.NoArgs,
	RunE: runDeploy,
}

var (
	dryRun      bool
	wait        bool
	waitTimeout time.Duration
	showSecret  bool
)

func init() {
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the runtime commands without executing them")
	Cmd.Flags().BoolVar(&wait, "wait", false, "Wait for the document server to report healthy")
	Cmd.Flags().DurationVar(&waitTimeout, "wait-timeout", 3*time.Minute, "How long --wait polls before giving up")
	Cmd.Flags().BoolVar(&showSecret, "show-secret", false, "Print the JWT secret in plaintext in the banner")
	Cmd.SetOut(os.Stdout)
	Cmd.SetErr(os.Stderr)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load[config.Full]()
	if err != nil {
		return err
	}

	orch := deploy.NewOrchestrator(cfg.Container)

	if dryRun {
		cmd.PrintErrln("DRY RUN MODE - No changes will be made")
		cmd.Printf("docker stop %s\n", cfg.Container.Name)
		cmd.Printf("docker rm %s\n", cfg.Container.Name)
		cmd.Printf("docker %s\n", strings.Join(orch.RunArgs(cfg.OnlyOffice), " "))
		return nil
	}

	if err := orch.Deploy(cmd.Context(), cfg.OnlyOffice); err != nil {
		return err
	}

	if wait {
		cmd.Println("⏳ Waiting for the document server to become healthy...")
		if err := deploy.WaitHealthy(cmd.Context(), cfg.Container.HealthcheckURL(), waitTimeout); err != nil {
			return fmt.Errorf("container started but %w", err)
		}
	}

	cmd.Println(deploy.Banner(cfg, showSecret))
	return nil
}
