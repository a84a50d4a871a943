package status

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docserve/dsctl/cmd/cliutil/format"
	"github.com/docserve/dsctl/pkg/config"
	"github.com/docserve/dsctl/pkg/deploy"
)

var Cmd = &cobra.Command{
	Use:   "status",
	Short: "Check document server status and health",
	Long: `Check the status of the deployed document server container.

This command inspects the container through the runtime API and probes the
server's healthcheck endpoint.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

var outputFormat string

func init() {
	Cmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text or json")
	Cmd.SetOut(os.Stdout)
	Cmd.SetErr(os.Stderr)
}

func runStatus(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load[config.Full]()
	if err != nil {
		return err
	}

	inspector, err := deploy.NewInspector()
	if err != nil {
		return err
	}
	defer inspector.Close()

	report := &deploy.Report{Address: cfg.Container.ServerURL()}

	st, err := inspector.Inspect(ctx, cfg.Container.Name)
	switch {
	case errors.Is(err, deploy.ErrNotDeployed):
		// leave report.Deployed false
	case err != nil:
		return err
	default:
		report.Status = st
		report.Deployed = true
		report.Healthy = deploy.CheckEndpoint(ctx, cfg.Container.HealthcheckURL()) == nil
	}

	outFormat, err := format.ParseOutputFormat(outputFormat)
	if err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	formatter := format.NewFormatter(outFormat, cmd.OutOrStdout())
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	return nil
}
