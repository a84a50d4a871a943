package down

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/docserve/dsctl/pkg/config"
	"github.com/docserve/dsctl/pkg/deploy"
)

var Cmd = &cobra.Command{
	Use:   "down",
	Short: "Stop and remove the document server container",
	Long: `Down stops and removes the named document server container.

A container that is already stopped or was never deployed is not an error.
Documents fetched by the server do not outlive the container; nothing else is
cleaned up.`,
	Args: cobra.NoArgs,
	RunE: runDown,
}

func init() {
	Cmd.SetOut(os.Stdout)
	Cmd.SetErr(os.Stderr)
}

func runDown(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load[config.Full]()
	if err != nil {
		return err
	}

	orch := deploy.NewOrchestrator(cfg.Container)
	if err := orch.Down(cmd.Context()); err != nil {
		return err
	}

	cmd.Printf("🛑 Container %s stopped and removed\n", cfg.Container.Name)
	return nil
}
