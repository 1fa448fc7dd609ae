package cli

import (
	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
	"github.com/fleetingbytes/http-status-codes2/internal/ui/tui"
)

func browseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse every known status code interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}
}

func runBrowse(cmd *cobra.Command) error {
	ws, err := optionalWorkspace("")
	if err != nil {
		return err
	}

	reg, err := ws.lookup().Registry(domain.RegistryAll)
	if err != nil {
		return err
	}

	deps := tui.Deps{
		Registry:  reg,
		Workspace: ws.root,
		Logger:    logger.L(),
	}
	if logger.IsReady() == nil {
		deps.LogPath = logger.Path()
	}
	return tui.Run(cmd.Context(), deps)
}
