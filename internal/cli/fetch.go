package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/infra/csvsource"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/httpclient"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/ianafetch"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
	"github.com/fleetingbytes/http-status-codes2/internal/usecase"
)

func fetchCmd() *cobra.Command {
	var workspace string
	var url string
	var out string
	var noSave bool

	c := &cobra.Command{
		Use:   "fetch",
		Short: "Download the registry CSV and save it as a workspace snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var ws *workspaceCtx
			var err error
			if noSave {
				ws, err = optionalWorkspace(workspace)
			} else {
				ws, err = loadWorkspace(workspace)
			}
			if err != nil {
				return err
			}

			source := ws.cfg.SourceURL
			if cmd.Flags().Changed("url") {
				source = url
			}

			var store ports.SnapshotStore
			if !noSave {
				store = ws.snapshotStore()
			}

			fetcher := ianafetch.New(httpclient.NewExecutor())
			uc := usecase.NewFetchSource(fetcher, store, csvsource.NewReader(), logger.L())

			snap, ref, err := uc.Execute(cmd.Context(), source)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Fetched:  %s (%d bytes)\n", snap.SourceURL, len(snap.Body))
			if ref.ID != "" {
				fmt.Fprintf(w, "Snapshot: %s\n", ref.ID)
				fmt.Fprintf(w, "File:     %s\n", ref.File)
			}

			if out != "" {
				if err := writeFileAtomic(out, snap.Body); err != nil {
					return fmt.Errorf("write %s: %w", out, err)
				}
				fmt.Fprintf(w, "Wrote:    %s\n", out)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVar(&url, "url", "", "Source URL (default from heman.yaml, else the IANA CSV export)")
	c.Flags().StringVarP(&out, "out", "o", "", "Also write the downloaded CSV to this file")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save a snapshot under snapshots/")
	return c
}
