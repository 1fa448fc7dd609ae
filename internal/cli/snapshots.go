package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

func snapshotsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "snapshots",
		Short: "Manage downloaded registry snapshots",
	}

	c.AddCommand(snapshotsListCmd())
	return c
}

func snapshotsListCmd() *cobra.Command {
	var workspace string
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved snapshots, newest last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.snapshotStore().ListSnapshots()
			if err != nil {
				return err
			}
			return printSnapshots(cmd.OutOrStdout(), ws.snapshotStore().Dir(), refs, format)
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printSnapshots(w io.Writer, dir string, refs []domain.SnapshotRef, format string) error {
	switch format {
	case "json":
		if refs == nil {
			refs = []domain.SnapshotRef{}
		}
		return writeJSON(w, refs)
	case "pretty", "":
		if len(refs) == 0 {
			fmt.Fprintln(w, "(no snapshots found)")
			return nil
		}
		fmt.Fprintf(w, "Snapshots: %s\n\n", dir)
		for _, r := range refs {
			sum := r.SHA256
			if len(sum) > 12 {
				sum = sum[:12]
			}
			fmt.Fprintf(w, "- %s  %s  %d bytes  sha256:%s\n", r.ID, r.FetchedAt.UTC().Format(time.RFC3339), r.Size, sum)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json): %w", format, domain.ErrInvalidInput)
	}
}
