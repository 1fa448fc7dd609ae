package cli

import (
	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/infra/csvsource"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/literal"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
	"github.com/fleetingbytes/http-status-codes2/internal/usecase"
)

func convertCmd() *cobra.Command {
	var input string
	var skipHeader bool

	c := &cobra.Command{
		Use:   "convert",
		Short: "Print the registry CSV as (code, \"reason\", \"notes\"[, \"link\"]) tuples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := optionalWorkspace("")
			if err != nil {
				return err
			}

			path := ws.resolve(ws.cfg.Input)
			if cmd.Flags().Changed("input") {
				path = input
			}

			uc := usecase.NewConvertSource(
				csvsource.NewReader(),
				usecase.WithSkipHeader(skipHeader),
				usecase.WithLogger(logger.L()),
			)

			entries, err := uc.Execute(cmd.Context(), path)
			if err != nil {
				return err
			}
			return literal.WriteTuples(cmd.OutOrStdout(), entries)
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "http-status-codes-1.csv", "Registry CSV to convert")
	c.Flags().BoolVar(&skipHeader, "skip-header", false, "Drop the first CSV row")
	return c
}
