package cli

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/infra/csvsource"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/literal"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
	"github.com/fleetingbytes/http-status-codes2/internal/usecase"
)

func generateCmd() *cobra.Command {
	var input string
	var skipHeader bool
	var source string
	var pkg string
	var varName string
	var output string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a Go registry table from the registry CSV",
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

			log := logger.L()
			convert := usecase.NewConvertSource(
				csvsource.NewReader(),
				usecase.WithSkipHeader(skipHeader),
				usecase.WithLogger(log),
			)

			reg, err := usecase.NewGenerateRegistry(convert, log).Execute(cmd.Context(), path)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			opts := literal.GoSourceOptions{Package: pkg, Var: varName, Source: source}
			if err := literal.WriteGoSource(&buf, opts, reg); err != nil {
				return err
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return writeFileAtomic(output, buf.Bytes())
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "http-status-codes-1.csv", "Registry CSV to read")
	c.Flags().BoolVar(&skipHeader, "skip-header", false, "Drop the first CSV row")
	c.Flags().StringVar(&source, "source", "", "Source noted in the generated header (optional)")
	c.Flags().StringVar(&pkg, "package", "registry", "Go package name of the generated file")
	c.Flags().StringVar(&varName, "var", "official", "Name of the generated registry variable")
	c.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout when empty)")
	return c
}
