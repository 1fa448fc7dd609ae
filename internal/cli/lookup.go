package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
)

func codeCmd() *cobra.Command {
	var workspace string
	var registryFlag string
	var format string

	c := &cobra.Command{
		Use:   "code <CODE>",
		Short: "Look up a status code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}
			kind, err := ws.registryKind(registryFlag)
			if err != nil {
				return err
			}

			s, err := ws.lookup().ByCode(kind, args[0])
			if err != nil {
				logger.L().Info("lookup.code.miss", zap.String("code", args[0]), zap.String("registry", string(kind)))
				return err
			}
			return printStatus(cmd.OutOrStdout(), s, format)
		},
	}

	addLookupFlags(c, &workspace, &registryFlag, &format)
	return c
}

func searchCmd() *cobra.Command {
	var workspace string
	var registryFlag string
	var format string

	c := &cobra.Command{
		Use:   "search <TEXT>",
		Short: "Find status codes whose description contains TEXT (case-insensitive)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := optionalWorkspace(workspace)
			if err != nil {
				return err
			}
			kind, err := ws.registryKind(registryFlag)
			if err != nil {
				return err
			}

			needle := strings.Join(args, " ")
			reg, err := ws.lookup().Search(kind, needle)
			if err != nil {
				return err
			}
			logger.L().Debug("lookup.search", zap.String("needle", needle), zap.Int("matches", len(reg)))
			return printRegistry(cmd.OutOrStdout(), reg, format)
		},
	}

	addLookupFlags(c, &workspace, &registryFlag, &format)
	return c
}

func addLookupFlags(c *cobra.Command, workspace, registryFlag, format *string) {
	c.Flags().StringVarP(workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(registryFlag, "registry", "r", "", "Registry: official|unofficial|custom|all (default from heman.yaml, else official)")
	c.Flags().StringVar(format, "format", "pretty", "Output format: pretty|json|yaml")
}
