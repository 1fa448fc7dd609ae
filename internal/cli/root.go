package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fleetingbytes/http-status-codes2/internal/infra/logger"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/workspacefinder"
)

func Execute() {
	logs := &logSession{}
	err := newRootCmdWithLog(logs).Execute()
	if cerr := logs.close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Exit(1)
	}
}

// logSession holds the cleanup of the file logger opened for one invocation.
// It is closed after Execute returns, whether or not the command failed.
type logSession struct {
	cleanup func() error
}

func (s *logSession) close() error {
	if s == nil || s.cleanup == nil {
		return nil
	}
	err := s.cleanup()
	s.cleanup = nil
	return err
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithLog(&logSession{})
}

func newRootCmdWithLog(logs *logSession) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "heman",
		Short:        "heman: HTTP status code registry converter and lookup",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			root := logRoot(cmd)
			if root == "" {
				return nil
			}
			// Logging is best effort; a read-only workspace must not break lookups.
			cleanup, err := logger.Setup(logger.Config{Root: root, Debug: debug})
			if err == nil {
				logs.cleanup = cleanup
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .heman/logs/heman.log")

	cmd.AddCommand(
		convertCmd(),
		generateCmd(),
		codeCmd(),
		searchCmd(),
		fetchCmd(),
		snapshotsCmd(),
		initCmd(),
		browseCmd(),
		versionCmd(),
	)
	return cmd
}

// logRoot is the workspace that receives the log file, or "" when there is none.
// An explicit --workspace flag wins over discovery from the working directory.
func logRoot(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("workspace"); f != nil && strings.TrimSpace(f.Value.String()) != "" {
		abs, err := filepath.Abs(f.Value.String())
		if err != nil {
			return ""
		}
		return abs
	}

	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root, err := workspacefinder.NewFinder().FindRoot(wd)
	if err != nil {
		return ""
	}
	return root
}
