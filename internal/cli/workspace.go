package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/snapshotstore"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/workspacefinder"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/yamlregistry"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
	"github.com/fleetingbytes/http-status-codes2/internal/registry"
	"github.com/fleetingbytes/http-status-codes2/internal/usecase"
)

// workspaceCtx carries the resolved configuration. root is empty when the
// command runs outside any workspace.
type workspaceCtx struct {
	root string
	cfg  domain.Config
}

// loadWorkspace requires a workspace, from the flag or by discovery.
func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{root: root, cfg: cfg}, nil
}

// optionalWorkspace falls back to defaults plus HEMAN_* overrides when no
// workspace is found. An explicit flag still has to point at a workspace.
func optionalWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	if strings.TrimSpace(workspaceFlag) != "" {
		return loadWorkspace(workspaceFlag)
	}

	ws, err := loadWorkspace("")
	if err == nil {
		return ws, nil
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	cfg, err := workspacefinder.ApplyEnv(domain.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return &workspaceCtx{cfg: cfg}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	var locator ports.WorkspaceLocator = workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", &domain.OpError{
			Op:   "cli.workspace",
			Kind: domain.KindNotFound,
			Path: wd,
			Err:  fmt.Errorf("workspace not found (tip: run `heman init`): %w", err),
		}
	}
	return root, nil
}

// resolve makes a configured path absolute against the workspace root.
// Outside a workspace paths stay relative to the working directory.
func (ws *workspaceCtx) resolve(p string) string {
	if p == "" || filepath.IsAbs(p) || ws.root == "" {
		return p
	}
	return filepath.Join(ws.root, p)
}

// lookup wires the embedded tables with the workspace custom codes, if any.
func (ws *workspaceCtx) lookup() *usecase.LookupStatus {
	set := usecase.RegistrySet{
		Official:   registry.Official(),
		Unofficial: registry.Unofficial(),
	}
	if ws.root != "" {
		p := ws.resolve(ws.cfg.Paths.CustomCodes)
		if fileExists(p) {
			set.CustomLoader = yamlregistry.NewLoader()
			set.CustomPath = p
		}
	}
	return usecase.NewLookupStatus(set)
}

func (ws *workspaceCtx) snapshotStore() *snapshotstore.FileStore {
	return snapshotstore.NewFileStore(ws.root, ws.cfg)
}

// registryKind picks the flag value when given, otherwise the configured default.
func (ws *workspaceCtx) registryKind(flag string) (domain.RegistryKind, error) {
	if strings.TrimSpace(flag) == "" {
		return ws.cfg.Lookup.Registry, nil
	}
	return domain.ParseRegistryKind(flag)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// writeFileAtomic writes to a temp file in the target directory, then renames it.
func writeFileAtomic(path string, b []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(b)
	cerr := tmp.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
