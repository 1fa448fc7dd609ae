package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

// EnvPrefix is prepended to every environment override, e.g. HEMAN_INPUT.
const EnvPrefix = "heman"

// LoadConfig loads heman.yaml from the workspace root, then applies the workspace
// .env file and the process environment on top.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Heman.Input != "" {
		cfg.Input = y.Heman.Input
	}
	if y.Heman.SourceURL != "" {
		cfg.SourceURL = y.Heman.SourceURL
	}
	if y.Heman.Lookup.Registry != "" {
		kind, err := domain.ParseRegistryKind(y.Heman.Lookup.Registry)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.loadconfig",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Lookup.Registry = kind
	}
	if y.Heman.Paths.SnapshotsDir != "" {
		cfg.Paths.SnapshotsDir = y.Heman.Paths.SnapshotsDir
	}
	if y.Heman.Paths.CustomCodes != "" {
		cfg.Paths.CustomCodes = y.Heman.Paths.CustomCodes
	}

	if err := loadDotEnv(root); err != nil {
		return cfg, err
	}
	return ApplyEnv(cfg)
}

// ApplyEnv overrides cfg with HEMAN_* environment variables.
func ApplyEnv(cfg domain.Config) (domain.Config, error) {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.env",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}

	if env.Input != "" {
		cfg.Input = env.Input
	}
	if env.SourceURL != "" {
		cfg.SourceURL = env.SourceURL
	}
	if env.Registry != "" {
		kind, err := domain.ParseRegistryKind(env.Registry)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "workspacefinder.env",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("HEMAN_REGISTRY: %w", err),
			}
		}
		cfg.Lookup.Registry = kind
	}
	if env.SnapshotsDir != "" {
		cfg.Paths.SnapshotsDir = env.SnapshotsDir
	}
	if env.CustomCodes != "" {
		cfg.Paths.CustomCodes = env.CustomCodes
	}
	return cfg, nil
}

// loadDotEnv reads <root>/.env when present. Variables already set in the
// process environment win.
func loadDotEnv(root string) error {
	path := filepath.Join(root, ".env")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return &domain.OpError{
			Op:   "workspacefinder.dotenv",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

type envOverrides struct {
	Input        string `envconfig:"INPUT"`
	SourceURL    string `envconfig:"SOURCE_URL"`
	Registry     string `envconfig:"REGISTRY"`
	SnapshotsDir string `envconfig:"SNAPSHOTS_DIR"`
	CustomCodes  string `envconfig:"CUSTOM_CODES"`
}

type yamlConfig struct {
	Heman struct {
		Input     string `yaml:"input"`
		SourceURL string `yaml:"source_url"`

		Lookup struct {
			Registry string `yaml:"registry"`
		} `yaml:"lookup"`

		Paths struct {
			SnapshotsDir string `yaml:"snapshots_dir"`
			CustomCodes  string `yaml:"custom_codes"`
		} `yaml:"paths"`
	} `yaml:"heman"`
}
