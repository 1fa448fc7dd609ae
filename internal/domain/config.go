package domain

const (
	DefaultInput     = "http-status-codes-1.csv"
	DefaultSourceURL = "https://www.iana.org/assignments/http-status-codes/http-status-codes-1.csv"
)

// Config represents the heman configuration loaded from heman.yaml and the environment.
type Config struct {
	Input     string
	SourceURL string
	Lookup    LookupConfig
	Paths     PathsConfig
}

type LookupConfig struct {
	Registry RegistryKind
}

type PathsConfig struct {
	SnapshotsDir string
	CustomCodes  string
}

// DefaultConfig provides sane defaults if heman.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Input:     DefaultInput,
		SourceURL: DefaultSourceURL,
		Lookup: LookupConfig{
			Registry: RegistryOfficial,
		},
		Paths: PathsConfig{
			SnapshotsDir: "snapshots",
			CustomCodes:  "codes.yaml",
		},
	}
}
