package yamlregistry

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// Loader reads user-defined status codes from a YAML file.
type Loader struct{}

func NewLoader() *Loader { return &Loader{} }

var _ ports.CustomCodeLoader = (*Loader)(nil)

func (l *Loader) LoadCustomCodes(path string) (domain.Registry, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "yamlregistry.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLRegistry
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return nil, &domain.OpError{
			Op:   "yamlregistry.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapRegistry(path, dto)
}
