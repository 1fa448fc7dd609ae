package yamlregistry

import (
	"fmt"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

const (
	minCode = 100
	maxCode = 599
)

// MapRegistry validates the DTO and converts it into a domain registry.
// A missing link is derived from the reference when it cites an RFC.
func MapRegistry(path string, yr YAMLRegistry) (domain.Registry, error) {
	reg := make(domain.Registry, 0, len(yr.Codes))

	for i, c := range yr.Codes {
		fieldPrefix := fmt.Sprintf("codes[%d]", i)
		if c.Code < minCode || c.Code > maxCode {
			return nil, invalidField(path, fieldPrefix+".code", fmt.Sprintf("code %d outside %d-%d", c.Code, minCode, maxCode))
		}
		if strings.TrimSpace(c.Description) == "" {
			return nil, invalidField(path, fieldPrefix+".description", "description is required")
		}

		s := domain.Status{
			Code:        c.Code,
			Description: strings.TrimSpace(c.Description),
			Reference:   strings.TrimSpace(c.Reference),
			Link:        strings.TrimSpace(c.Link),
		}
		if s.Link == "" {
			s.Link = domain.LinkFor(s.Reference)
		}
		reg = append(reg, s)
	}

	return reg, nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "yamlregistry.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
