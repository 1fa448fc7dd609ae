package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/ports"
)

// RegistrySet holds the tables a lookup can run against.
type RegistrySet struct {
	Official   domain.Registry
	Unofficial domain.Registry

	// Custom codes are loaded lazily from CustomPath.
	CustomLoader ports.CustomCodeLoader
	CustomPath   string
}

type LookupStatus struct {
	set RegistrySet
}

func NewLookupStatus(set RegistrySet) *LookupStatus {
	return &LookupStatus{set: set}
}

// Registry resolves the table for kind. "all" concatenates official, unofficial
// and custom, in that order; custom is skipped there when no loader is configured.
func (uc *LookupStatus) Registry(kind domain.RegistryKind) (domain.Registry, error) {
	switch kind {
	case domain.RegistryOfficial, "":
		return uc.set.Official, nil
	case domain.RegistryUnofficial:
		return uc.set.Unofficial, nil
	case domain.RegistryCustom:
		return uc.custom(true)
	case domain.RegistryAll:
		custom, err := uc.custom(false)
		if err != nil {
			return nil, err
		}
		out := make(domain.Registry, 0, len(uc.set.Official)+len(uc.set.Unofficial)+len(custom))
		out = append(out, uc.set.Official...)
		out = append(out, uc.set.Unofficial...)
		out = append(out, custom...)
		return out, nil
	default:
		return nil, fmt.Errorf("unknown registry %q: %w", kind, domain.ErrInvalidInput)
	}
}

func (uc *LookupStatus) custom(required bool) (domain.Registry, error) {
	if uc.set.CustomLoader == nil || uc.set.CustomPath == "" {
		if required {
			return nil, &domain.OpError{
				Op:   "lookup.custom",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("custom codes need a workspace (tip: run `heman init`): %w", domain.ErrNotFound),
			}
		}
		return nil, nil
	}
	return uc.set.CustomLoader.LoadCustomCodes(uc.set.CustomPath)
}

// ByCode finds a status by its numeric code given as text.
func (uc *LookupStatus) ByCode(kind domain.RegistryKind, code string) (domain.Status, error) {
	n, err := strconv.Atoi(strings.TrimSpace(code))
	if err != nil {
		return domain.Status{}, &domain.OpError{
			Op:   "lookup.code",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("status code %q is not a number: %w", code, domain.ErrInvalidInput),
		}
	}

	reg, err := uc.Registry(kind)
	if err != nil {
		return domain.Status{}, err
	}

	s, ok := reg.FindByCode(n)
	if !ok {
		return domain.Status{}, &domain.OpError{
			Op:   "lookup.code",
			Kind: domain.KindNotFound,
			Err:  fmt.Errorf("status code %d in %s registry: %w", n, kindName(kind), domain.ErrNotFound),
		}
	}
	return s, nil
}

// Search returns every status whose description contains needle (case-insensitive).
func (uc *LookupStatus) Search(kind domain.RegistryKind, needle string) (domain.Registry, error) {
	reg, err := uc.Registry(kind)
	if err != nil {
		return nil, err
	}
	return reg.FindBySubstring(needle), nil
}

func kindName(kind domain.RegistryKind) string {
	if kind == "" {
		return string(domain.RegistryOfficial)
	}
	return string(kind)
}
