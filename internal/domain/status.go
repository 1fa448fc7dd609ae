package domain

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Row is one raw CSV record. Line is 1-based.
type Row struct {
	Line   int
	Fields []string
}

// Entry is the per-row entity produced by the converter. Code is kept verbatim.
type Entry struct {
	Code   string
	Reason string
	Notes  string
	Link   string
}

// HasLink reports whether a link was derived from Notes.
func (e Entry) HasLink() bool { return e.Link != "" }

// Status converts the entry into a registry status. The code must be an integer.
func (e Entry) Status() (Status, error) {
	code, err := strconv.Atoi(strings.TrimSpace(e.Code))
	if err != nil {
		return Status{}, fmt.Errorf("status code %q: %w", e.Code, ErrInvalidInput)
	}
	return Status{
		Code:        code,
		Description: e.Reason,
		Reference:   e.Notes,
		Link:        e.Link,
	}, nil
}

// Status is a single HTTP status code registration.
type Status struct {
	Code        int    `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Class returns the status class digit, e.g. 4 for 404.
func (s Status) Class() int { return s.Code / 100 }

// Registry is an ordered table of statuses.
type Registry []Status

// FindByCode returns the first status registered under code.
func (r Registry) FindByCode(code int) (Status, bool) {
	for _, s := range r {
		if s.Code == code {
			return s, true
		}
	}
	return Status{}, false
}

// FindBySubstring returns every status whose description contains needle,
// compared under Unicode case folding. Registry order is preserved.
func (r Registry) FindBySubstring(needle string) Registry {
	fold := cases.Fold()
	n := fold.String(needle)

	out := Registry{}
	for _, s := range r {
		if strings.Contains(fold.String(s.Description), n) {
			out = append(out, s)
		}
	}
	return out
}

// Clone returns a copy that does not share the backing array.
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	out := make(Registry, len(r))
	copy(out, r)
	return out
}

// RegistryKind selects which table a lookup runs against.
type RegistryKind string

const (
	RegistryOfficial   RegistryKind = "official"
	RegistryUnofficial RegistryKind = "unofficial"
	RegistryCustom     RegistryKind = "custom"
	RegistryAll        RegistryKind = "all"
)

// ParseRegistryKind accepts a kind name case-insensitively. Empty means official.
func ParseRegistryKind(s string) (RegistryKind, error) {
	k := RegistryKind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case "":
		return RegistryOfficial, nil
	case RegistryOfficial, RegistryUnofficial, RegistryCustom, RegistryAll:
		return k, nil
	default:
		return "", fmt.Errorf("unknown registry %q (expected official|unofficial|custom|all): %w", s, ErrInvalidInput)
	}
}
