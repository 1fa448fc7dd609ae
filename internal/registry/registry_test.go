package registry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
	"github.com/fleetingbytes/http-status-codes2/internal/infra/csvsource"
	"github.com/fleetingbytes/http-status-codes2/internal/usecase"
)

func TestOfficial_FindByCode(t *testing.T) {
	got, ok := Official().FindByCode(100)
	require.True(t, ok)
	assert.Equal(t, domain.Status{
		Code:        100,
		Description: "Continue",
		Reference:   "[RFC9110, Section 15.2.1]",
		Link:        "https://www.rfc-editor.org/rfc/rfc9110.html#section-15.2.1",
	}, got)

	_, ok = Official().FindByCode(600)
	assert.False(t, ok)
}

func TestUnofficial_FindByCode(t *testing.T) {
	got, ok := Unofficial().FindByCode(418)
	require.True(t, ok)
	assert.Equal(t, "I'm a teapot", got.Description)
	assert.Equal(t, "https://www.rfc-editor.org/rfc/rfc2324.html#section-2.3.2", got.Link)

	_, ok = Unofficial().FindByCode(600)
	assert.False(t, ok)
}

func TestOfficial_FindBySubstring(t *testing.T) {
	got := Official().FindBySubstring("failed")
	want := domain.Registry{
		{Code: 412, Description: "Precondition Failed", Reference: "[RFC9110, Section 15.5.13]", Link: "https://www.rfc-editor.org/rfc/rfc9110.html#section-15.5.13"},
		{Code: 417, Description: "Expectation Failed", Reference: "[RFC9110, Section 15.5.18]", Link: "https://www.rfc-editor.org/rfc/rfc9110.html#section-15.5.18"},
		{Code: 424, Description: "Failed Dependency", Reference: "[RFC4918]", Link: "https://www.rfc-editor.org/rfc/rfc4918.html"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("matches mismatch (-want +got):\n%s", diff)
	}

	assert.Empty(t, Official().FindBySubstring("teapot"))
}

func TestUnofficial_FindBySubstring(t *testing.T) {
	got := Unofficial().FindBySubstring("teapot")
	require.Len(t, got, 1)
	assert.Equal(t, 418, got[0].Code)

	assert.Empty(t, Unofficial().FindBySubstring("Prince Adam"))
}

func TestOfficial_ReturnsCopy(t *testing.T) {
	reg := Official()
	reg[0].Description = "mutated"
	assert.Equal(t, "Continue", Official()[0].Description)
}

func TestOfficial_Size(t *testing.T) {
	assert.Len(t, Official(), 63)
	assert.Len(t, Unofficial(), 4)
}

// The embedded table must match what the generator produces from the IANA export.
func TestOfficial_MatchesGeneratedSource(t *testing.T) {
	convert := usecase.NewConvertSource(csvsource.NewReader(), usecase.WithSkipHeader(true))
	got, err := usecase.NewGenerateRegistry(convert, nil).
		Execute(context.Background(), filepath.Join("testdata", "http-status-codes-1.csv"))
	require.NoError(t, err)

	if diff := cmp.Diff(Official(), got); diff != "" {
		t.Fatalf("official_gen.go is stale, run go generate (-embedded +generated):\n%s", diff)
	}
}
