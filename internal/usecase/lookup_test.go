package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetingbytes/http-status-codes2/internal/domain"
)

func testSet(custom *fakeCustom) RegistrySet {
	set := RegistrySet{
		Official: domain.Registry{
			{Code: 100, Description: "Continue", Reference: "[RFC9110, Section 15.2.1]"},
			{Code: 412, Description: "Precondition Failed"},
			{Code: 418, Description: "(Unused)"},
		},
		Unofficial: domain.Registry{
			{Code: 418, Description: "I'm a teapot"},
		},
	}
	if custom != nil {
		set.CustomLoader = custom
		set.CustomPath = "codes.yaml"
	}
	return set
}

func TestLookupStatus_ByCode(t *testing.T) {
	uc := NewLookupStatus(testSet(nil))

	s, err := uc.ByCode(domain.RegistryOfficial, "100")
	require.NoError(t, err)
	assert.Equal(t, "Continue", s.Description)

	s, err = uc.ByCode(domain.RegistryUnofficial, " 418 ")
	require.NoError(t, err)
	assert.Equal(t, "I'm a teapot", s.Description)

	_, err = uc.ByCode(domain.RegistryOfficial, "600")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, err = uc.ByCode(domain.RegistryOfficial, "abc")
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))
}

func TestLookupStatus_AllPrefersOfficialOrder(t *testing.T) {
	custom := &fakeCustom{reg: domain.Registry{{Code: 599, Description: "Network Connect Timeout"}}}
	uc := NewLookupStatus(testSet(custom))

	s, err := uc.ByCode(domain.RegistryAll, "418")
	require.NoError(t, err)
	assert.Equal(t, "(Unused)", s.Description)

	s, err = uc.ByCode(domain.RegistryAll, "599")
	require.NoError(t, err)
	assert.Equal(t, "Network Connect Timeout", s.Description)
	assert.Equal(t, []string{"codes.yaml", "codes.yaml"}, custom.paths)
}

func TestLookupStatus_AllWithoutWorkspace(t *testing.T) {
	uc := NewLookupStatus(testSet(nil))
	reg, err := uc.Registry(domain.RegistryAll)
	require.NoError(t, err)
	assert.Len(t, reg, 4)
}

func TestLookupStatus_CustomRequiresWorkspace(t *testing.T) {
	uc := NewLookupStatus(testSet(nil))
	_, err := uc.Search(domain.RegistryCustom, "x")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestLookupStatus_CustomLoaderError(t *testing.T) {
	loadErr := errors.New("bad yaml")
	uc := NewLookupStatus(testSet(&fakeCustom{err: loadErr}))
	_, err := uc.Search(domain.RegistryCustom, "x")
	assert.ErrorIs(t, err, loadErr)
}

func TestLookupStatus_Search(t *testing.T) {
	uc := NewLookupStatus(testSet(nil))

	got, err := uc.Search(domain.RegistryOfficial, "failed")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 412, got[0].Code)

	got, err = uc.Search(domain.RegistryOfficial, "teapot")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = uc.Search(domain.RegistryUnofficial, "TEAPOT")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 418, got[0].Code)
}

func TestLookupStatus_UnknownKind(t *testing.T) {
	_, err := NewLookupStatus(testSet(nil)).Registry("iana")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
