package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	r, ok := ParseRegion(" EUW1 ")
	require.True(t, ok)
	assert.Equal(t, Region("euw1"), r)
	assert.Equal(t, RouteEurope, r.Route())

	_, ok = ParseRegion("mars1")
	assert.False(t, ok)
}

func TestRegionRoutes(t *testing.T) {
	assert.Equal(t, RouteAmericas, Region("la2").Route())
	assert.Equal(t, RouteAsia, Region("kr").Route())
	assert.Equal(t, RouteSEA, Region("vn2").Route())
	assert.Equal(t, RouteAmericas, Region("nowhere").Route())
}

func TestRegionFromMatchID(t *testing.T) {
	assert.Equal(t, Region("kr"), RegionFromMatchID("KR_7312345678"))
	assert.Equal(t, Region("euw1"), RegionFromMatchID("EUW1_123"))
	assert.Equal(t, DefaultRegion, RegionFromMatchID("XX9_123"))
	assert.Equal(t, DefaultRegion, RegionFromMatchID("123"))
}

func TestNormalizeRole(t *testing.T) {
	got := NormalizeRole("MIDDLE", "")
	require.NotNil(t, got)
	assert.Equal(t, RoleMid, *got)

	got = NormalizeRole("", "BOTTOM")
	require.NotNil(t, got)
	assert.Equal(t, RoleADC, *got)

	got = NormalizeRole("UTILITY", "MIDDLE")
	require.NotNil(t, got)
	assert.Equal(t, RoleSupport, *got)

	assert.Nil(t, NormalizeRole("", ""))
	assert.Nil(t, NormalizeRole("Invalid", "NONE"))
}

func TestPatchPrefix(t *testing.T) {
	assert.Equal(t, "15.10", PatchPrefix("15.10.1"))
	assert.Equal(t, "15.10", PatchPrefix("15.10.684.7151"))
	assert.Equal(t, "15.10", PatchPrefix("15.10"))
	assert.Equal(t, "15", PatchPrefix("15"))
}
