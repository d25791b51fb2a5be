package countries

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	alpha2 := make(map[string]string)
	for key, country := range catalog {
		if key != country.Code {
			t.Errorf("%s has a wrong country code of %q", key, country.Code)
		}
		if !ValidCode(key) {
			t.Errorf("%s is not a valid alpha-3 code", key)
		}
		if country.Name == "" {
			t.Errorf("%s is missing name", key)
		}
		if _, ok := regions[country.Region]; !ok {
			t.Errorf("%s has unknown region %q", key, country.Region)
		}
		if country.Continent.Name == "" {
			t.Errorf("%s is missing continent name", key)
		}
		generatedContinentCode, _, _ := strings.Cut(country.Region, "-")
		if country.Continent.Code != generatedContinentCode {
			t.Errorf("%s has wrong continent code or region", key)
		}
		if country.Center.Latitude == 0 && country.Center.Longitude == 0 {
			t.Errorf("%s is missing coords", key)
		}
		if other, ok := alpha2[country.Alpha2]; ok {
			t.Errorf("%s and %s share alpha-2 code %s", key, other, country.Alpha2)
		}
		alpha2[country.Alpha2] = key
	}
	if len(catalog) < 247 {
		t.Errorf("catalog only includes %d countries", len(catalog))
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	c, ok := Get(" che")
	assert.True(t, ok)
	assert.Equal(t, "CH", c.Alpha2)
	assert.Equal(t, "Europe", c.Continent.Name)

	_, ok = Get("-99")
	assert.False(t, ok)
	assert.Equal(t, "", Name("XXX"))
	assert.Equal(t, "Hong Kong", Name("HKG"))
}

func TestValidCode(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidCode("CHN"))
	assert.True(t, ValidCode("KOS"))
	assert.False(t, ValidCode("-99"))
	assert.False(t, ValidCode("chn"))
	assert.False(t, ValidCode("CH"))
	assert.Equal(t, "MAC", NormalizeCode(" mac "))
}

func TestVisible(t *testing.T) {
	t.Parallel()

	greenwich := Coordinates{Latitude: 0, Longitude: 0}
	assert.True(t, Visible(greenwich, Coordinates{Latitude: 47, Longitude: 8}))
	assert.False(t, Visible(greenwich, Coordinates{Latitude: -41, Longitude: 174}))
	assert.InDelta(t, 20015, DistanceKm(greenwich, Coordinates{Latitude: 0, Longitude: 180}), 10)
}

func TestFocus(t *testing.T) {
	t.Parallel()

	center, ok := Focus("JPN")
	assert.True(t, ok)
	assert.Equal(t, catalog["JPN"].Center, center)

	center, ok = Focus("eu-w")
	assert.True(t, ok)
	assert.Greater(t, center.Latitude, 40.0)
	assert.Contains(t, InRegion("EU-W"), "DEU")
	assert.Contains(t, InRegion("SA"), "BRA")

	// Oceania spans the antimeridian and must stay in the Pacific.
	center, ok = Focus("OC")
	assert.True(t, ok)
	assert.True(t, math.Abs(center.Longitude) > 150, "longitude %f", center.Longitude)
	assert.Less(t, center.Latitude, 0.0)

	center, ok = Focus("OC-E")
	assert.True(t, ok)
	assert.True(t, math.Abs(center.Longitude) > 150, "longitude %f", center.Longitude)

	_, ok = Focus("ZZ")
	assert.False(t, ok)
}
