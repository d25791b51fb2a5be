package countries

import (
	"math"
	"sort"
	"strings"
)

// Region is a continental sub-region as used in the catalog.
type Region struct {
	ID   string
	Name string
}

var regions = map[string]Region{
	"AF-C":  {ID: "AF-C", Name: "Africa, Sub-Saharan Africa, Middle Africa"},
	"AF-E":  {ID: "AF-E", Name: "Africa, Sub-Saharan Africa, Eastern Africa"},
	"AF-N":  {ID: "AF-N", Name: "Africa, Northern Africa"},
	"AF-S":  {ID: "AF-S", Name: "Africa, Sub-Saharan Africa, Southern Africa"},
	"AF-W":  {ID: "AF-W", Name: "Africa, Sub-Saharan Africa, Western Africa"},
	"AN":    {ID: "AN", Name: "Antarctica"},
	"AS-C":  {ID: "AS-C", Name: "Asia, Central Asia"},
	"AS-E":  {ID: "AS-E", Name: "Asia, Eastern Asia"},
	"AS-S":  {ID: "AS-S", Name: "Asia, Southern Asia"},
	"AS-SE": {ID: "AS-SE", Name: "Asia, South-eastern Asia"},
	"AS-W":  {ID: "AS-W", Name: "Asia, Western Asia"},
	"EU-E":  {ID: "EU-E", Name: "Europe, Eastern Europe"},
	"EU-N":  {ID: "EU-N", Name: "Europe, Northern Europe"},
	"EU-S":  {ID: "EU-S", Name: "Europe, Southern Europe"},
	"EU-W":  {ID: "EU-W", Name: "Europe, Western Europe"},
	"NA-E":  {ID: "NA-E", Name: "North America, Caribbean"},
	"NA-N":  {ID: "NA-N", Name: "North America, Northern America"},
	"NA-S":  {ID: "NA-S", Name: "North America, Central America"},
	"OC-C":  {ID: "OC-C", Name: "Oceania, Melanesia"},
	"OC-E":  {ID: "OC-E", Name: "Oceania, Polynesia"},
	"OC-N":  {ID: "OC-N", Name: "Oceania, Micronesia"},
	"OC-S":  {ID: "OC-S", Name: "Oceania, Australia and New Zealand"},
	"SA":    {ID: "SA", Name: "South America"},
}

// GetRegion returns the region with the given ID.
func GetRegion(id string) (Region, bool) {
	r, ok := regions[strings.ToUpper(id)]
	return r, ok
}

// InRegion returns the codes of all catalog countries whose region or
// continent matches the given ID, sorted by code.
func InRegion(id string) []string {
	id = strings.ToUpper(id)
	var codes []string
	for code, c := range catalog {
		if c.Region == id || c.Continent.Code == id {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

// Focus resolves a country code, region ID or continent code to a point to
// center the view on. Regions use the spherical mean of their members'
// centers, so regions spanning the antimeridian stay in place.
func Focus(id string) (Coordinates, bool) {
	if c, ok := Get(id); ok {
		return c.Center, true
	}

	codes := InRegion(id)
	if len(codes) == 0 {
		return Coordinates{}, false
	}
	var x, y, z float64
	for _, code := range codes {
		center := catalog[code].Center
		lat := center.Latitude * math.Pi / 180
		lon := center.Longitude * math.Pi / 180
		x += math.Cos(lat) * math.Cos(lon)
		y += math.Cos(lat) * math.Sin(lon)
		z += math.Sin(lat)
	}
	return Coordinates{
		Latitude:  math.Atan2(z, math.Hypot(x, y)) * 180 / math.Pi,
		Longitude: math.Atan2(y, x) * 180 / math.Pi,
	}, true
}
