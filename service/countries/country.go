package countries

import (
	"math"
	"strings"

	"github.com/umahmood/haversine"
)

const earthRadiusInKm = 6371

// Country holds static information about a country or territory.
type Country struct {
	Code      string
	Alpha2    string
	Name      string
	Region    string
	Center    Coordinates
	Continent ContinentInfo
}

// Coordinates holds geographic coordinates in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// ContinentInfo holds additional information about continents.
type ContinentInfo struct {
	Code string
	Name string
}

// Add data to countries.
func init() {
	for code, country := range catalog {
		country.Code = code

		// Derive continent code from continental region.
		country.Continent.Code, _, _ = strings.Cut(country.Region, "-")

		// Add continent name.
		switch country.Continent.Code {
		case "AF":
			country.Continent.Name = "Africa"
		case "AN":
			country.Continent.Name = "Antarctica"
		case "AS":
			country.Continent.Name = "Asia"
		case "EU":
			country.Continent.Name = "Europe"
		case "NA":
			country.Continent.Name = "North America"
		case "OC":
			country.Continent.Name = "Oceania"
		case "SA":
			country.Continent.Name = "South America"
		}

		catalog[code] = country
	}
}

// Get returns the country with the given alpha-3 code.
func Get(code string) (Country, bool) {
	c, ok := catalog[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Name returns the catalog name of the country, or an empty string.
func Name(code string) string {
	c, _ := Get(code)
	return c.Name
}

// ValidCode returns whether code looks like an ISO alpha-3 code. It does not
// require the code to be in the catalog, as geometry sources carry a few
// user-assigned codes.
func ValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// NormalizeCode upper-cases and trims a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// DistanceKm returns the great circle distance between two points.
func DistanceKm(a, b Coordinates) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: a.Latitude, Lon: a.Longitude},
		haversine.Coord{Lat: b.Latitude, Lon: b.Longitude},
	)
	return km
}

// Visible returns whether point lies on the hemisphere facing a viewer
// looking down on center.
func Visible(center, point Coordinates) bool {
	return DistanceKm(center, point) < earthRadiusInKm*math.Pi/2
}
