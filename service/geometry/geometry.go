package geometry

import (
	"github.com/paulmach/orb"
)

// SourceKind describes which source a country's geometry came from.
type SourceKind string

// Geometry sources, in merge order.
const (
	SourcePrimary  SourceKind = "primary"
	SourceFallback SourceKind = "fallback"
	SourceIsland   SourceKind = "island"
	SourceOverride SourceKind = "override"
)

// Country is the merged boundary geometry of a single country.
type Country struct {
	Code   string
	Name   string
	Shape  orb.MultiPolygon
	Source SourceKind
}

// Collection maps country codes to geometry. Iteration follows insertion
// order; replacing an entry keeps its position.
type Collection struct {
	countries map[string]*Country
	order     []string
	initial   map[string]struct{}
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		countries: make(map[string]*Country),
		initial:   make(map[string]struct{}),
	}
}

// Get returns the country with the given code.
func (c *Collection) Get(code string) (*Country, bool) {
	country, ok := c.countries[code]
	return country, ok
}

// Has returns whether the collection contains the given code.
func (c *Collection) Has(code string) bool {
	_, ok := c.countries[code]
	return ok
}

// IsInitial returns whether the code was added from the primary source.
func (c *Collection) IsInitial(code string) bool {
	_, ok := c.initial[code]
	return ok
}

// Len returns the number of countries.
func (c *Collection) Len() int {
	return len(c.order)
}

// Codes returns all codes in insertion order.
func (c *Collection) Codes() []string {
	codes := make([]string, len(c.order))
	copy(codes, c.order)
	return codes
}

// Countries returns all countries in insertion order.
func (c *Collection) Countries() []*Country {
	countries := make([]*Country, 0, len(c.order))
	for _, code := range c.order {
		countries = append(countries, c.countries[code])
	}
	return countries
}

// Put adds or replaces a country.
func (c *Collection) Put(country *Country) {
	if _, ok := c.countries[country.Code]; !ok {
		c.order = append(c.order, country.Code)
	}
	c.countries[country.Code] = country
}

func (c *Collection) putInitial(country *Country) {
	c.Put(country)
	c.initial[country.Code] = struct{}{}
}

// Bound returns the bounding box of all geometry.
func (c *Collection) Bound() orb.Bound {
	var (
		b     orb.Bound
		first = true
	)
	for _, code := range c.order {
		shape := c.countries[code].Shape
		if len(shape) == 0 {
			continue
		}
		if first {
			b = shape.Bound()
			first = false
			continue
		}
		b = b.Union(shape.Bound())
	}
	return b
}
