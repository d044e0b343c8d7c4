// Package catalog holds the fixed route reference data. The catalog is built
// once at startup and injected read-only; booking rows copy its display
// fields at creation time, so editing the catalog never rewrites history.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RouteDefinition is one fixed van route. Duration and price are display
// strings, not computed values.
type RouteDefinition struct {
	ID       int    `json:"id" yaml:"id"`
	From     string `json:"from" yaml:"from"`
	To       string `json:"to" yaml:"to"`
	Duration string `json:"duration" yaml:"duration"`
	Price    string `json:"price" yaml:"price"`
	Color    string `json:"color" yaml:"color"`
}

// Catalog is an immutable list of routes.
type Catalog struct {
	routes []RouteDefinition
}

// Default returns the built-in Calbayog service routes.
func Default() Catalog {
	return Catalog{routes: []RouteDefinition{
		{ID: 1, From: "CALBAYOG", To: "PEÑA", Duration: "45 mins", Price: "₱ 55", Color: "blue"},
		{ID: 2, From: "CALBAYOG", To: "TARABUKAN", Duration: "1 hr", Price: "₱ 60", Color: "pink"},
		{ID: 3, From: "TARABUKAN", To: "CALBAYOG", Duration: "1 hr", Price: "₱ 60", Color: "orange"},
		{ID: 4, From: "PEÑA", To: "CALBAYOG", Duration: "45 mins", Price: "₱ 55", Color: "green"},
	}}
}

// New builds a catalog from the given routes.
func New(routes []RouteDefinition) Catalog {
	cp := make([]RouteDefinition, len(routes))
	copy(cp, routes)
	return Catalog{routes: cp}
}

// LoadFile reads a YAML route list. An empty path yields the default catalog.
func LoadFile(path string) (Catalog, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read catalog: %w", err)
	}

	var doc struct {
		Routes []RouteDefinition `yaml:"routes"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(doc.Routes) == 0 {
		return Catalog{}, fmt.Errorf("catalog %s defines no routes", path)
	}
	return New(doc.Routes), nil
}

// Routes returns a copy of every route, in declaration order.
func (c Catalog) Routes() []RouteDefinition {
	out := make([]RouteDefinition, len(c.routes))
	copy(out, c.routes)
	return out
}

// Find looks a route up by id.
func (c Catalog) Find(id int) (RouteDefinition, bool) {
	for _, r := range c.routes {
		if r.ID == id {
			return r, true
		}
	}
	return RouteDefinition{}, false
}
