package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogRoutes(t *testing.T) {
	c := Default()
	routes := c.Routes()
	if len(routes) != 4 {
		t.Fatalf("expected 4 default routes, got %d", len(routes))
	}

	r, ok := c.Find(2)
	if !ok {
		t.Fatalf("route 2 should exist")
	}
	if r.From != "CALBAYOG" || r.To != "TARABUKAN" || r.Price != "₱ 60" {
		t.Fatalf("unexpected route 2: %+v", r)
	}
}

func TestFindUnknownRoute(t *testing.T) {
	c := Default()
	if _, ok := c.Find(99); ok {
		t.Fatalf("route 99 should not exist")
	}
	if _, ok := c.Find(0); ok {
		t.Fatalf("route 0 should not exist")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	body := `routes:
  - id: 7
    from: CALBAYOG
    to: OQUENDO
    duration: 30 mins
    price: "₱ 40"
    color: red
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if len(c.Routes()) != 1 {
		t.Fatalf("expected 1 route, got %d", len(c.Routes()))
	}
	r, ok := c.Find(7)
	if !ok {
		t.Fatalf("route 7 should exist")
	}
	if r.To != "OQUENDO" || r.Color != "red" {
		t.Fatalf("unexpected route: %+v", r)
	}
}

func TestLoadFileEmptyPathFallsBack(t *testing.T) {
	c, err := LoadFile("")
	if err != nil {
		t.Fatalf("empty path should not error: %v", err)
	}
	if len(c.Routes()) != 4 {
		t.Fatalf("expected default catalog, got %d routes", len(c.Routes()))
	}
}

func TestLoadFileRejectsEmptyCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	if err := os.WriteFile(path, []byte("routes: []\n"), 0o644); err != nil {
		t.Fatalf("write catalog file: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatalf("expected error for empty catalog")
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	c := Default()
	routes := c.Routes()
	routes[0].From = "MUTATED"

	again, _ := c.Find(1)
	if again.From != "CALBAYOG" {
		t.Fatalf("catalog mutated through Routes() copy: %+v", again)
	}
}
