package site

import (
	"strings"
	"testing"

	"github.com/nothingbetterhealth/nbh-site/internal/catalog"
)

func TestBuildNav(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}

	nav := BuildNav(cat)
	if len(nav.Children) != len(cat.Navigation) {
		t.Fatalf("nav children = %d, want %d", len(nav.Children), len(cat.Navigation))
	}

	var locations *NavNode
	for _, n := range nav.Children {
		if n.Href == "/locations" {
			locations = n
		} else if len(n.Children) != 0 {
			t.Errorf("%s should have no dropdown, got %d children", n.Href, len(n.Children))
		}
	}
	if locations == nil {
		t.Fatal("no /locations entry in nav")
	}
	if len(locations.Children) != 5 {
		t.Fatalf("locations children = %d, want 5", len(locations.Children))
	}

	dc := locations.Children[0]
	if dc.Href != "/locations/dc" || !dc.Dot || dc.Note != "" {
		t.Errorf("dc child = %+v, want active entry for /locations/dc", dc)
	}
	fl := locations.Children[3]
	if fl.Href != "/locations/florida" || fl.Dot || fl.Note != "Coming Soon" {
		t.Errorf("florida child = %+v, want coming-soon entry", fl)
	}
}

func TestIsActive(t *testing.T) {
	tests := []struct {
		href, path string
		want       bool
	}{
		{"/", "/", true},
		{"/", "/locations", false},
		{"/locations", "/locations", true},
		{"/locations", "/locations/dc", true},
		{"/providers", "/locations", false},
		{"/faq", "/contact", false},
	}
	for _, tt := range tests {
		if got := IsActive(tt.href, tt.path); got != tt.want {
			t.Errorf("IsActive(%q, %q) = %v, want %v", tt.href, tt.path, got, tt.want)
		}
	}
}

func TestNavToHTMLActivePath(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	html := BuildNav(cat).ToHTML("/providers/ed-stern")

	if !strings.Contains(html, `<a href="/providers" class="active">`) {
		t.Error("providers link should be active on a provider profile")
	}
	if strings.Contains(html, `<a href="/" class="active">`) {
		t.Error("home link should only be active on /")
	}
	if !strings.Contains(html, `<span class="dropdown-note">Coming Soon</span>`) {
		t.Error("dropdown should mark coming-soon states")
	}
	if !strings.Contains(html, "District of Columbia") {
		t.Error("dropdown should list states")
	}
}

func TestNavMobileHTMLListsActiveStatesOnly(t *testing.T) {
	cat, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	html := BuildNav(cat).MobileHTML("/")

	if !strings.Contains(html, `href="/locations/maryland"`) {
		t.Error("mobile menu should link active states")
	}
	if strings.Contains(html, `href="/locations/florida"`) {
		t.Error("mobile menu should not link coming-soon states")
	}
}
