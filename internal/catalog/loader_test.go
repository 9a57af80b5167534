package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if c.Version == "" {
		t.Error("catalogue version is empty")
	}
	if got := len(c.Territories); got != 3 {
		t.Errorf("territories = %d, want 3", got)
	}
	if got := len(c.Dimensions); got != 15 {
		t.Errorf("dimensions = %d, want 15", got)
	}
	if got := len(c.Signatures); got != 12 {
		t.Errorf("signatures = %d, want 12", got)
	}

	// 3 territories partition the 15 dimensions, 5 each
	for _, terr := range c.Territories {
		if got := len(c.DimensionsOf(terr.ID)); got != 5 {
			t.Errorf("territory %q has %d dimensions, want 5", terr.ID, got)
		}
	}

	// exactly one IM-flag signature
	imSigs := 0
	for _, sig := range c.Signatures {
		if sig.IMFlag {
			imSigs++
		}
	}
	if imSigs != 1 {
		t.Errorf("IM-flag signatures = %d, want 1", imSigs)
	}
}

func TestEmbeddedItemBankShape(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	perDim := make(map[string]map[ItemKind]int)
	impression := 0
	for _, it := range c.Items {
		if it.Kind == KindImpression {
			impression++
			continue
		}
		if perDim[it.Dimension] == nil {
			perDim[it.Dimension] = make(map[ItemKind]int)
		}
		perDim[it.Dimension][it.Kind]++
	}

	want := map[ItemKind]int{KindBehavioral: 5, KindSituational: 1, KindMirror: 1}
	for _, d := range c.Dimensions {
		if diff := cmp.Diff(want, perDim[d.ID]); diff != "" {
			t.Errorf("item shape for %q mismatch (-want +got):\n%s", d.ID, diff)
		}
	}
	if impression != 6 {
		t.Errorf("impression items = %d, want 6", impression)
	}

	// the reverse-item rule: the per-item flag decides, and the shipped bank
	// varies both count (1-2 per dimension) and position
	for _, d := range c.Dimensions {
		reverse := 0
		for _, it := range c.Items {
			if it.Dimension == d.ID && it.Kind == KindBehavioral && it.Direction == Reverse {
				reverse++
			}
		}
		if reverse < 1 || reverse > 2 {
			t.Errorf("dimension %q has %d reverse items, want 1-2", d.ID, reverse)
		}
	}
}

func TestLookupHelpers(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	it := c.ItemByID("sa-b2")
	if it == nil {
		t.Fatal("ItemByID(sa-b2) = nil")
	}
	if it.Direction != Reverse || it.Dimension != "self_awareness" {
		t.Errorf("sa-b2 = %+v, want reverse self_awareness item", it)
	}
	if c.ItemByID("nope") != nil {
		t.Error("ItemByID(nope) should be nil")
	}
	if c.DimensionByID("resilience") == nil {
		t.Error("DimensionByID(resilience) = nil")
	}

	labelTests := []struct {
		pct  int
		want string
	}{
		{0, "Critical gap"},
		{20, "Critical gap"},
		{21, "Early development"},
		{50, "Building"},
		{80, "Strong"},
		{100, "Mastery"},
	}
	for _, tt := range labelTests {
		if got := c.LabelFor(tt.pct); got != tt.want {
			t.Errorf("LabelFor(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}

	severityTests := []struct {
		abs  int
		want string
	}{
		{0, "negligible"},
		{10, "negligible"},
		{11, "moderate"},
		{35, "significant"},
		{70, "critical"},
	}
	for _, tt := range severityTests {
		if got := c.SeverityFor(tt.abs); got != tt.want {
			t.Errorf("SeverityFor(%d) = %q, want %q", tt.abs, got, tt.want)
		}
	}

	// the blind-spot table is its own scale, not the dimension table
	if got := c.BlindSpotLabelFor(5); got != "Aligned self-view" {
		t.Errorf("BlindSpotLabelFor(5) = %q", got)
	}
	if got := c.BlindSpotLabelFor(50); got != "Severe perception gap" {
		t.Errorf("BlindSpotLabelFor(50) = %q", got)
	}
}

func TestLoadFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, defaultCatalogYAML, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fromFile, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	embedded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	opts := cmp.Options{cmp.AllowUnexported(Catalog{}), cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".itemIndex" || p.Last().String() == ".dimIndex"
	}, cmp.Ignore())}
	if diff := cmp.Diff(embedded, fromFile, opts); diff != "" {
		t.Errorf("file catalogue differs from embedded (-embedded +file):\n%s", diff)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile on a missing path should fail")
	}
}
