package conversion

import (
	"strings"
	"testing"
)

func TestOutputFileName_EmbedsJobIDFragment(t *testing.T) {
	name := OutputFileName("site plan.osm", "a1b2c3d4-e5f6-7890-abcd-ef0123456789")

	if !strings.HasSuffix(name, OutputExt) {
		t.Fatalf("expected %s extension, got %q", OutputExt, name)
	}
	if !strings.Contains(name, "a1b2c3d4") {
		t.Fatalf("expected job id fragment in %q", name)
	}
	if strings.Contains(name, " ") {
		t.Fatalf("expected sanitized name, got %q", name)
	}
}

func TestOutputFileName_FallsBackWhenRequestedNameUnusable(t *testing.T) {
	name := OutputFileName("../../", "deadbeef")
	if !strings.HasPrefix(name, "conversion-") {
		t.Fatalf("expected fallback base name, got %q", name)
	}
}

func TestOutputFileName_DistinctJobsDistinctNames(t *testing.T) {
	a := OutputFileName("plan.osm", "11111111-aaaa")
	b := OutputFileName("plan.osm", "22222222-bbbb")
	if a == b {
		t.Fatalf("same input must not collide across jobs: %q", a)
	}
}

func TestNormalizeDownloadName_AcceptsPlainDXF(t *testing.T) {
	name, err := NormalizeDownloadName("plan-a1b2c3d4.dxf")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if name != "plan-a1b2c3d4.dxf" {
		t.Fatalf("unexpected name %q", name)
	}
}

func TestNormalizeDownloadName_RejectsBadNames(t *testing.T) {
	cases := []string{"", ".", "plan.pdf", "plan", "nested/dir/plan.dxf"}
	for _, raw := range cases {
		if _, err := NormalizeDownloadName(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNormalizeDownloadName_StripsTraversalPrefix(t *testing.T) {
	name, err := NormalizeDownloadName("../plan.dxf")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if name != "plan.dxf" {
		t.Fatalf("expected traversal-free name, got %q", name)
	}
}
