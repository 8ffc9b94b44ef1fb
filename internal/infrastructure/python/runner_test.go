package python

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	domain "osmcad/internal/domain/conversion"
)

func TestBuildArgs_KeyPlanAddsNoColors(t *testing.T) {
	opts := domain.OptionsForPlan(domain.PlanKey, "")
	args := buildArgs("scripts/osm_to_dxf.py", "in.osm", "out.dxf", "out.stats.json", opts)

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"scripts/osm_to_dxf.py in.osm",
		"-o out.dxf",
		"--projection EPSG:3857",
		"--plan-type key-plan",
		"--no-colors",
		"--stats-output out.stats.json",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in %q", want, joined)
		}
	}
}

func TestBuildArgs_LocationPlanKeepsColors(t *testing.T) {
	opts := domain.OptionsForPlan(domain.PlanLocation, "EPSG:25832")
	args := buildArgs("s.py", "in.osm", "out.dxf", "", opts)

	joined := strings.Join(args, " ")
	if strings.Contains(joined, "--no-colors") {
		t.Fatalf("location-plan must keep colors: %q", joined)
	}
	if strings.Contains(joined, "--stats-output") {
		t.Fatalf("empty stats path must omit the flag: %q", joined)
	}
	if !strings.Contains(joined, "--projection EPSG:25832") {
		t.Fatalf("expected requested projection in %q", joined)
	}
}

func TestLocate_NoCandidateAvailable(t *testing.T) {
	r := &Runner{Interpreters: []string{"osmcad-no-such-interpreter"}}
	if name, ok := r.Locate(); ok {
		t.Fatalf("expected no interpreter, got %q", name)
	}
}

func TestLocate_SkipsToFirstWorkingCandidate(t *testing.T) {
	r := &Runner{Interpreters: []string{"osmcad-no-such-interpreter", "true"}}
	name, ok := r.Locate()
	if !ok || name != "true" {
		t.Fatalf("expected fallback candidate, got %q/%v", name, ok)
	}
}

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "converter.sh")
	if err := os.WriteFile(path, []byte(body), 0o755); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	return path
}

func TestRun_StreamsStdout(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\necho 'Parsing OSM data...'\necho 'Generating DXF...'\n")
	r := NewRunner(script)

	var lines []string
	err := r.Run(context.Background(), "sh", "in.osm", "out.dxf", "", domain.OptionsForPlan(domain.PlanKey, ""), func(chunk string) {
		lines = append(lines, chunk)
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 output chunks, got %d: %q", len(lines), lines)
	}
	if !strings.Contains(lines[0], "Parsing") || !strings.Contains(lines[1], "Generating") {
		t.Fatalf("unexpected output order: %q", lines)
	}
}

func TestRun_NonZeroExitCarriesStderr(t *testing.T) {
	script := writeScript(t, "#!/bin/sh\necho 'bad geometry' >&2\nexit 1\n")
	r := NewRunner(script)

	err := r.Run(context.Background(), "sh", "in.osm", "out.dxf", "", domain.OptionsForPlan(domain.PlanKey, ""), nil)
	if err == nil {
		t.Fatalf("expected error for non-zero exit")
	}
	if !strings.Contains(err.Error(), "bad geometry") {
		t.Fatalf("expected stderr in error, got %v", err)
	}
}
