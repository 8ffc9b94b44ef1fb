package conversion

import "testing"

func TestParsePlanType_DefaultsToKeyPlan(t *testing.T) {
	plan, err := ParsePlanType("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if plan != PlanKey {
		t.Fatalf("expected key-plan default, got %q", plan)
	}
}

func TestParsePlanType_RejectsUnknown(t *testing.T) {
	if _, err := ParsePlanType("blueprint"); err == nil {
		t.Fatalf("expected error for unknown plan type")
	}
}

func TestOptionsForPlan_KeyPlanIsSimplifiedMonochrome(t *testing.T) {
	opts := OptionsForPlan(PlanKey, "")

	if opts.PlanType != PlanKey {
		t.Fatalf("unexpected plan type %q", opts.PlanType)
	}
	if opts.UseColors {
		t.Fatalf("key-plan must be monochrome")
	}
	if opts.IncludeFootpaths {
		t.Fatalf("key-plan must exclude footpaths")
	}
	if opts.DetailLevel != "simplified" {
		t.Fatalf("unexpected detail level %q", opts.DetailLevel)
	}
	if opts.Projection != DefaultProjection {
		t.Fatalf("expected default projection, got %q", opts.Projection)
	}
}

func TestOptionsForPlan_LocationPlanIsDetailed(t *testing.T) {
	opts := OptionsForPlan(PlanLocation, "EPSG:25832")

	if !opts.UseColors || !opts.IncludeFootpaths {
		t.Fatalf("location-plan must keep colors and footpaths: %+v", opts)
	}
	if opts.DetailLevel != "detailed" {
		t.Fatalf("unexpected detail level %q", opts.DetailLevel)
	}
	if opts.Projection != "EPSG:25832" {
		t.Fatalf("expected requested projection, got %q", opts.Projection)
	}
}
