package conversion

import (
	"errors"
	"strings"
)

// PlanType is a named preset that fixes a bundle of conversion options.
type PlanType string

const (
	PlanKey      PlanType = "key-plan"
	PlanLocation PlanType = "location-plan"
)

// DefaultProjection is the target CRS used when a request omits one.
const DefaultProjection = "EPSG:3857"

var ErrUnknownPlanType = errors.New("unknown plan type")

// ParsePlanType validates a raw plan type selector. An empty value falls
// back to the key-plan preset.
func ParsePlanType(raw string) (PlanType, error) {
	switch PlanType(strings.TrimSpace(raw)) {
	case "", PlanKey:
		return PlanKey, nil
	case PlanLocation:
		return PlanLocation, nil
	default:
		return "", ErrUnknownPlanType
	}
}

// Options is the frozen bundle of converter settings for one job. It is
// derived once at submission and never changes afterwards.
type Options struct {
	PlanType         PlanType
	Projection       string
	UseColors        bool
	IncludeFootpaths bool
	DetailLevel      string
}

// OptionsForPlan derives the option bundle for a plan type. Key plans are a
// simplified monochrome overview without footpaths; location plans keep the
// full detail with colored layers.
func OptionsForPlan(plan PlanType, projection string) Options {
	projection = strings.TrimSpace(projection)
	if projection == "" {
		projection = DefaultProjection
	}

	switch plan {
	case PlanLocation:
		return Options{
			PlanType:         PlanLocation,
			Projection:       projection,
			UseColors:        true,
			IncludeFootpaths: true,
			DetailLevel:      "detailed",
		}
	default:
		return Options{
			PlanType:         PlanKey,
			Projection:       projection,
			UseColors:        false,
			IncludeFootpaths: false,
			DetailLevel:      "simplified",
		}
	}
}
