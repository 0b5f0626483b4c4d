package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bnema/shades/internal/domain/entity"
)

// settingFlags holds the filter setting flags shared by site set and default set.
type settingFlags struct {
	intensity     float64
	excludeImages bool
}

func (s *settingFlags) register(fs *pflag.FlagSet) {
	fs.Float64Var(&s.intensity, "intensity", 0, "filter intensity (0-100)")
	fs.BoolVar(&s.excludeImages, "exclude-images", false, "keep images and media unfiltered (inversion filters)")
}

// overrides returns only the settings whose flags were given, or nil when none were.
func (s *settingFlags) overrides(fs *pflag.FlagSet, id entity.FilterID) (entity.FilterSettings, error) {
	out := entity.FilterSettings{}
	if fs.Changed("intensity") {
		if s.intensity < 0 || s.intensity > 100 {
			return nil, fmt.Errorf("intensity must be between 0 and 100, got %g", s.intensity)
		}
		out[entity.SettingIntensity] = s.intensity
	}
	if fs.Changed("exclude-images") {
		out[entity.SettingExcludeImages] = s.excludeImages
	}
	if len(out) == 0 {
		return nil, nil
	}

	f, ok := entity.LookupFilter(id)
	if !ok {
		return nil, fmt.Errorf("filter %s takes no settings", id)
	}
	for k := range out {
		if _, ok := f.Spec(k); !ok {
			return nil, fmt.Errorf("filter %s has no %s setting", id, k)
		}
	}
	return out, nil
}

// merge overlays overrides onto base.
func merge(base, overrides entity.FilterSettings) entity.FilterSettings {
	out := base.Clone()
	if out == nil {
		out = entity.FilterSettings{}
	}
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

func parseFilter(s string) (entity.FilterID, error) {
	id, ok := entity.ParseFilterID(s)
	if !ok {
		return "", fmt.Errorf("unknown filter %q (see 'shades filters')", s)
	}
	return id, nil
}
