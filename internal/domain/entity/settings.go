package entity

// FilterSettings maps setting keys to values (float64 or bool).
// Values only have meaning against the schema of a specific FilterID.
type FilterSettings map[string]any

// Intensity returns the numeric intensity, or 0 when absent or not numeric.
func (s FilterSettings) Intensity() float64 {
	v, _ := toFloat(s[SettingIntensity])
	return v
}

// Bool returns a boolean setting, false when absent or not a bool.
func (s FilterSettings) Bool(key string) bool {
	b, _ := s[key].(bool)
	return b
}

// Number returns a numeric setting.
func (s FilterSettings) Number(key string) (float64, bool) {
	return toFloat(s[key])
}

// Clone returns a shallow copy. A nil receiver yields nil.
func (s FilterSettings) Clone() FilterSettings {
	if s == nil {
		return nil
	}
	out := make(FilterSettings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// WithDefaults returns a copy of s completed against id's schema:
// missing or mistyped keys take the schema default and sliders are clamped.
// Keys outside the schema are kept untouched. For ids without a catalog row
// the copy is returned as is.
func (s FilterSettings) WithDefaults(id FilterID) FilterSettings {
	f, ok := LookupFilter(id)
	if !ok {
		return s.Clone()
	}

	out := s.Clone()
	if out == nil {
		out = make(FilterSettings, len(f.Schema))
	}

	for _, spec := range f.Schema {
		switch spec.Type {
		case SettingTypeSlider:
			v, ok := toFloat(out[spec.Key])
			if !ok {
				out[spec.Key] = spec.Default
				continue
			}
			out[spec.Key] = clamp(v, spec.Min, spec.Max)
		case SettingTypeCheckbox:
			if _, ok := out[spec.Key].(bool); !ok {
				out[spec.Key] = spec.Default
			}
		}
	}
	return out
}

// Equal reports whether both maps hold the same keys and values.
func (s FilterSettings) Equal(other FilterSettings) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok {
			return false
		}
		if fv, isNum := toFloat(v); isNum {
			fo, otherNum := toFloat(ov)
			if !otherNum || fv != fo {
				return false
			}
			continue
		}
		if v != ov {
			return false
		}
	}
	return true
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	default:
		return 0, false
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
