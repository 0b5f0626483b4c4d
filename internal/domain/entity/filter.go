package entity

// FilterID identifies a color filter effect.
// The set is closed: every value other than FilterNone has exactly one Catalog row.
type FilterID string

const (
	// FilterNone is the "no filter" sentinel. It suppresses the global default
	// for a domain and never appears in the catalog.
	FilterNone FilterID = "none"

	FilterRoseTint     FilterID = "rose-tint"
	FilterSunnyBrown   FilterID = "sunny-brown"
	FilterClassicGray  FilterID = "classic-gray"
	FilterEmeraldGreen FilterID = "emerald-green"
	FilterAmberVision  FilterID = "amber-vision"
	FilterSolarEclipse FilterID = "solar-eclipse"
)

// Setting keys shared across filters.
const (
	SettingIntensity     = "intensity"
	SettingExcludeImages = "excludeImages"
)

// FilterKind selects how a filter is rendered.
type FilterKind int

const (
	// KindTint multiplies a translucent color over the page.
	KindTint FilterKind = iota
	// KindInvert inverts page colors with a difference blend.
	KindInvert
)

// SettingType describes how a setting is edited and stored.
type SettingType string

const (
	SettingTypeSlider   SettingType = "slider"
	SettingTypeCheckbox SettingType = "checkbox"
)

// SettingSpec declares one key of a filter's settings schema.
type SettingSpec struct {
	Key     string
	Label   string
	Type    SettingType
	Min     float64
	Max     float64
	Step    float64
	Default any // float64 for sliders, bool for checkboxes
}

// Tint holds the overlay color of a KindTint filter.
// AlphaScale multiplies the normalized intensity to get the overlay alpha.
type Tint struct {
	R, G, B    int
	AlphaScale float64
}

// Filter is one row of the filter catalog.
type Filter struct {
	ID          FilterID
	Name        string
	Description string
	Kind        FilterKind
	Tint        Tint
	Schema      []SettingSpec
}

// DefaultSettings returns a fresh settings map holding every schema default.
func (f Filter) DefaultSettings() FilterSettings {
	s := make(FilterSettings, len(f.Schema))
	for _, spec := range f.Schema {
		s[spec.Key] = spec.Default
	}
	return s
}

// Spec returns the schema entry for key.
func (f Filter) Spec(key string) (SettingSpec, bool) {
	for _, spec := range f.Schema {
		if spec.Key == key {
			return spec, true
		}
	}
	return SettingSpec{}, false
}

func intensitySpec(def float64) SettingSpec {
	return SettingSpec{
		Key:     SettingIntensity,
		Label:   "Intensity",
		Type:    SettingTypeSlider,
		Min:     0,
		Max:     100,
		Step:    1,
		Default: def,
	}
}

var catalog = []Filter{
	{
		ID:          FilterRoseTint,
		Name:        "Rose Tint",
		Description: "A warm rose-colored overlay",
		Kind:        KindTint,
		Tint:        Tint{R: 255, G: 100, B: 150, AlphaScale: 0.8},
		Schema:      []SettingSpec{intensitySpec(40)},
	},
	{
		ID:          FilterSunnyBrown,
		Name:        "Sunny Brown",
		Description: "A warm sepia-toned overlay",
		Kind:        KindTint,
		Tint:        Tint{R: 180, G: 140, B: 80, AlphaScale: 0.7},
		Schema:      []SettingSpec{intensitySpec(45)},
	},
	{
		ID:          FilterClassicGray,
		Name:        "Classic Gray",
		Description: "A neutral gray overlay",
		Kind:        KindTint,
		Tint:        Tint{R: 116, G: 116, B: 116, AlphaScale: 0.8},
		Schema:      []SettingSpec{intensitySpec(60)},
	},
	{
		ID:          FilterEmeraldGreen,
		Name:        "Emerald Green",
		Description: "A cool emerald-tinted overlay",
		Kind:        KindTint,
		Tint:        Tint{R: 80, G: 180, B: 120, AlphaScale: 0.6},
		Schema:      []SettingSpec{intensitySpec(35)},
	},
	{
		ID:          FilterAmberVision,
		Name:        "Amber Vision",
		Description: "A warm amber-toned overlay",
		Kind:        KindTint,
		Tint:        Tint{R: 255, G: 180, B: 50, AlphaScale: 0.8},
		Schema:      []SettingSpec{intensitySpec(40)},
	},
	{
		ID:          FilterSolarEclipse,
		Name:        "Solar Eclipse",
		Description: "Inverts all colors",
		Kind:        KindInvert,
		Schema: []SettingSpec{
			intensitySpec(100),
			{
				Key:     SettingExcludeImages,
				Label:   "Exclude images and media",
				Type:    SettingTypeCheckbox,
				Default: true,
			},
		},
	},
}

// Catalog returns the filter catalog in display order.
// The returned slice is a copy; the catalog itself is immutable.
func Catalog() []Filter {
	out := make([]Filter, len(catalog))
	copy(out, catalog)
	return out
}

// LookupFilter returns the catalog row for id.
// FilterNone and unknown identifiers report false.
func LookupFilter(id FilterID) (Filter, bool) {
	for _, f := range catalog {
		if f.ID == id {
			return f, true
		}
	}
	return Filter{}, false
}

// ParseFilterID validates user input against the catalog and the none sentinel.
func ParseFilterID(s string) (FilterID, bool) {
	id := FilterID(s)
	if id == FilterNone {
		return id, true
	}
	if _, ok := LookupFilter(id); ok {
		return id, true
	}
	return "", false
}

// IsNone reports whether id is the none sentinel.
func (id FilterID) IsNone() bool {
	return id == FilterNone
}

// DisplayName returns the catalog name, "None" for the sentinel, or the raw id.
func (id FilterID) DisplayName() string {
	if id == FilterNone {
		return "None"
	}
	if f, ok := LookupFilter(id); ok {
		return f.Name
	}
	return string(id)
}

// DefaultSettings returns the catalog defaults for id, or nil when id has no row.
func (id FilterID) DefaultSettings() FilterSettings {
	f, ok := LookupFilter(id)
	if !ok {
		return nil
	}
	return f.DefaultSettings()
}
