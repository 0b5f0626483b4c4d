package entity

import "time"

// WebsiteFilter is the filter assigned to one domain key.
// An assignment whose FilterID is FilterNone explicitly suppresses the default;
// the absence of an assignment falls through to it.
type WebsiteFilter struct {
	FilterID  FilterID
	Settings  FilterSettings
	UpdatedAt time.Time
}

// NewWebsiteFilter creates an assignment with schema-complete settings.
func NewWebsiteFilter(id FilterID, settings FilterSettings) WebsiteFilter {
	wf := WebsiteFilter{
		FilterID:  id,
		UpdatedAt: time.Now(),
	}
	if id != FilterNone {
		wf.Settings = settings.WithDefaults(id)
	}
	return wf
}

// NoneFilter creates an explicit "no filter" assignment.
func NoneFilter() WebsiteFilter {
	return NewWebsiteFilter(FilterNone, nil)
}

// DefaultFilter is the filter applied to domains without an assignment.
type DefaultFilter struct {
	FilterID FilterID
	Settings FilterSettings
}

// NewDefaultFilter creates a default with schema-complete settings.
func NewDefaultFilter(id FilterID, settings FilterSettings) DefaultFilter {
	return DefaultFilter{
		FilterID: id,
		Settings: settings.WithDefaults(id),
	}
}

// SettingsSnapshot is one consistent read of every filter-relevant store key.
type SettingsSnapshot struct {
	WebsiteFilters map[string]WebsiteFilter
	Disabled       bool
	Default        *DefaultFilter
}

// Assignment returns the assignment stored for domainKey, or nil.
func (s SettingsSnapshot) Assignment(domainKey string) *WebsiteFilter {
	wf, ok := s.WebsiteFilters[domainKey]
	if !ok {
		return nil
	}
	return &wf
}

// Store keys of the persisted layout.
const (
	KeyWebsiteFilters    = "websiteFilters"
	KeyExtensionDisabled = "extensionDisabled"
	KeyExtensionEnabled  = "extensionEnabled" // legacy, inverted polarity
	KeyDefaultFilter     = "defaultFilter"
	KeyFilterSettings    = "filterSettings" // legacy global per-filter settings
)

// SettingsChange lists the store keys touched by one write.
type SettingsChange struct {
	Keys []string
}

// AffectsFilters reports whether the change can alter any resolved decision.
func (c SettingsChange) AffectsFilters() bool {
	for _, k := range c.Keys {
		switch k {
		case KeyWebsiteFilters, KeyExtensionDisabled, KeyExtensionEnabled, KeyDefaultFilter, KeyFilterSettings:
			return true
		}
	}
	return false
}
