package settingsstore

import (
	"bytes"
	"fmt"
	"time"

	"github.com/bnema/shades/internal/domain/entity"
	domainurl "github.com/bnema/shades/internal/domain/url"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storedWebsiteFilter is one entry of the websiteFilters map.
// Settings is absent in the legacy layout, where filterSettings holds them per filter.
type storedWebsiteFilter struct {
	FilterID  string         `json:"filterId"`
	Settings  map[string]any `json:"settings,omitempty"`
	UpdatedAt int64          `json:"updatedAt,omitempty"` // unix milliseconds
}

type storedDefault struct {
	FilterID string         `json:"filterId"`
	Settings map[string]any `json:"settings,omitempty"`
}

// legacySettings is the global filterSettings map: filter id -> settings.
type legacySettings map[string]map[string]any

func decodeLegacySettings(raw []byte) (legacySettings, error) {
	if isNull(raw) {
		return nil, nil
	}
	var ls legacySettings
	if err := json.Unmarshal(raw, &ls); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", entity.KeyFilterSettings, err)
	}
	return ls, nil
}

func (ls legacySettings) forFilter(id entity.FilterID) entity.FilterSettings {
	if s, ok := ls[string(id)]; ok {
		return entity.FilterSettings(s)
	}
	return nil
}

// decodeWebsiteFilters reads the assignments map, filling missing settings from
// the legacy map. Entries carrying updatedAt were written under a domain key
// and are kept verbatim. Legacy entries have no updatedAt and are keyed by raw
// hostname, so their key is derived here; on a collision they lose to any
// stamped entry, and between two legacy entries the bare key wins.
func decodeWebsiteFilters(raw []byte, legacy legacySettings) (map[string]entity.WebsiteFilter, error) {
	out := make(map[string]entity.WebsiteFilter)
	if isNull(raw) {
		return out, nil
	}

	var stored map[string]storedWebsiteFilter
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", entity.KeyWebsiteFilters, err)
	}

	for domain, sf := range stored {
		key := domain
		if sf.UpdatedAt <= 0 {
			key = domainurl.DomainKeyFromInput(domain)
		}
		if key == "" || sf.FilterID == "" {
			continue
		}
		wf := toWebsiteFilter(sf, legacy)
		if prev, ok := out[key]; ok {
			if wf.UpdatedAt.Before(prev.UpdatedAt) {
				continue
			}
			if wf.UpdatedAt.Equal(prev.UpdatedAt) && domain != key {
				continue
			}
		}
		out[key] = wf
	}
	return out, nil
}

func toWebsiteFilter(sf storedWebsiteFilter, legacy legacySettings) entity.WebsiteFilter {
	id := entity.FilterID(sf.FilterID)
	wf := entity.WebsiteFilter{FilterID: id}
	if sf.UpdatedAt > 0 {
		wf.UpdatedAt = time.UnixMilli(sf.UpdatedAt)
	}
	if id == entity.FilterNone {
		return wf
	}

	settings := entity.FilterSettings(sf.Settings)
	if settings == nil {
		settings = legacy.forFilter(id)
	}
	wf.Settings = settings.WithDefaults(id)
	return wf
}

func encodeWebsiteFilters(filters map[string]entity.WebsiteFilter) ([]byte, error) {
	stored := make(map[string]storedWebsiteFilter, len(filters))
	for domain, wf := range filters {
		sf := storedWebsiteFilter{
			FilterID: string(wf.FilterID),
			Settings: wf.Settings,
		}
		if !wf.UpdatedAt.IsZero() {
			sf.UpdatedAt = wf.UpdatedAt.UnixMilli()
		}
		stored[domain] = sf
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", entity.KeyWebsiteFilters, err)
	}
	return data, nil
}

// decodeDefault accepts null, an object, or the legacy bare filter id.
// A "none" default is treated as no default.
func decodeDefault(raw []byte, legacy legacySettings) (*entity.DefaultFilter, error) {
	if isNull(raw) {
		return nil, nil
	}

	var sd storedDefault
	switch bytes.TrimSpace(raw)[0] {
	case '"':
		if err := json.Unmarshal(raw, &sd.FilterID); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entity.KeyDefaultFilter, err)
		}
	default:
		if err := json.Unmarshal(raw, &sd); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", entity.KeyDefaultFilter, err)
		}
	}

	id := entity.FilterID(sd.FilterID)
	if id == "" || id == entity.FilterNone {
		return nil, nil
	}
	settings := entity.FilterSettings(sd.Settings)
	if settings == nil {
		settings = legacy.forFilter(id)
	}
	def := entity.NewDefaultFilter(id, settings)
	return &def, nil
}

func encodeDefault(def entity.DefaultFilter) ([]byte, error) {
	data, err := json.Marshal(storedDefault{FilterID: string(def.FilterID), Settings: def.Settings})
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", entity.KeyDefaultFilter, err)
	}
	return data, nil
}

func decodeBool(key string, raw []byte) (bool, error) {
	if isNull(raw) {
		return false, nil
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return b, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
