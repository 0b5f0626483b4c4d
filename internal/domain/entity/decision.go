package entity

import "fmt"

// DecisionKind is the outcome class of filter resolution.
type DecisionKind int

const (
	// DecisionSuppressed renders nothing: extension disabled, or nothing configured.
	DecisionSuppressed DecisionKind = iota
	// DecisionExplicitNone renders nothing because the domain opted out.
	DecisionExplicitNone
	// DecisionActive renders FilterID with Settings.
	DecisionActive
)

// String returns a human-readable representation of the decision kind.
func (k DecisionKind) String() string {
	switch k {
	case DecisionSuppressed:
		return "suppressed"
	case DecisionExplicitNone:
		return "explicit-none"
	case DecisionActive:
		return "active"
	default:
		return "unknown"
	}
}

// Decision is the single effective filter for a domain.
type Decision struct {
	Kind     DecisionKind
	FilterID FilterID
	Settings FilterSettings
	// FromDefault is set when an Active decision comes from the global default.
	FromDefault bool
}

// Suppressed returns the render-nothing decision.
func Suppressed() Decision {
	return Decision{Kind: DecisionSuppressed}
}

// ExplicitNone returns the domain opt-out decision.
func ExplicitNone() Decision {
	return Decision{Kind: DecisionExplicitNone, FilterID: FilterNone}
}

// Active returns a decision rendering id with settings.
func Active(id FilterID, settings FilterSettings) Decision {
	return Decision{Kind: DecisionActive, FilterID: id, Settings: settings}
}

// IsActive reports whether a filter is rendered.
func (d Decision) IsActive() bool {
	return d.Kind == DecisionActive
}

func (d Decision) String() string {
	if d.Kind != DecisionActive {
		return d.Kind.String()
	}
	src := "site"
	if d.FromDefault {
		src = "default"
	}
	return fmt.Sprintf("active(%s, intensity=%g, %s)", d.FilterID, d.Settings.Intensity(), src)
}
