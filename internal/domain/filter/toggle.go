package filter

import "github.com/bnema/shades/internal/domain/entity"

// MutationKind is the store write planned by a toggle.
type MutationKind int

const (
	// MutationNone leaves the store untouched.
	MutationNone MutationKind = iota
	// MutationSet writes Filter as the assignment of Domain.
	MutationSet
	// MutationRemove deletes the assignment of Domain.
	MutationRemove
)

func (k MutationKind) String() string {
	switch k {
	case MutationNone:
		return "none"
	case MutationSet:
		return "set"
	case MutationRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Mutation is a single-key change to the website filter assignments.
type Mutation struct {
	Kind   MutationKind
	Domain string
	Filter entity.WebsiteFilter
}

// IsNoop reports whether applying the mutation changes nothing.
func (m Mutation) IsNoop() bool {
	return m.Kind == MutationNone
}

// PlanToggleFilter plans the "toggle filter" shortcut for domain given its
// current decision. Active becomes an explicit none; an explicit none is
// removed so the domain falls back to the default. Suppressed is left alone.
//
// Applied twice starting from Active, the domain ends with no assignment.
func PlanToggleFilter(decision entity.Decision, domain string) Mutation {
	if domain == "" {
		return Mutation{Kind: MutationNone}
	}

	switch decision.Kind {
	case entity.DecisionActive:
		return Mutation{Kind: MutationSet, Domain: domain, Filter: entity.NoneFilter()}
	case entity.DecisionExplicitNone:
		return Mutation{Kind: MutationRemove, Domain: domain}
	default:
		return Mutation{Kind: MutationNone, Domain: domain}
	}
}

// PlanToggleSpecific plans a per-filter shortcut. When the decision already
// renders target the domain gets an explicit none, otherwise target is
// assigned with its catalog defaults. Callers gate on the disabled flag,
// since a Suppressed decision alone does not tell disabled from unconfigured.
func PlanToggleSpecific(decision entity.Decision, domain string, target entity.FilterID) Mutation {
	if domain == "" {
		return Mutation{Kind: MutationNone}
	}
	f, ok := entity.LookupFilter(target)
	if !ok {
		return Mutation{Kind: MutationNone, Domain: domain}
	}

	if decision.IsActive() && decision.FilterID == target {
		return Mutation{Kind: MutationSet, Domain: domain, Filter: entity.NoneFilter()}
	}

	return Mutation{
		Kind:   MutationSet,
		Domain: domain,
		Filter: entity.NewWebsiteFilter(target, f.DefaultSettings()),
	}
}
