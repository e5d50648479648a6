package domain

import "context"

//go:generate mockgen -source=collaborators.go -destination=mock_collaborators.go -package=domain

// OfferSearcher is the narrow contract with the flight-search provider: one
// query in, raw offers or an error out. Implementations own their transport,
// credentials and timeouts; the pipeline treats them as opaque.
type OfferSearcher interface {
	// SearchOffers runs one search call for a single date combination.
	SearchOffers(ctx context.Context, query SearchQuery) ([]RawOffer, error)
}

// PreferenceInterpreter is the narrow contract with the natural-language
// collaborator: free text in, a best-effort structured preference set out.
// Implementations may fail or return garbage; callers must degrade to
// DefaultPreferences rather than fail the search.
type PreferenceInterpreter interface {
	// InterpretPreferences extracts a preference set from free text.
	InterpretPreferences(ctx context.Context, freeText string) (Preferences, error)
}
