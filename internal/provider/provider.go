// Package provider supplies batches of candidate profiles to a swipe deck.
package provider

import (
	"context"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// Provider fetches the next batch of candidates, skipping every id in
// excludeIDs. An empty batch with a nil error means the source is exhausted.
type Provider interface {
	FetchMoreCandidates(ctx context.Context, excludeIDs map[string]struct{}) ([]swipe.CandidateProfile, error)
}

// Factory builds a Provider bound to one viewer.
type Factory func(viewerID uint64) Provider
