package provider

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

//go:embed fixtures/profiles.json
var fixtureJSON []byte

// Fixtures returns a fresh copy of the bundled demo profiles.
func Fixtures() ([]swipe.CandidateProfile, error) {
	var out []swipe.CandidateProfile
	if err := json.Unmarshal(fixtureJSON, &out); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return out, nil
}

// Mock serves a fixed list of profiles after an artificial delay.
type Mock struct {
	profiles []swipe.CandidateProfile
	delay    time.Duration
	pageSize int
}

// NewMock serves profiles in order, pageSize at a time (all remaining when
// pageSize <= 0). A nil profiles slice loads the bundled fixtures.
func NewMock(profiles []swipe.CandidateProfile, delay time.Duration, pageSize int) (*Mock, error) {
	if profiles == nil {
		var err error
		if profiles, err = Fixtures(); err != nil {
			return nil, err
		}
	}
	return &Mock{profiles: profiles, delay: delay, pageSize: pageSize}, nil
}

// MockFactory hands every viewer the same mock.
func MockFactory(m *Mock) Factory {
	return func(uint64) Provider { return m }
}

func (m *Mock) FetchMoreCandidates(ctx context.Context, excludeIDs map[string]struct{}) ([]swipe.CandidateProfile, error) {
	if m.delay > 0 {
		timer := time.NewTimer(m.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	var out []swipe.CandidateProfile
	for _, p := range m.profiles {
		if _, skip := excludeIDs[p.ID]; skip {
			continue
		}
		out = append(out, p)
		if m.pageSize > 0 && len(out) == m.pageSize {
			break
		}
	}
	return out, nil
}
