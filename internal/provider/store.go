package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/matching"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/repository"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// ErrViewerNotFound is returned when the viewer has no profile row.
var ErrViewerNotFound = errors.New("viewer profile not found")

// Store ranks database profiles for a single viewer.
type Store struct {
	profiles *repository.ProfileRepository
	viewerID uint64
	pageSize int
	now      func() time.Time
	log      *slog.Logger
}

// NewStore binds a Store to viewerID. pageSize <= 0 returns every match.
func NewStore(profiles *repository.ProfileRepository, viewerID uint64, pageSize int, log *slog.Logger) *Store {
	return &Store{
		profiles: profiles,
		viewerID: viewerID,
		pageSize: pageSize,
		now:      time.Now,
		log:      log,
	}
}

// StoreFactory builds a Store per viewer over the same database.
func StoreFactory(database *gorm.DB, pageSize int, log *slog.Logger) Factory {
	repo := repository.NewProfileRepository(database)
	return func(viewerID uint64) Provider {
		return NewStore(repo, viewerID, pageSize, log)
	}
}

// FetchMoreCandidates loads opposite-gender profiles the viewer has not
// decided on, drops anything scoring below matching.MinScore and returns the
// best page ordered by score, then user id.
func (s *Store) FetchMoreCandidates(ctx context.Context, excludeIDs map[string]struct{}) ([]swipe.CandidateProfile, error) {
	viewer, err := s.profiles.GetByUserID(ctx, s.viewerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %d", ErrViewerNotFound, s.viewerID)
	}
	if err != nil {
		return nil, err
	}

	exclude := make([]uint64, 0, len(excludeIDs))
	for id := range excludeIDs {
		n, err := strconv.ParseUint(id, 10, 64)
		if err != nil {
			continue // not one of ours
		}
		exclude = append(exclude, n)
	}

	rows, err := s.profiles.Candidates(ctx, s.viewerID, viewer.Gender, exclude, 0)
	if err != nil {
		return nil, err
	}

	now := s.now()
	self := traits(viewer)
	type scored struct {
		row   db.Profile
		score int
	}
	ranked := make([]scored, 0, len(rows))
	for _, row := range rows {
		score := matching.Score(self, traits(&row), now)
		if score < matching.MinScore {
			continue
		}
		ranked = append(ranked, scored{row: row, score: score})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].row.UserID < ranked[j].row.UserID
	})
	if s.pageSize > 0 && len(ranked) > s.pageSize {
		ranked = ranked[:s.pageSize]
	}

	out := make([]swipe.CandidateProfile, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, ToCandidate(&r.row, r.score, now))
	}
	if s.log != nil {
		s.log.Debug("candidates fetched", "viewer", s.viewerID, "scanned", len(rows), "returned", len(out))
	}
	return out, nil
}

// ToCandidate converts a profile row into a card.
func ToCandidate(p *db.Profile, score int, now time.Time) swipe.CandidateProfile {
	age := 0
	if p.DateOfBirth != nil {
		age = matching.Age(*p.DateOfBirth, now)
	}
	return swipe.CandidateProfile{
		ID: strconv.FormatUint(p.UserID, 10),
		Attributes: swipe.Attributes{
			Name:           p.FullName,
			Age:            age,
			City:           p.City,
			Profession:     strings.TrimSpace(p.Occupation),
			PhotoURL:       p.PhotoURL,
			MatchScore:     score,
			Premium:        p.Premium,
			KundaliMatched: p.KundaliMatched,
			Bio:            p.AboutMe,
		},
	}
}

func traits(p *db.Profile) matching.Traits {
	return matching.Traits{DateOfBirth: p.DateOfBirth, City: p.City, Religion: p.Religion}
}
