package deck

import (
	"context"
	"strconv"
	"time"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/metrics"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// Published on the configured events channel for every committed or
// rewound decision.
type decisionEvent struct {
	Type        string    `json:"type"`
	SessionID   string    `json:"session_id"`
	ActorID     uint64    `json:"actor_id"`
	RecipientID uint64    `json:"recipient_id"`
	Kind        string    `json:"kind"`
	Sequence    uint64    `json:"sequence"`
	Matched     bool      `json:"matched,omitempty"`
	At          time.Time `json:"at"`
}

// persist writes committed and rewound decisions through to the database,
// refreshes cached like counters and publishes each change. It reports
// whether any committed like was mutual and how many events were fully
// handled; on error the rest must be retried.
//
// Candidates whose id is not a user id (mock profiles) are not stored.
func (s *Service) persist(ctx context.Context, sess *session, events []swipe.Event) (matched bool, handled int, err error) {
	for i, e := range events {
		if e.Type != swipe.EventDecisionCommitted && e.Type != swipe.EventRewound {
			continue
		}
		d := e.Decision
		if d == nil {
			continue
		}
		recipientID, err := strconv.ParseUint(d.CandidateID, 10, 64)
		if err != nil {
			s.log.Debug("skipping non-user candidate", "candidate", d.CandidateID)
			continue
		}

		out := decisionEvent{
			Type:        e.Type.String(),
			SessionID:   sess.id,
			ActorID:     sess.userID,
			RecipientID: recipientID,
			Kind:        d.Kind.String(),
			Sequence:    d.Sequence,
			At:          time.Now().UTC(),
		}

		switch e.Type {
		case swipe.EventDecisionCommitted:
			if err := s.decisionRepo.CreateOrUpdateDecision(ctx, sess.userID, recipientID, d.Kind, d.Sequence); err != nil {
				return matched, i, err
			}
			if d.Kind.Liked() {
				mutual, err := s.decisionRepo.HasLiked(ctx, recipientID, sess.userID)
				if err != nil {
					return matched, i, err
				}
				out.Matched = mutual
				matched = matched || mutual
			}
			metrics.Decision(d.Kind.String())

		case swipe.EventRewound:
			if err := s.decisionRepo.DeleteDecision(ctx, sess.userID, recipientID); err != nil {
				return matched, i, err
			}
			metrics.Rewind()
		}

		// A like moves the recipient's count; a pass can hide the recipient
		// from the actor's own likers.
		s.refreshLikes(ctx, recipientID, sess.userID)
		s.publish(ctx, out)
	}
	return matched, len(events), nil
}

// refreshLikes recomputes cached like counters from the database. Cache
// failures are logged only.
func (s *Service) refreshLikes(ctx context.Context, userIDs ...uint64) {
	if s.appCtx.RedisCache == nil {
		return
	}
	if err := s.appCtx.RedisCache.RefreshLikeCounts(ctx, s.decisionRepo, userIDs...); err != nil {
		s.log.Warn("like counter refresh failed", "users", userIDs, "err", err)
	}
}

func (s *Service) publish(ctx context.Context, e decisionEvent) {
	if s.appCtx.RedisCache == nil || s.appCtx.Config == nil || s.appCtx.Config.Redis.EventsChannel == "" {
		return
	}
	if err := s.appCtx.RedisCache.Publish(ctx, s.appCtx.Config.Redis.EventsChannel, e); err != nil {
		s.log.Warn("publish failed", "type", e.Type, "err", err)
	}
}
