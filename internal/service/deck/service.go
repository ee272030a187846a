package deck

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
	svcErr "github.com/rishi048229/Shubh-vivah-app-sub002/internal/errors"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/metrics"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/repository"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// maxFetchesPerCall bounds provider round trips made while serving one call.
const maxFetchesPerCall = 3

// Service implements the swipe deck gRPC API on top of swipe.Controller.
// Each session is a controller bound to one user and one candidate provider.
type Service struct {
	appCtx       *app.AppContext
	decisionRepo *repository.DecisionRepository
	opts         swipe.Options
	sessions     *registry
	log          *slog.Logger

	api.UnimplementedDeckServiceServer
}

// NewDeckService creates the deck service with dependencies from AppContext.
func NewDeckService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:       appCtx,
		decisionRepo: repository.NewDecisionRepository(appCtx.DB),
		opts:         OptionsFromConfig(appCtx.Config),
		sessions:     newRegistry(),
		log:          appCtx.Logger.With("module", "deck"),
	}
}

// StartSession opens a deck for the user and fills it from the provider.
// A previous session of the same user is discarded.
func (s *Service) StartSession(ctx context.Context, req *api.StartSessionRequest) (*api.DeckResponse, error) {
	userID, err := strconv.ParseUint(req.UserID, 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	buf := &swipe.EventBuffer{}
	sess := &session{
		id:       uuid.NewString(),
		userID:   userID,
		events:   buf,
		ctrl:     swipe.NewController(s.opts, buf),
		provider: s.appCtx.Providers(userID),
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err := s.refill(ctx, sess); err != nil {
		s.log.Error("initial fetch failed", "user", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	if old := s.sessions.put(sess); old != nil {
		metrics.SessionClosed("deck")
	}
	metrics.SessionOpened("deck")
	s.log.Info("session started", "session", sess.id, "user", userID, "pending", sess.ctrl.Pending())

	return s.respond(ctx, sess, &api.DeckResponse{Accepted: true})
}

func (s *Service) GetState(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		return nil
	})
}

func (s *Service) BeginGesture(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		return sess.ctrl.BeginGesture()
	})
}

// Drag returns the card preview for one gesture sample.
func (s *Service) Drag(ctx context.Context, req *api.DragRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		p, err := sess.ctrl.Drag(req.Translation, req.Velocity)
		if err != nil {
			return err
		}
		resp.Preview = &p
		return nil
	})
}

// Release ends the gesture; past a threshold the active card is decided.
func (s *Service) Release(ctx context.Context, req *api.ReleaseRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		res, err := sess.ctrl.Release(req.Velocity)
		if err != nil {
			return err
		}
		if !res.Decided {
			metrics.Gesture("snap_back")
			return nil
		}
		metrics.Gesture(res.Decision.Kind.String())
		resp.Decision = &res.Decision
		resp.ExitOffset = &res.ExitOffset
		return nil
	})
}

func (s *Service) CancelGesture(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		if !sess.ctrl.CancelGesture() {
			return swipe.ErrNoGesture
		}
		return nil
	})
}

func (s *Service) Pass(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.decide(ctx, req.SessionID, swipe.Pass)
}

func (s *Service) Like(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.decide(ctx, req.SessionID, swipe.Like)
}

func (s *Service) SuperLike(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.decide(ctx, req.SessionID, swipe.SuperLike)
}

func (s *Service) decide(ctx context.Context, id string, kind swipe.DecisionKind) (*api.DeckResponse, error) {
	return s.with(ctx, id, func(sess *session, resp *api.DeckResponse) error {
		d, err := sess.ctrl.Decide(kind)
		if err != nil {
			return err
		}
		resp.Decision = &d
		exit := swipe.ExitOffset(kind, s.opts.CardWidth, s.opts.ScreenHeight)
		resp.ExitOffset = &exit
		return nil
	})
}

// Rewind undoes the last decision and removes it from storage.
func (s *Service) Rewind(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		d, err := sess.ctrl.Rewind()
		if err != nil {
			return err
		}
		resp.Decision = &d
		return nil
	})
}

func (s *Service) FinishExit(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	return s.with(ctx, req.SessionID, func(sess *session, resp *api.DeckResponse) error {
		sess.ctrl.FinishExit()
		return nil
	})
}

// EndSession drops the session. Decisions already made stay persisted.
func (s *Service) EndSession(ctx context.Context, req *api.SessionRequest) (*api.DeckResponse, error) {
	sess, ok := s.sessions.get(req.SessionID)
	if !ok {
		return nil, svcErr.Map(svcErr.ErrSessionNotFound)
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	// The session stays open until its last changes are stored.
	resp, err := s.respond(ctx, sess, &api.DeckResponse{Accepted: true})
	if err != nil {
		return nil, err
	}
	if _, ok := s.sessions.remove(req.SessionID); !ok {
		return nil, svcErr.Map(svcErr.ErrSessionNotFound)
	}
	metrics.SessionClosed("deck")
	s.log.Info("session ended", "session", sess.id, "user", sess.userID)
	return resp, nil
}

// with runs op on a locked session. Engine refusals come back as
// accepted=false; the deck is then topped up and pending events persisted.
func (s *Service) with(ctx context.Context, id string, op func(*session, *api.DeckResponse) error) (*api.DeckResponse, error) {
	sess, ok := s.sessions.get(id)
	if !ok {
		return nil, svcErr.Map(svcErr.ErrSessionNotFound)
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	resp := &api.DeckResponse{Accepted: true}
	if err := op(sess, resp); err != nil {
		if !isRefusal(err) {
			return nil, svcErr.Map(err)
		}
		resp.Accepted = false
		resp.Reason = err.Error()
		s.log.Debug("operation refused", "session", id, "reason", err)
	}

	if err := s.refill(ctx, sess); err != nil {
		// The deck still works with what it has; the next call retries.
		s.log.Warn("refill failed", "session", id, "err", err)
	}
	return s.respond(ctx, sess, resp)
}

// respond persists buffered events and attaches them with a state snapshot.
func (s *Service) respond(ctx context.Context, sess *session, resp *api.DeckResponse) (*api.DeckResponse, error) {
	events := sess.events.Drain()
	matched, handled, err := s.persist(ctx, sess, events)
	if err != nil {
		// Unstored changes stay queued and are retried on the next call.
		sess.events.Requeue(events[handled:])
		s.log.Error("persist failed", "session", sess.id, "pending_events", len(events)-handled, "err", err)
		return nil, svcErr.Map(err)
	}
	resp.Matched = matched
	resp.Events = events
	resp.Deck = sess.snapshot()
	return resp, nil
}

// refill asks the provider for more candidates while the deck runs low.
// An empty page marks the provider exhausted.
func (s *Service) refill(ctx context.Context, sess *session) error {
	for i := 0; i < maxFetchesPerCall && sess.ctrl.NeedsMore(); i++ {
		start := time.Now()
		batch, err := sess.provider.FetchMoreCandidates(ctx, sess.ctrl.ExcludeIDs())
		if err != nil {
			metrics.Fetch("error", time.Since(start))
			return err
		}
		if len(batch) == 0 {
			metrics.Fetch("empty", time.Since(start))
			sess.ctrl.ProviderExhausted()
			return nil
		}
		metrics.Fetch("ok", time.Since(start))

		before := sess.ctrl.Pending()
		err = sess.ctrl.Enqueue(batch...)
		var dup *swipe.DuplicateError
		switch {
		case errors.As(err, &dup):
			s.log.Warn("provider returned known candidates", "session", sess.id, "ids", dup.IDs)
		case err != nil:
			return err
		}
		if sess.ctrl.Pending() == before {
			// Nothing new came back; stop asking.
			sess.ctrl.ProviderExhausted()
			return nil
		}
	}
	return nil
}

// isRefusal reports engine errors that leave the deck unchanged.
func isRefusal(err error) bool {
	for _, target := range []error{
		swipe.ErrEmptyQueue,
		swipe.ErrNothingToRewind,
		swipe.ErrBusy,
		swipe.ErrNoGesture,
		swipe.ErrGestureInterrupted,
		swipe.ErrUnknownDecision,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func formatID(id uint64) string { return strconv.FormatUint(id, 10) }
