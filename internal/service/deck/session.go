package deck

import (
	"sync"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/provider"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/swipe"
)

// session is one user's swipe deck. mu serialises every call so the
// controller only ever sees one caller.
type session struct {
	mu       sync.Mutex
	id       string
	userID   uint64
	ctrl     *swipe.Controller
	events   *swipe.EventBuffer
	provider provider.Provider
}

// OptionsFromConfig builds controller options from the swipe config section.
func OptionsFromConfig(cfg *config.Config) swipe.Options {
	opts := swipe.DefaultOptions()
	if cfg == nil {
		return opts
	}
	if cfg.Swipe.CardWidth > 0 {
		opts.CardWidth = cfg.Swipe.CardWidth
	}
	if cfg.Swipe.ScreenHeight > 0 {
		opts.ScreenHeight = cfg.Swipe.ScreenHeight
	}
	opts.Thresholds = swipe.DefaultThresholds(opts.CardWidth)
	if cfg.Swipe.VelocityThreshold > 0 {
		opts.Thresholds.Velocity = cfg.Swipe.VelocityThreshold
	}
	if cfg.Swipe.LowWatermark >= 0 {
		opts.LowWatermark = cfg.Swipe.LowWatermark
	}
	opts.AnimateExits = cfg.Swipe.AnimateExits
	return opts
}

func (s *session) snapshot() *api.DeckState {
	st := &api.DeckState{
		SessionID: s.id,
		UserID:    formatID(s.userID),
		State:     s.ctrl.State().String(),
		Pending:   s.ctrl.Pending(),
		CanRewind: s.ctrl.CanRewind(),
		Exhausted: s.ctrl.Exhausted(),
		History:   s.ctrl.History(),
	}
	if p, ok := s.ctrl.Active(); ok {
		st.Active = &p
	}
	if p, ok := s.ctrl.Next(); ok {
		st.Next = &p
	}
	return st
}

// registry indexes live sessions by id and by user. A user holds at most
// one session.
type registry struct {
	mu     sync.RWMutex
	byID   map[string]*session
	byUser map[uint64]string
}

func newRegistry() *registry {
	return &registry{byID: map[string]*session{}, byUser: map[uint64]string{}}
}

// put stores s and returns the session it replaced, if any.
func (r *registry) put(s *session) *session {
	r.mu.Lock()
	defer r.mu.Unlock()
	var old *session
	if id, ok := r.byUser[s.userID]; ok {
		old = r.byID[id]
		delete(r.byID, id)
	}
	r.byID[s.id] = s
	r.byUser[s.userID] = s.id
	return old
}

func (r *registry) get(id string) (*session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	return s, ok
}

func (r *registry) remove(id string) (*session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	delete(r.byID, id)
	if r.byUser[s.userID] == id {
		delete(r.byUser, s.userID)
	}
	return s, true
}
