package profile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/api"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/app"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
	svcErr "github.com/rishi048229/Shubh-vivah-app-sub002/internal/errors"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/metrics"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/repository"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/wizard"
)

type entry struct {
	mu     sync.Mutex
	userID uint64
	w      *wizard.Wizard
}

// Service implements the profile completion gRPC API. Wizards live in
// memory until completed or ended; a user holds at most one.
type Service struct {
	appCtx   *app.AppContext
	profiles *repository.ProfileRepository
	validate *validator.Validate

	mu      sync.RWMutex
	wizards map[string]*entry
	byUser  map[uint64]string

	api.UnimplementedProfileServiceServer
}

func NewProfileService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		profiles: repository.NewProfileRepository(appCtx.DB),
		validate: wizard.NewValidator(),
		wizards:  map[string]*entry{},
		byUser:   map[uint64]string{},
	}
}

// StartWizard opens a wizard for the user, prefilled from any existing
// profile row and the gender recorded at sign-up. A wizard the user left
// open is discarded.
func (s *Service) StartWizard(ctx context.Context, req *api.StartWizardRequest) (*api.WizardResponse, error) {
	userID, err := strconv.ParseUint(req.UserID, 10, 64)
	if err != nil || userID == 0 {
		return nil, svcErr.InvalidArgument("user_id must be a valid uint64")
	}

	existing, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		existing = nil
		var user db.User
		switch uerr := s.appCtx.DB.WithContext(ctx).First(&user, userID).Error; {
		case uerr == nil:
			existing = &db.Profile{Gender: user.Gender}
		case !errors.Is(uerr, gorm.ErrRecordNotFound):
			return nil, svcErr.Map(uerr)
		}
	} else if err != nil {
		return nil, svcErr.Map(err)
	}

	id := uuid.NewString()
	e := &entry{userID: userID, w: wizard.New(userID, existing, s.validate)}
	s.mu.Lock()
	old, replaced := s.byUser[userID]
	if replaced {
		delete(s.wizards, old)
	}
	s.wizards[id] = e
	s.byUser[userID] = id
	s.mu.Unlock()
	if replaced {
		metrics.SessionClosed("wizard")
		s.appCtx.Logger.Debug("wizard replaced", "wizard", old, "user", userID)
	}
	metrics.SessionOpened("wizard")

	s.appCtx.Logger.Debug("wizard started", "wizard", id, "user", userID)
	return respond(id, e.w, nil), nil
}

// SubmitStep validates the payload for the named step and advances.
// Validation failures come back as accepted=false with per-field errors.
func (s *Service) SubmitStep(ctx context.Context, req *api.SubmitStepRequest) (*api.WizardResponse, error) {
	return s.with(req.WizardID, func(e *entry) (*api.WizardResponse, error) {
		in, err := wizard.DecodeInput(wizard.Step(req.Step), req.Payload)
		if err != nil {
			return nil, svcErr.InvalidArgument(err.Error())
		}
		_, err = e.w.Submit(in)
		var verr *wizard.ValidationError
		switch {
		case errors.As(err, &verr):
			return respond(req.WizardID, e.w, verr), nil
		case err != nil:
			return refused(req.WizardID, e.w, err), nil
		}
		return respond(req.WizardID, e.w, nil), nil
	})
}

func (s *Service) Back(ctx context.Context, req *api.WizardRequest) (*api.WizardResponse, error) {
	return s.with(req.WizardID, func(e *entry) (*api.WizardResponse, error) {
		if _, err := e.w.Back(); err != nil {
			return refused(req.WizardID, e.w, err), nil
		}
		return respond(req.WizardID, e.w, nil), nil
	})
}

// Complete saves the profile and closes the wizard.
func (s *Service) Complete(ctx context.Context, req *api.WizardRequest) (*api.WizardResponse, error) {
	resp, err := s.with(req.WizardID, func(e *entry) (*api.WizardResponse, error) {
		p, err := e.w.Complete(ctx, s.profiles)
		if errors.Is(err, wizard.ErrNotCompleted) {
			return refused(req.WizardID, e.w, err), nil
		}
		if err != nil {
			s.appCtx.Logger.Error("profile save failed", "user", e.userID, "err", err)
			return nil, svcErr.Map(err)
		}
		resp := respond(req.WizardID, e.w, nil)
		resp.Profile = &api.ProfileSummary{
			UserID:      strconv.FormatUint(p.UserID, 10),
			FullName:    p.FullName,
			Gender:      p.Gender,
			City:        p.City,
			Religion:    p.Religion,
			CompletedAt: p.CompletedAt,
		}
		return resp, nil
	})
	if err == nil && resp.Profile != nil {
		if s.drop(req.WizardID) {
			metrics.SessionClosed("wizard")
		}
		s.appCtx.Logger.Info("profile completed", "user", resp.Profile.UserID)
	}
	return resp, err
}

// EndWizard abandons a wizard without saving anything.
func (s *Service) EndWizard(ctx context.Context, req *api.WizardRequest) (*api.WizardResponse, error) {
	resp, err := s.with(req.WizardID, func(e *entry) (*api.WizardResponse, error) {
		return respond(req.WizardID, e.w, nil), nil
	})
	if err != nil {
		return nil, err
	}
	if !s.drop(req.WizardID) {
		return nil, svcErr.Map(fmt.Errorf("wizard %q: %w", req.WizardID, svcErr.ErrSessionNotFound))
	}
	metrics.SessionClosed("wizard")
	s.appCtx.Logger.Debug("wizard ended", "wizard", req.WizardID)
	return resp, nil
}

// Open reports how many wizards are held in memory.
func (s *Service) Open() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.wizards)
}

// drop forgets a wizard, reporting whether it was still held.
func (s *Service) drop(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.wizards[id]
	if !ok {
		return false
	}
	delete(s.wizards, id)
	if s.byUser[e.userID] == id {
		delete(s.byUser, e.userID)
	}
	return true
}

func (s *Service) with(id string, fn func(*entry) (*api.WizardResponse, error)) (*api.WizardResponse, error) {
	s.mu.RLock()
	e, ok := s.wizards[id]
	s.mu.RUnlock()
	if !ok {
		return nil, svcErr.Map(fmt.Errorf("wizard %q: %w", id, svcErr.ErrSessionNotFound))
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

func respond(id string, w *wizard.Wizard, verr *wizard.ValidationError) *api.WizardResponse {
	visited := w.Visited()
	resp := &api.WizardResponse{
		WizardID: id,
		Step:     string(w.Current()),
		Visited:  make([]string, 0, len(visited)),
		Accepted: verr == nil,
	}
	for _, st := range visited {
		resp.Visited = append(resp.Visited, string(st))
	}
	if verr != nil {
		resp.Reason = verr.Error()
		resp.Errors = verr.Fields
	}
	return resp
}

func refused(id string, w *wizard.Wizard, err error) *api.WizardResponse {
	resp := respond(id, w, nil)
	resp.Accepted = false
	resp.Reason = err.Error()
	return resp
}
