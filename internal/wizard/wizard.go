package wizard

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
)

var (
	ErrAtFirstStep  = errors.New("already at the first step")
	ErrWrongStep    = errors.New("input does not belong to the current step")
	ErrUnknownStep  = errors.New("unknown wizard step")
	ErrNotCompleted = errors.New("profile wizard is not completed")
)

// ProfileSaver persists the finished profile.
type ProfileSaver interface {
	Save(ctx context.Context, p *db.Profile) error
}

// Form is the data collected so far.
type Form struct {
	Terms     TermsInput
	Gender    GenderInput
	Basic     BasicInput
	Religious ReligiousInput
	Education EducationInput
	Family    FamilyInput
	Lifestyle LifestyleInput
}

// Wizard walks one user through the completion steps. It holds local form
// state only; nothing is written until Complete.
type Wizard struct {
	userID   uint64
	base     db.Profile
	form     Form
	history  []Step
	skip     map[Step]bool
	validate *validator.Validate
	now      func() time.Time
}

// New starts a wizard at the terms step. existing may be nil; when it already
// carries a gender the gender step is skipped in both directions.
func New(userID uint64, existing *db.Profile, v *validator.Validate) *Wizard {
	if v == nil {
		v = NewValidator()
	}
	w := &Wizard{
		userID:   userID,
		history:  []Step{StepTerms},
		skip:     map[Step]bool{},
		validate: v,
		now:      time.Now,
	}
	if existing != nil {
		w.base = *existing
		if g := strings.TrimSpace(existing.Gender); g != "" {
			w.form.Gender.Gender = strings.ToLower(g)
			w.skip[StepGender] = true
		}
	}
	w.base.UserID = userID
	return w
}

// Current is the step awaiting input.
func (w *Wizard) Current() Step { return w.history[len(w.history)-1] }

// Visited returns the steps taken so far, current last.
func (w *Wizard) Visited() []Step { return append([]Step(nil), w.history...) }

// Form returns a copy of the collected data.
func (w *Wizard) Form() Form { return w.form }

// Submit validates in against the current step, stores it and advances.
// On a validation failure the step does not change and a *ValidationError
// is returned.
func (w *Wizard) Submit(in Input) (Step, error) {
	cur := w.Current()
	if isNil(in) || in.Step() != cur {
		return cur, fmt.Errorf("%w: at %s", ErrWrongStep, cur)
	}
	if err := w.validate.Struct(in); err != nil {
		return cur, newValidationError(cur, err)
	}

	switch v := in.(type) {
	case *TermsInput:
		w.form.Terms = *v
	case TermsInput:
		w.form.Terms = v
	case *GenderInput:
		w.form.Gender = *v
	case GenderInput:
		w.form.Gender = v
	case *BasicInput:
		w.form.Basic = *v
	case BasicInput:
		w.form.Basic = v
	case *ReligiousInput:
		w.form.Religious = *v
	case ReligiousInput:
		w.form.Religious = v
	case *EducationInput:
		w.form.Education = *v
	case EducationInput:
		w.form.Education = v
	case *FamilyInput:
		w.form.Family = *v
	case FamilyInput:
		w.form.Family = v
	case *LifestyleInput:
		w.form.Lifestyle = *v
	case LifestyleInput:
		w.form.Lifestyle = v
	default:
		return cur, fmt.Errorf("%w: %T", ErrWrongStep, in)
	}

	next := w.next(cur)
	w.history = append(w.history, next)
	return next, nil
}

// Back returns to the previously visited step.
func (w *Wizard) Back() (Step, error) {
	if len(w.history) == 1 {
		return w.Current(), ErrAtFirstStep
	}
	w.history = w.history[:len(w.history)-1]
	return w.Current(), nil
}

func (w *Wizard) next(from Step) Step {
	for i := from.index() + 1; i < len(order); i++ {
		if !w.skip[order[i]] {
			return order[i]
		}
	}
	return StepCompleted
}

// Profile merges the form onto the profile the wizard started from.
func (w *Wizard) Profile() *db.Profile {
	p := w.base
	f := w.form

	p.Gender = f.Gender.Gender

	p.FullName = strings.Join(strings.Fields(f.Basic.FullName), " ")
	p.Email = strings.ToLower(strings.TrimSpace(f.Basic.Email))
	p.Phone = f.Basic.Phone
	if !f.Basic.DateOfBirth.IsZero() {
		dob := f.Basic.DateOfBirth.UTC()
		p.DateOfBirth = &dob
	}
	p.HeightCm = f.Basic.HeightCm
	p.WeightKg = f.Basic.WeightKg
	p.ProfileCreatedBy = f.Basic.ProfileCreatedBy

	p.Religion = f.Religious.Religion
	p.Community = f.Religious.Community
	p.Caste = f.Religious.Caste
	p.ManglikStatus = f.Religious.ManglikStatus
	p.Gothra = f.Religious.Gothra
	p.Nakshatra = f.Religious.Nakshatra
	p.Rashi = f.Religious.Rashi

	p.HighestEducation = f.Education.HighestEducation
	p.EmploymentType = f.Education.EmploymentType
	p.Occupation = f.Education.Occupation
	p.AnnualIncome = f.Education.AnnualIncome

	p.FatherName = f.Family.FatherName
	p.MotherName = f.Family.MotherName
	p.FatherOccupation = f.Family.FatherOccupation
	p.MotherOccupation = f.Family.MotherOccupation
	p.Brothers = f.Family.Brothers
	p.MarriedBrothers = f.Family.MarriedBrothers
	p.Sisters = f.Family.Sisters
	p.MarriedSisters = f.Family.MarriedSisters
	p.FamilyType = f.Family.FamilyType
	p.FamilyStatus = f.Family.FamilyStatus
	p.FamilyValues = f.Family.FamilyValues

	p.EatingHabits = f.Lifestyle.EatingHabits
	p.DietPreference = f.Lifestyle.DietPreference
	p.Drinking = f.Lifestyle.Drinking
	p.Smoking = f.Lifestyle.Smoking
	p.HealthNotes = f.Lifestyle.HealthNotes
	p.AboutMe = f.Lifestyle.AboutMe
	return &p
}

// Complete saves the profile. Only allowed once the completed step is reached.
func (w *Wizard) Complete(ctx context.Context, saver ProfileSaver) (*db.Profile, error) {
	if w.Current() != StepCompleted {
		return nil, fmt.Errorf("%w: at %s", ErrNotCompleted, w.Current())
	}
	p := w.Profile()
	now := w.now().UTC()
	if p.TermsAcceptedAt == nil {
		p.TermsAcceptedAt = &now
	}
	p.CompletedAt = &now
	if err := saver.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// isNil also catches a typed nil pointer stored in the interface.
func isNil(in Input) bool {
	if in == nil {
		return true
	}
	v := reflect.ValueOf(in)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
