// Package wizard drives the multi-step profile completion flow.
package wizard

import (
	"encoding/json"
	"fmt"
	"time"
)

// Step names a screen of the flow.
type Step string

const (
	StepTerms     Step = "terms"
	StepGender    Step = "gender"
	StepBasic     Step = "basic-details"
	StepReligious Step = "religious-details"
	StepEducation Step = "education-details"
	StepFamily    Step = "family-details"
	StepLifestyle Step = "lifestyle-habits"
	StepCompleted Step = "completed"
)

var order = []Step{
	StepTerms, StepGender, StepBasic, StepReligious,
	StepEducation, StepFamily, StepLifestyle, StepCompleted,
}

// Steps lists every step in flow order.
func Steps() []Step {
	return append([]Step(nil), order...)
}

func (s Step) index() int {
	for i, o := range order {
		if o == s {
			return i
		}
	}
	return -1
}

// Input is the payload submitted on one step.
type Input interface {
	Step() Step
}

type TermsInput struct {
	Accepted bool `json:"accepted" validate:"required"`
}

type GenderInput struct {
	Gender string `json:"gender" validate:"required,oneof=male female"`
}

type BasicInput struct {
	FullName         string    `json:"full_name" validate:"required,full_name"`
	Email            string    `json:"email" validate:"required,email"`
	Phone            string    `json:"phone" validate:"required,indian_mobile"`
	DateOfBirth      time.Time `json:"date_of_birth" validate:"required"`
	HeightCm         int       `json:"height_cm" validate:"required,min=120,max=230"`
	WeightKg         int       `json:"weight_kg" validate:"required,min=40,max=100"`
	ProfileCreatedBy string    `json:"profile_created_by" validate:"omitempty,oneof=self parent sibling relative friend"`
}

type ReligiousInput struct {
	Religion      string `json:"religion" validate:"required"`
	Community     string `json:"community" validate:"required"`
	Caste         string `json:"caste"`
	ManglikStatus string `json:"manglik_status" validate:"omitempty,oneof=yes no partial unknown"`
	Gothra        string `json:"gothra"`
	Nakshatra     string `json:"nakshatra"`
	Rashi         string `json:"rashi"`
}

type EducationInput struct {
	HighestEducation string `json:"highest_education" validate:"required"`
	EmploymentType   string `json:"employment_type"`
	Occupation       string `json:"occupation" validate:"max=64"`
	AnnualIncome     int64  `json:"annual_income" validate:"min=0"`
}

type FamilyInput struct {
	FatherName       string `json:"father_name" validate:"max=128"`
	MotherName       string `json:"mother_name" validate:"max=128"`
	FatherOccupation string `json:"father_occupation" validate:"required"`
	MotherOccupation string `json:"mother_occupation" validate:"required"`
	Brothers         int    `json:"brothers" validate:"min=0,max=20"`
	MarriedBrothers  int    `json:"married_brothers" validate:"min=0,ltefield=Brothers"`
	Sisters          int    `json:"sisters" validate:"min=0,max=20"`
	MarriedSisters   int    `json:"married_sisters" validate:"min=0,ltefield=Sisters"`
	FamilyType       string `json:"family_type" validate:"required"`
	FamilyStatus     string `json:"family_status" validate:"required"`
	FamilyValues     string `json:"family_values" validate:"required"`
}

type LifestyleInput struct {
	EatingHabits   string `json:"eating_habits" validate:"required"`
	DietPreference string `json:"diet_preference" validate:"required"`
	Drinking       *bool  `json:"drinking" validate:"required"`
	Smoking        *bool  `json:"smoking" validate:"required"`
	HealthNotes    string `json:"health_notes" validate:"max=255"`
	AboutMe        string `json:"about_me" validate:"max=1000"`
}

func (TermsInput) Step() Step     { return StepTerms }
func (GenderInput) Step() Step    { return StepGender }
func (BasicInput) Step() Step     { return StepBasic }
func (ReligiousInput) Step() Step { return StepReligious }
func (EducationInput) Step() Step { return StepEducation }
func (FamilyInput) Step() Step    { return StepFamily }
func (LifestyleInput) Step() Step { return StepLifestyle }

// DecodeInput parses a JSON payload into the input type for step.
func DecodeInput(step Step, raw []byte) (Input, error) {
	var in Input
	switch step {
	case StepTerms:
		in = &TermsInput{}
	case StepGender:
		in = &GenderInput{}
	case StepBasic:
		in = &BasicInput{}
	case StepReligious:
		in = &ReligiousInput{}
	case StepEducation:
		in = &EducationInput{}
	case StepFamily:
		in = &FamilyInput{}
	case StepLifestyle:
		in = &LifestyleInput{}
	default:
		return nil, fmt.Errorf("%w: %q takes no input", ErrUnknownStep, step)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, in); err != nil {
			return nil, fmt.Errorf("decode %s: %w", step, err)
		}
	}
	return in, nil
}
