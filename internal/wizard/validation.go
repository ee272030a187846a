package wizard

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	mobileRegex   = regexp.MustCompile(`^[0-9]{10}$`)
	namePartRegex = regexp.MustCompile(`^[A-Za-z]{2,25}$`)
)

// NewValidator returns a validator with the wizard's custom tags registered
// and field names reported by their json tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("indian_mobile", IndianMobile)
	_ = v.RegisterValidation("full_name", FullName)
}

// IndianMobile accepts exactly ten digits.
func IndianMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// FullName accepts two to five words of 2-25 letters each.
func FullName(fl validator.FieldLevel) bool {
	parts := strings.Fields(fl.Field().String())
	if len(parts) < 2 || len(parts) > 5 {
		return false
	}
	for _, p := range parts {
		if !namePartRegex.MatchString(p) {
			return false
		}
	}
	return true
}

// ValidationError reports every invalid field of a step, keyed by json name.
type ValidationError struct {
	Step   Step
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", e.Step, strings.Join(parts, "; "))
}

// fieldMessages overrides the generic text for specific fields.
var fieldMessages = map[string]string{
	"accepted":          "please accept the terms & conditions to continue",
	"gender":            "please select your gender",
	"full_name":         "please enter your full name (2-5 words, letters only)",
	"email":             "please enter a valid email address",
	"phone":             "please enter a valid 10-digit mobile number",
	"date_of_birth":     "please select your date of birth",
	"height_cm":         "please select your height",
	"weight_kg":         "please select your weight",
	"religion":          "please select your religion",
	"community":         "please select your community",
	"highest_education": "please select your education",
	"father_occupation": "please select your father's occupation",
	"mother_occupation": "please select your mother's occupation",
	"family_type":       "please select your family type",
	"family_status":     "please select your family status",
	"family_values":     "please select your family values",
	"eating_habits":     "please select your eating habits",
	"diet_preference":   "please select your diet preference",
	"drinking":          "please select your drinking habit",
	"smoking":           "please select your smoking habit",
}

func newValidationError(step Step, err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	out := &ValidationError{Step: step, Fields: make(map[string]string, len(verrs))}
	for _, fe := range verrs {
		out.Fields[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "ltefield":
		return "cannot exceed " + strings.ToLower(fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}
