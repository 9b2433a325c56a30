package profile

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidOption is returned when a value is not part of its option list.
var ErrInvalidOption = errors.New("invalid option")

// AnswerPatch carries optional updates to the scalar answers.
type AnswerPatch struct {
	SkinType     *string `json:"skinType" validate:"omitempty,skin_type"`
	AgeGroup     *string `json:"ageGroup" validate:"omitempty,age_group"`
	AllergyNotes *string `json:"allergyNotes"`
	Budget       *string `json:"budget" validate:"omitempty,budget"`
}

// FieldError names a rejected field.
type FieldError struct {
	Field string
	Tag   string
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidOption.Error()
	}
	return fmt.Sprintf("%s: %s (%s)", ErrInvalidOption, e.Fields[0].Field, e.Fields[0].Tag)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidOption }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Empty strings clear an answer, so they pass every option check.
	register := func(tag string, allowed func(string) bool) {
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == "" || allowed(s)
		})
	}
	register("skin_type", IsSkinType)
	register("age_group", IsAgeGroup)
	register("budget", IsBudget)
	register("concern", IsConcern)
	return v
}

// Validate checks every provided field against the option lists.
func (p AnswerPatch) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: jsonName(fe.StructField()), Tag: fe.Tag()})
	}
	return out
}

// ValidateConcern checks a single concern tag.
func ValidateConcern(tag string) error {
	if err := validate.Var(tag, "required,concern"); err != nil {
		return &ValidationError{Fields: []FieldError{{Field: "concern", Tag: "concern"}}}
	}
	return nil
}

func jsonName(field string) string {
	switch field {
	case "SkinType":
		return "skinType"
	case "AgeGroup":
		return "ageGroup"
	case "AllergyNotes":
		return "allergyNotes"
	case "Budget":
		return "budget"
	default:
		return field
	}
}
