package validator

import (
	"reflect"
	"regexp"
	"strings"

	apperrors "github.com/SAP-F-2025/sat-results-service/internal/errors"
	"github.com/SAP-F-2025/sat-results-service/internal/models"
	"github.com/go-playground/validator/v10"
)

// moduleIdentifier accepts the SAT modules and any other well-formed module
// key, since score reports carry unknown modules through unscaled.
var moduleIdentifier = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidationErrors is the error list returned by Validate.
type ValidationErrors = apperrors.ValidationErrors

// Validator wraps a go-playground validator with the domain tags registered.
type Validator struct {
	structValidator *validator.Validate
}

func New() *Validator {
	structValidator := validator.New()

	registerCustomValidators(structValidator)

	return &Validator{structValidator: structValidator}
}

// ValidateStruct validates struct tags only and returns the raw validator error.
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.structValidator.Struct(s)
}

// Validate validates struct tags and converts failures into ValidationErrors.
func (v *Validator) Validate(s interface{}) error {
	err := v.ValidateStruct(s)
	if err == nil {
		return nil
	}

	if errs := apperrors.ToValidationErrors(err); len(errs) > 0 {
		return errs
	}
	return err
}

func registerCustomValidators(validate *validator.Validate) {
	validate.RegisterValidation("module_type", validateModuleType)
	validate.RegisterValidation("difficulty_level", validateDifficultyLevel)
	validate.RegisterValidation("attempt_status", validateAttemptStatus)

	// Custom tag name function for better error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateModuleType(fl validator.FieldLevel) bool {
	return moduleIdentifier.MatchString(fl.Field().String())
}

func validateDifficultyLevel(fl validator.FieldLevel) bool {
	return models.DifficultyLevel(fl.Field().String()).IsValid()
}

func validateAttemptStatus(fl validator.FieldLevel) bool {
	return models.AttemptStatus(fl.Field().String()).IsValid()
}
