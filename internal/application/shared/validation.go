package shared

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/rescue-ops/backend/internal/domain/reference"
	"github.com/rescue-ops/backend/internal/domain/shared"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Use JSON tag names for field names in errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// notblank fails strings that are empty once trimmed
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ValidateInput runs field validation on an input struct. The first failing
// field becomes a VALIDATION_REJECTED error.
func ValidateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return shared.NewValidationRejected(fe.Field(), validationMessage(fe))
	}
	return shared.NewDomainError(shared.CodeInvalidInput, err.Error())
}

// validationMessage returns a human-readable validation message
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return "must be at least " + e.Param() + " characters"
		}
		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return "must be at most " + e.Param() + " characters"
		}
		return "must be at most " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	case "gte":
		return "must be greater than or equal to " + e.Param()
	default:
		return "is invalid (" + e.Tag() + ")"
	}
}

// ReferenceValidator checks logical foreign keys before a write.
// *reference.Validator satisfies it.
type ReferenceValidator interface {
	Validate(ctx context.Context, keys []reference.Key) reference.Outcome
	ValidateSupplied(ctx context.Context, keys []reference.Key) reference.Outcome
}

// RejectionObserver counts rejected writes. *telemetry.Metrics satisfies it.
type RejectionObserver interface {
	IncValidationReject(aggregate, field string)
}

// References runs reference validation for one aggregate kind and reports
// every rejection to the observer.
type References struct {
	validator ReferenceValidator
	observer  RejectionObserver
	aggregate string
}

// NewReferences creates a References for the named aggregate.
// observer may be nil.
func NewReferences(v ReferenceValidator, observer RejectionObserver, aggregate string) References {
	return References{validator: v, observer: observer, aggregate: aggregate}
}

// Check validates every key of a new entity.
func (r References) Check(ctx context.Context, keys []reference.Key) error {
	return r.report(r.validator.Validate(ctx, keys))
}

// CheckSupplied validates the keys an update supplied.
func (r References) CheckSupplied(ctx context.Context, keys []reference.Key) error {
	return r.report(r.validator.ValidateSupplied(ctx, keys))
}

func (r References) report(out reference.Outcome) error {
	if out.Accepted {
		return nil
	}
	if r.observer != nil {
		r.observer.IncValidationReject(r.aggregate, out.Field)
	}
	return out.Err()
}
