package strfmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-strfmt/internal"
)

// Error message constants
const (
	// API boundary errors
	ErrMsgInvalidParams = "named parameters must be a string-keyed map or a struct"
	ErrMsgInvalidMode   = "unknown parameter mode"

	// Pipeline errors
	ErrMsgUnknownStep = "unknown pipeline step"
	ErrMsgInvalidStep = "invalid pipeline step"
	ErrMsgStepFailed  = "pipeline step failed"
	ErrMsgUnfoldPanic = "pipeline unfold panicked"

	// Recipe errors
	ErrMsgRecipeParse     = "recipe parsing failed"
	ErrMsgRecipeInvalid   = "invalid recipe"
	ErrMsgRecipeEmptyStep = "recipe step name cannot be empty"
	ErrMsgRecipeParams    = "recipe parameters do not match the mode"
)

// Error code constants for categorization
const (
	ErrCodeParams   = "STRFMT_PARAMS"
	ErrCodeStep     = "STRFMT_STEP"
	ErrCodePipeline = "STRFMT_PIPELINE"
	ErrCodeRecipe   = "STRFMT_RECIPE"
)

// MissingParameterError is reported when a placeholder refers to an absent key
type MissingParameterError = internal.MissingParameterError

// PanicError carries a value recovered from a panicking member, token or step.
// It is the Err of the matching Diagnostic.
type PanicError = internal.PanicError

// DiagnosticKind classifies a non-fatal formatting anomaly
type DiagnosticKind = internal.DiagnosticKind

// Diagnostic describes one non-fatal anomaly. Formatting always produces a
// string; diagnostics are the side channel that explains what went wrong.
type Diagnostic = internal.Diagnostic

// DiagnosticHandler receives diagnostics as they are produced
type DiagnosticHandler = internal.DiagnosticHandler

// Diagnostic kinds
const (
	DiagnosticMissingParameter = internal.DiagnosticMissingParameter
	DiagnosticMalformedToken   = internal.DiagnosticMalformedToken
	DiagnosticBadKeywordUsage  = internal.DiagnosticBadKeywordUsage
	DiagnosticUnresolvedMember = internal.DiagnosticUnresolvedMember
	DiagnosticConversionFailed = internal.DiagnosticConversionFailed
	DiagnosticStepFailed       = internal.DiagnosticStepFailed
)

// NewInvalidParamsError creates an error for named parameters of an unusable type
func NewInvalidParamsError(typeName string) error {
	return cuserr.NewValidationError(ErrCodeParams, ErrMsgInvalidParams).
		WithMetadata(MetaKeyType, typeName)
}

// NewInvalidModeError creates an error for an unknown parameter mode
func NewInvalidModeError(mode string) error {
	return cuserr.NewValidationError(ErrCodeParams, ErrMsgInvalidMode).
		WithMetadata(MetaKeyMode, mode)
}

// NewUnknownStepError creates an error for a step name that is not registered
func NewUnknownStepError(name string, suggestions []string) error {
	err := cuserr.NewNotFoundError(MetaKeyStep, ErrMsgUnknownStep).
		WithMetadata(MetaKeyStep, name)
	if len(suggestions) > 0 {
		err = err.WithMetadata(MetaKeySuggestions, strings.Join(suggestions, ", "))
	}
	return err
}

// NewInvalidStepError creates an error for a step appended with wrong arguments
func NewInvalidStepError(name string, cause error) error {
	err := cuserr.WrapStdError(cause, ErrCodeStep, ErrMsgInvalidStep).
		WithMetadata(MetaKeyStep, name)

	var arity *internal.StepArityError
	if errors.As(cause, &arity) {
		err = err.
			WithMetadata(MetaKeyExpected, strconv.Itoa(arity.Expected)).
			WithMetadata(MetaKeyActual, strconv.Itoa(arity.Actual))
	}
	return err
}

// NewStepFailedError creates an error for a step that failed while unfolding
func NewStepFailedError(name string, index int, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodePipeline, ErrMsgStepFailed).
		WithMetadata(MetaKeyStep, name).
		WithMetadata(MetaKeyIndex, strconv.Itoa(index))
}

// NewUnfoldPanicError creates an error for a panic that stopped a pipeline unfold
func NewUnfoldPanicError(recovered any) error {
	return cuserr.WrapStdError(fmt.Errorf("%v", recovered), ErrCodePipeline, ErrMsgUnfoldPanic).
		WithMetadata(MetaKeyPanic, fmt.Sprint(recovered))
}

// NewRecipeParseError creates an error for unreadable recipe documents
func NewRecipeParseError(cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeRecipe, ErrMsgRecipeParse)
}

// NewRecipeInvalidError creates an error for a recipe that parsed but cannot be used
func NewRecipeInvalidError(reason string) error {
	return cuserr.NewValidationError(ErrCodeRecipe, ErrMsgRecipeInvalid).
		WithMetadata(MetaKeyReason, reason)
}
