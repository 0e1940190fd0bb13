package strfmt

import "github.com/itsatony/go-strfmt/internal"

// Mode selects how placeholder keys address the parameters
type Mode = internal.Mode

// Parameter modes
const (
	ModeIndexed = internal.ModeIndexed
	ModeNamed   = internal.ModeNamed
)

// Pipeline step names accepted by Builder.Step and recipes
const (
	StepReplace          = internal.StepReplace
	StepIReplace         = internal.StepIReplace
	StepRegexReplace     = internal.StepRegexReplace
	StepStrip            = internal.StepStrip
	StepLStrip           = internal.StepLStrip
	StepRStrip           = internal.StepRStrip
	StepUpper            = internal.StepUpper
	StepLower            = internal.StepLower
	StepUpperFirst       = internal.StepUpperFirst
	StepLowerFirst       = internal.StepLowerFirst
	StepUpperWords       = internal.StepUpperWords
	StepWordWrap         = internal.StepWordWrap
	StepSubstr           = internal.StepSubstr
	StepRepeat           = internal.StepRepeat
	StepReverse          = internal.StepReverse
	StepSquashWhitechars = internal.StepSquashWhitechars
	StepInsert           = internal.StepInsert
	StepEnsurePrefix     = internal.StepEnsurePrefix
	StepEnsureSuffix     = internal.StepEnsureSuffix
	StepPrefix           = internal.StepPrefix
	StepSuffix           = internal.StepSuffix
	StepSurround         = internal.StepSurround
	StepEOL              = internal.StepEOL
	StepEOLRN            = internal.StepEOLRN
	StepEOLN             = internal.StepEOLN
	StepTransform        = internal.StepTransform
)

// Encoding names with special meaning for encoding-aware steps
const (
	EncodingUTF8   = internal.EncodingUTF8
	EncodingBinary = internal.EncodingBinary
)

// Pipeline defaults
const (
	DefaultWrapWidth = internal.DefaultWrapWidth
	DefaultWrapBreak = internal.DefaultWrapBreak
)

// Log message constants
const (
	LogMsgFormatterCreated = "formatter created"
	LogMsgBuilderCreated   = "pipeline builder created"
	LogMsgUnfoldStart      = "unfolding pipeline"
	LogMsgUnfoldEnd        = "pipeline unfolded"
	LogMsgStepApplied      = internal.LogMsgStepApplied
	LogMsgStepFailed       = internal.LogMsgStepFailed
	LogMsgRecipeLoaded     = "recipe loaded"
	LogMsgUnfoldPanicked   = "pipeline unfold panicked"
)

// Log field names
const (
	LogFieldMode         = internal.LogFieldMode
	LogFieldStep         = internal.LogFieldStep
	LogFieldStepCount    = internal.LogFieldStepCount
	LogFieldResultLength = internal.LogFieldResultLength
	LogFieldDiagnostics  = "diagnostics"
	LogFieldCaller       = "caller"
	LogFieldError        = internal.LogFieldError
	LogFieldPanic        = internal.LogFieldPanic
)

// Metadata keys attached to returned errors
const (
	MetaKeyStep        = "step"
	MetaKeyType        = "type"
	MetaKeyMode        = "mode"
	MetaKeyReason      = "reason"
	MetaKeyExpected    = "expected"
	MetaKeyActual      = "actual"
	MetaKeySuggestions = "suggestions"
	MetaKeyIndex       = "index"
	MetaKeyPanic       = "panic"
)

// Struct tag read when named parameters are taken from a struct
const (
	StructTagName = "strfmt"
	StructTagSkip = "-"
)

// callerSkipEntry addresses the frame that called a public entry point
const callerSkipEntry = 1
