package internal

// Mode selects how placeholder keys address the parameter set
type Mode string

// Mode constants
const (
	ModeIndexed Mode = "indexed"
	ModeNamed   Mode = "named"
)

// Key grammars per mode
const (
	KeyPatternIndexed = `\d*`
	KeyPatternNamed   = `\w+`
)

// Token delimiters
const (
	TokenOpen       = "{"
	TokenClose      = "}"
	TokenPattern    = `\{[^}]*\}`
	KeywordPrefix   = "@"
	AutoKey         = ""
	DefaultPadChar  = " "
	DefaultBaseFrom = 10
	MinBase         = 2
	MaxBase         = 36
	MaxPadWidth     = 1 << 16 // widest alignment token accepted
)

// Alignment symbols used by the alignment token
const (
	AlignLeft   = "<"
	AlignRight  = ">"
	AlignCenter = "^"
)

// Base mnemonics used by the conversion token
const (
	BaseMnemonicBinary   = "b"
	BaseMnemonicOctal    = "o"
	BaseMnemonicDecimal  = "d"
	BaseMnemonicHex      = "x"
	BaseMnemonicHexUpper = "X"
)

// Caller keyword names
const (
	KeywordClass      = "class"
	KeywordClassLong  = "classLong"
	KeywordMethod     = "method"
	KeywordMethodLong = "methodLong"
	KeywordFunction   = "function"
	KeywordFile       = "file"
	KeywordFileLong   = "fileLong"
	KeywordDir        = "dir"
	KeywordDirLong    = "dirLong"
	KeywordLine       = "line"
)

// MethodSeparator joins a type and member name in method keywords
const MethodSeparator = "::"

// Keywords lists every caller keyword in declaration order
var Keywords = []string{
	KeywordClass,
	KeywordClassLong,
	KeywordMethod,
	KeywordMethodLong,
	KeywordFunction,
	KeywordFile,
	KeywordFileLong,
	KeywordDir,
	KeywordDirLong,
	KeywordLine,
}

// Step names understood by the pipeline
const (
	StepReplace          = "replace"
	StepIReplace         = "ireplace"
	StepRegexReplace     = "regexReplace"
	StepStrip            = "strip"
	StepLStrip           = "lstrip"
	StepRStrip           = "rstrip"
	StepUpper            = "upper"
	StepLower            = "lower"
	StepUpperFirst       = "upperFirst"
	StepLowerFirst       = "lowerFirst"
	StepUpperWords       = "upperWords"
	StepWordWrap         = "wordWrap"
	StepSubstr           = "substr"
	StepRepeat           = "repeat"
	StepReverse          = "reverse"
	StepSquashWhitechars = "squashWhitechars"
	StepInsert           = "insert"
	StepEnsurePrefix     = "ensurePrefix"
	StepEnsureSuffix     = "ensureSuffix"
	StepPrefix           = "prefix"
	StepSuffix           = "suffix"
	StepSurround         = "surround"
	StepEOL              = "eol"
	StepEOLRN            = "eolrn"
	StepEOLN             = "eoln"
	StepTransform        = "transform"
)

// Pipeline defaults
const (
	DefaultStripChars     = " \t\n\r\x00\x0B"
	DefaultWordDelimiters = " \t\r\n\f\v"
	DefaultWrapWidth      = 75
	DefaultWrapBreak      = "\n"
	DefaultRegexLimit     = -1
	EOLUnix               = "\n"
	EOLWindows            = "\r\n"
	CharsetRangeMarker    = ".."
)

// Encoding names with special meaning
const (
	EncodingUTF8   = "utf-8"
	EncodingBinary = "8bit"
)

// Suggestion tuning
const (
	MaxSuggestions     = 3
	SuggestionMinScore = 0.6
)

// Log message constants
const (
	LogMsgCompilerCreated   = "compiler created"
	LogMsgCompileStart      = "starting compilation"
	LogMsgCompileEnd        = "compilation complete"
	LogMsgTokenResolved     = "token resolved"
	LogMsgDiagnostic        = "format diagnostic"
	LogMsgPipelineStart     = "starting pipeline"
	LogMsgPipelineEnd       = "pipeline complete"
	LogMsgStepApplied       = "pipeline step applied"
	LogMsgStepFailed        = "pipeline step failed, skipped"
	LogMsgStepRegistryReady = "step registry created"
	LogMsgHandlerPanicked   = "diagnostic handler panicked"
)

// Log field names
const (
	LogFieldFormatLength = "format_length"
	LogFieldMode         = "mode"
	LogFieldToken        = "token"
	LogFieldRule         = "rule"
	LogFieldKind         = "kind"
	LogFieldMessage      = "message"
	LogFieldSuggestions  = "suggestions"
	LogFieldStep         = "step"
	LogFieldStepCount    = "step_count"
	LogFieldTokenCount   = "token_count"
	LogFieldResultLength = "result_length"
	LogFieldError        = "error"
	LogFieldPanic        = "panic"
)

// Error message constants
const (
	ErrMsgMissingParameter    = "missing parameter"
	ErrMsgUnknownStep         = "unknown pipeline step"
	ErrMsgStepTooFewArgs      = "too few arguments for pipeline step"
	ErrMsgStepTooManyArgs     = "too many arguments for pipeline step"
	ErrMsgStepArgType         = "invalid argument type for pipeline step"
	ErrMsgStepExists          = "pipeline step already registered"
	ErrMsgStepNil             = "cannot register nil pipeline step"
	ErrMsgStepEmptyName       = "pipeline step name cannot be empty"
	ErrMsgStepFailed          = "pipeline step failed"
	ErrMsgUnknownEncoding     = "unknown encoding"
	ErrMsgEncodeFailed        = "cannot encode result in requested encoding"
	ErrMsgDecodeFailed        = "cannot decode input from requested encoding"
	ErrMsgEmptyBreak          = "break string cannot be empty"
	ErrMsgCutWithZeroWidth    = "cannot force cut when width is zero"
	ErrMsgNegativeRepeat      = "repeat count cannot be negative"
	ErrMsgInvalidRegex        = "invalid regular expression"
	ErrMsgUnknownToken        = "token matches no placeholder form"
	ErrMsgNoCallerContext     = "no caller context available"
	ErrMsgNoEnclosingType     = "keyword requires an enclosing type"
	ErrMsgUnresolvedMember    = "member cannot be resolved on value"
	ErrMsgMemberCallFailed    = "member call returned an error"
	ErrMsgInvalidBase         = "base must be between 2 and 36"
	ErrMsgInvalidNumber       = "value is not a number in the source base"
	ErrMsgAutoCursorExhausted = "no positional parameter left for auto placeholder"
	ErrMsgMemberPanicked      = "member call panicked"
	ErrMsgTokenPanicked       = "placeholder resolution panicked"
	ErrMsgStepPanicked        = "pipeline step panicked"
	ErrMsgRepeatOverflow      = "repeat output length overflows"
	ErrMsgPadWidthTooLarge    = "pad width exceeds maximum"
)

// Error format strings
const (
	ErrFmtWithSubject = "%s: %s"
	ErrFmtArity       = "%s: %s (expected %d, got %d)"
	ErrFmtArgType     = "%s: %s argument %d (expected %s, got %T)"
	ErrFmtPanic       = "%s: %s: %v"
)
