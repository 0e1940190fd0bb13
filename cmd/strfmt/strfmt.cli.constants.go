package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameCheck   = "check"
	CmdNameSteps   = "steps"
	CmdNameVersion = "version"
	CmdNameHelp    = "help"
)

// Flag names - long form
const (
	FlagFormat       = "format"
	FlagRecipe       = "recipe"
	FlagData         = "data"
	FlagDataFile     = "data-file"
	FlagNamed        = "named"
	FlagStep         = "step"
	FlagEncoding     = "encoding"
	FlagLanguage     = "lang"
	FlagOutput       = "output"
	FlagQuiet        = "quiet"
	FlagStrictMode   = "strict"
	FlagVerbose      = "verbose"
	FlagOutputFormat = "output-format"
)

// Flag names - short form
const (
	FlagFormatShort       = "f"
	FlagRecipeShort       = "r"
	FlagDataShort         = "d"
	FlagDataFileShort     = "D"
	FlagNamedShort        = "n"
	FlagStepShort         = "s"
	FlagEncodingShort     = "e"
	FlagOutputShort       = "o"
	FlagQuietShort        = "q"
	FlagVerboseShort      = "v"
	FlagOutputFormatShort = "F"
)

// Flag default values
const (
	FlagDefaultOutput       = "-" // stdout
	FlagDefaultOutputFormat = "text"
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess         = 0
	ExitCodeError           = 1
	ExitCodeUsageError      = 2
	ExitCodeValidationError = 3
	ExitCodeInputError      = 4
)

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Step flag syntax: name or name:arg,arg
const (
	StepArgSeparator = ":"
	StepArgsOpen     = "["
	StepArgsClose    = "]"
	NamedParamAssign = "="
)

// Error messages - ALL must be constants
const (
	ErrMsgUnknownCommand     = "unknown command"
	ErrMsgMissingFormat      = "format or recipe required"
	ErrMsgFormatAndRecipe    = "format and recipe are mutually exclusive"
	ErrMsgDataAndDataFile    = "data and data-file are mutually exclusive"
	ErrMsgInvalidData        = "invalid parameter data"
	ErrMsgInvalidNamedParam  = "named parameter must be key=value"
	ErrMsgMixedParams        = "positional parameters cannot be combined with named data"
	ErrMsgInvalidStepFlag    = "invalid step"
	ErrMsgInvalidLanguage    = "invalid language tag"
	ErrMsgReadFileFailed     = "failed to read file"
	ErrMsgWriteOutputFailed  = "failed to write output"
	ErrMsgRecipeFailed       = "recipe rejected"
	ErrMsgPipelineFailed     = "pipeline failed"
	ErrMsgInvalidFormat      = "invalid output format"
	ErrMsgDiagnosticsAsError = "diagnostics reported in strict mode"
)

// Help text templates
const (
	HelpMainUsage = `strfmt - placeholder formatting and string pipelines

Usage:
    strfmt <command> [options]

Commands:
    render      Format a string and run it through a pipeline
    check       List the tokens of a format and flag unknown ones
    steps       List the available pipeline steps
    version     Show version information
    help        Show help for a command

Use "strfmt help <command>" for more information about a command.`

	HelpRenderUsage = `Format a string and run it through a pipeline

Usage:
    strfmt render [options] [param...]

Options:
    -f, --format <text>        Format string (use "-" for stdin)
    -r, --recipe <file>        YAML recipe file (use "-" for stdin)
    -d, --data <yaml>          Parameters as YAML or JSON: a list or a mapping
    -D, --data-file <file>     Parameters file
    -n, --named                Read positional params as key=value pairs
    -s, --step <step>          Append a step: name or name:arg,arg (repeatable)
    -e, --encoding <name>      Default encoding of encoding-aware steps
    --lang <tag>               Language used by case steps (BCP 47)
    -o, --output <file>        Output file (default: stdout)
    -q, --quiet                Do not print diagnostics
    -v, --verbose              Log pipeline progress to stderr
    --strict                   Exit with code 3 when diagnostics were reported

A mapping passed as data selects named placeholders; anything else
selects positional placeholders. Step arguments are YAML scalars.

Examples:
    strfmt render -f "{} {}!" Hello world
    strfmt render -f "{name:*^11}" -n name=gopher
    strfmt render -f "{} has {1#b} items" -s 'wordWrap:8,"\n",true' box 5
    strfmt render -r greeting.yaml -d '{name: earth}'`

	HelpCheckUsage = `List the tokens of a format and flag unknown ones

Usage:
    strfmt check [options]

Options:
    -f, --format <text>           Format string (use "-" for stdin)
    -r, --recipe <file>           Validate a YAML recipe and check its format
    -n, --named                   Classify tokens for named placeholders
    -F, --output-format <format>  Output format: text, json (default: text)

Exits with code 3 when a token matches no placeholder form or the
recipe is invalid.`

	HelpStepsUsage = `List the available pipeline steps

Usage:
    strfmt steps [options]

Options:
    -F, --output-format <format>  Output format: text, json (default: text)`

	HelpVersionUsage = `Show version information

Usage:
    strfmt version [options]

Options:
    -F, --output-format <format>  Output format: text, json (default: text)`

	HelpHelpUsage = `Show help for a command

Usage:
    strfmt help [command]

Commands:
    render      Show help for render command
    check       Show help for check command
    steps       Show help for steps command
    version     Show help for version command`
)

// Version output format templates
const (
	VersionTextTemplate = "go-strfmt version %s\nCommit: %s\nBranch: %s\nBuilt: %s\nGo: %s"
	VersionUnknown      = "unknown"
)

// Check output format templates
const (
	CheckTextTokenFormat = "  %-8s %s"
	CheckTextHeader      = "Tokens (%s mode):"
	CheckTextNoTokens    = "No tokens"
	CheckTextSummary     = "%d token(s), %d unknown"
	CheckTextRecipeValid = "Recipe is valid"
)

// Render output
const (
	DiagnosticPrefix = "warning: "
)

// CLI metadata
const (
	CLIName        = "strfmt"
	CLIDescription = "placeholder formatting and string pipelines"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithDetail = "%s: %s\n"
	FmtErrorWithCause  = "%s: %v\n"
	FmtNewline         = "\n"
)
