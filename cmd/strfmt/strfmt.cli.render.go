package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strfmt"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	format       string
	recipePath   string
	data         string
	dataFilePath string
	named        bool
	steps        stepList
	encoding     string
	language     string
	outputPath   string
	quiet        bool
	strict       bool
	verbose      bool
	params       []string
}

func runRender(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseRenderFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingFormat, err)
		return ExitCodeUsageError
	}

	recipe, code := buildRecipe(cfg, stdin, stderr)
	if code != ExitCodeSuccess {
		return code
	}

	opts, err := renderOptions(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidLanguage, err)
		return ExitCodeUsageError
	}

	builder, err := recipe.Builder(opts...)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRecipeFailed, err)
		return ExitCodeValidationError
	}

	result := builder.String()
	if err := writeOutput(cfg.outputPath, []byte(result), stdout); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgWriteOutputFailed, err)
		return ExitCodeError
	}

	diags := builder.Diagnostics()
	if !cfg.quiet {
		for _, d := range diags {
			fmt.Fprintln(stderr, DiagnosticPrefix+d.String())
		}
	}

	if err := builder.Err(); err != nil {
		for _, stepErr := range multierr.Errors(err) {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgPipelineFailed, stepErr)
		}
		return ExitCodeError
	}
	if cfg.strict && len(diags) > 0 {
		fmt.Fprintln(stderr, ErrMsgDiagnosticsAsError)
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func parseRenderFlags(args []string) (*renderConfig, error) {
	fs := flag.NewFlagSet(CmdNameRender, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &renderConfig{}

	fs.StringVar(&cfg.format, FlagFormat, "", "")
	fs.StringVar(&cfg.format, FlagFormatShort, "", "")
	fs.StringVar(&cfg.recipePath, FlagRecipe, "", "")
	fs.StringVar(&cfg.recipePath, FlagRecipeShort, "", "")
	fs.StringVar(&cfg.data, FlagData, "", "")
	fs.StringVar(&cfg.data, FlagDataShort, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFile, "", "")
	fs.StringVar(&cfg.dataFilePath, FlagDataFileShort, "", "")
	fs.BoolVar(&cfg.named, FlagNamed, false, "")
	fs.BoolVar(&cfg.named, FlagNamedShort, false, "")
	fs.Var(&cfg.steps, FlagStep, "")
	fs.Var(&cfg.steps, FlagStepShort, "")
	fs.StringVar(&cfg.encoding, FlagEncoding, "", "")
	fs.StringVar(&cfg.encoding, FlagEncodingShort, "", "")
	fs.StringVar(&cfg.language, FlagLanguage, "", "")
	fs.StringVar(&cfg.outputPath, FlagOutput, FlagDefaultOutput, "")
	fs.StringVar(&cfg.outputPath, FlagOutputShort, FlagDefaultOutput, "")
	fs.BoolVar(&cfg.quiet, FlagQuiet, false, "")
	fs.BoolVar(&cfg.quiet, FlagQuietShort, false, "")
	fs.BoolVar(&cfg.strict, FlagStrictMode, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerbose, false, "")
	fs.BoolVar(&cfg.verbose, FlagVerboseShort, false, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.params = fs.Args()

	if cfg.format == "" && cfg.recipePath == "" {
		return nil, errors.New(ErrMsgMissingFormat)
	}
	if cfg.format != "" && cfg.recipePath != "" {
		return nil, errors.New(ErrMsgFormatAndRecipe)
	}
	if cfg.data != "" && cfg.dataFilePath != "" {
		return nil, errors.New(ErrMsgDataAndDataFile)
	}

	return cfg, nil
}

// buildRecipe merges the recipe file, if any, with the format, parameters
// and steps given on the command line
func buildRecipe(cfg *renderConfig, stdin io.Reader, stderr io.Writer) (*strfmt.Recipe, int) {
	recipe := &strfmt.Recipe{Format: cfg.format}

	switch {
	case cfg.recipePath != "":
		raw, err := readInput(cfg.recipePath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return nil, ExitCodeInputError
		}
		parsed, err := strfmt.ParseRecipe(raw)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgRecipeFailed, err)
			return nil, ExitCodeValidationError
		}
		recipe = parsed
	case cfg.format == InputSourceStdin:
		raw, err := readInput(InputSourceStdin, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return nil, ExitCodeInputError
		}
		recipe.Format = string(raw)
	}

	params, mode, err := resolveParams(cfg, recipe)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidData, err)
		return nil, ExitCodeInputError
	}
	recipe.Params = params
	recipe.Mode = mode
	recipe.Steps = append(recipe.Steps, cfg.steps...)
	return recipe, ExitCodeSuccess
}

// resolveParams picks the parameters and mode. Command line mappings are
// merged over recipe params; a mapping or --named selects named mode.
func resolveParams(cfg *renderConfig, recipe *strfmt.Recipe) (any, strfmt.Mode, error) {
	data, err := loadData(cfg.data, cfg.dataFilePath)
	if err != nil {
		return nil, "", err
	}
	if data == nil {
		data = recipe.Params
	} else if override, ok := data.(map[string]any); ok {
		if base, ok := recipe.Params.(map[string]any); ok {
			data = mergeParams(base, override)
		}
	}

	mode := recipe.Mode
	if _, ok := data.(map[string]any); ok || cfg.named {
		mode = strfmt.ModeNamed
	}

	if len(cfg.params) == 0 {
		return data, mode, nil
	}

	if mode == strfmt.ModeNamed {
		named, err := parseNamedArgs(cfg.params)
		if err != nil {
			return nil, "", err
		}
		base, _ := data.(map[string]any)
		return mergeParams(base, named), mode, nil
	}

	if _, isList := data.([]any); data != nil && !isList {
		return nil, "", errors.New(ErrMsgMixedParams)
	}
	list, _ := data.([]any)
	for _, p := range cfg.params {
		list = append(list, p)
	}
	return list, mode, nil
}

// mergeParams returns base overridden by override
func mergeParams(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func renderOptions(cfg *renderConfig, stderr io.Writer) ([]strfmt.Option, error) {
	opts := []strfmt.Option{strfmt.WithEncoding(cfg.encoding)}

	if cfg.language != "" {
		tag, err := language.Parse(cfg.language)
		if err != nil {
			return nil, err
		}
		opts = append(opts, strfmt.WithLanguage(tag))
	}

	if cfg.verbose {
		opts = append(opts, strfmt.WithLogger(newStderrLogger(stderr)))
	}
	return opts, nil
}

// newStderrLogger returns a console logger at debug level writing to stderr
func newStderrLogger(stderr io.Writer) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(stderr), zapcore.DebugLevel)
	return zap.New(core)
}
