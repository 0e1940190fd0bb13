package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strfmt"
)

// checkConfig holds parsed check command configuration
type checkConfig struct {
	format     string
	recipePath string
	named      bool
	output     string
}

// checkOutput represents JSON output for check
type checkOutput struct {
	Valid   bool               `json:"valid"`
	Mode    string             `json:"mode"`
	Tokens  []strfmt.TokenInfo `json:"tokens"`
	Unknown int                `json:"unknown"`
	Error   string             `json:"error,omitempty"`
}

func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseCheckFlags(args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgMissingFormat, err)
		return ExitCodeUsageError
	}

	mode := strfmt.ModeIndexed
	if cfg.named {
		mode = strfmt.ModeNamed
	}
	format := cfg.format
	result := checkOutput{Valid: true}

	switch {
	case cfg.recipePath != "":
		raw, err := readInput(cfg.recipePath, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
		recipe, err := strfmt.ParseRecipe(raw)
		if err != nil {
			result.Valid = false
			result.Error = err.Error()
			break
		}
		format = recipe.Format
		if recipe.Mode != "" {
			mode = recipe.Mode
		}
	case format == InputSourceStdin:
		raw, err := readInput(InputSourceStdin, stdin)
		if err != nil {
			fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgReadFileFailed, err)
			return ExitCodeInputError
		}
		format = string(raw)
	}

	result.Mode = string(mode)
	result.Tokens = strfmt.Tokens(format, mode)
	for _, tok := range result.Tokens {
		if tok.Kind == strfmt.TokenKindUnknown {
			result.Unknown++
		}
	}
	if result.Unknown > 0 {
		result.Valid = false
	}

	if cfg.output == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(result, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
	} else {
		outputCheckText(result, cfg.recipePath != "", stdout)
	}

	if !result.Valid {
		return ExitCodeValidationError
	}
	return ExitCodeSuccess
}

func parseCheckFlags(args []string) (*checkConfig, error) {
	fs := flag.NewFlagSet(CmdNameCheck, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	cfg := &checkConfig{}

	fs.StringVar(&cfg.format, FlagFormat, "", "")
	fs.StringVar(&cfg.format, FlagFormatShort, "", "")
	fs.StringVar(&cfg.recipePath, FlagRecipe, "", "")
	fs.StringVar(&cfg.recipePath, FlagRecipeShort, "", "")
	fs.BoolVar(&cfg.named, FlagNamed, false, "")
	fs.BoolVar(&cfg.named, FlagNamedShort, false, "")
	fs.StringVar(&cfg.output, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&cfg.output, FlagOutputFormatShort, FlagDefaultOutputFormat, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.format == "" && cfg.recipePath == "" {
		return nil, errors.New(ErrMsgMissingFormat)
	}
	if cfg.format != "" && cfg.recipePath != "" {
		return nil, errors.New(ErrMsgFormatAndRecipe)
	}
	if cfg.output != OutputFormatText && cfg.output != OutputFormatJSON {
		return nil, errors.New(ErrMsgInvalidFormat)
	}

	return cfg, nil
}

func outputCheckText(result checkOutput, fromRecipe bool, stdout io.Writer) {
	if result.Error != "" {
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgRecipeFailed, result.Error)
		return
	}
	if fromRecipe {
		fmt.Fprintln(stdout, CheckTextRecipeValid)
	}
	if len(result.Tokens) == 0 {
		fmt.Fprintln(stdout, CheckTextNoTokens)
		return
	}

	fmt.Fprintf(stdout, CheckTextHeader+FmtNewline, result.Mode)
	for _, tok := range result.Tokens {
		fmt.Fprintf(stdout, CheckTextTokenFormat+FmtNewline, tok.Kind, tok.Token)
	}
	fmt.Fprintf(stdout, CheckTextSummary+FmtNewline, len(result.Tokens), result.Unknown)
}
