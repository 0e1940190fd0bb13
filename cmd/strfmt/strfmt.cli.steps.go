package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/itsatony/go-strfmt"
)

func runSteps(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(CmdNameSteps, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // Suppress default error messages

	var format string
	fs.StringVar(&format, FlagOutputFormat, FlagDefaultOutputFormat, "")
	fs.StringVar(&format, FlagOutputFormatShort, FlagDefaultOutputFormat, "")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}
	if format != OutputFormatText && format != OutputFormatJSON {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, errors.New(format))
		return ExitCodeUsageError
	}

	names := strfmt.StepNames()
	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(names, "", "  ")
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	for _, name := range names {
		fmt.Fprintln(stdout, name)
	}
	return ExitCodeSuccess
}
