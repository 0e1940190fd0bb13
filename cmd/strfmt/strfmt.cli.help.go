package main

import (
	"fmt"
	"io"
)

func runHelp(args []string, stdout io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeSuccess
	}

	cmd := args[0]
	switch cmd {
	case CmdNameRender:
		fmt.Fprintln(stdout, HelpRenderUsage)
	case CmdNameCheck:
		fmt.Fprintln(stdout, HelpCheckUsage)
	case CmdNameSteps:
		fmt.Fprintln(stdout, HelpStepsUsage)
	case CmdNameVersion:
		fmt.Fprintln(stdout, HelpVersionUsage)
	case CmdNameHelp:
		fmt.Fprintln(stdout, HelpHelpUsage)
	default:
		fmt.Fprintf(stdout, FmtErrorWithDetail, ErrMsgUnknownCommand, cmd)
		fmt.Fprintln(stdout, HelpMainUsage)
		return ExitCodeUsageError
	}

	return ExitCodeSuccess
}
