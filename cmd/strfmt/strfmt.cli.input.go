package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/itsatony/go-strfmt"
	"gopkg.in/yaml.v3"
)

// readInput reads content from a file or stdin
func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == InputSourceStdin {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

// loadData decodes inline or file parameter data. A nil result means no
// data was given.
func loadData(inline, filePath string) (any, error) {
	var raw []byte
	switch {
	case inline != "" && filePath != "":
		return nil, errors.New(ErrMsgDataAndDataFile)
	case filePath != "":
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		raw = data
	case inline != "":
		raw = []byte(inline)
	default:
		return nil, nil
	}

	var out any
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// parseNamedArgs turns key=value arguments into named parameters
func parseNamedArgs(args []string) (map[string]any, error) {
	out := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, NamedParamAssign)
		if !ok || key == "" {
			return nil, fmt.Errorf("%s: %q", ErrMsgInvalidNamedParam, arg)
		}
		out[key] = value
	}
	return out, nil
}

// stepList collects repeated --step flags
type stepList []strfmt.RecipeStep

func (s *stepList) String() string {
	names := make([]string, len(*s))
	for i, step := range *s {
		names[i] = step.Name
	}
	return strings.Join(names, ",")
}

func (s *stepList) Set(value string) error {
	step, err := parseStepFlag(value)
	if err != nil {
		return err
	}
	*s = append(*s, step)
	return nil
}

// parseStepFlag reads "name" or "name:arg,arg". The argument list is
// decoded as a YAML flow sequence, so numbers and booleans keep their
// type and quoted strings may contain commas or escapes.
func parseStepFlag(value string) (strfmt.RecipeStep, error) {
	name, rawArgs, hasArgs := strings.Cut(value, StepArgSeparator)
	name = strings.TrimSpace(name)
	if name == "" {
		return strfmt.RecipeStep{}, fmt.Errorf("%s: %q", ErrMsgInvalidStepFlag, value)
	}
	step := strfmt.RecipeStep{Name: name}
	if !hasArgs {
		return step, nil
	}

	if err := yaml.Unmarshal([]byte(StepArgsOpen+rawArgs+StepArgsClose), &step.Args); err != nil {
		return strfmt.RecipeStep{}, fmt.Errorf("%s: %q: %w", ErrMsgInvalidStepFlag, value, err)
	}
	return step, nil
}
