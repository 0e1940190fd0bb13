package internal

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"sync"
)

// Argument index constants for error reporting
const (
	ArgIndexFirst  = 0
	ArgIndexSecond = 1
	ArgIndexThird  = 2
)

// Argument type names for error reporting
const (
	ArgTypeString   = "string"
	ArgTypeInt      = "int"
	ArgTypeBool     = "bool"
	ArgTypeReplace  = "string or replace func"
	ArgTypePattern  = "string or *regexp.Regexp"
	ArgTypeRegexRep = "string or regex replace func"
	ArgTypeFunc     = "transform func"
)

// Step is a named pipeline operation
type Step struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for variadic
	Apply   func(w *Worker, args []any) error
}

// StepRegistry holds the operations a pipeline can run
type StepRegistry struct {
	steps map[string]*Step
	mu    sync.RWMutex
}

// NewStepRegistry creates an empty registry
func NewStepRegistry() *StepRegistry {
	return &StepRegistry{
		steps: make(map[string]*Step),
	}
}

// Register adds a step to the registry
func (r *StepRegistry) Register(s *Step) error {
	if s == nil {
		return NewStepError(ErrMsgStepNil, "")
	}
	if s.Name == "" {
		return NewStepError(ErrMsgStepEmptyName, "")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.steps[s.Name]; exists {
		return NewStepError(ErrMsgStepExists, s.Name)
	}
	r.steps[s.Name] = s
	return nil
}

// MustRegister adds a step and panics on error
func (r *StepRegistry) MustRegister(s *Step) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Get retrieves a step by name
func (r *StepRegistry) Get(name string) (*Step, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.steps[name]
	return s, ok
}

// Has checks if a step is registered
func (r *StepRegistry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// List returns all step names in sorted order
func (r *StepRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.steps))
	for name := range r.steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that name exists and accepts argc arguments
func (r *StepRegistry) Validate(name string, argc int) error {
	s, ok := r.Get(name)
	if !ok {
		return NewStepError(ErrMsgUnknownStep, name)
	}
	if argc < s.MinArgs {
		return NewStepArityError(ErrMsgStepTooFewArgs, name, s.MinArgs, argc)
	}
	if s.MaxArgs >= 0 && argc > s.MaxArgs {
		return NewStepArityError(ErrMsgStepTooManyArgs, name, s.MaxArgs, argc)
	}
	return nil
}

// Apply runs step name on w. A panicking step, including a panicking user
// callback, is returned as a *PanicError and w keeps its previous text.
func (r *StepRegistry) Apply(w *Worker, name string, args []any) (err error) {
	if err := r.Validate(name, len(args)); err != nil {
		return err
	}
	s, _ := r.Get(name)
	before := w.text
	defer func() {
		if rec := recover(); rec != nil {
			w.text = before
			err = NewPanicError(ErrMsgStepPanicked, name, rec)
		}
	}()
	return s.Apply(w, args)
}

var (
	defaultStepsOnce sync.Once
	defaultSteps     *StepRegistry
)

// DefaultSteps returns the shared registry of built-in steps
func DefaultSteps() *StepRegistry {
	defaultStepsOnce.Do(func() {
		defaultSteps = NewStepRegistry()
		RegisterBuiltinSteps(defaultSteps)
	})
	return defaultSteps
}

// StepError represents an unknown step or a registry failure
type StepError struct {
	Message  string
	StepName string
}

// NewStepError creates a new step error
func NewStepError(message, stepName string) *StepError {
	return &StepError{Message: message, StepName: stepName}
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e.StepName == "" {
		return e.Message
	}
	return fmt.Sprintf(ErrFmtWithSubject, e.Message, e.StepName)
}

// StepArityError represents a wrong number of step arguments
type StepArityError struct {
	Message  string
	StepName string
	Expected int
	Actual   int
}

// NewStepArityError creates a new step arity error
func NewStepArityError(message, stepName string, expected, actual int) *StepArityError {
	return &StepArityError{Message: message, StepName: stepName, Expected: expected, Actual: actual}
}

// Error implements the error interface
func (e *StepArityError) Error() string {
	return fmt.Sprintf(ErrFmtArity, e.Message, e.StepName, e.Expected, e.Actual)
}

// StepArgError represents a step argument of the wrong type
type StepArgError struct {
	StepName string
	ArgIndex int
	Expected string
	Actual   any
}

// NewStepArgError creates a new step argument error
func NewStepArgError(stepName string, argIndex int, expected string, actual any) *StepArgError {
	return &StepArgError{StepName: stepName, ArgIndex: argIndex, Expected: expected, Actual: actual}
}

// Error implements the error interface
func (e *StepArgError) Error() string {
	return fmt.Sprintf(ErrFmtArgType, ErrMsgStepArgType, e.StepName, e.ArgIndex, e.Expected, e.Actual)
}

// optional reports whether argument i is absent or nil
func optional(args []any, i int) bool {
	return i >= len(args) || args[i] == nil
}

func argString(step string, args []any, i int, def string) (string, error) {
	if optional(args, i) {
		return def, nil
	}
	s, ok := args[i].(string)
	if !ok {
		return "", NewStepArgError(step, i, ArgTypeString, args[i])
	}
	return s, nil
}

func argInt(step string, args []any, i int, def int) (int, error) {
	if optional(args, i) {
		return def, nil
	}
	switch v := args[i].(type) {
	case int:
		return v, nil
	case int8:
		return int(v), nil
	case int16:
		return int(v), nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == math.Trunc(v) {
			return int(v), nil
		}
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int(v), nil
		}
	}
	return 0, NewStepArgError(step, i, ArgTypeInt, args[i])
}

func argBool(step string, args []any, i int, def bool) (bool, error) {
	if optional(args, i) {
		return def, nil
	}
	b, ok := args[i].(bool)
	if !ok {
		return false, NewStepArgError(step, i, ArgTypeBool, args[i])
	}
	return b, nil
}

// asReplaceFunc accepts ReplaceFunc or an equivalent plain func
func asReplaceFunc(v any) (ReplaceFunc, bool) {
	switch fn := v.(type) {
	case ReplaceFunc:
		return fn, fn != nil
	case func(string, string) string:
		return fn, fn != nil
	}
	return nil, false
}

func asRegexReplaceFunc(v any) (RegexReplaceFunc, bool) {
	switch fn := v.(type) {
	case RegexReplaceFunc:
		return fn, fn != nil
	case func([]string) string:
		return fn, fn != nil
	}
	return nil, false
}

func asTransformFunc(v any) (TransformFunc, bool) {
	switch fn := v.(type) {
	case TransformFunc:
		return fn, fn != nil
	case func(string, ...any) string:
		return fn, fn != nil
	case func(string) string:
		if fn == nil {
			return nil, false
		}
		return func(s string, _ ...any) string { return fn(s) }, true
	}
	return nil, false
}

func asRegexp(step string, v any) (*regexp.Regexp, error) {
	switch p := v.(type) {
	case *regexp.Regexp:
		if p != nil {
			return p, nil
		}
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtWithSubject, ErrMsgInvalidRegex, err.Error())
		}
		return re, nil
	}
	return nil, NewStepArgError(step, ArgIndexFirst, ArgTypePattern, v)
}
