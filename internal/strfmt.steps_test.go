package internal

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopStep(name string) *Step {
	return &Step{
		Name:    name,
		MinArgs: 0,
		MaxArgs: 1,
		Apply:   func(*Worker, []any) error { return nil },
	}
}

func TestStepRegistry_Register(t *testing.T) {
	r := NewStepRegistry()

	require.NoError(t, r.Register(noopStep("noop")))
	assert.True(t, r.Has("noop"))

	err := r.Register(noopStep("noop"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgStepExists)

	err = r.Register(nil)
	require.Error(t, err)
	assert.Equal(t, ErrMsgStepNil, err.Error())

	err = r.Register(&Step{})
	require.Error(t, err)
	assert.Equal(t, ErrMsgStepEmptyName, err.Error())
}

func TestStepRegistry_MustRegister(t *testing.T) {
	r := NewStepRegistry()

	assert.NotPanics(t, func() { r.MustRegister(noopStep("a")) })
	assert.Panics(t, func() { r.MustRegister(noopStep("a")) })
}

func TestStepRegistry_GetAndList(t *testing.T) {
	r := NewStepRegistry()
	r.MustRegister(noopStep("b"))
	r.MustRegister(noopStep("a"))

	s, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", s.Name)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, r.List())
}

func TestStepRegistry_Validate(t *testing.T) {
	r := DefaultSteps()

	assert.NoError(t, r.Validate(StepReplace, 2))
	assert.NoError(t, r.Validate(StepTransform, 5))

	var stepErr *StepError
	err := r.Validate("nope", 0)
	require.ErrorAs(t, err, &stepErr)
	assert.Equal(t, "nope", stepErr.StepName)

	var arityErr *StepArityError
	err = r.Validate(StepReplace, 1)
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, ErrMsgStepTooFewArgs, arityErr.Message)
	assert.Equal(t, 2, arityErr.Expected)
	assert.Equal(t, 1, arityErr.Actual)

	err = r.Validate(StepEOL, 1)
	require.ErrorAs(t, err, &arityErr)
	assert.Equal(t, ErrMsgStepTooManyArgs, arityErr.Message)
	assert.Contains(t, err.Error(), "(expected 0, got 1)")
}

func TestDefaultSteps_Builtins(t *testing.T) {
	expected := []string{
		StepReplace, StepIReplace, StepRegexReplace, StepStrip, StepLStrip, StepRStrip,
		StepUpper, StepLower, StepUpperFirst, StepLowerFirst, StepUpperWords, StepWordWrap,
		StepSubstr, StepRepeat, StepReverse, StepSquashWhitechars, StepInsert,
		StepEnsurePrefix, StepEnsureSuffix, StepPrefix, StepSuffix, StepSurround,
		StepEOL, StepEOLRN, StepEOLN, StepTransform,
	}

	r := DefaultSteps()
	assert.Len(t, r.List(), len(expected))
	for _, name := range expected {
		assert.True(t, r.Has(name), name)
	}
	assert.Same(t, r, DefaultSteps())
}

func TestBuiltinSteps_Apply(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		step     string
		args     []any
		expected string
	}{
		{"replace", "Hello world", StepReplace, []any{"world", "John"}, "Hello John"},
		{"replace func", "a-a", StepReplace, []any{"a", func(m, _ string) string { return m + m }}, "aa-aa"},
		{"replace typed func", "a-a", StepReplace, []any{"a", ReplaceFunc(func(m, _ string) string { return "b" })}, "b-b"},
		{"ireplace", "World world", StepIReplace, []any{"WORLD", "x"}, "x x"},
		{"regex string", "a1b22", StepRegexReplace, []any{`\d+`, "#"}, "a#b#"},
		{"regex compiled", "a1b22", StepRegexReplace, []any{regexp.MustCompile(`\d`), "#", 2}, "a#b#2"},
		{"regex yaml limit", "aaa", StepRegexReplace, []any{`a`, "b", float64(1)}, "baa"},
		{"regex nil limit", "aaa", StepRegexReplace, []any{`a`, "b", nil}, "bbb"},
		{"regex func", "ab", StepRegexReplace, []any{`(a)(b)`, func(g []string) string { return g[2] + g[1] }}, "ba"},
		{"strip default", "  x  ", StepStrip, nil, "x"},
		{"lstrip chars", "--x--", StepLStrip, []any{"-"}, "x--"},
		{"rstrip chars", "--x--", StepRStrip, []any{"-"}, "--x"},
		{"upper", "ąb", StepUpper, nil, "ĄB"},
		{"lower encoded", "ĄB", StepLower, []any{EncodingBinary}, "Ąb"},
		{"upper first", "ab", StepUpperFirst, nil, "Ab"},
		{"lower first", "AB", StepLowerFirst, nil, "aB"},
		{"upper words", "a b", StepUpperWords, nil, "A B"},
		{"upper words delims", "a_b c", StepUpperWords, []any{"_"}, "A_B c"},
		{"word wrap default", "short", StepWordWrap, nil, "short"},
		{"word wrap args", "The quick brown fox", StepWordWrap, []any{10, "\n", true}, "The quick\nbrown fox"},
		{"substr", "ąbćd", StepSubstr, []any{1, 2}, "bć"},
		{"substr no length", "ąbćd", StepSubstr, []any{-1}, "d"},
		{"substr nil length", "ąbćd", StepSubstr, []any{2, nil}, "ćd"},
		{"repeat", "ab", StepRepeat, []any{2}, "abab"},
		{"reverse", "ąbć", StepReverse, nil, "ćbą"},
		{"squash", " a  b ", StepSquashWhitechars, nil, "a b"},
		{"insert", "ac", StepInsert, []any{"b", 1}, "abc"},
		{"ensure prefix", "x", StepEnsurePrefix, []any{"/"}, "/x"},
		{"ensure suffix present", "x/", StepEnsureSuffix, []any{"/"}, "x/"},
		{"prefix", "x", StepPrefix, []any{">"}, ">x"},
		{"suffix", "x", StepSuffix, []any{"<"}, "x<"},
		{"surround", "x", StepSurround, []any{"'"}, "'x'"},
		{"eoln", "x", StepEOLN, nil, "x\n"},
		{"eolrn", "x", StepEOLRN, nil, "x\r\n"},
		{"eol", "x", StepEOL, nil, "x" + PlatformEOL()},
		{"transform", "x", StepTransform, []any{func(s string, args ...any) string { return s + args[0].(string) }, "y"}, "xy"},
		{"transform simple", "x", StepTransform, []any{strings.ToUpper}, "X"},
		{"transform typed", "x", StepTransform, []any{TransformFunc(func(s string, _ ...any) string { return s + s })}, "xx"},
	}

	r := DefaultSteps()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorker(tt.text, WorkerConfig{})
			require.NoError(t, r.Apply(w, tt.step, tt.args))
			assert.Equal(t, tt.expected, w.String())
		})
	}
}

func TestBuiltinSteps_ArgErrors(t *testing.T) {
	tests := []struct {
		name string
		step string
		args []any
	}{
		{"replace from not string", StepReplace, []any{1, "x"}},
		{"replace to wrong type", StepReplace, []any{"a", 5}},
		{"regex pattern wrong type", StepRegexReplace, []any{5, "x"}},
		{"regex replacement wrong type", StepRegexReplace, []any{"a", 5}},
		{"regex limit fractional", StepRegexReplace, []any{"a", "b", 1.5}},
		{"strip chars wrong type", StepStrip, []any{true}},
		{"word wrap cut wrong type", StepWordWrap, []any{10, "\n", "yes"}},
		{"repeat count wrong type", StepRepeat, []any{"3"}},
		{"transform not a func", StepTransform, []any{"fn"}},
		{"insert idx wrong type", StepInsert, []any{"x", "1"}},
	}

	r := DefaultSteps()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorker("aaa", WorkerConfig{})
			err := r.Apply(w, tt.step, tt.args)

			var argErr *StepArgError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, tt.step, argErr.StepName)
			assert.Contains(t, err.Error(), ErrMsgStepArgType)
			assert.Equal(t, "aaa", w.String())
		})
	}
}

func TestBuiltinSteps_ExecErrors(t *testing.T) {
	r := DefaultSteps()

	err := r.Apply(NewWorker("x", WorkerConfig{}), StepRegexReplace, []any{"(", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgInvalidRegex)

	err = r.Apply(NewWorker("x", WorkerConfig{}), StepRepeat, []any{-2})
	assert.Equal(t, ErrMsgNegativeRepeat, err.Error())

	err = r.Apply(NewWorker("x", WorkerConfig{}), StepWordWrap, []any{0, "\n", true})
	assert.Equal(t, ErrMsgCutWithZeroWidth, err.Error())

	err = r.Apply(NewWorker("x", WorkerConfig{}), StepUpper, []any{"nope"})
	assert.Contains(t, err.Error(), ErrMsgUnknownEncoding)

	err = r.Apply(NewWorker("x", WorkerConfig{}), "nope", nil)
	var stepErr *StepError
	assert.True(t, errors.As(err, &stepErr))
}

func TestArgInt(t *testing.T) {
	tests := []struct {
		name     string
		arg      any
		expected int
		ok       bool
	}{
		{"int", 3, 3, true},
		{"int64", int64(4), 4, true},
		{"uint8", uint8(5), 5, true},
		{"whole float", float64(6), 6, true},
		{"float32", float32(7), 7, true},
		{"fraction", 1.5, 0, false},
		{"string", "8", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := argInt("s", []any{tt.arg}, 0, -1)
			assert.Equal(t, tt.ok, err == nil)
			assert.Equal(t, tt.expected, n)
		})
	}

	n, err := argInt("s", nil, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestStepRegistry_ApplyRecoversPanic(t *testing.T) {
	r := NewStepRegistry()
	r.MustRegister(&Step{
		Name:    "explode",
		MaxArgs: 0,
		Apply: func(w *Worker, _ []any) error {
			w.text = "half done"
			panic("step boom")
		},
	})

	w := newWorker("untouched")
	var err error
	require.NotPanics(t, func() { err = r.Apply(w, "explode", nil) })

	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, ErrMsgStepPanicked, pe.Message)
	assert.Equal(t, "explode", pe.Subject)
	assert.Equal(t, "step boom", pe.Recovered)
	assert.Equal(t, "untouched", w.String(), "text is restored after a panic")
}
