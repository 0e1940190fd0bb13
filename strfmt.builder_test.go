package strfmt

import (
	"errors"
	"math"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/itsatony/go-cuserr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"
)

type person struct {
	Name string
}

func TestBuilder_Pipeline(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *Builder
		expected string
	}{
		{
			name:     "strip upper words replace",
			build:    func() *Builder { return IFormatL("{}", "  hello world  ").Strip().UpperWords().Replace("World", "Gopher") },
			expected: "Hello Gopher",
		},
		{
			name:     "ireplace",
			build:    func() *Builder { return IFormatL("Go go GO").IReplace("go", "run") },
			expected: "run run run",
		},
		{
			name: "ireplace func keeps spelling",
			build: func() *Builder {
				return IFormatL("Go go").IReplaceFunc("go", func(match, _ string) string { return "<" + match + ">" })
			},
			expected: "<Go> <go>",
		},
		{
			name:     "regex replace",
			build:    func() *Builder { return IFormatL("a1b22c333").RegexReplace(`(\d+)`, "[$1]") },
			expected: "a[1]b[22]c[333]",
		},
		{
			name:     "regex replace limit",
			build:    func() *Builder { return IFormatL("a1b22c333").RegexReplaceN(`\d+`, "#", 2) },
			expected: "a#b#c333",
		},
		{
			name: "regex replace func",
			build: func() *Builder {
				return IFormatL("k=v").RegexReplaceFunc(`(\w)=(\w)`, func(g []string) string { return g[2] + "=" + g[1] })
			},
			expected: "v=k",
		},
		{
			name:     "strip chars",
			build:    func() *Builder { return IFormatL("xxhixx").StripChars("x") },
			expected: "hi",
		},
		{
			name:     "lstrip rstrip",
			build:    func() *Builder { return IFormatL("--hi--").LStripChars("-").Suffix("|").RStripChars("|") },
			expected: "hi--",
		},
		{
			name:     "case steps",
			build:    func() *Builder { return IFormatL("hELLO").Lower().UpperFirst() },
			expected: "Hello",
		},
		{
			name:     "lower first",
			build:    func() *Builder { return IFormatL("Hello").LowerFirst() },
			expected: "hello",
		},
		{
			name:     "upper words delimited",
			build:    func() *Builder { return IFormatL("hello_world-go").UpperWordsDelimited("_-") },
			expected: "Hello_World-Go",
		},
		{
			name:     "word wrap",
			build:    func() *Builder { return IFormatL("{} has {1#b} items", "box", 5).WordWrap(8, "\n", true) },
			expected: "box has\n101\nitems",
		},
		{
			name:     "substr",
			build:    func() *Builder { return IFormatL("Hello world").Substr(-5) },
			expected: "world",
		},
		{
			name:     "substr length",
			build:    func() *Builder { return IFormatL("Hello world").SubstrLen(0, 5) },
			expected: "Hello",
		},
		{
			name:     "repeat reverse",
			build:    func() *Builder { return IFormatL("ab").Repeat(3).Reverse() },
			expected: "bababa",
		},
		{
			name:     "squash",
			build:    func() *Builder { return IFormatL("  a \t b\n\nc ").SquashWhitechars() },
			expected: "a b c",
		},
		{
			name:     "insert",
			build:    func() *Builder { return IFormatL("Hllo").Insert("e", 1) },
			expected: "Hello",
		},
		{
			name:     "ensure affixes",
			build:    func() *Builder { return IFormatL("/path").EnsurePrefix("/").EnsureSuffix("/") },
			expected: "/path/",
		},
		{
			name:     "affixes",
			build:    func() *Builder { return IFormatL("x").Prefix("<").Suffix(">").Surround("\"") },
			expected: "\"<x>\"",
		},
		{
			name:     "line endings",
			build:    func() *Builder { return IFormatL("a").EOLN().Suffix("b").EOLRN() },
			expected: "a\nb\r\n",
		},
		{
			name: "transform",
			build: func() *Builder {
				return IFormatL("go").Transform(func(s string, args ...any) string {
					return s + strings.Repeat("!", args[0].(int))
				}, 2)
			},
			expected: "go!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			assert.Equal(t, tt.expected, b.String())
			assert.NoError(t, b.Err())
		})
	}
}

func TestBuilder_EOL(t *testing.T) {
	out := IFormatL("a").EOL().String()
	assert.True(t, strings.HasPrefix(out, "a"))
	assert.Contains(t, []string{"a\n", "a\r\n"}, out)
}

func TestBuilder_Memoized(t *testing.T) {
	p := &person{Name: "world"}
	b := NewFormatter("Hello {0->Name}").Compile(p).Replace("world", "John")

	assert.Equal(t, "Hello John", b.String())

	p.Name = "everyone"
	assert.Equal(t, "Hello John", b.String(), "unfolded builders are cached")

	derived := b.Suffix("!")
	assert.Equal(t, "Hello everyone!", derived.String(), "a derived builder compiles again")
}

func TestBuilder_Persistent(t *testing.T) {
	base := IFormatL("{}", "go").Upper()
	left := base.Prefix("<")
	right := base.Suffix(">")

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, left.Len())
	assert.Equal(t, 2, right.Len())

	assert.Equal(t, "GO", base.String())
	assert.Equal(t, "<GO", left.String())
	assert.Equal(t, "GO>", right.String())
}

func TestBuilder_SiblingsDoNotShareSteps(t *testing.T) {
	// grow the step slice so append has spare capacity
	base := IFormatL("x").Prefix("a").Prefix("b").Prefix("c")
	first := base.Suffix("1")
	second := base.Suffix("2")

	assert.Equal(t, "cbax1", first.String())
	assert.Equal(t, "cbax2", second.String())
}

func TestBuilder_ConcurrentUnfold(t *testing.T) {
	var calls atomic.Int32
	b := IFormatL("{}", "go").Transform(func(s string, _ ...any) string {
		calls.Add(1)
		return s + "!"
	})

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = b.Unfold()
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, "go!", r)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestBuilder_StepFailure(t *testing.T) {
	var seen []Diagnostic
	b := NewFormatter("ab").
		With(WithDiagnosticHandler(func(d Diagnostic) { seen = append(seen, d) })).
		Compile().
		Repeat(-1).
		Upper().
		RegexReplace("(", "x")

	assert.Equal(t, "AB", b.String(), "failed steps are skipped")

	err := b.Err()
	require.Error(t, err)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var customErr *cuserr.CustomError
	require.True(t, errors.As(errs[0], &customErr))
	step, _ := customErr.GetMetadata(MetaKeyStep)
	idx, _ := customErr.GetMetadata(MetaKeyIndex)
	assert.Equal(t, StepRepeat, step)
	assert.Equal(t, "0", idx)

	require.True(t, errors.As(errs[1], &customErr))
	step, _ = customErr.GetMetadata(MetaKeyStep)
	idx, _ = customErr.GetMetadata(MetaKeyIndex)
	assert.Equal(t, StepRegexReplace, step)
	assert.Equal(t, "2", idx)

	diags := b.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, DiagnosticStepFailed, diags[0].Kind)
	assert.Equal(t, StepRepeat, diags[0].Token)
	assert.Len(t, seen, 2)
}

func TestBuilder_Step(t *testing.T) {
	t.Run("known step", func(t *testing.T) {
		b, err := IFormatL("go").Step(StepSurround, "*")
		require.NoError(t, err)
		assert.Equal(t, "*go*", b.String())
	})

	t.Run("wrong argument type fails at unfold", func(t *testing.T) {
		b, err := IFormatL("go").Step(StepRepeat, "twice")
		require.NoError(t, err)
		assert.Equal(t, "go", b.String())
		assert.Error(t, b.Err())
	})

	t.Run("unknown step", func(t *testing.T) {
		b, err := IFormatL("go").Step("uper")
		require.Error(t, err)
		assert.Nil(t, b)
		assert.Contains(t, err.Error(), ErrMsgUnknownStep)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		step, _ := customErr.GetMetadata(MetaKeyStep)
		assert.Equal(t, "uper", step)
		suggestions, ok := customErr.GetMetadata(MetaKeySuggestions)
		assert.True(t, ok)
		assert.Contains(t, suggestions, StepUpper)
	})

	t.Run("too many arguments", func(t *testing.T) {
		base := IFormatL("go").Prefix("<")
		b, err := base.Step(StepUpper, "utf-8", "extra")
		require.Error(t, err)
		assert.Nil(t, b)
		assert.Equal(t, 1, base.Len(), "the receiver is unchanged")
		assert.Equal(t, "<go", base.String())
		assert.Contains(t, err.Error(), ErrMsgInvalidStep)

		var customErr *cuserr.CustomError
		require.True(t, errors.As(err, &customErr))
		expected, _ := customErr.GetMetadata(MetaKeyExpected)
		actual, _ := customErr.GetMetadata(MetaKeyActual)
		assert.Equal(t, "1", expected)
		assert.Equal(t, "2", actual)
	})

	t.Run("too few arguments", func(t *testing.T) {
		_, err := IFormatL("go").Step(StepReplace, "g")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgInvalidStep)
	})
}

func TestBuilder_Diagnostics(t *testing.T) {
	b := IFormatL("{} {} {x}", "only")
	assert.Equal(t, "only {} {x}", b.String())

	diags := b.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, DiagnosticMissingParameter, diags[0].Kind)
	assert.Equal(t, "{}", diags[0].Token)
	assert.Equal(t, DiagnosticMalformedToken, diags[1].Kind)

	diags[0].Token = "changed"
	assert.Equal(t, "{}", b.Diagnostics()[0].Token, "diagnostics are returned as a copy")
}

func TestBuilder_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	logger := zap.New(core)

	b := NewFormatter("{0}{1}", "a").With(WithLogger(logger)).Compile().Upper()
	assert.Equal(t, "A{1}", b.String())

	assert.NotEmpty(t, logs.FilterMessage(LogMsgUnfoldStart).All())
	assert.NotEmpty(t, logs.FilterMessage(LogMsgStepApplied).All())

	ends := logs.FilterMessage(LogMsgUnfoldEnd).All()
	require.Len(t, ends, 1)
	ctx := ends[0].ContextMap()
	assert.Equal(t, int64(1), ctx[LogFieldDiagnostics])
	assert.Equal(t, int64(4), ctx[LogFieldResultLength])
}

func TestBuilder_Encoding(t *testing.T) {
	t.Run("utf-8 by default", func(t *testing.T) {
		assert.Equal(t, "ŻÓŁW", IFormatL("żółw").Upper().String())
		assert.Equal(t, "włóż", IFormatL("żółw").Reverse().String())
	})

	t.Run("binary encoding leaves multibyte characters", func(t *testing.T) {
		b := IFormat("{}", []any{"żab"}, WithEncoding(EncodingBinary)).Upper()
		assert.Equal(t, "żAB", b.String())
		assert.NoError(t, b.Err())
	})

	t.Run("unknown encoding fails the step", func(t *testing.T) {
		b := IFormat("ab", nil, WithEncoding("no-such-charset")).Upper()
		assert.Equal(t, "ab", b.String())
		assert.Error(t, b.Err())
	})
}

func TestBuilder_Language(t *testing.T) {
	assert.Equal(t, "TITLE", IFormatL("title").Upper().String())
	assert.Equal(t, "TİTLE", IFormat("title", nil, WithLanguage(language.Turkish)).Upper().String())
}

func TestBuilder_Caller(t *testing.T) {
	ctx := &CallerContext{Package: "example.com/shop", Type: "Cart", Function: "Total", File: "/src/shop/cart.go", Line: 7}
	b := NewFormatter("{@method}@{@line}").With(WithCallerProvider(StaticCallerProvider{Context: ctx})).Compile()

	assert.Equal(t, "Cart::Total@7", b.String())
	require.NotNil(t, b.Caller())
	assert.Equal(t, "Cart", b.Caller().Type)
	assert.Same(t, b.Caller(), b.Suffix("").Caller(), "derived builders share the call site")
}

type bomb struct{}

func (bomb) Explode() string { panic("boom") }

func TestBuilder_MemberPanic(t *testing.T) {
	b := IFormatL("[{->Explode}]", bomb{})

	var first string
	require.NotPanics(t, func() { first = b.String() })
	assert.Equal(t, "[{->Explode}]", first)
	assert.Equal(t, first, b.String(), "a repeated unfold returns the same text")

	diags := b.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagnosticUnresolvedMember, diags[0].Kind)

	var pe *PanicError
	require.ErrorAs(t, diags[0].Err, &pe)
	assert.Equal(t, "boom", pe.Recovered)
	assert.NoError(t, b.Err())
}

func TestBuilder_StepPanic(t *testing.T) {
	b := IFormatL("{}", "abc").
		Upper().
		ReplaceFunc("B", func(string, string) string { panic("callback boom") }).
		Suffix("!")

	var out string
	require.NotPanics(t, func() { out = b.String() })
	assert.Equal(t, "ABC!", out, "the panicking step is skipped")

	errs := multierr.Errors(b.Err())
	require.Len(t, errs, 1)
	assert.Equal(t, StepReplace, metadata(t, errs[0], MetaKeyStep))
	assert.Equal(t, "1", metadata(t, errs[0], MetaKeyIndex))

	var pe *PanicError
	require.ErrorAs(t, errs[0], &pe)
	assert.Equal(t, "callback boom", pe.Recovered)
}

func TestBuilder_HandlerPanic(t *testing.T) {
	b := NewFormatter("{x!} {}").
		With(WithDiagnosticHandler(func(Diagnostic) { panic("handler boom") })).
		Compile("ok")

	var out string
	require.NotPanics(t, func() { out = b.String() })
	assert.Equal(t, "{x!} ok", out)
	assert.Len(t, b.Diagnostics(), 1)
}

func TestBuilder_Overflow(t *testing.T) {
	t.Run("repeat", func(t *testing.T) {
		b := IFormatL("ab").Repeat(math.MaxInt / 2)
		assert.Equal(t, "ab", b.String())
		assert.Error(t, b.Err())
	})

	t.Run("substr to end", func(t *testing.T) {
		b := IFormatL("abcdef").SubstrLen(1, math.MaxInt)
		assert.Equal(t, "bcdef", b.String())
		assert.NoError(t, b.Err())
	})
}
