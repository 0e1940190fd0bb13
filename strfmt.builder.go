package strfmt

import (
	"sync"

	"github.com/itsatony/go-strfmt/internal"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ReplaceFunc computes the replacement for a matched substring from the
// match and the whole string as it was before the replacement.
type ReplaceFunc = internal.ReplaceFunc

// RegexReplaceFunc computes the replacement for a regex match from the
// full match followed by its submatches.
type RegexReplaceFunc = internal.RegexReplaceFunc

// TransformFunc is an arbitrary operation on the current string
type TransformFunc = internal.TransformFunc

// MemberInvoker lets a value answer {key->name} tokens it has no method for
type MemberInvoker = internal.MemberInvoker

// MemberReader lets a value answer {key->name} tokens it has no field for
type MemberReader = internal.MemberReader

// builderPlan is everything a builder needs besides its steps.
// It is shared by a builder and all builders derived from it.
type builderPlan struct {
	format string
	mode   Mode
	source func() internal.ValueSource
	config *formatterConfig
	caller *CallerContext
}

type pipelineStep struct {
	name string
	args []any
}

// Builder accumulates pipeline steps and produces the final string on demand.
//
// Builders are persistent: every step method returns a new builder and
// leaves the receiver untouched, so a partially built pipeline can be
// reused as a prefix of several others. Each builder unfolds at most once:
// the first Unfold compiles the format, applies the steps and caches the
// result, later calls return the cache even if parameter values changed.
// A derived builder has its own cache and compiles again. Builders are
// safe for concurrent use.
type Builder struct {
	plan  *builderPlan
	steps []pipelineStep

	once        sync.Once
	result      string
	diagnostics []Diagnostic
	err         error
}

func newBuilder(plan *builderPlan) *Builder {
	plan.config.logger.Debug(LogMsgBuilderCreated,
		zap.String(LogFieldMode, string(plan.mode)),
		zap.Bool(LogFieldCaller, plan.caller != nil),
	)
	return &Builder{plan: plan}
}

// then returns a new builder with one more step. The full slice
// expression forces a copy so siblings never share a backing array.
func (b *Builder) then(name string, args ...any) *Builder {
	return &Builder{
		plan:  b.plan,
		steps: append(b.steps[:len(b.steps):len(b.steps)], pipelineStep{name: name, args: args}),
	}
}

// Step appends a step by name. Unknown names and wrong argument counts
// are rejected here; argument types are checked when the builder unfolds.
// On error the returned builder is nil and b is unchanged, so chaining must
// stop at the error.
func (b *Builder) Step(name string, args ...any) (*Builder, error) {
	steps := internal.DefaultSteps()
	if err := steps.Validate(name, len(args)); err != nil {
		if !steps.Has(name) {
			return nil, NewUnknownStepError(name, internal.FindSimilarStrings(name, steps.List(), internal.MaxSuggestions))
		}
		return nil, NewInvalidStepError(name, err)
	}
	return b.then(name, args...), nil
}

// Unfold compiles the format, applies every step in order and returns
// the result. Only the first call does any work.
func (b *Builder) Unfold() string {
	b.once.Do(b.unfold)
	return b.result
}

// String implements fmt.Stringer by unfolding the builder
func (b *Builder) String() string {
	return b.Unfold()
}

// Diagnostics unfolds the builder and returns every anomaly it reported
func (b *Builder) Diagnostics() []Diagnostic {
	b.once.Do(b.unfold)
	out := make([]Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// Err unfolds the builder and returns the combined errors of failed
// steps, or nil. Failed steps are skipped; the rest of the pipeline runs.
func (b *Builder) Err() error {
	b.once.Do(b.unfold)
	return b.err
}

// Caller returns the call-site record captured when the builder was created
func (b *Builder) Caller() *CallerContext {
	return b.plan.caller
}

// Len returns the number of recorded steps
func (b *Builder) Len() int {
	return len(b.steps)
}

// unfold runs once per builder. A panic that escapes the compiler and the
// step guards leaves the last good text as the result and is returned by Err.
func (b *Builder) unfold() {
	p := b.plan
	logger := p.config.logger
	logger.Debug(LogMsgUnfoldStart, zap.Int(LogFieldStepCount, len(b.steps)))

	sink := internal.NewDiagnosticSink(logger, p.config.handler)
	var errs error
	b.result = p.format
	defer func() {
		if r := recover(); r != nil {
			logger.Error(LogMsgUnfoldPanicked, zap.Any(LogFieldPanic, r))
			b.diagnostics = sink.Diagnostics()
			b.err = multierr.Append(errs, NewUnfoldPanicError(r))
		}
	}()

	compiler := internal.NewCompiler(p.format, p.source(), internal.CompilerConfig{
		Mode:   p.mode,
		Caller: p.caller,
	}, sink, logger)

	worker := internal.NewWorker(compiler.Run(), internal.WorkerConfig{
		Encoding: p.config.encoding,
		Language: p.config.language,
	})

	b.result = worker.String()

	registry := internal.DefaultSteps()
	for i, s := range b.steps {
		if err := registry.Apply(worker, s.name, s.args); err != nil {
			logger.Debug(LogMsgStepFailed, zap.String(LogFieldStep, s.name), zap.Error(err))
			sink.Report(Diagnostic{
				Kind:    DiagnosticStepFailed,
				Token:   s.name,
				Message: internal.ErrMsgStepFailed,
				Err:     err,
			})
			errs = multierr.Append(errs, NewStepFailedError(s.name, i, err))
			continue
		}
		b.result = worker.String()
		logger.Debug(LogMsgStepApplied, zap.String(LogFieldStep, s.name))
	}

	b.diagnostics = sink.Diagnostics()
	b.err = errs

	logger.Debug(LogMsgUnfoldEnd,
		zap.Int(LogFieldResultLength, len(b.result)),
		zap.Int(LogFieldDiagnostics, len(b.diagnostics)),
	)
}

// Replace replaces every occurrence of from with to
func (b *Builder) Replace(from, to string) *Builder {
	return b.then(StepReplace, from, to)
}

// ReplaceFunc replaces every occurrence of from with the result of fn
func (b *Builder) ReplaceFunc(from string, fn ReplaceFunc) *Builder {
	return b.then(StepReplace, from, fn)
}

// IReplace replaces every case-insensitive occurrence of from with to
func (b *Builder) IReplace(from, to string) *Builder {
	return b.then(StepIReplace, from, to)
}

// IReplaceFunc is IReplace with a computed replacement; fn runs once per
// distinct matched spelling
func (b *Builder) IReplaceFunc(from string, fn ReplaceFunc) *Builder {
	return b.then(StepIReplace, from, fn)
}

// RegexReplace replaces every match of pattern. replacement uses
// regexp.Expand syntax ($1, ${name}).
func (b *Builder) RegexReplace(pattern, replacement string) *Builder {
	return b.then(StepRegexReplace, pattern, replacement)
}

// RegexReplaceN replaces at most limit matches of pattern; a negative limit means all
func (b *Builder) RegexReplaceN(pattern, replacement string, limit int) *Builder {
	return b.then(StepRegexReplace, pattern, replacement, limit)
}

// RegexReplaceFunc replaces every match of pattern with the result of fn
func (b *Builder) RegexReplaceFunc(pattern string, fn RegexReplaceFunc) *Builder {
	return b.then(StepRegexReplace, pattern, fn)
}

// Strip trims whitespace and NUL from both ends
func (b *Builder) Strip() *Builder {
	return b.then(StepStrip)
}

// StripChars trims chars from both ends; chars may contain ranges like a..z
func (b *Builder) StripChars(chars string) *Builder {
	return b.then(StepStrip, chars)
}

// LStrip trims whitespace and NUL from the start
func (b *Builder) LStrip() *Builder {
	return b.then(StepLStrip)
}

// LStripChars trims chars from the start
func (b *Builder) LStripChars(chars string) *Builder {
	return b.then(StepLStrip, chars)
}

// RStrip trims whitespace and NUL from the end
func (b *Builder) RStrip() *Builder {
	return b.then(StepRStrip)
}

// RStripChars trims chars from the end
func (b *Builder) RStripChars(chars string) *Builder {
	return b.then(StepRStrip, chars)
}

// Upper upper-cases the string
func (b *Builder) Upper() *Builder {
	return b.then(StepUpper)
}

// Lower lower-cases the string
func (b *Builder) Lower() *Builder {
	return b.then(StepLower)
}

// UpperFirst upper-cases the first character
func (b *Builder) UpperFirst() *Builder {
	return b.then(StepUpperFirst)
}

// LowerFirst lower-cases the first character
func (b *Builder) LowerFirst() *Builder {
	return b.then(StepLowerFirst)
}

// UpperWords upper-cases the first character of every whitespace-separated word
func (b *Builder) UpperWords() *Builder {
	return b.then(StepUpperWords)
}

// UpperWordsDelimited upper-cases the first character after any of delimiters
func (b *Builder) UpperWordsDelimited(delimiters string) *Builder {
	return b.then(StepUpperWords, delimiters)
}

// WordWrap wraps lines at width characters using brk; cut splits words
// longer than width
func (b *Builder) WordWrap(width int, brk string, cut bool) *Builder {
	return b.then(StepWordWrap, width, brk, cut)
}

// Substr keeps everything from character start; negative start counts from the end
func (b *Builder) Substr(start int) *Builder {
	return b.then(StepSubstr, start)
}

// SubstrLen keeps length characters from start; a negative length leaves
// that many characters off the end
func (b *Builder) SubstrLen(start, length int) *Builder {
	return b.then(StepSubstr, start, length)
}

// Repeat concatenates the string count times
func (b *Builder) Repeat(count int) *Builder {
	return b.then(StepRepeat, count)
}

// Reverse reverses the character order
func (b *Builder) Reverse() *Builder {
	return b.then(StepReverse)
}

// SquashWhitechars collapses whitespace runs into single spaces and trims the ends
func (b *Builder) SquashWhitechars() *Builder {
	return b.then(StepSquashWhitechars)
}

// Insert inserts sub before character idx
func (b *Builder) Insert(sub string, idx int) *Builder {
	return b.then(StepInsert, sub, idx)
}

// EnsurePrefix prepends prefix unless already present
func (b *Builder) EnsurePrefix(prefix string) *Builder {
	return b.then(StepEnsurePrefix, prefix)
}

// EnsureSuffix appends suffix unless already present
func (b *Builder) EnsureSuffix(suffix string) *Builder {
	return b.then(StepEnsureSuffix, suffix)
}

// Prefix prepends s
func (b *Builder) Prefix(s string) *Builder {
	return b.then(StepPrefix, s)
}

// Suffix appends s
func (b *Builder) Suffix(s string) *Builder {
	return b.then(StepSuffix, s)
}

// Surround prepends and appends s
func (b *Builder) Surround(s string) *Builder {
	return b.then(StepSurround, s)
}

// EOL appends the platform line terminator
func (b *Builder) EOL() *Builder {
	return b.then(StepEOL)
}

// EOLRN appends CRLF
func (b *Builder) EOLRN() *Builder {
	return b.then(StepEOLRN)
}

// EOLN appends LF
func (b *Builder) EOLN() *Builder {
	return b.then(StepEOLN)
}

// Transform applies fn to the current string with args
func (b *Builder) Transform(fn TransformFunc, args ...any) *Builder {
	return b.then(StepTransform, append([]any{fn}, args...)...)
}
