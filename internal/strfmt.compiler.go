package internal

import (
	"strings"

	"go.uber.org/zap"
)

// CompilerConfig holds per-run compiler settings
type CompilerConfig struct {
	Mode   Mode
	Caller *CallerInfo // nil when no caller metadata is available
}

// Compiler substitutes placeholder tokens of a format with parameter values.
// A Compiler is built for one run; the only state it keeps is the value
// source's auto cursor.
type Compiler struct {
	format string
	values ValueSource
	config CompilerConfig
	sink   *DiagnosticSink
	logger *zap.Logger
}

// NewCompiler creates a compiler for format. sink and logger may be nil.
func NewCompiler(format string, values ValueSource, config CompilerConfig, sink *DiagnosticSink, logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sink == nil {
		sink = NewDiagnosticSink(logger, nil)
	}
	if config.Mode == "" {
		config.Mode = ModeIndexed
	}
	logger.Debug(LogMsgCompilerCreated,
		zap.Int(LogFieldFormatLength, len(format)),
		zap.String(LogFieldMode, string(config.Mode)),
	)
	return &Compiler{
		format: format,
		values: values,
		config: config,
		sink:   sink,
		logger: logger,
	}
}

// Run returns the format with every token replaced.
// It never fails: anomalies are reported to the diagnostic sink and the
// affected token is kept verbatim or replaced with an empty string.
func (c *Compiler) Run() string {
	c.logger.Debug(LogMsgCompileStart)
	tokens := 0
	out := tokenRegexp.ReplaceAllStringFunc(c.format, func(token string) string {
		tokens++
		return c.resolveToken(token)
	})
	c.logger.Debug(LogMsgCompileEnd,
		zap.Int(LogFieldTokenCount, tokens),
		zap.Int(LogFieldResultLength, len(out)),
	)
	return out
}

// resolveToken walks the rule table for one token. A panic while resolving
// keeps the token verbatim.
func (c *Compiler) resolveToken(token string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			c.report(Diagnostic{
				Kind:    DiagnosticConversionFailed,
				Token:   token,
				Message: ErrMsgTokenPanicked,
				Err:     NewPanicError(ErrMsgTokenPanicked, token, r),
			})
			out = token
		}
	}()
	body := token[len(TokenOpen) : len(token)-len(TokenClose)]
	missingKey := ""
	keyMissing := false

	for _, rule := range rulesFor(c.config.Mode) {
		m := rule.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if rule.usesKey && !c.values.HasKey(m[1]) {
			if !keyMissing {
				missingKey, keyMissing = m[1], true
			}
			continue
		}

		resolved, outcome := rule.resolve(c, token, m)
		switch outcome {
		case ruleResolved:
			c.logger.Debug(LogMsgTokenResolved,
				zap.String(LogFieldToken, token),
				zap.String(LogFieldRule, string(rule.kind)),
			)
			return resolved
		case ruleLiteral:
			return token
		}
	}

	if keyMissing {
		c.report(Diagnostic{
			Kind:        DiagnosticMissingParameter,
			Token:       token,
			Message:     ErrMsgMissingParameter,
			Err:         NewMissingParameterError(missingKey),
			Suggestions: c.suggestKeys(missingKey),
		})
		return token
	}

	c.report(Diagnostic{
		Kind:        DiagnosticMalformedToken,
		Token:       token,
		Message:     ErrMsgUnknownToken,
		Suggestions: suggestKeywords(body),
	})
	return token
}

// get reads key from the value source, reporting a diagnostic on failure
func (c *Compiler) get(token, key string) (any, bool) {
	val, err := c.values.Get(key)
	if err != nil {
		msg := ErrMsgMissingParameter
		if key == AutoKey {
			msg = ErrMsgAutoCursorExhausted
		}
		c.report(Diagnostic{Kind: DiagnosticMissingParameter, Token: token, Message: msg, Err: err})
		return nil, false
	}
	return val, true
}

func (c *Compiler) report(d Diagnostic) {
	c.sink.Report(d)
}

func (c *Compiler) suggestKeys(key string) []string {
	lister, ok := c.values.(KeyLister)
	if !ok {
		return nil
	}
	return FindSimilarStrings(key, lister.Keys(), MaxSuggestions)
}

// suggestKeywords offers caller keywords for bodies that look like one
func suggestKeywords(body string) []string {
	if !strings.HasPrefix(body, KeywordPrefix) {
		return nil
	}
	found := FindSimilarStrings(strings.TrimPrefix(body, KeywordPrefix), Keywords, MaxSuggestions)
	for i := range found {
		found[i] = KeywordPrefix + found[i]
	}
	return found
}
