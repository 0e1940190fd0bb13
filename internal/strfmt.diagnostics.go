package internal

import (
	"strings"

	"go.uber.org/zap"
)

// DiagnosticKind classifies a non-fatal anomaly found while formatting
type DiagnosticKind string

// Diagnostic kinds
const (
	DiagnosticMissingParameter DiagnosticKind = "missing_parameter"
	DiagnosticMalformedToken   DiagnosticKind = "malformed_token"
	DiagnosticBadKeywordUsage  DiagnosticKind = "bad_keyword_usage"
	DiagnosticUnresolvedMember DiagnosticKind = "unresolved_member"
	DiagnosticConversionFailed DiagnosticKind = "conversion_failed"
	DiagnosticStepFailed       DiagnosticKind = "step_failed"
)

// Diagnostic records one anomaly. Formatting always continues past it.
type Diagnostic struct {
	Kind        DiagnosticKind
	Token       string   // Full token text including braces, or the step name
	Message     string   // One of the ErrMsg* constants
	Suggestions []string // Similar keys or keywords, closest first
	Err         error    // Underlying cause, if any
}

// String returns a single-line description of the diagnostic
func (d Diagnostic) String() string {
	var sb strings.Builder
	sb.WriteString(string(d.Kind))
	sb.WriteString(": ")
	sb.WriteString(d.Message)
	if d.Token != "" {
		sb.WriteString(" [")
		sb.WriteString(d.Token)
		sb.WriteString("]")
	}
	if d.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(d.Err.Error())
	}
	if len(d.Suggestions) > 0 {
		sb.WriteString(" (did you mean: ")
		sb.WriteString(strings.Join(d.Suggestions, ", "))
		sb.WriteString("?)")
	}
	return sb.String()
}

// DiagnosticHandler receives diagnostics as they are produced
type DiagnosticHandler func(Diagnostic)

// DiagnosticSink collects diagnostics, logs them and forwards them to an optional handler
type DiagnosticSink struct {
	logger  *zap.Logger
	handler DiagnosticHandler
	items   []Diagnostic
}

// NewDiagnosticSink creates a sink. Both logger and handler may be nil.
func NewDiagnosticSink(logger *zap.Logger, handler DiagnosticHandler) *DiagnosticSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DiagnosticSink{logger: logger, handler: handler}
}

// Report records d, emits a warning and calls the handler
func (s *DiagnosticSink) Report(d Diagnostic) {
	s.items = append(s.items, d)

	fields := []zap.Field{
		zap.String(LogFieldKind, string(d.Kind)),
		zap.String(LogFieldToken, d.Token),
		zap.String(LogFieldMessage, d.Message),
	}
	if len(d.Suggestions) > 0 {
		fields = append(fields, zap.Strings(LogFieldSuggestions, d.Suggestions))
	}
	if d.Err != nil {
		fields = append(fields, zap.Error(d.Err))
	}
	s.logger.Warn(LogMsgDiagnostic, fields...)

	if s.handler != nil {
		s.callHandler(d)
	}
}

// callHandler shields formatting from a panicking handler
func (s *DiagnosticSink) callHandler(d Diagnostic) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(LogMsgHandlerPanicked, zap.Any(LogFieldPanic, r))
		}
	}()
	s.handler(d)
}

// Diagnostics returns a copy of everything reported so far
func (s *DiagnosticSink) Diagnostics() []Diagnostic {
	if len(s.items) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}
