package strfmt

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Option is a functional option for configuring formatters and builders.
type Option func(*formatterConfig)

// formatterConfig holds the configuration shared by a formatter and every
// builder it creates.
type formatterConfig struct {
	logger   *zap.Logger
	callers  CallerProvider
	handler  DiagnosticHandler
	language language.Tag
	encoding string
}

// defaultFormatterConfig returns the default configuration.
func defaultFormatterConfig() *formatterConfig {
	return &formatterConfig{
		logger:   nil,
		callers:  RuntimeCallerProvider{},
		handler:  nil,
		language: language.Und,
		encoding: "",
	}
}

// newFormatterConfig applies opts over base, or over the defaults when base is nil.
// base itself is never modified.
func newFormatterConfig(base *formatterConfig, opts []Option) *formatterConfig {
	cfg := defaultFormatterConfig()
	if base != nil {
		copied := *base
		cfg = &copied
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	if cfg.callers == nil {
		cfg.callers = RuntimeCallerProvider{}
	}
	return cfg
}

// WithLogger sets the logger. Diagnostics are logged at warn level,
// compilation and pipeline progress at debug level.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *formatterConfig) {
		c.logger = logger
	}
}

// WithCallerProvider sets the source of call-site metadata for @keyword tokens.
// Default: RuntimeCallerProvider
func WithCallerProvider(p CallerProvider) Option {
	return func(c *formatterConfig) {
		c.callers = p
	}
}

// WithDiagnosticHandler registers a callback invoked for every diagnostic
// as it is produced.
func WithDiagnosticHandler(h DiagnosticHandler) Option {
	return func(c *formatterConfig) {
		c.handler = h
	}
}

// WithLanguage sets the language used by case-folding steps.
// Default: language.Und
func WithLanguage(tag language.Tag) Option {
	return func(c *formatterConfig) {
		c.language = tag
	}
}

// WithEncoding sets the default encoding of encoding-aware steps.
// Accepts EncodingUTF8, EncodingBinary or any WHATWG encoding label.
// Default: UTF-8
func WithEncoding(name string) Option {
	return func(c *formatterConfig) {
		c.encoding = name
	}
}
