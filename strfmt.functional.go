package strfmt

// IFormat formats with positional parameters in one call
//
//	strfmt.IFormat("{} {}!", []any{"Hello", "world"}).String() // "Hello world!"
func IFormat(format string, params []any, opts ...Option) *Builder {
	f := NewFormatter(format).With(opts...)
	return f.compile(params, f.config.callers.Caller(callerSkipEntry))
}

// IFormatL formats with the remaining arguments as positional parameters
//
//	strfmt.IFormatL("{1} {0}!", "Hello", "world").String() // "world Hello!"
func IFormatL(format string, params ...any) *Builder {
	f := NewFormatter(format)
	return f.compile(params, f.config.callers.Caller(callerSkipEntry))
}

// NFormat formats with named parameters in one call
//
//	strfmt.NFormat("{welcome} {name}!", map[string]any{"welcome": "Hi", "name": "Ann"}).String() // "Hi Ann!"
func NFormat(format string, params map[string]any, opts ...Option) *Builder {
	f := NewNamedFormatter(format, nil).With(opts...)
	return f.compile(params, false, f.config.callers.Caller(callerSkipEntry))
}
