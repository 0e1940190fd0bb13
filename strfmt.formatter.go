package strfmt

import (
	"fmt"
	"reflect"

	"github.com/itsatony/go-strfmt/internal"
	"go.uber.org/zap"
)

// Formatter formats with positional parameters.
//
//	strfmt.NewFormatter("{} {}!").Compile("Hello", "world").String() // "Hello world!"
//	strfmt.NewFormatter("{1} {0}!", "Hello", "world").Compile().String() // "world Hello!"
type Formatter struct {
	format string
	params []any
	config *formatterConfig
}

// NewFormatter creates an indexed formatter. params are used by Compile
// calls that pass no parameters of their own.
func NewFormatter(format string, params ...any) *Formatter {
	f := &Formatter{
		format: format,
		params: params,
		config: newFormatterConfig(nil, nil),
	}
	f.config.logger.Debug(LogMsgFormatterCreated, zap.String(LogFieldMode, string(ModeIndexed)))
	return f
}

// With returns a copy of f configured with opts
func (f *Formatter) With(opts ...Option) *Formatter {
	return &Formatter{
		format: f.format,
		params: f.params,
		config: newFormatterConfig(f.config, opts),
	}
}

// String returns the format
func (f *Formatter) String() string {
	return f.format
}

// Compile returns a builder over params, or over the constructor
// parameters when params is empty. Nothing is evaluated until the
// builder is unfolded.
func (f *Formatter) Compile(params ...any) *Builder {
	if len(params) == 0 {
		params = f.params
	}
	return f.compile(params, f.config.callers.Caller(callerSkipEntry))
}

func (f *Formatter) compile(params []any, caller *CallerContext) *Builder {
	return newBuilder(&builderPlan{
		format: f.format,
		mode:   ModeIndexed,
		source: func() internal.ValueSource { return internal.NewIndexedValues(params) },
		config: f.config,
		caller: caller,
	})
}

// NamedFormatter formats with parameters addressed by name.
//
//	f := strfmt.NewNamedFormatter("{welcome} {name}!", map[string]any{"welcome": "Hello", "name": "world"})
//	f.Compile(map[string]any{"name": "earth"}).String() // "Hello earth!"
type NamedFormatter struct {
	format string
	params map[string]any
	config *formatterConfig
}

// NewNamedFormatter creates a named formatter with default parameters
func NewNamedFormatter(format string, params map[string]any) *NamedFormatter {
	f := &NamedFormatter{
		format: format,
		params: params,
		config: newFormatterConfig(nil, nil),
	}
	f.config.logger.Debug(LogMsgFormatterCreated, zap.String(LogFieldMode, string(ModeNamed)))
	return f
}

// NewNamedFormatterFrom creates a named formatter from a map with string
// keys or from a struct (exported fields, renamed by the `strfmt` tag).
// Any other value is rejected before formatting starts.
func NewNamedFormatterFrom(format string, params any) (*NamedFormatter, error) {
	m, err := namedParams(params)
	if err != nil {
		return nil, err
	}
	return NewNamedFormatter(format, m), nil
}

// With returns a copy of f configured with opts
func (f *NamedFormatter) With(opts ...Option) *NamedFormatter {
	return &NamedFormatter{
		format: f.format,
		params: f.params,
		config: newFormatterConfig(f.config, opts),
	}
}

// String returns the format
func (f *NamedFormatter) String() string {
	return f.format
}

// Compile returns a builder over the default parameters overridden by params.
// The merge happens when the builder is unfolded.
func (f *NamedFormatter) Compile(params map[string]any) *Builder {
	return f.compile(params, true, f.config.callers.Caller(callerSkipEntry))
}

// CompileReplace returns a builder over params alone, ignoring the
// default parameters
func (f *NamedFormatter) CompileReplace(params map[string]any) *Builder {
	return f.compile(params, false, f.config.callers.Caller(callerSkipEntry))
}

func (f *NamedFormatter) compile(params map[string]any, merge bool, caller *CallerContext) *Builder {
	defaults := f.params
	return newBuilder(&builderPlan{
		format: f.format,
		mode:   ModeNamed,
		source: func() internal.ValueSource {
			if !merge {
				return internal.NewNamedValues(params)
			}
			return internal.NewNamedValues(mergeParams(defaults, params))
		},
		config: f.config,
		caller: caller,
	})
}

// mergeParams returns a new map holding base overridden by override
func mergeParams(base, override map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

// namedParams converts a map or struct into named parameters
func namedParams(params any) (map[string]any, error) {
	if params == nil {
		return map[string]any{}, nil
	}
	if m, ok := params.(map[string]any); ok {
		return m, nil
	}

	rv := reflect.ValueOf(params)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out, nil
	case reflect.Struct:
		return structParams(rv), nil
	}
	return nil, NewInvalidParamsError(fmt.Sprintf("%T", params))
}

// structParams reads the exported fields of a struct value
func structParams(rv reflect.Value) map[string]any {
	rt := rv.Type()
	out := make(map[string]any, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		name := field.Name
		if tag, ok := field.Tag.Lookup(StructTagName); ok {
			if tag == StructTagSkip {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		out[name] = rv.Field(i).Interface()
	}
	return out
}
