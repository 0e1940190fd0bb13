package strfmt

import (
	"runtime"
	"strings"

	"github.com/itsatony/go-strfmt/internal"
)

// CallerContext is the call-site record read by @keyword tokens:
// Package, Type (empty outside methods), Function, File and Line.
type CallerContext = internal.CallerInfo

// CallerProvider supplies call-site metadata.
// skip counts frames above the function that calls Caller: 0 is that
// function, 1 is its caller. A nil result means no metadata is available.
type CallerProvider interface {
	Caller(skip int) *CallerContext
}

// RuntimeCallerProvider reads call sites from the goroutine stack
type RuntimeCallerProvider struct{}

// Caller implements CallerProvider
func (RuntimeCallerProvider) Caller(skip int) *CallerContext {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}

	info := &CallerContext{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		info.Package, info.Type, info.Function = ParseFuncName(fn.Name())
	}
	return info
}

// StaticCallerProvider returns the same record for every call.
// Useful in tests and when call sites are known up front.
type StaticCallerProvider struct {
	Context *CallerContext
}

// Caller implements CallerProvider. The record is copied.
func (p StaticCallerProvider) Caller(int) *CallerContext {
	if p.Context == nil {
		return nil
	}
	c := *p.Context
	return &c
}

// typeParamsMarker is how the runtime prints the type arguments of
// generic functions and types
const typeParamsMarker = "[...]"

// ParseFuncName splits a fully qualified Go symbol into package path,
// receiver type and function name. Closures report their enclosing
// function; type parameters are dropped.
//
//	github.com/acme/shop.(*Cart).Total.func1 -> github.com/acme/shop, Cart, Total
//	main.main                                -> main, "", main
func ParseFuncName(symbol string) (pkg, typ, fn string) {
	slash := strings.LastIndex(symbol, "/")
	dot := strings.Index(symbol[slash+1:], ".")
	if dot < 0 {
		return "", "", symbol
	}
	dot += slash + 1
	pkg = strings.ReplaceAll(symbol[:dot], "%2e", ".")
	rest := strings.ReplaceAll(symbol[dot+1:], typeParamsMarker, "")

	if strings.HasPrefix(rest, "(") {
		end := strings.Index(rest, ")")
		if end < 0 {
			return pkg, "", rest
		}
		typ = strings.TrimPrefix(rest[1:end], "*")
		rest = strings.TrimPrefix(rest[end+1:], ".")
		return pkg, typ, enclosingFunc(rest)
	}

	parts := strings.Split(rest, ".")
	if len(parts) >= 2 && !isClosureSegment(parts[1]) {
		return pkg, parts[0], enclosingFunc(strings.Join(parts[1:], "."))
	}
	return pkg, "", enclosingFunc(rest)
}

// enclosingFunc drops closure and method-value suffixes from a symbol tail
func enclosingFunc(s string) string {
	if i := strings.Index(s, "."); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSuffix(s, "-fm")
}

// isClosureSegment reports whether seg names a closure: "func1", "gowrap2" or "3"
func isClosureSegment(seg string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if strings.HasPrefix(seg, prefix) && isDigits(seg[len(prefix):]) {
			return true
		}
	}
	return isDigits(seg)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
