package internal

import (
	"path/filepath"
	"strconv"
)

// CallerInfo describes the call site that created a builder.
// It is produced outside the compiler and only read here.
type CallerInfo struct {
	Package  string // Import path of the calling package
	Type     string // Receiver type name, empty for plain functions
	Function string // Function or method name without the receiver
	File     string // Full path of the calling source file
	Line     int    // Line of the call
}

// HasType reports whether the caller runs inside a method
func (c *CallerInfo) HasType() bool {
	return c != nil && c.Type != ""
}

// TypeLong returns the package-qualified receiver type name
func (c *CallerInfo) TypeLong() string {
	if c.Package == "" {
		return c.Type
	}
	return c.Package + "." + c.Type
}

// keywordNeedsType lists keywords that fail without an enclosing type
var keywordNeedsType = map[string]bool{
	KeywordClass:      true,
	KeywordClassLong:  true,
	KeywordMethod:     true,
	KeywordMethodLong: true,
}

// ResolveKeyword returns the value of a caller keyword.
// The second result is an ErrMsg* constant describing why resolution failed, or "".
func (c *CallerInfo) ResolveKeyword(keyword string) (string, string) {
	if c == nil {
		return "", ErrMsgNoCallerContext
	}
	if keywordNeedsType[keyword] && !c.HasType() {
		return "", ErrMsgNoEnclosingType
	}

	switch keyword {
	case KeywordClass:
		return c.Type, ""
	case KeywordClassLong:
		return c.TypeLong(), ""
	case KeywordMethod:
		return c.Type + MethodSeparator + c.Function, ""
	case KeywordMethodLong:
		return c.TypeLong() + MethodSeparator + c.Function, ""
	case KeywordFunction:
		return c.Function, ""
	case KeywordFile:
		return filepath.Base(c.File), ""
	case KeywordFileLong:
		return c.File, ""
	case KeywordDir:
		return filepath.Base(filepath.Dir(c.File)), ""
	case KeywordDirLong:
		return filepath.Dir(c.File), ""
	case KeywordLine:
		return strconv.Itoa(c.Line), ""
	}
	return "", ErrMsgUnknownToken
}
