package strfmt

import (
	"path/filepath"
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFuncName(t *testing.T) {
	tests := []struct {
		symbol string
		pkg    string
		typ    string
		fn     string
	}{
		{"main.main", "main", "", "main"},
		{"github.com/acme/shop.Total", "github.com/acme/shop", "", "Total"},
		{"github.com/acme/shop.(*Cart).Total", "github.com/acme/shop", "Cart", "Total"},
		{"github.com/acme/shop.Cart.Total", "github.com/acme/shop", "Cart", "Total"},
		{"github.com/acme/shop.(*Cart).Total.func1", "github.com/acme/shop", "Cart", "Total"},
		{"github.com/acme/shop.Total.func2.1", "github.com/acme/shop", "", "Total"},
		{"github.com/acme/shop.Run.gowrap1", "github.com/acme/shop", "", "Run"},
		{"github.com/acme/shop.(*Cart).Total-fm", "github.com/acme/shop", "Cart", "Total"},
		{"github.com/acme/shop.(*Box[...]).Get", "github.com/acme/shop", "Box", "Get"},
		{"github.com/acme/shop.Map[...]", "github.com/acme/shop", "", "Map"},
		{"gopkg.in/yaml%2ev3.Unmarshal", "gopkg.in/yaml.v3", "", "Unmarshal"},
		{"nodots", "", "", "nodots"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			pkg, typ, fn := ParseFuncName(tt.symbol)
			assert.Equal(t, tt.pkg, pkg)
			assert.Equal(t, tt.typ, typ)
			assert.Equal(t, tt.fn, fn)
		})
	}
}

func TestStaticCallerProvider(t *testing.T) {
	ctx := &CallerContext{
		Package:  "example.com/shop",
		Type:     "Cart",
		Function: "Total",
		File:     "/src/shop/cart.go",
		Line:     42,
	}
	opt := WithCallerProvider(StaticCallerProvider{Context: ctx})

	tests := []struct {
		format   string
		expected string
	}{
		{"{@class}", "Cart"},
		{"{@classLong}", "example.com/shop.Cart"},
		{"{@method}", "Cart::Total"},
		{"{@methodLong}", "example.com/shop.Cart::Total"},
		{"{@function}", "Total"},
		{"{@file}", "cart.go"},
		{"{@fileLong}", "/src/shop/cart.go"},
		{"{@dir}", "shop"},
		{"{@dirLong}", "/src/shop"},
		{"{@line}", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			b := IFormat(tt.format, nil, opt)
			assert.Equal(t, tt.expected, b.String())
			assert.Empty(t, b.Diagnostics())
		})
	}

	t.Run("copies the record", func(t *testing.T) {
		p := StaticCallerProvider{Context: ctx}
		got := p.Caller(0)
		got.Line = 1
		assert.Equal(t, 42, ctx.Line)
	})

	t.Run("nil record", func(t *testing.T) {
		b := IFormat("[{@line}]", nil, WithCallerProvider(StaticCallerProvider{}))
		assert.Equal(t, "[]", b.String())
		diags := b.Diagnostics()
		require.Len(t, diags, 1)
		assert.Equal(t, DiagnosticBadKeywordUsage, diags[0].Kind)
	})
}

type callerProbe struct{}

func (callerProbe) render() (*Builder, int) {
	_, _, line, _ := runtime.Caller(0)
	return IFormatL("{@class}|{@method}|{@function}|{@file}|{@dir}|{@line}"), line + 1
}

func TestRuntimeCallerProvider_Method(t *testing.T) {
	b, line := callerProbe{}.render()

	expected := "callerProbe|callerProbe::render|render|strfmt.caller_test.go|" +
		filepath.Base(filepath.Dir(b.Caller().File)) + "|" + strconv.Itoa(line)
	assert.Equal(t, expected, b.String())
	assert.Empty(t, b.Diagnostics())
	assert.Equal(t, "github.com/itsatony/go-strfmt", b.Caller().Package)
}

func TestRuntimeCallerProvider_Function(t *testing.T) {
	render := func() *Builder {
		return IFormatL("{@function}:{@class}")
	}
	b := render()

	assert.Equal(t, "TestRuntimeCallerProvider_Function:", b.String())
	diags := b.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, DiagnosticBadKeywordUsage, diags[0].Kind)
	assert.Equal(t, "{@class}", diags[0].Token)
}

func TestRuntimeCallerProvider_EntryPoints(t *testing.T) {
	f := NewFormatter("{@function}")
	nf := NewNamedFormatter("{@function}", nil)

	builders := map[string]*Builder{
		"Compile":        f.Compile(),
		"IFormat":        IFormat("{@function}", nil),
		"IFormatL":       IFormatL("{@function}"),
		"NFormat":        NFormat("{@function}", nil),
		"Named Compile":  nf.Compile(nil),
		"CompileReplace": nf.CompileReplace(nil),
	}

	for name, b := range builders {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "TestRuntimeCallerProvider_EntryPoints", b.String())
			assert.Equal(t, "strfmt.caller_test.go", filepath.Base(b.Caller().File))
		})
	}
}
