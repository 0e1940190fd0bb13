package internal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberField struct {
	Value string
}

// shadowed has a method and a promoted field both called Value
type shadowed struct {
	memberField
}

func (shadowed) Value() string { return "method" }

type counter struct {
	n int
}

func (c *counter) Count() int { return c.n }

type failing struct{}

func (failing) Load() (string, error) { return "", errors.New("boom") }

func (failing) Ready() (string, error) { return "yes", nil }

func (failing) Args(int) string { return "never" }

type invoker struct{}

func (invoker) InvokeMember(name string) (any, bool) {
	if name == "dynamic" {
		return "invoked", true
	}
	return nil, false
}

type reader map[string]any

func (r reader) ReadMember(name string) (any, bool) {
	v, ok := r[name]
	return v, ok
}

// both answers the same name through invocation and reading
type both struct{ reader }

func (both) InvokeMember(name string) (any, bool) { return "invoked " + name, true }

func TestResolveMember(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		member   string
		expected any
		found    bool
	}{
		{"method wins over field", shadowed{memberField{Value: "field"}}, "value", "method", true},
		{"exported spelling", greeter{Name: "ann"}, "greeting", "hi ann", true},
		{"exact name", greeter{Name: "ann"}, "Greeting", "hi ann", true},
		{"field", greeter{Name: "ann"}, "name", "ann", true},
		{"field through pointer", &greeter{Name: "ann"}, "Name", "ann", true},
		{"pointer receiver on value", counter{n: 3}, "count", 3, true},
		{"pointer receiver on pointer", &counter{n: 4}, "count", 4, true},
		{"unexported field", counter{n: 3}, "n", nil, false},
		{"method with args ignored", failing{}, "args", nil, false},
		{"method with nil error", failing{}, "ready", "yes", true},
		{"invoker", invoker{}, "dynamic", "invoked", true},
		{"invoker miss", invoker{}, "other", nil, false},
		{"reader", reader{"color": "red"}, "color", "red", true},
		{"invoker before reader", both{reader{"x": "read"}}, "x", "invoked x", true},
		{"scalar", 42, "anything", nil, false},
		{"nil value", nil, "anything", nil, false},
		{"nil pointer", (*greeter)(nil), "greeting", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			val, found, err := ResolveMember(tt.value, tt.member)
			require.NoError(t, err)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, val)
		})
	}
}

func TestResolveMember_MethodError(t *testing.T) {
	val, found, err := ResolveMember(failing{}, "load")

	assert.True(t, found)
	assert.Nil(t, val)
	assert.EqualError(t, err, "boom")
}

func TestMemberNames(t *testing.T) {
	assert.Equal(t, []string{"name", "Name"}, memberNames("name"))
	assert.Equal(t, []string{"Name"}, memberNames("Name"))
	assert.Equal(t, []string{"_x"}, memberNames("_x"))
}

type exploding struct{}

func (exploding) Explode() string { panic("boom") }

type explodingReader struct{}

func (explodingReader) ReadMember(string) (any, bool) { panic("reader boom") }

func TestResolveMember_Panic(t *testing.T) {
	tests := []struct {
		name  string
		value any
		key   string
	}{
		{"method", exploding{}, "explode"},
		{"reader", explodingReader{}, "anything"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				val   any
				found bool
				err   error
			)
			require.NotPanics(t, func() { val, found, err = ResolveMember(tt.value, tt.key) })
			assert.True(t, found)
			assert.Nil(t, val)

			var pe *PanicError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, ErrMsgMemberPanicked, pe.Message)
			assert.Equal(t, tt.key, pe.Subject)
		})
	}
}
