package internal

import (
	"fmt"
	"strconv"
)

// ValueSource resolves placeholder keys to parameter values
type ValueSource interface {
	// HasKey reports whether key can be resolved. It never consumes the cursor.
	HasKey(key string) bool
	// Get resolves key. The auto key consumes the cursor in indexed mode.
	Get(key string) (any, error)
}

// MissingParameterError is returned when a key or index is absent from the parameters
type MissingParameterError struct {
	Key string
}

// NewMissingParameterError creates a missing parameter error for key
func NewMissingParameterError(key string) *MissingParameterError {
	return &MissingParameterError{Key: key}
}

// Error implements the error interface
func (e *MissingParameterError) Error() string {
	return fmt.Sprintf(ErrFmtWithSubject, ErrMsgMissingParameter, strconv.Quote(e.Key))
}

// PanicError carries a value recovered from a panic in user code or a step
type PanicError struct {
	Message   string // ErrMsgMemberPanicked, ErrMsgTokenPanicked or ErrMsgStepPanicked
	Subject   string // Member, token or step name
	Recovered any
}

// NewPanicError creates a panic error for subject
func NewPanicError(message, subject string, recovered any) *PanicError {
	return &PanicError{Message: message, Subject: subject, Recovered: recovered}
}

// Error implements the error interface
func (e *PanicError) Error() string {
	return fmt.Sprintf(ErrFmtPanic, e.Message, e.Subject, e.Recovered)
}

// IndexedValues addresses an ordered parameter list by position.
// Unindexed placeholders read from an auto cursor that starts at 0.
type IndexedValues struct {
	params []any
	cursor int
}

// NewIndexedValues creates an indexed value source over params
func NewIndexedValues(params []any) *IndexedValues {
	return &IndexedValues{params: params}
}

// HasKey implements ValueSource. The auto key is always present.
func (v *IndexedValues) HasKey(key string) bool {
	if key == AutoKey {
		return true
	}
	idx, ok := v.index(key)
	return ok && idx < len(v.params)
}

// Get implements ValueSource
func (v *IndexedValues) Get(key string) (any, error) {
	if key == AutoKey {
		idx := v.cursor
		v.cursor++
		if idx >= len(v.params) {
			return nil, NewMissingParameterError(strconv.Itoa(idx))
		}
		return v.params[idx], nil
	}

	idx, ok := v.index(key)
	if !ok || idx >= len(v.params) {
		return nil, NewMissingParameterError(key)
	}
	return v.params[idx], nil
}

// Cursor returns the position the next auto placeholder will read
func (v *IndexedValues) Cursor() int {
	return v.cursor
}

// index parses key as a position. Leading zeros and signs are rejected,
// so {01} is not the same key as {1}.
func (v *IndexedValues) index(key string) (int, bool) {
	if len(key) > 1 && key[0] == '0' {
		return 0, false
	}
	idx, err := strconv.Atoi(key)
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// NamedValues addresses parameters by string key. There is no auto cursor.
type NamedValues struct {
	params map[string]any
}

// NewNamedValues creates a named value source over params
func NewNamedValues(params map[string]any) *NamedValues {
	if params == nil {
		params = map[string]any{}
	}
	return &NamedValues{params: params}
}

// HasKey implements ValueSource
func (v *NamedValues) HasKey(key string) bool {
	if key == AutoKey {
		return false
	}
	_, ok := v.params[key]
	return ok
}

// Get implements ValueSource
func (v *NamedValues) Get(key string) (any, error) {
	val, ok := v.params[key]
	if !ok || key == AutoKey {
		return nil, NewMissingParameterError(key)
	}
	return val, nil
}

// Keys implements KeyLister
func (v *NamedValues) Keys() []string {
	keys := make([]string, 0, len(v.params))
	for k := range v.params {
		keys = append(keys, k)
	}
	return keys
}

// KeyLister is implemented by value sources that can enumerate their keys.
// It feeds "did you mean" suggestions for unknown tokens.
type KeyLister interface {
	Keys() []string
}
