package internal

import (
	"reflect"
	"unicode"
	"unicode/utf8"
)

// MemberInvoker lets a value intercept member calls it has no method for.
// The boolean result reports whether name was handled.
type MemberInvoker interface {
	InvokeMember(name string) (any, bool)
}

// MemberReader lets a value intercept member reads it has no field for.
// The boolean result reports whether name was handled.
type MemberReader interface {
	ReadMember(name string) (any, bool)
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ResolveMember resolves name on v in this order: zero-argument method,
// exported field, MemberInvoker, MemberReader. Each lookup tries the name as
// written and then its exported spelling.
// found is false when nothing answers to name; err is set when a method
// answered with a non-nil error or any lookup panicked (*PanicError).
func ResolveMember(v any, name string) (val any, found bool, err error) {
	if v == nil || name == "" {
		return nil, false, nil
	}
	defer func() {
		if r := recover(); r != nil {
			val, found, err = nil, true, NewPanicError(ErrMsgMemberPanicked, name, r)
		}
	}()
	names := memberNames(name)

	for _, n := range names {
		if val, found, err = callMethod(v, n); found {
			return val, found, err
		}
	}
	for _, n := range names {
		if val, found = readField(v, n); found {
			return val, true, nil
		}
	}
	if inv, ok := v.(MemberInvoker); ok {
		if val, found = inv.InvokeMember(name); found {
			return val, true, nil
		}
	}
	if rd, ok := v.(MemberReader); ok {
		if val, found = rd.ReadMember(name); found {
			return val, true, nil
		}
	}
	return nil, false, nil
}

// memberNames returns name and, when it differs, its exported spelling
func memberNames(name string) []string {
	r, size := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) || !unicode.IsLetter(r) {
		return []string{name}
	}
	return []string{name, string(unicode.ToUpper(r)) + name[size:]}
}

func callMethod(v any, name string) (any, bool, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, false, nil
	}
	m := rv.MethodByName(name)
	if !m.IsValid() && rv.Kind() != reflect.Pointer {
		// pointer receivers are not in the method set of a plain value
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)
		m = ptr.MethodByName(name)
	}
	if !m.IsValid() {
		return nil, false, nil
	}

	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() > 2 {
		return nil, false, nil
	}
	if mt.NumOut() == 2 && !mt.Out(1).Implements(errorType) {
		return nil, false, nil
	}

	out := m.Call(nil)
	switch len(out) {
	case 0:
		return nil, true, nil
	case 1:
		return out[0].Interface(), true, nil
	default:
		if errVal := out[1].Interface(); errVal != nil {
			return nil, true, errVal.(error)
		}
		return out[0].Interface(), true, nil
	}
}

func readField(v any, name string) (any, bool) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, false
	}
	sf, ok := rv.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, false
	}
	field, err := rv.FieldByIndexErr(sf.Index)
	if err != nil || !field.CanInterface() {
		return nil, false
	}
	return field.Interface(), true
}
