package internal

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Stringify renders a resolved parameter value as text
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return fmt.Sprint(val)
	}
}

// Pad pads s with padChar up to width characters.
// Width is the total target length; longer values are returned unchanged.
func Pad(s string, width int, padChar string, align string) string {
	length := utf8.RuneCountInString(s)
	if width <= length || padChar == "" {
		return s
	}
	missing := width - length

	switch align {
	case AlignRight:
		return strings.Repeat(padChar, missing) + s
	case AlignCenter:
		left := missing / 2
		return strings.Repeat(padChar, left) + s + strings.Repeat(padChar, missing-left)
	default:
		return s + strings.Repeat(padChar, missing)
	}
}

// baseMnemonics maps single-letter destination bases to their radix
var baseMnemonics = map[string]int{
	BaseMnemonicBinary:   2,
	BaseMnemonicOctal:    8,
	BaseMnemonicDecimal:  10,
	BaseMnemonicHex:      16,
	BaseMnemonicHexUpper: 16,
}

// ParseBase parses a numeric base or single-letter mnemonic.
// An empty string yields def.
func ParseBase(s string, def int) (int, bool) {
	if s == "" {
		return def, true
	}
	if base, ok := baseMnemonics[s]; ok {
		return base, true
	}
	base, err := strconv.Atoi(s)
	if err != nil || base < MinBase || base > MaxBase {
		return 0, false
	}
	return base, true
}

// ConvertBase converts the textual form of v from one base to another.
// Arbitrary precision is used so large values survive the round trip.
func ConvertBase(v any, from, to int, upper bool) (string, error) {
	if from < MinBase || from > MaxBase || to < MinBase || to > MaxBase {
		return "", fmt.Errorf(ErrFmtWithSubject, ErrMsgInvalidBase, strconv.Itoa(from)+"->"+strconv.Itoa(to))
	}

	text := strings.TrimSpace(Stringify(v))
	n, ok := new(big.Int).SetString(text, from)
	if !ok {
		return "", fmt.Errorf(ErrFmtWithSubject, ErrMsgInvalidNumber, strconv.Quote(text))
	}

	out := n.Text(to)
	if upper {
		out = strings.ToUpper(out)
	}
	return out, nil
}

// PrintfArgs turns a resolved value into an argument list.
// Slices and arrays are spread; any other value becomes the only argument.
func PrintfArgs(v any) []any {
	if v == nil {
		return []any{nil}
	}
	if args, ok := v.([]any); ok {
		return args
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return []any{v}
		}
		args := make([]any, rv.Len())
		for i := range args {
			args[i] = rv.Index(i).Interface()
		}
		return args
	default:
		return []any{v}
	}
}

// LookupIndex reads sub from a map, slice or array.
// Keys are matched after conversion to the map's key type; nil entries count as absent.
func LookupIndex(container any, sub string) (any, bool) {
	rv := indirect(reflect.ValueOf(container))
	if !rv.IsValid() {
		return nil, false
	}

	var out reflect.Value
	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv.Type().Key(), sub)
		if ok {
			out = rv.MapIndex(key)
		} else {
			out = scanMapKeys(rv, sub)
		}
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(sub)
		if err != nil || idx < 0 || idx >= rv.Len() {
			return nil, false
		}
		out = rv.Index(idx)
	default:
		return nil, false
	}

	if !out.IsValid() || !out.CanInterface() {
		return nil, false
	}
	val := out.Interface()
	if val == nil {
		return nil, false
	}
	return val, true
}

// mapKey converts sub into a reflect.Value usable as a key of keyType
func mapKey(keyType reflect.Type, sub string) (reflect.Value, bool) {
	switch keyType.Kind() {
	case reflect.String:
		return reflect.ValueOf(sub).Convert(keyType), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(sub, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(sub, 10, keyType.Bits())
		if err != nil {
			return reflect.Value{}, false
		}
		return reflect.ValueOf(n).Convert(keyType), true
	default:
		return reflect.Value{}, false
	}
}

// scanMapKeys finds an entry whose key prints as sub (interface-keyed maps)
func scanMapKeys(m reflect.Value, sub string) reflect.Value {
	iter := m.MapRange()
	for iter.Next() {
		if !iter.Key().CanInterface() {
			continue
		}
		if Stringify(iter.Key().Interface()) == sub {
			return iter.Value()
		}
	}
	return reflect.Value{}
}

// indirect follows pointers and interfaces down to a concrete value
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
