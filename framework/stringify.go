package framework

import (
	"fmt"
	"reflect"
	"strconv"
)

// Stringify converts an arbitrary value into text for use in a diagnostic
// message. The conversion strategy is chosen in a fixed priority order:
// exact special cases first (strings verbatim, booleans as "true"/"false"),
// then the decimal representation for numeric kinds, then the value's own
// formatted output (fmt.Stringer or error), and finally an opaque fallback
// naming the type and a storage address. The fallback is diagnostic only
// and not meant to be stable or parseable.
//
// Note that Go spells characters as rune (an alias of int32), so single
// characters render through the numeric tier as their code point.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	case reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", rv.Complex())
	case reflect.String:
		// named string kinds, e.g. type Name string
		return rv.String()
	}

	switch v := value.(type) {
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	}

	return opaqueString(rv)
}

// opaqueString renders a value that supports neither decimal nor formatted
// output as "[<type> at <address>]".
func opaqueString(rv reflect.Value) string {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("[%s at 0x%x]", rv.Type(), rv.Pointer())
	}
	// Non-reference values arrive here as copies; box one so it has an
	// address to report.
	boxed := reflect.New(rv.Type())
	boxed.Elem().Set(rv)
	return fmt.Sprintf("[%s at 0x%x]", rv.Type(), boxed.Pointer())
}

// coerceToText converts an operand of a string assertion to text. Native
// strings pass through verbatim; wide input ([]rune) is transliterated to
// ASCII with '?' standing in for characters that do not fit; anything else
// goes through Stringify.
func coerceToText(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []rune:
		return transliterateASCII(v)
	case fmt.Stringer:
		return v.String()
	case error:
		return v.Error()
	default:
		return Stringify(value)
	}
}

func transliterateASCII(runes []rune) string {
	out := make([]byte, 0, len(runes))
	for _, r := range runes {
		if r >= 0 && r <= 127 {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}
