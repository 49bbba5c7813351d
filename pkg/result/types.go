package result

import (
	"fmt"
	"reflect"
	"strings"
)

// Serializable tags a type as safe to pass back as a result.
// Only non-generic types may carry the tag.
type Serializable interface {
	SerializableResult()
}

var serializableType = reflect.TypeOf((*Serializable)(nil)).Elem()

// KeyPrefix prefixes every pending-result key stored in an entry's saved state.
const KeyPrefix = "waypoint.result:"

// TypeID returns the type identifier used in result keys for R,
// or an *UnsupportedResultTypeError when R cannot be used as a result.
// A pointer type shares the identifier of its element type.
func TypeID[R any]() (string, error) {
	t := reflect.TypeOf((*R)(nil)).Elem()
	if err := checkType(t, false); err != nil {
		return "", err
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.PkgPath() == "" {
		return t.String(), nil
	}
	return t.PkgPath() + "." + t.Name(), nil
}

// Key builds the saved-state key of the (origin, type) pair.
func Key(originRoute, typeID string) string {
	return KeyPrefix + originRoute + "@" + typeID
}

func checkType(t reflect.Type, nullable bool) error {
	if t == nil {
		return &UnsupportedResultTypeError{Type: t, Reason: "nil interface type"}
	}
	if t.Kind() == reflect.Pointer {
		if nullable {
			return &UnsupportedResultTypeError{Type: t, Reason: "only one pointer level is allowed"}
		}
		return checkType(t.Elem(), true)
	}
	if strings.Contains(t.Name(), "[") {
		return &UnsupportedResultTypeError{Type: t, Reason: "generic types cannot be results"}
	}
	if t.Kind() == reflect.Interface {
		return &UnsupportedResultTypeError{Type: t, Reason: "interface types cannot be results"}
	}
	if t.Implements(serializableType) || reflect.PointerTo(t).Implements(serializableType) {
		return nil
	}

	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return nil
	case reflect.Struct:
		return &UnsupportedResultTypeError{Type: t, Reason: "struct types must implement result.Serializable"}
	default:
		return &UnsupportedResultTypeError{Type: t, Reason: fmt.Sprintf("kind %s is not allowed", t.Kind())}
	}
}
