package configtest

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"go.uber.org/multierr"
)

// CheckYAMLTags reports every exported, non-bool field reachable from config whose yaml tag is
// missing omitempty. Fields tagged `config:"allowempty"` are skipped along with their children.
func CheckYAMLTags(config any) error {
	return checkYAMLTags(reflect.TypeOf(config), "", map[reflect.Type]struct{}{})
}

func checkYAMLTags(t reflect.Type, path string, seen map[reflect.Type]struct{}) error {
	if _, ok := seen[t]; ok {
		return nil
	}
	seen[t] = struct{}{}

	switch t.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.Pointer:
		return checkYAMLTags(t.Elem(), path, seen)
	case reflect.Struct:
		var errs error
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() || field.Type.Kind() == reflect.Bool {
				continue
			}
			if field.Tag.Get("config") == "allowempty" {
				continue
			}

			parts := strings.Split(field.Tag.Get("yaml"), ",")
			if parts[0] == "-" {
				continue
			}

			fieldPath := field.Name
			if path != "" {
				fieldPath = path + "." + field.Name
			}
			if !slices.Contains(parts, "omitempty") && !slices.Contains(parts, "inline") {
				errs = multierr.Append(errs, fmt.Errorf("%s missing omitempty tag", fieldPath))
			}

			errs = multierr.Append(errs, checkYAMLTags(field.Type, fieldPath, seen))
		}
		return errs
	default:
		return nil
	}
}
