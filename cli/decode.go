package cli

// This file binds a parameter store into a typed configuration struct.

import (
	"flag"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/justjake/go-getarg/params"
)

// Value is the interface a custom field type implements to be decoded from
// its raw flag values. Set is called once per value, in command-line order.
// For more information, see https://golang.org/pkg/flag/#Value
type Value = flag.Value

var valueType = reflect.TypeOf((*Value)(nil)).Elem()

type argField struct {
	// flag key, eg "-max-connections"
	name  string
	help  string
	field reflect.StructField
	value reflect.Value
}

// FlagName returns the flag key used for a struct field name when no `arg`
// tag is given: "MaxConnections" becomes "-max-connections".
func FlagName(fieldName string) string {
	return "-" + strcase.ToKebab(fieldName)
}

// Decode fills the exported fields of the struct pointed to by target from
// store. A field's current value is its default.
//
// The flag for a field is named by its `arg` tag, or FlagName(field) if it
// has none. A tag of `arg:"-"` skips the field.
//
//   cfg := struct {
//     DataDir string `arg:"-datadir"`
//     Port    int    `help:"Listen port"`
//     Listen  bool
//     Connect []string
//   }{Port: 8333, Listen: true}
//   err := cli.Decode(store, &cfg)
//
// Bool fields understand negation, so -nolisten clears Listen. Integer fields
// follow params.GetIntArg and become 0 for text that is not a number.
func Decode(store *params.Store, target interface{}) error {
	fields, err := argFields(target)
	if err != nil {
		return err
	}
	for _, f := range fields {
		if err := f.decode(store); err != nil {
			return err
		}
		slog.Debug("Decoded argument.", "field", f.field.Name, "flag", f.name, "set", store.IsSet(f.name))
	}
	return nil
}

func argFields(target interface{}) ([]argField, error) {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("Target must be a non-nil pointer to a struct, instead %T", target)
	}
	v = v.Elem()
	t := v.Type()

	fields := make([]argField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		// unexported
		if sf.PkgPath != "" {
			continue
		}
		name := sf.Tag.Get("arg")
		if name == "-" {
			continue
		}
		if name == "" {
			name = FlagName(sf.Name)
		}
		fields = append(fields, argField{
			name:  name,
			help:  sf.Tag.Get("help"),
			field: sf,
			value: v.Field(i),
		})
	}
	return fields, nil
}

func (f argField) decode(store *params.Store) error {
	if f.value.Addr().Type().Implements(valueType) {
		setter := f.value.Addr().Interface().(Value)
		for _, s := range store.GetArgs(f.name) {
			if err := setter.Set(s); err != nil {
				return fmt.Errorf("Invalid value %q for %s: %v", s, f.name, err)
			}
		}
		return nil
	}

	switch f.value.Kind() {
	case reflect.String:
		f.value.SetString(store.GetArg(f.name, f.value.String()))
	case reflect.Bool:
		f.value.SetBool(store.GetBoolArg(f.name, f.value.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := store.GetIntArg(f.name, f.value.Int())
		if f.value.OverflowInt(n) {
			return fmt.Errorf("Value %d for %s overflows %v", n, f.name, f.value.Type())
		}
		f.value.SetInt(n)
	case reflect.Slice:
		if f.value.Type().Elem().Kind() != reflect.String {
			return f.unsupported()
		}
		if vals := store.GetArgs(f.name); vals != nil {
			out := reflect.MakeSlice(f.value.Type(), len(vals), len(vals))
			for i, s := range vals {
				out.Index(i).SetString(s)
			}
			f.value.Set(out)
		}
	default:
		return f.unsupported()
	}
	return nil
}

func (f argField) unsupported() error {
	return fmt.Errorf("Field %s: unsupported type %v for flag %s", f.field.Name, f.field.Type, f.name)
}
