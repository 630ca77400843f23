package cli

import (
	"fmt"
	"io"
	"reflect"
)

// Description describes an entity in the CLI
type Description struct {
	// Name of this thing
	Name string
	// Short, one-sentence description
	Short string
	// Longer, multi-line description
	Long string
}

// Doc outputs the documentation for this description
func (desc *Description) Doc(out io.Writer) {
	fmt.Fprintf(out, "%s - %s\n", desc.Name, desc.Short)
	if desc.Long != "" {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, desc.Long)
	}
}

// Arg represents a single flag
type Arg struct {
	Description
	// Default value, formatted with fmt.Sprint. Empty for zero values.
	Default string
	// Original field name, before mangling.
	Original string
}

// UI is a user interface
type UI struct {
	Description
	Args []Arg
}

// Describe builds a UI listing the flags that Decode would read into target.
// Each Arg's Short comes from the field's `help` tag, and its Default from the
// field's current value.
func Describe(name, short string, target interface{}) (*UI, error) {
	fields, err := argFields(target)
	if err != nil {
		return nil, err
	}
	ui := &UI{Description: Description{Name: name, Short: short}}
	for _, f := range fields {
		arg := Arg{
			Description: Description{Name: f.name, Short: f.help},
			Original:    f.field.Name,
		}
		if !isZero(f.value) {
			arg.Default = fmt.Sprint(f.value.Interface())
		}
		ui.Args = append(ui.Args, arg)
	}
	return ui, nil
}

func isZero(v reflect.Value) bool {
	if v.Kind() == reflect.Slice {
		return v.Len() == 0
	}
	return v.IsZero()
}

func (ui *UI) namePadding() int {
	maxlen := 0
	for _, d := range ui.Args {
		if maxlen < len(d.Name) {
			maxlen = len(d.Name)
		}
	}
	return maxlen
}

func (ui *UI) shortFormat() string {
	l := ui.namePadding()
	return fmt.Sprintf("  %%%ds    %%s\n", l)
}

// Overview prints the UI's description and a table of its flags.
func (ui *UI) Overview(out io.Writer) {
	fmt.Fprintf(out, "%s - %s\n", ui.Name, ui.Short)
	fmt.Fprintln(out, "")
	if ui.Long != "" {
		fmt.Fprintln(out, ui.Long)
		fmt.Fprintln(out, "")
	}
	fmt.Fprintln(out, "Arguments:")
	format := ui.shortFormat()
	for _, arg := range ui.Args {
		short := arg.Short
		if arg.Default != "" {
			short = fmt.Sprintf("%s (default %s)", short, arg.Default)
		}
		fmt.Fprintf(out, format, arg.Name, short)
	}
}

func (ui *UI) GetArg(name string) *Arg {
	for i := range ui.Args {
		if ui.Args[i].Name == name {
			return &ui.Args[i]
		}
	}
	return nil
}

func (ui *UI) AboutArg(name string, out io.Writer) error {
	arg := ui.GetArg(name)
	if arg == nil {
		return fmt.Errorf("Unknown argument %q", name)
	}
	arg.Doc(out)
	if arg.Default != "" {
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "Default: %s\n", arg.Default)
	}
	return nil
}
