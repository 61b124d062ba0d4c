package engine

import (
	"strconv"
	"strings"
)

// Arg is a single pre-rendered command argument.
type Arg struct {
	text string
}

// Str renders a string argument, single-quoted with backslashes, quotes,
// and control characters escaped. Escaping happens here, at argument
// construction, so untrusted text can never terminate the quote and inject
// further operations into the command.
func Str(v string) Arg {
	return Arg{text: "'" + escapeString(v) + "'"}
}

// Bool renders a boolean literal argument.
func Bool(v bool) Arg {
	if v {
		return Arg{text: "true"}
	}
	return Arg{text: "false"}
}

// Int renders an integer literal argument.
func Int(v int) Arg {
	return Arg{text: strconv.Itoa(v)}
}

// Float renders a floating-point literal argument.
func Float(v float64) Arg {
	return Arg{text: strconv.FormatFloat(v, 'g', -1, 64)}
}

// Null renders the engine's null sentinel. The engine script defines a
// global null value distinct from a missing argument, so commands like
// replaceStyle(null, 'H1') can pass "no previous style" explicitly.
func Null() Arg {
	return Arg{text: "null"}
}

// Raw renders v verbatim. The caller is responsible for its validity.
func Raw(v string) Arg {
	return Arg{text: v}
}

// Command is a single named operation sent to the document engine.
type Command struct {
	name string
	args []Arg
}

// NewCommand builds a command from an operation name and rendered args.
func NewCommand(name string, args ...Arg) Command {
	return Command{name: name, args: args}
}

// Name returns the command's operation name.
func (c Command) Name() string {
	return c.name
}

// String renders the command in wire form: name(arg1, arg2, ...).
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.name)
	b.WriteByte('(')
	for i, a := range c.args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.text)
	}
	b.WriteByte(')')
	return b.String()
}

// escapeString escapes v for embedding inside a single-quoted engine
// string literal.
func escapeString(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for _, r := range v {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
