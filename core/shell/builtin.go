package shell

import "sort"

// Builtin identifies a command the shell runs itself instead of starting a
// process.
type Builtin int

const (
	// External is any command that isn't a builtin.
	External Builtin = iota
	Exit
	Clear
	Cd
)

var builtinNames = map[string]Builtin{
	"exit":  Exit,
	"clear": Clear,
	"cd":    Cd,
}

// LookupBuiltin resolves a command name, falling back to External.
func LookupBuiltin(name string) Builtin {
	if b, ok := builtinNames[name]; ok {
		return b
	}
	return External
}

// BuiltinNames lists the names of all builtins in sorted order.
func BuiltinNames() []string {
	var out []string
	for name := range builtinNames {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (b Builtin) String() string {
	switch b {
	case Exit:
		return "exit"
	case Clear:
		return "clear"
	case Cd:
		return "cd"
	default:
		return "external"
	}
}
