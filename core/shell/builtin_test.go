package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupBuiltin(t *testing.T) {
	cases := map[string]Builtin{
		"exit":  Exit,
		"clear": Clear,
		"cd":    Cd,
		"ls":    External,
		"Exit":  External,
		"cd.":   External,
		"":      External,
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, LookupBuiltin(name))
		})
	}
}

func TestBuiltinNames(t *testing.T) {
	names := BuiltinNames()
	assert.Equal(t, []string{"cd", "clear", "exit"}, names)

	for _, name := range names {
		assert.Equal(t, name, LookupBuiltin(name).String())
	}
	assert.Equal(t, "external", External.String())
}
