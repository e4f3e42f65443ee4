package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_SeedsPredefined(t *testing.T) {
	reg := NewRegistry()

	require.Equal(t, len(predefined), reg.Len())
	for _, name := range PredefinedNames() {
		assert.Equal(t, name, reg.Lookup(name).Name())
	}
}

func TestRegistry_Lookup_UnknownResolvesToDecimal(t *testing.T) {
	reg := NewRegistry()

	assert.Same(t, reg.Lookup("decimal"), reg.Lookup("unknown-name"))
	assert.Same(t, reg.Lookup("decimal"), reg.Lookup(""))
}

func TestRegistry_Lookup_MissingDecimalResolvesToBuiltin(t *testing.T) {
	reg := &Registry{styles: map[string]*Definition{}}

	d := reg.Lookup("anything")
	require.Same(t, builtinDecimal, d)
	assert.Equal(t, "decimal", d.Name())
}

func TestRegistry_Register_OverwritesInPlace(t *testing.T) {
	reg := NewRegistry()
	before := reg.Len()

	override := MustNew(Config{
		Name:    "disc",
		System:  Cyclic,
		Symbols: []string{"-"},
		Suffix:  str(" "),
	})
	reg.Register(override)

	assert.Equal(t, before, reg.Len(), "overwrite, not insert")
	assert.Same(t, override, reg.Lookup("disc"))
	assert.Equal(t, "-", reg.Lookup("disc").CounterContent(reg, 3))
}

func TestRegistry_RegisterAll_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	v1 := MustNew(Config{Name: "dup", System: Cyclic, Symbols: []string{"1"}})
	v2 := MustNew(Config{Name: "dup", System: Cyclic, Symbols: []string{"2"}})
	other := MustNew(Config{Name: "other", System: Cyclic, Symbols: []string{"o"}})

	reg.RegisterAll(v1, other, v2)

	assert.Same(t, v2, reg.Lookup("dup"))
	assert.Same(t, other, reg.Lookup("other"))
}

func TestRegistry_Lookup_NormalizationInsensitive(t *testing.T) {
	reg := NewRegistry()
	// Registered with a combining accent; looked up precomposed.
	reg.Register(MustNew(Config{
		Name:    "café",
		System:  Cyclic,
		Symbols: []string{"c"},
	}))

	assert.Equal(t, "café", reg.Lookup("café").Name())
	assert.Equal(t, "café", reg.Lookup("café").Name())
}

func TestRegistry_FallbackTerminationPerInstance(t *testing.T) {
	// Two registries may disagree about the same fallback name; each
	// resolves against its own entries.
	a := NewRegistry()
	b := NewRegistry()
	b.Register(MustNew(Config{
		Name:    "terminal",
		System:  Numeric,
		Symbols: []string{"0", "1"},
	}))
	styled := MustNew(Config{
		Name:     "styled",
		System:   Fixed,
		Symbols:  []string{"only"},
		Fallback: "terminal",
	})
	a.Register(styled)
	b.Register(styled)

	// Registry a has no "terminal": the name resolves to decimal.
	assert.Equal(t, "5", styled.CounterContent(a, 5))
	// Registry b renders through its binary "terminal".
	assert.Equal(t, "101", styled.CounterContent(b, 5))
}
