package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constPart(v int) PartFunc {
	return func(ctx context.Context, in *Input) (int, error) { return v, nil }
}

type testModule struct {
	puzzle *Puzzle
}

func (m *testModule) Register(r *Registry) {
	r.RegisterPuzzle(m.puzzle)
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	(&testModule{puzzle: &Puzzle{Name: "day9", Parts: []PartFunc{constPart(1)}}}).Register(r)
	(&testModule{puzzle: &Puzzle{Name: "day1", Parts: []PartFunc{constPart(2)}}}).Register(r)

	p, ok := r.Lookup("day9")
	require.True(t, ok)
	assert.Equal(t, "day9", p.Name)

	_, ok = r.Lookup("day2")
	assert.False(t, ok)

	assert.Equal(t, []string{"day1", "day9"}, r.Names())
	assert.Equal(t, 2, r.Len())
}

func TestRegisterPuzzle_Panics(t *testing.T) {
	r := New()
	r.RegisterPuzzle(&Puzzle{Name: "day1", Parts: []PartFunc{constPart(1)}})

	assert.Panics(t, func() { r.RegisterPuzzle(&Puzzle{Name: "day1"}) }, "duplicate name")
	assert.Panics(t, func() { r.RegisterPuzzle(&Puzzle{}) }, "empty name")
	assert.Panics(t, func() { r.RegisterPuzzle(nil) }, "nil puzzle")
}

func TestPuzzle_Part(t *testing.T) {
	p := &Puzzle{Name: "day3", Parts: []PartFunc{constPart(10), constPart(20)}}

	fn, err := p.Part(2)
	require.NoError(t, err)
	got, err := fn(context.Background(), &Input{})
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	for _, n := range []int{0, 3, -1} {
		_, err := p.Part(n)
		assert.Error(t, err, "part %d", n)
	}
}

func TestPuzzle_ResolveSettings(t *testing.T) {
	p := &Puzzle{Name: "day2", Settings: map[string]int{"red": 12, "green": 13, "blue": 14}}

	got, err := p.ResolveSettings(map[string]int{"red": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"red": 1, "green": 13, "blue": 14}, got)
	assert.Equal(t, 12, p.Settings["red"], "defaults must not be modified")

	_, err = p.ResolveSettings(map[string]int{"purple": 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "purple")

	got, err = p.ResolveSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, p.Settings, got)
}

func TestValidateRegistry(t *testing.T) {
	ctx := context.Background()

	r := New()
	r.RegisterPuzzle(&Puzzle{Name: "ok", Parts: []PartFunc{constPart(1)}})
	require.NoError(t, r.ValidateRegistry(ctx))

	r.RegisterPuzzle(&Puzzle{Name: "empty"})
	r.RegisterPuzzle(&Puzzle{Name: "hole", Parts: []PartFunc{constPart(1), nil}})
	err := r.ValidateRegistry(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puzzle 'empty': no parts registered")
	assert.Contains(t, err.Error(), "puzzle 'hole': part 2 has no solver")
}
