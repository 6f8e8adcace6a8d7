package day3

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/aoc2023/internal/registry"
	"github.com/vk/aoc2023/internal/schematic"
)

var sample = []string{
	"467..114..",
	"...*......",
	"..35..633.",
	"......#...",
	"617*......",
	".....+.58.",
	"..592.....",
	"......755.",
	"...$.*....",
	".664.598..",
}

func TestParts(t *testing.T) {
	ctx := context.Background()
	in := &registry.Input{Lines: sample}

	got, err := SumPartNumbers(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 4361, got)

	got, err = SumGearRatios(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 467835, got)
}

func TestParts_MalformedInput(t *testing.T) {
	ctx := context.Background()

	_, err := SumPartNumbers(ctx, &registry.Input{Lines: []string{"467..", "..*"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schematic.ErrMalformedInput))

	_, err = SumGearRatios(ctx, &registry.Input{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schematic.ErrMalformedInput))
}

func TestParts_Overflow(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	ctx := context.Background()

	_, err := SumPartNumbers(ctx, &registry.Input{Lines: []string{"9000000000000000000*", "9000000000000000000*"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schematic.ErrOverflow))

	_, err = SumGearRatios(ctx, &registry.Input{Lines: []string{"9999999999*9999999999"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, schematic.ErrOverflow))
}

func TestRegister(t *testing.T) {
	r := registry.New()
	(&Module{}).Register(r)

	p, ok := r.Lookup(Name)
	require.True(t, ok)
	assert.Len(t, p.Parts, 2)
	assert.Empty(t, p.Settings)
}
