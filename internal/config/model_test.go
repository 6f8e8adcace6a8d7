package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelSelect(t *testing.T) {
	m := &Model{Runs: []*Run{
		{Puzzle: "day1", Input: "a.txt"},
		{Puzzle: "day3", Input: "b.txt"},
		{Puzzle: "day1", Input: "c.txt"},
	}}

	got, err := m.Select("day1")
	require.NoError(t, err)
	want := []*Run{
		{Puzzle: "day1", Input: "a.txt"},
		{Puzzle: "day1", Input: "c.txt"},
	}
	if diff := cmp.Diff(want, got.Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	all, err := m.Select()
	require.NoError(t, err)
	assert.Same(t, m, all)

	_, err = m.Select("day4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day4")
}

func TestModelSelect_DuplicateNames(t *testing.T) {
	m := &Model{Runs: []*Run{{Puzzle: "day3"}}}

	got, err := m.Select("day3", "day3")
	require.NoError(t, err)
	assert.Len(t, got.Runs, 1)
}

func TestRunString(t *testing.T) {
	assert.Equal(t, "day3", (&Run{Puzzle: "day3"}).String())
	assert.Equal(t, "day3 (runs.hcl:4,1-13)", (&Run{Puzzle: "day3", Source: "runs.hcl:4,1-13"}).String())
}
