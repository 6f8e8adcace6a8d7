package app_test

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/aoc2023/internal/app"
	"github.com/vk/aoc2023/internal/hcl"
	"github.com/vk/aoc2023/internal/registry"
	"github.com/vk/aoc2023/internal/report"
	"github.com/vk/aoc2023/internal/testutil"
)

const schematicSample = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

const gamesSample = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestRun_PuzzleFromCommandLine(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{"input.txt": schematicSample})
	result := testutil.RunApp(t, root, app.Config{Puzzles: []string{"day3"}, InputPath: "input.txt"})

	require.NoError(t, result.Err)
	assert.Equal(t, "day3 part 1: 4361\nday3 part 2: 467835\n", result.Output)
	assert.Contains(t, result.LogOutput, "Part numbers found.")
	assert.Contains(t, result.LogOutput, "puzzle=day3")
}

func TestRun_SinglePart(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{"input.txt": schematicSample})
	result := testutil.RunApp(t, root, app.Config{Puzzles: []string{"day3"}, InputPath: "input.txt", Part: 2})

	require.NoError(t, result.Err)
	assert.Equal(t, "day3 part 2: 467835\n", result.Output)
}

func TestRun_RunFileWithSettings(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"inputs/day2.txt": gamesSample,
		"inputs/day3.txt": schematicSample,
		"runs/main.hcl": `
puzzle "day2" {
  input    = "../inputs/day2.txt"
  parts    = [1]
  settings = { red = 20, blue = 15 }
}

puzzle "day3" {
  input = "${config_dir}/../inputs/day3.txt"
  parts = [2, 1]
}
`,
	})
	result := testutil.RunApp(t, root, app.Config{ConfigPath: "runs", OutputFormat: report.FormatJSON})
	require.NoError(t, result.Err)

	var got []report.Result
	require.NoError(t, json.Unmarshal([]byte(result.Output), &got))
	for i := range got {
		got[i].Input = ""
	}
	want := []report.Result{
		{Puzzle: "day2", Part: 1, Answer: 15},
		{Puzzle: "day3", Part: 2, Answer: 467835},
		{Puzzle: "day3", Part: 1, Answer: 4361},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_RunFileSelection(t *testing.T) {
	t.Parallel()

	root := testutil.WriteFiles(t, map[string]string{
		"day3.txt": schematicSample,
		"runs.hcl": `
puzzle "day2" { input = "missing.txt" }
puzzle "day3" { input = "day3.txt" }
`,
	})
	result := testutil.RunApp(t, root, app.Config{ConfigPath: "runs.hcl", Puzzles: []string{"day3"}, OutputFormat: report.FormatYAML})

	require.NoError(t, result.Err)
	assert.Contains(t, result.Output, "answer: 4361")
	assert.NotContains(t, result.Output, "day2")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		files   map[string]string
		cfg     app.Config
		errText string
	}{
		{
			name:    "unknown puzzle",
			files:   map[string]string{"input.txt": "x"},
			cfg:     app.Config{Puzzles: []string{"day25"}, InputPath: "input.txt"},
			errText: `unknown puzzle "day25" (available: day1, day2, day3, day4)`,
		},
		{
			name:    "missing input",
			cfg:     app.Config{Puzzles: []string{"day3"}, InputPath: "nope.txt"},
			errText: "failed to open input",
		},
		{
			name:    "malformed schematic",
			files:   map[string]string{"input.txt": "467..\n..*\n"},
			cfg:     app.Config{Puzzles: []string{"day3"}, InputPath: "input.txt"},
			errText: "day3 part 1: build schematic: malformed schematic",
		},
		{
			name:    "part out of range",
			files:   map[string]string{"input.txt": "Card 1: 1 | 1\n"},
			cfg:     app.Config{Puzzles: []string{"day4"}, InputPath: "input.txt", Part: 2},
			errText: "puzzle 'day4' has no part 2",
		},
		{
			name: "unknown setting",
			files: map[string]string{
				"input.txt": schematicSample,
				"runs.hcl":  `puzzle "day3" { settings = { red = 1 } }`,
			},
			cfg:     app.Config{ConfigPath: "runs.hcl"},
			errText: "puzzle 'day3' does not accept setting 'red'",
		},
		{
			name:    "empty run configuration",
			files:   map[string]string{"runs/readme.txt": "nothing here"},
			cfg:     app.Config{ConfigPath: "runs"},
			errText: "no puzzles to run",
		},
		{
			name:    "invalid run file",
			files:   map[string]string{"runs.hcl": `puzzle "day3" {`},
			cfg:     app.Config{ConfigPath: "runs.hcl"},
			errText: "failed to load run configuration",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			root := testutil.WriteFiles(t, tc.files)
			result := testutil.RunApp(t, root, tc.cfg)
			require.Error(t, result.Err)
			assert.Contains(t, result.Err.Error(), tc.errText)
			assert.Empty(t, result.Output, "no partial results are written")
		})
	}
}

func TestRun_List(t *testing.T) {
	t.Parallel()

	result := testutil.RunApp(t, t.TempDir(), app.Config{List: true})
	require.NoError(t, result.Err)

	lines := strings.Split(strings.TrimSpace(result.Output), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[2], "day3\t2 part(s)\tGear Ratios"), lines[2])
}

type brokenModule struct{}

func (brokenModule) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{Name: "broken"})
}

func TestNewApp_InvalidRegistry(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{Puzzles: []string{"broken"}})
	require.NoError(t, err)

	_, err = app.NewApp(io.Discard, io.Discard, cfg, hcl.NewLoader(), brokenModule{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "puzzle 'broken': no parts registered")
}

func TestNewApp_CustomModules(t *testing.T) {
	t.Parallel()

	cfg, err := app.NewConfig(app.Config{List: true})
	require.NoError(t, err)

	out := &testutil.SafeBuffer{}
	a, err := app.NewApp(out, io.Discard, cfg, hcl.NewLoader(), constModule{})
	require.NoError(t, err)
	assert.Equal(t, []string{"const"}, a.Registry().Names())

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "const\t1 part(s)\talways 7\n", out.String())
}

type constModule struct{}

func (constModule) Register(r *registry.Registry) {
	r.RegisterPuzzle(&registry.Puzzle{
		Name:        "const",
		Description: "always 7",
		Parts: []registry.PartFunc{
			func(ctx context.Context, in *registry.Input) (int, error) { return 7, nil },
		},
	})
}
