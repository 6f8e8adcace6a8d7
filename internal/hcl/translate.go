package hcl

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/aoc2023/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func translatePuzzle(b *puzzleBlock, dir string, evalCtx *hcl.EvalContext) (*config.Run, hcl.Diagnostics) {
	var diags hcl.Diagnostics

	input := b.Input
	if input == "" {
		input = config.DefaultInputPath
	}
	if !filepath.IsAbs(input) {
		input = filepath.Join(dir, input)
	}

	for _, part := range b.Parts {
		if part < 1 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid part number",
				Detail:   fmt.Sprintf("Part numbers start at 1, got %d.", part),
			})
		}
	}

	settings, settingsDiags := decodeSettings(b.Settings, evalCtx)
	diags = append(diags, settingsDiags...)

	return &config.Run{
		Puzzle:   b.Name,
		Input:    input,
		Parts:    b.Parts,
		Settings: settings,
	}, diags
}

// decodeSettings evaluates a `settings` expression into whole numbers keyed
// by setting name. A missing attribute yields nil.
func decodeSettings(expr hcl.Expression, evalCtx *hcl.EvalContext) (map[string]int, hcl.Diagnostics) {
	if expr == nil {
		return nil, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() || val.IsNull() {
		return nil, diags
	}

	subject := expr.Range().Ptr()
	mapVal, err := convert.Convert(val, cty.Map(cty.Number))
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid settings",
			Detail:   fmt.Sprintf("settings must be a map of numbers: %s.", err),
			Subject:  subject,
		})
	}
	if !mapVal.IsWhollyKnown() {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid settings",
			Detail:   "settings must be known when the run file is loaded.",
			Subject:  subject,
		})
	}

	settings := make(map[string]int, mapVal.LengthInt())
	for it := mapVal.ElementIterator(); it.Next(); {
		k, v := it.Element()
		name := k.AsString()
		if v.IsNull() {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid setting",
				Detail:   fmt.Sprintf("Setting %q must not be null.", name),
				Subject:  subject,
			})
			continue
		}

		var n int
		if err := gocty.FromCtyValue(v, &n); err != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid setting",
				Detail:   fmt.Sprintf("Setting %q must be a whole number: %s.", name, err),
				Subject:  subject,
			})
			continue
		}
		settings[name] = n
	}
	return settings, diags
}
