package json

import (
	"encoding/json"
	"fmt"

	mdfw "github.com/kocheck/MarkDown-For-What"
)

// Plan is one file's conversion output in transportable form: the element
// text to set and the range instructions to apply, in order. A host-side
// plugin can replay a plan without running the engine itself.
type Plan struct {
	Name         string           `json:"name"`
	FullText     string           `json:"fullText"`
	Instructions []instructionDTO `json:"instructions"`
}

type instructionDTO struct {
	Start   int     `json:"start"`
	End     int     `json:"end"`
	Family  string  `json:"family"`
	Variant string  `json:"variant"`
	SizePt  float64 `json:"size"`
}

// MarshalPlan serializes one conversion into a plan document.
func MarshalPlan(name, fullText string, instrs []mdfw.RangeInstruction) ([]byte, error) {
	plan := Plan{Name: name, FullText: fullText, Instructions: make([]instructionDTO, len(instrs))}
	for i, in := range instrs {
		plan.Instructions[i] = instructionDTO{
			Start:   in.Start,
			End:     in.End,
			Family:  in.Style.Family,
			Variant: string(in.Style.Variant),
			SizePt:  in.Style.SizePt,
		}
	}
	return json.MarshalIndent(plan, "", "  ")
}

// UnmarshalPlan deserializes a plan document.
func UnmarshalPlan(data []byte) (string, string, []mdfw.RangeInstruction, error) {
	var plan Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return "", "", nil, fmt.Errorf("unmarshal plan: %w", err)
	}
	instrs := make([]mdfw.RangeInstruction, len(plan.Instructions))
	for i, dto := range plan.Instructions {
		instrs[i] = mdfw.RangeInstruction{
			Start: dto.Start,
			End:   dto.End,
			Style: mdfw.ResolvedStyle{
				Family:  dto.Family,
				Variant: mdfw.FontVariant(dto.Variant),
				SizePt:  dto.SizePt,
			},
		}
	}
	return plan.Name, plan.FullText, instrs, nil
}
