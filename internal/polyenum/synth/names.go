package synth

import (
	"github.com/jesmaz/poly-enum/internal/polyenum/parse"
	"github.com/jesmaz/poly-enum/internal/polyenum/plan"
)

// Number, Number_F32
func variantName(p *plan.Plan, v *parse.Variant) string { return p.Name + "_" + v.Name }

// NumberKind, NumberKindF32
func kindName(p *plan.Plan) string                        { return p.Name + "Kind" }
func kindConstName(p *plan.Plan, v *parse.Variant) string { return kindName(p) + v.Name }

// isNumber
func markerName(p *plan.Plan) string { return "is" + p.Name }

// HalfToNumber, NumberToHalf, HalfToFloat
func convName(from, to *plan.Plan) string { return from.Name + "To" + to.Name }

// NumberAsHalf, NumberAsHalfMut
func viewName(from, to *plan.Plan) string    { return from.Name + "As" + to.Name }
func viewMutName(from, to *plan.Plan) string { return viewName(from, to) + "Mut" }

// MatchNumber
func matchName(p *plan.Plan) string { return "Match" + p.Name }
