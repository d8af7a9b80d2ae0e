package plan

// EdgeKind is the direction of a conversion between two enums of a family.
type EdgeKind int

const (
	// EdgeUp converts a sub-enum to its base enum. It always succeeds.
	EdgeUp EdgeKind = iota
	// EdgeDown converts the base enum to a sub-enum. It fails for variants
	// outside the sub-enum.
	EdgeDown
	// EdgeLateral converts a sub-enum to a sibling sub-enum. It fails for
	// variants outside the sibling.
	EdgeLateral
)

func (k EdgeKind) String() string {
	switch k {
	case EdgeUp:
		return "up"
	case EdgeDown:
		return "down"
	case EdgeLateral:
		return "lateral"
	}
	return "unknown"
}

// Total reports whether conversions of the kind always succeed.
func (k EdgeKind) Total() bool { return k == EdgeUp }

// Edge is a conversion from one enum to another.
type Edge struct {
	From, To *Plan
	Kind     EdgeKind
}

// Edges returns every conversion of the family: up and down for each
// sub-enum, then lateral for each ordered pair of siblings.
func (f *Family) Edges() []Edge {
	var edges []Edge
	for _, sub := range f.Subs {
		edges = append(edges,
			Edge{From: sub, To: f.Base, Kind: EdgeUp},
			Edge{From: f.Base, To: sub, Kind: EdgeDown},
		)
	}
	for _, a := range f.Subs {
		for _, b := range f.Subs {
			if a != b {
				edges = append(edges, Edge{From: a, To: b, Kind: EdgeLateral})
			}
		}
	}
	return edges
}
