package plan

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/emirpasic/gods/sets/linkedhashset"
)

// membership relates sub-enum names and variant indices many-to-many. Both
// directions keep the order of first inclusion.
type membership struct {
	bySub     *linkedhashmap.Map // key: string, value: *linkedhashset.Set of int
	byVariant *linkedhashmap.Map // key: int, value: *linkedhashset.Set of string
}

func newMembership() *membership {
	return &membership{
		bySub:     linkedhashmap.New(),
		byVariant: linkedhashmap.New(),
	}
}

// Include records that the sub-enum includes the variant.
func (m *membership) Include(sub string, variant int) {
	vs, ok := m.bySub.Get(sub)
	if !ok {
		vs = linkedhashset.New()
		m.bySub.Put(sub, vs)
	}
	vs.(*linkedhashset.Set).Add(variant)

	subs, ok := m.byVariant.Get(variant)
	if !ok {
		subs = linkedhashset.New()
		m.byVariant.Put(variant, subs)
	}
	subs.(*linkedhashset.Set).Add(sub)
}

// Includes reports whether the sub-enum includes the variant.
func (m *membership) Includes(sub string, variant int) bool {
	vs, ok := m.bySub.Get(sub)
	return ok && vs.(*linkedhashset.Set).Contains(variant)
}

// Variants returns the variants of the sub-enum in order of inclusion.
func (m *membership) Variants(sub string) []int {
	vs, ok := m.bySub.Get(sub)
	if !ok {
		return nil
	}

	var out []int
	for it := vs.(*linkedhashset.Set).Iterator(); it.Next(); {
		out = append(out, it.Value().(int))
	}
	return out
}

// SubsOf returns the sub-enums including the variant in order of inclusion.
func (m *membership) SubsOf(variant int) []string {
	subs, ok := m.byVariant.Get(variant)
	if !ok {
		return nil
	}

	var out []string
	for it := subs.(*linkedhashset.Set).Iterator(); it.Next(); {
		out = append(out, it.Value().(string))
	}
	return out
}

// Subs returns the names of all sub-enums in order of first inclusion.
func (m *membership) Subs() []string {
	var out []string
	for it := m.bySub.Iterator(); it.Next(); {
		out = append(out, it.Key().(string))
	}
	return out
}
