package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMembership_Empty(t *testing.T) {
	m := newMembership()
	assert.Empty(t, m.Variants("Half"))
	assert.Empty(t, m.SubsOf(42))
	assert.Empty(t, m.Subs())
}

func TestMembership_Variants(t *testing.T) {
	m := newMembership()
	m.Include("Float", 2)
	m.Include("Float", 0)
	m.Include("Float", 2)
	assert.Equal(t, []int{2, 0}, m.Variants("Float"))
}

func TestMembership_SubsOf(t *testing.T) {
	m := newMembership()
	m.Include("Half", 1)
	m.Include("Float", 1)
	m.Include("Int", 2)
	assert.Equal(t, []string{"Half", "Float"}, m.SubsOf(1))
	assert.Equal(t, []string{"Int"}, m.SubsOf(2))
}

func TestMembership_Includes(t *testing.T) {
	m := newMembership()
	m.Include("Half", 0)
	m.Include("Float", 1)
	assert.True(t, m.Includes("Half", 0))
	assert.False(t, m.Includes("Half", 1))
	assert.False(t, m.Includes("Int", 0))
}

func TestMembership_Subs(t *testing.T) {
	m := newMembership()
	m.Include("Float", 1)
	m.Include("Half", 0)
	m.Include("Float", 2)
	m.Include("Half", 1)
	assert.Equal(t, []string{"Float", "Half"}, m.Subs())
}
