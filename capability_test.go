package algebra

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

type clock struct {
	ticks int
}

func (c *clock) Copy() *clock {
	return &clock{c.ticks}
}

type tag struct {
	name string
}

func (t tag) Equal(other tag) bool {
	return t.name == other.name
}

type settings struct {
	Name  string
	Flags map[string]bool
}

func Test_CopyOf(t *testing.T) {
	t.Run("Plain Value", func(t *testing.T) {
		assert.Equal(t, 42, CopyOf(42))
		assert.Equal(t, "x", CopyOf("x"))
	})

	t.Run("Copyable Preferred", func(t *testing.T) {
		c := &clock{3}
		d := CopyOf(c)
		c.ticks = 9
		assert.Equal(t, 3, d.ticks)
	})

	t.Run("Struct Duplicated Field-Wise", func(t *testing.T) {
		s := settings{Name: "a", Flags: map[string]bool{"on": true}}
		d := CopyOf(s)
		assert.Equal(t, "a", d.Name)
		assert.True(t, d.Flags["on"])
	})
}

func Test_EqualOf(t *testing.T) {
	t.Run("Equatable Preferred", func(t *testing.T) {
		assert.True(t, EqualOf(tag{"a"}, tag{"a"}))
		assert.False(t, EqualOf(tag{"a"}, tag{"b"}))
	})

	t.Run("Deep Fallback", func(t *testing.T) {
		assert.True(t, EqualOf([]int{1, 2}, []int{1, 2}))
		assert.False(t, EqualOf([]int{1}, []int{2}))
	})
}
