package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advance(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Advance()
	}
}

func TestScheduler_FiresInOrder(t *testing.T) {
	s := NewScheduler()
	var fired []string
	s.Schedule(2, "a", func() { fired = append(fired, "late") })
	s.Schedule(0, "a", func() { fired = append(fired, "first") })
	s.Schedule(2, "b", func() { fired = append(fired, "late2") })

	s.Advance()
	assert.Equal(t, []string{"first"}, fired)
	s.Advance()
	assert.Equal(t, []string{"first", "late", "late2"}, fired)
	assert.Zero(t, s.PendingIn("a"))
	assert.Zero(t, s.PendingIn("b"))
}

func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.Schedule(1, "a", func() { fired++ })
	s.Schedule(1, "a", func() { fired++ })

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	advance(s, 2)
	assert.Equal(t, 1, fired)
}

func TestScheduler_CancelGroup(t *testing.T) {
	s := NewScheduler()
	fired := map[Group]int{}
	for i := 0; i < 5; i++ {
		s.Schedule(i, "spawn", func() { fired["spawn"]++ })
	}
	s.Schedule(3, "auto", func() { fired["auto"]++ })

	s.Advance()
	assert.Equal(t, 3, s.PendingIn("spawn"))
	assert.Equal(t, 3, s.CancelGroup("spawn"))
	assert.Equal(t, 0, s.PendingIn("spawn"))
	assert.Equal(t, 1, s.PendingIn("auto"))

	advance(s, 5)
	assert.Equal(t, 2, fired["spawn"])
	assert.Equal(t, 1, fired["auto"])
}

func TestScheduler_CancelAll(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(0, "a", func() { fired = true })
	s.CancelAll()
	advance(s, 3)
	assert.False(t, fired)
	assert.Zero(t, s.PendingIn("a"))
}

func TestScheduler_CallbackSchedulesForNextAdvance(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.Schedule(0, "a", func() {
		order = append(order, 1)
		s.Schedule(0, "a", func() { order = append(order, 2) })
	})

	s.Advance()
	require.Equal(t, []int{1}, order)
	s.Advance()
	assert.Equal(t, []int{1, 2}, order)
}

func TestScheduler_TimeOnlyMovesOnAdvance(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(10, "a", func() { fired = true })

	// без Advance ничего не происходит, сколько бы времени ни прошло
	assert.False(t, fired)
	advance(s, 9)
	assert.False(t, fired)
	s.Advance()
	assert.True(t, fired)
}
