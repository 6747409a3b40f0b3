package advent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_MarkAndQuery(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), 1)

	assert.False(t, tr.IsOpened(7))
	tr.MarkOpened(7)
	assert.True(t, tr.IsOpened(7))
	assert.Equal(t, []int{7}, tr.Opened())
}

func TestTracker_MarkIdempotent(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), 1)

	tr.MarkOpened(3)
	tr.MarkOpened(3)
	assert.True(t, tr.IsOpened(3))
	assert.Len(t, tr.Opened(), 1)
}

func TestTracker_ScopedPerCalendar(t *testing.T) {
	kv := NewMemoryKV()
	a := NewTracker(kv, 1)
	b := NewTracker(kv, 2)

	a.MarkOpened(5)
	assert.True(t, a.IsOpened(5))
	assert.False(t, b.IsOpened(5))
}

func TestTracker_EmptyStoreDegrades(t *testing.T) {
	tr := NewTracker(NewMemoryKV(), 9)
	assert.Empty(t, tr.Opened())
	assert.False(t, tr.IsOpened(1))
}

func TestTracker_CorruptStoreDegrades(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set("calendar_4_opened", "definitely not json")
	tr := NewTracker(kv, 4)
	assert.Empty(t, tr.Opened())

	// And recovers on the next mark.
	tr.MarkOpened(2)
	assert.True(t, tr.IsOpened(2))
}
