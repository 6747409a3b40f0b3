package advent

import (
	"encoding/json"
	"fmt"
)

// KV is the injected backing store for opened-day state. Implementations are
// viewer-local (browser cookie, in-memory in tests); the server never owns
// this state and it never gates access.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Tracker records which days one viewer has already opened for one calendar.
type Tracker struct {
	kv  KV
	key string
}

// NewTracker scopes a tracker to a calendar. The storage key matches one
// calendar per viewer profile.
func NewTracker(kv KV, calendarID int) *Tracker {
	return &Tracker{kv: kv, key: fmt.Sprintf("calendar_%d_opened", calendarID)}
}

// Opened returns the opened day ids, in mark order. Missing or corrupt
// backing data degrades to empty.
func (t *Tracker) Opened() []int {
	raw, ok := t.kv.Get(t.key)
	if !ok || raw == "" {
		return nil
	}
	var ids []int
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil
	}
	return ids
}

// IsOpened reports whether the viewer already opened the day.
func (t *Tracker) IsOpened(dayID int) bool {
	for _, id := range t.Opened() {
		if id == dayID {
			return true
		}
	}
	return false
}

// MarkOpened records a day as opened. Marking twice is a no-op.
func (t *Tracker) MarkOpened(dayID int) {
	ids := t.Opened()
	for _, id := range ids {
		if id == dayID {
			return
		}
	}
	raw, _ := json.Marshal(append(ids, dayID))
	t.kv.Set(t.key, string(raw))
}

// MemoryKV is an in-process KV, used in tests and anywhere a throwaway
// store is enough.
type MemoryKV struct {
	m map[string]string
}

func NewMemoryKV() *MemoryKV { return &MemoryKV{m: map[string]string{}} }

func (s *MemoryKV) Get(key string) (string, bool) {
	v, ok := s.m[key]
	return v, ok
}

func (s *MemoryKV) Set(key, value string) { s.m[key] = value }
