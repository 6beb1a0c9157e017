package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestList(t *testing.T) {
	t.Run("Append grows the collection", func(t *testing.T) {
		list := NewList()
		list.Append(Event{ID: 1, Title: "A", Date: "2024-03-15", Time: "09:00"})
		list.Append(Event{ID: 2, Title: "B", Date: "2024-03-15", Time: "10:00"})

		assert.Equal(t, 2, list.Len())
	})

	t.Run("All returns a snapshot that does not alias internal state", func(t *testing.T) {
		list := NewList()
		list.Append(Event{ID: 1, Title: "A", Date: "2024-03-15", Time: "09:00"})

		snapshot := list.All()
		snapshot[0].Title = "mutated"

		assert.Equal(t, "A", list.All()[0].Title)
	})

	t.Run("Reset replaces the collection", func(t *testing.T) {
		list := NewList()
		list.Append(Event{ID: 1})
		list.Reset([]Event{{ID: 2}, {ID: 3}})

		assert.Equal(t, 2, list.Len())
		assert.Equal(t, 2, list.All()[0].ID)
	})

	t.Run("OnDate filters by literal anchor date and sorts by time", func(t *testing.T) {
		list := NewList()
		list.Append(Event{ID: 1, Title: "Late", Date: "2024-03-15", Time: "18:00"})
		list.Append(Event{ID: 2, Title: "Early", Date: "2024-03-15", Time: "08:00"})
		list.Append(Event{ID: 3, Title: "Other day", Date: "2024-03-16", Time: "09:00"})
		// A daily repeat anchored elsewhere does not show up on other dates.
		list.Append(Event{ID: 4, Title: "Repeating", Date: "2024-01-01", Time: "09:00", Repeat: RepeatDaily})

		matched := list.OnDate("2024-03-15")
		assert.Len(t, matched, 2)
		assert.Equal(t, "Early", matched[0].Title)
		assert.Equal(t, "Late", matched[1].Title)
	})

	t.Run("OnDate returns empty for a date with no events", func(t *testing.T) {
		list := NewList()
		assert.Empty(t, list.OnDate("2024-03-15"))
	})
}
