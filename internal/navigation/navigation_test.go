package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	assert.Equal(t, Event{Route: RouteLogin}, r.Current())
	assert.Empty(t, r.History())

	var seen []Event
	r.Subscribe(func(e Event) { seen = append(seen, e) })

	r.GoToCatalog()
	r.GoToDetail("12")
	r.GoToLogin()

	want := []Event{
		{Route: RouteCatalog},
		{Route: RouteDetail, ProductID: "12"},
		{Route: RouteLogin},
	}
	assert.Equal(t, want, r.History())
	assert.Equal(t, want, seen)
	assert.Equal(t, Event{Route: RouteLogin}, r.Current())
}

func TestRecorder_ListenerMayNavigate(t *testing.T) {
	r := NewRecorder()
	r.Subscribe(func(e Event) {
		if e.Route == RouteDetail && e.ProductID == "" {
			r.GoToCatalog()
		}
	})

	r.GoToDetail("")
	assert.Equal(t, Event{Route: RouteCatalog}, r.Current())
	assert.Len(t, r.History(), 2)
}
