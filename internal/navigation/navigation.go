// Package navigation is the boundary between the client core and whatever
// renders screens. The core only emits transitions; it never renders.
package navigation

import "sync"

type Route string

const (
	RouteLogin   Route = "login"
	RouteCatalog Route = "catalog"
	RouteDetail  Route = "detail"
)

// Navigator receives the three transitions the core can request.
type Navigator interface {
	GoToCatalog()
	GoToDetail(id string)
	GoToLogin()
}

// Event is one requested transition. ProductID is set for RouteDetail only.
type Event struct {
	Route     Route
	ProductID string
}

// Recorder is a Navigator that keeps the current route, the history of
// transitions, and notifies subscribers synchronously after each one.
type Recorder struct {
	mu        sync.Mutex
	current   Event
	history   []Event
	listeners []func(Event)
}

var _ Navigator = (*Recorder)(nil)

// NewRecorder starts at the login route.
func NewRecorder() *Recorder {
	return &Recorder{current: Event{Route: RouteLogin}}
}

func (r *Recorder) GoToCatalog()         { r.push(Event{Route: RouteCatalog}) }
func (r *Recorder) GoToDetail(id string) { r.push(Event{Route: RouteDetail, ProductID: id}) }
func (r *Recorder) GoToLogin()           { r.push(Event{Route: RouteLogin}) }

// Subscribe registers fn to be called after every transition. fn runs on
// the goroutine that requested the transition.
func (r *Recorder) Subscribe(fn func(Event)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listeners = append(r.listeners, fn)
}

// Current returns the latest route.
func (r *Recorder) Current() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// History returns a copy of every transition so far, oldest first.
func (r *Recorder) History() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.history...)
}

func (r *Recorder) push(e Event) {
	r.mu.Lock()
	r.current = e
	r.history = append(r.history, e)
	listeners := make([]func(Event), len(r.listeners))
	copy(listeners, r.listeners)
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(e)
	}
}
