package gallery

import (
	"context"
	"errors"
	"sync"
)

// State is the state of a Feed
type State string

const (
	StateIdle        State = "idle"
	StateLoading     State = "loading"
	StateReady       State = "ready"
	StateLoadingMore State = "loading_more"
	StateExhausted   State = "exhausted"
)

var (
	// ErrLoadInFlight is returned when a load is already running
	ErrLoadInFlight = errors.New("gallery: load in flight")
	// ErrExhausted is returned when the last page was already loaded
	ErrExhausted = errors.New("gallery: no more pages")
	// ErrNotStarted is returned when more pages are requested before Start
	ErrNotStarted = errors.New("gallery: feed not started")
	// ErrStarted is returned when Start is called twice without Reset
	ErrStarted = errors.New("gallery: feed already started")
)

// PageLoader fetches the page at cursor. An empty cursor is the first page.
type PageLoader func(ctx context.Context, cursor string) (Page, error)

// Feed drives the infinite scroll of one collection:
// Idle -> Loading -> Ready <-> LoadingMore -> Exhausted.
// At most one load runs at a time and a failed load restores the previous state.
type Feed struct {
	load PageLoader

	mu         sync.Mutex
	state      State
	assets     []Asset
	cursor     string
	generation int
}

// NewFeed creates an idle feed
func NewFeed(load PageLoader) *Feed {
	return &Feed{load: load, state: StateIdle}
}

// State returns the current state
func (f *Feed) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Assets returns a copy of the loaded assets, newest first
func (f *Feed) Assets() []Asset {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Asset(nil), f.assets...)
}

// Start loads the first page
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateLoading, StateLoadingMore:
		f.mu.Unlock()
		return ErrLoadInFlight
	case StateReady, StateExhausted:
		f.mu.Unlock()
		return ErrStarted
	}
	f.state = StateLoading
	generation := f.generation
	f.mu.Unlock()

	page, err := f.load(ctx, "")

	f.mu.Lock()
	defer f.mu.Unlock()
	if generation != f.generation {
		// reset while loading
		return nil
	}
	if err != nil {
		f.state = StateIdle
		return err
	}
	f.assets = append([]Asset(nil), page.Assets...)
	f.advance(page)
	return nil
}

// SentinelVisible loads the next page, as when the end of the grid scrolls into view
func (f *Feed) SentinelVisible(ctx context.Context) error {
	f.mu.Lock()
	switch f.state {
	case StateIdle:
		f.mu.Unlock()
		return ErrNotStarted
	case StateLoading, StateLoadingMore:
		f.mu.Unlock()
		return ErrLoadInFlight
	case StateExhausted:
		f.mu.Unlock()
		return ErrExhausted
	}
	f.state = StateLoadingMore
	cursor := f.cursor
	generation := f.generation
	f.mu.Unlock()

	page, err := f.load(ctx, cursor)

	f.mu.Lock()
	defer f.mu.Unlock()
	if generation != f.generation {
		return nil
	}
	if err != nil {
		f.state = StateReady
		return err
	}
	f.assets = append(f.assets, page.Assets...)
	f.advance(page)
	return nil
}

// Reset drops the loaded pages and returns to Idle. A load in flight is discarded.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = StateIdle
	f.assets = nil
	f.cursor = ""
	f.generation++
}

// advance must be called with mu held
func (f *Feed) advance(page Page) {
	f.cursor = page.NextCursor
	if page.HasMore && page.NextCursor != "" {
		f.state = StateReady
		return
	}
	f.state = StateExhausted
}
