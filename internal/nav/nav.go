// Package nav holds the selected navigation tab and notifies subscribers
// whenever a selection is made.
package nav

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

type Tab int

const (
	Home Tab = iota
	Search
	Profile
)

var ErrUnknownTab = errors.New("unknown tab")

var tabNames = [...]string{"Home", "Search", "Profile"}

// Tabs returns every tab in bar order.
func Tabs() []Tab {
	return []Tab{Home, Search, Profile}
}

func (t Tab) String() string {
	if t.Valid() {
		return tabNames[t]
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

func (t Tab) Valid() bool {
	return t >= Home && t <= Profile
}

// ParseTab accepts a tab name in any case.
func ParseTab(s string) (Tab, error) {
	name := strings.TrimSpace(s)
	for i, n := range tabNames {
		if strings.EqualFold(n, name) {
			return Tab(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownTab, s)
}

// Event is delivered to subscribers after every Select call.
type Event struct {
	Previous Tab
	Current  Tab
	// Changed is false when the active tab was selected again.
	Changed bool
}

// Store is the only mutable state of the screen.
type Store struct {
	mu      sync.Mutex
	current Tab
	nextID  int
	subs    map[int]func(Event)
	order   []int
}

// NewStore returns a store positioned on initial. Invalid tabs fall back to Home.
func NewStore(initial Tab) *Store {
	if !initial.Valid() {
		initial = Home
	}
	return &Store{current: initial, subs: make(map[int]func(Event))}
}

func (s *Store) Current() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Select makes tab current and notifies subscribers in subscription order.
// Tabs outside the closed set are ignored.
func (s *Store) Select(tab Tab) {
	if !tab.Valid() {
		return
	}

	s.mu.Lock()
	ev := Event{Previous: s.current, Current: tab, Changed: s.current != tab}
	s.current = tab
	handlers := make([]func(Event), 0, len(s.order))
	for _, id := range s.order {
		handlers = append(handlers, s.subs[id])
	}
	s.mu.Unlock()

	// Handlers run outside the lock so they may read the store.
	for _, h := range handlers {
		h(ev)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.order = append(s.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}
