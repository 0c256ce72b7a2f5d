package greeter

import (
	"fmt"
	"sync"
)

// State is the in-memory record shared by every request handler. The zero
// value is ready to use.
type State struct {
	mu        sync.Mutex
	count     int64
	greetings []string
}

func NewState() *State {
	return &State{greetings: make([]string, 0)}
}

// Greeting builds the message for name, falling back to "World".
func Greeting(name string) string {
	if name == "" {
		name = "World"
	}
	return fmt.Sprintf("Hello, %s!", name)
}

// Greet records the greeting for name and returns it.
func (s *State) Greet(name string) string {
	message := Greeting(name)

	s.mu.Lock()
	s.greetings = append(s.greetings, message)
	s.mu.Unlock()

	return message
}

// Count increments the counter and returns the new value.
func (s *State) Count() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.count
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	greetings := make([]string, len(s.greetings))
	copy(greetings, s.greetings)
	return Snapshot{Count: s.count, Greetings: greetings}
}
