package watchlist

import (
	"strings"
	"sync"
)

// DefaultSymbols seeds a fresh session.
var DefaultSymbols = []string{"VOO", "0050.TW", "NVDA", "AAPL"}

// Manager owns the in-memory watchlist. Insertion order is preserved and
// symbols are unique; HTTP handlers and the background rescan share it, so
// access goes through a mutex.
type Manager struct {
	mu      sync.Mutex
	symbols []string
}

// NewManager creates a Manager seeded with the given symbols, skipping
// empties and duplicates.
func NewManager(initial []string) *Manager {
	m := &Manager{}
	for _, s := range initial {
		m.Add(s)
	}
	return m
}

// Normalize canonicalizes a user-entered symbol.
func Normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Add appends a symbol. Empty or already-present symbols are ignored without
// mutation; the return value reports whether the list changed.
func (m *Manager) Add(symbol string) bool {
	symbol = Normalize(symbol)
	if symbol == "" {
		return false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.symbols {
		if s == symbol {
			return false
		}
	}
	m.symbols = append(m.symbols, symbol)
	return true
}

// Remove deletes a symbol, preserving the order of the rest. Removing an
// absent symbol is a no-op.
func (m *Manager) Remove(symbol string) bool {
	symbol = Normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.symbols {
		if s == symbol {
			m.symbols = append(m.symbols[:i], m.symbols[i+1:]...)
			return true
		}
	}
	return false
}

// Symbols returns a copy of the list in insertion order.
func (m *Manager) Symbols() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Contains reports whether a symbol is tracked.
func (m *Manager) Contains(symbol string) bool {
	symbol = Normalize(symbol)
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}
