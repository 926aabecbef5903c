package repl

import "sync"

// History is the ordered, append-only list of rendered results for one
// session. The mutex lets the MCP history tool share a session history
// with concurrent tool calls; the REPL itself is single-threaded.
type History struct {
	mu      sync.Mutex
	entries []string
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Add appends an entry to the history
func (h *History) Add(entry string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, entry)
}

// Entries returns a copy of the history entries in submission order
func (h *History) Entries() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries
}

// Len returns the number of entries
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.entries)
}
