package history

import (
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vitalvas/viewkit/views"
)

// Entry is one element of the navigation stack. Title is the page title at
// the time the entry was pushed.
type Entry struct {
	ID       uuid.UUID
	Fragment string
	Title    string
}

// Memory is an in-memory history engine and title sink.
//
// It keeps a stack of entries with a cursor, like a browser session
// history. It implements views.History and views.TitleSink.
type Memory struct {
	mu      sync.Mutex
	entries []Entry
	index   int
	title   string
}

// NewMemory returns a history whose single entry is fragment.
func NewMemory(fragment string) *Memory {
	return &Memory{
		entries: []Entry{{ID: uuid.New(), Fragment: fragment}},
	}
}

// Navigate pushes fragment as a new entry, dropping any entries after the
// cursor. With opts.Replace the current entry is replaced instead.
func (m *Memory) Navigate(fragment string, opts views.NavigateOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := Entry{ID: uuid.New(), Fragment: fragment, Title: m.title}
	if opts.Replace {
		m.entries[m.index] = e
		return nil
	}
	m.entries = append(m.entries[:m.index+1], e)
	m.index++
	return nil
}

// Fragment returns the fragment of the current entry.
func (m *Memory) Fragment() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index].Fragment
}

// Path returns the current fragment as an absolute path without query.
func (m *Memory) Path() string {
	f := m.Fragment()
	if i := strings.IndexByte(f, '?'); i != -1 {
		f = f[:i]
	}
	return "/" + f
}

// SetTitle sets the page title. The next pushed entry records it.
func (m *Memory) SetTitle(title string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.title = title
	return nil
}

// Title returns the page title.
func (m *Memory) Title() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.title
}

// Back moves the cursor one entry back and restores its title. It returns
// false at the start of the stack.
func (m *Memory) Back() bool {
	return m.move(-1)
}

// Forward moves the cursor one entry forward and restores its title. It
// returns false at the end of the stack.
func (m *Memory) Forward() bool {
	return m.move(1)
}

func (m *Memory) move(delta int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.index + delta
	if i < 0 || i >= len(m.entries) {
		return false
	}
	m.index = i
	m.title = m.entries[i].Title
	return true
}

// Current returns the entry under the cursor.
func (m *Memory) Current() Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// Entries returns a copy of the stack.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
