package scene

// Entry is a scene the user can go back to, with the input it ran with.
type Entry struct {
	Scene ID
	Input any
}

// History is the back stack.
type History struct {
	entries []Entry
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Push(id ID, input any) {
	h.entries = append(h.entries, Entry{Scene: id, Input: input})
}

// Pop removes and returns the most recent entry, or nil when empty.
func (h *History) Pop() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	entry := h.entries[len(h.entries)-1]
	h.entries = h.entries[:len(h.entries)-1]
	return &entry
}

// Peek returns the most recent entry without removing it, or nil when empty.
func (h *History) Peek() *Entry {
	if len(h.entries) == 0 {
		return nil
	}
	return &h.entries[len(h.entries)-1]
}

func (h *History) Len() int {
	return len(h.entries)
}

func (h *History) Clear() {
	h.entries = h.entries[:0]
}
