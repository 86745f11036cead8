package form

// Direction is the way focus moves
type Direction int

const (
	Forward Direction = iota
	Backward
)

// focusManager tracks the focused position among n fields plus the virtual
// submit control at index n.
type focusManager struct {
	count int
	index int
}

func newFocusManager(count int) focusManager {
	return focusManager{count: count}
}

// positions counts every focusable slot, submit control included
func (m *focusManager) positions() int {
	return m.count + 1
}

func (m *focusManager) advance(dir Direction) {
	n := m.positions()
	if dir == Backward {
		m.index = (m.index - 1 + n) % n
		return
	}
	m.index = (m.index + 1) % n
}

func (m *focusManager) focusField(i int) bool {
	if i < 0 || i >= m.count {
		return false
	}
	m.index = i
	return true
}

func (m *focusManager) focusSubmit() {
	m.index = m.count
}

func (m *focusManager) isSubmit() bool {
	return m.index == m.count
}

// field returns the focused field index, or -1 on the submit control
func (m *focusManager) field() int {
	if m.isSubmit() {
		return -1
	}
	return m.index
}
