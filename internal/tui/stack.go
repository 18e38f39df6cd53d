package tui

// Stack helpers. The stack is never empty: the Welcome screen pushed at
// startup is the base and pop refuses to remove it.

// top returns the focused screen.
func (m *model) top() screenState {
	return m.stack[len(m.stack)-1]
}

// push makes next the focused screen.
func (m *model) push(next screenState) {
	m.stack = append(m.stack, next)
}

// pop removes the focused screen and returns true. On the base screen it
// returns false and leaves the stack alone.
func (m *model) pop() bool {
	if len(m.stack) <= 1 {
		return false
	}
	m.stack[len(m.stack)-1] = nil
	m.stack = m.stack[:len(m.stack)-1]
	return true
}

// replaceTop swaps the focused screen without growing the stack. Switching
// between the sibling cluster sections uses this so the siblings do not pile
// up; esc from any of them still lands on Welcome.
func (m *model) replaceTop(next screenState) {
	m.stack[len(m.stack)-1] = next
}

// findScreen walks the stack top-down for the first screen of the given
// concrete kind; nil when absent.
func (m *model) findScreen(k screenKind) screenState {
	for i := len(m.stack) - 1; i >= 0; i-- {
		if m.stack[i].kind() == k {
			return m.stack[i]
		}
	}
	return nil
}
