package typenv

import "github.com/Azhovan/typenv/internal/normalize"

// PrefixStack holds the name fragments prepended to every lookup.
// The effective prefix is the concatenation of all fragments in push order.
type PrefixStack struct {
	fragments []string
}

// Push appends fragment to the stack. The fragment itself is not validated;
// the fully-qualified name is validated at lookup time.
func (p *PrefixStack) Push(fragment string) {
	p.fragments = append(p.fragments, fragment)
}

// Pop removes the most recently pushed fragment.
// It returns false and leaves the stack untouched when the stack is empty.
func (p *PrefixStack) Pop() (string, bool) {
	n := len(p.fragments)
	if n == 0 {
		return "", false
	}
	top := p.fragments[n-1]
	p.fragments = p.fragments[:n-1]
	return top, true
}

// Len returns the number of fragments on the stack.
func (p *PrefixStack) Len() int {
	return len(p.fragments)
}

// Fragments returns a copy of the fragments in push order.
func (p *PrefixStack) Fragments() []string {
	out := make([]string, len(p.fragments))
	copy(out, p.fragments)
	return out
}

// String returns the effective prefix.
func (p *PrefixStack) String() string {
	return normalize.Join(p.fragments)
}

// restore truncates the stack back to a previously observed state.
func (p *PrefixStack) restore(snapshot []string) {
	p.fragments = snapshot
}
