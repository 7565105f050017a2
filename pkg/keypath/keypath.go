/*
Element Identity Allocation:
--------------------------

The allocator hands out hierarchical, counter-based keys so that repeated
runs over the same token tree produce the same key for the same element:

	Enter()            path: [0]
	  Next()           path: [1]      -> "1"
	  Enter()          path: [2 0]
	    Next()         path: [2 1]    -> "2.1"
	    Next()         path: [2 2]    -> "2.2"
	  Leave()          path: [2]
	  Next()           path: [3]      -> "3"
	Leave()            path: []

Every Next and every nested Enter consumes one sibling counter value, so
a counter value is either the last component of exactly one key or the
prefix of exactly one subtree, never both. That exclusivity is what makes
full paths collision-free: keys diverge at the first differing counter,
and no key can be a prefix of another.

Scopes are structural handles: Leave on anything but the innermost open
scope panics, since mismatched enter/leave pairs are programming errors,
not recoverable conditions.
*/
package keypath

import (
	"strconv"
	"strings"
)

// separator joins the counters of a path into a key.
const separator = "."

// Key uniquely identifies one emitted element within a transcription call.
type Key string

// Allocator produces keys for one transcription pass. It is not safe for
// concurrent use; each pass owns its own allocator.
type Allocator struct {
	prefix string
	path   []int
}

// NewAllocator returns an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NewAllocatorWithPrefix returns an allocator whose keys all start with
// prefix. The HTML fragment transcriber uses this to continue the key
// space of the element it replaces.
func NewAllocatorWithPrefix(prefix Key) *Allocator {
	return &Allocator{prefix: string(prefix)}
}

// Scope is a handle for one open nesting level. Only the Leave of the
// innermost open scope is valid.
type Scope struct {
	a     *Allocator
	depth int
}

// Enter opens a new nesting level with a zeroed sibling counter. A nested
// Enter first advances the current counter, reserving a path segment for
// the subtree: without the reservation, two sibling scopes with no Next
// between them would share a prefix and hand out colliding keys.
func (a *Allocator) Enter() Scope {
	if len(a.path) > 0 {
		a.path[len(a.path)-1]++
	}
	a.path = append(a.path, 0)
	return Scope{a: a, depth: len(a.path)}
}

// Leave closes the scope. It panics when the scope is not the innermost
// open one, or when it was already left.
func (s Scope) Leave() {
	if s.a == nil || len(s.a.path) != s.depth {
		panic("keypath: scope left out of order")
	}
	s.a.path = s.a.path[:s.depth-1]
}

// Next advances the sibling counter of the innermost scope and returns the
// joined key. It must be called exactly once per emitted element. Calling
// it outside any scope panics.
func (a *Allocator) Next() Key {
	if len(a.path) == 0 {
		panic("keypath: Next called outside of a scope")
	}
	a.path[len(a.path)-1]++

	var sb strings.Builder
	if a.prefix != "" {
		sb.WriteString(a.prefix)
	}
	for _, n := range a.path {
		if sb.Len() > 0 {
			sb.WriteString(separator)
		}
		sb.WriteString(strconv.Itoa(n))
	}
	return Key(sb.String())
}

// Depth reports how many scopes are currently open.
func (a *Allocator) Depth() int {
	return len(a.path)
}
