// A doubly-linked list where each node owns a private copy of an opaque
// byte payload. Operations are defined relative to whichever node they are
// called on, which does not have to be the structural head of the list.
package list

import (
	"bytes"
	"errors"
)

var (
	ErrEmptyList          = errors.New("list: empty list")
	ErrEmptyPayload       = errors.New("list: empty payload")
	ErrPositionOutOfRange = errors.New("list: position out of range")
	ErrNotFound           = errors.New("list: payload not found")
	ErrNilFormatter       = errors.New("list: nil formatter")
)

// Node is a list element. It owns its payload copy and its forward link;
// the back link is observational only and is never used to detach or
// invalidate nodes.
type Node struct {
	payload []byte
	next    *Node
	prev    *Node
}

// Init creates a single-node list holding a copy of payload. The caller's
// buffer can be reused or discarded as soon as Init returns. Returns nil
// for a nil or empty payload.
func Init(payload []byte) *Node {
	if len(payload) == 0 {
		return nil
	}
	return &Node{payload: clone(payload)}
}

func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) Prev() *Node {
	return n.prev
}

// Payload returns the node's payload buffer, not a copy. The caller must
// not modify it; it is only valid for as long as the node is.
func (n *Node) Payload() []byte {
	return n.payload
}

// Len counts nodes following next-links from the receiver to the end of
// the list, the receiver included. A node in the middle of a list counts
// only the nodes behind it.
func (n *Node) Len() int {
	count := 0
	for ; n != nil; n = n.next {
		count++
	}
	return count
}

// Insert adds a new node holding a copy of payload at the 0-indexed
// position pos, counted from the receiver. pos equal to Len() appends.
// It returns the root of the resulting list, which differs from the
// receiver only when the new node takes over as structural head. On
// failure the list is left untouched.
func (n *Node) Insert(payload []byte, pos int) (*Node, error) {
	if n == nil {
		return nil, ErrEmptyList
	}
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	if pos < 0 || pos > n.Len() {
		return nil, ErrPositionOutOfRange
	}

	// Walk to the node currently occupying pos. at becomes nil when
	// appending past the last node.
	var prev *Node
	at := n
	for ; pos > 0; pos-- {
		prev = at
		at = at.next
	}

	node := &Node{payload: clone(payload)}
	switch {
	case at == nil:
		node.prev = prev
		prev.next = node
		return n, nil
	case at.prev == nil:
		node.next = at
		at.prev = node
		return node, nil
	default:
		node.next = at
		node.prev = at.prev
		at.prev.next = node
		at.prev = node
		return n, nil
	}
}

// Del removes the first node, scanning forward from the receiver, whose
// payload is byte-equal to payload. It returns the root of the resulting
// list: nil when the sole node was removed, the removed node's successor
// when the receiver itself matched, the receiver otherwise. When no node
// matches it returns ErrNotFound and the list is left untouched.
func (n *Node) Del(payload []byte) (*Node, error) {
	for node := n; node != nil; node = node.next {
		if !bytes.Equal(node.payload, payload) {
			continue
		}
		next, prev := node.next, node.prev
		if next != nil {
			next.prev = prev
		}
		if prev != nil {
			prev.next = next
		}
		node.invalidate()
		if node == n {
			// the receiver itself was removed, its successor takes over
			return next, nil
		}
		return n, nil
	}
	return nil, ErrNotFound
}

// Search returns the first node, scanning forward from the receiver,
// whose payload is byte-equal to payload, or nil if there is none.
func (n *Node) Search(payload []byte) *Node {
	for ; n != nil; n = n.next {
		if bytes.Equal(n.payload, payload) {
			return n
		}
	}
	return nil
}

// Get returns the payload of the node at the 0-indexed position pos,
// counted from the receiver, or nil when pos is out of range. The
// returned buffer is a reference, see Payload.
func (n *Node) Get(pos int) []byte {
	if pos < 0 {
		return nil
	}
	for ; n != nil; n = n.next {
		if pos == 0 {
			return n.payload
		}
		pos--
	}
	return nil
}

// Destroy invalidates the receiver and every node following it. If the
// receiver has a predecessor, the predecessor's forward link is severed
// first, leaving the front of the list valid and correctly terminated.
func (n *Node) Destroy() {
	if n == nil {
		return
	}
	if n.prev != nil {
		n.prev.next = nil
	}
	for n != nil {
		next := n.next
		n.invalidate()
		n = next
	}
}

// invalidate clears every field of a detached node so stale references
// fail loudly and the payload becomes collectable.
func (n *Node) invalidate() {
	n.next = nil
	n.prev = nil
	n.payload = nil
}

func clone(payload []byte) []byte {
	return append([]byte(nil), payload...)
}
