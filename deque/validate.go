package deque

import (
	"github.com/pkg/errors"
)

// ErrCorrupt is wrapped by every error returned from Validate.
var ErrCorrupt = errors.New("deque: list invariant broken")

// restingOwners is the owner count of every node between operations: one list
// slot and one neighbour, both list slots, or both neighbours.
const restingOwners = 2

// Validate walks the list head to tail and tail to head and checks that both
// walks agree: equal length, every adjacent pair linked in both directions,
// no links past the ends, and two owners per node. It returns nil for a
// consistent list.
func (l *List[T]) Validate() error {
	l.flag.Shared()
	defer l.flag.ReleaseShared()

	if l.head.IsNil() != l.tail.IsNil() {
		return errors.Wrapf(ErrCorrupt, "head %v and tail %v disagree on emptiness", l.head, l.tail)
	}

	forward, err := l.walk(l.head, l.tail, func(n node[T]) (link, link) { return n.prev, n.next })
	if err != nil {
		return errors.WithMessage(err, "forward walk")
	}
	backward, err := l.walk(l.tail, l.head, func(n node[T]) (link, link) { return n.next, n.prev })
	if err != nil {
		return errors.WithMessage(err, "backward walk")
	}
	if forward != backward {
		return errors.Wrapf(ErrCorrupt, "forward walk saw %d nodes, backward walk saw %d", forward, backward)
	}
	if forward != l.nodes.Len() {
		return errors.Wrapf(ErrCorrupt, "walks saw %d nodes, arena holds %d", forward, l.nodes.Len())
	}
	return nil
}

// walk follows links from start and returns the number of nodes visited. dir
// returns the link behind and the link ahead of a node.
func (l *List[T]) walk(start, end link, dir func(node[T]) (link, link)) (int, error) {
	count := 0
	behind := link{}
	for h := start; !h.IsNil(); {
		if !l.nodes.Contains(h) {
			return count, errors.Wrapf(ErrCorrupt, "dangling link %v after %v", h, behind)
		}
		if count >= l.nodes.Len() {
			return count, errors.Wrapf(ErrCorrupt, "cycle through %v", h)
		}
		if owners := l.nodes.Owners(h); owners != restingOwners {
			return count, errors.Wrapf(ErrCorrupt, "node %v has %d owners, want %d", h, owners, restingOwners)
		}
		r := l.at(h).Borrow()
		n := r.Get()
		r.Release()

		back, ahead := dir(n)
		if back != behind {
			return count, errors.Wrapf(ErrCorrupt, "node %v links back to %v, want %v", h, back, behind)
		}
		count++
		if ahead.IsNil() && h != end {
			return count, errors.Wrapf(ErrCorrupt, "walk ended at %v, want %v", h, end)
		}
		behind, h = h, ahead
	}
	return count, nil
}
