package relay

import (
	"fmt"
	"reflect"
	"strings"
)

// Links wires handlers successor by successor before they are turned into a Chain.
// Every Link call is checked eagerly, so a cycle can never be built.
//
// Links is not safe for concurrent use; build it once, then call Chain.
type Links[Req, Res any] struct {
	handlers map[string]Handler[Req, Res]
	next     map[string]string
}

// NewLinks creates an empty set of links.
func NewLinks[Req, Res any]() *Links[Req, Res] {
	return &Links[Req, Res]{
		handlers: make(map[string]Handler[Req, Res]),
		next:     make(map[string]string),
	}
}

// Link sets successor as the handler consulted after h.
// Handlers are identified by name; linking a different handler under a name
// that is already in use returns ErrDuplicateName.
func (l *Links[Req, Res]) Link(h, successor Handler[Req, Res]) error {
	if err := validate(h); err != nil {
		return fmt.Errorf("relay: link: %w", err)
	}
	if err := validate(successor); err != nil {
		return fmt.Errorf("relay: link %s: successor: %w", h.Name(), err)
	}
	if err := l.ensureKnown(h); err != nil {
		return err
	}
	if err := l.ensureKnown(successor); err != nil {
		return err
	}
	from, to := h.Name(), successor.Name()
	if cur, ok := l.next[from]; ok {
		if cur == to {
			return nil
		}
		return fmt.Errorf("relay: %w: %s -> %s", ErrAlreadyLinked, from, cur)
	}
	path := []string{to}
	for node := to; ; {
		if node == from {
			cycle := append([]string{from}, path...)
			return fmt.Errorf("relay: %w: %s", ErrCycle, strings.Join(cycle, " -> "))
		}
		next, ok := l.next[node]
		if !ok {
			break
		}
		path = append(path, next)
		node = next
	}
	l.handlers[from] = h
	l.handlers[to] = successor
	l.next[from] = to
	return nil
}

// ensureKnown fails when another handler is already registered under h's name.
func (l *Links[Req, Res]) ensureKnown(h Handler[Req, Res]) error {
	cur, ok := l.handlers[h.Name()]
	if !ok || sameHandler(cur, h) {
		return nil
	}
	return fmt.Errorf("relay: %w: %s", ErrDuplicateName, h.Name())
}

// sameHandler reports whether a and b are the same handler value.
// Handlers of non-comparable types are never considered the same.
func sameHandler[Req, Res any](a, b Handler[Req, Res]) bool {
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// Chain builds the Chain that starts at head and follows the successor links.
// A head that was never linked is an error unless no links exist at all, in
// which case the chain holds head alone.
func (l *Links[Req, Res]) Chain(head Handler[Req, Res], opts ...Option[Req, Res]) (*Chain[Req, Res], error) {
	if err := validate(head); err != nil {
		return nil, fmt.Errorf("relay: chain head: %w", err)
	}
	if err := l.ensureKnown(head); err != nil {
		return nil, err
	}
	h, ok := l.handlers[head.Name()]
	if !ok {
		if len(l.handlers) > 0 {
			return nil, fmt.Errorf("relay: %w: %s", ErrUnknownHandler, head.Name())
		}
		h = head
	}
	handlers := []Handler[Req, Res]{h}
	for name := l.next[h.Name()]; name != ""; name = l.next[name] {
		handlers = append(handlers, l.handlers[name])
	}
	return NewChain(handlers, opts...)
}
