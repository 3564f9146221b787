package slack

import (
	"context"
	"strings"
)

// Namespace is one node of the dot-separated method catalog: an accumulated
// path of camelCase segments plus the Caller that will execute the terminal
// call. Nodes are immutable; descending never mutates the parent, so nodes
// can be held and branched from freely.
type Namespace struct {
	caller Caller
	path   []string
}

// NewNamespace builds a node rooted at caller with the given segments.
// Segments are translated snake_case -> camelCase as they are added.
func NewNamespace(caller Caller, segments ...string) *Namespace {
	node := &Namespace{caller: caller}
	for _, segment := range segments {
		node = node.Namespace(segment)
	}

	return node
}

// Namespace returns a child node whose path is this node's path plus the
// translated segment.
func (n *Namespace) Namespace(segment string) *Namespace {
	path := make([]string, 0, len(n.path)+1)
	path = append(path, n.path...)
	path = append(path, CamelSegment(segment))

	return &Namespace{caller: n.caller, path: path}
}

// Path returns the accumulated dot-path, e.g. "admin.conversations".
func (n *Namespace) Path() string {
	return strings.Join(n.path, ".")
}

// Call executes the method <path>.<leaf> with args as the POST body.
func (n *Namespace) Call(ctx context.Context, leaf string, args Args) (*Response, error) {
	return n.caller.Call(ctx, n.leafPath(leaf), args)
}

// CallGet executes the method <path>.<leaf> as a GET with args as query
// parameters.
func (n *Namespace) CallGet(ctx context.Context, leaf string, args Args) (*Response, error) {
	return n.caller.CallGet(ctx, n.leafPath(leaf), args)
}

func (n *Namespace) leafPath(leaf string) string {
	if len(n.path) == 0 {
		return CamelPath(leaf)
	}

	return strings.Join(n.path, ".") + "." + CamelPath(leaf)
}
