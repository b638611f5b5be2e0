// Package slash is the registration and dispatch core for typed slash
// commands: a three-level command tree (command / subcommand group /
// subcommand), a generic Executor that routes interactions to type-erased
// handlers, and the export of the tree into discordgo application commands
// for publication. Option typing lives in the args package; delivering
// interactions and publishing the export is the host's job.
package slash

import (
	"fmt"

	"github.com/keshon/slashkit/args"
)

// entry is one registered leaf: the type-erased handler, its option schemas
// and its description. The tree owns every entry for the process lifetime.
type entry[S any] struct {
	handler     handlerFunc[S]
	options     []args.Schema
	description string
}

// node is either a group (children non-nil) or a leaf (entry non-nil). The
// root is always a group. Child insertion order is kept so the export is
// deterministic.
type node[S any] struct {
	children map[string]*node[S]
	order    []string
	entry    *entry[S]
}

func newGroup[S any]() *node[S] {
	return &node[S]{children: make(map[string]*node[S])}
}

func (n *node[S]) leaf() bool { return n.entry != nil }

// insert places a leaf at the given path, creating group nodes along the way.
// Re-inserting at a bound path replaces the previous entry wholesale: last
// registration wins. Descending through an existing leaf is a configuration
// error.
func (n *node[S]) insert(path []string, e *entry[S]) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty command path", args.ErrSchema)
	}
	seg := path[0]
	if len(path) == 1 {
		if _, exists := n.children[seg]; !exists {
			n.order = append(n.order, seg)
		}
		n.children[seg] = &node[S]{entry: e}
		return nil
	}
	child, exists := n.children[seg]
	if !exists {
		child = newGroup[S]()
		n.children[seg] = child
		n.order = append(n.order, seg)
	}
	if child.leaf() {
		return fmt.Errorf("%w: %q is already a command, not a group", args.ErrSchema, seg)
	}
	return child.insert(path[1:], e)
}

// get walks the path read-only. It returns nil for a missing segment or for a
// path that ends on a group; a group name alone is never dispatchable.
func (n *node[S]) get(path []string) *entry[S] {
	if len(path) == 0 || n.leaf() {
		return nil
	}
	child, ok := n.children[path[0]]
	if !ok {
		return nil
	}
	if len(path) == 1 {
		return child.entry
	}
	return child.get(path[1:])
}
