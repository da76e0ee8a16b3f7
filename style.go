package maple

import (
	"fmt"
	"sort"
)

// DefaultKey is the map key that holds a group's own value in map-based
// style input (see FromMap).
const DefaultKey = "DEFAULT"

// Node is a style tree node. A leaf carries a single value. A group carries
// ordered child entries and, optionally, its own value: the value the group
// collapses to when referenced without a child path.
type Node struct {
	Value   any
	Entries []Entry
	group   bool
}

// Entry is a named child of a group node.
type Entry struct {
	Key  string
	Node Node
}

// Leaf returns a leaf node holding v.
func Leaf(v any) Node {
	return Node{Value: v}
}

// Group returns a group node without an own value.
func Group(entries ...Entry) Node {
	return Node{Entries: entries, group: true}
}

// GroupWithValue returns a group node whose own value is v.
func GroupWithValue(v any, entries ...Entry) Node {
	return Node{Value: v, Entries: entries, group: true}
}

// E is shorthand for an Entry.
func E(key string, n Node) Entry {
	return Entry{Key: key, Node: n}
}

// IsGroup reports whether n is a group node.
func (n Node) IsGroup() bool {
	return n.group
}

// Insert places child at path below n. Intermediate groups are created as
// needed. A leaf that receives children becomes a group whose own value is
// the former leaf value. Inserting a leaf where a group exists sets the
// group's own value.
func (n *Node) Insert(path []string, child Node) {
	if len(path) == 0 {
		merge(n, child)
		return
	}
	n.group = true
	for i := range n.Entries {
		if n.Entries[i].Key == path[0] {
			n.Entries[i].Node.Insert(path[1:], child)
			return
		}
	}
	var next Node
	next.Insert(path[1:], child)
	n.Entries = append(n.Entries, Entry{Key: path[0], Node: next})
}

func merge(dst *Node, src Node) {
	if !dst.group && !src.group {
		dst.Value = src.Value
		return
	}
	if !src.group {
		dst.Value = src.Value
		return
	}
	dst.group = true
	if src.Value != nil {
		dst.Value = src.Value
	}
	for _, e := range src.Entries {
		dst.Insert([]string{e.Key}, e.Node)
	}
}

// FromMap converts a nested map into a group node. Nested maps become groups
// and a DefaultKey entry becomes the own value of the map that contains it.
// Keys are visited in sorted order.
func FromMap(m map[string]any) (Node, error) {
	if v, ok := m[DefaultKey]; ok {
		return Node{}, &StyleError{Path: DefaultKey, Value: v}
	}
	return fromMap(m, "")
}

func fromMap(m map[string]any, prefix string) (Node, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := Group()
	for _, k := range keys {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		v := m[k]
		child, isMap := v.(map[string]any)
		switch {
		case k == DefaultKey && isMap:
			return Node{}, &StyleError{Path: path, Value: v}
		case k == DefaultKey:
			node.Value = v
		case isMap:
			sub, err := fromMap(child, path)
			if err != nil {
				return Node{}, err
			}
			node.Entries = append(node.Entries, Entry{Key: k, Node: sub})
		default:
			node.Entries = append(node.Entries, Entry{Key: k, Node: Leaf(v)})
		}
	}
	return node, nil
}

// String returns a compact description of the node, for debugging.
func (n Node) String() string {
	if !n.group {
		return fmt.Sprintf("%v", n.Value)
	}
	s := "{"
	if n.Value != nil {
		s += fmt.Sprintf("=%v", n.Value)
	}
	for i, e := range n.Entries {
		if i > 0 || n.Value != nil {
			s += " "
		}
		s += e.Key + ":" + e.Node.String()
	}
	return s + "}"
}
