package maple

import (
	"reflect"
	"sort"
)

// FlatStyle maps dot-joined style keys to scalar or array values.
type FlatStyle map[string]any

// Tree returns the flat style as a one-level group, keys in sorted order.
func (f FlatStyle) Tree() Node {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := Group()
	for _, k := range keys {
		n.Entries = append(n.Entries, Entry{Key: k, Node: Leaf(f[k])})
	}
	return n
}

// Flatten converts a style tree into a flat map of dotted keys.
//
// Child keys are joined to their ancestor path with ".". A group's own value
// is stored under the group's path. Leaves must be scalars (strings, bools,
// numbers) or slices/arrays, which are stored as-is; nil leaves are skipped.
// Any other leaf type yields a *StyleError naming the path, as does an entry
// keyed DefaultKey (only FromMap interprets the sentinel). When two leaves
// resolve to the same key the later one in traversal order wins; use
// Collisions to detect this.
func Flatten(root Node) (FlatStyle, error) {
	flat := make(FlatStyle)
	err := walk(root, "", func(path string, v any) {
		flat[path] = v
	})
	if err != nil {
		return nil, err
	}
	return flat, nil
}

// Collisions returns the flat keys that more than one leaf of root resolves
// to, in sorted order. Malformed values are ignored here; Flatten reports them.
func Collisions(root Node) []string {
	counts := make(map[string]int)
	_ = walk(root, "", func(path string, _ any) {
		counts[path]++
	})

	var paths []string
	for path, n := range counts {
		if n > 1 {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

func walk(n Node, prefix string, emit func(path string, v any)) error {
	if n.Value != nil {
		if prefix == "" {
			// The root has no path to collapse to.
			return &StyleError{Path: prefix, Value: n.Value}
		}
		if !isLeafValue(n.Value) {
			return &StyleError{Path: prefix, Value: n.Value}
		}
		emit(prefix, n.Value)
	}
	if !n.group {
		return nil
	}

	for _, e := range n.Entries {
		path := e.Key
		if prefix != "" {
			path = prefix + "." + e.Key
		}
		if e.Key == DefaultKey {
			return &StyleError{Path: path, Value: e.Node.Value}
		}
		if err := walk(e.Node, path, emit); err != nil {
			return err
		}
	}
	return nil
}

func isLeafValue(v any) bool {
	switch reflect.TypeOf(v).Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
