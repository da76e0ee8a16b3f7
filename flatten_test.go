package maple_test

import (
	"testing"

	"github.com/fwojciec/maple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("joins nested keys with dots", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("background", maple.Leaf("#101010")),
			maple.E("editor", maple.Group(
				maple.E("foreground", maple.Leaf("#eeeeee")),
				maple.E("gutter", maple.Group(
					maple.E("background", maple.Leaf("#202020")),
				)),
			)),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, maple.FlatStyle{
			"background":              "#101010",
			"editor.foreground":       "#eeeeee",
			"editor.gutter.background": "#202020",
		}, flat)
	})

	t.Run("stores own value under the group path", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("border", maple.GroupWithValue("#333333",
				maple.E("focused", maple.Leaf("#0000ff")),
				maple.E("selected", maple.Leaf("#00ff00")),
			)),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, maple.FlatStyle{
			"border":          "#333333",
			"border.focused":  "#0000ff",
			"border.selected": "#00ff00",
		}, flat)
	})

	t.Run("own value of a nested group does not extend the path", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("a", maple.Group(
				maple.E("b", maple.GroupWithValue(1, maple.E("c", maple.Leaf(2)))),
			)),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, maple.FlatStyle{"a.b": 1, "a.b.c": 2}, flat)
	})

	t.Run("keeps arrays as opaque leaves", func(t *testing.T) {
		t.Parallel()

		players := []maple.Player{{Cursor: "#ff0000", Background: "#000000", Selection: "#333333"}}
		tree := maple.Group(maple.E("players", maple.Leaf(players)))

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, players, flat["players"])
	})

	t.Run("accepts scalar leaves", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("color", maple.Leaf(maple.Color("#123456"))),
			maple.E("weight", maple.Leaf(700)),
			maple.E("ratio", maple.Leaf(0.5)),
			maple.E("enabled", maple.Leaf(true)),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Len(t, flat, 4)
		assert.Equal(t, maple.Color("#123456"), flat["color"])
	})

	t.Run("skips nil leaves", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("set", maple.Leaf("#ffffff")),
			maple.E("unset", maple.Leaf(nil)),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, maple.FlatStyle{"set": "#ffffff"}, flat)
	})

	t.Run("later leaf wins on the same path", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("a", maple.Group(maple.E("b", maple.Leaf("first")))),
			maple.E("a.b", maple.Leaf("second")),
		)

		flat, err := maple.Flatten(tree)

		require.NoError(t, err)
		assert.Equal(t, maple.FlatStyle{"a.b": "second"}, flat)
	})

	t.Run("rejects malformed leaves with their path", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("editor", maple.Group(
				maple.E("background", maple.Leaf(map[string]any{"x": 1})),
			)),
		)

		_, err := maple.Flatten(tree)

		require.ErrorIs(t, err, maple.ErrMalformedStyle)
		var styleErr *maple.StyleError
		require.ErrorAs(t, err, &styleErr)
		assert.Equal(t, "editor.background", styleErr.Path)
	})

	t.Run("rejects struct and pointer leaves", func(t *testing.T) {
		t.Parallel()

		v := 1
		for _, leaf := range []any{struct{}{}, &v, func() {}} {
			_, err := maple.Flatten(maple.Group(maple.E("x", maple.Leaf(leaf))))
			assert.ErrorIs(t, err, maple.ErrMalformedStyle, "%T", leaf)
		}
	})

	t.Run("rejects an own value at the root", func(t *testing.T) {
		t.Parallel()

		_, err := maple.Flatten(maple.GroupWithValue("#000000"))

		assert.ErrorIs(t, err, maple.ErrMalformedStyle)
	})

	t.Run("rejects entries keyed by the default sentinel", func(t *testing.T) {
		t.Parallel()

		root := maple.Group(
			maple.E("border", maple.Group(maple.E(maple.DefaultKey, maple.Leaf("#ffffff")))),
		)

		_, err := maple.Flatten(root)

		var styleErr *maple.StyleError
		require.ErrorAs(t, err, &styleErr)
		assert.Equal(t, "border.DEFAULT", styleErr.Path)
	})

	t.Run("empty tree yields empty map", func(t *testing.T) {
		t.Parallel()

		flat, err := maple.Flatten(maple.Group())

		require.NoError(t, err)
		assert.Empty(t, flat)
	})

	t.Run("is idempotent on its own output", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("border", maple.GroupWithValue("#333333",
				maple.E("focused", maple.Leaf("#0000ff")),
			)),
			maple.E("scrollbar", maple.Group(
				maple.E("thumb", maple.Group(
					maple.E("background", maple.Leaf("#444444")),
				)),
			)),
			maple.E("players", maple.Leaf([]string{"a", "b"})),
		)

		once, err := maple.Flatten(tree)
		require.NoError(t, err)
		twice, err := maple.Flatten(once.Tree())
		require.NoError(t, err)

		assert.Equal(t, once, twice)
	})
}

func TestCollisions(t *testing.T) {
	t.Parallel()

	t.Run("reports paths written twice", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("a", maple.GroupWithValue("own", maple.E("b", maple.Leaf(1)))),
			maple.E("a.b", maple.Leaf(2)),
			maple.E("c", maple.Leaf(3)),
		)

		assert.Equal(t, []string{"a.b"}, maple.Collisions(tree))
	})

	t.Run("returns nil without collisions", func(t *testing.T) {
		t.Parallel()

		tree := maple.Group(
			maple.E("a", maple.GroupWithValue("own", maple.E("b", maple.Leaf(1)))),
		)

		assert.Nil(t, maple.Collisions(tree))
	})
}
