package palette_test

import (
	"context"
	"testing"

	"github.com/fwojciec/maple"
	"github.com/fwojciec/maple/colorful"
	"github.com/fwojciec/maple/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemes(t *testing.T) {
	t.Parallel()

	t.Run("dark first then light", func(t *testing.T) {
		t.Parallel()

		schemes := palette.Schemes()

		require.Len(t, schemes, 2)
		assert.Equal(t, palette.NameDark, schemes[0].Name)
		assert.True(t, schemes[0].IsDark)
		assert.Equal(t, palette.NameLight, schemes[1].Name)
		assert.False(t, schemes[1].IsDark)
	})

	t.Run("returns fresh maps", func(t *testing.T) {
		t.Parallel()

		a := palette.Dark()
		a.UI["background"] = "#000000"

		assert.NotEqual(t, maple.Color("#000000"), palette.Dark().UI["background"])
	})

	t.Run("schemes define the same roles", func(t *testing.T) {
		t.Parallel()

		dark, light := palette.Dark(), palette.Light()

		assert.ElementsMatch(t, keys(dark.Token), keys(light.Token))
		assert.ElementsMatch(t, keys(dark.UI), keys(light.UI))
		assert.Len(t, light.Base, len(dark.Base))
	})

	t.Run("compiles strictly", func(t *testing.T) {
		t.Parallel()

		c := maple.NewCompiler(colorful.NewModel())
		c.Strict = true

		family, err := c.Compile(context.Background(), "Maple", "Maple Authors", palette.Schemes())

		require.NoError(t, err)
		require.Len(t, family.Themes, 2)
		assert.Equal(t, maple.AppearanceDark, family.Themes[0].Appearance)
		assert.Equal(t, maple.AppearanceLight, family.Themes[1].Appearance)
	})
}

func keys[M ~map[string]maple.Color](m M) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
