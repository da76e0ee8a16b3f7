package maple_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/maple"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSyntax(t *testing.T) {
	t.Parallel()

	t.Run("bare color yields color only", func(t *testing.T) {
		t.Parallel()

		rules := maple.BuildSyntax([]maple.SyntaxRule{
			{Role: "comment", Style: maple.Plain("#888888")},
		})

		assert.Equal(t, map[string]maple.HighlightRule{
			"comment": {Color: "#888888"},
		}, rules)
	})

	t.Run("structured style maps every field", func(t *testing.T) {
		t.Parallel()

		rules := maple.BuildSyntax([]maple.SyntaxRule{
			{Role: "type", Style: maple.SyntaxStyle{
				Color:           "#ffff00",
				BackgroundColor: "#000000",
				FontStyle:       maple.FontStyleOblique,
				FontWeight:      maple.FontWeightBold,
			}},
		})

		assert.Equal(t, maple.HighlightRule{
			Color:           "#ffff00",
			FontStyle:       maple.FontStyleOblique,
			FontWeight:      700,
			BackgroundColor: "#000000",
		}, rules["type"])
	})

	t.Run("omits unset fields when encoded", func(t *testing.T) {
		t.Parallel()

		rules := maple.BuildSyntax([]maple.SyntaxRule{
			{Role: "keyword", Style: maple.SyntaxStyle{Color: "#ff00ff", FontStyle: maple.FontStyleItalic}},
		})

		data, err := json.Marshal(rules["keyword"])

		require.NoError(t, err)
		assert.JSONEq(t, `{"color":"#ff00ff","font_style":"italic"}`, string(data))
	})

	t.Run("keeps dotted role names", func(t *testing.T) {
		t.Parallel()

		rules := maple.BuildSyntax([]maple.SyntaxRule{
			{Role: "emphasis", Style: maple.Plain("#aaaaaa")},
			{Role: "emphasis.strong", Style: maple.SyntaxStyle{Color: "#bbbbbb", FontWeight: maple.FontWeightBold}},
		})

		assert.Len(t, rules, 2)
		assert.Equal(t, maple.FontWeight(700), rules["emphasis.strong"].FontWeight)
	})

	t.Run("later rule for a role wins", func(t *testing.T) {
		t.Parallel()

		rules := maple.BuildSyntax([]maple.SyntaxRule{
			{Role: "string", Style: maple.Plain("#111111")},
			{Role: "string", Style: maple.Plain("#222222")},
		})

		assert.Equal(t, maple.Color("#222222"), rules["string"].Color)
	})

	t.Run("empty input yields empty map", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, maple.BuildSyntax(nil))
	})
}
