package maple

// UIRule maps a dotted output path to the source of its value. A path that
// is also the prefix of other paths becomes the own value of that group.
type UIRule struct {
	Path   string
	Source Source
}

// SyntaxSource maps a syntax role to a token color and optional font settings.
type SyntaxSource struct {
	Role       string
	Source     ColorSource
	FontStyle  FontStyle
	FontWeight FontWeight
}

// DefaultUIRules is the Maple mapping from UI paths to palette colors.
var DefaultUIRules = []UIRule{
	{"background", UI("background")},
	{"text", UI("foreground")},
	{"text.accent", UI("secondary")},
	{"text.muted", Alpha(UI("foreground"), 0.9)},
	{"hint", Base(HueGray)},
	{"elevated_surface.background", UI("background")},

	{"editor.foreground", UI("foreground")},
	{"editor.background", UI("backgroundEditor")},
	{"editor.gutter.background", UI("background")},
	{"editor.document_highlight.bracket_background", Alpha(UI("selection"), 0.4)},
	{"editor.active_line.background", Alpha(UI("selection"), 0.25)},
	{"editor.active_line_number", Contrast(UI("background"))},
	{"editor.line_number", Alpha(Base(HueGray), 0.7)},
	{"editor.highlighted_line.background", Alpha(UI("selection"), 0.5)},

	{"status_bar.background", UI("background")},
	{"toolbar.background", Alpha(UI("backgroundEditorAlt"), 0.5)},

	{"element.hover", Alpha(UI("listItem"), 0.6)},
	{"element.active", Alpha(UI("listItem"), 0.8)},
	{"element.selected", UI("listItem")},
	{"ghost_element.hover", Alpha(UI("listItem"), 0.4)},
	{"ghost_element.active", Alpha(UI("listItem"), 0.6)},
	{"ghost_element.selected", UI("listItem")},

	{"terminal.background", UI("backgroundEditor")},
	{"terminal.foreground", UI("foreground")},
	{"terminal.ansi", Terminal(BrightPrefixNamer)},

	{"created", Token("diff.inserted")},
	{"deleted", Token("diff.deleted")},
	{"modified", Token("diff.changed")},
	{"conflict", Base(HuePurple)},
	{"renamed", Base(HueCyan)},
	{"ignored", Base(HueGray)},

	{"border", UI("borderNormal")},
	{"border.focused", Alpha(UI("borderActive"), 0.8)},
	{"border.selected", UI("borderActive")},

	{"panel.background", UI("background")},
	{"link_text.hover", UI("backgroundEditorAlt")},
	{"scrollbar.thumb.background", AlphaBy(UI("scrollbar"), 0.5, 0.3)},
	{"scrollbar.thumb.hover_background", AlphaBy(UI("scrollbar"), 0.8, 0.6)},
	{"hidden.background", UI("backgroundEditorAlt")},

	{"success", Base(HueGreen)},
	{"success.background", Alpha(Base(HueGreen), 0.3)},
	{"info", Base(HueBlue)},
	{"info.background", Alpha(Base(HueBlue), 0.3)},
	{"error", Base(HueRed)},
	{"error.background", Alpha(Base(HueRed), 0.3)},
	{"warning", Base(HueYellow)},
	{"warning.background", Alpha(Base(HueYellow), 0.3)},
	{"unreachable", Base(HueGray)},

	{"search.match_background", UI("backgroundEditorAlt")},
	{"players", Players(UI("cursor"), UI("backgroundEditor"), UI("selection"))},
}

// DefaultSyntaxRules is the Maple mapping from syntax roles to token colors.
var DefaultSyntaxRules = []SyntaxSource{
	{Role: "attribute", Source: Token("property.normal")},
	{Role: "boolean", Source: Token("boolean"), FontStyle: FontStyleItalic},
	{Role: "comment", Source: Token("comment")},
	{Role: "constant", Source: Token("constant")},
	{Role: "constructor", Source: Token("class.normal")},
	{Role: "embedded", Source: Token("constant")},
	{Role: "emphasis", Source: Token("markdown.italic"), FontStyle: FontStyleItalic},
	{Role: "emphasis.strong", Source: Token("markdown.bold"), FontWeight: FontWeightBold},
	{Role: "enum", Source: Token("enum.normal")},
	{Role: "function", Source: Token("function")},
	{Role: "hint", Source: Token("comment")},
	{Role: "keyword", Source: Token("keyword.normal"), FontStyle: FontStyleItalic},
	{Role: "label", Source: Token("function")},
	{Role: "link_text", Source: Token("string")},
	{Role: "link_uri", Source: Token("link")},
	{Role: "namespace", Source: Token("namespace")},
	{Role: "number", Source: Token("number")},
	{Role: "operator", Source: Token("operator")},
	{Role: "primary", Source: Token("builtin")},
	{Role: "property", Source: Token("property.normal")},
	{Role: "punctuation", Source: Token("punctuation")},
	{Role: "string", Source: Token("string")},
	{Role: "selector", Source: Token("property.normal")},
	{Role: "selector.pseudo", Source: Token("css.pseudo")},
	{Role: "tag", Source: Token("htmlTag")},
	{Role: "type", Source: Token("type.normal"), FontWeight: FontWeightBold},
	{Role: "title", Source: Token("markdown.title")},
	{Role: "variable", Source: Alpha(Token("variable.local"), 0.9)},
	{Role: "variable.special", Source: Token("variable.defaultLib")},
}
