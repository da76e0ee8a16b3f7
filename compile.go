package maple

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of schemes compiled concurrently by default.
const DefaultWorkers = 4

// Compiler turns color schemes into theme variants using rule tables.
type Compiler struct {
	Model       ColorModel
	UIRules     []UIRule
	SyntaxRules []SyntaxSource
	Strict      bool // Fail when two values resolve to the same flat key
	Workers     int  // Concurrent schemes; values below 1 mean DefaultWorkers
}

// NewCompiler returns a Compiler using the default Maple rule tables.
func NewCompiler(m ColorModel) *Compiler {
	return &Compiler{
		Model:       m,
		UIRules:     DefaultUIRules,
		SyntaxRules: DefaultSyntaxRules,
		Workers:     DefaultWorkers,
	}
}

// Compile builds a theme family from schemes. Schemes are compiled
// independently and concurrently; the resulting themes keep the input order.
// The first failing scheme aborts compilation and is named in the error.
func (c *Compiler) Compile(ctx context.Context, name, author string, schemes []ColorScheme) (*ThemeFamily, error) {
	workers := c.Workers
	if workers < 1 {
		workers = DefaultWorkers
	}

	themes := make([]ThemeVariant, len(schemes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range schemes {
		scheme := schemes[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			v, err := c.CompileVariant(scheme)
			if err != nil {
				return &SchemeError{Scheme: scheme.Name, Err: err}
			}
			themes[i] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &ThemeFamily{
		Name:   name,
		Author: author,
		Themes: themes,
	}, nil
}

// CompileVariant builds the theme variant for a single scheme.
func (c *Compiler) CompileVariant(s ColorScheme) (ThemeVariant, error) {
	resolved, err := c.resolveUI(s)
	if err != nil {
		return ThemeVariant{}, err
	}

	if c.Strict {
		if paths := collisions(resolved); len(paths) > 0 {
			return ThemeVariant{}, &CollisionError{Paths: paths}
		}
	}

	tree := buildTree(resolved)
	ui, err := Flatten(tree)
	if err != nil {
		return ThemeVariant{}, err
	}

	syntax, err := c.Syntax(s)
	if err != nil {
		return ThemeVariant{}, err
	}

	return ThemeVariant{
		Appearance: s.Appearance(),
		Name:       s.Name,
		Style: ThemeStyle{
			UI:     ui,
			Syntax: syntax,
			Order:  keyOrder(tree),
		},
	}, nil
}

// UITree resolves the UI rule table into a style tree for s.
func (c *Compiler) UITree(s ColorScheme) (Node, error) {
	resolved, err := c.resolveUI(s)
	if err != nil {
		return Node{}, err
	}
	return buildTree(resolved), nil
}

type resolvedRule struct {
	path []string
	node Node
}

func (c *Compiler) resolveUI(s ColorScheme) ([]resolvedRule, error) {
	resolved := make([]resolvedRule, 0, len(c.UIRules))
	for _, r := range c.UIRules {
		n, err := r.Source.Resolve(s, c.Model)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Path, err)
		}
		resolved = append(resolved, resolvedRule{path: strings.Split(r.Path, "."), node: n})
	}
	return resolved, nil
}

func buildTree(resolved []resolvedRule) Node {
	root := Group()
	for _, r := range resolved {
		root.Insert(r.path, r.node)
	}
	return root
}

// Syntax resolves the syntax rule table into highlight rules for s.
func (c *Compiler) Syntax(s ColorScheme) (map[string]HighlightRule, error) {
	rules := make([]SyntaxRule, 0, len(c.SyntaxRules))
	for _, r := range c.SyntaxRules {
		color, err := r.Source.Color(s, c.Model)
		if err != nil {
			return nil, fmt.Errorf("syntax %s: %w", r.Role, err)
		}
		rules = append(rules, SyntaxRule{
			Role: r.Role,
			Style: SyntaxStyle{
				Color:      color,
				FontStyle:  r.FontStyle,
				FontWeight: r.FontWeight,
			},
		})
	}
	return BuildSyntax(rules), nil
}

// collisions returns the flat keys produced by more than one leaf across all
// rules. Each rule is flattened on its own so values that Insert would
// overwrite while merging are still counted.
func collisions(resolved []resolvedRule) []string {
	counts := make(map[string]int)
	for _, r := range resolved {
		_ = walk(r.node, strings.Join(r.path, "."), func(path string, _ any) {
			counts[path]++
		})
	}

	var paths []string
	for path, n := range counts {
		if n > 1 {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths
}

// keyOrder returns the flat keys of tree in the order they are first reached.
func keyOrder(tree Node) []string {
	var order []string
	seen := make(map[string]bool)
	_ = walk(tree, "", func(path string, _ any) {
		if !seen[path] {
			seen[path] = true
			order = append(order, path)
		}
	})
	return order
}
