// Package convert compiles a validated component model into a complete React
// Native project: one TSX file per screen, a shared component library, theme,
// navigation wiring and manifests, returned as an ordered path->content map.
//
// The compiler is deterministic and purely computational: no I/O, no clock,
// no randomness. One Converter serves one conversion run and is discarded.
package convert

import (
	"errors"
	"fmt"

	"previewforge/internal/model"
)

// indentStep is the per-level indentation of emitted JSX.
const indentStep = 2

// Converter walks one component model and accumulates output plus
// diagnostics. All mutable state lives here; the input model is read-only.
type Converter struct {
	model *model.ComponentModel
	pal   palette
	obs   Observer

	usedComponents map[string]bool
	usedIcons      map[string]bool
	usesGradient   bool
	usesState      bool
	usesBackground bool

	// preorder counts visited nodes; state-bearing generators derive their
	// variable names from it so re-running the same model reproduces the
	// same identifiers.
	preorder int

	warnings []string
	errors   []string
}

// Option configures a Converter.
type Option func(*Converter)

// WithObserver routes progress reporting to o instead of discarding it.
func WithObserver(o Observer) Option {
	return func(c *Converter) {
		if o != nil {
			c.obs = o
		}
	}
}

// New validates the input contract and builds a converter. A nil model is the
// one hard failure: nothing meaningful can be derived from it.
func New(m *model.ComponentModel, opts ...Option) (*Converter, error) {
	if m == nil {
		return nil, errors.New("convert: component model is required")
	}
	c := &Converter{
		model:          m,
		pal:            resolvePalette(m),
		obs:            NopObserver,
		usedComponents: make(map[string]bool),
		usedIcons:      make(map[string]bool),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Converter) warnf(format string, args ...any) {
	c.warnings = append(c.warnings, fmt.Sprintf(format, args...))
}

func (c *Converter) errorf(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

// Convert runs the full project assembly. Each step is individually
// contained: a panic inside one step lands in the errors list and the
// remaining steps still run, so a defect in one screen never takes down the
// shared files or the other screens.
func (c *Converter) Convert() *Result {
	files := NewFileMap()

	screens := c.model.Screens
	if len(screens) == 0 {
		screens = []model.Screen{defaultHomeScreen()}
	}

	c.step(files, "package.json", c.generatePackageJSON)
	c.step(files, "src/theme/index.ts", c.generateTheme)
	c.step(files, "src/components/ui/index.tsx", c.generateComponentLibrary)
	c.step(files, "src/components/backgrounds/DynamicBackground.tsx", c.generateDynamicBackground)

	// Stems are fixed up front so screen files, navigation routes and the
	// README all agree on names, including the fallback for unnamed screens.
	stems := make([]string, len(screens))
	for i, screen := range screens {
		name := screen.Name
		if name == "" {
			name = fmt.Sprintf("Screen%d", i+1)
		}
		stems[i] = SanitizeName(name)
	}

	for i, screen := range screens {
		name := screen.Name
		stem := stems[i]
		path := fmt.Sprintf("src/screens/%sScreen.tsx", stem)
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.errorf("failed to generate screen %q: %v", name, r)
				}
			}()
			files.Set(path, c.generateScreen(stem, screen))
			c.obs.Progress("screen", path)
		}()
	}

	c.step(files, "App.tsx", c.generateApp)
	c.step(files, "src/navigation/RootNavigator.tsx", func() string { return c.generateNavigation(stems) })
	c.step(files, "tsconfig.json", c.generateTSConfig)
	c.step(files, "app.json", c.generateAppJSON)
	c.step(files, ".gitignore", c.generateGitignore)
	c.step(files, "README.md", func() string { return c.generateReadme(stems) })

	c.obs.Progress("done", fmt.Sprintf("%d files", files.Len()))

	return &Result{
		Files:          files,
		UsedComponents: sortedSet(c.usedComponents),
		UsedIcons:      sortedSet(c.usedIcons),
		Warnings:       append([]string{}, c.warnings...),
		Errors:         append([]string{}, c.errors...),
	}
}

func (c *Converter) step(files *FileMap, path string, gen func() string) {
	defer func() {
		if r := recover(); r != nil {
			c.errorf("failed to generate %s: %v", path, r)
		}
	}()
	files.Set(path, gen())
	c.obs.Progress("file", path)
}

// defaultHomeScreen keeps the exported project runnable when the model
// carries no screens at all.
func defaultHomeScreen() model.Screen {
	return model.Screen{
		Name: "Home",
		Components: []*model.Node{
			model.NewNode("illustrationheader", map[string]any{
				"title":    "Welcome",
				"subtitle": "Your generated app is ready",
			}),
			model.NewNode("spacer", map[string]any{"height": 24}),
			model.NewNode("button", map[string]any{"text": "Get Started"}),
		},
	}
}
