package menucfg

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/text/language"

	"github.com/CDFER/menusystem/pkg/menusystem"
)

type nullRenderer struct {
	rendered int
}

func (r *nullRenderer) Render(m *menusystem.Menu)                   { r.rendered++ }
func (r *nullRenderer) RenderItem(i *menusystem.Item)               {}
func (r *nullRenderer) RenderBackItem(b *menusystem.BackItem)       {}
func (r *nullRenderer) RenderNumericItem(n *menusystem.NumericItem) {}
func (r *nullRenderer) RenderMenu(m *menusystem.Menu)               {}

func TestBuild_TreeShape(t *testing.T) {
	b := &Builder{}

	sys, err := b.Build(validDefinition())
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	root := sys.Root()
	if root.Name() != "Main" {
		t.Errorf("Expected root name Main, got %q", root.Name())
	}
	if root.Count() != 2 {
		t.Fatalf("Expected 2 root children, got %d", root.Count())
	}

	if _, ok := root.Component(0).(*menusystem.Item); !ok {
		t.Errorf("Expected first child to be an Item, got %T", root.Component(0))
	}

	settings, ok := root.Component(1).(*menusystem.Menu)
	if !ok {
		t.Fatalf("Expected second child to be a Menu, got %T", root.Component(1))
	}
	if settings.Parent() != root {
		t.Error("Submenu should be parented to the root")
	}
	if settings.Count() != 2 {
		t.Fatalf("Expected 2 settings children, got %d", settings.Count())
	}

	numeric, ok := settings.Component(0).(*menusystem.NumericItem)
	if !ok {
		t.Fatalf("Expected nested numeric item, got %T", settings.Component(0))
	}
	if numeric.Value() != 5 || numeric.MinValue() != 0 || numeric.MaxValue() != 10 || numeric.Increment() != 1 {
		t.Errorf("Numeric fields wired wrong: value=%v min=%v max=%v increment=%v",
			numeric.Value(), numeric.MinValue(), numeric.MaxValue(), numeric.Increment())
	}

	if _, ok := settings.Component(1).(*menusystem.BackItem); !ok {
		t.Errorf("Expected nested back item, got %T", settings.Component(1))
	}
}

func TestBuild_InvalidDefinition(t *testing.T) {
	b := &Builder{}
	def := &Definition{Items: []ItemDef{{Kind: KindItem}}} // no name

	_, err := b.Build(def)
	if err == nil {
		t.Fatal("Build() should reject an invalid definition")
	}
	if !IsDefinitionError(err) {
		t.Errorf("Expected a DefinitionError, got %T", err)
	}
}

func TestBuild_UnknownHandler(t *testing.T) {
	b := &Builder{}
	def := &Definition{Items: []ItemDef{{Kind: KindItem, Name: "Status", Handler: "missing"}}}

	_, err := b.Build(def)
	if !errors.Is(err, ErrUnknownHandler) {
		t.Errorf("Expected ErrUnknownHandler, got %v", err)
	}
}

func TestBuild_UnknownFormatter(t *testing.T) {
	b := &Builder{}
	def := &Definition{Items: []ItemDef{{
		Kind: KindNumeric, Name: "Volume",
		Value: 40, Min: 0, Max: 100, Increment: 5,
		Formatter: "missing",
	}}}

	_, err := b.Build(def)
	if !errors.Is(err, ErrUnknownFormatter) {
		t.Errorf("Expected ErrUnknownFormatter, got %v", err)
	}
}

func TestBuild_HandlerFires(t *testing.T) {
	var selected string
	b := &Builder{Handlers: map[string]menusystem.SelectFunc{
		"mark": func(c menusystem.Component) { selected = c.Name() },
	}}
	def := &Definition{Items: []ItemDef{{Kind: KindItem, Name: "Status", Handler: "mark"}}}

	sys, err := b.Build(def)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if action := sys.Select(false); action != menusystem.SelectionStay {
		t.Errorf("Expected SelectionStay, got %v", action)
	}
	if selected != "Status" {
		t.Errorf("Expected handler to receive Status, got %q", selected)
	}
}

func TestBuild_FormatterWiring(t *testing.T) {
	b := &Builder{Formatters: map[string]menusystem.FormatFunc{
		"percent": func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
	}}
	def := &Definition{Items: []ItemDef{{
		Kind: KindNumeric, Name: "Volume",
		Value: 40, Min: 0, Max: 100, Increment: 5,
		Formatter: "percent",
	}}}

	sys, err := b.Build(def)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	numeric := sys.Root().Component(0).(*menusystem.NumericItem)
	if got := numeric.FormattedValue(); got != "40%" {
		t.Errorf("Expected formatted value 40%%, got %q", got)
	}
}

func TestBuild_SubmenuDescend(t *testing.T) {
	b := &Builder{}

	sys, err := b.Build(&Definition{
		Title: "Main",
		Items: []ItemDef{{Kind: KindMenu, Name: "Settings", Items: []ItemDef{
			{Kind: KindItem, Name: "Child"},
		}}},
	})
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if action := sys.Select(false); action != menusystem.SelectionDescend {
		t.Fatalf("Expected SelectionDescend, got %v", action)
	}
	if sys.CurrentMenu().Name() != "Settings" {
		t.Errorf("Expected current menu Settings, got %q", sys.CurrentMenu().Name())
	}
}

func TestBuild_RendererPassthrough(t *testing.T) {
	r := &nullRenderer{}
	b := &Builder{Renderer: r}

	sys, err := b.Build(validDefinition())
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	sys.Display()
	if r.rendered != 1 {
		t.Errorf("Expected 1 render call, got %d", r.rendered)
	}
}

func TestBuild_LocalizedName(t *testing.T) {
	bundle := NewBundle(language.English)
	messages := []byte("[settings]\nother = \"Ajustes\"\n")
	if _, err := bundle.ParseMessageFileBytes(messages, "es.toml"); err != nil {
		t.Fatalf("Failed to parse message file: %v", err)
	}

	b := &Builder{Localizer: NewLocalizer(bundle, "es")}
	def := &Definition{Items: []ItemDef{{Kind: KindMenu, Name: "Settings", NameID: "settings"}}}

	sys, err := b.Build(def)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := sys.Root().Component(0).Name(); got != "Ajustes" {
		t.Errorf("Expected localized name Ajustes, got %q", got)
	}
}

func TestBuild_MissingMessageFallsBackToName(t *testing.T) {
	bundle := NewBundle(language.English)
	b := &Builder{Localizer: NewLocalizer(bundle, "es")}
	def := &Definition{Items: []ItemDef{{Kind: KindItem, Name: "Status", NameID: "status"}}}

	sys, err := b.Build(def)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := sys.Root().Component(0).Name(); got != "Status" {
		t.Errorf("Expected fallback name Status, got %q", got)
	}
}

func TestBuild_NameIDAloneWithoutLocalizer(t *testing.T) {
	b := &Builder{}
	def := &Definition{Items: []ItemDef{{Kind: KindItem, NameID: "status"}}}

	sys, err := b.Build(def)
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if got := sys.Root().Component(0).Name(); got != "status" {
		t.Errorf("Expected the id as last-resort name, got %q", got)
	}
}
