package menucfg

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/CDFER/menusystem/pkg/menusystem"
)

// Builder turns a definition into a wired menu tree.
//
// Handler and formatter names in the definition resolve through the
// registries below; an entry naming a handler or formatter missing from
// its registry fails the build. When a Localizer is set, entries carrying
// a name_id resolve their display name through it.
type Builder struct {
	Handlers   map[string]menusystem.SelectFunc // Selection callbacks by name
	Formatters map[string]menusystem.FormatFunc // Numeric value formatters by name
	Localizer  *i18n.Localizer                  // Optional display name localization
	Renderer   menusystem.Renderer              // Passed to the built System, may be nil
}

// Build validates the definition and constructs a System around it.
func (b *Builder) Build(def *Definition) (*menusystem.System, error) {
	if errs := def.Validate(); len(errs) > 0 {
		return nil, NewDefinitionError("validate", joinErrors(errs))
	}

	sys := menusystem.NewSystem(b.Renderer)
	root := sys.Root()
	root.SetName(b.displayName(def.Title, def.TitleID))

	if err := b.addItems(root, def.Items, "items"); err != nil {
		return nil, err
	}
	return sys, nil
}

func (b *Builder) addItems(menu *menusystem.Menu, items []ItemDef, path string) error {
	for i, it := range items {
		if err := b.addItem(menu, it, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) addItem(menu *menusystem.Menu, it ItemDef, path string) error {
	name := b.displayName(it.Name, it.NameID)

	fn, err := b.handler(it.Handler, path)
	if err != nil {
		return err
	}

	switch it.kind() {
	case KindItem:
		menu.AddItem(menusystem.NewItem(name, it.Icon, fn))
	case KindBack:
		menu.AddItem(menusystem.NewBackItem(name, it.Icon, fn))
	case KindNumeric:
		n := menusystem.NewNumericItem(name, it.Icon, fn, it.Value, it.Min, it.Max, it.Increment)
		if it.Formatter != "" {
			format, ok := b.Formatters[it.Formatter]
			if !ok {
				return NewDefinitionError("build",
					fmt.Errorf("%s: %w: %q", path, ErrUnknownFormatter, it.Formatter))
			}
			n.SetFormatter(format)
		}
		menu.AddItem(n)
	case KindMenu:
		sub := menusystem.NewMenu(name, it.Icon, fn)
		if err := b.addItems(sub, it.Items, path+".items"); err != nil {
			return err
		}
		menu.AddMenu(sub)
	}
	return nil
}

func (b *Builder) handler(name, path string) (menusystem.SelectFunc, error) {
	if name == "" {
		return nil, nil
	}
	fn, ok := b.Handlers[name]
	if !ok {
		return nil, NewDefinitionError("build",
			fmt.Errorf("%s: %w: %q", path, ErrUnknownHandler, name))
	}
	return fn, nil
}

// displayName resolves the display text for an entry: the localized
// message when a localizer knows the id, then the literal name, then the
// id itself.
func (b *Builder) displayName(name, nameID string) string {
	if nameID == "" {
		return name
	}
	if b.Localizer != nil {
		cfg := &i18n.LocalizeConfig{MessageID: nameID}
		if name != "" {
			cfg.DefaultMessage = &i18n.Message{ID: nameID, Other: name}
		}
		if msg, err := b.Localizer.Localize(cfg); err == nil && msg != "" {
			return msg
		}
	}
	if name != "" {
		return name
	}
	return nameID
}
