// Package menucfg loads declarative menu definitions and builds menu trees
// from them.
//
// Definitions are TOML or YAML documents describing the tree shape, with
// behavior resolved by name through a handler registry. This keeps menu
// layout in data files a deployment can swap without recompiling, while
// callbacks stay in code.
//
// # Basic Usage
//
//	// settings.toml
//	//
//	//	title = "Settings"
//	//
//	//	[[items]]
//	//	kind = "numeric"
//	//	name = "Brightness"
//	//	value = 5
//	//	min = 0
//	//	max = 10
//	//	increment = 1
//	//	handler = "apply_brightness"
//	//
//	//	[[items]]
//	//	kind = "back"
//	//	name = "Back"
//
//	def, err := menucfg.Load("settings.toml")
//	if err != nil {
//	    return err
//	}
//
//	builder := &menucfg.Builder{
//	    Handlers: map[string]menusystem.SelectFunc{
//	        "apply_brightness": applyBrightness,
//	    },
//	    Renderer: renderer,
//	}
//
//	sys, err := builder.Build(def)
//
// # Localization
//
// Entries may carry a name_id instead of (or alongside) a literal name.
// When the builder has a Localizer, name_id resolves through it, falling
// back to the literal name and finally to the id itself. NewBundle creates
// a bundle that reads TOML message files:
//
//	bundle := menucfg.NewBundle(language.English)
//	bundle.LoadMessageFile("active.es.toml")
//	builder.Localizer = menucfg.NewLocalizer(bundle, "es")
package menucfg
