package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/CDFER/menusystem/pkg/menusystem"
	"github.com/CDFER/menusystem/pkg/menusystem/constants"
	"github.com/CDFER/menusystem/pkg/menusystem/menucfg"
	"github.com/CDFER/menusystem/pkg/menusystem/state"
	"github.com/CDFER/menusystem/pkg/menusystem/tui"
)

const version = "0.1.0"

type demoOptions struct {
	configPath    string
	lang          string
	messageFiles  []string
	logPath       string
	logLevel      string
	loop          bool
	resetOnSelect bool
	persist       bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand returns the root cobra.Command for the demo.
func newRootCommand() *cobra.Command {
	var opts demoOptions

	rootCmd := &cobra.Command{
		Use:   "menudemo",
		Short: "Drive a menusystem tree interactively in the terminal",
		Long: "menudemo runs a hierarchical menu in the terminal: the built-in settings\n" +
			"demo, or a tree described by a TOML/YAML definition file.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "menu definition file (.toml, .yaml)")
	rootCmd.Flags().StringVar(&opts.lang, "lang", "", "preferred language for localized names (e.g. es)")
	rootCmd.Flags().StringSliceVar(&opts.messageFiles, "messages", nil, "TOML message files for localized names")
	rootCmd.Flags().StringVar(&opts.logPath, "log-file", "logs/menudemo.log", "log file path")
	rootCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&opts.loop, "loop", true, "wrap the cursor and numeric values at the ends")
	rootCmd.Flags().BoolVar(&opts.resetOnSelect, "reset-on-select", false, "rewind departed menus when entering a sub-menu")
	rootCmd.Flags().BoolVar(&opts.persist, "state", false, "persist and restore menu state between runs")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the menudemo version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("menudemo %s\n", version)
		},
	}
}

func runDemo(opts demoOptions) error {
	menusystem.SetLogPath(opts.logPath)
	menusystem.SetRawLogLevel(opts.logLevel)
	if strings.EqualFold(opts.logLevel, "debug") {
		menusystem.SetInternalLogLevel(slog.LevelDebug)
	}
	defer menusystem.CloseLogger()

	sys, err := buildSystem(opts)
	if err != nil {
		return err
	}

	var store *state.Store
	if opts.persist {
		store, err = state.Open("menudemo")
		if err != nil {
			return err
		}
		if snap, err := store.Load(); err == nil {
			if err := state.Apply(snap, sys); err != nil {
				menusystem.GetLogger().Warn("could not restore menu state", "error", err)
			}
		} else if !errors.Is(err, state.ErrNoSnapshot) {
			menusystem.GetLogger().Warn("could not load menu state", "error", err)
		}
		store.StartAutoFlush(state.DefaultFlushInterval)
		defer store.Stop()
	}

	model := tui.New(sys, tui.Options{
		Loop:          opts.loop,
		ResetOnSelect: opts.resetOnSelect,
		Store:         store,
	})
	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func buildSystem(opts demoOptions) (*menusystem.System, error) {
	if opts.configPath != "" {
		return buildFromDefinition(opts)
	}
	return buildDemoTree(), nil
}

// buildFromDefinition loads a declarative tree, wiring the demo's named
// handlers and formatters and an optional localizer.
func buildFromDefinition(opts demoOptions) (*menusystem.System, error) {
	def, err := menucfg.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	builder := &menucfg.Builder{
		Handlers:   demoHandlers(),
		Formatters: demoFormatters(),
	}

	if opts.lang != "" && len(opts.messageFiles) > 0 {
		bundle := menucfg.NewBundle(language.English)
		for _, path := range opts.messageFiles {
			if _, err := bundle.LoadMessageFile(path); err != nil {
				return nil, fmt.Errorf("load message file %s: %w", path, err)
			}
		}
		builder.Localizer = menucfg.NewLocalizer(bundle, opts.lang)
	}

	return builder.Build(def)
}

func demoHandlers() map[string]menusystem.SelectFunc {
	return map[string]menusystem.SelectFunc{
		"log_selection": func(c menusystem.Component) {
			menusystem.GetLogger().Info("item selected", "name", c.Name())
		},
	}
}

func demoFormatters() map[string]menusystem.FormatFunc {
	return map[string]menusystem.FormatFunc{
		"percent": func(v float64) string { return fmt.Sprintf("%.0f%%", v) },
		"seconds": func(v float64) string { return fmt.Sprintf("%.0fs", v) },
	}
}

// buildDemoTree constructs the built-in settings demo in code.
func buildDemoTree() *menusystem.System {
	sys := menusystem.NewSystem(nil)
	root := sys.Root()
	root.SetName("Main Menu")

	toggle := menusystem.NewItem("Sound: On", "", nil)
	toggle.SetSelectFunc(func(c menusystem.Component) {
		if strings.HasSuffix(c.Name(), "On") {
			c.SetName("Sound: Off")
		} else {
			c.SetName("Sound: On")
		}
	})
	root.AddItem(toggle)

	brightness := menusystem.NewNumericItem("Brightness", constants.Brightness, nil, 5, 0, 10, 1)
	volume := menusystem.NewNumericItem("Volume", constants.Volume, nil, 40, 0, 100, 5)
	volume.SetFormatter(func(v float64) string { return fmt.Sprintf("%.0f%%", v) })

	settings := menusystem.NewMenu("Settings", constants.Settings, nil)
	settings.AddItem(brightness)
	settings.AddItem(volume)
	settings.AddItem(menusystem.NewBackItem("Back", constants.Back, nil))
	root.AddMenu(settings)

	about := menusystem.NewMenu("About", constants.Info, nil)
	about.AddItem(menusystem.NewItem("menudemo "+version, "", nil))
	about.AddItem(menusystem.NewBackItem("Back", constants.Back, nil))
	root.AddMenu(about)

	reset := menusystem.NewItem("Reset defaults", "", nil)
	reset.SetSelectFunc(func(menusystem.Component) {
		brightness.SetValue(5)
		volume.SetValue(40)
	})
	root.AddItem(reset)

	return sys
}
