package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CDFER/menusystem/pkg/menusystem/icons"
	"github.com/CDFER/menusystem/pkg/menusystem/menucfg"
)

// newCheckCommand returns the definition validation command.
func newCheckCommand() *cobra.Command {
	var iconsDir string
	var iconSize int

	cmd := &cobra.Command{
		Use:   "check <definition>",
		Short: "Validate a menu definition file",
		Long: "check decodes a TOML/YAML menu definition and reports every problem\n" +
			"found. With --icons-dir it also rasterizes each referenced icon, for\n" +
			"definitions whose icons name SVG files.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0], iconsDir, iconSize)
		},
	}

	cmd.Flags().StringVar(&iconsDir, "icons-dir", "", "directory of SVG icons to verify against")
	cmd.Flags().IntVar(&iconSize, "icon-size", 24, "rasterization size for the icon check")

	return cmd
}

func runCheck(path, iconsDir string, iconSize int) error {
	def, err := menucfg.Load(path)
	if err != nil {
		return err
	}

	errs := def.Validate()
	for _, e := range errs {
		fmt.Printf("  %s: %s\n", e.Path, e.Message)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d problem(s) found", len(errs))
	}
	fmt.Println("definition is valid")

	if iconsDir == "" {
		return nil
	}

	cache := icons.NewCache(iconsDir, iconSize)
	failed := 0
	for _, name := range collectIcons(def.Items, nil) {
		if _, err := cache.Load(name); err != nil {
			fmt.Printf("  icon %q: %v\n", name, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d icon(s) failed to rasterize", failed)
	}
	fmt.Println("all referenced icons rasterize")
	return nil
}

func collectIcons(items []menucfg.ItemDef, acc []string) []string {
	for _, it := range items {
		if it.Icon != "" {
			acc = append(acc, it.Icon)
		}
		acc = collectIcons(it.Items, acc)
	}
	return acc
}
