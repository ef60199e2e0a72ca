// cmd/modules.go
package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jciason/CMSScanner/internal/core"
)

// modulesCmd lists every registered plugin.
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Lists all registered modules.",
	Run: func(cmd *cobra.Command, args []string) {
		color.Cyan("\n🔍 Registered modules:")
		plugins := core.ListPlugins()
		for _, plugin := range plugins {
			color.Green("  %s - %s (%s)", plugin.Name(), plugin.Description(), plugin.Category())
		}
		color.Yellow("\nTotal modules: %d", len(plugins))
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
