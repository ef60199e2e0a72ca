// cmd/root.go
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jciason/CMSScanner/internal/core"
	"github.com/jciason/CMSScanner/internal/core/logger"
)

var (
	verbose    bool
	version    = "0.1.0"
	configPath string
	config     *core.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cmsscanner",
	Short: "CMSScanner: probe web targets before trusting their response codes.",
	Long: `CMSScanner probes a target web endpoint: it normalizes the URL, checks
reachability and authentication requirements, decides whether HEAD requests
can be trusted, and captures a not-found baseline so that real 404s can be
told apart from custom error pages.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger before any command runs
		if verbose {
			logger.SetupLogger("debug")
		} else {
			logger.SetupLogger("info")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	printBanner()
	if err := rootCmd.Execute(); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func loadConfigOrExit() {
	if configPath != "" {
		cfg, err := core.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		config = cfg
	} else {
		config = core.DefaultConfig()
	}
}

func printBanner() {
	banner := `
   ______ __  ___ _____ _____
  / ____//  |/  // ___// ___/ _____ ____ _ ____   ____   ___   _____
 / /    / /|_/ / \__ \ \__ \ / ___// __ '// __ \ / __ \ / _ \ / ___/
/ /___ / /  / / ___/ /___/ // /__ / /_/ // / / // / / //  __// /
\____//_/  /_/ /____//____/ \___/ \__,_//_/ /_//_/ /_/ \___//_/
`
	color.Cyan(banner)
	color.Magenta("CMSScanner v%s - Know your target before you scan it.", version)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging.")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (YAML or JSON)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("{{.Version}}\r\n")

	cobra.OnInitialize(loadConfigOrExit)
}
