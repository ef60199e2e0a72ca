// cmd/probe.go
package cmd

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/jciason/CMSScanner/internal/core"
	"github.com/jciason/CMSScanner/internal/core/logger"
	"github.com/jciason/CMSScanner/internal/output"
	"github.com/jciason/CMSScanner/internal/probe"
)

var (
	probeOutputPath   string
	probeOutputFormat string
	probeTimeout      time.Duration
	probeProxy        string
	probeUserAgent    string
	probeTLSInsecure  bool
)

// probeCmd represents the probe command
var probeCmd = &cobra.Command{
	Use:   "probe [url]",
	Short: "Probes the TARGET URL: reachability, auth, HEAD support, 404 baseline.",
	Long: `The probe command runs the pre-scan checks against a single target:
URL normalization, best-effort host resolution, online/auth classification,
the HEAD-vs-GET capability decision and the not-found baseline capture.`,
	Example: `  cmsscanner probe http://example.com
  cmsscanner probe https://example.com/blog/ -o report.json -f json
  cmsscanner probe http://example.com --proxy http://127.0.0.1:8080 -v`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.GetLogger()
		cfg := probeConfig()

		target, err := probe.NewTarget(args[0], cfg)
		if err != nil {
			color.Red("❌ %v", err)
			os.Exit(1)
		}
		color.Cyan("\n🔎 Probing %s...", target.URL())
		log.Infof("Starting probe for target: %s", target.URL())

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Probing target..."
		s.Start()
		report := target.Summarize()
		s.Stop()

		if !report.Online {
			color.Red("❌ Target appears offline (no HTTP response).")
		} else {
			color.Green("✅ Target is online!")
		}
		renderReportTable(report)

		formatted, err := output.FormatReport(report, probeOutputFormat)
		if err != nil {
			color.Red("❌ Formatting failed: %v", err)
			os.Exit(1)
		}
		if probeOutputPath != "" {
			if err := output.WriteOutput(probeOutputPath, formatted); err != nil {
				color.Red("❌ Failed to write output: %v", err)
				os.Exit(1)
			}
			color.Green("📄 Report written to %s", probeOutputPath)
		} else if probeOutputFormat != "console" {
			cmd.Println(formatted)
		}
	},
}

// probeConfig copies the loaded config before applying flag overrides, so
// the config stays read-only once a Target holds it.
func probeConfig() *core.Config {
	base := config
	if base == nil {
		base = core.DefaultConfig()
	}
	cfg := &core.Config{}
	*cfg = *base
	if probeTimeout > 0 {
		cfg.Timeout = core.Duration(probeTimeout)
	}
	if probeProxy != "" {
		cfg.Proxy = probeProxy
	}
	if probeUserAgent != "" {
		cfg.UserAgent = probeUserAgent
	}
	if probeTLSInsecure {
		cfg.TLSInsecure = true
	}
	return cfg
}

func renderReportTable(report *probe.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleColoredBright)
	t.AppendHeader(table.Row{"Check", "Result"})
	t.AppendRow(table.Row{"Target", report.Target})
	t.AppendRow(table.Row{"Resolved address", report.ResolvedAddress})
	t.AppendRow(table.Row{"Online", report.Online})
	if report.Online {
		t.AppendRow(table.Row{"HTTP auth (401)", report.HTTPAuth})
		t.AppendRow(table.Row{"Forbidden (403)", report.Forbidden})
		t.AppendRow(table.Row{"Proxy auth (407)", report.ProxyAuth})
		t.AppendRow(table.Row{"Standing method", report.StandingMethod})
		t.AppendRow(table.Row{"404 baseline status", report.NotFoundStatus})
		t.AppendRow(table.Row{"404 baseline body bytes", report.NotFoundBodyLen})
	}
	t.Render()
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().StringVarP(&probeOutputPath, "output", "o", "", "File path to save the probe report.")
	probeCmd.Flags().StringVarP(&probeOutputFormat, "format", "f", "console", "Output format: json, txt, csv, console.")
	probeCmd.Flags().DurationVarP(&probeTimeout, "timeout", "w", 0, "Timeout per request (e.g. 10s, 500ms)")
	probeCmd.Flags().StringVar(&probeProxy, "proxy", "", "Proxy URL for all requests")
	probeCmd.Flags().StringVar(&probeUserAgent, "user-agent", "", "User-Agent header override")
	probeCmd.Flags().BoolVar(&probeTLSInsecure, "tls-insecure", false, "Skip TLS certificate verification")
}
