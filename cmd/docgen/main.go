package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docgen",
		Short: "Generate print-ready business documents from YAML or JSON models",
		Long: `Docgen renders invoices, delivery challans and multi-copy fee slips
from declarative document files. One layout plan drives every output surface:
paginated PDF, SVG/PNG/JPEG slips, a word-processor HTML export and a styled
terminal preview.`,
		Example: `  docgen generate -f invoice.yaml --format pdf
  docgen generate -f feeslip.yaml --format png,svg -o out/
  docgen preview -f invoice.yaml
  docgen next INV-0099
  docgen draft save -f invoice.yaml --id october`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newGenerateCommand(),
		newPreviewCommand(),
		newNextCommand(),
		newDraftCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docgen %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
