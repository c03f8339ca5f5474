package main

import (
	"fmt"
	"log"

	"docsync/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	noDocstrings bool
	noReadme     bool
	reportFlag   string
)

var syncCmd = &cobra.Command{
	Use:   "sync [path]",
	Short: "Insert stub docstrings and refresh the README API reference",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := resolveProjectRoot(args)

		p := pipeline.NewSyncPipeline(root)
		p.SkipStubs = noDocstrings
		p.SkipReadme = noReadme
		p.IgnoreDirs = cfg.Scanner.Exclude
		p.ReportPath = reportFlag
		if p.ReportPath == "" {
			p.ReportPath = cfg.Report.Path
		}

		fmt.Printf("🚀 Syncing documentation for %s...\n", root)
		if err := p.Run(); err != nil {
			log.Fatalf("Sync failed: %v", err)
		}
		fmt.Println("🎉 Sync complete!")
	},
}

func init() {
	syncCmd.Flags().BoolVar(&noDocstrings, "no-docstrings", false, "Do not insert missing docstrings. Only update the README.")
	syncCmd.Flags().BoolVar(&noReadme, "no-readme", false, "Do not update the README. Only insert missing docstrings.")
	syncCmd.Flags().StringVar(&reportFlag, "report", "", "Write a JSON pipeline report to the given path")
}
