package main

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the docsync version",
		Long:  "Displays the docsync build version and the Go toolchain that built it.",
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok || info.Main.Version == "" {
				cmd.Println("version: unknown")
				return
			}

			cmd.Println("docsync version\t", info.Main.Version)
			cmd.Println("go version\t", info.GoVersion)
		},
	}
}

var versionCmd = newVersionCmd()
