package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"docsync/internal/config"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "docsync",
		Short: "Keep Python docstrings and the README API reference in sync",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfg, err = config.LoadConfig(configPath)
			if err != nil {
				log.Fatalf("Failed to load config: %v", err)
			}
			configureLogger(cfg, logFile, verbose)
		},
	}
	cfg        *config.Config
	configPath string
	logFile    string
	verbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to the rotating log file (defaults to the config value)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveProjectRoot picks the project root from the positional arg, falling
// back to the configured root, and normalizes it to an absolute path.
func resolveProjectRoot(args []string) string {
	root := cfg.Project.Root
	if len(args) > 0 {
		root = args[0]
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		log.Fatalf("Failed to resolve project path: %v", err)
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		log.Fatalf("Error: %s is not a valid directory", abs)
	}
	return abs
}
