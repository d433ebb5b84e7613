package main

import (
	"fmt"
	"os"
	"path/filepath"

	"smash/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: debug <target-file> [config-file]")
		os.Exit(1)
	}

	targetFile := os.Args[1]
	configFile := ""
	if len(os.Args) > 2 {
		configFile = os.Args[2]
	}

	cfg, err := config.Load(configFile, targetFile)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Configuration Debug ===\n")
	fmt.Printf("Target file: %s\n", targetFile)
	fmt.Printf("Source dir: %s\n", filepath.Dir(targetFile))
	if wd, err := os.Getwd(); err == nil {
		fmt.Printf("Working dir: %s\n", wd)
	}
	if cfg.Path != "" {
		fmt.Printf("Config file: %s\n", cfg.Path)
	} else {
		fmt.Printf("Config file: none (defaults)\n")
	}

	fmt.Printf("\nResolved settings:\n")
	fmt.Printf("  Format: %s\n", cfg.Format)
	fmt.Printf("  LabelPrefix: %s\n", cfg.LabelPrefix)
	fmt.Printf("  Verbose: %t\n", cfg.Verbose)
	fmt.Printf("  UseTabs: %t\n", cfg.UseTabs)
	fmt.Printf("  ClangFormat: %t\n", cfg.ClangFormat)

	for _, key := range []string{config.EnvFormat, config.EnvLabelPrefix} {
		if value, ok := os.LookupEnv(key); ok {
			fmt.Printf("  %s overrides with %q\n", key, value)
		}
	}
}
