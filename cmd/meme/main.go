package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/meme/orion"
	"github.com/pkg/profile"

	// registers the wgpu backend
	_ "github.com/oliverbestmann/meme/pulse"
)

func main() {
	configPath := flag.String("config", "", "path to a toml configuration file")
	envFile := flag.String("env", ".env", "file with MEME_* environment variables, ignored if missing")
	cpuProfile := flag.String("cpuprofile", "", "write a cpu profile into this directory")
	flag.Parse()

	if err := run(*configPath, *envFile, *cpuProfile); err != nil {
		fmt.Fprintf(os.Stderr, "meme: %s\n", err)
		os.Exit(1)
	}
}

func run(configPath, envFile, cpuProfile string) error {
	config, err := orion.LoadConfig(configPath, envFile)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: true, Level: config.SlogLevel()})
	slog.SetDefault(slog.New(handler))

	if cpuProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cpuProfile), profile.NoShutdownHook).Stop()
	}

	return orion.Run(config)
}
