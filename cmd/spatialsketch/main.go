package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"spatialsketch/internal/config"
	"spatialsketch/internal/sketch"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file. Flags override its values.")
	manifest := flag.String("manifest", sketch.DefaultManifest, "Sample manifest, a local path or an http(s) URL.")
	sources := flag.Int("n", sketch.DefaultSourceCount, "Number of sound sources.")
	audioRange := flag.Float64("range", sketch.DefaultAudioRange, "Audio-space half-extent of the source cube.")
	seed := flag.Uint64("seed", 0, "Random seed for sample selection and placement. 0 seeds from the clock.")
	verbose := flag.Bool("v", false, "Log every manifest entry and source position.")
	dump := flag.Bool("dump-config", false, "Print the resolved settings as YAML and exit. The output is a valid -config file.")
	flag.Parse()

	log.SetPrefix("spatialsketch: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	// explicitly given flags win over the file and the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "manifest":
			cfg.Manifest = *manifest
		case "n":
			cfg.Sources = *sources
		case "range":
			cfg.AudioRange = *audioRange
		case "seed":
			cfg.Seed = *seed
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *dump {
		out, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Verbose {
		log.Printf("seed %d", cfg.Seed)
	}

	sketch.RunDesktop(sketch.Options{
		Manifest:   cfg.Manifest,
		Sources:    cfg.Sources,
		AudioRange: cfg.AudioRange,
		PlaySounds: cfg.PlaySounds,
		Seed:       cfg.Seed,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Verbose:    cfg.Verbose,
	})
}
