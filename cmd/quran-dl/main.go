package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/quran-downloader/internal/config"
	"github.com/handiism/quran-downloader/internal/download"
	"github.com/handiism/quran-downloader/internal/quranicaudio"
)

func main() {
	// Command line flags
	var (
		manifestFlag = flag.String("manifest", "", "Path to the SurahList JSON manifest (overrides config)")
		outputFlag   = flag.String("output", "", "Output directory for downloaded MP3s (overrides config)")
		pageFlag     = flag.String("page", "", "Reciter listing page to scrape (overrides config)")
		configFlag   = flag.String("config", "", "Path to config file")
		playlistFlag = flag.Bool("playlist", false, "Create a playlist file in the output directory")
		noTagsFlag   = flag.Bool("no-tags", false, "Skip writing ID3 tags to downloaded files")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		dryRunFlag   = flag.Bool("dry-run", false, "Discover URLs and report missing files without downloading")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *manifestFlag != "" {
		settings.ManifestPath = *manifestFlag
	}
	if *outputFlag != "" {
		settings.OutputDir = *outputFlag
	}
	if *pageFlag != "" {
		settings.ReciterPage = *pageFlag
	}
	if *playlistFlag {
		settings.CreatePlaylist = true
	}
	if *noTagsFlag {
		settings.ModifyTags = false
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := download.NewManager(settings, func(event download.ProgressEvent) {
		if event.Level == download.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case download.LevelError:
			prefix = "❌ "
		case download.LevelWarning:
			prefix = "⚠️  "
		case download.LevelSuccess:
			prefix = "✅ "
		case download.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	fmt.Println("📖 Quran Downloader")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	if err := manager.Initialize(ctx); err != nil {
		var derr *quranicaudio.DiscoveryError
		if errors.As(err, &derr) {
			fmt.Fprintf(os.Stderr, "Unable to discover MP3 URLs: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	if *dryRunFlag {
		fmt.Printf("\n[Dry run] %d of %d files missing, not downloading.\n", manager.Missing(), manager.Total())
		return
	}

	if err := manager.StartDownloads(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nDownload cancelled.")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	downloaded, missing := manager.GetProgress()
	fmt.Println()
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Printf("✨ Complete! Downloaded %d/%d files to %s\n", downloaded, missing, settings.OutputDir)
}
