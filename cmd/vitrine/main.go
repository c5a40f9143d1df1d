package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vitrine/cmd/vitrine/tour"
	"vitrine/cmd/vitrine/ui"
	"vitrine/internal/config"
	"vitrine/internal/content"
	"vitrine/internal/logging"
)

// Version is stamped by the build.
var Version = "dev"

var (
	// Global flags
	contentPath   string
	darkMode      bool
	verbose       bool
	noWatch       bool
	reducedMotion bool
)

// rootCmd renders the landing page.
var rootCmd = &cobra.Command{
	Use:   "vitrine",
	Short: "vitrine - a landing page for your terminal",
	Long: `vitrine renders an interactive marketing page in the terminal.

Page content lives in a single YAML file: nav links, a hero with
call-to-action buttons, markdown sections with scroll-triggered
entrances, an auto-rotating testimonial carousel and a contact form.

Run without arguments to see the built-in sample page, or point
--content at your own file. While --content is watched, edits show up
live.`,
	SilenceUsage: true,
	RunE:         runTour,
}

// checkCmd validates a content file without rendering it.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a content file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := content.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d sections, %d testimonials, %d nav links)\n",
			args[0], len(p.Sections), len(p.Testimonials), len(p.Nav))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the vitrine version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("vitrine", Version)
	},
}

func runTour(cmd *cobra.Command, args []string) error {
	workspace, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}

	cfg, err := config.LoadUserConfig(config.ConfigPath(workspace))
	if err != nil {
		return err
	}
	if darkMode {
		cfg.Theme = "dark"
	}
	if reducedMotion {
		cfg.ReducedMotion = true
	}

	if err := logging.Initialize(workspace, verbose || cfg.Verbose); err != nil {
		// Logging is an aid, not a requirement; the page still runs.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	defer logging.Sync()
	log := logging.Get(logging.CategoryBoot)

	doc := content.Default()
	if contentPath != "" {
		if doc, err = content.Load(contentPath); err != nil {
			return err
		}
	}
	log.Infof("page loaded: %q, %d sections", doc.Brand, len(doc.Sections))

	opts := tour.Options{
		Page:          doc,
		Styles:        ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		ReducedMotion: cfg.ReducedMotion,
		Intersection:  true,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if contentPath != "" && cfg.WatchEnabled() && !noWatch {
		watcher, err := content.NewWatcher(contentPath)
		if err != nil {
			log.Warnf("live reload unavailable: %v", err)
		} else if err := watcher.Start(ctx); err != nil {
			log.Warnf("live reload unavailable: %v", err)
		} else {
			defer watcher.Stop()
			opts.Reloads = watcher.Pages()
			opts.ReloadErrs = watcher.Errs()
		}
	}

	p := tea.NewProgram(tour.New(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run page: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&contentPath, "content", "c", "", "path to a page content YAML file")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "force the dark theme")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to .vitrine/logs")
	rootCmd.PersistentFlags().BoolVar(&noWatch, "no-watch", false, "disable live reload of the content file")
	rootCmd.PersistentFlags().BoolVar(&reducedMotion, "reduced-motion", false, "jump instead of smooth-scrolling")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
