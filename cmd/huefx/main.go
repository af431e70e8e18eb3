package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"

	"github.com/angristan/huefx/internal/api"
	"github.com/angristan/huefx/internal/config"
	"github.com/angristan/huefx/internal/logging"
	"github.com/angristan/huefx/internal/tui"
)

func main() {
	// Support both -c and -config for config path
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to configuration file (default $XDG_CONFIG_HOME/huefx/config.yaml)")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	demo := flag.Bool("demo", os.Getenv("HUEFX_DEMO") != "", "Use an in-memory demo bridge")
	lightID := flag.String("light", "", "Light to control, skipping the picker")
	headless := flag.Bool("headless", false, "Read commands from stdin instead of running the UI")
	list := flag.Bool("list", false, "List lights and exit")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *lightID != "" {
		cfg.Light = *lightID
	}

	interactive := !*headless && !*list
	closeLog, err := setupLogging(cfg, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	var bridge api.BridgeClient
	if *demo {
		log.Info().Msg("Demo mode enabled")
		bridge = api.NewDemoBridge()
	} else {
		if err := cfg.RequireBridge(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v (set bridge.host and bridge.username in the config)\n", err)
			os.Exit(1)
		}
		bridge = api.NewHueBridge(cfg.Bridge.Host, cfg.Bridge.Username, cfg.Bridge.Timeout.Duration())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *list:
		err = listLights(ctx, bridge)
	case *headless:
		err = runHeadless(ctx, os.Stdin, bridge, cfg)
	default:
		err = runTUI(cfg, bridge)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error().Err(err).Msg("Exiting")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogging sends logs to the config's log file while the UI owns the
// terminal, and to stderr otherwise
func setupLogging(cfg *config.Config, interactive bool) (func(), error) {
	if !interactive {
		logging.Setup(os.Stderr, cfg.Log.Level, cfg.Log.JSON, isatty.IsTerminal(os.Stderr.Fd()))
		return func() {}, nil
	}

	f, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logging.Setup(f, cfg.Log.Level, cfg.Log.JSON, false)
	return func() { _ = f.Close() }, nil
}

func runTUI(cfg *config.Config, bridge api.BridgeClient) error {
	model := tui.NewModel(cfg, bridge)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

func listLights(ctx context.Context, bridge api.BridgeClient) error {
	lights, err := bridge.ListLights(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTATE")
	for _, l := range lights {
		state := "off"
		if l.On {
			state = "on"
		}
		if !l.Reachable {
			state += " (unreachable)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", l.ID, l.Name, state)
	}
	return w.Flush()
}
