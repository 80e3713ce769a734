package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/CodewithAN/paper-fortune-teller/audio"
	"github.com/CodewithAN/paper-fortune-teller/config"
	"github.com/CodewithAN/paper-fortune-teller/core"
	"github.com/CodewithAN/paper-fortune-teller/engine"
	"github.com/CodewithAN/paper-fortune-teller/event"
	"github.com/CodewithAN/paper-fortune-teller/fortune"
	"github.com/CodewithAN/paper-fortune-teller/service"
)

var (
	configFlag     = flag.String("config", "", "Path to a YAML config file")
	hostOutFlag    = flag.String("host-out", "", "Host message channel: stdout, stderr, none or a file path")
	headlessFlag   = flag.Bool("headless", false, "Read a tap script from stdin instead of opening the terminal UI")
	muteFlag       = flag.Bool("mute", false, "Disable sound")
	debugFlag      = flag.Bool("debug", false, "Write logs to logs/fortune-teller.log and show the status line")
	seedFlag       = flag.Uint64("seed", 0, "Seed for fortune picks, 0 picks a random seed")
	dumpConfigFlag = flag.Bool("dump-config", false, "Print the effective configuration and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
		return 1
	}

	if *dumpConfigFlag {
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
			return 1
		}
		os.Stdout.Write(data)
		return 0
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	headless := cfg.Host.Headless || !term.IsTerminal(int(os.Stdin.Fd()))

	// The terminal UI owns stdout, so the host channel defaults off there
	fallback := outputNone
	if headless {
		fallback = outputStdout
	}
	hostCh, hostCloser, err := openHostChannel(cfg.Host.Output, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
		return 1
	}
	if hostCloser != nil {
		defer hostCloser.Close()
	}

	bus := event.Default()
	unsubscribe := bus.Subscribe(event.EventFortuneRevealed, func(ev event.GameEvent) {
		if p, ok := ev.Payload.(*event.FortuneRevealedPayload); ok {
			log.Printf("host: flap %d revealed %q", p.FlapNumber, p.Fortune)
		}
	})
	defer unsubscribe()

	opts := []engine.Option{
		engine.WithFortunes(cfg.Fortunes),
		engine.WithMessageChannel(hostCh),
		engine.WithBus(bus),
	}
	if *seedFlag != 0 {
		opts = append(opts, engine.WithRNG(fortune.NewSeededRNG(*seedFlag)))
	}

	audioSvc := audio.NewService()
	teller := newTellerService(opts...)

	svcs := []service.Service{audioSvc, teller}

	var screen tcell.Screen
	if !headless {
		screen, err = tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "fortune-teller: create screen: %v\n", err)
			return 1
		}
		svcs = append(svcs, newScreenService(screen))
	}

	hub := service.NewHub()
	if err := registerAll(hub, svcs...); err != nil {
		fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
		return 1
	}

	if err := hub.InitAll(map[string][]any{
		"audio": {cfg.Audio.Mute || headless, cfg.Audio.Volume},
	}); err != nil {
		fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
		return 1
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
		return 1
	}
	defer hub.StopAll()

	unregister := bus.Register(audioSvc)
	defer unregister()

	if headless {
		if err := runScript(os.Stdin, teller.seq, time.Sleep); err != nil {
			fmt.Fprintf(os.Stderr, "fortune-teller: %v\n", err)
			return 1
		}
		return 0
	}

	newTerminalHost(screen, teller.seq, cfg.Debug).run()
	return 0
}

// loadConfig reads the optional config file and applies explicitly set flags on top
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "host-out":
			cfg.Host.Output = *hostOutFlag
		case "headless":
			cfg.Host.Headless = *headlessFlag
		case "mute":
			cfg.Audio.Mute = *muteFlag
		case "debug":
			cfg.Debug = *debugFlag
		}
	})
	return cfg, nil
}
