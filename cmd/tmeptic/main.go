package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"

	"github.com/nevisdale/tmeptic/internal/config"
	"github.com/nevisdale/tmeptic/internal/machine"
	"github.com/nevisdale/tmeptic/internal/monitor"
)

func main() {
	configPath := flag.String("config", "", "machine description file")
	romPath := flag.String("rom", "", "flat binary image (overrides the config)")
	headless := flag.Bool("headless", false, "run without the monitor, UART on stdout")
	trace := flag.Bool("trace", false, "debug logging")
	profileMode := flag.Bool("profile", false, "write a CPU profile")
	flag.Parse()

	if *profileMode {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			logrus.Fatalf("couldn't load the config: %s", err)
		}
	}
	if *romPath != "" {
		cfg.ROM = *romPath
	}
	if cfg.ROM == "" {
		logrus.Fatal("no rom image: pass -rom or set it in the config")
	}

	if *trace || cfg.Trace {
		logrus.SetLevel(logrus.DebugLevel)
	}

	rom, err := machine.NewROMFromFile(cfg.ROM)
	if err != nil {
		logrus.Fatalf("couldn't load the rom: %s", err)
	}

	var uartOut io.Writer = io.Discard
	if *headless {
		uartOut = os.Stdout
	}
	m := machine.New(cfg, rom, uartOut)

	if *headless {
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		m.Run(ctx)
		return
	}

	mon, err := monitor.New(m)
	if err != nil {
		logrus.Fatalf("couldn't start the monitor: %s", err)
	}
	mon.Run()
}
