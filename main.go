package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"elevsim/config"
	"elevsim/fsm"
	"elevsim/logger"
	"elevsim/network"
	"elevsim/sim"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", config.DEFAULT_CONFIG_PATH, "settings file")
	envPath := flag.String("env", config.DEFAULT_ENV_PATH, "dotenv file with ELEVSIM_* overrides")
	role := flag.String("role", "sim", "sim: run the scenario, watch: print a remote state feed")
	addr := flag.String("addr", "", "feed address, overrides the settings file")
	flag.Parse()

	log := logger.GetLoggerConfigured(zerolog.InfoLevel)

	settings, err := loadSettings(*configPath, *envPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid settings")
	}
	level, _ := config.ParseLevel(settings.LogLevel)
	logger.SetLevel(level)

	if *addr != "" {
		settings.Feed.Address = *addr
		settings.Feed.Enabled = true
	}

	switch *role {
	case "sim":
		err = runSimulation(settings, log)
	case "watch":
		err = runWatcher(settings.Feed.Address, log)
	default:
		err = errors.Errorf("unknown role %q", *role)
	}
	if err != nil {
		log.Fatal().Err(err).Str("role", *role).Msg("Stopped")
	}
}

func loadSettings(configPath, envPath string) (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return settings, err
	}
	if err := settings.ApplyEnv(envPath); err != nil {
		return settings, err
	}
	return settings, settings.Validate()
}

func runSimulation(settings config.Settings, log *zerolog.Logger) error {
	elev, err := fsm.New(settings.Elevator, fsm.WithLogger(log))
	if err != nil {
		return err
	}

	calls := make([]sim.Call, 0, len(settings.Scenario))
	for _, spec := range settings.Scenario {
		req, err := spec.Request()
		if err != nil {
			return err
		}
		calls = append(calls, sim.Call{Tick: spec.Tick, Request: req})
	}

	observers := []sim.Observer{sim.NewTableWriter(os.Stdout)}
	if settings.Feed.Enabled {
		pub, err := network.Dial(settings.Feed.Address)
		if err != nil {
			return err
		}
		defer pub.Close()
		observers = append(observers, pub)
	}

	res, err := sim.Run(elev, calls, settings.Ticks, observers...)
	if err != nil {
		return err
	}
	log.Info().
		Ints("stops", res.Stops).
		Int("rejected", res.Rejected).
		Stringer("final", res.Final).
		Msg("Simulation finished")
	return nil
}

func runWatcher(address string, log *zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info().Str("address", address).Msg("Watching state feed")
	return network.Watch(ctx, address, func(msg network.Message) {
		switch m := msg.(type) {
		case network.MsgState:
			log.Info().Int("tick", m.Tick).Stringer("state", m.State).Msg("State")
		case network.MsgStop:
			log.Info().Int("tick", m.Tick).Int("floor", m.Floor).Msg("Stop")
		}
	})
}
