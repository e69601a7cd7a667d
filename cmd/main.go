package main

import (
	"context"
	"fmt"
	"group-chat/console"
	"group-chat/domain"
	"group-chat/internal"
	"group-chat/runtime"
	"group-chat/transport"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"go.uber.org/multierr"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires one peer, then waits until it is closed or the process is signaled.
func run() error {
	// 1. Configuration: environment, optional .env file, launcher arguments
	_ = godotenv.Load()
	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	config, err := internal.Load(es)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.ApplyArgs(os.Args[1:]); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// 2. Logger, switchable at runtime with $log
	logSwitch := console.NewLogSwitch(logs.GetLoggerFromString(config.LogLevel).Handler(), config.Logging)
	log := slog.New(logSwitch)
	printer := console.NewPrinter(os.Stdout, os.Stderr, config.Colours)

	// 3. Identity and group
	identity, err := domain.NewIdentity(config.Username)
	if err != nil {
		return err
	}
	group, err := transport.NewGroupChannel(log, config.GroupAddress, config.GroupPort,
		transport.WithTTL(config.MulticastTTL),
		transport.WithLoopback(config.Loopback),
	)
	if err != nil {
		return err
	}

	// 4. Peer
	peer := runtime.NewPeer(log, identity, group, printer,
		runtime.WithInput(os.Stdin),
		runtime.WithUnicastAddress(config.UnicastAddress),
		runtime.WithLogSwitch(logSwitch),
	)
	if err := peer.Configure(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := peer.Start(ctx); err != nil {
		return err
	}
	printer.Notice(fmt.Sprintf("%s joined %s, type $help for the commands", identity.Username, group.Address()))

	if config.DebugAddress != "" {
		debug := internal.NewDebugServer(log, identity.String(), inspectRows(peer), inspectStats(peer))
		if _, err := debug.Start(config.DebugAddress); err != nil {
			return multierr.Append(err, peer.Leave())
		}
		defer func() { _ = debug.Close() }()
	}

	// 5. Wait for $exit, end of input, a fatal error or a signal
	select {
	case <-peer.Done():
	case <-ctx.Done():
		log.Info("Signal received, leaving the group")
		if err := peer.Leave(); err != nil {
			return err
		}
	}
	return nil
}
