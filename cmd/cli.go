package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/rana/chargify/internal/chargify"
	"github.com/rana/chargify/internal/config"
	"github.com/rana/chargify/internal/opts"
	"github.com/rana/chargify/internal/shell"
)

// Execute is the main entry point. It resolves the options, fills in
// credentials, wires up the client and session and picks the execution
// mode. The return value is the process exit code.
func Execute(ctx context.Context, args []string) int {
	o, err := opts.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	if o.Help {
		opts.Usage(os.Stdout)
		return 0
	}

	// User-level defaults fill anything argv and --config left unset.
	if cfg, err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring user config: %v\n", err)
	} else {
		applyDefaults(o, cfg)
	}

	log := newLogger(o.Debug)

	stdinTTY := isatty.IsTerminal(os.Stdin.Fd())
	if o.Subdomain == "" || o.APIKey == "" {
		if !stdinTTY {
			fmt.Fprintln(os.Stderr, "subdomain and api key are required")
			return 1
		}
		if err := promptMissing(o); err != nil {
			fmt.Fprintf(os.Stderr, "failed to read credentials: %v\n", err)
			return 1
		}
	}

	client := chargify.New(chargify.Config{
		Subdomain:     o.Subdomain,
		APIKey:        o.APIKey,
		SiteKey:       o.SiteKey,
		DefaultFamily: o.DefaultFamily,
		Extra:         o.Extra,
		Logger:        log,
	})
	sess := shell.NewSession(client, o, log)

	switch {
	case o.Command != "":
		sess.Execute(ctx, o.Command)
		return 0
	case o.Raw || !stdinTTY:
		if err := sess.RunPiped(ctx, os.Stdin); err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
		return 0
	default:
		sess.RunInteractive(ctx)
		return 0
	}
}

func applyDefaults(o *opts.Options, cfg *config.Config) {
	if o.Subdomain == "" {
		o.Subdomain = cfg.Subdomain
	}
	if o.APIKey == "" {
		o.APIKey = cfg.APIKey
	}
	if o.SiteKey == "" {
		o.SiteKey = cfg.SiteKey
	}
	if o.DefaultFamily == "" {
		o.DefaultFamily = cfg.Family
	}
}

// promptMissing asks for the required credentials on the terminal. These
// are the only mutations of the options record after startup.
func promptMissing(o *opts.Options) error {
	reader := bufio.NewReader(os.Stdin)
	ask := func(label string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		*dst = strings.TrimSpace(line)
		return nil
	}
	if err := ask("subdomain", &o.Subdomain); err != nil {
		return err
	}
	return ask("api key", &o.APIKey)
}

func newLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).
		Level(level).
		With().
		Timestamp().
		Logger()
}
