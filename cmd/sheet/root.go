package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/config"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/observability"
	orchestrator "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/redis"
	characterstate "github.com/KirkDiggler/rpg-sheet/internal/repositories/character_state"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// rootOptions carries the persistent flags, the loaded config and the
// constructors commands use to reach external systems
type rootOptions struct {
	configPath string
	logLevel   string
	cfg        config.Config

	newSource  func(cfg *external.Config) (external.Source, error)
	newService func(ctx context.Context) (character.Service, func() error, error)
}

func newRootOptions() *rootOptions {
	opts := &rootOptions{
		newSource: external.NewSource,
	}
	opts.newService = opts.buildService
	return opts
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "D&D 5e character sheet engine",
		Long: `sheet recalculates derived character statistics from a declarative
character state, manages stored characters and imports SRD reference data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.load(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logging.level (debug, info, warn, error)")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid flags")
	})

	cmd.AddCommand(newRecalcCmd(opts))
	cmd.AddCommand(newCatalogCmd(opts))
	cmd.AddCommand(newCharacterCmd(opts))

	return cmd
}

// load reads the config and installs the process logger
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}

	logger, err := observability.NewLogger(cfg.Logging, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	o.cfg = cfg
	return nil
}

// loadCatalog returns the configured catalog, or the embedded defaults when
// no directory is set
func (o *rootOptions) loadCatalog() (*catalog.Catalog, error) {
	if o.cfg.Catalog.Dir == "" {
		return catalog.Default()
	}
	return catalog.LoadDir(o.cfg.Catalog.Dir)
}

// buildService wires the character orchestrator against Redis
func (o *rootOptions) buildService(ctx context.Context) (character.Service, func() error, error) {
	client, err := redis.NewClient(o.cfg.Redis.Endpoint, &redis.Options{
		PoolSize:   o.cfg.Redis.PoolSize,
		MaxRetries: o.cfg.Redis.MaxRetries,
		UseTLS:     o.cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := redis.Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	svc, err := o.wireService(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return svc, client.Close, nil
}

func (o *rootOptions) wireService(client redis.Client) (character.Service, error) {
	repo, err := characterstate.NewRedis(&characterstate.RedisConfig{Client: client})
	if err != nil {
		return nil, err
	}

	cat, err := o.loadCatalog()
	if err != nil {
		return nil, err
	}

	eng, err := engine.New(&engine.Config{Catalog: cat})
	if err != nil {
		return nil, err
	}

	var bus events.EventBus
	if o.cfg.Events.Enabled {
		bus = events.NewBus()
		orchestrator.SubscribeLogger(bus, slog.Default())
	}

	svc, err := orchestrator.New(&orchestrator.Config{
		Repository:  repo,
		Engine:      eng,
		Catalog:     cat,
		IDGenerator: idgen.NewUUID("char"),
		DiceRoller:  dice.DefaultRoller,
		EventBus:    bus,
	})
	if err != nil {
		return nil, err
	}
	return svc, nil
}
