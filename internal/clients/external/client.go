// Package external is the location for the dnd5e-api client. It imports SRD
// armor and weapons into catalog items.
package external

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	internalDnd5e "github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Defaults applied by Config.Validate
const (
	DefaultBaseURL     = "https://www.dnd5eapi.co/api/2014/"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultCacheTTL    = 24 * time.Hour
	DefaultConcurrency = 8
)

// Source is the part of the dnd5e-api client the importer needs
type Source interface {
	ListEquipment() ([]*entities.ReferenceItem, error)
	GetEquipment(key string) (dnd5e.EquipmentInterface, error)
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Concurrency bounds the detail fetches in flight (optional, defaults to 8)
	Concurrency int
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	vb := errors.NewValidationBuilder()
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	if cfg.Concurrency < 0 {
		vb.Field("Concurrency", "must not be negative")
	}
	return vb.Build()
}

// NewSource creates a cached dnd5e-api client
func NewSource(cfg *Config) (Source, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to create D&D 5e API client")
	}

	return dnd5e.NewCachedClient(baseClient, cfg.CacheTTL), nil
}

// ItemLookup finds existing catalog items. The importer uses it to keep
// ranges the API listing does not carry.
type ItemLookup interface {
	Item(id string) (*internalDnd5e.Item, bool)
}

// ImporterConfig holds the dependencies for the importer
type ImporterConfig struct {
	Source Source

	// Concurrency bounds the detail fetches in flight; below 1 means 1
	Concurrency int

	// Base is optional
	Base ItemLookup
}

// Validate ensures all required dependencies are provided
func (c *ImporterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Source == nil {
		vb.RequiredField("Source")
	}
	return vb.Build()
}

// Importer converts SRD equipment into catalog items
type Importer struct {
	source      Source
	concurrency int
	base        ItemLookup
}

// NewImporter creates an importer
func NewImporter(cfg *ImporterConfig) (*Importer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Importer{
		source:      cfg.Source,
		concurrency: max(cfg.Concurrency, 1),
		base:        cfg.Base,
	}, nil
}

// ImportItems lists all equipment, fetches the details concurrently and
// returns the armor, shields and weapons in listing order. Other equipment
// is skipped. The first failed fetch cancels the rest.
func (i *Importer) ImportItems(ctx context.Context) ([]*internalDnd5e.Item, error) {
	refs, err := i.source.ListEquipment()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list equipment from D&D 5e API")
	}

	slog.InfoContext(ctx, "loading equipment details", "count", len(refs))

	converted := make([]*internalDnd5e.Item, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for idx, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			equipment, err := i.source.GetEquipment(ref.Key)
			if err != nil {
				return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to get equipment %s", ref.Key)
			}

			item, ok := convertEquipment(equipment)
			if !ok {
				slog.DebugContext(gctx, "skipping equipment", "equipment", ref.Key)
				return nil
			}
			converted[idx] = i.mergeBase(item)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]*internalDnd5e.Item, 0, len(converted))
	for _, item := range converted {
		if item != nil {
			items = append(items, item)
		}
	}

	slog.InfoContext(ctx, "imported equipment",
		"listed", len(refs),
		"imported", len(items))

	return items, nil
}

// mergeBase copies weapon ranges from the base catalog entry with the same id
func (i *Importer) mergeBase(item *internalDnd5e.Item) *internalDnd5e.Item {
	if i.base == nil || !item.IsWeapon() {
		return item
	}
	existing, ok := i.base.Item(item.ID)
	if !ok || !existing.IsWeapon() {
		return item
	}

	if existing.Weapon.Range != "" {
		item.Weapon.Range = existing.Weapon.Range
	}
	if item.Weapon.Thrown != "" && existing.Weapon.Thrown != "" {
		item.Weapon.Thrown = existing.Weapon.Thrown
	}
	return item
}
