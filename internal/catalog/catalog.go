// Package catalog provides the read-only reference tables the rules engine
// queries by id: items, classes, races, backgrounds and feats.
package catalog

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config holds the raw entries a Catalog is built from
type Config struct {
	Items       []*dnd5e.Item
	Classes     []*dnd5e.ClassData
	Races       []*dnd5e.RaceData
	Backgrounds []*dnd5e.BackgroundData
	Feats       []*dnd5e.FeatData
}

// Catalog is immutable once built and safe for concurrent readers
type Catalog struct {
	items       map[string]*dnd5e.Item
	itemIDs     []string
	classes     map[string]*dnd5e.ClassData
	races       map[string]*dnd5e.RaceData
	backgrounds map[string]*dnd5e.BackgroundData
	feats       map[string]*dnd5e.FeatData
}

// New indexes the configured entries. Blank or duplicate ids are rejected.
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}

	c := &Catalog{
		items:       make(map[string]*dnd5e.Item, len(cfg.Items)),
		classes:     make(map[string]*dnd5e.ClassData, len(cfg.Classes)),
		races:       make(map[string]*dnd5e.RaceData, len(cfg.Races)),
		backgrounds: make(map[string]*dnd5e.BackgroundData, len(cfg.Backgrounds)),
		feats:       make(map[string]*dnd5e.FeatData, len(cfg.Feats)),
	}

	for _, item := range cfg.Items {
		if err := register(c.items, "item", item, func(i *dnd5e.Item) string { return i.ID }); err != nil {
			return nil, err
		}
		c.itemIDs = append(c.itemIDs, item.ID)
	}
	for _, class := range cfg.Classes {
		if err := register(c.classes, "class", class, func(d *dnd5e.ClassData) string { return d.ID }); err != nil {
			return nil, err
		}
	}
	for _, race := range cfg.Races {
		if err := register(c.races, "race", race, func(d *dnd5e.RaceData) string { return d.ID }); err != nil {
			return nil, err
		}
	}
	for _, bg := range cfg.Backgrounds {
		if err := register(c.backgrounds, "background", bg, func(d *dnd5e.BackgroundData) string { return d.ID }); err != nil {
			return nil, err
		}
	}
	for _, feat := range cfg.Feats {
		if err := register(c.feats, "feat", feat, func(d *dnd5e.FeatData) string { return d.ID }); err != nil {
			return nil, err
		}
	}

	return c, nil
}

func register[T any](m map[string]*T, kind string, entry *T, idOf func(*T) string) error {
	if entry == nil {
		return errors.InvalidArgumentf("%s entry cannot be nil", kind)
	}
	id := idOf(entry)
	if id == "" {
		return errors.InvalidArgumentf("%s id cannot be empty", kind)
	}
	if _, exists := m[id]; exists {
		return errors.AlreadyExistsf("duplicate %s id %q", kind, id)
	}
	m[id] = entry
	return nil
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (*dnd5e.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns every item in load order
func (c *Catalog) Items() []*dnd5e.Item {
	out := make([]*dnd5e.Item, 0, len(c.itemIDs))
	for _, id := range c.itemIDs {
		out = append(out, c.items[id])
	}
	return out
}

// Class looks up a class by id
func (c *Catalog) Class(id string) (*dnd5e.ClassData, bool) {
	class, ok := c.classes[id]
	return class, ok
}

// Subclass looks up a subclass of the given class
func (c *Catalog) Subclass(classID, subclassID string) (*dnd5e.SubclassData, bool) {
	class, ok := c.classes[classID]
	if !ok {
		return nil, false
	}
	return class.Subclass(subclassID)
}

// Race looks up a race by id
func (c *Catalog) Race(id string) (*dnd5e.RaceData, bool) {
	race, ok := c.races[id]
	return race, ok
}

// Background looks up a background by id
func (c *Catalog) Background(id string) (*dnd5e.BackgroundData, bool) {
	bg, ok := c.backgrounds[id]
	return bg, ok
}

// Feat looks up a feat by id
func (c *Catalog) Feat(id string) (*dnd5e.FeatData, bool) {
	feat, ok := c.feats[id]
	return feat, ok
}
