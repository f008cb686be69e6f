package catalog

import (
	"embed"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// File names read from a catalog directory. A file missing from a directory
// is read from the embedded defaults instead.
const (
	ItemsFile       = "items.yaml"
	ClassesFile     = "classes.yaml"
	RacesFile       = "races.yaml"
	BackgroundsFile = "backgrounds.yaml"
	FeatsFile       = "feats.yaml"
)

//go:embed data/*.yaml
var defaultData embed.FS

// ItemsDocument is the layout of items.yaml
type ItemsDocument struct {
	Items []*dnd5e.Item `yaml:"items"`
}

type classesDocument struct {
	Classes []*dnd5e.ClassData `yaml:"classes"`
}

type racesDocument struct {
	Races []*dnd5e.RaceData `yaml:"races"`
}

type backgroundsDocument struct {
	Backgrounds []*dnd5e.BackgroundData `yaml:"backgrounds"`
}

type featsDocument struct {
	Feats []*dnd5e.FeatData `yaml:"feats"`
}

// overlayFS opens files from primary, falling back to fallback for names
// primary does not have
type overlayFS struct {
	primary  fs.FS
	fallback fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return o.fallback.Open(name)
	}
	return f, err
}

func defaultFS() (fs.FS, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded catalog")
	}
	return sub, nil
}

// Default returns the catalog built from the embedded SRD data
func Default() (*Catalog, error) {
	sub, err := defaultFS()
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir reads catalog files from a directory on disk. Each file the
// directory lacks comes from the embedded defaults, so a directory holding
// only an imported items.yaml still has classes, races, backgrounds and feats.
func LoadDir(dir string) (*Catalog, error) {
	if dir == "" {
		return nil, errors.InvalidArgument("catalog directory cannot be empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeNotFound, "catalog directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.InvalidArgumentf("%s is not a directory", dir)
	}
	defaults, err := defaultFS()
	if err != nil {
		return nil, err
	}
	return Load(overlayFS{primary: os.DirFS(dir), fallback: defaults})
}

// Load reads the catalog files from fsys. Missing files leave their table
// empty.
func Load(fsys fs.FS) (*Catalog, error) {
	var (
		items       ItemsDocument
		classes     classesDocument
		races       racesDocument
		backgrounds backgroundsDocument
		feats       featsDocument
	)

	docs := []struct {
		name string
		out  any
	}{
		{ItemsFile, &items},
		{ClassesFile, &classes},
		{RacesFile, &races},
		{BackgroundsFile, &backgrounds},
		{FeatsFile, &feats},
	}
	for _, doc := range docs {
		if err := decodeFile(fsys, doc.name, doc.out); err != nil {
			return nil, err
		}
	}

	return New(&Config{
		Items:       items.Items,
		Classes:     classes.Classes,
		Races:       races.Races,
		Backgrounds: backgrounds.Backgrounds,
		Feats:       feats.Feats,
	})
}

func decodeFile(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return errors.Wrapf(err, "failed to read %s", name)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeInvalidArgument, "failed to parse %s", name)
	}
	return nil
}

// WriteItems writes an items.yaml document to path
func WriteItems(path string, items []*dnd5e.Item) error {
	data, err := yaml.Marshal(&ItemsDocument{Items: items})
	if err != nil {
		return errors.Wrap(err, "failed to marshal items")
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
