package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/catalog"
	"github.com/KirkDiggler/rpg-sheet/internal/clients/external"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Kinds accepted by catalog show
const (
	kindItem       = "item"
	kindClass      = "class"
	kindRace       = "race"
	kindBackground = "background"
	kindFeat       = "feat"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and import reference data",
	}

	cmd.AddCommand(newCatalogImportCmd(opts))
	cmd.AddCommand(newCatalogShowCmd(opts))

	return cmd
}

func newCatalogImportCmd(opts *rootOptions) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import SRD armor and weapons into <out>/items.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ext := opts.cfg.External
			source, err := opts.newSource(&external.Config{
				BaseURL:     ext.BaseURL,
				HTTPTimeout: ext.Timeout,
				CacheTTL:    ext.CacheTTL,
				Concurrency: ext.Concurrency,
			})
			if err != nil {
				return err
			}

			base, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			importer, err := external.NewImporter(&external.ImporterConfig{
				Source:      source,
				Concurrency: ext.Concurrency,
				Base:        base,
			})
			if err != nil {
				return err
			}

			items, err := importer.ImportItems(cmd.Context())
			if err != nil {
				return err
			}

			if err := os.MkdirAll(outDir, 0o750); err != nil {
				return errors.Wrapf(err, "failed to create %s", outDir)
			}
			path := filepath.Join(outDir, "items.yaml")
			if err := catalog.WriteItems(path, items); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d items to %s\n", len(items), path)
			return err
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "output directory")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func newCatalogShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item|class|race|background|feat> <id>",
		Short: "Print one catalog entry as YAML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			entry, err := lookupEntry(cat, args[0], args[1])
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(entry); err != nil {
				return errors.Wrap(err, "failed to encode entry")
			}
			return enc.Close()
		},
	}
}

func lookupEntry(cat *catalog.Catalog, kind, id string) (any, error) {
	var (
		entry any
		ok    bool
	)

	switch kind {
	case kindItem:
		entry, ok = cat.Item(id)
	case kindClass:
		entry, ok = cat.Class(id)
	case kindRace:
		entry, ok = cat.Race(id)
	case kindBackground:
		entry, ok = cat.Background(id)
	case kindFeat:
		entry, ok = cat.Feat(id)
	default:
		return nil, errors.InvalidArgumentf("unknown catalog kind %q", kind)
	}

	if !ok {
		return nil, errors.NotFoundf("%s %q not found", kind, id)
	}
	return entry, nil
}
