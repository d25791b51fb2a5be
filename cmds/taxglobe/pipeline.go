package main

import (
	"context"
	"fmt"
	"os"

	"github.com/safing/taxglobe/base/config"
	"github.com/safing/taxglobe/base/log"
	"github.com/safing/taxglobe/service/attributes"
	"github.com/safing/taxglobe/service/countries"
	"github.com/safing/taxglobe/service/datasets"
	"github.com/safing/taxglobe/service/geometry"
	"github.com/safing/taxglobe/service/globe"
)

// loadDatasets returns the built-in datasets merged with the datasets file.
func loadDatasets(cfg *config.Config) (*datasets.Registry, error) {
	registry := datasets.Builtin()
	if cfg.DatasetsFile == "" {
		return registry, nil
	}

	data, err := os.ReadFile(cfg.DatasetsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read datasets file: %w", err)
	}
	extra, err := datasets.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.DatasetsFile, err)
	}
	registry.Merge(extra)
	log.Debugf("taxglobe: loaded %d datasets from %s", len(extra.IDs()), cfg.DatasetsFile)
	return registry, nil
}

func sourceOptions(src config.Source) geometry.SourceOptions {
	return geometry.SourceOptions{
		Path:       src.Path,
		DissolveBy: src.DissolveBy,
		CodeFields: src.CodeFields,
		NameField:  src.NameField,
		Layer:      src.Layer,
	}
}

func geometryOptions(cfg *config.Config) geometry.Options {
	opts := geometry.Options{
		Primary:        sourceOptions(cfg.Sources.Primary),
		Fallback:       sourceOptions(cfg.Sources.Fallback),
		Islands:        sourceOptions(cfg.Sources.Islands),
		SovereignField: cfg.Sources.SovereignField,
		SplitSovereign: cfg.Sources.SplitSovereign,
		AdminField:     cfg.Sources.AdminField,
	}
	for _, o := range cfg.Overrides {
		opts.Overrides = append(opts.Overrides, geometry.Override{
			Code:  o.Code,
			Name:  o.Name,
			Admin: o.Admin,
		})
	}
	return opts
}

func attributeOptions(cfg *config.Config) attributes.Options {
	return attributes.Options{
		CodeColumn: cfg.Data.CodeColumn,
		NameColumn: cfg.Data.NameColumn,
		Strict:     cfg.Data.Strict,
	}
}

// buildScene runs the loader and joiner for the configured dataset.
func buildScene(ctx context.Context, cfg *config.Config) (*globe.Scene, *attributes.Result, error) {
	registry, err := loadDatasets(cfg)
	if err != nil {
		return nil, nil, err
	}
	ds, err := registry.Get(cfg.Dataset)
	if err != nil {
		return nil, nil, err
	}

	log.Info("taxglobe: creating country collection")
	geo, err := geometry.Load(ctx, geometryOptions(cfg))
	if err != nil {
		return nil, nil, err
	}
	stats.geometry(geo)

	log.Infof("taxglobe: merging with %s dataset", ds.ID)
	table, err := attributes.ReadTable(cfg.Data.Path, cfg.Data.Sheet)
	if err != nil {
		return nil, nil, err
	}
	result, err := attributes.Join(geo, ds, table, attributeOptions(cfg))
	if result != nil {
		stats.join(result)
	}
	if err != nil {
		return nil, nil, err
	}

	return globe.NewScene(geo, result, cfg.Skip), result, nil
}

// stillView returns the view of still images. A focus overrides lon and lat.
func stillView(cfg *config.Config) (globe.View, error) {
	view := globe.View{
		Lon:  cfg.Render.Lon,
		Lat:  cfg.Render.Lat,
		Roll: cfg.Render.Roll,
	}
	if cfg.Render.Focus == "" {
		return view, nil
	}

	center, ok := countries.Focus(cfg.Render.Focus)
	if !ok {
		return view, fmt.Errorf("unknown focus %q: not a country, region or continent", cfg.Render.Focus)
	}
	view.Lon = center.Longitude
	view.Lat = center.Latitude
	return view, nil
}

func stillStyle(cfg *config.Config) globe.Style {
	style := globe.StillStyle()
	style.Width = cfg.Render.Width
	style.Height = cfg.Render.Height
	style.Margin = cfg.Render.Margin
	style.Legend = cfg.Render.Legend
	style.Labels = cfg.Render.Labels
	return style
}

func frameStyle(cfg *config.Config) globe.Style {
	style := globe.FrameStyle()
	style.Width = cfg.Animation.Width
	style.Height = cfg.Animation.Height
	style.Margin = cfg.Render.Margin
	return style
}
