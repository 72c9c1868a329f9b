package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/proppanel/internal/blocks"
	"github.com/alexisbeaulieu97/proppanel/internal/classmap"
	"github.com/alexisbeaulieu97/proppanel/internal/config"
	"github.com/alexisbeaulieu97/proppanel/internal/control"
	"github.com/alexisbeaulieu97/proppanel/internal/logger"
	"github.com/alexisbeaulieu97/proppanel/internal/panel"
	"github.com/alexisbeaulieu97/proppanel/internal/ports"
	"github.com/alexisbeaulieu97/proppanel/internal/styledefs"
)

// AppContext bundles the catalogs and services a command works with.
type AppContext struct {
	Config   *config.Config
	Logger   ports.Logger
	Controls *control.Registry
	Base     *styledefs.Definitions
	Blocks   *blocks.Registry
	Classes  *classmap.Catalog
	Panel    *panel.Service
}

// newAppContext loads configuration and data tables for one command run.
// The returned context carries a fresh correlation ID.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*AppContext, context.Context, error) {
	ctx := ports.WithCorrelationID(cmd.Context(), ports.GenerateCorrelationID())

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, newCommandError("load configuration", flags.configPath, err, "Check the configuration file against the documented format.")
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
		Component:     "proppanel",
	})
	if err != nil {
		return nil, nil, newCommandError("create logger", "level "+level, err, "Use one of trace, debug, info, warn, error or disabled.")
	}

	controls, err := control.NewDefaultRegistry()
	if err != nil {
		return nil, nil, newCommandError("load controls", "embedded control catalog", err, "Rebuild proppanel; the embedded catalog is invalid.")
	}
	for _, missing := range cfg.ApplyControlOverrides(controls) {
		log.Warn(ctx, "control override ignored", "control_type", missing)
	}

	base, err := loadBaseStyles(cfg.Data.BaseStyles)
	if err != nil {
		return nil, nil, newCommandError("load base styles", valueOrFallback(cfg.Data.BaseStyles, "embedded"), err, "Fix the reported entries in the base style table.")
	}

	registry, err := loadBlocks(cfg.Data.Blocks)
	if err != nil {
		return nil, nil, newCommandError("load blocks", valueOrFallback(cfg.Data.Blocks, "embedded"), err, "Fix the reported entries in the block table.")
	}

	classes, err := loadClasses(cfg.Data.ClassMappings, controls, base)
	if err != nil {
		return nil, nil, newCommandError("load class mappings", valueOrFallback(cfg.Data.ClassMappings, "embedded"), err, "Fix the reported entries in the class mapping table.")
	}
	cfg.ApplyClassMappings(classes)

	log.Debug(ctx, "data tables loaded",
		"control_count", controls.Count(),
		"class_count", len(classes.ClassNames()),
		"block_count", len(registry.Types()),
	)

	return &AppContext{
		Config:   cfg,
		Logger:   log,
		Controls: controls,
		Base:     base,
		Blocks:   registry,
		Classes:  classes,
		Panel:    panel.NewService(controls, classes, registry, base, log),
	}, ctx, nil
}

func loadBaseStyles(path string) (*styledefs.Definitions, error) {
	if path == "" {
		return styledefs.Default()
	}
	return styledefs.LoadFile(path)
}

func loadBlocks(path string) (*blocks.Registry, error) {
	if path == "" {
		return blocks.Default()
	}
	return blocks.LoadFile(path)
}

func loadClasses(path string, controls *control.Registry, base *styledefs.Definitions) (*classmap.Catalog, error) {
	if path == "" {
		return classmap.NewDefaultCatalog(controls, base)
	}
	mappings, err := classmap.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return classmap.NewCatalog(controls, base, mappings...), nil
}
