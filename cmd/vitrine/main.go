package main

import (
	"fmt"
	"os"
	"vitrine/cmd/vitrine/render"
	"vitrine/internal/app"
	"vitrine/internal/catalog"
	"vitrine/internal/config"
	"vitrine/internal/deeplink"
	"vitrine/internal/favorites"
	"vitrine/internal/filter"
	"vitrine/internal/logging"

	"github.com/alecthomas/kong"
	"github.com/atotto/clipboard"
)

type CLI struct {
	List       ListCmd       `cmd:"" aliases:"ls" help:"List pieces matching the filters"`
	Show       ShowCmd       `cmd:"" help:"Show a piece in detail"`
	Fav        FavCmd        `cmd:"" help:"Toggle a piece in favorites"`
	Favs       FavsCmd       `cmd:"" help:"List favorite pieces"`
	Share      ShareCmd      `cmd:"" help:"Print a share link for a piece"`
	Open       OpenCmd       `cmd:"" aliases:"o" help:"Open the piece a share link points at"`
	Images     ImagesCmd     `cmd:"" help:"Show responsive image sources for a piece"`
	Pick       PickCmd       `cmd:"" help:"Choose filters interactively"`
	Browse     BrowseCmd     `cmd:"" aliases:"b" help:"Browse the catalog interactively"`
	Categories CategoriesCmd `cmd:"" help:"List categories with match counts"`
	Colors     ColorsCmd     `cmd:"" help:"List color tags and their keywords"`

	DataDir    string `name:"data" short:"d" help:"Directory holding favorites"`
	ConfigPath string `name:"config" help:"Path to config file"`
	Storage    string `name:"storage" help:"Storage backend (file, sqlite, memory)"`
	LogLevel   string `name:"log-level" help:"Log level (debug, info, warn, error)"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	configPath := c.ConfigPath
	if configPath == "" {
		configPath = config.DefaultConfigPath()
	} else {
		expanded, err := config.ExpandPath(configPath)
		if err != nil {
			return fmt.Errorf("invalid config path: %w", err)
		}
		configPath = expanded
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Storage != "" {
		backend, err := config.ParseBackend(c.Storage)
		if err != nil {
			return err
		}
		cfg.Storage = backend
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}

	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	} else if dataDir, err = config.ExpandPath(dataDir); err != nil {
		return fmt.Errorf("invalid data path: %w", err)
	}

	storage, err := openStorage(cfg.Storage, dataDir)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)
	ctrl := app.New(app.Options{
		Catalog:  cat,
		Storage:  storage,
		Location: deeplink.NewMemoryLocation(""),
		Keywords: filter.DefaultKeywords().Merge(cfg.ColorKeywords),
		Logger:   logger,
	})

	globals := &Globals{
		App:       ctrl,
		Out:       os.Stdout,
		Render:    render.NewLipglossRendererAuto(os.Stdout),
		ShareBase: cfg.ShareBaseURL,
		Copy:      clipboard.WriteAll,
	}
	ctx.Bind(globals)
	return nil
}

func openStorage(backend config.Backend, dataDir string) (favorites.Storage, error) {
	switch backend {
	case config.BackendMemory:
		return favorites.NewMemoryStorage(), nil
	case config.BackendSQLite:
		return favorites.NewSQLiteStorage(config.StoragePath(dataDir, backend))
	default:
		return favorites.NewFileStorage(config.StoragePath(dataDir, backend))
	}
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("vitrine"),
		kong.Description("A catalog of perfume bottles as works of art"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
