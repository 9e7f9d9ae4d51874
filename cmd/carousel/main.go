package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/fluidcarousel/internal/config"
	"github.com/jask/fluidcarousel/internal/database"
	"github.com/jask/fluidcarousel/internal/database/repository"
	"github.com/jask/fluidcarousel/internal/deckfile"
	"github.com/jask/fluidcarousel/internal/sample"
	"github.com/jask/fluidcarousel/internal/service"
	"github.com/jask/fluidcarousel/internal/tui"
)

func main() {
	deckName := flag.String("deck", "", "deck to open (overrides deck.name)")
	seed := flag.Int("seed", 0, "add this many sample slides when the deck is empty")
	importPath := flag.String("import", "", "append slides from a JSON deck file")
	exportPath := flag.String("export", "", "write the deck to a JSON file and exit")
	writeConfig := flag.Bool("write-config", false, "write the effective configuration file and exit")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *deckName != "" {
		cfg.Deck.Name = *deckName
	}
	if *writeConfig {
		if err := config.Save(cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		return
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	decks := service.NewDeckService(db)
	maintenance := &service.MaintenanceService{DB: db}

	deck, err := decks.Open(ctx, cfg.Deck.Name)
	if err != nil {
		log.Fatalf("open deck: %v", err)
	}

	if *importPath != "" {
		if err := importDeck(ctx, decks, deck.ID, *importPath); err != nil {
			log.Fatalf("import: %v", err)
		}
	}
	if *exportPath != "" {
		if err := exportDeck(ctx, decks, deck, *exportPath); err != nil {
			log.Fatalf("export: %v", err)
		}
		return
	}
	if *seed > 0 {
		slides, err := decks.List(ctx, deck.ID)
		if err != nil {
			log.Fatalf("seed: %v", err)
		}
		if len(slides) == 0 {
			if err := sample.Seed(ctx, decks, deck.ID, *seed, 1); err != nil {
				log.Fatalf("seed: %v", err)
			}
		}
	}

	// the terminal belongs to the UI; logs go to a file or nowhere
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "carousel")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	app, err := tui.New(ctx, cfg, tui.Services{Decks: decks, Maintenance: maintenance}, deck)
	if err != nil {
		log.Fatalf("ui: %v", err)
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func importDeck(ctx context.Context, decks *service.DeckService, deckID, path string) error {
	f, err := deckfile.Load(path)
	if err != nil {
		return err
	}
	for _, e := range f.Slides {
		if _, err := decks.Append(ctx, deckID, e.Title, e.Body); err != nil {
			return err
		}
	}
	log.Printf("imported %d slides from %s", len(f.Slides), path)
	return nil
}

func exportDeck(ctx context.Context, decks *service.DeckService, deck repository.Deck, path string) error {
	slides, err := decks.List(ctx, deck.ID)
	if err != nil {
		return err
	}
	f := deckfile.File{Deck: deck.Name, Slides: make([]deckfile.Entry, 0, len(slides))}
	for _, s := range slides {
		f.Slides = append(f.Slides, deckfile.Entry{Title: s.Title, Body: s.Body})
	}
	return deckfile.Save(path, f)
}
