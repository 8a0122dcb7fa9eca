package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/weblarek/larek/internal/api"
	"github.com/weblarek/larek/internal/config"
	"github.com/weblarek/larek/internal/event"
	"github.com/weblarek/larek/internal/flow"
	"github.com/weblarek/larek/internal/store"
	"github.com/weblarek/larek/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	primary := api.NewClient(cfg.API.Origin, cfg.API.Timeout())
	sources := []api.CatalogSource{primary}
	if cfg.API.Mirror != "" && cfg.API.Mirror != cfg.API.Origin {
		sources = append(sources, api.NewClient(cfg.API.Mirror, cfg.API.Timeout()))
	}
	loader, err := api.NewLoader(sources...)
	if err != nil {
		log.Fatalf("bundled catalog: %v", err)
	}

	// all state lives here; stores and bus are wired explicitly, no globals
	bus := event.New()
	catalog := store.NewCatalog(bus)
	cart := store.NewCart(bus)
	buyer := store.NewBuyer(bus)

	app := tui.New(ctx, cfg, bus, loader)
	orch := flow.New(ctx, bus, catalog, cart, buyer, primary, app.Renderer())
	app.SetOrchestrator(orch)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// order submission runs off the event loop; its continuation comes back
	// through the program's message queue
	orch.SetAsync(func(task func() func()) {
		go func() {
			p.Send(tui.ResumeMsg{Fn: task()})
		}()
	})
	orch.Attach()

	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
