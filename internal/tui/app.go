// Package tui is the terminal presentation layer. It draws whatever the
// orchestrator pushed into the shared view state and translates key presses
// into bus intents; it never touches the stores directly.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/weblarek/larek/internal/config"
	"github.com/weblarek/larek/internal/domain"
	"github.com/weblarek/larek/internal/event"
	"github.com/weblarek/larek/internal/flow"
)

// CatalogLoader is the startup catalog chain. Satisfied by *api.Loader.
type CatalogLoader interface {
	Load(ctx context.Context) (items []domain.Product, failed bool)
}

// App ties the event bus, the orchestrator's render target and the input
// widgets together. It is the tea.Model of the program.
type App struct {
	ctx    context.Context
	cfg    config.Config
	bus    *event.Bus
	orch   *flow.Orchestrator
	loader CatalogLoader
	vs     *viewState

	width  int
	height int
	ready  bool

	keys keyMap

	// catalog gallery
	catCursor int
	visible   []domain.Product // catalog after the search filter
	searching bool
	search    textinput.Model

	// cart list
	cartCursor int

	// delivery step
	address textinput.Model

	// contacts step
	email        textinput.Model
	phone        textinput.Model
	contactFocus int // 0 = email, 1 = phone

	spin spinner.Model
}

// catalogLoadedMsg delivers the startup load result.
type catalogLoadedMsg struct {
	items  []domain.Product
	failed bool
}

// ResumeMsg carries an orchestrator continuation back onto the event loop.
// The composition root's AsyncRunner sends these through tea.Program.Send.
type ResumeMsg struct {
	Fn func()
}

// New builds the App and the view state the orchestrator renders into.
// Call Renderer before constructing the orchestrator.
func New(ctx context.Context, cfg config.Config, bus *event.Bus, loader CatalogLoader) *App {
	a := &App{
		ctx:    ctx,
		cfg:    cfg,
		bus:    bus,
		loader: loader,
		vs:     &viewState{},
		keys:   newKeyMap(),
	}

	a.search = textinput.New()
	a.search.Placeholder = "поиск"
	a.search.CharLimit = 64

	a.address = textinput.New()
	a.address.Placeholder = "Адрес доставки"
	a.address.CharLimit = 128

	a.email = textinput.New()
	a.email.Placeholder = "Email"
	a.email.CharLimit = 64

	a.phone = textinput.New()
	a.phone.Placeholder = "+7XXXXXXXXXX"
	a.phone.CharLimit = 16

	a.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	return a
}

// Renderer exposes the render target for orchestrator wiring.
func (a *App) Renderer() flow.Renderer { return a.vs }

// SetOrchestrator hands the App the control core; needed only to seed the
// catalog once the startup load finishes.
func (a *App) SetOrchestrator(o *flow.Orchestrator) { a.orch = o }

func (a *App) Init() tea.Cmd {
	return func() tea.Msg {
		items, failed := a.loader.Load(a.ctx)
		return catalogLoadedMsg{items: items, failed: failed}
	}
}

// emit pushes a UI intent through the bus. Handler errors only ever mean a
// wiring bug; the orchestrator swallows everything user-facing.
func (a *App) emit(topic string, payload any) {
	_ = a.bus.Emit(topic, payload)
}

// selectedProduct returns the product under the catalog cursor.
func (a *App) selectedProduct() (domain.Product, bool) {
	if a.catCursor < 0 || a.catCursor >= len(a.visible) {
		return domain.Product{}, false
	}
	return a.visible[a.catCursor], true
}
