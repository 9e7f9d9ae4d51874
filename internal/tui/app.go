package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/fluidcarousel/internal/carousel"
	"github.com/jask/fluidcarousel/internal/config"
	"github.com/jask/fluidcarousel/internal/database/repository"
	"github.com/jask/fluidcarousel/internal/service"
)

const stripZone = "carousel-strip"

// App hosts a carousel in a terminal. Mouse drags inside the strip act as
// touch gestures, terminal resizes as viewport resizes and frame ticks as
// display refreshes.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	deckInfo repository.Deck

	deck    *deck
	metrics *metrics
	strip   *strip
	ctrl    *carousel.Controller
	zones   *zone.Manager

	keys   keyMap
	help   help.Model
	body   viewport.Model
	prompt textinput.Model
	mode   mode

	width, height int
	ticking       bool
	dragging      bool
	lastY         int
	focus         focus
	saved         int
	status        string
	pending       []tea.Cmd

	// hit reports whether a press landed on the strip.
	hit func(tea.MouseMsg) bool
	now func() time.Time
}

// Services are the storage operations the UI drives.
type Services struct {
	Decks       *service.DeckService
	Maintenance *service.MaintenanceService
	Jump        service.JumpService
}

type mode string

const (
	modeBrowse mode = "browse"
	modeJump   mode = "jump"
	modeAdd    mode = "add"
)

// focus is a selection to apply once loaded slides have settled.
type focus struct {
	index int
	id    string
}

// New builds the UI for deck. It fails when the layout settings do not parse.
func New(ctx context.Context, cfg config.Config, services Services, d repository.Deck) (*App, error) {
	container, item, err := cfg.Layout.Lengths()
	if err != nil {
		return nil, err
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		deckInfo: d,
		deck:     &deck{},
		metrics:  &metrics{container: container, item: item, margin: cfg.Layout.ItemMargin},
		zones:    zone.New(),
		keys:     defaultKeyMap(),
		help:     help.New(),
		body:     viewport.New(0, 0),
		prompt:   textinput.New(),
		mode:     modeBrowse,
		focus:    focus{index: d.SelectedIndex},
		saved:    d.SelectedIndex,
		now:      time.Now,
	}
	a.strip = newStrip(func() time.Time { return a.now() })
	a.hit = func(m tea.MouseMsg) bool {
		z := a.zones.Get(stripZone)
		return z != nil && z.InBounds(m)
	}
	a.ctrl = carousel.New(a.deck, a.metrics, a.strip,
		carousel.WithMarker(a.strip),
		carousel.WithPlaceholder(isPlaceholder),
		carousel.WithTransitionDuration(cfg.Animation.Duration),
		carousel.WithCommitThreshold(cfg.Gesture.CommitThreshold),
		carousel.WithLogger(log.Default()),
	)
	a.ctrl.OnSelectedChanged(a.selectedChanged)
	a.deck.addPlaceholder(loadingID)
	return a, nil
}

// Close releases the zone tracker.
func (a *App) Close() { a.zones.Close() }

func (a *App) Init() tea.Cmd {
	a.ctrl.Attach()
	return tea.Batch(a.loadSlides(), a.scheduleFrame())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.metrics.viewport = m.Width
		a.help.Width = m.Width
		a.body.Width = max(m.Width-1, 1)
		a.body.Height = a.bodyHeight()
		a.ctrl.Resize()
	case tea.MouseMsg:
		a.handleMouse(m)
	case tea.KeyMsg:
		var quit bool
		cmd, quit = a.handleKey(m)
		if quit {
			return a, tea.Quit
		}
	case frameMsg:
		a.frame()
	case slidesMsg:
		a.deck.replace(m)
		if len(a.deck.real()) == 0 {
			a.body.SetContent("")
		}
		a.ctrl.ContentChanged()
	case slideAddedMsg:
		a.focus = focus{index: -1, id: m.Slide.ID}
		a.status = fmt.Sprintf("added %q", m.Slide.Title)
		cmd = a.loadSlides()
	case slideRemovedMsg:
		a.status = "slide removed"
		cmd = a.loadSlides()
	case deckClearedMsg:
		a.status = "deck cleared"
		cmd = a.loadSlides()
	case errMsg:
		a.status = "error: " + m.Error()
		// drop the saving slot of a failed insert
		if a.deck.index(savingID) >= 0 {
			cmd = a.loadSlides()
		}
	}
	return a, a.flush(cmd)
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading…"
	}
	header := headerStyle.Render(a.deckInfo.Name)
	if n := len(a.deck.real()); n > 0 && a.ctrl.Selected() != nil {
		header += dimStyle.Render("  " + counter(a.ctrl.SelectedIndex(), n))
	}

	parts := []string{header, a.zones.Mark(stripZone, a.stripView().render()), bodyStyle.Render(a.body.View())}
	switch a.mode {
	case modeJump, modeAdd:
		parts = append(parts, a.prompt.View(), a.help.View(promptHelp{keys: a.keys}))
	default:
		parts = append(parts, a.statusLine(), a.help.View(a.keys))
	}
	return a.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (a *App) stripView() stripView {
	st := a.ctrl.State()
	return stripView{
		cards:    a.deck.cards,
		selected: a.strip.selected,
		offset:   a.strip.Offset(),
		width:    a.metrics.containerCells(),
		item:     int(st.ItemWidth + 0.5),
		margin:   int(st.SideMargin + 0.5),
		height:   a.stripHeight(),
	}
}

func (a *App) statusLine() string {
	if strings.HasPrefix(a.status, "error: ") {
		return errorStyle.Render(a.status)
	}
	return statusStyle.Render(a.status)
}

func (a *App) handleMouse(m tea.MouseMsg) {
	x, y := float64(m.X), float64(m.Y)
	switch {
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonLeft:
		if !a.hit(m) {
			return
		}
		a.dragging = true
		a.lastY = m.Y
		a.ctrl.TouchStart(x, y)
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonWheelUp:
		a.body.SetYOffset(a.body.YOffset - 1)
	case m.Action == tea.MouseActionPress && m.Button == tea.MouseButtonWheelDown:
		a.body.SetYOffset(a.body.YOffset + 1)
	case m.Action == tea.MouseActionMotion:
		if !a.dragging {
			return
		}
		if !a.ctrl.TouchMove(x, y) {
			// vertical drags scroll the caption like native scrolling would
			a.body.SetYOffset(a.body.YOffset + a.lastY - m.Y)
		}
		a.lastY = m.Y
	case m.Action == tea.MouseActionRelease:
		if !a.dragging {
			return
		}
		a.dragging = false
		a.ctrl.TouchEnd()
	}
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Cmd, bool) {
	if a.mode != modeBrowse {
		return a.handlePromptKey(m), false
	}
	switch {
	case key.Matches(m, a.keys.Quit):
		return nil, true
	case key.Matches(m, a.keys.Previous):
		a.ctrl.Previous()
	case key.Matches(m, a.keys.Next):
		a.ctrl.Next()
	case key.Matches(m, a.keys.First):
		a.ctrl.Select(0)
	case key.Matches(m, a.keys.Last):
		a.ctrl.Select(len(a.deck.real()) - 1)
	case key.Matches(m, a.keys.Reset):
		a.ctrl.Reset()
	case key.Matches(m, a.keys.Jump):
		return a.openPrompt(modeJump, "jump to: "), false
	case key.Matches(m, a.keys.Add):
		return a.openPrompt(modeAdd, "new slide title: "), false
	case key.Matches(m, a.keys.Delete):
		if sel := a.ctrl.Selected(); sel != nil {
			return a.removeSlideCmd(sel.Key()), false
		}
	case key.Matches(m, a.keys.Clear):
		return a.clearDeckCmd(), false
	}
	return nil, false
}

func (a *App) openPrompt(md mode, label string) tea.Cmd {
	a.mode = md
	a.prompt.Prompt = label
	a.prompt.SetValue("")
	return a.prompt.Focus()
}

func (a *App) closePrompt() {
	a.mode = modeBrowse
	a.prompt.Blur()
}

func (a *App) handlePromptKey(m tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(m, a.keys.Cancel):
		a.closePrompt()
		return nil
	case key.Matches(m, a.keys.Confirm):
		value := a.prompt.Value()
		md := a.mode
		a.closePrompt()
		if md == modeJump {
			a.jumpTo(value)
			return nil
		}
		return a.addSlide(value)
	}
	var cmd tea.Cmd
	a.prompt, cmd = a.prompt.Update(m)
	return cmd
}

func (a *App) jumpTo(query string) {
	cards := a.deck.real()
	titles := make([]string, len(cards))
	for i, c := range cards {
		titles[i] = c.title
	}
	idx, ok := a.services.Jump.Match(query, titles)
	if !ok {
		a.status = fmt.Sprintf("no slide matches %q", strings.TrimSpace(query))
		return
	}
	a.ctrl.Select(idx)
}

// addSlide shows a saving slot at the end of the strip while the insert runs.
func (a *App) addSlide(title string) tea.Cmd {
	if strings.TrimSpace(title) == "" {
		a.status = "title is empty"
		return nil
	}
	at := a.ctrl.SelectedIndex() + 1
	if a.ctrl.Selected() == nil {
		at = -1
	}
	a.deck.addPlaceholder(savingID)
	a.ctrl.ContentChanged()
	return a.insertSlideCmd(at, title)
}

// frame runs one display refresh.
func (a *App) frame() {
	a.ticking = false
	if a.strip.Advance(a.now()) {
		a.ctrl.TransitionEnd()
	}
	a.ctrl.Frame()
	a.applyFocus()
}

func (a *App) applyFocus() {
	if a.ctrl.Selected() == nil || (a.focus.id == "" && a.focus.index <= 0) {
		return
	}
	f := a.focus
	a.focus = focus{}
	if f.id != "" {
		if idx := a.deck.realIndex(f.id); idx >= 0 {
			a.ctrl.Select(idx)
		}
		return
	}
	a.ctrl.Select(f.index)
}

func (a *App) selectedChanged(ev carousel.SelectedChanged) {
	c, _ := a.deck.get(ev.Item.Key())
	a.body.SetContent(c.body)
	a.body.GotoTop()
}

// persistSelection saves the selected index whenever it differs from the
// stored one. This also covers a reset that only moved the index because
// slides before the selection were added or removed.
func (a *App) persistSelection() {
	if a.ctrl.Selected() == nil || a.focus != (focus{}) {
		// nothing selected yet, or a restore is pending
		return
	}
	idx := a.ctrl.SelectedIndex()
	if idx == a.saved {
		return
	}
	a.saved = idx
	a.pending = append(a.pending, a.saveSelectionCmd(idx))
}

// flush collects queued commands and asks for a frame when the controller or
// the strip has work left.
func (a *App) flush(cmd tea.Cmd) tea.Cmd {
	a.persistSelection()
	cmds := append(a.pending, cmd, a.scheduleFrame())
	a.pending = nil
	return tea.Batch(cmds...)
}

func (a *App) scheduleFrame() tea.Cmd {
	if a.ticking || (!a.ctrl.NeedsFrame() && !a.strip.Animating()) {
		return nil
	}
	a.ticking = true
	return tea.Tick(a.cfg.Animation.FrameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (a *App) stripHeight() int {
	return max(a.cfg.Layout.Height, 3)
}

func (a *App) bodyHeight() int {
	// header, status and help lines
	return max(a.height-a.stripHeight()-3, 1)
}

// commands
func (a *App) loadSlides() tea.Cmd {
	return func() tea.Msg {
		slides, err := a.services.Decks.List(a.ctx, a.deckInfo.ID)
		if err != nil {
			return errMsg{err}
		}
		return slidesMsg(slides)
	}
}

func (a *App) insertSlideCmd(at int, title string) tea.Cmd {
	return func() tea.Msg {
		s, err := a.services.Decks.Insert(a.ctx, a.deckInfo.ID, at, title, "")
		if err != nil {
			return errMsg{err}
		}
		return slideAddedMsg{Slide: s}
	}
}

func (a *App) removeSlideCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Decks.Remove(a.ctx, id); err != nil {
			return errMsg{err}
		}
		return slideRemovedMsg{}
	}
}

func (a *App) clearDeckCmd() tea.Cmd {
	return func() tea.Msg {
		if a.services.Maintenance == nil {
			return errMsg{errors.New("maintenance not configured")}
		}
		if err := a.services.Maintenance.ClearDeck(a.ctx, a.deckInfo.ID); err != nil {
			return errMsg{err}
		}
		return deckClearedMsg{}
	}
}

func (a *App) saveSelectionCmd(index int) tea.Cmd {
	deckID := a.deckInfo.ID
	return func() tea.Msg {
		if err := a.services.Decks.SaveSelection(a.ctx, deckID, index); err != nil {
			return errMsg{err}
		}
		return nil
	}
}

// messages
type frameMsg time.Time

type slidesMsg []repository.Slide

type slideAddedMsg struct {
	Slide repository.Slide
}

type slideRemovedMsg struct{}

type deckClearedMsg struct{}

type errMsg struct{ error }

// Placeholder keys. Slide IDs are UUIDs so these never collide with a real
// card.
const (
	savingID  = "saving"
	loadingID = "loading"
)
