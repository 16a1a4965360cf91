// Package ui is the Bubble Tea front end: a single-screen dashboard
// with the daily summary, the itemized log, the historical trend
// chart, and the new-entry form.
//
// All network work runs as tea.Cmds so the event loop never blocks.
// Mutations are not coordinated: rapid repeated deletes each fire
// their own request and refetch, and the last refetch to resolve
// determines what is on screen.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pvernier/macrolog/internal/chart"
	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logbook"
	"github.com/pvernier/macrolog/internal/logger"
	"github.com/pvernier/macrolog/internal/theme"
	"github.com/pvernier/macrolog/internal/view"
)

type state int

const (
	stateLoading state = iota
	stateFailed
	stateReady
)

// Messages produced by background commands.
type (
	refreshDoneMsg struct{ err error }
	submitDoneMsg  struct{ err error }
	deleteDoneMsg  struct{ err error }
)

// Model is the Bubble Tea model for the dashboard.
type Model struct {
	book  *logbook.Book
	store domain.PreferenceStore
	log   *logger.Logger

	pal   theme.Palette
	st    styles
	keys  keyMap
	help  help.Model
	spin  spinner.Model
	form  *entryForm
	trend *chart.Chart

	state    state
	width    int
	height   int
	row      int // detail row cursor
	formOpen bool
	status   string
	loadErr  error
	firstRun bool
}

// New creates the dashboard model. prefs seeds the theme and the
// one-time keybinding hint.
func New(book *logbook.Book, store domain.PreferenceStore, log *logger.Logger, prefs domain.Preferences) Model {
	pal := theme.ByName(prefs.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(pal.Accent)

	return Model{
		book:     book,
		store:    store,
		log:      log,
		pal:      pal,
		st:       newStyles(pal),
		keys:     newKeyMap(),
		help:     help.New(),
		spin:     sp,
		form:     newEntryForm(),
		state:    stateLoading,
		width:    80,
		firstRun: !prefs.FirstRunDone,
	}
}

// Init kicks off the initial fetch of today's log and the history.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.refreshCmd())
}

// ── Commands ─────────────────────────────────────────────────────

func (m Model) refreshCmd() tea.Cmd {
	book := m.book
	return func() tea.Msg {
		return refreshDoneMsg{err: book.Refresh(context.Background())}
	}
}

func (m Model) submitCmd(entry domain.NewEntry) tea.Cmd {
	book := m.book
	return func() tea.Msg {
		return submitDoneMsg{err: book.Submit(context.Background(), entry)}
	}
}

func (m Model) deleteCmd(dataID string) tea.Cmd {
	book := m.book
	return func() tea.Msg {
		return deleteDoneMsg{err: book.DeleteEntry(context.Background(), dataID)}
	}
}

// ── Update ───────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.state != stateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.onRefreshDone(msg.err)

	case submitDoneMsg:
		return m.onSubmitDone(msg.err)

	case deleteDoneMsg:
		return m.onDeleteDone(msg.err)

	case tea.KeyMsg:
		return m.onKey(msg)
	}

	return m, nil
}

func (m Model) onRefreshDone(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Error("refresh failed: %v", err)
		if !m.book.Loaded() {
			// Binary policy on initial load: loaded or failed, nothing
			// in between.
			m.state = stateFailed
			m.loadErr = err
			return m, nil
		}
		m.status = "refresh failed — shown data may be stale"
		return m, nil
	}

	m.state = stateReady
	m.status = ""
	m.syncAfterRefresh()

	if m.firstRun {
		m.firstRun = false
		m.status = "first time? press ? for keys"
		if err := m.store.Save(domain.Preferences{Theme: m.pal.Name, FirstRunDone: true}); err != nil {
			m.log.Warn("saving preferences: %v", err)
		}
	}
	return m, nil
}

func (m Model) onSubmitDone(err error) (tea.Model, tea.Cmd) {
	if ve := domain.AsValidation(err); ve != nil {
		// Inline next to the food-name field; the other fields keep
		// whatever the user typed.
		m.form.SetError(ve.Detail)
		return m, nil
	}
	if err != nil {
		m.log.Error("submit failed: %v", err)
		m.status = "could not add entry — is the server up?"
		return m, nil
	}

	m.form.CompleteEntry()
	m.status = "entry added"
	m.syncAfterRefresh()
	return m, nil
}

func (m Model) onDeleteDone(err error) (tea.Model, tea.Cmd) {
	if err != nil {
		m.log.Error("delete failed: %v", err)
		m.status = "could not remove entry"
		return m, nil
	}
	m.status = "entry removed"
	m.syncAfterRefresh()
	return m, nil
}

// syncAfterRefresh rebuilds the derived pieces once fresh logs are in:
// the chart gets its in-place update (created on first need) and the
// row cursor is clamped to the new detail rows.
func (m *Model) syncAfterRefresh() {
	series := m.book.Series()
	if m.trend == nil {
		m.trend = chart.New(series, m.pal)
	} else {
		m.trend.Update(series)
	}

	rows := view.Detail(m.book.Displayed())
	if m.row >= len(rows) {
		m.row = len(rows) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m Model) onKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits; plain q only while it can't be form input.
	if msg.String() == "ctrl+c" || (key.Matches(msg, m.keys.Quit) && !m.formOpen) {
		return m, tea.Quit
	}

	switch m.state {
	case stateLoading:
		return m, nil

	case stateFailed:
		if key.Matches(msg, m.keys.Reload) {
			m.state = stateLoading
			m.loadErr = nil
			return m, tea.Batch(m.spin.Tick, m.refreshCmd())
		}
		return m, nil
	}

	if m.formOpen {
		return m.onFormKey(msg)
	}
	return m.onBrowseKey(msg)
}

func (m Model) onFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.formOpen = false
		m.form.Blur()
		return m, nil
	case "tab", "down":
		m.form.next()
		return m, nil
	case "shift+tab", "up":
		m.form.prev()
		return m, nil
	case "enter":
		// Every attempt clears the previous inline error first.
		m.form.ClearError()
		entry, err := m.form.Entry()
		if err != nil {
			m.form.SetError(err.Error())
			return m, nil
		}
		m.status = "adding " + entry.FoodName + "…"
		return m, m.submitCmd(entry)
	}
	return m, m.form.Update(msg)
}

func (m Model) onBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Form):
		m.formOpen = true
		m.form.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if rows := view.Detail(m.book.Displayed()); m.row < len(rows)-1 {
			m.row++
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		rows := view.Detail(m.book.Displayed())
		if m.row < 0 || m.row >= len(rows) {
			return m, nil
		}
		// No confirmation, no optimistic removal: the row goes away
		// when the server's refreshed log arrives.
		m.status = "removing " + rows[m.row].Food + "…"
		return m, m.deleteCmd(rows[m.row].DataID)

	case key.Matches(msg, m.keys.ChartLeft):
		if m.trend != nil {
			m.trend.MoveCursor(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.ChartRight):
		if m.trend != nil {
			m.trend.MoveCursor(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectDay):
		if m.trend == nil || m.trend.CursorDate() == "" {
			return m, nil
		}
		if err := m.book.Select(m.trend.CursorDate()); err != nil {
			m.log.Warn("select day: %v", err)
			return m, nil
		}
		m.row = 0
		return m, nil

	case key.Matches(msg, m.keys.ResetToday):
		m.book.ResetToday()
		m.row = 0
		return m, nil

	case key.Matches(msg, m.keys.ToggleMode):
		if m.trend != nil {
			m.trend.ToggleMode()
		}
		return m, nil

	case key.Matches(msg, m.keys.Theme):
		m.pal = m.pal.Toggle()
		m.st = newStyles(m.pal)
		m.spin.Style = lipgloss.NewStyle().Foreground(m.pal.Accent)
		if m.trend != nil {
			// Recolor only; series data and visibility are untouched.
			m.trend.SetPalette(m.pal)
		}
		if err := m.store.Save(domain.Preferences{Theme: m.pal.Name, FirstRunDone: true}); err != nil {
			m.log.Warn("saving preferences: %v", err)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		m.status = "reloading…"
		return m, m.refreshCmd()
	}

	return m, nil
}

// ── View ─────────────────────────────────────────────────────────

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return "\n  " + m.spin.View() + m.st.muted.Render(" loading your log…") + "\n"
	case stateFailed:
		return "\n" + m.st.errText.Render("  could not load the log") + "\n" +
			m.st.muted.Render("  "+m.loadErr.Error()) + "\n\n" +
			m.st.text.Render("  press R to reload, q to quit") + "\n"
	}

	log := m.book.Displayed()

	var b strings.Builder
	b.WriteString(m.titleBar(log))
	b.WriteByte('\n')

	left := m.st.panel.Render(m.summaryPanel(log))
	right := m.st.panel.Render(m.formPanel())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteByte('\n')

	b.WriteString(m.st.panel.Render(m.detailPanel(log)))
	b.WriteByte('\n')

	if m.trend != nil {
		b.WriteString(m.st.panel.Render(m.chartPanel()))
		b.WriteByte('\n')
	}

	if m.status != "" {
		b.WriteString(m.st.status.Render(" " + m.status))
		b.WriteByte('\n')
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) titleBar(log *domain.DailyLog) string {
	title := m.st.title.Render(" macrolog ")
	date := m.st.accent.Render(log.Date)
	note := ""
	if m.book.ShowingToday() {
		note = m.st.muted.Render(" (today)")
	} else {
		note = m.st.muted.Render(" (history — press t for today)")
	}
	return title + date + note
}

func (m Model) summaryPanel(log *domain.DailyLog) string {
	var b strings.Builder
	b.WriteString(m.st.header.Render("daily totals") + "\n")

	rows := view.Summary(log)
	if rows == nil {
		b.WriteString(m.st.muted.Render(view.NoEntries))
		return b.String()
	}

	valueStyles := []lipgloss.Style{m.st.kcal, m.st.protein, m.st.carbs, m.st.fat}
	for i, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s",
			m.st.muted.Render(fmt.Sprintf("%-16s", r.Label)),
			valueStyles[i].Render(fmt.Sprintf("%7s", r.Value))))
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) formPanel() string {
	var b strings.Builder
	b.WriteString(m.st.header.Render("add entry") + "\n")
	b.WriteString(m.form.View(m.st, m.formOpen))
	return b.String()
}

func (m Model) detailPanel(log *domain.DailyLog) string {
	var b strings.Builder
	b.WriteString(m.st.header.Render("entries") + "\n")

	rows := view.Detail(log)
	if rows == nil {
		b.WriteString(m.st.muted.Render(view.NoEntries))
		return b.String()
	}

	for i, r := range rows {
		line := fmt.Sprintf("%-10s %-24s %6s %6s", r.Meal, r.Food, r.Weight+"g", r.Calories)
		if i == m.row && !m.formOpen {
			b.WriteString(m.st.selected.Render(line) + m.st.errText.Render("  ✕"))
		} else {
			b.WriteString(m.st.text.Render(line))
		}
		if i < len(rows)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) chartPanel() string {
	mode := m.trend.Mode().String()
	var b strings.Builder
	b.WriteString(m.st.header.Render("trend") + m.st.muted.Render(" · "+mode+" · v to switch") + "\n")
	b.WriteString(m.trend.View(m.width - 6))
	return b.String()
}
