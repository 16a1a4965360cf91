// Package logbook holds the client-side state of the tracker: the
// fetched logs, which day is displayed, and the refetch-after-mutation
// cycle. It depends only on the domain ports and is fully testable
// with fakes. Safe for concurrent use: refreshes run on background
// goroutines while the event loop reads.
package logbook

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pvernier/macrolog/internal/domain"
	"github.com/pvernier/macrolog/internal/logger"
)

// Book is the application's single source of truth between renders.
// The front end keeps no cache beyond this: every mutation triggers a
// full refetch and the previous copies are overwritten wholesale. When
// refreshes overlap (two rapid deletes), the last one to resolve wins.
type Book struct {
	svc domain.LogService
	log *logger.Logger

	mu        sync.RWMutex
	today     *domain.DailyLog
	all       []domain.DailyLog
	displayed string // date currently shown; "" means follow today
}

// New creates a logbook backed by the given service.
func New(svc domain.LogService, log *logger.Logger) *Book {
	return &Book{svc: svc, log: log}
}

// Refresh refetches today's log and the full history in parallel,
// replacing the held copies only when both succeed. A selected
// historical day survives the refresh as long as its date still
// exists; otherwise the view falls back to today.
func (b *Book) Refresh(ctx context.Context) error {
	type allResult struct {
		logs []domain.DailyLog
		err  error
	}
	allCh := make(chan allResult, 1)
	go func() {
		logs, err := b.svc.All(ctx)
		allCh <- allResult{logs: logs, err: err}
	}()

	today, todayErr := b.svc.Today(ctx)
	res := <-allCh

	if todayErr != nil {
		return fmt.Errorf("fetching today: %w", todayErr)
	}
	if res.err != nil {
		return fmt.Errorf("fetching all logs: %w", res.err)
	}
	all := res.logs
	sort.Slice(all, func(i, j int) bool { return all[i].Date < all[j].Date })

	b.mu.Lock()
	defer b.mu.Unlock()

	b.today = today
	b.all = all

	if b.displayed != "" && findDate(b.all, b.displayed) == nil {
		b.log.Debug("logbook: selected day %s gone after refresh, back to today", b.displayed)
		b.displayed = ""
	}

	b.log.Info("logbook: refreshed (%d days, today has %d items)", len(all), today.ItemCount())
	return nil
}

// Loaded reports whether an initial fetch has completed.
func (b *Book) Loaded() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.today != nil
}

// Submit posts a new entry and, on success, refetches everything so
// the rendered state is the server's, never a local patch. Validation
// failures are returned without touching held state.
func (b *Book) Submit(ctx context.Context, entry domain.NewEntry) error {
	if err := b.svc.Submit(ctx, entry); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// DeleteEntry removes an item by its server-assigned ID, then
// refetches. No optimistic removal: the row disappears only once the
// refreshed log arrives. Concurrent deletes proceed independently.
func (b *Book) DeleteEntry(ctx context.Context, dataID string) error {
	if err := b.svc.Delete(ctx, dataID); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// Displayed returns the log currently shown: the selected historical
// day if one is set, otherwise today's.
func (b *Book) Displayed() *domain.DailyLog {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.displayed == "" {
		return b.today
	}
	if log := findDate(b.all, b.displayed); log != nil {
		return log
	}
	return b.today
}

// ShowingToday reports whether the view follows the current date.
func (b *Book) ShowingToday() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.displayed == ""
}

// Select pins the view to a historical date. The view stays decoupled
// from today until ResetToday. Selecting today's own date re-couples
// instead of pinning.
func (b *Book) Select(date string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.today != nil && date == b.today.Date {
		b.displayed = ""
		return nil
	}
	if len(b.all) == 0 {
		return domain.ErrNoLogs
	}
	if findDate(b.all, date) == nil {
		return fmt.Errorf("%w: %s", domain.ErrUnknownDate, date)
	}
	b.displayed = date
	return nil
}

// ResetToday reverts the view to the current date.
func (b *Book) ResetToday() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.displayed = ""
}

// Series is the chart's data: per-nutrient value sequences aligned by
// date, ascending. Derived on demand, never stored.
type Series struct {
	Dates    []string
	Calories []float64
	Protein  []float64
	Carbs    []float64
	Fat      []float64
}

// Series builds the trend series from all logs held in memory.
func (b *Book) Series() Series {
	b.mu.RLock()
	defer b.mu.RUnlock()

	s := Series{
		Dates:    make([]string, 0, len(b.all)),
		Calories: make([]float64, 0, len(b.all)),
		Protein:  make([]float64, 0, len(b.all)),
		Carbs:    make([]float64, 0, len(b.all)),
		Fat:      make([]float64, 0, len(b.all)),
	}
	for _, l := range b.all {
		s.Dates = append(s.Dates, l.Date)
		s.Calories = append(s.Calories, l.TotalCalories)
		s.Protein = append(s.Protein, l.TotalProtein)
		s.Carbs = append(s.Carbs, l.TotalCarbs)
		s.Fat = append(s.Fat, l.TotalFat)
	}
	return s
}

func findDate(all []domain.DailyLog, date string) *domain.DailyLog {
	for i := range all {
		if all[i].Date == date {
			return &all[i]
		}
	}
	return nil
}
