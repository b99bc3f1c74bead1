package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/whauf/sportscard-tracker/internal/metrics"
	"github.com/whauf/sportscard-tracker/internal/models"
)

// CardBackend is the subset of the backend API the shell drives
type CardBackend interface {
	ListCards(ctx context.Context) ([]models.Card, error)
	ListSales(ctx context.Context, cardID int) ([]models.Sale, error)
	CreateCard(ctx context.Context, req models.CreateCardRequest) (*models.Card, error)
	CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error)
}

// Shell owns the application state behind the card table. Backend failures
// become danger notifications and leave the last-known snapshot in place.
type Shell struct {
	backend   CardBackend
	sales     *SalesHistoryCache
	notifier  *Notifier
	debouncer *Debouncer
	today     func() time.Time

	mu          sync.RWMutex
	state       AppState
	lastRefresh time.Time
	// refreshGen is handed out to each Refresh as it starts; storedGen is
	// the ticket of the snapshot currently held. An older response never
	// replaces a newer one.
	refreshGen uint64
	storedGen  uint64
}

func NewShell(backend CardBackend, sales *SalesHistoryCache, notifier *Notifier, debounce time.Duration) *Shell {
	if sales == nil {
		sales = NewSalesHistoryCache(0, 0)
	}
	if notifier == nil {
		notifier = NewNotifier(0)
	}
	return &Shell{
		backend:   backend,
		sales:     sales,
		notifier:  notifier,
		debouncer: NewDebouncer(debounce),
		today:     time.Now,
	}
}

// Notifier exposes the shell's banner
func (s *Shell) Notifier() *Notifier {
	return s.notifier
}

// State returns a copy of the current snapshot and criteria
func (s *Shell) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastRefresh is when the snapshot was last replaced; zero if never loaded
func (s *Shell) LastRefresh() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh
}

// Refresh replaces the snapshot with the backend's current card list. If a
// refresh that started later has already been stored, the result is dropped.
func (s *Shell) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.refreshGen++
	ticket := s.refreshGen
	s.mu.Unlock()

	cards, err := s.backend.ListCards(ctx)
	if err != nil {
		if s.superseded(ticket) {
			metrics.SnapshotRefreshesTotal.WithLabelValues("superseded").Inc()
			return nil
		}
		metrics.SnapshotRefreshesTotal.WithLabelValues("failed").Inc()
		log.Printf("Error loading cards: %v", err)
		s.notifier.Notify("Error loading cards", NotificationDanger)
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	s.mu.Lock()
	if ticket < s.storedGen {
		s.mu.Unlock()
		metrics.SnapshotRefreshesTotal.WithLabelValues("superseded").Inc()
		return nil
	}
	s.state.Cards = cards
	s.storedGen = ticket
	s.lastRefresh = time.Now()
	criteria := s.state.Criteria
	s.mu.Unlock()

	metrics.SnapshotRefreshesTotal.WithLabelValues("success").Inc()
	metrics.SnapshotCards.Set(float64(len(cards)))
	s.recordFilter(cards, criteria)
	return nil
}

func (s *Shell) superseded(ticket uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ticket < s.storedGen
}

// SetCriteria schedules a criteria change. Changes arriving within the
// debounce window coalesce; only the latest is applied.
func (s *Shell) SetCriteria(criteria Criteria) {
	s.debouncer.Trigger(func() {
		s.ApplyCriteria(criteria)
	})
}

// ApplyCriteria replaces the criteria immediately
func (s *Shell) ApplyCriteria(criteria Criteria) {
	criteria = criteria.Normalize()

	s.mu.Lock()
	s.state.Criteria = criteria
	cards := s.state.Cards
	s.mu.Unlock()

	s.recordFilter(cards, criteria)
}

func (s *Shell) recordFilter(cards []models.Card, criteria Criteria) {
	metrics.FilterEvaluationsTotal.Inc()
	metrics.FilteredCards.Set(float64(len(FilterCards(cards, criteria))))
}

// View renders the table for the current state
func (s *Shell) View() CardTableView {
	return s.withNotification(BuildCardTable(s.State()))
}

// ViewFor renders the table for the given criteria without changing state
func (s *Shell) ViewFor(criteria Criteria) CardTableView {
	state := s.State()
	state.Criteria = criteria
	return s.withNotification(BuildCardTable(state))
}

func (s *Shell) withNotification(view CardTableView) CardTableView {
	if n, ok := s.notifier.Current(); ok {
		view.Notification = &n
	}
	return view
}

// AddCard creates a card, then refetches the snapshot
func (s *Shell) AddCard(ctx context.Context, req models.CreateCardRequest) (*models.Card, error) {
	card, err := s.backend.CreateCard(ctx, req)
	if err != nil {
		log.Printf("Error adding card: %v", err)
		s.notifier.Notify("Error adding card", NotificationDanger)
		return nil, fmt.Errorf("add card: %w", err)
	}

	// The card exists even if the refetch fails; Refresh raises its own banner.
	if err := s.Refresh(ctx); err == nil {
		s.notifier.Notify("Card added successfully!", NotificationSuccess)
	}
	return card, nil
}

// AddSale records a sale, then refetches the snapshot so the card's last
// sale updates. A missing sale date defaults to today.
func (s *Shell) AddSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	if req.SaleDate == nil || req.SaleDate.IsZero() {
		today := models.DateOf(s.today())
		req.SaleDate = &today
	}

	sale, err := s.backend.CreateSale(ctx, req)
	if err != nil {
		log.Printf("Error adding sale: %v", err)
		s.notifier.Notify("Error adding sale", NotificationDanger)
		return nil, fmt.Errorf("add sale: %w", err)
	}
	s.sales.Invalidate(req.CardID)

	if err := s.Refresh(ctx); err == nil {
		s.notifier.Notify("Sale added successfully!", NotificationSuccess)
	}
	return sale, nil
}

// SalesHistory returns a card's sales for the history dialog
func (s *Shell) SalesHistory(ctx context.Context, cardID int) (*SalesHistoryView, error) {
	sales, ok := s.sales.Get(cardID)
	if !ok {
		version := s.sales.Version(cardID)
		var err error
		sales, err = s.backend.ListSales(ctx, cardID)
		if err != nil {
			log.Printf("Error loading sales history for card %d: %v", cardID, err)
			s.notifier.Notify("Error loading sales history", NotificationDanger)
			return nil, fmt.Errorf("sales history: %w", err)
		}
		// A sale recorded while this fetch was in flight invalidated the
		// card; the list is still shown but not cached.
		s.sales.PutIfCurrent(cardID, version, sales)
	}

	return &SalesHistoryView{
		CardID: cardID,
		Title:  s.salesHistoryTitle(cardID),
		Sales:  sales,
		Empty:  len(sales) == 0,
	}, nil
}

func (s *Shell) salesHistoryTitle(cardID int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.state.Cards {
		if s.state.Cards[i].ID == cardID {
			return "Sales History - " + s.state.Cards[i].DisplayTitle()
		}
	}
	return fmt.Sprintf("Sales History - Card #%d", cardID)
}

// Close cancels any pending debounced evaluation
func (s *Shell) Close() {
	s.debouncer.Cancel()
}
