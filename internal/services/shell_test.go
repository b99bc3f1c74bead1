package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/whauf/sportscard-tracker/internal/models"
)

type fakeBackend struct {
	mu        sync.Mutex
	cards     []models.Card
	sales     map[int][]models.Sale
	listErr   error
	createErr error
	listCalls int
	saleCalls int
	lastSale  models.CreateSaleRequest
}

func (f *fakeBackend) ListCards(ctx context.Context) ([]models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Card(nil), f.cards...), nil
}

func (f *fakeBackend) ListSales(ctx context.Context, cardID int) ([]models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saleCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sales[cardID], nil
}

func (f *fakeBackend) CreateCard(ctx context.Context, req models.CreateCardRequest) (*models.Card, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	card := req.ToCard()
	card.ID = len(f.cards) + 1
	f.cards = append(f.cards, card)
	return &card, nil
}

func (f *fakeBackend) CreateSale(ctx context.Context, req models.CreateSaleRequest) (*models.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastSale = req
	sale := req.ToSale(models.Now())
	sale.ID = 100
	if f.sales == nil {
		f.sales = map[int][]models.Sale{}
	}
	f.sales[req.CardID] = append([]models.Sale{sale}, f.sales[req.CardID]...)
	for i := range f.cards {
		if f.cards[i].ID == req.CardID {
			f.cards[i].LastSale = &sale
		}
	}
	return &sale, nil
}

// gatedBackend reads the first ListCards or ListSales result immediately but
// holds it until release is closed, so a later request can overtake it.
type gatedBackend struct {
	*fakeBackend
	gateCards bool
	gateSales bool
	started   chan struct{}
	release   chan struct{}
	used      atomic.Bool
	// heldErr, when set, replaces the held ListCards result
	heldErr error
}

func newGatedBackend(backend *fakeBackend, cards, sales bool) *gatedBackend {
	return &gatedBackend{
		fakeBackend: backend,
		gateCards:   cards,
		gateSales:   sales,
		started:     make(chan struct{}),
		release:     make(chan struct{}),
	}
}

func (g *gatedBackend) ListCards(ctx context.Context) ([]models.Card, error) {
	cards, err := g.fakeBackend.ListCards(ctx)
	if g.gateCards && g.used.CompareAndSwap(false, true) {
		close(g.started)
		<-g.release
		if g.heldErr != nil {
			return nil, g.heldErr
		}
	}
	return cards, err
}

func (g *gatedBackend) ListSales(ctx context.Context, cardID int) ([]models.Sale, error) {
	sales, err := g.fakeBackend.ListSales(ctx, cardID)
	if g.gateSales && g.used.CompareAndSwap(false, true) {
		close(g.started)
		<-g.release
	}
	return sales, err
}

func newTestShell(backend *fakeBackend) *Shell {
	return NewShell(backend, NewSalesHistoryCache(8, time.Minute), NewNotifier(time.Minute), 10*time.Millisecond)
}

func TestShell_RefreshAndView(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()}
	shell := newTestShell(backend)

	if err := shell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if shell.LastRefresh().IsZero() {
		t.Error("expected last refresh to be recorded")
	}

	view := shell.View()
	if len(view.Rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(view.Rows))
	}

	filtered := shell.ViewFor(Criteria{Sport: "Hockey"})
	if len(filtered.Rows) != 1 || filtered.Rows[0].Card.ID != 4 {
		t.Errorf("expected only card 4, got %d rows", len(filtered.Rows))
	}
	if shell.State().Criteria != (Criteria{}) {
		t.Error("ViewFor must not change the stored criteria")
	}
}

func TestShell_RefreshFailureKeepsSnapshot(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()}
	shell := newTestShell(backend)
	if err := shell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	backend.listErr = &NetworkError{Op: "list_cards", Err: errors.New("connection refused")}
	err := shell.Refresh(context.Background())
	if err == nil {
		t.Fatal("expected refresh error")
	}
	if !IsNetworkFailure(err) {
		t.Errorf("expected wrapped network failure, got %v", err)
	}

	if len(shell.State().Cards) != 5 {
		t.Errorf("expected last-known snapshot to survive, got %d cards", len(shell.State().Cards))
	}
	notification, ok := shell.Notifier().Current()
	if !ok || notification.Type != NotificationDanger || notification.Message != "Error loading cards" {
		t.Errorf("expected danger notification, got %+v", notification)
	}
	if view := shell.View(); view.Notification == nil {
		t.Error("expected the view to carry the notification")
	}
}

func TestShell_SetCriteriaDebounced(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()}
	shell := newTestShell(backend)
	defer shell.Close()
	_ = shell.Refresh(context.Background())

	shell.SetCriteria(Criteria{PlayerName: "M"})
	shell.SetCriteria(Criteria{PlayerName: "Ma"})
	shell.SetCriteria(Criteria{PlayerName: "Mant"})

	if shell.State().Criteria.PlayerName != "" {
		t.Error("criteria applied before the debounce window elapsed")
	}

	time.Sleep(80 * time.Millisecond)

	if got := shell.State().Criteria.PlayerName; got != "Mant" {
		t.Errorf("expected latest criteria 'Mant', got %q", got)
	}
	view := shell.View()
	if len(view.Rows) != 1 || view.Rows[0].Card.PlayerName != "Mickey Mantle" {
		t.Errorf("expected Mickey Mantle only, got %d rows", len(view.Rows))
	}
}

func TestShell_AddCardRefreshes(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()}
	shell := newTestShell(backend)
	_ = shell.Refresh(context.Background())

	card, err := shell.AddCard(context.Background(), models.CreateCardRequest{
		PlayerName: "Shohei Ohtani",
		CardSet:    "Topps Chrome",
		Year:       2018,
		CardNumber: "150",
		Sport:      "Baseball",
		Condition:  models.ConditionMint,
	})
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if card.CardVariant != models.VariantBase {
		t.Errorf("expected default variant, got %q", card.CardVariant)
	}
	if len(shell.State().Cards) != 6 {
		t.Errorf("expected refreshed snapshot with 6 cards, got %d", len(shell.State().Cards))
	}
	if backend.listCalls != 2 {
		t.Errorf("expected a refetch after create, got %d list calls", backend.listCalls)
	}
	notification, _ := shell.Notifier().Current()
	if notification.Message != "Card added successfully!" {
		t.Errorf("unexpected notification %+v", notification)
	}
}

func TestShell_SlowRefreshDoesNotOverwriteNewerSnapshot(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()[:1]}
	gated := newGatedBackend(backend, true, false)
	shell := NewShell(gated, NewSalesHistoryCache(8, time.Minute), NewNotifier(time.Minute), 10*time.Millisecond)
	defer shell.Close()

	done := make(chan error, 1)
	go func() {
		done <- shell.Refresh(context.Background())
	}()
	<-gated.started

	if _, err := shell.AddCard(context.Background(), models.CreateCardRequest{PlayerName: "Shohei Ohtani", Sport: "Baseball"}); err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if got := len(shell.State().Cards); got != 2 {
		t.Fatalf("expected 2 cards after AddCard, got %d", got)
	}

	close(gated.release)
	if err := <-done; err != nil {
		t.Fatalf("slow Refresh: %v", err)
	}

	if got := len(shell.State().Cards); got != 2 {
		t.Errorf("expected the post-create snapshot to survive the slow refresh, got %d cards", got)
	}
	notification, _ := shell.Notifier().Current()
	if notification.Message != "Card added successfully!" {
		t.Errorf("unexpected notification %+v", notification)
	}
}

func TestShell_SlowRefreshFailureAfterNewerSnapshotIsSilent(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards()}
	gated := newGatedBackend(backend, true, false)
	gated.heldErr = &NetworkError{Op: "list_cards", Err: errors.New("timeout")}
	shell := NewShell(gated, nil, NewNotifier(time.Minute), 10*time.Millisecond)
	defer shell.Close()

	done := make(chan error, 1)
	go func() {
		done <- shell.Refresh(context.Background())
	}()
	<-gated.started

	if err := shell.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	// The held request fails after a newer snapshot was stored
	close(gated.release)

	if err := <-done; err != nil {
		t.Errorf("expected the superseded refresh to be dropped, got %v", err)
	}
	if _, ok := shell.Notifier().Current(); ok {
		t.Error("expected no error banner for a superseded refresh")
	}
}

func TestShell_AddCardFailure(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards(), createErr: &RejectionError{Op: "create_card", StatusCode: 400}}
	shell := newTestShell(backend)
	_ = shell.Refresh(context.Background())

	if _, err := shell.AddCard(context.Background(), models.CreateCardRequest{}); !IsRejection(err) {
		t.Fatalf("expected rejection, got %v", err)
	}
	if backend.listCalls != 1 {
		t.Errorf("failed create must not refetch, got %d list calls", backend.listCalls)
	}
	notification, _ := shell.Notifier().Current()
	if notification.Message != "Error adding card" || notification.Type != NotificationDanger {
		t.Errorf("unexpected notification %+v", notification)
	}
}

func TestShell_AddSaleDefaultsDateAndInvalidatesCache(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards(), sales: map[int][]models.Sale{}}
	shell := newTestShell(backend)
	shell.today = func() time.Time { return time.Date(2024, 5, 4, 15, 30, 0, 0, time.UTC) }
	_ = shell.Refresh(context.Background())

	history, err := shell.SalesHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("SalesHistory: %v", err)
	}
	if !history.Empty {
		t.Error("expected empty history")
	}

	if _, err := shell.AddSale(context.Background(), models.CreateSaleRequest{CardID: 1, SalePrice: 500, Platform: "eBay"}); err != nil {
		t.Fatalf("AddSale: %v", err)
	}
	if got := backend.lastSale.SaleDate.String(); got != "2024-05-04T00:00:00" {
		t.Errorf("expected sale date to default to today at midnight, got %s", got)
	}

	history, err = shell.SalesHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("SalesHistory: %v", err)
	}
	if len(history.Sales) != 1 {
		t.Errorf("expected the new sale after invalidation, got %d", len(history.Sales))
	}
	if backend.saleCalls != 2 {
		t.Errorf("expected 2 backend sales fetches, got %d", backend.saleCalls)
	}

	for _, card := range shell.State().Cards {
		if card.ID == 1 && card.LastSale == nil {
			t.Error("expected refreshed snapshot to carry the last sale")
		}
	}
}

func TestShell_SalesHistoryFetchRacingAddSaleIsNotCached(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards(), sales: map[int][]models.Sale{}}
	gated := newGatedBackend(backend, false, true)
	shell := NewShell(gated, NewSalesHistoryCache(8, time.Minute), NewNotifier(time.Minute), 10*time.Millisecond)
	defer shell.Close()
	_ = shell.Refresh(context.Background())

	type result struct {
		history *SalesHistoryView
		err     error
	}
	done := make(chan result, 1)
	go func() {
		history, err := shell.SalesHistory(context.Background(), 1)
		done <- result{history, err}
	}()
	<-gated.started

	if _, err := shell.AddSale(context.Background(), models.CreateSaleRequest{CardID: 1, SalePrice: 500, Platform: "eBay"}); err != nil {
		t.Fatalf("AddSale: %v", err)
	}

	close(gated.release)
	stale := <-done
	if stale.err != nil {
		t.Fatalf("SalesHistory: %v", stale.err)
	}
	if !stale.history.Empty {
		t.Fatalf("expected the in-flight fetch to return the pre-sale list")
	}

	history, err := shell.SalesHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("SalesHistory: %v", err)
	}
	if len(history.Sales) != 1 {
		t.Errorf("expected the recorded sale, got %d sales", len(history.Sales))
	}
	if backend.saleCalls != 2 {
		t.Errorf("expected a second backend fetch, got %d", backend.saleCalls)
	}
}

func TestShell_SalesHistoryCached(t *testing.T) {
	backend := &fakeBackend{cards: sampleCards(), sales: map[int][]models.Sale{2: {{ID: 1, CardID: 2}}}}
	shell := newTestShell(backend)
	_ = shell.Refresh(context.Background())

	for i := 0; i < 3; i++ {
		if _, err := shell.SalesHistory(context.Background(), 2); err != nil {
			t.Fatalf("SalesHistory: %v", err)
		}
	}
	if backend.saleCalls != 1 {
		t.Errorf("expected 1 backend fetch, got %d", backend.saleCalls)
	}
}

func TestShell_SalesHistoryTitle(t *testing.T) {
	backend := &fakeBackend{cards: []models.Card{{ID: 1, PlayerName: "Michael Jordan", Year: 1991, CardSet: "Upper Deck", CardNumber: "44"}}}
	shell := newTestShell(backend)
	_ = shell.Refresh(context.Background())

	history, err := shell.SalesHistory(context.Background(), 1)
	if err != nil {
		t.Fatalf("SalesHistory: %v", err)
	}
	if history.Title != "Sales History - Michael Jordan 1991 Upper Deck #44" {
		t.Errorf("unexpected title %q", history.Title)
	}

	history, _ = shell.SalesHistory(context.Background(), 42)
	if history.Title != "Sales History - Card #42" {
		t.Errorf("unexpected fallback title %q", history.Title)
	}
}

func TestShell_SalesHistoryFailure(t *testing.T) {
	backend := &fakeBackend{listErr: errors.New("down")}
	shell := newTestShell(backend)

	if _, err := shell.SalesHistory(context.Background(), 1); err == nil {
		t.Fatal("expected error")
	}
	notification, _ := shell.Notifier().Current()
	if notification.Message != "Error loading sales history" {
		t.Errorf("unexpected notification %+v", notification)
	}
}
