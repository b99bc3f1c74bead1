package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/whauf/sportscard-tracker/internal/metrics"
)

// DefaultNotificationTTL is how long a banner stays up before auto-dismissal
const DefaultNotificationTTL = 5 * time.Second

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationDanger  NotificationType = "danger"
)

// Notification is a transient user-visible banner
type Notification struct {
	ID        string           `json:"id"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Notifier holds at most one banner. A new notification replaces the
// current one; expired banners are never returned.
type Notifier struct {
	ttl time.Duration
	now func() time.Time

	mu      sync.Mutex
	current *Notification
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

// Notify replaces the current banner
func (n *Notifier) Notify(message string, kind NotificationType) Notification {
	now := n.now()
	notification := Notification{
		ID:        uuid.New().String(),
		Message:   message,
		Type:      kind,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}

	n.mu.Lock()
	n.current = &notification
	n.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues(string(kind)).Inc()
	log.Printf("Notification [%s]: %s", kind, message)
	return notification
}

// Current returns the live banner, if any
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Notification{}, false
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return Notification{}, false
	}
	return *n.current, true
}

// Dismiss removes the banner with the given ID. It reports false if that
// banner is no longer current.
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil || n.current.ID != id {
		return false
	}
	n.current = nil
	return true
}
