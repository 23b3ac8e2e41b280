// Package notify delivers area and user notifications over Web Push. A fixed
// worker pool drains a buffered queue so that Emit never blocks a request or
// holds a transaction open.
package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"tracker/internal/core/ports"

	"github.com/SherClockHolmes/webpush-go"
	"gorm.io/gorm"
)

// Sender defines the interface for sending a single web push message.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender sends messages through the webpush library.
type WebPushSender struct{}

// Send sends a notification using the webpush library.
func (s *WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// SubscriptionDTO represents one browser push subscription. A subscription
// belongs to a user and carries the user's area so area-wide messages can be
// fanned out with one query.
type SubscriptionDTO struct {
	Endpoint string `gorm:"primaryKey"`
	UserID   string `gorm:"type:uuid;not null;index"`
	Area     string `gorm:"type:varchar(32);not null;index"`
	P256DH   string `gorm:"not null"`
	Auth     string `gorm:"not null"`
}

// TableName specifies the database table name for push subscriptions.
func (SubscriptionDTO) TableName() string {
	return "push_subscriptions"
}

// payload is the JSON document the service worker receives.
type payload struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	UnitID string `json:"unitId,omitempty"`
}

// WebPushSink implements ports.NotificationSink with a worker pool.
type WebPushSink struct {
	size    int
	jobs    chan ports.Notification
	db      *gorm.DB
	options *webpush.Options
	sender  Sender
	log     *slog.Logger
}

// NewWebPushSink creates a sink with the given pool size. Call Start before
// emitting.
func NewWebPushSink(size int, db *gorm.DB, options *webpush.Options, log *slog.Logger) *WebPushSink {
	return &WebPushSink{
		size:    size,
		jobs:    make(chan ports.Notification, size*4),
		db:      db,
		options: options,
		sender:  &WebPushSender{},
		log:     log,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is canceled.
func (s *WebPushSink) Start(ctx context.Context) {
	for i := 0; i < s.size; i++ {
		go s.worker(ctx, i)
	}
}

// Emit queues a notification. When the queue is full the notification is
// dropped with a log line; delivery is best-effort and must never block the
// caller.
func (s *WebPushSink) Emit(_ context.Context, notification ports.Notification) {
	select {
	case s.jobs <- notification:
	default:
		s.log.Warn("notification queue full, dropping",
			"area", notification.Area.String(), "title", notification.Title)
	}
}

// Register stores or refreshes one browser subscription.
func (s *WebPushSink) Register(ctx context.Context, sub SubscriptionDTO) error {
	return s.db.WithContext(ctx).Save(&sub).Error
}

func (s *WebPushSink) worker(ctx context.Context, id int) {
	s.log.Debug("notification worker started", "worker", id)
	for {
		select {
		case notification := <-s.jobs:
			s.deliver(ctx, notification)
		case <-ctx.Done():
			s.log.Debug("notification worker shutting down", "worker", id)
			return
		}
	}
}

// deliver fans the notification out to every matching subscription.
func (s *WebPushSink) deliver(ctx context.Context, notification ports.Notification) {
	subscriptions, err := s.resolveSubscriptions(ctx, notification)
	if err != nil {
		s.log.Error("failed to resolve subscriptions", "error", err)
		return
	}
	if len(subscriptions) == 0 {
		return
	}

	body, err := json.Marshal(payload{
		Title:  notification.Title,
		Body:   notification.Body,
		UnitID: notification.UnitID,
	})
	if err != nil {
		s.log.Error("failed to marshal notification payload", "error", err)
		return
	}

	for _, sub := range subscriptions {
		s.send(ctx, sub, body)
	}
}

func (s *WebPushSink) resolveSubscriptions(ctx context.Context, notification ports.Notification) ([]SubscriptionDTO, error) {
	query := s.db.WithContext(ctx)
	if notification.UserID != "" {
		query = query.Where("user_id = ?", notification.UserID)
	} else {
		query = query.Where("area = ?", notification.Area.String())
	}

	var subscriptions []SubscriptionDTO
	if err := query.Find(&subscriptions).Error; err != nil {
		return nil, err
	}
	return subscriptions, nil
}

func (s *WebPushSink) send(ctx context.Context, sub SubscriptionDTO, body []byte) {
	wpSub := &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256DH,
			Auth:   sub.Auth,
		},
	}

	resp, err := s.sender.Send(body, wpSub, s.options)
	if err != nil {
		s.log.Error("failed to send notification", "endpoint", sub.Endpoint, "error", err)
		return
	}
	defer resp.Body.Close()

	// A 410 means the browser dropped the subscription.
	if resp.StatusCode == http.StatusGone {
		s.log.Info("removing expired subscription", "endpoint", sub.Endpoint)
		if err := s.db.WithContext(ctx).Delete(&sub).Error; err != nil {
			s.log.Error("failed to delete expired subscription", "endpoint", sub.Endpoint, "error", err)
		}
	}
}
