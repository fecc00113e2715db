package contact

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultDelay is how long the simulated delivery takes.
const DefaultDelay = 1500 * time.Millisecond

// Receipt acknowledges an accepted message.
type Receipt struct {
	ID         string
	ReceivedAt time.Time
}

// Sender delivers a validated message.
type Sender interface {
	Send(ctx context.Context, m Message) (Receipt, error)
}

// SimulatedSender stands in for a mail relay: it waits a fixed delay,
// logs the message and accepts it. Nothing is stored or sent.
type SimulatedSender struct {
	delay  time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewSimulatedSender(delay time.Duration, logger *slog.Logger) *SimulatedSender {
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatedSender{delay: delay, logger: logger, now: time.Now}
}

func (s *SimulatedSender) Send(ctx context.Context, m Message) (Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, fmt.Errorf("send contact message: %w", ctx.Err())
		case <-timer.C:
		}
	}

	r := Receipt{ID: uuid.NewString(), ReceivedAt: s.now().UTC()}
	s.logger.InfoContext(ctx, "contact message received",
		"receipt", r.ID,
		"name", m.Name,
		"email", m.Email,
		"subject", m.Subject,
		"message_length", len(m.Message),
	)
	return r, nil
}
