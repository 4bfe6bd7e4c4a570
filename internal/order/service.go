package order

import (
	"context"
	"sync"
	"time"

	"bloomshop-be/internal/cart"
	"bloomshop-be/internal/checkout"
	"bloomshop-be/internal/logger"
	"bloomshop-be/internal/notify"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// submitTimeout bounds the wait on the notification endpoint; an unresolved
// call past the deadline is treated as a failure.
const submitTimeout = 20 * time.Second

// Service is the checkout submission boundary. Submission is all-or-nothing
// per order: a failed delivery leaves the cart and the draft untouched so
// the buyer can retry manually.
type Service interface {
	Submit(ctx context.Context, sessionID string, draft checkout.OrderDraft) (*Receipt, error)
}

type service struct {
	cartSvc cart.Service
	gateway notify.Gateway

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(cartSvc cart.Service, gateway notify.Gateway) Service {
	return &service{
		cartSvc:  cartSvc,
		gateway:  gateway,
		inFlight: make(map[string]bool),
	}
}

// Submit validates the draft, renders the order message and fires it once.
// While a submission for the session is in flight, further submissions are
// rejected; the gateway itself does not deduplicate concurrent calls.
func (s *service) Submit(ctx context.Context, sessionID string, draft checkout.OrderDraft) (*Receipt, error) {
	if !s.acquire(sessionID) {
		return nil, ErrSubmissionInFlight
	}
	defer s.release(sessionID)

	log := logger.FromCtx(ctx).With(zap.String("session_id", sessionID))

	c, err := s.cartSvc.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Both precondition checks happen before any network call.
	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}
	if err := checkout.ValidateDraft(draft); err != nil {
		return nil, err
	}

	total := c.Total()
	message := notify.RenderOrderMessage(draft, c)

	sendCtx, cancel := context.WithTimeout(ctx, submitTimeout)
	defer cancel()

	ack, err := s.gateway.Send(sendCtx, message)
	if err != nil {
		log.Warn("order submission failed, cart preserved", zap.Error(err))
		return nil, err
	}

	if err := s.cartSvc.Clear(ctx, sessionID); err != nil {
		// The order is already delivered; log and return the receipt.
		log.Error("failed to clear cart after confirmed order", zap.Error(err))
	}

	receipt := &Receipt{
		OrderRef:  uuid.New().String(),
		MessageID: ack.MessageID,
		Total:     total,
	}

	log.Info("order confirmed",
		zap.String("order_ref", receipt.OrderRef),
		zap.Int64("message_id", receipt.MessageID),
	)

	return receipt, nil
}

func (s *service) acquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[sessionID] {
		return false
	}
	s.inFlight[sessionID] = true
	return true
}

func (s *service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, sessionID)
}
