package order

import (
	"context"
	"sync"
	"testing"
	"time"

	"bloomshop-be/internal/cart"
	"bloomshop-be/internal/checkout"
	"bloomshop-be/internal/money"
	"bloomshop-be/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCartService is a mock implementation of the cart service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sessionID, productID, variant string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Remove(ctx context.Context, sessionID, productID, variant string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) IncreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) DecreaseQuantity(ctx context.Context, sessionID, productID, variant string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, variant)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

// MockGateway is a mock for the notification gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Send(ctx context.Context, text string) (*notify.Ack, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notify.Ack), args.Error(1)
}

func validDraft() checkout.OrderDraft {
	return checkout.OrderDraft{
		SenderName:   "Anna Petrova",
		SenderEmail:  "anna@example.com",
		SenderPhone:  "+7900123456",
		DeliveryDate: "14/02/2026",
		DeliveryTime: "12:00",
		AgreeTerms:   true,
	}
}

func populatedCart() *cart.Cart {
	c := cart.NewCart()
	c.Add(cart.LineItem{ProductID: "1", Name: "Peony Bouquet", Variant: "M", UnitPrice: money.FromMajor(1600)})
	c.IncreaseQuantity("1", "M")
	return c
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success clears cart and returns receipt", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)
		gateway.On("Send", mock.Anything, mock.AnythingOfType("string")).
			Return(&notify.Ack{MessageID: 42}, nil)
		cartSvc.On("Clear", mock.Anything, "sess-1").Return(nil)

		svc := NewService(cartSvc, gateway)

		receipt, err := svc.Submit(ctx, "sess-1", validDraft())
		require.NoError(t, err)
		assert.NotEmpty(t, receipt.OrderRef)
		assert.Equal(t, int64(42), receipt.MessageID)
		assert.Equal(t, money.FromMajor(3200), receipt.Total)

		cartSvc.AssertCalled(t, "Clear", mock.Anything, "sess-1")
	})

	t.Run("Empty cart rejected before any network call", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		cartSvc.On("Get", mock.Anything, "sess-1").Return(cart.NewCart(), nil)

		svc := NewService(cartSvc, gateway)

		_, err := svc.Submit(ctx, "sess-1", validDraft())
		assert.ErrorIs(t, err, ErrCartEmpty)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Invalid draft rejected before any network call", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)

		svc := NewService(cartSvc, gateway)

		draft := validDraft()
		draft.SenderEmail = "not-an-email"
		draft.AgreeTerms = false

		_, err := svc.Submit(ctx, "sess-1", draft)

		var verr *checkout.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 2)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Delivery failure preserves cart", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)
		gateway.On("Send", mock.Anything, mock.Anything).
			Return(nil, &notify.SubmitError{StatusCode: 502, Detail: "bad gateway"})

		svc := NewService(cartSvc, gateway)

		_, err := svc.Submit(ctx, "sess-1", validDraft())

		var serr *notify.SubmitError
		require.ErrorAs(t, err, &serr)
		cartSvc.AssertNotCalled(t, "Clear", mock.Anything, mock.Anything)
	})

	t.Run("Clear failure does not fail a confirmed order", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)
		gateway.On("Send", mock.Anything, mock.Anything).Return(&notify.Ack{MessageID: 7}, nil)
		cartSvc.On("Clear", mock.Anything, "sess-1").Return(cart.ErrFailedClearCart)

		svc := NewService(cartSvc, gateway)

		receipt, err := svc.Submit(ctx, "sess-1", validDraft())
		require.NoError(t, err)
		assert.Equal(t, int64(7), receipt.MessageID)
	})

	t.Run("Rendered message includes items and total", func(t *testing.T) {
		cartSvc := new(MockCartService)
		gateway := new(MockGateway)

		var sent string
		cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)
		gateway.On("Send", mock.Anything, mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) { sent = args.String(1) }).
			Return(&notify.Ack{MessageID: 1}, nil)
		cartSvc.On("Clear", mock.Anything, "sess-1").Return(nil)

		svc := NewService(cartSvc, gateway)

		_, err := svc.Submit(ctx, "sess-1", validDraft())
		require.NoError(t, err)
		assert.Contains(t, sent, "Peony Bouquet (M) - 2 × 1 600 ₽")
		assert.Contains(t, sent, "Total: 3 200 ₽")
	})
}

func TestService_Submit_InFlightGuard(t *testing.T) {
	cartSvc := new(MockCartService)
	gateway := new(MockGateway)

	started := make(chan struct{})
	proceed := make(chan struct{})
	var startedOnce sync.Once

	cartSvc.On("Get", mock.Anything, "sess-1").Return(populatedCart(), nil)
	gateway.On("Send", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			startedOnce.Do(func() { close(started) })
			<-proceed
		}).
		Return(&notify.Ack{MessageID: 1}, nil)
	cartSvc.On("Clear", mock.Anything, "sess-1").Return(nil)

	svc := NewService(cartSvc, gateway)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Submit(context.Background(), "sess-1", validDraft())
		assert.NoError(t, err)
	}()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first submission never reached the gateway")
	}

	// Second submission for the same session while the first is in flight
	_, err := svc.Submit(context.Background(), "sess-1", validDraft())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(proceed)
	wg.Wait()

	// Guard released: a fresh submission goes through again
	_, err = svc.Submit(context.Background(), "sess-1", validDraft())
	assert.NoError(t, err)
}
