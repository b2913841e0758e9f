package notification

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"dhatucraft-be/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the Sender interface
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendOrderConfirmation(to string, e OrderPlacedEvent) error {
	args := m.Called(to, e)
	return args.Error(0)
}

func (m *MockSender) SendOperatorAlert(e OrderPlacedEvent) error {
	args := m.Called(e)
	return args.Error(0)
}

func (m *MockSender) SendPasswordResetOTP(ctx context.Context, to, code string) error {
	args := m.Called(ctx, to, code)
	return args.Error(0)
}

func envelopeBytes(t *testing.T, eventType string, payload any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	out, err := json.Marshal(Envelope{EventType: eventType, Payload: data})
	require.NoError(t, err)
	return out
}

func testEvent() OrderPlacedEvent {
	return OrderPlacedEvent{
		OrderID:  42,
		UserID:   1,
		Username: "Asha",
		Email:    "asha@example.com",
		Total:    2100,
		Items: []EventItem{
			{ProductID: 10, Name: "Brass Diya", Quantity: 2, UnitPrice: 450},
		},
	}
}

func TestHandler_HandleEvent(t *testing.T) {
	t.Run("SendsBothMails", func(t *testing.T) {
		sender := new(MockSender)
		reg := metrics.NewRegistry()
		h := NewHandler(sender, reg)

		e := testEvent()
		sender.On("SendOrderConfirmation", e.Email, e).Return(nil)
		sender.On("SendOperatorAlert", e).Return(nil)

		err := h.HandleEvent(context.Background(), []byte("42"), envelopeBytes(t, EventOrderPlaced, e))

		assert.NoError(t, err)
		sender.AssertExpectations(t)
		assert.Equal(t, uint64(2), reg.NotificationsSent.Load())
	})

	t.Run("IgnoresOtherEventTypes", func(t *testing.T) {
		sender := new(MockSender)
		h := NewHandler(sender, metrics.NewRegistry())

		err := h.HandleEvent(context.Background(), nil, envelopeBytes(t, "SomethingElse", testEvent()))

		assert.NoError(t, err)
		sender.AssertNotCalled(t, "SendOrderConfirmation")
		sender.AssertNotCalled(t, "SendOperatorAlert")
	})

	t.Run("MalformedEnvelope", func(t *testing.T) {
		sender := new(MockSender)
		h := NewHandler(sender, metrics.NewRegistry())

		err := h.HandleEvent(context.Background(), nil, []byte("not json"))
		assert.Error(t, err)
	})

	t.Run("DeliveryFailure_Counted", func(t *testing.T) {
		sender := new(MockSender)
		reg := metrics.NewRegistry()
		h := NewHandler(sender, reg)

		e := testEvent()
		sender.On("SendOrderConfirmation", e.Email, e).Return(errors.New("smtp down"))
		sender.On("SendOperatorAlert", e).Return(errors.New("smtp down"))

		// A cancelled context stops the retry backoff immediately.
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := h.HandleEvent(ctx, nil, envelopeBytes(t, EventOrderPlaced, e))

		assert.NoError(t, err)
		assert.Equal(t, uint64(2), reg.NotificationFailures.Load())
		assert.Equal(t, uint64(0), reg.NotificationsSent.Load())
	})
}
