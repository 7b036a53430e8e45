package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aurenstar/chat-backend/internal/entity"
)

func TestOrderPlacedPayloadRoundTrip(t *testing.T) {
	order, err := entity.NewOrder("acme", "Widget", 3, "cliente@test.com")
	require.NoError(t, err)

	payload := NewOrderPlacedPayload(order)
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	var received OrderPlacedPayload
	require.NoError(t, json.Unmarshal(body, &received))

	// Lo que el worker reconstruye es la misma orden que entró al chat.
	got := received.toOrder()
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, order.CompanyID, got.CompanyID)
	assert.Equal(t, order.Item, got.Item)
	assert.Equal(t, order.Qty, got.Qty)
	assert.Equal(t, order.Email, got.Email)
	assert.WithinDuration(t, order.CreatedAt, got.CreatedAt, time.Second)
}

func TestOrderPlacedPayloadBadTimestamp(t *testing.T) {
	payload := OrderPlacedPayload{
		OrderID:   "id-1",
		CompanyID: "acme",
		Item:      "Widget",
		Qty:       1,
		CreatedAt: "no es fecha",
	}

	got := payload.toOrder()
	assert.False(t, got.CreatedAt.IsZero())
}
