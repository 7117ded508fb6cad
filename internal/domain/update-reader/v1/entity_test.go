package updatereaderv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookv1 "github.com/depthline/bookmirror/internal/domain/book/v1"
)

func TestDepthUpdatePayload_ToUpdate(t *testing.T) {
	// Test 1: valid set payload converts field by field
	payload := &DepthUpdatePayload{Type: "set", Side: "bid", Price: 100, Quantity: 25}
	update, err := payload.ToUpdate()
	require.NoError(t, err)
	assert.Equal(t, bookv1.Update{
		Type:     bookv1.UpdateSet,
		Side:     bookv1.SideBid,
		Price:    100,
		Quantity: 25,
	}, update)

	// Test 2: valid remove payload
	payload = &DepthUpdatePayload{Type: "remove", Side: "ask", Price: 105}
	update, err = payload.ToUpdate()
	require.NoError(t, err)
	assert.Equal(t, bookv1.UpdateRemove, update.Type)
	assert.Equal(t, bookv1.SideAsk, update.Side)

	// Test 3: unknown side
	payload = &DepthUpdatePayload{Type: "set", Side: "buy", Price: 100, Quantity: 25}
	_, err = payload.ToUpdate()
	assert.ErrorIs(t, err, bookv1.ErrInvalidSide)

	// Test 4: unknown type
	payload = &DepthUpdatePayload{Type: "delete", Side: "bid", Price: 100, Quantity: 25}
	_, err = payload.ToUpdate()
	assert.ErrorIs(t, err, bookv1.ErrInvalidUpdateType)

	// Test 5: negative quantity
	payload = &DepthUpdatePayload{Type: "set", Side: "bid", Price: 100, Quantity: -1}
	_, err = payload.ToUpdate()
	assert.ErrorIs(t, err, ErrNegativeQuantity)
}
