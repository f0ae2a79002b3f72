package services

import (
	"testing"

	"github.com/nearbasket/nearbasket-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionStatus(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		wantErr error
	}{
		{models.OrderStatusProcessing, models.OrderStatusShipped, nil},
		{models.OrderStatusProcessing, models.OrderStatusDelivered, nil},
		{models.OrderStatusProcessing, models.OrderStatusCancelled, nil},
		{models.OrderStatusShipped, models.OrderStatusDelivered, nil},
		{models.OrderStatusShipped, models.OrderStatusCancelled, nil},
		{models.OrderStatusShipped, models.OrderStatusProcessing, ErrIllegalTransition},
		{models.OrderStatusDelivered, models.OrderStatusShipped, ErrIllegalTransition},
		{models.OrderStatusDelivered, models.OrderStatusCancelled, ErrIllegalTransition},
		{models.OrderStatusCancelled, models.OrderStatusProcessing, ErrIllegalTransition},
		{models.OrderStatusProcessing, "packed", ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.from+" to "+tt.to, func(t *testing.T) {
			order := models.Order{Status: tt.from}
			err := TransitionStatus(&order, tt.to)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.from, order.Status, "status unchanged on rejection")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, order.Status)
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{
		models.OrderStatusProcessing,
		models.OrderStatusShipped,
		models.OrderStatusDelivered,
		models.OrderStatusCancelled,
	} {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus(""))
}
