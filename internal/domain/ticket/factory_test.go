//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func confirmedIntent(t *testing.T, quantity int, names []string) *purchase.Intent {
	t.Helper()
	intent, err := purchase.NewIntent(
		uuid.New(), uuid.New(), uuid.New(),
		quantity, 10,
		decimal.NewFromInt(int64(quantity)*40),
		names,
		time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		15*time.Minute,
	)
	require.NoError(t, err)
	return intent
}

func TestNewBatch(t *testing.T) {
	now := time.Date(2026, 8, 2, 9, 30, 0, 0, time.UTC)

	t.Run("group of three", func(t *testing.T) {
		intent := confirmedIntent(t, 3, []string{"Alice", "Bob", "Carol"})

		batch, err := ticket.NewBatch(intent, "signing-key", now)
		require.NoError(t, err)
		require.Len(t, batch, 3)

		parent := batch[0]
		assert.Equal(t, 1, parent.Seq)
		assert.Nil(t, parent.ParentID)

		for i, tk := range batch {
			assert.Equal(t, i+1, tk.Seq)
			assert.Equal(t, 3, tk.GroupSize)
			assert.Equal(t, intent.ID, tk.PurchaseID)
			assert.Equal(t, intent.EventID, tk.EventID)
			assert.Equal(t, ticket.StatusValid, tk.Status)
			assert.Equal(t, ticket.RegistrationPending, tk.RegistrationStatus)
			assert.Equal(t, ticket.TokenID(tk.ID), tk.RegistryTokenID)
			assert.Equal(t, now, tk.IssuedAt)
			require.NotNil(t, tk.BoundName)
			assert.Equal(t, intent.BoundNames[i], *tk.BoundName)

			if i > 0 {
				require.NotNil(t, tk.ParentID)
				assert.Equal(t, parent.ID, *tk.ParentID)
			}
		}
	})

	t.Run("single ticket has no parent", func(t *testing.T) {
		intent := confirmedIntent(t, 1, []string{"Alice"})

		batch, err := ticket.NewBatch(intent, "signing-key", now)
		require.NoError(t, err)
		require.Len(t, batch, 1)
		assert.Nil(t, batch[0].ParentID)
	})

	t.Run("qr payload decodes back to the ticket", func(t *testing.T) {
		intent := confirmedIntent(t, 2, []string{"Alice", "Bob"})

		batch, err := ticket.NewBatch(intent, "signing-key", now)
		require.NoError(t, err)

		for _, tk := range batch {
			p, err := ticket.DecodeQRPayload(tk.QRPayload)
			require.NoError(t, err)
			assert.Equal(t, tk.ID, p.TicketID)
			assert.Equal(t, tk.RegistryTokenID, p.RegistryTokenID)
			assert.Equal(t, ticket.ComputeValidationHash("signing-key", tk.ID, tk.EventID), p.ValidationHash)
		}
	})
}

func TestTicketTransitions(t *testing.T) {
	t.Run("revoke", func(t *testing.T) {
		tk := &ticket.Ticket{Status: ticket.StatusValid}
		require.NoError(t, tk.Revoke())
		assert.Equal(t, ticket.StatusRevoked, tk.Status)
		assert.ErrorIs(t, tk.Revoke(), ticket.ErrInvalidTransition)
	})

	t.Run("mark used", func(t *testing.T) {
		tk := &ticket.Ticket{Status: ticket.StatusValid}
		require.NoError(t, tk.MarkUsed())
		assert.Equal(t, ticket.StatusUsed, tk.Status)
		assert.ErrorIs(t, tk.MarkUsed(), ticket.ErrInvalidTransition)
	})

	t.Run("used ticket cannot be revoked", func(t *testing.T) {
		tk := &ticket.Ticket{Status: ticket.StatusUsed}
		assert.ErrorIs(t, tk.Revoke(), ticket.ErrInvalidTransition)
	})
}
