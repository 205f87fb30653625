//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"ticketgate/internal/domain/ticket"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRPayloadRoundTrip(t *testing.T) {
	name := "Alice"
	original := ticket.QRPayload{
		TicketID:        uuid.New(),
		RegistryTokenID: "0xabc",
		EventID:         uuid.New(),
		BoundName:       &name,
		ValidationHash:  "deadbeef",
		IssuedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	encoded, err := original.Encode()
	require.NoError(t, err)

	decoded, err := ticket.DecodeQRPayload(encoded)
	require.NoError(t, err)
	if diff := cmp.Diff(original, *decoded); diff != "" {
		t.Errorf("payload round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLegacyPayload(t *testing.T) {
	ticketID := uuid.New()

	t.Run("with bound name", func(t *testing.T) {
		raw := "TICKET:" + ticketID.String() + ":somehash:0xtoken:Alice"

		p, err := ticket.DecodeQRPayload(raw)
		require.NoError(t, err)
		assert.Equal(t, ticketID, p.TicketID)
		assert.Equal(t, "somehash", p.ValidationHash)
		assert.Equal(t, "0xtoken", p.RegistryTokenID)
		require.NotNil(t, p.BoundName)
		assert.Equal(t, "Alice", *p.BoundName)
	})

	t.Run("without bound name", func(t *testing.T) {
		raw := "TICKET:" + ticketID.String() + ":somehash:0xtoken"

		p, err := ticket.DecodeQRPayload(raw)
		require.NoError(t, err)
		assert.Nil(t, p.BoundName)
	})

	t.Run("empty trailing name segment", func(t *testing.T) {
		raw := "TICKET:" + ticketID.String() + ":somehash:0xtoken:"

		p, err := ticket.DecodeQRPayload(raw)
		require.NoError(t, err)
		assert.Nil(t, p.BoundName)
	})
}

func TestDecodeMalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: ""},
		{name: "whitespace only", raw: "   "},
		{name: "random text", raw: "not a ticket"},
		{name: "broken json", raw: "{not json"},
		{name: "json without ticket id", raw: `{"registry_token_id":"0xabc"}`},
		{name: "legacy with too few segments", raw: "TICKET:" + uuid.NewString()},
		{name: "legacy with invalid uuid", raw: "TICKET:nope:hash:token"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := ticket.DecodeQRPayload(c.raw)
			require.ErrorIs(t, err, ticket.ErrMalformedPayload)
		})
	}
}

func TestTokenID(t *testing.T) {
	id := uuid.New()

	first := ticket.TokenID(id)
	second := ticket.TokenID(id)

	assert.Equal(t, first, second, "token id must be deterministic per ticket")
	assert.Len(t, first, 66) // 0x + 64 hex chars
	assert.NotEqual(t, first, ticket.TokenID(uuid.New()))
}

func TestComputeValidationHash(t *testing.T) {
	ticketID, eventID := uuid.New(), uuid.New()

	same := ticket.ComputeValidationHash("key", ticketID, eventID)
	assert.Equal(t, same, ticket.ComputeValidationHash("key", ticketID, eventID))
	assert.NotEqual(t, same, ticket.ComputeValidationHash("other-key", ticketID, eventID))
	assert.NotEqual(t, same, ticket.ComputeValidationHash("key", uuid.New(), eventID))
}
