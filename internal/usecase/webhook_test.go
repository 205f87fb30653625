//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookUseCaseTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	inventory  *mock.MockInventoryRepository
	purchases  *mock.MockPurchaseRepository
	tickets    *mock.MockTicketRepository
	dispatcher *mock.MockRegistrationDispatcher
	tx         *mock.MockTxRunner
	uc         usecase.WebhookUseCase
}

func (s *WebhookUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.inventory = mock.NewMockInventoryRepository(s.ctrl)
	s.purchases = mock.NewMockPurchaseRepository(s.ctrl)
	s.tickets = mock.NewMockTicketRepository(s.ctrl)
	s.dispatcher = mock.NewMockRegistrationDispatcher(s.ctrl)
	s.tx = mock.NewMockTxRunner(s.ctrl)
	s.uc = usecase.NewWebhookUseCase(
		s.inventory, s.purchases, s.tickets, s.dispatcher,
		nil, s.tx, clock.NewMockClock(testNow), config.NewTestConfig(),
	)
}

func (s *WebhookUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebhookUseCaseSuite(t *testing.T) {
	suite.Run(t, new(WebhookUseCaseTestSuite))
}

func pendingIntentForWebhook() *purchase.Intent {
	return &purchase.Intent{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		EventID:       uuid.New(),
		ReservationID: uuid.New(),
		Quantity:      2,
		Amount:        decimal.RequireFromString("100.00"),
		Status:        purchase.StatusPending,
		BoundNames:    []string{"Alice", "Bob"},
		CreatedAt:     testNow,
		ExpiresAt:     testNow.Add(15 * time.Minute),
	}
}

func captureCompleted(intent *purchase.Intent, amount string) usecase.PaymentNotification {
	return usecase.PaymentNotification{
		EventType: usecase.EventCaptureCompleted,
		Resource: usecase.NotificationResource{
			ID:     "TXN-99",
			Amount: &usecase.ResourceAmount{CurrencyCode: "USD", Value: amount},
			PurchaseUnits: []usecase.PurchaseUnitRef{
				{ReferenceID: intent.ID.String()},
			},
		},
	}
}

func (s *WebhookUseCaseTestSuite) TestHandleCompleted() {
	s.Run("issues the batch and consumes the reservation", func() {
		intent := pendingIntentForWebhook()
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any(), intent.ID, "TXN-99").Return(true, nil)

		var issued []*ticket.Ticket
		s.tickets.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, batch []*ticket.Ticket) error {
				issued = batch
				return nil
			})
		s.inventory.EXPECT().ConsumeReservation(gomock.Any(), gomock.Any(), intent.ReservationID).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any())

		rm, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "100.00"))
		s.Require().NoError(err)
		s.Require().NotNil(rm)
		s.False(rm.Replayed)
		s.Len(rm.Tickets, 2)
		s.Len(issued, 2)
		s.Equal(intent.ID, rm.PurchaseID)
	})

	s.Run("duplicate delivery replays the stored batch", func() {
		intent := pendingIntentForWebhook()
		intent.Status = purchase.StatusConfirmed
		stored := []*ticket.Ticket{{ID: uuid.New(), PurchaseID: intent.ID, Seq: 1, GroupSize: 1}}

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.tickets.EXPECT().FindByPurchaseID(gomock.Any(), gomock.Any(), intent.ID).Return(stored, nil)

		rm, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "100.00"))
		s.Require().NoError(err)
		s.True(rm.Replayed)
		s.Len(rm.Tickets, 1)
	})

	s.Run("losing the guarded confirm race replays instead of double issuing", func() {
		intent := pendingIntentForWebhook()
		confirmed := *intent
		confirmed.Status = purchase.StatusConfirmed
		stored := []*ticket.Ticket{{ID: uuid.New(), PurchaseID: intent.ID}}
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any(), intent.ID, "TXN-99").Return(false, nil)
		// The loser re-reads before replaying; only a confirmed winner has a batch.
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(&confirmed, nil)
		s.tickets.EXPECT().FindByPurchaseID(gomock.Any(), gomock.Any(), intent.ID).Return(stored, nil)

		rm, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "100.00"))
		s.Require().NoError(err)
		s.True(rm.Replayed)
	})

	s.Run("losing the guarded confirm to the expiry sweep is a conflict", func() {
		intent := pendingIntentForWebhook()
		failed := *intent
		failed.Status = purchase.StatusFailed
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any(), intent.ID, "TXN-99").Return(false, nil)
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(&failed, nil)

		rm, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "100.00"))
		s.Require().ErrorIs(err, usecase.ErrAlreadyProcessed)
		s.Nil(rm)
	})

	s.Run("amount mismatch leaves the intent pending", func() {
		intent := pendingIntentForWebhook()

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)

		_, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "90.00"))
		s.Require().ErrorIs(err, usecase.ErrAmountMismatch)
	})

	s.Run("a cent of processor rounding is tolerated", func() {
		intent := pendingIntentForWebhook()
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateConfirmed(gomock.Any(), gomock.Any(), intent.ID, "TXN-99").Return(true, nil)
		s.tickets.EXPECT().CreateBatch(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.inventory.EXPECT().ConsumeReservation(gomock.Any(), gomock.Any(), intent.ReservationID).Return(nil)
		s.dispatcher.EXPECT().Dispatch(gomock.Any())

		_, err := s.uc.HandleNotification(context.Background(), captureCompleted(intent, "99.99"))
		s.Require().NoError(err)
	})

	s.Run("missing amount fails closed", func() {
		intent := pendingIntentForWebhook()
		n := captureCompleted(intent, "100.00")
		n.Resource.Amount = nil

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)

		_, err := s.uc.HandleNotification(context.Background(), n)
		s.Require().ErrorIs(err, usecase.ErrAmountMismatch)
	})

	s.Run("falls back to the correlated order id", func() {
		intent := pendingIntentForWebhook()
		intent.Status = purchase.StatusConfirmed
		n := usecase.PaymentNotification{
			EventType: usecase.EventCaptureCompleted,
			Resource: usecase.NotificationResource{
				ID: "TXN-42",
				SupplementaryData: &usecase.SupplementaryData{
					RelatedIDs: usecase.RelatedIDs{OrderID: "ORD-EXT-7"},
				},
			},
		}

		s.purchases.EXPECT().FindByExternalOrderID(gomock.Any(), gomock.Any(), "ORD-EXT-7").Return(intent, nil)
		s.tickets.EXPECT().FindByPurchaseID(gomock.Any(), gomock.Any(), intent.ID).Return(nil, nil)

		_, err := s.uc.HandleNotification(context.Background(), n)
		s.Require().NoError(err)
	})

	s.Run("unrecognized order fails closed", func() {
		n := usecase.PaymentNotification{
			EventType: usecase.EventCaptureCompleted,
			Resource:  usecase.NotificationResource{ID: "TXN-UNKNOWN"},
		}
		s.purchases.EXPECT().FindByExternalOrderID(gomock.Any(), gomock.Any(), "TXN-UNKNOWN").
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no row"))

		_, err := s.uc.HandleNotification(context.Background(), n)
		s.Require().ErrorIs(err, usecase.ErrIntentNotFound)
	})
}

func (s *WebhookUseCaseTestSuite) TestHandleDenied() {
	denied := func(intent *purchase.Intent) usecase.PaymentNotification {
		return usecase.PaymentNotification{
			EventType: usecase.EventCaptureDenied,
			Resource: usecase.NotificationResource{
				PurchaseUnits: []usecase.PurchaseUnitRef{{ReferenceID: intent.ID.String()}},
			},
		}
	}

	s.Run("releases the reservation of a pending intent", func() {
		intent := pendingIntentForWebhook()
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), intent.ID).Return(true, nil)
		s.inventory.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), intent.ReservationID).Return(nil)

		rm, err := s.uc.HandleNotification(context.Background(), denied(intent))
		s.Require().NoError(err)
		s.Nil(rm)
	})

	s.Run("denial after confirmation is ignored", func() {
		intent := pendingIntentForWebhook()
		intent.Status = purchase.StatusConfirmed

		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)

		_, err := s.uc.HandleNotification(context.Background(), denied(intent))
		s.Require().NoError(err)
	})

	s.Run("denial for an unknown order is swallowed", func() {
		intent := pendingIntentForWebhook()
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no row"))
		s.purchases.EXPECT().FindByExternalOrderID(gomock.Any(), gomock.Any(), intent.ID.String()).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no row"))

		_, err := s.uc.HandleNotification(context.Background(), denied(intent))
		s.Require().NoError(err)
	})
}

func (s *WebhookUseCaseTestSuite) TestHandleUnknownEventType() {
	rm, err := s.uc.HandleNotification(context.Background(), usecase.PaymentNotification{
		EventType: "CHECKOUT.ORDER.APPROVED",
	})
	s.Require().NoError(err)
	s.Nil(rm)
}
