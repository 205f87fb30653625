//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/user"
	"ticketgate/internal/infra"
	"ticketgate/internal/infra/db"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/mock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// passthroughTx wires a mocked TxRunner so the closure runs against the same
// mocked repositories, with a nil handle standing in for the transaction.
func passthroughTx(tx *mock.MockTxRunner) {
	tx.EXPECT().RunWithRetry(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		}).AnyTimes()
	tx.EXPECT().Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(db.DBTX) error) error {
			return fn(nil)
		}).AnyTimes()
}

type PurchaseUseCaseTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	inventory *mock.MockInventoryRepository
	purchases *mock.MockPurchaseRepository
	users     *mock.MockUserRepository
	gateway   *mock.MockPaymentGateway
	tx        *mock.MockTxRunner
	clock     *clock.MockClock
	uc        usecase.PurchaseUseCase
}

func (s *PurchaseUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.inventory = mock.NewMockInventoryRepository(s.ctrl)
	s.purchases = mock.NewMockPurchaseRepository(s.ctrl)
	s.users = mock.NewMockUserRepository(s.ctrl)
	s.gateway = mock.NewMockPaymentGateway(s.ctrl)
	s.tx = mock.NewMockTxRunner(s.ctrl)
	s.clock = clock.NewMockClock(testNow)
	s.uc = usecase.NewPurchaseUseCase(
		s.inventory, s.purchases, s.users, s.gateway,
		nil, s.tx, s.clock, config.NewTestConfig(),
	)
}

func (s *PurchaseUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPurchaseUseCaseSuite(t *testing.T) {
	suite.Run(t, new(PurchaseUseCaseTestSuite))
}

func approvedProfile(id uuid.UUID) *user.Profile {
	return &user.Profile{ID: id, DisplayName: "Alice", VerificationStatus: user.VerificationApproved}
}

func upcomingEvent() *event.Event {
	return &event.Event{
		ID:        uuid.New(),
		Name:      "Summer Live",
		StartsAt:  testNow.Add(48 * time.Hour),
		EndsAt:    testNow.Add(52 * time.Hour),
		UnitPrice: decimal.RequireFromString("50.00"),
	}
}

func (s *PurchaseUseCaseTestSuite) TestOpen() {
	userID := uuid.New()
	params := usecase.OpenPurchaseParams{
		EventID:    uuid.New(),
		Quantity:   2,
		BoundNames: []string{"Alice", "Bob"},
	}

	s.Run("success opens checkout and returns pending purchase", func() {
		ev := upcomingEvent()
		ev.ID = params.EventID
		passthroughTx(s.tx)

		s.users.EXPECT().FindProfile(gomock.Any(), gomock.Any(), userID).Return(approvedProfile(userID), nil)
		s.inventory.EXPECT().FindEvent(gomock.Any(), gomock.Any(), params.EventID).Return(ev, nil)
		s.inventory.EXPECT().ReserveCapacity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), "Summer Live").
			Return(&usecase.CheckoutSession{OrderID: "ORD-1", CheckoutURL: "https://pay.test/ORD-1"}, nil)
		s.purchases.EXPECT().SetExternalOrderID(gomock.Any(), gomock.Any(), gomock.Any(), "ORD-1").Return(nil)

		rm, err := s.uc.Open(context.Background(), userID, params)
		s.Require().NoError(err)
		s.Equal("pending", rm.Status)
		s.Equal(2, rm.Quantity)
		s.Equal("100.00", rm.Amount)
		s.Equal("https://pay.test/ORD-1", rm.CheckoutURL)
		s.Equal(testNow.Add(15*time.Minute), rm.ReservationExpiresAt)
	})

	s.Run("quantity above limit is rejected before any lookup", func() {
		_, err := s.uc.Open(context.Background(), userID, usecase.OpenPurchaseParams{
			EventID:  params.EventID,
			Quantity: 6,
		})
		s.Require().ErrorIs(err, usecase.ErrQuantityOutOfRange)
	})

	s.Run("unverified user is rejected", func() {
		profile := approvedProfile(userID)
		profile.VerificationStatus = user.VerificationPending
		s.users.EXPECT().FindProfile(gomock.Any(), gomock.Any(), userID).Return(profile, nil)

		_, err := s.uc.Open(context.Background(), userID, params)
		s.Require().ErrorIs(err, usecase.ErrUserNotVerified)
	})

	s.Run("event already started", func() {
		ev := upcomingEvent()
		ev.StartsAt = testNow.Add(-time.Hour)
		s.users.EXPECT().FindProfile(gomock.Any(), gomock.Any(), userID).Return(approvedProfile(userID), nil)
		s.inventory.EXPECT().FindEvent(gomock.Any(), gomock.Any(), params.EventID).Return(ev, nil)

		_, err := s.uc.Open(context.Background(), userID, params)
		s.Require().ErrorIs(err, usecase.ErrEventInPast)
	})

	s.Run("insufficient capacity surfaces as domain error", func() {
		passthroughTx(s.tx)
		s.users.EXPECT().FindProfile(gomock.Any(), gomock.Any(), userID).Return(approvedProfile(userID), nil)
		s.inventory.EXPECT().FindEvent(gomock.Any(), gomock.Any(), params.EventID).Return(upcomingEvent(), nil)
		s.inventory.EXPECT().ReserveCapacity(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(infra.NewRepoErr(infra.KindInsufficientCapacity, "not enough seats"))

		_, err := s.uc.Open(context.Background(), userID, params)
		s.Require().ErrorIs(err, usecase.ErrInsufficientCapacity)
	})

	s.Run("gateway failure releases the reservation", func() {
		passthroughTx(s.tx)
		s.users.EXPECT().FindProfile(gomock.Any(), gomock.Any(), userID).Return(approvedProfile(userID), nil)
		s.inventory.EXPECT().FindEvent(gomock.Any(), gomock.Any(), params.EventID).Return(upcomingEvent(), nil)
		s.inventory.EXPECT().ReserveCapacity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.purchases.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "processor 500"))

		// Compensation path: intent failed, capacity released.
		s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		s.inventory.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := s.uc.Open(context.Background(), userID, params)
		s.Require().Error(err)
		s.True(errs.Is(err, usecase.ErrPaymentGatewayFailed), "the mark must survive to the handler's status mapping")
	})
}

func (s *PurchaseUseCaseTestSuite) TestExpire() {
	pendingIntent := func() *purchase.Intent {
		return &purchase.Intent{
			ID:            uuid.New(),
			ReservationID: uuid.New(),
			Status:        purchase.StatusPending,
			ExpiresAt:     testNow.Add(-time.Minute),
		}
	}

	s.Run("releases a pending intent", func() {
		intent := pendingIntent()
		passthroughTx(s.tx)
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), intent.ID).Return(true, nil)
		s.inventory.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), intent.ReservationID).Return(nil)

		s.Require().NoError(s.uc.Expire(context.Background(), intent.ID))
	})

	s.Run("confirmed intent is a no-op", func() {
		intent := pendingIntent()
		intent.Status = purchase.StatusConfirmed
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)

		s.Require().NoError(s.uc.Expire(context.Background(), intent.ID))
	})

	s.Run("losing the guarded transition skips the release", func() {
		intent := pendingIntent()
		passthroughTx(s.tx)
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
		s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), intent.ID).Return(false, nil)

		s.Require().NoError(s.uc.Expire(context.Background(), intent.ID))
	})

	s.Run("unknown purchase", func() {
		id := uuid.New()
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.NewRepoErr(infra.KindNotFound, "no row"))

		s.Require().ErrorIs(s.uc.Expire(context.Background(), id), usecase.ErrPurchaseNotFound)
	})
}

func (s *PurchaseUseCaseTestSuite) TestReleaseExpired() {
	s.Run("sweeps every expired intent and counts releases", func() {
		a := &purchase.Intent{ID: uuid.New(), ReservationID: uuid.New(), Status: purchase.StatusPending}
		b := &purchase.Intent{ID: uuid.New(), ReservationID: uuid.New(), Status: purchase.StatusPending}
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindExpiredPending(gomock.Any(), gomock.Any(), testNow, 100).
			Return([]*purchase.Intent{a, b}, nil)
		for _, intent := range []*purchase.Intent{a, b} {
			s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), intent.ID).Return(intent, nil)
			s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), intent.ID).Return(true, nil)
			s.inventory.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), intent.ReservationID).Return(nil)
		}

		released, err := s.uc.ReleaseExpired(context.Background())
		s.Require().NoError(err)
		s.Equal(2, released)
	})

	s.Run("one failed expiry does not stop the sweep", func() {
		a := &purchase.Intent{ID: uuid.New(), ReservationID: uuid.New(), Status: purchase.StatusPending}
		b := &purchase.Intent{ID: uuid.New(), ReservationID: uuid.New(), Status: purchase.StatusPending}
		passthroughTx(s.tx)

		s.purchases.EXPECT().FindExpiredPending(gomock.Any(), gomock.Any(), testNow, 100).
			Return([]*purchase.Intent{a, b}, nil)
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), a.ID).
			Return(nil, infra.NewRepoErr(infra.KindDBFailure, "connection reset"))
		s.purchases.EXPECT().FindByID(gomock.Any(), gomock.Any(), b.ID).Return(b, nil)
		s.purchases.EXPECT().UpdateFailed(gomock.Any(), gomock.Any(), b.ID).Return(true, nil)
		s.inventory.EXPECT().ReleaseCapacity(gomock.Any(), gomock.Any(), b.ReservationID).Return(nil)

		released, err := s.uc.ReleaseExpired(context.Background())
		s.Require().NoError(err)
		s.Equal(1, released)
	})
}
