//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ticketgate/internal/handler/api"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// stubWebhookUseCase returns a canned result so the handler's status mapping
// can be exercised without the full usecase wiring.
type stubWebhookUseCase struct {
	rm  *readmodel.IssuanceRM
	err error
}

func (s *stubWebhookUseCase) HandleNotification(_ context.Context, _ usecase.PaymentNotification) (*readmodel.IssuanceRM, error) {
	return s.rm, s.err
}

type WebhookHandlerTestSuite struct {
	suite.Suite
	stub   *stubWebhookUseCase
	router *gin.Engine
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	// Production enables the strict binder at startup; mirror that here so the
	// webhook route is proven to tolerate payloads it does not model.
	gin.EnableJsonDecoderDisallowUnknownFields()
	s.stub = &stubWebhookUseCase{}
	s.router = gin.New()
	s.router.POST("/webhooks/payment", api.NewWebhookHandler(s.stub).PaymentNotification)
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *WebhookHandlerTestSuite) TestPaymentNotification() {
	validBody := `{"event_type":"PAYMENT.CAPTURE.COMPLETED","resource":{"id":"TXN-1"}}`

	s.Run("issuance result is returned as 200", func() {
		s.stub.rm = &readmodel.IssuanceRM{
			PurchaseID: uuid.New(),
			Tickets:    []*readmodel.TicketRM{{ID: uuid.New()}},
		}
		s.stub.err = nil

		rec := s.post(validBody)
		s.Equal(http.StatusOK, rec.Code)

		var resp map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Equal(false, resp["replayed"])
		s.Len(resp["tickets"], 1)
	})

	s.Run("unhandled event type is acknowledged", func() {
		s.stub.rm = nil
		s.stub.err = nil

		rec := s.post(`{"event_type":"CHECKOUT.ORDER.APPROVED","resource":{"id":"X"}}`)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "ignored")
	})

	s.Run("extra processor fields are tolerated", func() {
		s.stub.rm = &readmodel.IssuanceRM{PurchaseID: uuid.New()}
		s.stub.err = nil

		body := `{
			"id": "WH-58D329510W468432D-8HN650336L201105X",
			"create_time": "2026-08-01T12:00:00.000Z",
			"resource_type": "capture",
			"event_type": "PAYMENT.CAPTURE.COMPLETED",
			"summary": "Payment completed for $ 100.0 USD",
			"resource": {
				"id": "TXN-1",
				"status": "COMPLETED",
				"final_capture": true,
				"amount": {"currency_code": "USD", "value": "100.00"},
				"create_time": "2026-08-01T11:59:58Z"
			},
			"links": [{"href": "https://api.processor.test/notifications/WH-58", "rel": "self"}]
		}`
		rec := s.post(body)
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("malformed body", func() {
		rec := s.post(`{not json`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown intent maps to 404", func() {
		s.stub.rm = nil
		s.stub.err = usecase.ErrIntentNotFound

		rec := s.post(validBody)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("already processed maps to 409", func() {
		s.stub.err = usecase.ErrAlreadyProcessed

		rec := s.post(validBody)
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("amount mismatch maps to 422", func() {
		s.stub.err = usecase.ErrAmountMismatch

		rec := s.post(validBody)
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})
}
