package paymentgw

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Client talks to the external payment processor's order API. Every call
// carries its own deadline; a slow processor aborts the purchase rather than
// holding a reservation open.
type Client struct {
	cfg        config.PaymentConfig
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg: cfg.Payment,
		httpClient: &http.Client{
			Timeout: cfg.Payment.CallTimeout,
		},
	}
}

type createOrderRequest struct {
	Intent             string         `json:"intent"`
	PurchaseUnits      []purchaseUnit `json:"purchase_units"`
	ApplicationContext appContext     `json:"application_context"`
}

type purchaseUnit struct {
	ReferenceID string      `json:"reference_id"`
	Description string      `json:"description,omitempty"`
	Amount      orderAmount `json:"amount"`
}

type orderAmount struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type appContext struct {
	ReturnURL string `json:"return_url"`
	CancelURL string `json:"cancel_url"`
}

type createOrderResponse struct {
	ID    string `json:"id"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

func (c *Client) CreateOrder(ctx context.Context, purchaseID uuid.UUID, amount decimal.Decimal, description string) (*usecase.CheckoutSession, error) {
	reqBody := createOrderRequest{
		Intent: "CAPTURE",
		PurchaseUnits: []purchaseUnit{{
			ReferenceID: purchaseID.String(),
			Description: description,
			Amount: orderAmount{
				CurrencyCode: "USD",
				Value:        amount.StringFixed(2),
			},
		}},
		ApplicationContext: appContext{
			ReturnURL: c.cfg.ReturnURL,
			CancelURL: c.cfg.CancelURL,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, errs.Wrap(err, "failed to marshal order request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/v2/checkout/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build order request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.cfg.ClientID, c.cfg.ClientSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.Wrap(err, "payment processor unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, errs.New(fmt.Sprintf("payment processor returned status %d", resp.StatusCode))
	}

	var orderResp createOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&orderResp); err != nil {
		return nil, errs.Wrap(err, "failed to decode order response")
	}

	session := &usecase.CheckoutSession{
		OrderID:   orderResp.ID,
		DeepLinks: map[string]string{},
	}
	for _, link := range orderResp.Links {
		if link.Rel == "approve" {
			session.CheckoutURL = link.Href
		}
	}
	if session.CheckoutURL == "" {
		return nil, errs.New("order response missing approval link")
	}

	// Mobile SDKs open the order by id rather than following the web link.
	session.DeepLinks["ios"] = "ticketgate://checkout?order=" + orderResp.ID
	session.DeepLinks["android"] = "intent://checkout?order=" + orderResp.ID

	return session, nil
}
