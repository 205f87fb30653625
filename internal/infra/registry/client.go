package registry

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/pkg/metrics"
	"ticketgate/internal/usecase"
)

// Client talks to the revocation-registry gateway over JSON/HTTP. Every call
// races against its deadline: an unresponsive chain node must never stall
// issuance or a gate scan.
type Client struct {
	cfg        config.RegistryConfig
	httpClient *http.Client
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		cfg: cfg.Registry,
		httpClient: &http.Client{
			Timeout: cfg.Registry.CallTimeout,
		},
	}
}

type registerRequest struct {
	Contract  string          `json:"contract"`
	Tokens    []registerToken `json:"tokens"`
	Signature string          `json:"signature"`
}

type registerToken struct {
	TokenID   string  `json:"token_id"`
	TicketID  string  `json:"ticket_id"`
	BoundName *string `json:"bound_name,omitempty"`
}

type registerResponse struct {
	TxRef string `json:"tx_ref"`
	Error string `json:"error,omitempty"`
}

type statusResponse struct {
	Known      bool    `json:"known"`
	Revoked    bool    `json:"revoked"`
	HolderName *string `json:"holder_name,omitempty"`
}

// RegisterTokens registers one or many tokens; a single ticket uses the
// one-token endpoint, a batch the batched one, per the gateway contract.
func (c *Client) RegisterTokens(ctx context.Context, entries []usecase.TokenEntry) (*usecase.RegistrationResult, error) {
	tokens := make([]registerToken, len(entries))
	for i, e := range entries {
		tokens[i] = registerToken{
			TokenID:   e.TokenID,
			TicketID:  e.TicketID.String(),
			BoundName: e.BoundName,
		}
	}

	path := "/tokens/register-batch"
	if len(entries) == 1 {
		path = "/tokens/register"
	}

	reqBody := registerRequest{
		Contract: c.cfg.ContractAddress,
		Tokens:   tokens,
	}
	reqBody.Signature = c.sign(reqBody.Tokens)

	var resp registerResponse
	if err := c.post(ctx, path, reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &usecase.RegistryAPIError{StatusCode: http.StatusUnprocessableEntity, Message: resp.Error}
	}

	return &usecase.RegistrationResult{TxRef: resp.TxRef}, nil
}

func (c *Client) TokenStatus(ctx context.Context, tokenID string) (*usecase.TokenStatusSnapshot, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	url := fmt.Sprintf("%s/tokens/%s/status?contract=%s", c.cfg.Endpoint, tokenID, c.cfg.ContractAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build token status request")
	}

	started := time.Now()
	httpResp, err := c.httpClient.Do(req)
	metrics.ObserveRegistryCall(time.Since(started).Seconds())
	if err != nil {
		return nil, errs.Wrap(err, "registry unreachable")
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode == http.StatusNotFound {
		return &usecase.TokenStatusSnapshot{Known: false}, nil
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, &usecase.RegistryAPIError{StatusCode: httpResp.StatusCode, Message: "token status lookup failed"}
	}

	var resp statusResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, errs.Wrap(err, "failed to decode token status response")
	}

	return &usecase.TokenStatusSnapshot{
		Known:      resp.Known,
		Revoked:    resp.Revoked,
		HolderName: resp.HolderName,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to marshal registry request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.CallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build registry request")
	}
	req.Header.Set("Content-Type", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.ObserveRegistryCall(time.Since(started).Seconds())
	if err != nil {
		return errs.Wrap(err, "registry unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return &usecase.RegistryAPIError{StatusCode: resp.StatusCode, Message: "registry call failed"}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode registry response")
	}
	return nil
}

// sign authenticates the registration payload to the gateway with the
// configured signing key.
func (c *Client) sign(tokens []registerToken) string {
	mac := hmac.New(sha256.New, []byte(c.cfg.SigningKey))
	mac.Write([]byte(c.cfg.ContractAddress))
	for _, t := range tokens {
		mac.Write([]byte(t.TokenID))
	}
	return hex.EncodeToString(mac.Sum(nil))
}
