// Package fabrick implements the HTTP client behind the upstream Gateway
// port: authenticated request construction, envelope unwrapping and typed
// failure reporting.
package fabrick

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/bdelibalta/fabrick-gateway/pkg/config"
	"github.com/bdelibalta/fabrick-gateway/pkg/domain"
	"github.com/bdelibalta/fabrick-gateway/pkg/fabrick"
)

// Client talks to the Fabrick REST upstream. It is safe for concurrent use;
// each call owns its request/response lifecycle.
type Client struct {
	creds      fabrick.Credentials
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates an upstream client from the loaded configuration.
func New(cfg *config.Fabrick, logger *slog.Logger) *Client {
	return &Client{
		creds: fabrick.NewCredentials(cfg),
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		logger: logger,
	}
}

// headers returns the static header set attached identically to every call.
func (c *Client) headers() http.Header {
	h := make(http.Header)
	h.Set("Accept", "application/json")
	h.Set("Content-Type", "application/json")
	h.Set("Auth-Schema", c.creds.AuthSchema)
	h.Set("Api-Key", c.creds.ApiKey)
	h.Set("X-Time-Zone", "Europe/Rome")
	return h
}

// buildURL substitutes the account id into a resource path template.
func (c *Client) buildURL(pathTemplate string, accountID int64) string {
	path := strings.ReplaceAll(pathTemplate, "{accountId}", strconv.FormatInt(accountID, 10))
	return c.creds.BaseURL + path
}

func (c *Client) buildURLWithQueryParams(
	pathTemplate string,
	accountID int64,
	fromAccountingDate, toAccountingDate string,
) string {
	q := url.Values{}
	q.Set("fromAccountingDate", fromAccountingDate)
	q.Set("toAccountingDate", toAccountingDate)
	return c.buildURL(pathTemplate, accountID) + "?" + q.Encode()
}

// exchange performs one HTTP call and returns the raw response body.
// Transport failures and non-2xx responses surface as *domain.UpstreamError
// with the upstream message preserved.
func (c *Client) exchange(ctx context.Context, method, uri string, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, reader)
	if err != nil {
		return nil, &domain.UpstreamError{Message: err.Error()}
	}
	req.Header = c.headers()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream call failed", "method", method, "url", uri, "error", err)
		return nil, &domain.UpstreamError{Message: err.Error()}
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.UpstreamError{Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("upstream returned error status",
			"method", method, "url", uri, "status", resp.Status)
		return nil, &domain.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status + ": " + strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}

// GetAccountBalance fetches the balance resource for an account.
func (c *Client) GetAccountBalance(
	ctx context.Context,
	accountID int64,
) (*fabrick.AccountBalanceDTO, error) {
	uri := c.buildURL(c.creds.BalancePath, accountID)
	c.logger.Info("fetching account balance", "account_id", accountID)

	body, err := c.exchange(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	return fabrick.DecodePayload[fabrick.AccountBalanceDTO](body)
}

// GetAccountTransactions fetches the transactions of an account within the
// given accounting-date window. Dates are caller-supplied ISO strings;
// malformed values are an upstream-reported error.
func (c *Client) GetAccountTransactions(
	ctx context.Context,
	accountID int64,
	fromAccountingDate, toAccountingDate string,
) ([]fabrick.TransactionDTO, error) {
	uri := c.buildURLWithQueryParams(
		c.creds.TransactionsPath, accountID, fromAccountingDate, toAccountingDate)
	c.logger.Info("fetching account transactions",
		"account_id", accountID,
		"from", fromAccountingDate,
		"to", toAccountingDate)

	body, err := c.exchange(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	return fabrick.DecodePayloadList[fabrick.TransactionDTO](body)
}

// ExecuteTransfer posts a money-transfer request for an account.
func (c *Client) ExecuteTransfer(
	ctx context.Context,
	accountID int64,
	req domain.LoanTransferRequest,
) (*fabrick.LoanTransferDTO, error) {
	jsonBody, err := fabrick.EncodeBody(req)
	if err != nil {
		return nil, err
	}
	uri := c.buildURL(c.creds.TransfersPath, accountID)
	c.logger.Info("executing transfer",
		"account_id", accountID,
		"creditor", req.Creditor.Name,
		"amount", req.Amount,
		"currency", req.Currency)

	body, err := c.exchange(ctx, http.MethodPost, uri, jsonBody)
	if err != nil {
		return nil, err
	}
	return fabrick.DecodePayload[fabrick.LoanTransferDTO](body)
}

// Ensure Client implements fabrick.Gateway
var _ fabrick.Gateway = (*Client)(nil)
