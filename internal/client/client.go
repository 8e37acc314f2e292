// Package client implements the HTTP collaborator toward the remote
// banking backend. It only moves validated payloads over the wire;
// every business rule stays server-side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ignamartinoli/banking-ui/internal/apperrors"
	"github.com/ignamartinoli/banking-ui/internal/core/ports"
	"github.com/ignamartinoli/banking-ui/internal/dto"
	"github.com/ignamartinoli/banking-ui/internal/models"
	"github.com/ignamartinoli/banking-ui/internal/platform/auth"
	"github.com/sony/gobreaker"
)

// validate guards the request drafts right before the wire; a draft is
// submitted whole or not at all. It reads the same binding tags gin
// uses.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// Config configures a Client.
type Config struct {
	BaseURL string
	Session *auth.Session
	Timeout time.Duration
}

// Client talks to the banking backend. Calls run through a circuit
// breaker so a dead backend fails fast instead of stacking timeouts.
type Client struct {
	httpClient *http.Client
	baseURL    string
	session    *auth.Session
	cb         *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

var _ ports.BankingAPI = (*Client)(nil)

// New creates a Client.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "banking_client"))

	settings := gobreaker.Settings{
		Name: "banking-api",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
		},
		IsSuccessful: func(err error) bool {
			// A structured backend rejection is a healthy backend.
			if _, ok := err.(*RemoteError); ok {
				return true
			}
			return err == nil
		},
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		session:    cfg.Session,
		cb:         gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

// FetchAccounts reads the current account list.
func (c *Client) FetchAccounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// FetchCurrencies reads the current currency list.
func (c *Client) FetchCurrencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := c.do(ctx, http.MethodGet, "/currencies", nil, &currencies); err != nil {
		return nil, err
	}
	return currencies, nil
}

// SubmitCreateAccount creates a new account.
func (c *Client) SubmitCreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*models.Account, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	var account models.Account
	if err := c.do(ctx, http.MethodPost, "/accounts", req, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// SubmitDeposit deposits amountCents into the given account.
func (c *Client) SubmitDeposit(ctx context.Context, accountID int64, amountCents int64) error {
	draft := dto.DepositRequest{AmountCents: amountCents}
	if err := validate.Struct(draft); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	path := fmt.Sprintf("/accounts/%d/deposit", accountID)
	return c.do(ctx, http.MethodPost, path, draft, nil)
}

// SubmitTransfer moves amountCents between two accounts.
func (c *Client) SubmitTransfer(ctx context.Context, req dto.TransferRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return c.do(ctx, http.MethodPost, "/transfers", req, nil)
}

// Login exchanges credentials for a bearer token and stores it on the
// session. The backend expects an x-www-form-urlencoded body.
func (c *Client) Login(ctx context.Context, req dto.LoginRequest) error {
	form := url.Values{}
	form.Set("username", req.Username)
	form.Set("password", req.Password)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var token dto.TokenResponse
	if err := c.execute(httpReq, &token); err != nil {
		return err
	}
	if c.session != nil {
		c.session.SetToken(token.AccessToken)
	}
	return nil
}

// Register creates a backend user.
func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/register", req, nil)
}

// do issues one JSON request and decodes the response into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.execute(req, out)
}

func (c *Client) execute(req *http.Request, out any) error {
	if c.session != nil {
		c.session.Authorize(req)
	}

	start := time.Now()
	_, err := c.cb.Execute(func() (any, error) {
		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return nil, newRemoteError(resp.StatusCode, raw)
		}
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return nil, fmt.Errorf("decoding response body: %w", err)
			}
		}
		return nil, nil
	})

	if err != nil {
		c.logger.Warn("Backend call failed",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Duration("latency", time.Since(start)),
			slog.String("error", err.Error()))
		return err
	}

	c.logger.Debug("Backend call completed",
		slog.String("method", req.Method),
		slog.String("path", req.URL.Path),
		slog.Duration("latency", time.Since(start)))
	return nil
}
