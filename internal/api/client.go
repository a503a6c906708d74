package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bellum/internal/log"
)

// TokenSource supplies the current bearer token, or "" when no session
// exists.
type TokenSource func() string

// Client talks to the Bellum Astrum HTTP API. Every request is decorated
// with the bearer token from the token source; a 401 response triggers the
// unauthorized handler exactly once per response before the error is
// returned to the caller.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	tokenSource    TokenSource
	onUnauthorized func()
}

// Option configures a Client.
type Option func(*Client)

// WithTokenSource installs the bearer token supplier.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokenSource = ts }
}

// WithUnauthorizedHandler installs the hook invoked when the server
// rejects the bearer token. The session layer uses this to expire the
// session; it replaces the process-global callback the browser client had.
func WithUnauthorizedHandler(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &Error{StatusCode: resp.StatusCode}
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&detail); err == nil {
			apiErr.Detail = detail.Detail
		}
		if apiErr.IsUnauthorized() && c.onUnauthorized != nil {
			log.Warn("Unauthorized response, expiring session", "path", path)
			c.onUnauthorized()
		}
		return apiErr
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var resp AuthResponse
	err := c.do(ctx, http.MethodPost, "/users/login", LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its bearer token.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.do(ctx, http.MethodPost, "/users/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetUser fetches one user profile.
func (c *Client) GetUser(ctx context.Context, userID int64) (*UserProfile, error) {
	var user UserProfile
	if err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(userID, 10), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers fetches all user profiles.
func (c *Client) ListUsers(ctx context.Context) ([]UserProfile, error) {
	var users []UserProfile
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUserShips fetches a user's owned ships, optionally filtered by status.
func (c *Client) GetUserShips(ctx context.Context, userID int64, status string) ([]OwnedShip, error) {
	path := fmt.Sprintf("/users/%d/ships", userID)
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var ships []OwnedShip
	if err := c.do(ctx, http.MethodGet, path, nil, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

// GetShip fetches a single ship snapshot by ship number. Used for
// opponent and NPC stat lookups.
func (c *Client) GetShip(ctx context.Context, shipNumber int64) (*OwnedShip, error) {
	var ship OwnedShip
	if err := c.do(ctx, http.MethodGet, "/ships/"+strconv.FormatInt(shipNumber, 10), nil, &ship); err != nil {
		return nil, err
	}
	return &ship, nil
}

// SubmitBattle runs a battle between two fleets and returns its result.
func (c *Client) SubmitBattle(ctx context.Context, req BattleRequest) (*BattleResult, error) {
	var result BattleResult
	if err := c.do(ctx, http.MethodPost, "/battles", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ActivateShip moves a docked ship into active status.
func (c *Client) ActivateShip(ctx context.Context, shipNumber int64) (*OwnedShip, error) {
	var ship OwnedShip
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/ships/%d/activate", shipNumber), nil, &ship); err != nil {
		return nil, err
	}
	return &ship, nil
}

// DeactivateShip docks an active ship.
func (c *Client) DeactivateShip(ctx context.Context, shipNumber int64) (*OwnedShip, error) {
	var ship OwnedShip
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/ships/%d/deactivate", shipNumber), nil, &ship); err != nil {
		return nil, err
	}
	return &ship, nil
}

// RepairShip repairs a ship. The server may reject with a
// cooldown-remaining detail message.
func (c *Client) RepairShip(ctx context.Context, shipNumber int64) (*RepairResponse, error) {
	var resp RepairResponse
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/ships/%d/repair", shipNumber), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateFormation persists the user's default formation.
func (c *Client) UpdateFormation(ctx context.Context, userID int64, formation string) error {
	body := struct {
		Formation string `json:"formation"`
	}{Formation: formation}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/users/%d/formation", userID), body, nil)
}

// MarketShips lists the ship catalog available for purchase.
func (c *Client) MarketShips(ctx context.Context) ([]MarketShip, error) {
	var ships []MarketShip
	if err := c.do(ctx, http.MethodGet, "/market/ships", nil, &ships); err != nil {
		return nil, err
	}
	return ships, nil
}

// BuyShip purchases a catalog ship.
func (c *Client) BuyShip(ctx context.Context, shipID int64) (*TradeResponse, error) {
	body := struct {
		ShipID int64 `json:"ship_id"`
	}{ShipID: shipID}
	var resp TradeResponse
	if err := c.do(ctx, http.MethodPost, "/market/buy", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SellShip sells an owned ship back to the market.
func (c *Client) SellShip(ctx context.Context, shipNumber int64) (*TradeResponse, error) {
	body := struct {
		ShipNumber int64 `json:"ship_number"`
	}{ShipNumber: shipNumber}
	var resp TradeResponse
	if err := c.do(ctx, http.MethodPost, "/market/sell", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// WorkStatus fetches the viewer's work cooldown state.
func (c *Client) WorkStatus(ctx context.Context) (*WorkStatus, error) {
	var status WorkStatus
	if err := c.do(ctx, http.MethodGet, "/work/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// WorkTypes lists the work activities available to the viewer.
func (c *Client) WorkTypes(ctx context.Context) ([]WorkType, error) {
	var types []WorkType
	if err := c.do(ctx, http.MethodGet, "/work/types", nil, &types); err != nil {
		return nil, err
	}
	return types, nil
}

// PerformWork performs a work activity and returns the payout.
func (c *Client) PerformWork(ctx context.Context, workType string) (*WorkResult, error) {
	body := struct {
		WorkType string `json:"work_type"`
	}{WorkType: workType}
	var result WorkResult
	if err := c.do(ctx, http.MethodPost, "/work/perform", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// WorkHistory fetches the viewer's past work activities.
func (c *Client) WorkHistory(ctx context.Context) ([]WorkHistoryEntry, error) {
	var history []WorkHistoryEntry
	if err := c.do(ctx, http.MethodGet, "/work/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

// Messages fetches one page of the message log. Category and level are
// optional filters.
func (c *Client) Messages(ctx context.Context, page int, category, level string) (*MessagePage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if category != "" {
		q.Set("category", category)
	}
	if level != "" {
		q.Set("level", level)
	}
	var result MessagePage
	if err := c.do(ctx, http.MethodGet, "/messages?"+q.Encode(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
