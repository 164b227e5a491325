package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/smallbiznis/tindahan/internal/config"
	customerdomain "github.com/smallbiznis/tindahan/internal/customer/domain"
	productdomain "github.com/smallbiznis/tindahan/internal/product/domain"
	transactiondomain "github.com/smallbiznis/tindahan/internal/transaction/domain"
	"go.uber.org/zap"
)

// Actions recognized by the spreadsheet web app.
const (
	ActionLogin          = "LOGIN"
	ActionRegister       = "REGISTER"
	ActionResetDB        = "RESET_DB"
	ActionAddProduct     = "ADD_PRODUCT"
	ActionUpdateProduct  = "UPDATE_PRODUCT"
	ActionDeleteProduct  = "DELETE_PRODUCT"
	ActionAddCustomer    = "ADD_CUSTOMER"
	ActionUpdateCustomer = "UPDATE_CUSTOMER"
	ActionDeleteCustomer = "DELETE_CUSTOMER"
	ActionAddTransaction = "ADD_TRANSACTION"
)

// User is the opaque account record the backend returns on LOGIN/REGISTER.
type User struct {
	Username string `json:"username"`
}

// Response is the backend's uniform reply to a POSTed action.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

// Snapshot is the full three-collection read the backend serves on GET.
type Snapshot struct {
	Products     []productdomain.Product         `json:"products"`
	Customers    []customerdomain.Customer       `json:"customers"`
	Transactions []transactiondomain.Transaction `json:"transactions"`
}

type envelope struct {
	Action string `json:"action"`
	Data   any    `json:"data,omitempty"`
}

// Gateway is the sole component that talks to the network. Each call is
// fire-once: no retries, no queuing, no state beyond the call itself.
type Gateway interface {
	Call(ctx context.Context, action string, data any) (*Response, error)
	FetchAll(ctx context.Context) (Snapshot, error)
}

type Client struct {
	url    string
	client *http.Client
	log    *zap.Logger
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	timeout := time.Duration(cfg.SheetTimeoutSeconds) * time.Second
	return &Client{
		url:    cfg.SheetURL,
		client: &http.Client{Timeout: timeout},
		log:    log.Named("gateway"),
	}
}

// Call serializes the action and payload as a single POST and decodes a
// single JSON response. A response with status "error" becomes a RemoteError
// carrying the backend message verbatim; a transport or decode failure
// becomes a NetworkError.
func (c *Client) Call(ctx context.Context, action string, data any) (*Response, error) {
	body, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		return nil, &NetworkError{Action: action, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, &NetworkError{Action: action, Err: err}
	}
	// The Apps Script contract expects text/plain to avoid a CORS preflight.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("request failed", zap.String("action", action), zap.Error(err))
		return nil, &NetworkError{Action: action, Err: err}
	}
	defer resp.Body.Close()

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Warn("malformed response", zap.String("action", action), zap.Error(err))
		return nil, &NetworkError{Action: action, Err: err}
	}
	if result.Status == "error" {
		return nil, &RemoteError{Action: action, Message: result.Message}
	}
	return &result, nil
}

// FetchAll returns the full snapshot in one response; the backend offers no
// partial or paginated read.
func (c *Client) FetchAll(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return Snapshot{}, &NetworkError{Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("fetch failed", zap.Error(err))
		return Snapshot{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		c.log.Warn("malformed snapshot", zap.Error(err))
		return Snapshot{}, &NetworkError{Err: err}
	}
	return snap, nil
}
