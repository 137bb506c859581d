package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/SscSPs/orbisx_backoffice/internal/dto"
)

// Logical query names. Reads sharing a name are sequenced against each other.
const (
	QueryLedgerEntries = "ledger.entries"
	QueryLedgerSummary = "ledger.summary"
	QueryQuotes        = "quotes.list"
	QueryQuoteStats    = "quotes.stats"
	QueryContracts     = "contracts.list"
	QueryTasks         = "tasks.list"
	QueryCalendar      = "tasks.calendar"
	QueryDashboard     = "dashboard"
)

func dateRangeValues(v url.Values, r DateRange) {
	if r.StartDate != "" {
		v.Set("start_date", r.StartDate)
	}
	if r.EndDate != "" {
		v.Set("end_date", r.EndDate)
	}
}

func setIfNotEmpty(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}

// Login signs in and keeps the session cookie for later calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var res LoginResult
	if err := c.send(ctx, http.MethodPost, "/auth/login", dto.LoginRequest{Username: username, Password: password}, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Logout clears the session.
func (c *Client) Logout(ctx context.Context) error {
	return c.send(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

// CheckAuth reports whether the client holds a valid session.
func (c *Client) CheckAuth(ctx context.Context) (*AuthStatus, error) {
	var res AuthStatus
	if err := c.send(ctx, http.MethodGet, "/auth/check", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListLedgerEntries(ctx context.Context, params ListLedgerEntriesParams) (*LedgerEntryPage, error) {
	v := url.Values{}
	dateRangeValues(v, params.DateRangeParams)
	setIfNotEmpty(v, "category", params.Category)
	setIfNotEmpty(v, "kind", params.Kind)
	if params.Limit > 0 {
		v.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.NextToken != nil {
		v.Set("next_token", *params.NextToken)
	}
	var res LedgerEntryPage
	if err := c.get(ctx, QueryLedgerEntries, "/ledger/entries", v, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateLedgerEntry(ctx context.Context, req CreateLedgerEntry) (*LedgerEntryResult, error) {
	var res LedgerEntryResult
	if err := c.send(ctx, http.MethodPost, "/ledger/entries", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) LedgerSummary(ctx context.Context, window DateRange) (*LedgerSummary, error) {
	v := url.Values{}
	dateRangeValues(v, window)
	var res LedgerSummary
	if err := c.get(ctx, QueryLedgerSummary, "/ledger/summary", v, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) ListQuotes(ctx context.Context, params ListQuotesParams) ([]Quote, error) {
	v := url.Values{}
	setIfNotEmpty(v, "status", params.Status)
	setIfNotEmpty(v, "client", params.Client)
	setIfNotEmpty(v, "q", params.Search)
	var res dto.ListQuotesResponse
	if err := c.get(ctx, QueryQuotes, "/quotes", v, &res); err != nil {
		return nil, err
	}
	return res.Quotes, nil
}

func (c *Client) QuoteStats(ctx context.Context) (*QuoteStats, error) {
	var res QuoteStats
	if err := c.get(ctx, QueryQuoteStats, "/quotes/stats", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CreateQuote(ctx context.Context, req CreateQuote) (*Quote, error) {
	var res dto.QuoteMutationResponse
	if err := c.send(ctx, http.MethodPost, "/quotes", req, &res); err != nil {
		return nil, err
	}
	return &res.Quote, nil
}

// ChangeQuoteStatus moves a quote along its lifecycle. A stale version fails
// with an error matching ErrConflict.
func (c *Client) ChangeQuoteStatus(ctx context.Context, quoteID string, status QuoteStatus, version *int64) (*Quote, error) {
	var res dto.QuoteMutationResponse
	path := "/quotes/" + url.PathEscape(quoteID) + "/status"
	if err := c.send(ctx, http.MethodPut, path, dto.UpdateQuoteStatusRequest{Status: status, Version: version}, &res); err != nil {
		return nil, err
	}
	return &res.Quote, nil
}

func (c *Client) ListContracts(ctx context.Context, params ListContractsParams) ([]Contract, error) {
	v := url.Values{}
	setIfNotEmpty(v, "client", params.Client)
	setIfNotEmpty(v, "start_from", params.StartFrom)
	setIfNotEmpty(v, "end_until", params.EndUntil)
	setIfNotEmpty(v, "status", params.Status)
	var res dto.ListContractsResponse
	if err := c.get(ctx, QueryContracts, "/contracts", v, &res); err != nil {
		return nil, err
	}
	return res.Contracts, nil
}

func taskValues(params ListTasksParams) url.Values {
	v := url.Values{}
	dateRangeValues(v, params.DateRangeParams)
	setIfNotEmpty(v, "kind", params.Kind)
	setIfNotEmpty(v, "client", params.Client)
	if params.Completed != nil {
		v.Set("completed", strconv.FormatBool(*params.Completed))
	}
	return v
}

func (c *Client) ListTasks(ctx context.Context, params ListTasksParams) ([]Task, error) {
	var res dto.ListTasksResponse
	if err := c.get(ctx, QueryTasks, "/tasks", taskValues(params), &res); err != nil {
		return nil, err
	}
	return res.Tasks, nil
}

// Calendar fetches one month of the agenda. Switching months quickly only
// ever yields the month requested last.
func (c *Client) Calendar(ctx context.Context, year, month int, params ListTasksParams) (*Calendar, error) {
	var res Calendar
	path := fmt.Sprintf("/tasks/calendar/%d/%d", year, month)
	if err := c.get(ctx, QueryCalendar, path, taskValues(params), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SetTaskCompletion(ctx context.Context, taskID string, completed bool, version *int64) (*Task, error) {
	var res dto.TaskMutationResponse
	path := "/tasks/" + url.PathEscape(taskID) + "/completion"
	if err := c.send(ctx, http.MethodPut, path, dto.SetTaskCompletionRequest{Completed: &completed, Version: version}, &res); err != nil {
		return nil, err
	}
	return &res.Task, nil
}

func (c *Client) Dashboard(ctx context.Context, window DateRange) (*Dashboard, error) {
	v := url.Values{}
	dateRangeValues(v, window)
	var res Dashboard
	if err := c.get(ctx, QueryDashboard, "/dashboard", v, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
