package schedule

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"sales_contract/internal/domain/entities"
	"sales_contract/internal/usecase/interfaces"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

const defaultTimeout = 5 * time.Second

var ErrScheduleAPINotConfigured = errors.New("schedule api not configured")

// StatusError is returned for non-2xx responses other than 404 on update.
type StatusError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("schedule api %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

// Client talks to the external schedule store over HTTP.
//
// Endpoints:
//   - GET  {base}/schedules
//   - POST {base}/schedules
//   - PUT  {base}/schedules/{id}
type Client struct {
	http    *fasthttp.Client
	baseURL string
	timeout time.Duration
}

var _ interfaces.IScheduleStore = (*Client)(nil)

// NewClientFromEnv reads SCHEDULE_API_URL and SCHEDULE_API_TIMEOUT.
func NewClientFromEnv() (*Client, error) {
	base := strings.TrimSpace(os.Getenv("SCHEDULE_API_URL"))
	if base == "" {
		log.Printf("[schedule][client] missing SCHEDULE_API_URL")
		return nil, ErrScheduleAPINotConfigured
	}

	timeout := defaultTimeout
	if v := os.Getenv("SCHEDULE_API_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SCHEDULE_API_TIMEOUT: %w", err)
		}
		timeout = d
	}
	return NewClient(base, timeout, &fasthttp.Client{Name: "sales-contract"}), nil
}

func NewClient(baseURL string, timeout time.Duration, hc *fasthttp.Client) *Client {
	if hc == nil {
		hc = &fasthttp.Client{}
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		http:    hc,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (c *Client) List(ctx context.Context) ([]entities.ScheduleEntry, error) {
	var out []entities.ScheduleEntry
	if _, err := c.do(ctx, fasthttp.MethodGet, "/schedules", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, e entities.ScheduleEntry) (entities.ScheduleEntry, error) {
	e.ID = ""
	var out entities.ScheduleEntry
	if _, err := c.do(ctx, fasthttp.MethodPost, "/schedules", e, &out); err != nil {
		return entities.ScheduleEntry{}, err
	}
	log.Printf("[schedule][client] create success id=%s estimate_no=%s", out.ID, out.EstimateNo)
	return out, nil
}

// Update returns interfaces.ErrScheduleEntryNotFound when the store answers 404.
func (c *Client) Update(ctx context.Context, id string, e entities.ScheduleEntry) (entities.ScheduleEntry, error) {
	e.ID = id
	var out entities.ScheduleEntry
	status, err := c.do(ctx, fasthttp.MethodPut, "/schedules/"+url.PathEscape(id), e, &out)
	if status == fasthttp.StatusNotFound {
		return entities.ScheduleEntry{}, fmt.Errorf("update schedule %s: %w", id, interfaces.ErrScheduleEntryNotFound)
	}
	if err != nil {
		return entities.ScheduleEntry{}, err
	}
	if out.ID == "" {
		out.ID = id
	}
	log.Printf("[schedule][client] update success id=%s", id)
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (int, error) {
	if c == nil || c.baseURL == "" {
		return 0, ErrScheduleAPINotConfigured
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(method)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		req.Header.SetContentType("application/json")
		req.SetBodyRaw(b)
	}

	if err := c.http.DoDeadline(req, resp, c.deadline(ctx)); err != nil {
		log.Printf("[schedule][client] request failed method=%s path=%s err=%v", method, path, err)
		return 0, err
	}

	status := resp.StatusCode()
	if status < 200 || status > 299 {
		return status, &StatusError{Method: method, Path: path, Status: status, Body: string(resp.Body())}
	}
	if out != nil && len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return status, fmt.Errorf("decode schedule api response: %w", err)
		}
	}
	return status, nil
}

func (c *Client) deadline(ctx context.Context) time.Time {
	d := time.Now().Add(c.timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(d) {
		return dl
	}
	return d
}
