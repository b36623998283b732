// Package ioapi implements api.Client over HTTP with JSON bodies.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package ioapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gnames/acervo/pkg/api"
	"github.com/gnames/acervo/pkg/config"
	"github.com/gnames/acervo/pkg/plant"
	"github.com/gnames/gn"
	"github.com/google/uuid"
)

// RequestIDHeader carries a unique identifier of every request.
const RequestIDHeader = "X-Request-ID"

const resource = "/plantas/"

// httpClient implements api.Client.
type httpClient struct {
	base string
	http *http.Client
}

// New creates a client for the backend configured in cfg. A zero timeout
// leaves requests bounded only by their context.
func New(cfg *config.Config) api.Client {
	return &httpClient{
		base: strings.TrimRight(cfg.API.BaseURL, "/"),
		http: &http.Client{Timeout: cfg.RequestTimeout()},
	}
}

func (c *httpClient) ListAll(ctx context.Context) ([]plant.Plant, error) {
	var res []plant.Plant
	err := c.do(ctx, http.MethodGet, c.base+resource, nil, &res)
	if err != nil {
		return nil, err
	}
	if res == nil {
		res = []plant.Plant{}
	}
	return res, nil
}

func (c *httpClient) Get(ctx context.Context, id plant.ID) (plant.Plant, error) {
	var res plant.Plant
	err := c.do(ctx, http.MethodGet, c.itemURL(id), nil, &res)
	return res, err
}

func (c *httpClient) Create(
	ctx context.Context,
	in plant.Input,
) (plant.Plant, error) {
	var res plant.Plant
	err := c.do(ctx, http.MethodPost, c.base+resource, in, &res)
	return res, err
}

func (c *httpClient) Update(
	ctx context.Context,
	id plant.ID,
	in plant.Input,
) (plant.Plant, error) {
	var res plant.Plant
	err := c.do(ctx, http.MethodPut, c.itemURL(id), in, &res)
	return res, err
}

// Remove ignores the response body, any 2xx status is a success.
func (c *httpClient) Remove(ctx context.Context, id plant.ID) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

// itemURL escapes id so it always addresses a single record.
func (c *httpClient) itemURL(id plant.ID) string {
	return c.base + resource + url.PathEscape(id.String())
}

// do sends one request. When body is not nil it is sent as JSON, when out
// is not nil a 2xx response body is decoded into it.
func (c *httpClient) do(
	ctx context.Context,
	method, target string,
	body any,
	out any,
) error {
	var rdr io.Reader
	if body != nil {
		bs, err := json.Marshal(body)
		if err != nil {
			return EncodeError(err)
		}
		rdr = bytes.NewReader(bs)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rdr)
	if err != nil {
		return NetworkError(method, target, err)
	}
	reqID := uuid.New().String()
	req.Header.Set(RequestIDHeader, reqID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	slog.Debug("API request", "method", method, "url", target, "request_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		return NetworkError(method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return NetworkError(method, target, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := errorDetail(raw)
		slog.Warn("API error",
			"method", method,
			"url", target,
			"status", resp.StatusCode,
			"detail", detail,
			"request_id", reqID,
		)
		return StatusError(method, target, resp.StatusCode, detail)
	}

	if out == nil {
		return nil
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return DecodeError(method, target, err)
	}
	return nil
}

// errorDetail extracts the "detail" field of an error body. The backend
// sends either a string or, for request validation failures, a list of
// objects with a "msg" field.
func errorDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, v := range items {
			if v.Msg != "" {
				msgs = append(msgs, v.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}

// IsStatus reports whether err is a backend response with the given status.
func IsStatus(err error, status int) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		err = gnErr.Err
	}
	var se *statusErr
	return errors.As(err, &se) && se.status == status
}

type statusErr struct {
	status int
	err    error
}

func (e *statusErr) Error() string { return e.err.Error() }
func (e *statusErr) Unwrap() error { return e.err }
