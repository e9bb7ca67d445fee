package http_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"post-sync-client/internal/custom_errors"
	model "post-sync-client/internal/domain/models"
	ports "post-sync-client/internal/domain/ports/output"
)

const contentTypeJSON = "application/json; charset=UTF-8"

type PostClient struct {
	baseURL    string
	httpClient *http.Client
	log        ports.Logger
}

// NewPostClient targets the collection at baseURL. A zero timeout keeps the transport default.
func NewPostClient(baseURL string, timeout time.Duration, log ports.Logger) *PostClient {
	return &PostClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

func (c *PostClient) ListAll(ctx context.Context) ([]*model.Post, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, err
	}

	var posts []*model.Post
	if err := c.decode(c.baseURL, body, listSchema, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (c *PostClient) Create(ctx context.Context, input *model.PostInput) (*model.Post, error) {
	body, err := c.do(ctx, http.MethodPost, c.baseURL, input)
	if err != nil {
		return nil, err
	}

	var post model.Post
	if err := c.decode(c.baseURL, body, postSchema, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostClient) Update(ctx context.Context, id int64, input *model.PostInput) (*model.Post, error) {
	url := c.entityURL(id)
	body, err := c.do(ctx, http.MethodPut, url, input)
	if err != nil {
		return nil, err
	}

	var post model.Post
	if err := c.decode(url, body, postSchema, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *PostClient) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, c.entityURL(id), nil)
	return err
}

func (c *PostClient) entityURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *PostClient) do(ctx context.Context, method, url string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &custom_errors.TransportError{Method: method, URL: url, Err: err}
	}
	if payload != nil {
		req.Header.Set("Content-Type", contentTypeJSON)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Remote request failed",
			slog.String("method", method),
			slog.String("url", url),
			slog.String("error", err.Error()))
		return nil, &custom_errors.TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	c.log.Debug("Remote request completed",
		slog.String("method", method),
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &custom_errors.TransportError{Method: method, URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &custom_errors.TransportError{Method: method, URL: url, StatusCode: resp.StatusCode, Err: err}
	}
	return data, nil
}

// decode checks the body against schema before binding it to dest.
func (c *PostClient) decode(url string, body []byte, schema *jsonschema.Schema, dest any) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		c.log.Warn("Response is not valid JSON", slog.String("url", url), slog.String("error", err.Error()))
		return &custom_errors.DecodeError{URL: url, Err: err}
	}
	if err := schema.Validate(doc); err != nil {
		c.log.Warn("Response does not match post shape", slog.String("url", url), slog.String("error", err.Error()))
		return &custom_errors.DecodeError{URL: url, Err: err}
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &custom_errors.DecodeError{URL: url, Err: err}
	}
	return nil
}
