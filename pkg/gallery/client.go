// Package gallery is a Go client for the gallery HTTP API, with the
// infinite scroll and usage polling protocol the web front end follows.
package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Kind is the media kind of a collection
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Asset is a media asset as served by the API
type Asset struct {
	PublicID         string    `json:"public_id"`
	Format           string    `json:"format"`
	ResourceType     string    `json:"resource_type"`
	SecureURL        string    `json:"secure_url"`
	CreatedAt        time.Time `json:"created_at"`
	Width            int       `json:"width,omitempty"`
	Height           int       `json:"height,omitempty"`
	Bytes            int64     `json:"bytes,omitempty"`
	ThumbnailURL     string    `json:"thumbnail_url,omitempty"`
	FullURL          string    `json:"full_url,omitempty"`
	OriginalFilename string    `json:"original_filename,omitempty"`
}

// Page is one page of a collection
type Page struct {
	Assets     []Asset
	NextCursor string
	HasMore    bool
}

// Metric is a quota metric
type Metric struct {
	Used      float64 `json:"used"`
	Limit     float64 `json:"limit"`
	Percent   float64 `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// ByteMetric is a quota metric in bytes
type ByteMetric struct {
	Metric
	UsedGB      string `json:"usedGB"`
	LimitGB     string `json:"limitGB"`
	RemainingGB string `json:"remainingGB"`
}

// Usage is the account quota
type Usage struct {
	Plan            string     `json:"plan"`
	Credits         Metric     `json:"credits"`
	Transformations Metric     `json:"transformations"`
	Bandwidth       ByteMetric `json:"bandwidth"`
	Storage         ByteMetric `json:"storage"`
	ResetDate       *time.Time `json:"resetDate"`
	FetchedAt       time.Time  `json:"fetchedAt"`
}

// File is a file to upload
type File struct {
	Name string
	Body io.Reader
	// Size is checked against the batch limits when known, zero otherwise
	Size int64
}

// APIError is a non 2xx answer of the API
type APIError struct {
	StatusCode int
	Message    string
	Details    string
	// set when a batch aborted after some files were uploaded
	Uploaded      []Asset
	FailedFile    string
	ExceededAfter string
}

// Partial reports whether a batch aborted after some files were uploaded
func (e *APIError) Partial() bool {
	return e.FailedFile != "" || e.ExceededAfter != ""
}

func (e *APIError) Error() string {
	if e.ExceededAfter != "" {
		return fmt.Sprintf("gallery api: %d: %s (exceeded after %s, %d uploaded)", e.StatusCode, e.Message, e.ExceededAfter, len(e.Uploaded))
	}
	if e.FailedFile != "" {
		return fmt.Sprintf("gallery api: %d: %s (failed at %s, %d uploaded)", e.StatusCode, e.Message, e.FailedFile, len(e.Uploaded))
	}
	return fmt.Sprintf("gallery api: %d: %s", e.StatusCode, e.Message)
}

// Client calls the gallery API
type Client struct {
	baseURL    string
	httpClient *http.Client
	limits     map[Kind]BatchLimits
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBatchLimits replaces the default batch limits, for servers configured otherwise
func WithBatchLimits(limits map[Kind]BatchLimits) Option {
	return func(c *Client) {
		c.limits = limits
	}
}

// NewClient creates a client for the API served at baseURL
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 5 * time.Minute},
		limits:     DefaultBatchLimits,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List fetches one page of a collection. An empty cursor asks for the first page.
func (c *Client) List(ctx context.Context, kind Kind, cursor string) (Page, error) {
	endpoint := "/api/v1/media/" + string(kind) + "s"
	if cursor != "" {
		endpoint += "?cursor=" + url.QueryEscape(cursor)
	}

	var resp struct {
		Images     []Asset `json:"images"`
		Videos     []Asset `json:"videos"`
		NextCursor *string `json:"nextCursor"`
		HasMore    bool    `json:"hasMore"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &resp); err != nil {
		return Page{}, err
	}

	page := Page{Assets: resp.Images, HasMore: resp.HasMore}
	if kind == KindVideo {
		page.Assets = resp.Videos
	}
	if resp.NextCursor != nil {
		page.NextCursor = *resp.NextCursor
	}
	return page, nil
}

// Loader returns the page loader of a collection, for a Feed
func (c *Client) Loader(kind Kind) PageLoader {
	return func(ctx context.Context, cursor string) (Page, error) {
		return c.List(ctx, kind, cursor)
	}
}

// Usage fetches the account quota
func (c *Client) Usage(ctx context.Context) (Usage, error) {
	var usage Usage
	if err := c.do(ctx, http.MethodGet, "/api/v1/usage/", "", nil, &usage); err != nil {
		return Usage{}, err
	}
	return usage, nil
}

// Upload sends a single file
func (c *Client) Upload(ctx context.Context, kind Kind, file File) (Asset, error) {
	if err := ValidateBatch(kind, c.limits[kind], []File{file}); err != nil {
		return Asset{}, err
	}
	body, contentType := multipartBody(kind, "file", []File{file})

	var resp struct {
		Data Asset `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/upload/", contentType, body, &resp); err != nil {
		return Asset{}, err
	}
	return resp.Data, nil
}

// UploadBatch sends files in one request. They are uploaded in order and the
// batch stops at the first failure, see APIError.Uploaded. Limit violations
// known up front are returned as ErrValidation without calling the API.
func (c *Client) UploadBatch(ctx context.Context, kind Kind, files []File) ([]Asset, error) {
	if err := ValidateBatch(kind, c.limits[kind], files); err != nil {
		return nil, err
	}
	body, contentType := multipartBody(kind, "files", files)

	var resp struct {
		Data []Asset `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/upload/batch", contentType, body, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// multipartBody streams the form through a pipe, files are never held in memory.
// The transport closes the reader when the request ends, which stops the writer.
func multipartBody(kind Kind, field string, files []File) (io.Reader, string) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	contentType := writer.FormDataContentType()

	go func() {
		pw.CloseWithError(writeParts(writer, kind, field, files))
	}()

	return pr, contentType
}

func writeParts(writer *multipart.Writer, kind Kind, field string, files []File) error {
	if err := writer.WriteField("type", string(kind)); err != nil {
		return err
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(field, file.Name)
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file.Body); err != nil {
			return fmt.Errorf("failed to read %s: %w", file.Name, err)
		}
	}
	return writer.Close()
}

func (c *Client) do(ctx context.Context, method, endpoint, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error         string  `json:"error"`
		Message       string  `json:"message"`
		Details       string  `json:"details"`
		Uploaded      []Asset `json:"uploaded"`
		FailedFile    string  `json:"failedFile"`
		ExceededAfter string  `json:"exceededAfter"`
	}
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		apiErr.Message = http.StatusText(resp.StatusCode)
		return apiErr
	}

	apiErr.Message = body.Error
	if body.Message != "" {
		apiErr.Message += ": " + body.Message
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	apiErr.Details = body.Details
	apiErr.Uploaded = body.Uploaded
	apiErr.FailedFile = body.FailedFile
	apiErr.ExceededAfter = body.ExceededAfter
	return apiErr
}
