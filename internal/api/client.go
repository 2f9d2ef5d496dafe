package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// DefaultBaseURL is the local development backend.
const DefaultBaseURL = "http://127.0.0.1:8080"

// Client is a stateless request/response wrapper around the assessment
// backend. It performs no retries; failures propagate to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. An empty baseURL falls
// back to DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// CheckHealth probes the service root. Any transport error or non-success
// status maps to ErrServiceUnavailable.
func (c *Client) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ErrServiceUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ErrServiceUnavailable
	}
	return nil
}

// ProcessText submits one text utterance for analysis.
func (c *Client) ProcessText(ctx context.Context, text string) (*AnalysisResult, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("marshal text request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/process-text", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build text request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doAnalysis(req)
}

// ProcessSpeech uploads a finalized audio payload as a multipart form under
// the "audio" field and returns the analysis, including the transcription.
func (c *Client) ProcessSpeech(ctx context.Context, audio []byte) (*AnalysisResult, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("audio", "recording.webm")
	if err != nil {
		return nil, fmt.Errorf("build audio form: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, fmt.Errorf("write audio form: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close audio form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/process-speech", &buf)
	if err != nil {
		return nil, fmt.Errorf("build audio request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doAnalysis(req)
}

func (c *Client) doAnalysis(req *http.Request) (*AnalysisResult, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ProcessingError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, processingError(resp)
	}

	var result AnalysisResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &ProcessingError{Message: fmt.Sprintf("decode response: %v", err)}
	}
	return &result, nil
}

// processingError builds a ProcessingError from a failed response, keeping
// the server's error text when the body decodes.
func processingError(resp *http.Response) *ProcessingError {
	perr := &ProcessingError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return perr
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Error != "" {
			perr.Message = eb.Error
		} else if eb.Message != "" {
			perr.Message = eb.Message
		}
	}
	return perr
}

// ListHistories fetches the backend's session directory.
func (c *Client) ListHistories(ctx context.Context) ([]HistorySummary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/chat-histories", nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list chat histories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("list chat histories: status %d", resp.StatusCode)
	}

	var items []HistorySummary
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode chat histories: %w", err)
	}
	return items, nil
}

// GetHistory fetches one persisted session by id.
func (c *Client) GetHistory(ctx context.Context, id string) (*HistoryRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/chat-histories/"+id, nil)
	if err != nil {
		return nil, fmt.Errorf("build history request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch chat history %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch chat history %s: status %d", id, resp.StatusCode)
	}

	var rec HistoryRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode chat history %s: %w", id, err)
	}
	if rec.ID == "" {
		rec.ID = id
	}
	return &rec, nil
}

// DeleteHistory requests deletion of one persisted session.
func (c *Client) DeleteHistory(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete,
		c.baseURL+"/api/chat-histories/"+id, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete chat history %s: %w", id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delete chat history %s: status %d", id, resp.StatusCode)
	}
	return nil
}
