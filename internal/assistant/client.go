package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/codigohunt/solutions-backend/internal/telemetry/tracing"
)

const (
	oneMinute        = 60
	replyCacheExpire = oneMinute * 10

	generateTimeout = 30 * time.Second
)

type ErrorKind string

const (
	ErrorKindAuth    ErrorKind = "auth"
	ErrorKindNetwork ErrorKind = "network"
	ErrorKindAPI     ErrorKind = "api"
)

// APIError is a classified generative-language API failure. The handler
// picks a fallback reply and tags it with Kind.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Cause      error
}

func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("assistant api error [%s]: %s", e.Kind, e.Cause)
	}
	return fmt.Sprintf("assistant api error [%s]: status %d", e.Kind, e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
	SafetySettings   []safetySetting  `json:"safetySettings"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client calls the hosted generative-language API. Identical prompts
// within the cache TTL are answered from the in-process cache.
type Client struct {
	apiURL     string
	apiKey     string
	cache      *freecache.Cache
	httpClient *http.Client
}

func NewClient(apiURL, apiKey string, httpClient *http.Client) *Client {
	megabyte := 1024 * 1024
	cacheSize := 10 * megabyte

	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		cache:      freecache.NewCache(cacheSize),
		httpClient: httpClient,
	}
}

func defaultSafetySettings() []safetySetting {
	return []safetySetting{
		{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
		{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	}
}

// Generate asks the API for a reply to the user message. Failures come
// back as *APIError, classified into auth, network or api.
func (c *Client) Generate(ctx context.Context, userMessage string) (reply string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "assistantClient.generate")
	defer span.End()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetStatus(codes.Ok, "reply-generated")
		}
	}()

	cacheKey := []byte(userMessage)
	if cachedReply, cacheErr := c.cache.Get(cacheKey); cacheErr == nil {
		log.Tracef("assistant reply for %q served from cache", userMessage)
		return string(cachedReply), nil
	}

	prompt := fmt.Sprintf(
		"%s\n\nUser Question: %s\n\nPlease provide a helpful response as Codigohunt Solutions' AI assistant. Keep responses concise but informative (under 200 words).",
		companyContext, userMessage,
	)

	reqBody := generateRequest{
		Contents: []requestContent{
			{Parts: []requestPart{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{
			Temperature:     0.7,
			TopK:            40,
			TopP:            0.95,
			MaxOutputTokens: 512,
		},
		SafetySettings: defaultSafetySettings(),
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal assistant request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	url := fmt.Sprintf("%s?key=%s", c.apiURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBytes))
	if err != nil {
		return "", fmt.Errorf("create assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &APIError{Kind: ErrorKindNetwork, Cause: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &APIError{Kind: ErrorKindNetwork, Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		kind := ErrorKindAPI
		if resp.StatusCode == http.StatusForbidden {
			kind = ErrorKindAuth
		}
		log.Errorf("assistant api status %d: %s", resp.StatusCode, respBytes)
		return "", &APIError{Kind: kind, StatusCode: resp.StatusCode}
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBytes, &genResp); err != nil {
		return "", &APIError{Kind: ErrorKindAPI, Cause: err}
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", &APIError{Kind: ErrorKindAPI, Cause: fmt.Errorf("empty candidates in response")}
	}

	reply = genResp.Candidates[0].Content.Parts[0].Text

	if err := c.cache.Set(cacheKey, []byte(reply), replyCacheExpire); err != nil {
		log.Errorf("failed to cache assistant reply: %s", err)
	}

	return reply, nil
}
