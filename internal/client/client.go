// ABOUTME: HTTP client for the media generation backend
// ABOUTME: Normalizes every failure into a display-ready error message

package client

import (
	"bytes"
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

	"github.com/medvista/mediastudio-cli/internal/debuglog"
)

// Fallback messages used when the backend supplies no detail. One per
// operation, matching what the service's own web UI shows.
const (
	loginFallback     = "Login failed. Please check your credentials."
	imageFallback     = "Failed to generate image. Please try again."
	videoFallback     = "Failed to generate video. Please try again."
	translateFallback = "Failed to translate video. Please try again."
)

// Client is the API client for the media generation backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client with the given base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			// Generation calls can take minutes; the backend offers no
			// progress stream, so the round trip is simply long.
			Timeout: 10 * time.Minute,
		},
	}
}

// LoginResponse is the /api/login success payload.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ImageResponse is the /api/image_generation success payload.
type ImageResponse struct {
	ImageURL string `json:"image_url"`
}

// VideoResponse is the /api/video_generation success payload.
type VideoResponse struct {
	VideoURL string `json:"video_url"`
}

// TranslationResponse is the /api/video_translation success payload.
type TranslationResponse struct {
	TranslatedVideoURL string `json:"translated_video_url"`
}

// errorDetail is the error body shape the backend uses.
type errorDetail struct {
	Detail string `json:"detail"`
}

// Login authenticates with the backend and returns the access token.
// Credentials are sent form-encoded, as the token endpoint requires.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.requestError(ctx, "login", err, loginFallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.responseError(resp, "login", loginFallback)
	}

	var login LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		debuglog.Error("login decode", err)
		return "", errors.New(loginFallback)
	}
	if login.AccessToken == "" {
		return "", errors.New(loginFallback)
	}

	return login.AccessToken, nil
}

// GenerateImage submits a prompt to the image generation endpoint.
func (c *Client) GenerateImage(ctx context.Context, token, prompt string) (*ImageResponse, error) {
	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/image_generation", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, "image_generation", err, imageFallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp, "image_generation", imageFallback)
	}

	var image ImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&image); err != nil {
		debuglog.Error("image_generation decode", err)
		return nil, errors.New(imageFallback)
	}

	return &image, nil
}

// GenerateVideo submits a prompt, target language, and optional story theme
// to the video generation endpoint.
func (c *Client) GenerateVideo(ctx context.Context, token, prompt, targetLanguage, story string) (*VideoResponse, error) {
	body, err := json.Marshal(map[string]string{
		"prompt":          prompt,
		"target_language": targetLanguage,
		"story":           story,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/video_generation", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, "video_generation", err, videoFallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp, "video_generation", videoFallback)
	}

	var video VideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&video); err != nil {
		debuglog.Error("video_generation decode", err)
		return nil, errors.New(videoFallback)
	}

	return &video, nil
}

// TranslateVideo uploads a video file for translation into the target
// language. The file is sent as a multipart form field named video_file.
func (c *Client) TranslateVideo(ctx context.Context, token, fileName string, file io.Reader, targetLanguage string) (*TranslationResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("video_file", fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read video file: %w", err)
	}
	if err := mw.WriteField("target_language", targetLanguage); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/video_translation", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	setBearer(req, token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.requestError(ctx, "video_translation", err, translateFallback)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.responseError(resp, "video_translation", translateFallback)
	}

	var translation TranslationResponse
	if err := json.NewDecoder(resp.Body).Decode(&translation); err != nil {
		debuglog.Error("video_translation decode", err)
		return nil, errors.New(translateFallback)
	}

	return &translation, nil
}

// setBearer attaches the session token when one is present. Unauthenticated
// calls carry no credential at all.
func setBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// requestError converts transport failures to a display-ready message.
func (c *Client) requestError(ctx context.Context, op string, err error, fallback string) error {
	debuglog.Error(op, err)
	if ctx.Err() == context.Canceled {
		return errors.New("request canceled")
	}
	if ctx.Err() == context.DeadlineExceeded {
		return errors.New("request timed out")
	}
	return errors.New(fallback)
}

// responseError extracts the backend's detail message from a non-2xx
// response, falling back to the per-operation message when absent.
func (c *Client) responseError(resp *http.Response, op string, fallback string) error {
	debuglog.Warn("%s returned status %d", op, resp.StatusCode)

	var detail errorDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil || detail.Detail == "" {
		return errors.New(fallback)
	}
	return errors.New(detail.Detail)
}
