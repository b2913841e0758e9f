package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"time"

	"dhatucraft-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client relays image uploads to the hosted media service.
type Client struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
}

type UploadResult struct {
	Ref string `json:"ref"`
	URL string `json:"url"`
}

func NewClient(uploadURL, apiKey string) *Client {
	if apiKey == "" {
		logger.L().Warn("media API key is empty")
	}

	return &Client{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Upload posts the file as multipart form data and returns the stored
// object reference. The object name is randomized to avoid collisions.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	objectName := uuid.New().String() + path.Ext(filename)

	log := logger.FromCtx(ctx).With(
		zap.String("filename", filename),
		zap.String("object_name", objectName),
	)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", objectName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &buf)
	if err != nil {
		log.Error("failed creating upload request", zap.Error(err))
		return nil, err
	}

	req.SetBasicAuth(c.apiKey, "")
	req.Header.Set("Content-Type", mw.FormDataContentType())

	log.Info("uploading image to media service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("media upload request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read media response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("media service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, fmt.Errorf("media upload error: %s", string(bodyBytes))
	}

	var result UploadResult
	if err := json.Unmarshal(bodyBytes, &result); err != nil {
		return nil, fmt.Errorf("failed to decode media response: %w", err)
	}
	if result.Ref == "" {
		result.Ref = objectName
	}

	log.Info("image uploaded", zap.String("ref", result.Ref))

	return &result, nil
}
