package azure

import (
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Config for the Document Intelligence client.
type Config struct {
	Endpoint     string        // e.g. https://<resource>.cognitiveservices.azure.com
	APIKey       string        // if empty, falls back to env DOCUMENTINTELLIGENCE_API_KEY
	APIVersion   string        // default 2024-02-29-preview
	ModelID      string        // default prebuilt-layout
	Timeout      time.Duration // per HTTP call
	PollInterval time.Duration // delay between result polls
	MaxPolls     int           // polls before giving up
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("DOCUMENTINTELLIGENCE_API_KEY")
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-02-29-preview"
	}
	if cfg.ModelID == "" {
		cfg.ModelID = "prebuilt-layout"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxPolls <= 0 {
		cfg.MaxPolls = 90
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}
