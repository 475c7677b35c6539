package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Veraticus/paydirt/internal/config"
	"github.com/Veraticus/paydirt/internal/llm"
	"github.com/Veraticus/paydirt/internal/model"
	"github.com/Veraticus/paydirt/internal/service"
	"github.com/Veraticus/paydirt/internal/storage"
	"github.com/Veraticus/paydirt/internal/workflow"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initLLM builds the configured LLM client. The API key falls back to the
// provider's conventional environment variable.
func initLLM() (llm.Client, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "openai"
	}

	apiKey := viper.GetString("llm.api_key")
	if apiKey == "" {
		switch strings.ToLower(provider) {
		case "openai":
			apiKey = os.Getenv("OPENAI_API_KEY")
		case "anthropic":
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
	}

	return llm.NewClient(llm.Config{
		Provider:    provider,
		APIKey:      apiKey,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
	})
}

// initEngine wires storage and the LLM collaborators into a workflow engine.
func initEngine(store service.Storage) (*workflow.Engine, error) {
	client, err := initLLM()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	cfg := workflow.DefaultConfig()
	if attempts := viper.GetInt("retry.max_attempts"); attempts > 0 {
		cfg.Retry.MaxAttempts = attempts
	}
	if window := viper.GetInt("chat.history_window"); window > 0 {
		cfg.HistoryWindow = window
	}
	if timeout := viper.GetDuration("llm.extract_timeout"); timeout > 0 {
		cfg.ExtractTimeout = timeout
	}

	return workflow.NewWithConfig(store, llm.NewExtractor(client), client, cfg), nil
}

// readDocument loads a timesheet attachment from disk and guesses its MIME
// type from the extension.
func readDocument(path string) (*model.Document, error) {
	data, err := os.ReadFile(config.ExpandPath(path))
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", path, err)
	}

	mime := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".gif":
		mime = "image/gif"
	case ".webp":
		mime = "image/webp"
	case ".pdf":
		mime = "application/pdf"
	}

	return &model.Document{
		Name: filepath.Base(path),
		MIME: mime,
		Data: data,
	}, nil
}

func newSessionID() string {
	return fmt.Sprintf("chat-%s", time.Now().UTC().Format("20060102-150405"))
}
