package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"folio.dev/internal/storage"
)

// DefaultSettings are returned for keys that were never stored
var DefaultSettings = map[string]json.RawMessage{
	"theme": json.RawMessage(`"dark"`),
}

// SettingsService is a best-effort key-value store for visitor settings.
// Backend failures are logged and reported as the default value or false;
// they never reach the caller as errors.
type SettingsService struct {
	store    storage.Store
	defaults map[string]json.RawMessage
}

// NewSettingsService wraps store with the given defaults
func NewSettingsService(store storage.Store, defaults map[string]json.RawMessage) *SettingsService {
	return &SettingsService{store: store, defaults: defaults}
}

// Get returns the stored value for key, or def when it is missing or the
// backend fails. A nil def falls back to the service defaults.
func (s *SettingsService) Get(ctx context.Context, key string, def json.RawMessage) json.RawMessage {
	if def == nil {
		def = s.defaults[key]
	}

	value, err := s.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			slog.Warn("settings read failed", "key", key, "error", err)
		}
		return def
	}
	if !json.Valid(value) {
		slog.Warn("settings value is not valid JSON", "key", key)
		return def
	}
	return json.RawMessage(value)
}

// Set stores value under key and reports whether it succeeded
func (s *SettingsService) Set(ctx context.Context, key string, value json.RawMessage) bool {
	if key == "" || !json.Valid(value) {
		return false
	}
	if err := s.store.Set(ctx, key, value); err != nil {
		slog.Warn("settings write failed", "key", key, "error", err)
		return false
	}
	return true
}

// Remove deletes key and reports whether it succeeded
func (s *SettingsService) Remove(ctx context.Context, key string) bool {
	if err := s.store.Delete(ctx, key); err != nil {
		slog.Warn("settings delete failed", "key", key, "error", err)
		return false
	}
	return true
}
