// Package settings persists the panel preferences as one named document in
// the key-value store.
package settings

import (
	"context"
	"fmt"

	"github.com/luna-panel/luna/internal/platform/httpx"
	"github.com/luna-panel/luna/internal/platform/kv"
)

const settingsKey = "luna:settings"

// Settings is the panel preferences document. AdvancedMode switches the
// credit calculator between its single-line and multi-line views.
type Settings struct {
	Theme                string `json:"theme" validate:"omitempty,oneof=light dark"`
	AdvancedMode         bool   `json:"advanced_mode"`
	DefaultDurationYears int    `json:"default_duration_years" validate:"omitempty,min=1,max=3"`
}

// Defaults returns the settings used before anything has been saved.
func Defaults() Settings {
	return Settings{
		Theme:                "light",
		DefaultDurationYears: 1,
	}
}

type Service struct {
	store *kv.Store
}

func NewService(store *kv.Store) *Service {
	return &Service{store: store}
}

// Get loads the stored settings, falling back to defaults when nothing has
// been saved yet.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	out := Defaults()
	found, err := s.store.Get(ctx, settingsKey, &out)
	if err != nil {
		return Defaults(), fmt.Errorf("load settings: %w: %w", httpx.ErrStorage, err)
	}
	if !found {
		return Defaults(), nil
	}
	return out, nil
}

// Put replaces the stored settings.
func (s *Service) Put(ctx context.Context, in Settings) error {
	if err := s.store.Set(ctx, settingsKey, in); err != nil {
		return fmt.Errorf("save settings: %w: %w", httpx.ErrStorage, err)
	}
	return nil
}
