// Package settings exposes the terminal preferences as a typed struct over a
// flat string key space.
package settings

import (
	// Go Internal Packages
	"context"
	"strconv"

	// Local Packages
	errors "tap-terminal/errors"
	models "tap-terminal/models"

	// External Packages
	"go.uber.org/zap"
)

// Store persists raw setting values.
type Store interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, values map[string]string) error
	Delete(ctx context.Context, keys ...string) error
}

type Service struct {
	store  Store
	logger *zap.Logger
}

func NewService(store Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Load returns the settings with defaults for absent keys. A present flag is
// true only when stored as "true".
func (s *Service) Load(ctx context.Context) (models.Settings, error) {
	raw, err := s.store.All(ctx)
	if err != nil {
		return models.Settings{}, errors.E(errors.Internal, "failed to load settings", err)
	}

	out := models.DefaultSettings()
	if v, ok := raw[models.KeyTheme]; ok && (v == models.ThemeLight || v == models.ThemeDark) {
		out.Theme = v
	}
	flag(raw, models.KeyTippingEnabled, &out.TippingEnabled)
	flag(raw, models.KeyOrderOptionEnabled, &out.OrderOptionEnabled)
	flag(raw, models.KeyCatalogOptionEnabled, &out.CatalogOptionEnabled)
	flag(raw, models.KeyMemoEnabled, &out.MemoEnabled)
	flag(raw, models.KeyScanOptionEnabled, &out.ScanOptionEnabled)
	out.SelectedSite = raw[models.KeySelectedSite]
	return out, nil
}

func flag(raw map[string]string, key string, dst *bool) {
	if v, ok := raw[key]; ok {
		*dst = v == "true"
	}
}

// Update writes the fields set in patch and returns the resulting settings.
func (s *Service) Update(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	values := make(map[string]string)
	if patch.Theme != nil {
		if *patch.Theme != models.ThemeLight && *patch.Theme != models.ThemeDark {
			ve := errors.ValidationErrs()
			ve.Add(models.KeyTheme, "must be light or dark")
			return models.Settings{}, errors.ValidationFailedErr(ve.Err())
		}
		values[models.KeyTheme] = *patch.Theme
	}
	put := func(key string, v *bool) {
		if v != nil {
			values[key] = strconv.FormatBool(*v)
		}
	}
	put(models.KeyTippingEnabled, patch.TippingEnabled)
	put(models.KeyOrderOptionEnabled, patch.OrderOptionEnabled)
	put(models.KeyCatalogOptionEnabled, patch.CatalogOptionEnabled)
	put(models.KeyMemoEnabled, patch.MemoEnabled)
	put(models.KeyScanOptionEnabled, patch.ScanOptionEnabled)
	if patch.SelectedSite != nil {
		values[models.KeySelectedSite] = *patch.SelectedSite
	}

	if len(values) > 0 {
		if err := s.store.Set(ctx, values); err != nil {
			return models.Settings{}, errors.E(errors.Internal, "failed to save settings", err)
		}
		s.logger.Debug("settings updated", zap.Int("fields", len(values)))
	}
	return s.Load(ctx)
}

// SelectSite remembers the site the operator signed in to.
func (s *Service) SelectSite(ctx context.Context, site string) error {
	_, err := s.Update(ctx, models.SettingsPatch{SelectedSite: &site})
	return err
}

// Logout forgets the theme and the selected site.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, models.KeyTheme, models.KeySelectedSite); err != nil {
		return errors.E(errors.Internal, "failed to clear settings", err)
	}
	return nil
}
