package services

import (
	"context"

	"taskboard/internal/logging"
	"taskboard/internal/persistence"
)

// DefaultDarkMode applies until the user picks a theme.
const DefaultDarkMode = true

type preferenceServiceImpl struct {
	store    Store
	darkMode bool
}

// NewPreferenceService creates a new PreferenceService instance
func NewPreferenceService(store Store) PreferenceService {
	return &preferenceServiceImpl{store: store, darkMode: DefaultDarkMode}
}

func (p *preferenceServiceImpl) Load(ctx context.Context) {
	darkMode := DefaultDarkMode
	p.store.Read(ctx, persistence.KeyDarkMode, &darkMode)
	p.darkMode = darkMode
}

func (p *preferenceServiceImpl) DarkMode() bool {
	return p.darkMode
}

func (p *preferenceServiceImpl) SetDarkMode(ctx context.Context, on bool) error {
	p.darkMode = on
	if err := p.store.Write(ctx, persistence.KeyDarkMode, on); err != nil {
		logging.Warnf("could not save theme: %v", err)
		return err
	}
	return nil
}
