package api

import "context"

func (a *apiImpl) DarkMode() bool {
	return a.services.PreferenceService.DarkMode()
}

func (a *apiImpl) SetDarkMode(ctx context.Context, on bool) error {
	return a.services.PreferenceService.SetDarkMode(ctx, on)
}

// ToggleDarkMode flips the theme and returns the new setting.
func (a *apiImpl) ToggleDarkMode(ctx context.Context) (bool, error) {
	on := !a.DarkMode()
	return on, a.SetDarkMode(ctx, on)
}
