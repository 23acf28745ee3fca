package api

import (
	"context"

	"taskboard/internal/domain"
)

func (a *apiImpl) SetFilter(filter domain.Filter) error {
	parsed, err := domain.ParseFilter(string(filter))
	if err != nil {
		return err
	}
	a.state.Filter = parsed
	a.refresh()
	return nil
}

func (a *apiImpl) SetSearch(term string) {
	a.state.Search = term
	a.refresh()
}

// View returns the view computed after the last change.
func (a *apiImpl) View(ctx context.Context) (domain.View, error) {
	if err := a.requireSession("list tasks"); err != nil {
		return domain.View{}, err
	}
	return a.view, nil
}
