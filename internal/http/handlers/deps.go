package handlers

import (
	"shopfront/internal/coordinator"
	"shopfront/internal/state"
	"shopfront/internal/theme"
)

type Deps struct {
	CatalogHandler *CatalogHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	AuthHandler    *AuthHandler
	StoreHandler   *StoreHandler
	ThemeHandler   *ThemeHandler
}

func NewDeps(co *coordinator.Coordinator, st *state.Store, th *theme.Manager) *Deps {
	return &Deps{
		CatalogHandler: &CatalogHandler{Coord: co, Store: st, Theme: th},
		CartHandler:    &CartHandler{Coord: co, Store: st, Theme: th},
		OrderHandler:   &OrderHandler{Coord: co, Store: st, Theme: th},
		AuthHandler:    &AuthHandler{Coord: co, Store: st, Theme: th},
		StoreHandler:   &StoreHandler{Coord: co, Store: st, Theme: th},
		ThemeHandler:   &ThemeHandler{Theme: th, Store: st},
	}
}
