package theme

import (
	"encoding/json"
	"sync"

	"shopfront/internal/apperr"
	"shopfront/internal/localstore"
)

// Manager holds the live settings and writes every successful mutation to
// the theme-settings key. It is handed to consumers explicitly; there is
// no package-level singleton.
type Manager struct {
	mu    sync.Mutex
	local *localstore.Store
	cur   Settings
}

// NewManager loads persisted settings once, overlaying them on defaults
// the same way Import does. A missing or unreadable key means defaults.
func NewManager(local *localstore.Store) *Manager {
	m := &Manager{local: local, cur: Defaults()}
	if raw, ok, err := local.Get(localstore.KeyThemeSettings); err == nil && ok {
		if s, err := overlayDefaults(raw); err == nil {
			m.cur = s
		}
	}
	return m
}

func (m *Manager) Current() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur
}

func (m *Manager) CurrentColors() Colors {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur.Colors
}

func (m *Manager) CurrentGradients() Gradients {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cur.Gradients
}

// ApplyPreset swaps both palettes wholesale. An unknown name is rejected
// before anything changes.
func (m *Manager) ApplyPreset(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := presets[name]
	if !ok {
		return apperr.Validation("unknown theme preset: " + name)
	}
	next := m.cur
	next.Preset = name
	next.Colors = p.Colors
	next.Gradients = p.Gradients
	return m.commit(next)
}

func (m *Manager) UpdateColors(p ColorsPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Colors)
	return m.commit(next)
}

func (m *Manager) UpdateGradients(p GradientsPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Gradients)
	return m.commit(next)
}

func (m *Manager) UpdateTypography(p TypographyPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Typography)
	return m.commit(next)
}

func (m *Manager) UpdateSpacing(p SpacingPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Spacing)
	return m.commit(next)
}

func (m *Manager) UpdateAnimations(p AnimationsPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Animations)
	return m.commit(next)
}

func (m *Manager) UpdateEffects(p EffectsPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	next := m.cur
	p.apply(&next.Effects)
	return m.commit(next)
}

func (m *Manager) Export() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, err := json.MarshalIndent(m.cur, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Import replaces the settings with defaults overlaid by the given JSON.
// Fields absent from the payload revert to their defaults. That is
// deliberately different from the Update* methods, which leave absent
// fields at their current values. A parse failure changes nothing.
func (m *Manager) Import(raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := overlayDefaults(raw)
	if err != nil {
		return err
	}
	return m.commit(s)
}

func overlayDefaults(raw string) (Settings, error) {
	s := Defaults()
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, apperr.InvalidFormat("theme settings are not valid JSON", err)
	}
	return s, nil
}

// commit persists the staged settings, then makes them current. A failed
// write leaves the in-memory settings exactly as they were.
func (m *Manager) commit(next Settings) error {
	b, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := m.local.Set(localstore.KeyThemeSettings, string(b)); err != nil {
		return err
	}
	m.cur = next
	return nil
}
