package theme

import (
	"path/filepath"
	"reflect"
	"testing"

	"shopfront/internal/apperr"
	"shopfront/internal/localstore"
)

func manager(t *testing.T) *Manager {
	t.Helper()
	local, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return NewManager(local)
}

func strp(s string) *string { return &s }

func TestFailedPersistLeavesSettings(t *testing.T) {
	local, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager(local)

	// With the store gone, no mutation may take effect in memory either.
	if err := local.Close(); err != nil {
		t.Fatal(err)
	}
	if err := m.ApplyPreset("dark"); err == nil {
		t.Fatal("want persist error")
	}
	if got := m.Current().Preset; got != "default" {
		t.Fatalf("preset changed despite failed write: %s", got)
	}
	if err := m.UpdateColors(ColorsPatch{Background: strp("#000000")}); err == nil {
		t.Fatal("want persist error")
	}
	if bg := m.CurrentColors().Background; bg != "#ffffff" {
		t.Fatalf("colors changed despite failed write: %s", bg)
	}
}

func TestApplyPresetDark(t *testing.T) {
	m := manager(t)
	if err := m.ApplyPreset("dark"); err != nil {
		t.Fatal(err)
	}
	if bg := m.CurrentColors().Background; bg != "#111827" {
		t.Fatalf("want #111827, got %s", bg)
	}
	if m.Current().Preset != "dark" {
		t.Fatal("preset name should update")
	}
}

func TestApplyPresetUnknownRejected(t *testing.T) {
	m := manager(t)
	before := m.Current()
	err := m.ApplyPreset("neon")
	if !apperr.Is(err, apperr.CodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Current()) {
		t.Fatal("settings must not change on a rejected preset")
	}
}

// updatePartial keeps untouched fields; import reverts them to defaults.
func TestImportVersusPartialUpdateAsymmetry(t *testing.T) {
	m := manager(t)
	// customize two fields away from defaults
	if err := m.UpdateColors(ColorsPatch{
		Primary:    strp("#101010"),
		Background: strp("#202020"),
	}); err != nil {
		t.Fatal(err)
	}

	// partial update touches only one; the other keeps its custom value
	if err := m.UpdateColors(ColorsPatch{Primary: strp("#303030")}); err != nil {
		t.Fatal(err)
	}
	c := m.CurrentColors()
	if c.Primary != "#303030" || c.Background != "#202020" {
		t.Fatalf("partial update clobbered untouched field: %+v", c)
	}

	// import overlays defaults: the untouched custom field reverts
	if err := m.Import(`{"colors":{"primary":"#404040"}}`); err != nil {
		t.Fatal(err)
	}
	def := Defaults().Colors
	c = m.CurrentColors()
	if c.Primary != "#404040" {
		t.Fatalf("imported field not applied: %+v", c)
	}
	if c.Background != def.Background {
		t.Fatalf("import must revert absent fields to defaults, got %s want %s", c.Background, def.Background)
	}
}

func TestImportBadJSONLeavesSettings(t *testing.T) {
	m := manager(t)
	_ = m.ApplyPreset("ocean")
	before := m.Current()

	err := m.Import(`{"colors": nope}`)
	if !apperr.Is(err, apperr.CodeInvalidFormat) {
		t.Fatalf("want invalid-format error, got %v", err)
	}
	if !reflect.DeepEqual(before, m.Current()) {
		t.Fatal("failed import must not change settings")
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	m := manager(t)
	_ = m.ApplyPreset("sunset")
	_ = m.UpdateSpacing(SpacingPatch{Radius: intp(12)})

	out, err := m.Export()
	if err != nil {
		t.Fatal(err)
	}
	before := m.Current()
	if err := m.Import(out); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(before, m.Current()) {
		t.Fatal("import(export()) should be a no-op")
	}
}

func intp(n int) *int { return &n }

func TestSectionPatches(t *testing.T) {
	m := manager(t)
	if err := m.UpdateTypography(TypographyPatch{BaseSize: intp(18)}); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateAnimations(AnimationsPatch{Enabled: boolp(false)}); err != nil {
		t.Fatal(err)
	}
	if err := m.UpdateEffects(EffectsPatch{Blur: boolp(true)}); err != nil {
		t.Fatal(err)
	}
	s := m.Current()
	if s.Typography.BaseSize != 18 {
		t.Fatal("typography patch lost")
	}
	if s.Typography.FontFamily != Defaults().Typography.FontFamily {
		t.Fatal("unpatched typography field changed")
	}
	if s.Animations.Enabled {
		t.Fatal("animations patch lost")
	}
	if !s.Effects.Blur || !s.Effects.Shadows {
		t.Fatalf("effects wrong: %+v", s.Effects)
	}
}

// Settings survive a restart: a new manager over the same database picks
// up the persisted state, overlaid on defaults.
func TestPersistAcrossReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")

	local, err := localstore.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager(local)
	if err := m.ApplyPreset("dark"); err != nil {
		t.Fatal(err)
	}
	want := m.Current()
	if err := local.Close(); err != nil {
		t.Fatal(err)
	}

	local2, err := localstore.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer local2.Close()
	m2 := NewManager(local2)
	if !reflect.DeepEqual(want, m2.Current()) {
		t.Fatalf("settings lost across reopen:\nwant %+v\ngot  %+v", want, m2.Current())
	}
}

func boolp(b bool) *bool { return &b }
