package orchestrator

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jfrconley/decky-colorblind/internal/colour"
	"github.com/jfrconley/decky-colorblind/internal/config"
)

// recordingCompositor records every SetLook/ClearLook call in order.
type recordingCompositor struct {
	mu    sync.Mutex
	calls []string // "set:<path>" or "clear"
	paths []string
}

func (r *recordingCompositor) SetLook(_ context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "set:"+path)
	r.paths = append(r.paths, path)
	return nil
}

func (r *recordingCompositor) ClearLook(context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "clear")
	return nil
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, *config.Store, *recordingCompositor) {
	t.Helper()
	dir := t.TempDir()
	store := config.NewStore(filepath.Join(dir, "config.json"))
	comp := &recordingCompositor{}
	return New(store, comp, filepath.Join(dir, "luts"), nil), store, comp
}

func enabledConfig() config.CorrectionConfig {
	return config.CorrectionConfig{
		Enabled:   true,
		CBType:    colour.Deuteranope,
		Operation: colour.OpHueShift,
		Strength:  0.5,
		LUTSize:   4,
	}
}

func TestApplyPushesLUT(t *testing.T) {
	o, store, comp := newTestOrchestrator(t)

	if err := store.Update("", enabledConfig()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := o.Apply(context.Background(), ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if len(comp.calls) != 1 || comp.calls[0][:4] != "set:" {
		t.Fatalf("compositor calls = %v, want one set", comp.calls)
	}
	if _, err := os.Stat(comp.paths[0]); err != nil {
		t.Errorf("pushed LUT file missing: %v", err)
	}
}

func TestApplyDisabledClears(t *testing.T) {
	o, store, comp := newTestOrchestrator(t)

	cfg := enabledConfig()
	cfg.Enabled = false
	if err := store.Update("", cfg); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	// Clearing twice in a row must be fine: removing an absent LUT is not
	// an error.
	for i := 0; i < 2; i++ {
		if err := o.Apply(context.Background(), ""); err != nil {
			t.Fatalf("Apply() #%d error = %v", i+1, err)
		}
	}

	if len(comp.calls) != 2 || comp.calls[0] != "clear" || comp.calls[1] != "clear" {
		t.Errorf("compositor calls = %v, want two clears", comp.calls)
	}
}

func TestApplyDefaultScopeIsDisabled(t *testing.T) {
	// A never-written store falls back to the backend default, which is
	// disabled, so apply must clear rather than push.
	o, _, comp := newTestOrchestrator(t)

	if err := o.Apply(context.Background(), ""); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(comp.calls) != 1 || comp.calls[0] != "clear" {
		t.Errorf("compositor calls = %v, want one clear", comp.calls)
	}
}

func TestApplyIdempotent(t *testing.T) {
	o, store, comp := newTestOrchestrator(t)

	if err := store.Update("", enabledConfig()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := o.Apply(context.Background(), ""); err != nil {
			t.Fatalf("Apply() #%d error = %v", i+1, err)
		}
	}

	if len(comp.paths) != 2 {
		t.Fatalf("compositor pushes = %d, want 2", len(comp.paths))
	}
	if comp.paths[0] != comp.paths[1] {
		t.Errorf("pushed paths differ: %q vs %q", comp.paths[0], comp.paths[1])
	}

	first, err := os.ReadFile(comp.paths[0])
	if err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(comp.paths[1])
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("two applies of an unchanged configuration produced different LUTs")
	}
}

func TestApplyInvalidSizeLeavesCompositorUntouched(t *testing.T) {
	o, store, comp := newTestOrchestrator(t)

	// Update() would reject this entry, so write it straight to disk to
	// force a builder-time failure.
	raw := []byte(`{"scopes":{"GLOBAL":{"enabled":true,"cb_type":"deuteranope","operation":"correct","strength":1,"lut_size":8}}}`)
	if err := os.WriteFile(store.Path(), raw, 0o600); err != nil {
		t.Fatal(err)
	}

	if err := o.Apply(context.Background(), ""); err == nil {
		t.Fatal("Apply() with unbuildable config succeeded, want error")
	}
	if len(comp.calls) != 0 {
		t.Errorf("compositor touched on failed build: %v", comp.calls)
	}
}

func TestApplyScopesSerializeIndependently(t *testing.T) {
	o, store, comp := newTestOrchestrator(t)

	if err := store.Update("", enabledConfig()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := store.Update("42", enabledConfig()); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 4; i++ {
		for _, scope := range []string{"", "42"} {
			wg.Add(1)
			go func(scope string) {
				defer wg.Done()
				errs <- o.Apply(context.Background(), scope)
			}(scope)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Errorf("concurrent Apply() error = %v", err)
		}
	}
	if len(comp.paths) != 8 {
		t.Errorf("compositor pushes = %d, want 8", len(comp.paths))
	}
}
