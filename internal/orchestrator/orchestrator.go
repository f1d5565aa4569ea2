// Package orchestrator reconciles the stored configuration against the
// compositor's applied LUT.
package orchestrator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/jfrconley/decky-colorblind/internal/compositor"
	"github.com/jfrconley/decky-colorblind/internal/config"
	"github.com/jfrconley/decky-colorblind/internal/lut"
)

// Orchestrator performs the apply operation: read configuration, regenerate
// the LUT and push or clear it through the compositor interface. Applies for
// the same scope are serialized; different scopes proceed independently.
type Orchestrator struct {
	store  *config.Store
	comp   compositor.Interface
	lutDir string
	logger hclog.Logger

	mu     sync.Mutex
	scopes map[string]*sync.Mutex
}

// New creates an orchestrator writing LUT files under lutDir.
func New(store *config.Store, comp compositor.Interface, lutDir string, logger hclog.Logger) *Orchestrator {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Orchestrator{
		store:  store,
		comp:   comp,
		lutDir: lutDir,
		logger: logger,
		scopes: make(map[string]*sync.Mutex),
	}
}

// DefaultLUTDir returns the default directory for generated LUT files.
func DefaultLUTDir() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user cache dir: %w", err)
	}
	return filepath.Join(dir, "colorblind"), nil
}

// Apply reads the configuration for scope and reconciles the compositor:
// disabled configurations clear the active LUT (idempotently), enabled ones
// regenerate and push a fresh LUT. The LUT is always regenerated; staleness
// is never assumed. A build failure leaves the currently applied LUT
// untouched.
func (o *Orchestrator) Apply(ctx context.Context, scope string) error {
	scope = config.NormalizeScope(scope)

	lock := o.scopeLock(scope)
	lock.Lock()
	defer lock.Unlock()

	cfg, err := o.store.Read(scope)
	if err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}

	if !cfg.Enabled {
		o.logger.Info("correction disabled, clearing LUT", "scope", scope)
		if err := o.comp.ClearLook(ctx); err != nil {
			return fmt.Errorf("failed to clear LUT: %w", err)
		}
		return nil
	}

	o.logger.Info("generating LUT",
		"scope", scope,
		"cb_type", cfg.CBType,
		"operation", cfg.Operation,
		"strength", cfg.Strength,
		"lut_size", cfg.LUTSize)

	l, err := lut.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build LUT: %w", err)
	}

	path := o.lutPath(scope)
	if err := l.WriteCube(path); err != nil {
		return err
	}

	if err := o.comp.SetLook(ctx, path); err != nil {
		return fmt.Errorf("failed to push LUT: %w", err)
	}

	o.logger.Info("LUT applied", "path", path, "fingerprint", l.Fingerprint[:12])
	return nil
}

func (o *Orchestrator) lutPath(scope string) string {
	return filepath.Join(o.lutDir, fmt.Sprintf("lut-%s.cube", sanitizeScope(scope)))
}

func (o *Orchestrator) scopeLock(scope string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	lock, ok := o.scopes[scope]
	if !ok {
		lock = &sync.Mutex{}
		o.scopes[scope] = lock
	}
	return lock
}

// sanitizeScope keeps scope-derived file names free of path separators.
func sanitizeScope(scope string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, scope)
}
