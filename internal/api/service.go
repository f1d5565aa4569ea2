// Package api exposes the backend to the settings frontend: three
// operations (read, update, apply) returning a uniform Result, served over
// the go-plugin RPC protocol.
package api

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/jfrconley/decky-colorblind/internal/config"
	"github.com/jfrconley/decky-colorblind/internal/orchestrator"
)

// Result is the uniform response envelope for every frontend operation.
type Result struct {
	OK     bool                     `json:"ok"`
	Error  string                   `json:"error,omitempty"`
	Config *config.CorrectionConfig `json:"config,omitempty"`
}

// Service implements the frontend operations on top of the configuration
// store and the apply orchestrator. Update and apply stay separate: writes
// never trigger regeneration, the frontend commits pending edits with an
// explicit apply.
type Service struct {
	store  *config.Store
	orch   *orchestrator.Orchestrator
	logger hclog.Logger
}

// NewService creates the frontend-facing service.
func NewService(store *config.Store, orch *orchestrator.Orchestrator, logger hclog.Logger) *Service {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Service{store: store, orch: orch, logger: logger}
}

// ReadConfiguration returns the configuration for a scope. A scope with no
// entry resolves through the store's fallback chain, so this never fails on
// absence.
func (s *Service) ReadConfiguration(scope string) Result {
	cfg, err := s.store.Read(scope)
	if err != nil {
		return failure(err)
	}
	return Result{OK: true, Config: &cfg}
}

// UpdateConfiguration validates and persists a configuration for a scope.
// It does not apply it.
func (s *Service) UpdateConfiguration(cfg config.CorrectionConfig, scope string) Result {
	if err := s.store.Update(scope, cfg); err != nil {
		return failure(err)
	}
	s.logger.Info("configuration updated", "scope", config.NormalizeScope(scope))
	return Result{OK: true}
}

// ApplyConfiguration reconciles the compositor with the stored configuration
// for a scope.
func (s *Service) ApplyConfiguration(ctx context.Context, scope string) Result {
	if err := s.orch.Apply(ctx, scope); err != nil {
		return failure(err)
	}
	return Result{OK: true}
}

func failure(err error) Result {
	return Result{OK: false, Error: err.Error()}
}
