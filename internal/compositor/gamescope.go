package compositor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-ps"
)

// DefaultGamescopectl is the path used when no override is given.
const DefaultGamescopectl = "/usr/bin/gamescopectl"

// gamescopeProcess is the compositor process name looked for before pushing.
const gamescopeProcess = "gamescope"

// Gamescope drives gamescope's looks system through gamescopectl.
// `gamescopectl set_look <path>` loads a .cube file and applies it across all
// sessions; an empty argument resets the setting. The setting is persistent
// on the compositor side, so ClearLook is safe to call when nothing is
// applied.
type Gamescope struct {
	binPath string
	logger  hclog.Logger
}

// NewGamescope creates a gamescopectl-backed compositor interface. An empty
// binPath selects DefaultGamescopectl.
func NewGamescope(binPath string, logger hclog.Logger) *Gamescope {
	if binPath == "" {
		binPath = DefaultGamescopectl
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Gamescope{binPath: binPath, logger: logger}
}

// SetLook applies the LUT file at path.
func (g *Gamescope) SetLook(ctx context.Context, path string) error {
	g.warnIfNotRunning()
	return g.setLook(ctx, path)
}

// ClearLook resets the looks system. Idempotent.
func (g *Gamescope) ClearLook(ctx context.Context) error {
	return g.setLook(ctx, "")
}

func (g *Gamescope) setLook(ctx context.Context, arg string) error {
	cmd := exec.CommandContext(ctx, g.binPath, "set_look", arg)
	cmd.Env = commandEnv()

	out, err := cmd.CombinedOutput()
	g.logger.Debug("gamescopectl set_look", "arg", arg, "output", strings.TrimSpace(string(out)))
	if err != nil {
		return fmt.Errorf("failed to run %s set_look: %w", g.binPath, err)
	}
	return nil
}

// warnIfNotRunning logs when no gamescope process is visible. The push is
// still attempted: gamescopectl reports its own error, and process listing
// can be unavailable.
func (g *Gamescope) warnIfNotRunning() {
	procs, err := ps.Processes()
	if err != nil {
		g.logger.Debug("failed to list processes", "error", err)
		return
	}
	for _, p := range procs {
		if p.Executable() == gamescopeProcess {
			return
		}
	}
	g.logger.Warn("no gamescope process found, LUT push may have no effect")
}

// commandEnv scrubs the environment for gamescopectl: the plugin loader's
// LD_LIBRARY_PATH breaks its library resolution, and XDG_RUNTIME_DIR must be
// set for it to find the display.
func commandEnv() []string {
	env := os.Environ()
	out := make([]string, 0, len(env)+1)
	haveRuntimeDir := false
	for _, kv := range env {
		switch {
		case strings.HasPrefix(kv, "LD_LIBRARY_PATH="):
			out = append(out, "LD_LIBRARY_PATH=")
		case kv == "XDG_RUNTIME_DIR=":
			// dropped, replaced with the default below
		case strings.HasPrefix(kv, "XDG_RUNTIME_DIR="):
			haveRuntimeDir = true
			out = append(out, kv)
		default:
			out = append(out, kv)
		}
	}
	if !haveRuntimeDir {
		out = append(out, "XDG_RUNTIME_DIR=/run/user/1000")
	}
	return out
}
