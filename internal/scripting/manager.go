package scripting

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Manager owns one sandboxed LState holding every loaded script.
//
// Each call gets a fresh instruction budget, so a runaway hook fails alone
// and later calls still run.
type Manager struct {
	mu     sync.Mutex
	L      *lua.LState
	cancel context.CancelFunc
	limit  int
	logger *zap.Logger
}

// NewManager creates a Manager with an empty sandbox.
//
// Precondition: instLimit >= 0 (0 selects DefaultInstructionLimit); logger
// must be non-nil.
// Postcondition: the rpg module is registered.
func NewManager(instLimit int, logger *zap.Logger) *Manager {
	L, cancel := NewSandboxedState(instLimit)
	m := &Manager{L: L, cancel: cancel, limit: instLimit, logger: logger}
	m.RegisterModules(L)
	return m
}

// LoadDir executes every *.lua file in dir in lexicographic order.
//
// Precondition: dir must be a readable directory.
func (m *Manager) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, path := range files {
		m.rearm()
		if err := m.L.DoFile(path); err != nil {
			return fmt.Errorf("scripting: loading %q: %w", path, err)
		}
		m.logger.Debug("lua script loaded", zap.String("path", path))
	}
	return nil
}

// LoadString executes src as a chunk named name.
func (m *Manager) LoadString(name, src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rearm()
	fn, err := m.L.Load(strings.NewReader(src), name)
	if err != nil {
		return fmt.Errorf("scripting: compiling %q: %w", name, err)
	}
	m.L.Push(fn)
	if err := m.L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("scripting: running %q: %w", name, err)
	}
	return nil
}

// Call invokes the global Lua function fn and returns its first result.
//
// Postcondition: returns an error if fn is not a function or raises; the
// state remains usable either way.
func (m *Manager) Call(fn string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		return lua.LNil, fmt.Errorf("scripting: %q is not a function", fn)
	}
	m.rearm()
	if err := m.L.CallByParam(lua.P{Fn: f, NRet: 1, Protect: true}, args...); err != nil {
		return lua.LNil, fmt.Errorf("scripting: calling %q: %w", fn, err)
	}
	ret := m.L.Get(-1)
	m.L.Pop(1)
	return ret, nil
}

// TickDamage calls fn(max_health, health, duration) and reads an integer
// back. ok is false, with a warning logged, when the call fails or returns
// something other than a finite number.
func (m *Manager) TickDamage(fn string, maxHealth, health, duration int) (int, bool) {
	ret, err := m.Call(fn, lua.LNumber(maxHealth), lua.LNumber(health), lua.LNumber(duration))
	if err != nil {
		m.logger.Warn("scripting: tick hook failed", zap.String("hook", fn), zap.Error(err))
		return 0, false
	}
	n, isNum := ret.(lua.LNumber)
	if !isNum || math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
		m.logger.Warn("scripting: tick hook returned a non-number",
			zap.String("hook", fn),
			zap.String("type", ret.Type().String()),
		)
		return 0, false
	}
	return int(math.Floor(float64(n))), true
}

// Close releases the Lua state.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cancel()
	m.L.Close()
}

// rearm replaces the opcode budget. Callers hold mu.
func (m *Manager) rearm() {
	m.cancel()
	m.cancel = Arm(m.L, m.limit)
}
