package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// RegisterModules installs the rpg global table:
//
//	rpg.log(msg)        logs msg at info level
//	rpg.clamp(v, lo, hi) returns v limited to [lo, hi]
//
// Precondition: L must come from NewSandboxedState.
func (m *Manager) RegisterModules(L *lua.LState) {
	mod := L.NewTable()
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"log": func(L *lua.LState) int {
			m.logger.Info("lua", zap.String("message", L.CheckString(1)))
			return 0
		},
		"clamp": func(L *lua.LState) int {
			v, lo, hi := L.CheckNumber(1), L.CheckNumber(2), L.CheckNumber(3)
			L.Push(max(lo, min(v, hi)))
			return 1
		},
	})
	L.SetGlobal("rpg", mod)
}
