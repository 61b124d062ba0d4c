package engine

import (
	lua "github.com/yuin/gopher-lua"
)

// toGoValue converts an engine result to its native form. The command
// protocol only carries scalars back: string, float64, bool, or nil.
// Anything richer (tables, functions, userdata) collapses to nil; the
// engine serializes structured replies as JSON strings instead.
func toGoValue(lv lua.LValue) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		return float64(v)
	case lua.LString:
		return string(v)
	default:
		return nil
	}
}
