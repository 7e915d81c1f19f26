package luapreset

import (
	"github.com/cwbudde/algo-sfx/sfx/rng"
	lua "github.com/yuin/gopher-lua"
)

var rngMethods = map[string]lua.LGFunction{
	"float":  rngFloat,
	"bool":   rngBool,
	"int":    rngInt,
	"stream": rngStream,
}

func newRand(L *lua.LState, r *rng.Rand) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = r
	L.SetMetatable(ud, L.GetTypeMetatable(rngTypeName))

	return ud
}

func checkRand(L *lua.LState) *rng.Rand {
	ud := L.CheckUserData(1)
	if r, ok := ud.Value.(*rng.Rand); ok {
		return r
	}

	L.ArgError(1, "rng expected")

	return nil
}

// rng:float(a, b) draws from [a, b). Without arguments it draws from [0, 1).
// Bounds may be given in either order.
func rngFloat(L *lua.LState) int {
	r := checkRand(L)
	a := float64(L.OptNumber(2, 0))
	b := float64(L.OptNumber(3, 1))
	if a > b {
		a, b = b, a
	}

	L.Push(lua.LNumber(r.Float(a, b)))

	return 1
}

// rng:bool(p) is true with probability p, 0.5 by default.
func rngBool(L *lua.LState) int {
	r := checkRand(L)
	p := float64(L.OptNumber(2, 0.5))
	L.Push(lua.LBool(r.Bool(p)))

	return 1
}

// rng:int(a, b) draws from the inclusive range [a, b].
func rngInt(L *lua.LState) int {
	r := checkRand(L)
	a := L.CheckInt(2)
	b := L.CheckInt(3)
	if a > b {
		L.ArgError(3, "max must be >= min")
		return 0
	}

	L.Push(lua.LNumber(r.Int(a, b)))

	return 1
}

// rng:stream() returns a fresh 53-bit seed, exact in a Lua number.
func rngStream(L *lua.LState) int {
	r := checkRand(L)
	L.Push(lua.LNumber(r.Stream() >> 11))

	return 1
}
