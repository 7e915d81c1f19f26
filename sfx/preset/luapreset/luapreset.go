// Package luapreset runs preset samplers written in Lua.
//
// A script defines a global function generate(rng) that returns a table
// shaped like the JSON form of params.SoundSpec:
//
//	function generate(rng)
//	  return {
//	    pitch = { frequency = rng:float(200, 800) },
//	    tone = { waveform = "square", square_duty = rng:float(0.1, 0.5) },
//	    amplitude = { sustain = 0.05, decay = rng:float(0.1, 0.3) },
//	  }
//	end
//
// The rng argument is the only entropy source available to the script. It
// offers float(a, b), bool(p), int(a, b) and stream(). Lua's own math.random
// and the file-loading builtins are removed. A table without a seed gets one
// drawn from the same rng after generate returns.
package luapreset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/algo-sfx/sfx/params"
	"github.com/cwbudde/algo-sfx/sfx/rng"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// EntryPoint is the global function a script must define.
const EntryPoint = "generate"

// ErrNoEntryPoint is returned when a script does not define generate.
var ErrNoEntryPoint = errors.New("luapreset: script does not define function " + EntryPoint)

const rngTypeName = "sfx.rng"

// Script is a compiled preset script. It holds no interpreter state, so one
// Script may generate from several goroutines at once.
type Script struct {
	name  string
	proto *lua.FunctionProto
}

// Load compiles source. name is used in error messages.
func Load(name, source string) (*Script, error) {
	chunk, err := parse.Parse(strings.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("luapreset: parse %s: %w", name, err)
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("luapreset: compile %s: %w", name, err)
	}

	return &Script{name: name, proto: proto}, nil
}

// LoadFile reads and compiles the script at path.
func LoadFile(path string) (*Script, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("luapreset: %w", err)
	}

	return Load(path, string(src))
}

// Name returns the name the script was loaded under.
func (s *Script) Name() string { return s.name }

// Generate runs generate(rng) and converts its result to a spec.
func (s *Script) Generate(r *rng.Rand) (params.SoundSpec, error) {
	return s.GenerateContext(context.Background(), r)
}

// GenerateContext is Generate with a context that aborts long-running
// scripts.
func (s *Script) GenerateContext(ctx context.Context, r *rng.Rand) (params.SoundSpec, error) {
	L, err := newState()
	if err != nil {
		return params.SoundSpec{}, err
	}
	defer L.Close()

	L.SetContext(ctx)

	L.Push(L.NewFunctionFromProto(s.proto))
	if err := L.PCall(0, 0, nil); err != nil {
		return params.SoundSpec{}, fmt.Errorf("luapreset: run %s: %w", s.name, err)
	}

	fn, ok := L.GetGlobal(EntryPoint).(*lua.LFunction)
	if !ok {
		return params.SoundSpec{}, fmt.Errorf("%w (%s)", ErrNoEntryPoint, s.name)
	}

	err = L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, newRand(L, r))
	if err != nil {
		return params.SoundSpec{}, fmt.Errorf("luapreset: %s: %w", s.name, err)
	}

	ret := L.Get(-1)
	L.Pop(1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return params.SoundSpec{}, fmt.Errorf("luapreset: %s: %s returned %s, want table",
			s.name, EntryPoint, ret.Type())
	}

	spec, err := toSpec(tbl)
	if err != nil {
		return params.SoundSpec{}, fmt.Errorf("luapreset: %s: %w", s.name, err)
	}

	if tbl.RawGetString("seed") == lua.LNil {
		spec.Seed = r.Stream()
	}

	return spec, nil
}

// newState opens a sandboxed interpreter with the base, table, string and
// math libraries.
func newState() (*lua.LState, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := L.CallByParam(lua.P{Fn: L.NewFunction(lib.open), NRet: 0, Protect: true},
			lua.LString(lib.name))
		if err != nil {
			L.Close()
			return nil, fmt.Errorf("luapreset: open %q library: %w", lib.name, err)
		}
	}

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	if math, ok := L.GetGlobal(lua.MathLibName).(*lua.LTable); ok {
		math.RawSetString("random", lua.LNil)
		math.RawSetString("randomseed", lua.LNil)
	}

	mt := L.NewTypeMetatable(rngTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), rngMethods))

	return L, nil
}

// toSpec decodes tbl through the JSON codec so that scripts get the same
// field names, defaults and validation as spec files.
func toSpec(tbl *lua.LTable) (params.SoundSpec, error) {
	v, err := toGo(tbl, "")
	if err != nil {
		return params.SoundSpec{}, err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return params.SoundSpec{}, err
	}

	return params.Decode(bytes.NewReader(data), params.JSON)
}

func toGo(v lua.LValue, path string) (interface{}, error) {
	switch v := v.(type) {
	case lua.LBool:
		return bool(v), nil
	case lua.LNumber:
		return float64(v), nil
	case lua.LString:
		return string(v), nil
	case *lua.LTable:
		out := map[string]interface{}{}
		var err error
		v.ForEach(func(key, value lua.LValue) {
			if err != nil {
				return
			}
			k, ok := key.(lua.LString)
			if !ok {
				err = fmt.Errorf("%s: non-string key %s", pathOrRoot(path), key)
				return
			}
			out[string(k)], err = toGo(value, joinPath(path, string(k)))
		})
		if err != nil {
			return nil, err
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%s: unsupported value of type %s", pathOrRoot(path), v.Type())
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}

func pathOrRoot(path string) string {
	if path == "" {
		return "result"
	}

	return path
}
