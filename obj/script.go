package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/pixel/prefabs"
)

// MotionScript is a compiled tengo script that reads and writes a fixed set
// of float globals. Scripts run on the game loop only, so one compiled copy
// is shared by every object using it.
type MotionScript struct {
	name     string
	compiled *tengo.Compiled
}

// CompileMotionScript loads name from prefabs/scripts and declares vars as
// float globals.
func CompileMotionScript(name string, vars ...string) (*MotionScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("obj: load script %s: %w", name, err)
	}
	return compileMotionSource(name, src, vars...)
}

func compileMotionSource(name string, src []byte, vars ...string) (*MotionScript, error) {
	script := tengo.NewScript(src)
	for _, v := range vars {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("obj: script %s: declare %s: %w", name, v, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", name, err)
	}
	return &MotionScript{name: name, compiled: compiled}, nil
}

// Run sets in, runs the script and returns the requested outputs.
func (s *MotionScript) Run(in map[string]any, out ...string) (map[string]float64, error) {
	for k, v := range in {
		if err := s.compiled.Set(k, v); err != nil {
			return nil, fmt.Errorf("obj: script %s: set %s: %w", s.name, k, err)
		}
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("obj: run script %s: %w", s.name, err)
	}
	res := make(map[string]float64, len(out))
	for _, k := range out {
		res[k] = s.compiled.Get(k).Float()
	}
	return res, nil
}

// script returns the cached compiled script for name, compiling on first use.
func (m *Map) script(name string, vars ...string) (*MotionScript, error) {
	if s, ok := m.scripts[name]; ok {
		return s, nil
	}
	s, err := CompileMotionScript(name, vars...)
	if err != nil {
		return nil, err
	}
	m.scripts[name] = s
	return s, nil
}
