/*
File   : lox/environment/environment.go
Package: environment

The lexical environment chain. Grounded on the teacher's scope.Scope
(map + parent pointer, Define/Get/Assign chain-walking; the map is
allocated up front in New)
with one deliberate divergence: the teacher's Scope.Copy() snapshots
bindings at closure-creation time, which breaks spec.md §8 property 7
(closures must observe later mutation of their defining environment —
the mk()/inc() counter idiom in spec.md §8 scenario 3). This
Environment is always captured and shared by pointer, never copied, so
mutations after capture remain visible to every closure over it.
*/
package environment

import (
	"fmt"

	"github.com/ckessler/lox/objects"
)

// Environment is one lexical scope: a set of bindings plus an optional
// parent. The global scope has a nil Parent.
type Environment struct {
	Parent *Environment
	values map[string]objects.Value
}

// New creates an Environment nested inside parent. parent == nil creates
// the global environment.
func New(parent *Environment) *Environment {
	return &Environment{Parent: parent, values: make(map[string]objects.Value)}
}

// Define unconditionally binds name in this scope, shadowing any binding
// of the same name in an outer scope (spec §3: "define unconditionally
// inserts at the current scope").
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get reads name by walking the parent chain outward. It returns an
// error matching spec §4.3's "Undefined variable 'NAME'." wording when
// the name is bound nowhere in the chain.
func (e *Environment) Get(name string) (objects.Value, error) {
	if v, ok := e.values[name]; ok {
		return v, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign walks the parent chain to find the nearest scope that already
// defines name and overwrites the binding there, leaving every other
// scope untouched. It errors with the same wording as Get when name is
// undefined anywhere in the chain (spec §4.3).
func (e *Environment) Assign(name string, value objects.Value) error {
	if _, ok := e.values[name]; ok {
		e.values[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
