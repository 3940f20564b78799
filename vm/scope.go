package vm

import "sort"

// Scope is a table of variables; a Machine keys its scopes by name. Variables are held by pointer so a
// reference loaded onto the target stack stays valid while it is updated.
type Scope struct {
	locals map[string]*Value
}

func NewScope() *Scope {
	return &Scope{locals: make(map[string]*Value)}
}

func (scope *Scope) Get(name string) (*Value, bool) {
	local, ok := scope.locals[name]
	return local, ok
}

func (scope *Scope) Set(name string, v Value) {
	scope.locals[name] = &v
}

func (scope *Scope) Names() []string {
	names := make([]string, 0, len(scope.locals))
	for name := range scope.locals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
