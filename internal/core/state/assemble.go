// internal/core/state/assemble.go

// Package state turns a compiled option set into the runtime
// configuration tables the server reads, and keeps a live copy that
// can be swapped atomically on reload.
package state

import (
	"sort"

	"github.com/hateftavakkoli/MongooseIM/internal/compiler"
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

// State is an assembled configuration: one global table plus one table
// per tenant. Values are the parsed option values, keyed by option key.
type State struct {
	Tenants   []string
	Global    map[string]any
	PerTenant map[string]map[string]any
	Overrides []types.Override
}

// Assemble folds a compiled result into lookup tables. Options are
// applied in production order and a later option for the same key and
// tenant replaces an earlier one, so tenant-specific sections override
// the tenant-independent declarations they shadow.
func Assemble(res *compiler.Result) *State {
	st := &State{
		Tenants:   append([]string(nil), res.Tenants...),
		Global:    make(map[string]any),
		PerTenant: make(map[string]map[string]any, len(res.Tenants)),
		Overrides: append([]types.Override(nil), res.Overrides...),
	}
	for _, t := range st.Tenants {
		st.PerTenant[t] = make(map[string]any)
	}
	for _, o := range res.Options {
		switch d := o.(type) {
		case types.GlobalDirective:
			st.Global[d.Key] = d.Value
		case types.TenantDirective:
			tab, ok := st.PerTenant[d.Tenant]
			if !ok {
				tab = make(map[string]any)
				st.PerTenant[d.Tenant] = tab
			}
			tab[d.Key] = d.Value
		}
	}
	return st
}

// GlobalOption returns the value of a tenant-independent option.
func (s *State) GlobalOption(key string) (any, bool) {
	v, ok := s.Global[key]
	return v, ok
}

// TenantOption returns a tenant's value for key, falling back to the
// global table when the tenant has no entry of its own.
func (s *State) TenantOption(tenant, key string) (any, bool) {
	if tab, ok := s.PerTenant[tenant]; ok {
		if v, present := tab[key]; present {
			return v, true
		}
	}
	v, ok := s.Global[key]
	return v, ok
}

// Keys returns the sorted global option keys, for diagnostics output.
func (s *State) Keys() []string {
	keys := make([]string, 0, len(s.Global))
	for k := range s.Global {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TenantKeys returns the sorted union of the global keys and the
// tenant's own keys, the full vocabulary TenantOption can answer for.
func (s *State) TenantKeys(tenant string) []string {
	seen := make(map[string]struct{}, len(s.Global))
	for k := range s.Global {
		seen[k] = struct{}{}
	}
	for k := range s.PerTenant[tenant] {
		seen[k] = struct{}{}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
