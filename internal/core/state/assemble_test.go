// internal/core/state/assemble_test.go
package state

import (
	"testing"

	"github.com/hateftavakkoli/MongooseIM/internal/compiler"
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

func TestAssemble_LastWins(t *testing.T) {
	res := &compiler.Result{
		Tenants: []string{"a.example", "b.example"},
		Options: []types.Option{
			types.TenantDirective{Key: "auth_method", Tenant: "a.example", Value: []string{"rdbms"}},
			types.TenantDirective{Key: "auth_method", Tenant: "b.example", Value: []string{"rdbms"}},
			types.TenantDirective{Key: "auth_method", Tenant: "b.example", Value: []string{"anonymous"}},
			types.GlobalDirective{Key: "loglevel", Value: "warning"},
		},
	}

	st := Assemble(res)

	v, ok := st.TenantOption("a.example", "auth_method")
	if !ok || v.([]string)[0] != "rdbms" {
		t.Errorf("a.example auth_method = %v, want rdbms", v)
	}
	v, ok = st.TenantOption("b.example", "auth_method")
	if !ok || v.([]string)[0] != "anonymous" {
		t.Errorf("b.example auth_method = %v, want the later anonymous", v)
	}
}

func TestAssemble_FromCompiledDocument(t *testing.T) {
	res := compiler.Compile(map[string]any{
		"general": map[string]any{"hosts": []any{"a.example", "b.example"}},
		"auth":    map[string]any{"methods": []any{"rdbms"}},
		"host_config": []any{
			map[string]any{
				"host": "b.example",
				"auth": map[string]any{"methods": []any{"anonymous"}},
			},
		},
	})
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}

	st := Assemble(&res)

	v, _ := st.TenantOption("a.example", "auth_method")
	if v.([]string)[0] != "rdbms" {
		t.Errorf("a.example = %v, want the global rdbms", v)
	}
	v, _ = st.TenantOption("b.example", "auth_method")
	if v.([]string)[0] != "anonymous" {
		t.Errorf("b.example = %v, want the host_config anonymous", v)
	}
}

// A module section overridden inline must end up with the inline value,
// even though "modules" sorts after "host_config" at the root.
func TestAssemble_HostConfigModuleWins(t *testing.T) {
	res := compiler.Compile(map[string]any{
		"general": map[string]any{"hosts": []any{"a.example", "b.example"}},
		"modules": map[string]any{
			"mod_bosh": map[string]any{"inactivity": 30},
		},
		"host_config": []any{
			map[string]any{
				"host": "b.example",
				"modules": map[string]any{
					"mod_bosh": map[string]any{"inactivity": 99},
				},
			},
		},
	})
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}

	st := Assemble(&res)

	v, _ := st.TenantOption("a.example", "module.mod_bosh")
	if got := v.(map[string]any)["inactivity"]; got != 30 {
		t.Errorf("a.example mod_bosh inactivity = %v, want the global 30", got)
	}
	v, _ = st.TenantOption("b.example", "module.mod_bosh")
	if got := v.(map[string]any)["inactivity"]; got != 99 {
		t.Errorf("b.example mod_bosh inactivity = %v, want the inline 99", got)
	}
}

func TestState_TenantOptionFallsBackToGlobal(t *testing.T) {
	res := &compiler.Result{
		Tenants: []string{"a.example"},
		Options: []types.Option{
			types.GlobalDirective{Key: "loglevel", Value: "warning"},
		},
	}
	st := Assemble(res)

	v, ok := st.TenantOption("a.example", "loglevel")
	if !ok || v != "warning" {
		t.Errorf("TenantOption() = %v, %v, want the global value", v, ok)
	}
	if _, ok := st.TenantOption("a.example", "missing"); ok {
		t.Errorf("TenantOption(missing) = true, want false")
	}
}

func TestState_Keys(t *testing.T) {
	res := &compiler.Result{
		Tenants: []string{"a.example"},
		Options: []types.Option{
			types.GlobalDirective{Key: "zeta", Value: 1},
			types.GlobalDirective{Key: "alpha", Value: 2},
			types.TenantDirective{Key: "tenant_only", Tenant: "a.example", Value: 3},
		},
	}
	st := Assemble(res)

	keys := st.Keys()
	if len(keys) != 2 || keys[0] != "alpha" || keys[1] != "zeta" {
		t.Errorf("Keys() = %v, want sorted [alpha zeta]", keys)
	}
	tkeys := st.TenantKeys("a.example")
	if len(tkeys) != 3 || tkeys[1] != "tenant_only" {
		t.Errorf("TenantKeys() = %v, want [alpha tenant_only zeta]", tkeys)
	}
}

func TestStore_Swap(t *testing.T) {
	first := Assemble(&compiler.Result{Tenants: []string{"a.example"}})
	second := Assemble(&compiler.Result{Tenants: []string{"b.example"}})

	store := NewStore(first)
	if got := store.Current(); got != first {
		t.Fatalf("Current() = %p, want the initial state", got)
	}
	store.Replace(second)
	if got := store.Current(); got != second {
		t.Fatalf("Current() = %p, want the replaced state", got)
	}
}
