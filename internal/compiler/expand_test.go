// internal/compiler/expand_test.go
package compiler

import (
	"testing"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

func TestTenantList(t *testing.T) {
	opts := []types.Option{
		types.GlobalDirective{Key: "loglevel", Value: "info"},
		types.GlobalDirective{Key: "hosts", Value: []string{"a.example", "b.example"}},
	}
	got := TenantList(opts)
	if len(got) != 2 || got[0] != "a.example" || got[1] != "b.example" {
		t.Fatalf("TenantList() = %v, want [a.example b.example]", got)
	}

	if got := TenantList(nil); got != nil {
		t.Errorf("TenantList(nil) = %v, want nil", got)
	}
}

func TestExpandTenants_Order(t *testing.T) {
	fn := types.DeferredTenantFn(func(tenant string) []types.Option {
		return []types.Option{types.TenantDirective{Key: "k", Tenant: tenant, Value: 1}}
	})
	opts := []types.Option{
		types.GlobalDirective{Key: "before", Value: 0},
		fn,
		types.GlobalDirective{Key: "after", Value: 0},
	}

	got := ExpandTenants(opts, []string{"a.example", "b.example"})
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	// expanded results first, in tenant order, then the plain directives
	first, ok := got[0].(types.TenantDirective)
	if !ok || first.Tenant != "a.example" {
		t.Errorf("got[0] = %#v, want TenantDirective for a.example", got[0])
	}
	second, ok := got[1].(types.TenantDirective)
	if !ok || second.Tenant != "b.example" {
		t.Errorf("got[1] = %#v, want TenantDirective for b.example", got[1])
	}
	if d, ok := got[2].(types.GlobalDirective); !ok || d.Key != "before" {
		t.Errorf("got[2] = %#v, want the first plain directive", got[2])
	}
}

// A tenant-independent declaration inside [general] must reach every
// declared tenant as its own directive.
func TestCompile_DeferredExpansion(t *testing.T) {
	res := Compile(map[string]any{
		"general": map[string]any{
			"hosts":                 []any{"a.example", "b.example"},
			"replaced_wait_timeout": 5000,
		},
	})
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}

	var seen []string
	for _, o := range res.Options {
		if d, ok := o.(types.TenantDirective); ok && d.Key == "replaced_wait_timeout" {
			if d.Value != 5000 {
				t.Errorf("value for %s = %v, want 5000", d.Tenant, d.Value)
			}
			seen = append(seen, d.Tenant)
		}
	}
	if len(seen) != 2 || seen[0] != "a.example" || seen[1] != "b.example" {
		t.Fatalf("expanded tenants = %v, want [a.example b.example]", seen)
	}
}

// host_config output expands after the global output for the same key,
// so assembly's last-wins fold gives the inline tenant section
// precedence.
func TestCompile_HostConfigFollowsGlobal(t *testing.T) {
	res := Compile(map[string]any{
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

	var forB []types.TenantDirective
	for _, o := range res.Options {
		if d, ok := o.(types.TenantDirective); ok && d.Key == "auth_method" && d.Tenant == "b.example" {
			forB = append(forB, d)
		}
	}
	if len(forB) != 2 {
		t.Fatalf("directives for b.example = %v, want the global one then the inline one", forB)
	}
	if got := forB[0].Value.([]string); got[0] != "rdbms" {
		t.Errorf("first directive = %v, want rdbms", got)
	}
	if got := forB[1].Value.([]string); got[0] != "anonymous" {
		t.Errorf("second directive = %v, want anonymous", got)
	}

	for _, o := range res.Options {
		if d, ok := o.(types.TenantDirective); ok && d.Tenant == "a.example" && d.Key == "auth_method" {
			if got := d.Value.([]string); got[0] != "rdbms" {
				t.Errorf("a.example auth_method = %v, want rdbms only", got)
			}
		}
	}
}

// "modules" sorts after "host_config" at the root, so precedence must
// come from the walk itself, not from key order: the inline module
// override still has to expand after the global module section.
func TestCompile_HostConfigModuleOverride(t *testing.T) {
	res := Compile(map[string]any{
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

	var forB []int
	for _, o := range res.Options {
		if d, ok := o.(types.TenantDirective); ok && d.Key == "module.mod_bosh" && d.Tenant == "b.example" {
			forB = append(forB, d.Value.(map[string]any)["inactivity"].(int))
		}
	}
	if len(forB) != 2 || forB[0] != 30 || forB[1] != 99 {
		t.Fatalf("mod_bosh inactivity for b.example = %v, want [30 99]", forB)
	}

	for _, o := range res.Options {
		if d, ok := o.(types.TenantDirective); ok && d.Key == "module.mod_bosh" && d.Tenant == "a.example" {
			if got := d.Value.(map[string]any)["inactivity"]; got != 30 {
				t.Errorf("a.example mod_bosh inactivity = %v, want 30", got)
			}
		}
	}
}
