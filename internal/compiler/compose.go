// internal/compiler/compose.go
package compiler

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Composition and deferral helpers shared by the section handlers.
 *
 * Folds work on the flattened child results of a walk: each child is a
 * directive (key, value) pair, collected back into a map and, for the
 * sections with a fixed record shape, decoded into a typed record with
 * mapstructure. Decoding happens only after the error check in the
 * walk primitives, so error records never end up inside typed records.
 *
 * Deferral wraps clean directives into pure functions of a tenant
 * identity. Error records are kept outside the wrapper so they stay
 * visible to extraction without expanding anything.
 */

// pairs collects the (key, value) pairs of flattened child directives.
func pairs(opts []types.Option) map[string]any {
	m := make(map[string]any, len(opts))
	for _, o := range opts {
		if d, ok := o.(types.GlobalDirective); ok && d.Key != "" {
			m[d.Key] = d.Value
		}
	}
	return m
}

// values collects the bare values produced at list positions.
func values(opts []types.Option) []any {
	var vs []any
	for _, o := range opts {
		if d, ok := o.(types.GlobalDirective); ok && d.Key == "" {
			vs = append(vs, d.Value)
		}
	}
	return vs
}

// decodeRecord decodes folded child pairs into a typed record.
func decodeRecord(m map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "cfg",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(m); err != nil {
		return fmt.Errorf("assembling section: %w", err)
	}
	return nil
}

// deferAll wraps clean directives into a deferred per-tenant value that
// reissues each of them scoped to the tenant it is applied to.
func deferAll(opts []types.Option) []types.Option {
	var plain []types.GlobalDirective
	var out []types.Option
	for _, o := range opts {
		switch d := o.(type) {
		case types.GlobalDirective:
			plain = append(plain, d)
		case types.DeferredTenantFn:
			out = append(out, d)
		default:
			out = append(out, o)
		}
	}
	if len(plain) > 0 {
		out = append(out, types.DeferredTenantFn(func(tenant string) []types.Option {
			scoped := make([]types.Option, 0, len(plain))
			for _, d := range plain {
				scoped = append(scoped, types.TenantDirective{Key: d.Key, Tenant: tenant, Value: d.Value})
			}
			return scoped
		}))
	}
	return out
}

// restrictToTenant narrows directives (and already-deferred values) so
// they fire only for the named tenant. Used by host_config handlers,
// where the tenant is known from the path tag but expansion still runs
// through the same deferred machinery so assembly sees host_config
// directives after their global counterparts.
func restrictToTenant(host string, opts []types.Option) []types.Option {
	var out []types.Option
	for _, o := range opts {
		switch d := o.(type) {
		case types.GlobalDirective:
			dir := d
			out = append(out, types.DeferredTenantFn(func(tenant string) []types.Option {
				if tenant != host {
					return nil
				}
				return []types.Option{types.TenantDirective{Key: dir.Key, Tenant: tenant, Value: dir.Value}}
			}))
		case types.DeferredTenantFn:
			fn := d
			out = append(out, types.DeferredTenantFn(func(tenant string) []types.Option {
				if tenant != host {
					return nil
				}
				return fn(tenant)
			}))
		default:
			out = append(out, o)
		}
	}
	return out
}
