// internal/compiler/expand.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Deferred per-tenant expansion.
 *
 * The tree walk is tenant-independent; sections that apply per tenant
 * produce deferred functions instead of concrete directives. Once the
 * walk is done, the tenant list is read from its one fixed location in
 * the produced output and every deferred function is applied to every
 * tenant. Deferred functions are pure over their tenant argument, so
 * expansion is referentially transparent and repeatable.
 */

// TenantList extracts the declared tenant identities from the raw
// option list. Returns nil when the document never produced a hosts
// directive (the missing section is reported by the walk itself).
func TenantList(opts []types.Option) []string {
	for _, o := range opts {
		if d, ok := o.(types.GlobalDirective); ok && d.Key == "hosts" {
			if hosts, ok := d.Value.([]string); ok {
				return hosts
			}
		}
	}
	return nil
}

// ExpandTenants applies every deferred value to every tenant. Expanded
// results come first, in the order the deferred values were produced,
// followed by the non-deferred directives. The root walk emits
// host_config output after every other section, so inline host_config
// output always follows the global output it overrides.
func ExpandTenants(opts []types.Option, tenants []string) []types.Option {
	var expanded []types.Option
	var plain []types.Option

	for _, o := range opts {
		if fn, ok := o.(types.DeferredTenantFn); ok {
			for _, t := range tenants {
				expanded = append(expanded, fn(t)...)
			}
			continue
		}
		plain = append(plain, o)
	}

	return append(expanded, plain...)
}
