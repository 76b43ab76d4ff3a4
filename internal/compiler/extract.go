// internal/compiler/extract.go
package compiler

import (
	"sort"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Deep error extraction.
 *
 * Handlers compose: a fold may bury a child result inside a list or a
 * map it returns as a directive value. Before a traversal counts as
 * successful, every produced structure is scanned recursively for
 * values of the error shape, collecting all of them in document order
 * without stopping at the first finding.
 *
 * Typed records never contain errors (decoding only happens after the
 * error check in the walk primitives), so the scan covers the generic
 * shapes only: options, option lists, value lists and maps. Map keys
 * are visited in sorted order, consistent with table traversal.
 */

// ExtractErrors collects every error record reachable from opts.
func ExtractErrors(opts []types.Option) []types.Error {
	var errs []types.Error
	for _, o := range opts {
		errs = scanOption(o, errs)
	}
	return errs
}

func scanOption(o types.Option, errs []types.Error) []types.Error {
	switch d := o.(type) {
	case types.Error:
		errs = append(errs, d)
	case types.GlobalDirective:
		errs = scanValue(d.Value, errs)
	case types.TenantDirective:
		errs = scanValue(d.Value, errs)
	}
	return errs
}

func scanValue(v any, errs []types.Error) []types.Error {
	switch x := v.(type) {
	case types.Error:
		errs = append(errs, x)
	case types.Option:
		errs = scanOption(x, errs)
	case []types.Option:
		for _, o := range x {
			errs = scanOption(o, errs)
		}
	case []any:
		for _, e := range x {
			errs = scanValue(e, errs)
		}
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			errs = scanValue(x[k], errs)
		}
	}
	return errs
}
