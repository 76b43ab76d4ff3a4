// internal/compiler/partition.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

// Partition splits a flat option list into plain directives, override
// requests, top-level error records and leftover deferred values.
// After expansion the deferred bucket must be empty; the driver turns
// anything found there into an error record. Partitioning an
// already-partitioned list is a no-op: each bucket re-partitions into
// itself.
func Partition(opts []types.Option) (plain []types.Option, overrides []types.Override, errs []types.Error, deferred []types.DeferredTenantFn) {
	for _, o := range opts {
		switch d := o.(type) {
		case types.Override:
			overrides = append(overrides, d)
		case types.Error:
			errs = append(errs, d)
		case types.DeferredTenantFn:
			deferred = append(deferred, d)
		default:
			plain = append(plain, o)
		}
	}
	return plain, overrides, errs, deferred
}
