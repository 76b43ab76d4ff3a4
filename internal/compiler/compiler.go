// internal/compiler/compiler.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Compilation driver.
 *
 * Control flow: one tenant-independent walk of the whole tree, then
 * deferred per-tenant values are applied across the tenant set
 * discovered at general.hosts, then every error record is extracted
 * from the output. The pass always completes; the caller decides what
 * to do with a non-empty error list.
 *
 * The tenant set is never invented here: it is read from its one fixed
 * location in the already-produced output and nothing else.
 */

// Result is the terminal output of one compilation pass.
type Result struct {
	// Tenants is the declared tenant set, in document order.
	Tenants []string

	// Options holds the fully expanded directives (global and
	// per-tenant). No deferred value remains.
	Options []types.Option

	// Overrides are global override requests, handed to assembly
	// separately so they are applied after all directives.
	Overrides []types.Override

	// Errors is every error found anywhere in the output, including
	// errors buried inside composite directive values. The load is
	// successful only when this list is empty.
	Errors []types.Error
}

type compiler struct {
	table     []entry
	validator Validator
}

// Compile runs one compilation pass over doc with the default rule set.
func Compile(doc map[string]any) Result {
	return CompileWith(doc, DefaultValidator())
}

// CompileWith runs one compilation pass over doc using v as the
// semantic validator.
func CompileWith(doc map[string]any, v Validator) Result {
	c := &compiler{validator: v}
	c.table = c.buildTable()

	raw := c.process(types.Path{}, doc)

	tenants := TenantList(raw)
	expanded := ExpandTenants(raw, tenants)

	plain, overrides, _, leftover := Partition(expanded)

	errs := ExtractErrors(expanded)
	for range leftover {
		errs = append(errs, types.Error{
			What:   types.WhatMalformedOption,
			Class:  types.PhaseParse,
			Text:   types.TextMalformedOption,
			Reason: types.ErrDeferredLeak.Error(),
		})
	}

	return Result{
		Tenants:   tenants,
		Options:   plain,
		Overrides: overrides,
		Errors:    errs,
	}
}
