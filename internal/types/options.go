// internal/types/options.go
package types

/*
 * Option is the output unit of the configuration compiler, modelled as a
 * sealed tagged union so that the deep error scan is a plain type switch
 * rather than runtime reflection.
 *
 * Variants:
 *   - GlobalDirective: applies once, tenant-independent
 *   - TenantDirective: applies to one discovered tenant
 *   - DeferredTenantFn: directive-producing function awaiting the tenant
 *     set; must not survive past the expansion phase
 *   - Override: mutates already-assembled state instead of adding to it
 *   - Error: a first-class value that may also appear nested inside the
 *     Value of another option, because handlers compose
 */

// Option is one unit of compiler output.
type Option interface {
	option()
}

// GlobalDirective is a fully resolved, tenant-independent directive.
type GlobalDirective struct {
	Key   string
	Value any
}

// TenantDirective is a fully resolved directive scoped to one tenant.
// The (Key, Tenant) pair identifies the directive during assembly, so
// directives for different tenants never collide.
type TenantDirective struct {
	Key    string
	Tenant string
	Value  any
}

// DeferredTenantFn produces the directives of one tenant once the tenant
// set is known. Implementations must be pure over their argument:
// applying the same function to the same tenant twice yields the same
// directives with no side effects.
type DeferredTenantFn func(tenant string) []Option

// Override requests mutation of already-assembled state. Overrides are
// applied after all directives are loaded, so an override wins no matter
// where in the document it was declared.
type Override struct {
	Scope string
}

// Phase identifies the pipeline phase a node failed in.
type Phase string

const (
	// PhaseHandle means no dispatch entry matched the node's path.
	PhaseHandle Phase = "handle"

	// PhaseParse means the resolved handler rejected the node's value.
	PhaseParse Phase = "parse"

	// PhaseValidate means the parsed result failed domain validation.
	PhaseValidate Phase = "validate"
)

// Machine-readable error classifications, one per pipeline phase.
const (
	WhatUnexpectedOption   = "unexpected_option"
	WhatMalformedOption    = "malformed_option"
	WhatInvalidOptionValue = "invalid_option_value"
)

// Human-readable texts for the error classifications.
const (
	TextUnexpectedOption   = "unexpected option in configuration"
	TextMalformedOption    = "malformed option in configuration"
	TextInvalidOptionValue = "incorrect option value in configuration"
)

// Error is a localized configuration fault. The pass never aborts on
// one: every fault is converted to an Error record and processing of
// sibling nodes continues.
type Error struct {
	// What is the machine-readable classification.
	What string

	// Class is the pipeline phase that failed.
	Class Phase

	// Text is the phase-derived human-readable message.
	Text string

	// Path is the rendered document path of the offending node.
	Path string

	// Value is the offending raw value.
	Value any

	// Reason carries the underlying failure detail.
	Reason string

	// Stack is set when a handler panicked, for operator debugging.
	Stack []byte
}

func (GlobalDirective) option()  {}
func (TenantDirective) option()  {}
func (DeferredTenantFn) option() {}
func (Override) option()         {}
func (Error) option()            {}
