package types

import "errors"

// Sentinel errors shared across the configuration subsystem.
var (
	// ErrWantTable indicates a node that must be a table is not one.
	ErrWantTable = errors.New("value must be a table")

	// ErrWantList indicates a node that must be a list is not one.
	ErrWantList = errors.New("value must be a list")

	// ErrWantString indicates a scalar that must be a string is not one.
	ErrWantString = errors.New("value must be a string")

	// ErrBadTenantID indicates a malformed tenant identifier.
	ErrBadTenantID = errors.New("tenant identifier is not a well-formed domain name")

	// ErrMissingTagField indicates absence of the sibling field required
	// to compute a contextual tag (driver, module, host).
	ErrMissingTagField = errors.New("missing field required to classify this section")

	// ErrMissingMandatoryKey indicates a closed section lacks a required key.
	ErrMissingMandatoryKey = errors.New("missing mandatory key")

	// ErrNoTenants indicates the document declares no tenant list, so
	// deferred sections cannot be expanded.
	ErrNoTenants = errors.New("no tenants declared under general.hosts")

	// ErrDeferredLeak indicates a deferred per-tenant value survived past
	// the expansion phase.
	ErrDeferredLeak = errors.New("unexpanded per-tenant value after expansion")
)
