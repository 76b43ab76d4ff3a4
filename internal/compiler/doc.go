// Package compiler turns a parsed configuration document (a generic
// tree of tables, lists and scalars) into a flat, validated list of
// typed configuration directives.
//
// The compiler is a single synchronous pass with no shared mutable
// state: handlers are pure functions of (path, value), faults are
// node-local, and a malformed document degrades to a list of error
// records rather than a partial result.
package compiler
