// internal/compiler/pipeline.go
package compiler

import (
	"fmt"
	"runtime/debug"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Per-node execution pipeline.
 *
 * Every node runs three phases in order, short-circuiting on the first
 * failure for that node only:
 *
 *   1. handle   - resolve(path) picks a handler; a miss means the path
 *                 is not recognized at all (unexpected_option)
 *   2. parse    - the handler interprets the value; any returned error
 *                 or panic means the value has the wrong shape
 *                 (malformed_option)
 *   3. validate - the external validator may reject the parsed result
 *                 (invalid_option_value)
 *
 * A failure in one phase never re-attempts the next, and never stops
 * sibling nodes elsewhere in the tree from completing their own three
 * phases. Handler panics are recovered with the stack attached so an
 * operator can debug a broken handler from the error record alone.
 */

func (c *compiler) process(p types.Path, v any) []types.Option {
	h, ok := c.resolve(p)
	if !ok {
		return []types.Option{errorRecord(
			types.WhatUnexpectedOption, types.PhaseHandle, types.TextUnexpectedOption,
			p, v, "no option is recognized at this path", nil)}
	}

	opts, err, stack := c.call(h, p, v)
	if err != nil {
		return []types.Option{errorRecord(
			types.WhatMalformedOption, types.PhaseParse, types.TextMalformedOption,
			p, v, err.Error(), stack)}
	}

	if verr := c.validator.Validate(p, opts); verr != nil {
		return []types.Option{errorRecord(
			types.WhatInvalidOptionValue, types.PhaseValidate, types.TextInvalidOptionValue,
			p, v, verr.Error(), nil)}
	}

	return opts
}

// call invokes the handler, converting a panic into an ordinary error
// with the stack captured at the panic site.
func (c *compiler) call(h handlerFunc, p types.Path, v any) (opts []types.Option, err error, stack []byte) {
	defer func() {
		if r := recover(); r != nil {
			opts = nil
			err = fmt.Errorf("handler panic: %v", r)
			stack = debug.Stack()
		}
	}()
	opts, err = h(p, v)
	return opts, err, stack
}

func errorRecord(what string, class types.Phase, text string, p types.Path, v any, reason string, stack []byte) types.Error {
	return types.Error{
		What:   what,
		Class:  class,
		Text:   text,
		Path:   p.Render(),
		Value:  v,
		Reason: reason,
		Stack:  stack,
	}
}
