// internal/compiler/handlers_listen.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Listener section handlers.
 *
 * listen
 *   <type>          ordered list of listeners (c2s, s2s, http, service)
 *     [listener]    folded into one Listener record
 *       tls         tagged by its module field; the two modules accept
 *                   partially disjoint key sets
 *
 * The whole section collapses bottom-up: each listener table folds its
 * leaf directives into a Listener record, and the section folds the
 * records into a single "listen" directive so assembly installs the
 * complete listener set atomically.
 */

func (c *compiler) handleListen(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		var listeners []Listener
		for _, o := range children {
			if d, ok := o.(types.GlobalDirective); ok && d.Key == "listener" {
				listeners = append(listeners, d.Value.(Listener))
			}
		}
		return []types.Option{types.GlobalDirective{Key: "listen", Value: listeners}}, nil
	})
}

func (c *compiler) handleListenerGroup(p types.Path, v any) ([]types.Option, error) {
	return c.walkList(p, v)
}

func (c *compiler) handleListener(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		m := pairs(children)
		m["kind"] = p[1].Key
		var lst Listener
		if err := decodeRecord(m, &lst); err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "listener", Value: lst}}, nil
	})
}

// handleListenerTLS folds the TLS table into a pair consumed by the
// enclosing listener fold. The module tag is also present as an
// ordinary child pair, so the folded map always names its vocabulary.
func (c *compiler) handleListenerTLS(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "tls", Value: pairs(children)}}, nil
	})
}
