// internal/compiler/handlers_pools.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Outgoing connection pool handlers.
 *
 * outgoing_pools
 *   <type>            rdbms or redis
 *     <tag>           operator-chosen pool name
 *       connection    tagged by its driver field; the accepted key set
 *                     depends on the driver even though the outer key
 *                     is always "connection"
 */

func (c *compiler) handlePoolSection(p types.Path, v any) ([]types.Option, error) {
	return c.walkTable(p, v)
}

func (c *compiler) handlePoolType(p types.Path, v any) ([]types.Option, error) {
	return c.walkTable(p, v)
}

func (c *compiler) handlePool(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		m := pairs(children)
		m["type"] = p[1].Key
		m["name"] = p[0].Key
		var pool Pool
		if err := decodeRecord(m, &pool); err != nil {
			return nil, err
		}
		key := "pool." + pool.Type + "." + pool.Name
		return []types.Option{types.GlobalDirective{Key: key, Value: pool}}, nil
	})
}

func (c *compiler) handleConnection(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "connection", Value: pairs(children)}}, nil
	})
}
