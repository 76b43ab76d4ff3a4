// internal/compiler/handlers_misc.go
package compiler

import (
	"github.com/spf13/cast"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

// Shaper, s2s and service handlers.

func (c *compiler) handleShaperSection(p types.Path, v any) ([]types.Option, error) {
	return c.walkTable(p, v)
}

func (c *compiler) handleShaper(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, []string{"max_rate"}, []string{"max_rate"}); err != nil {
		return nil, err
	}
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		m := pairs(children)
		m["name"] = p[0].Key
		var sh Shaper
		if err := decodeRecord(m, &sh); err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "shaper." + sh.Name, Value: sh}}, nil
	})
}

func (c *compiler) handleS2S(p types.Path, v any) ([]types.Option, error) {
	return c.walkTable(p, v)
}

func (c *compiler) handleS2SOutgoing(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		var out S2SOutgoing
		if err := decodeRecord(pairs(children), &out); err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "s2s_outgoing", Value: out}}, nil
	})
}

func (c *compiler) handleS2SAddress(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "s2s_address", Value: values(children)}}, nil
	})
}

// handleS2SAddressItem folds one static address entry. Entries are
// value items consumed by the enclosing list fold.
func (c *compiler) handleS2SAddressItem(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, []string{"host", "ip_address"}, []string{"host", "ip_address"}); err != nil {
		return nil, err
	}
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleServices(p types.Path, v any) ([]types.Option, error) {
	return c.walkTable(p, v)
}

func (c *compiler) handleService(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		key := "service." + p[0].Key
		return []types.Option{types.GlobalDirective{Key: key, Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleSubmods(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		mods, err := cast.ToStringSliceE(values(children))
		if err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "submods", Value: mods}}, nil
	})
}
