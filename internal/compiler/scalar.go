// internal/compiler/scalar.go
package compiler

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Leaf scalar handlers.
 *
 * Scalars arrive with whatever concrete type the tokenizer produced
 * (TOML yields int64, YAML may yield int) and are coerced through cast
 * to a canonical type. Range and enum membership are the validator's
 * business; these handlers only establish shape.
 *
 * Directives produced at a list position carry an empty key: they are
 * intermediate values consumed by the parent fold and never reach the
 * final option list on a successful load.
 */

func rejectCompound(v any) error {
	switch v.(type) {
	case map[string]any:
		return fmt.Errorf("unexpected table, want a scalar")
	case []any:
		return fmt.Errorf("unexpected list, want a scalar")
	}
	return nil
}

func (c *compiler) stringOption(p types.Path, v any) ([]types.Option, error) {
	if err := rejectCompound(v); err != nil {
		return nil, err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, err
	}
	return []types.Option{types.GlobalDirective{Key: p.Key(), Value: s}}, nil
}

func (c *compiler) intOption(p types.Path, v any) ([]types.Option, error) {
	if err := rejectCompound(v); err != nil {
		return nil, err
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return nil, err
	}
	return []types.Option{types.GlobalDirective{Key: p.Key(), Value: n}}, nil
}

func (c *compiler) boolOption(p types.Path, v any) ([]types.Option, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, fmt.Errorf("value must be a boolean, got %T", v)
	}
	return []types.Option{types.GlobalDirective{Key: p.Key(), Value: b}}, nil
}

// anyScalarOption accepts any scalar unchanged; used where a value may
// legitimately be a string or a number (access rule values).
func (c *compiler) anyScalarOption(p types.Path, v any) ([]types.Option, error) {
	if err := rejectCompound(v); err != nil {
		return nil, err
	}
	return []types.Option{types.GlobalDirective{Key: p.Key(), Value: v}}, nil
}

// stringItem is stringOption at a list position.
func (c *compiler) stringItem(p types.Path, v any) ([]types.Option, error) {
	if err := rejectCompound(v); err != nil {
		return nil, err
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return nil, err
	}
	return []types.Option{types.GlobalDirective{Value: s}}, nil
}

// intOrInfinity parses a positive count that may also be the string
// "infinity".
func (c *compiler) intOrInfinity(p types.Path, v any) ([]types.Option, error) {
	if s, ok := v.(string); ok {
		if s != "infinity" {
			return nil, fmt.Errorf("want an integer or %q, got %q", "infinity", s)
		}
		return []types.Option{types.GlobalDirective{Key: p.Key(), Value: s}}, nil
	}
	return c.intOption(p, v)
}
