// internal/compiler/handlers_general.go
package compiler

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

// handleRoot processes the top-level table. Unknown top-level keys are
// reported through ordinary dispatch misses; the general section is
// mandatory. host_config is walked after every other section, not in
// sorted-key position: its per-tenant output must be produced after the
// global output it shadows, so expansion emits it later and assembly's
// last-wins fold gives the inline override the final word.
func (c *compiler) handleRoot(p types.Path, v any) ([]types.Option, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, types.ErrWantTable
	}
	if _, present := m["general"]; !present {
		return nil, fmt.Errorf("%w: %q", types.ErrMissingMandatoryKey, "general")
	}

	rest := make(map[string]any, len(m))
	for k, child := range m {
		if k != "host_config" {
			rest[k] = child
		}
	}
	opts, err := c.walkTable(p, rest)
	if err != nil {
		return nil, err
	}
	if hc, present := m["host_config"]; present {
		opts = append(opts, c.process(p.Push(types.KeySegment("host_config")), hc)...)
	}
	return opts, nil
}

func (c *compiler) handleGeneral(p types.Path, v any) ([]types.Option, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, types.ErrWantTable
	}
	if _, present := m["hosts"]; !present {
		return nil, fmt.Errorf("%w: %q", types.ErrMissingMandatoryKey, "hosts")
	}
	return c.walkTable(p, m)
}

// handleHosts folds the tenant list into the one directive the
// expansion phase reads the tenant set from.
func (c *compiler) handleHosts(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		hosts, err := cast.ToStringSliceE(values(children))
		if err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "hosts", Value: hosts}}, nil
	})
}

func (c *compiler) handleOverride(p types.Path, v any) ([]types.Option, error) {
	return c.walkList(p, v)
}

// handleOverrideItem maps an operator-supplied scope string onto the
// closed override vocabulary. Unrecognized scopes are an error, never a
// new scope.
func (c *compiler) handleOverrideItem(p types.Path, v any) ([]types.Option, error) {
	s, ok := v.(string)
	if !ok {
		return nil, types.ErrWantString
	}
	switch s {
	case "local", "global", "acl":
		return []types.Option{types.Override{Scope: s}}, nil
	}
	return nil, fmt.Errorf("unknown override scope %q", s)
}

// deferredInt parses a per-tenant integer option declared once at the
// tenant-independent level.
func (c *compiler) deferredInt(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.intOption(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}

func (c *compiler) deferredIntOrInfinity(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.intOrInfinity(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}
