// internal/compiler/handlers_host.go
package compiler

import (
	"github.com/spf13/cast"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Per-tenant sections.
 *
 * auth, acl, access and modules appear once in the document but apply
 * per tenant, so their handlers return deferred values that reissue
 * every clean directive for each tenant once the tenant set is known.
 *
 * host_config is the inline counterpart: each list element names one
 * tenant (the tag computed at tagging time) and its subtree is walked
 * with the ordinary section handlers, then narrowed so the resulting
 * deferred values fire for that tenant only. The root walk emits
 * host_config output after every other section, so its directives
 * always reach assembly after their global counterparts and win
 * deduplication.
 */

func (c *compiler) handleAuth(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}

func (c *compiler) handleAuthMethods(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		methods, err := cast.ToStringSliceE(values(children))
		if err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "auth_method", Value: methods}}, nil
	})
}

func (c *compiler) handleAuthPassword(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "auth_password", Value: pairs(children)}}, nil
	})
}

func (c *compiler) handlePasswordHash(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		algs, err := cast.ToStringSliceE(values(children))
		if err != nil {
			return nil, err
		}
		return []types.Option{types.GlobalDirective{Key: "hash", Value: algs}}, nil
	})
}

func (c *compiler) handleAuthAnonymous(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "anonymous", Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleACLSection(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}

func (c *compiler) handleACL(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "acl." + p[0].Key, Value: values(children)}}, nil
	})
}

func (c *compiler) handleACLSpec(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, nil, []string{"user", "server", "resource"}); err != nil {
		return nil, err
	}
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleAccessSection(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}

func (c *compiler) handleAccessRule(p types.Path, v any) ([]types.Option, error) {
	return c.walkListWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "access." + p[0].Key, Value: values(children)}}, nil
	})
}

func (c *compiler) handleAccessRuleItem(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, []string{"acl", "value"}, []string{"acl", "value"}); err != nil {
		return nil, err
	}
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleModules(p types.Path, v any) ([]types.Option, error) {
	opts, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	return deferAll(opts), nil
}

// handleModule folds one module table into a single directive keyed by
// the module name; module names are whitelisted by the dispatch table
// itself.
func (c *compiler) handleModule(p types.Path, v any) ([]types.Option, error) {
	return c.walkTableWith(p, v, func(p types.Path, children []types.Option) ([]types.Option, error) {
		return []types.Option{types.GlobalDirective{Key: "module." + p[0].Key, Value: pairs(children)}}, nil
	})
}

func (c *compiler) handleHostConfigSection(p types.Path, v any) ([]types.Option, error) {
	return c.walkList(p, v)
}

// handleHostConfig walks one inline tenant override entry and narrows
// everything it produced to the tenant named by the path tag.
func (c *compiler) handleHostConfig(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, []string{"host"}, []string{"host", "auth", "modules", "general"}); err != nil {
		return nil, err
	}
	opts, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	return restrictToTenant(p[0].Tag, opts), nil
}

// handleHostField consumes the identity field already used for tagging.
func (c *compiler) handleHostField(p types.Path, v any) ([]types.Option, error) {
	if _, ok := v.(string); !ok {
		return nil, types.ErrWantString
	}
	return nil, nil
}

// handleHostGeneral admits only the per-tenant subset of the general
// vocabulary inside host_config entries.
func (c *compiler) handleHostGeneral(p types.Path, v any) ([]types.Option, error) {
	if _, err := checkKeys(v, nil, []string{"replaced_wait_timeout", "registration_timeout"}); err != nil {
		return nil, err
	}
	return c.walkTable(p, v)
}
