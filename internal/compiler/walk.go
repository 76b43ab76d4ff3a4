// internal/compiler/walk.go
package compiler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Traversal primitives.
 *
 * Tables are walked in sorted key order so the produced option list is
 * identical across runs regardless of how the tokenizer ordered its
 * map. Lists are walked in document order because list order is
 * meaningful (listener lists, access rules, shaper assignments).
 *
 * Each child is tagged, pushed onto the path, and run through the full
 * three-phase pipeline; a tagging failure is a node-local parse error
 * and sibling children still complete.
 *
 * The *With variants apply a post-processing fold to the flattened
 * child results, used when a table or list must collapse into a single
 * composite option. If any child produced an error, the fold is
 * skipped and the child results propagate unchanged.
 */

type foldFunc func(p types.Path, children []types.Option) ([]types.Option, error)

func (c *compiler) walkTable(p types.Path, v any) ([]types.Option, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, types.ErrWantTable
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []types.Option
	for _, k := range keys {
		child := m[k]
		seg, err := tagKey(p, k, child)
		if err != nil {
			out = append(out, errorRecord(
				types.WhatMalformedOption, types.PhaseParse, types.TextMalformedOption,
				p.Push(types.KeySegment(k)), child, err.Error(), nil))
			continue
		}
		out = append(out, c.process(p.Push(seg), child)...)
	}
	return out, nil
}

func (c *compiler) walkList(p types.Path, v any) ([]types.Option, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, types.ErrWantList
	}

	var out []types.Option
	for _, it := range items {
		seg, err := tagItem(p, it)
		if err != nil {
			out = append(out, errorRecord(
				types.WhatMalformedOption, types.PhaseParse, types.TextMalformedOption,
				p.Push(types.ItemSegment()), it, err.Error(), nil))
			continue
		}
		out = append(out, c.process(p.Push(seg), it)...)
	}
	return out, nil
}

func (c *compiler) walkScalar(p types.Path, v any) ([]types.Option, error) {
	return c.process(p, v), nil
}

func (c *compiler) walkTableWith(p types.Path, v any, fold foldFunc) ([]types.Option, error) {
	children, err := c.walkTable(p, v)
	if err != nil {
		return nil, err
	}
	if hasErrors(children) {
		return children, nil
	}
	return fold(p, children)
}

func (c *compiler) walkListWith(p types.Path, v any, fold foldFunc) ([]types.Option, error) {
	children, err := c.walkList(p, v)
	if err != nil {
		return nil, err
	}
	if hasErrors(children) {
		return children, nil
	}
	return fold(p, children)
}

// hasErrors reports whether any top-level element of opts is an error
// record.
func hasErrors(opts []types.Option) bool {
	for _, o := range opts {
		if _, ok := o.(types.Error); ok {
			return true
		}
	}
	return false
}

// checkKeys rejects tables whose key set is not a subset of allowed,
// and optionally requires mandatory keys. Used by handlers for the
// sections where only a known, closed set of keys is legal.
func checkKeys(v any, mandatory []string, allowed []string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, types.ErrWantTable
	}

	var unexpected []string
	for k := range m {
		found := false
		for _, a := range allowed {
			if k == a {
				found = true
				break
			}
		}
		if !found {
			unexpected = append(unexpected, k)
		}
	}
	if len(unexpected) > 0 {
		sort.Strings(unexpected)
		return nil, fmt.Errorf("unexpected keys: %s", strings.Join(unexpected, ", "))
	}

	for _, k := range mandatory {
		if _, present := m[k]; !present {
			return nil, fmt.Errorf("%w: %q", types.ErrMissingMandatoryKey, k)
		}
	}
	return m, nil
}
