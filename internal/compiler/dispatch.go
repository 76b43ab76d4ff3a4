// internal/compiler/dispatch.go
package compiler

import (
	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Path dispatch.
 *
 * The dispatch table is an ordered list of (suffix pattern, handler)
 * pairs. A pattern matches a path when every pattern segment matches
 * the corresponding most-recent path segment. The table is scanned
 * top to bottom and the first match wins, so tag-qualified entries
 * must be listed before their general fallback counterparts for the
 * same nominal key; the table in table.go is ordered accordingly.
 *
 * A linear scan is fine at this table size. If profiling ever demands
 * it, index the table by the final concrete key.
 */

type handlerFunc func(p types.Path, v any) ([]types.Option, error)

// patSeg is one position of a suffix pattern. Wildcard rules:
//   - SegmentKey: empty key matches any key
//   - SegmentItem: always positional, matches any item
//   - SegmentTag: the document key is matched exactly (tenant items
//     carry an empty key); an empty tag matches any tag value
type patSeg struct {
	kind types.SegmentKind
	key  string
	tag  string
}

type entry struct {
	pattern []patSeg
	handler handlerFunc
}

func key(k string) patSeg    { return patSeg{kind: types.SegmentKey, key: k} }
func anyKey() patSeg         { return patSeg{kind: types.SegmentKey} }
func item() patSeg           { return patSeg{kind: types.SegmentItem} }
func tag(k, t string) patSeg { return patSeg{kind: types.SegmentTag, key: k, tag: t} }
func anyTag(k string) patSeg { return patSeg{kind: types.SegmentTag, key: k} }
func tenant() patSeg         { return patSeg{kind: types.SegmentTag} }

func (ps patSeg) matches(s types.Segment) bool {
	if ps.kind != s.Kind {
		return false
	}
	switch ps.kind {
	case types.SegmentKey:
		return ps.key == "" || ps.key == s.Key
	case types.SegmentItem:
		return true
	case types.SegmentTag:
		if ps.key != s.Key {
			return false
		}
		return ps.tag == "" || ps.tag == s.Tag
	}
	return false
}

func matchSuffix(pattern []patSeg, p types.Path) bool {
	if len(pattern) > len(p) {
		return false
	}
	for i, ps := range pattern {
		if !ps.matches(p[i]) {
			return false
		}
	}
	return true
}

// resolve picks exactly one handler for a path. The empty path is the
// document root.
func (c *compiler) resolve(p types.Path) (handlerFunc, bool) {
	if len(p) == 0 {
		return c.handleRoot, true
	}
	for _, e := range c.table {
		if matchSuffix(e.pattern, p) {
			return e.handler, true
		}
	}
	return nil, false
}
