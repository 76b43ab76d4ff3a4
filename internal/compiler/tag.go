// internal/compiler/tag.go
package compiler

import (
	"fmt"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

/*
 * Key and item tagging.
 *
 * Before dispatch, the nominal key of a table entry (or the position of
 * a list element) may be rewritten into a contextual tag computed from
 * sibling data inside the value:
 *
 *   - a "tls" table carries a "module" field selecting between two
 *     mutually exclusive option vocabularies
 *   - a "connection" table carries a "driver" field that determines
 *     which sibling keys are legal
 *   - a "host_config" list element carries a "host" field naming the
 *     tenant it applies to
 *
 * Absence of the sibling field required to compute a tag is a
 * configuration error, never a silent default.
 */

// tagKey computes the path segment for the table entry (k, v) reached
// under path p.
func tagKey(p types.Path, k string, v any) (types.Segment, error) {
	switch k {
	case "tls":
		if !underListenItem(p) {
			break
		}
		module, err := siblingString(v, "module")
		if err != nil {
			return types.Segment{}, err
		}
		return types.TagSegment("tls", module), nil
	case "connection":
		if p.Key() == "" || !inSection(p, "outgoing_pools") {
			break
		}
		driver, err := siblingString(v, "driver")
		if err != nil {
			return types.Segment{}, err
		}
		return types.TagSegment("connection", driver), nil
	}
	return types.KeySegment(k), nil
}

// tagItem computes the path segment for a list element reached under
// path p. Elements of host_config are tagged with the tenant identity
// found inside them so later traversal can recover it without
// re-deriving it.
func tagItem(p types.Path, v any) (types.Segment, error) {
	if p.Key() == "host_config" {
		host, err := siblingString(v, "host")
		if err != nil {
			return types.Segment{}, err
		}
		if !types.IsTenantID(host) {
			return types.Segment{}, fmt.Errorf("%w: %q", types.ErrBadTenantID, host)
		}
		return types.TagSegment("", host), nil
	}
	return types.ItemSegment(), nil
}

// siblingString reads the string field the tag is derived from.
func siblingString(v any, field string) (string, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", types.ErrWantTable
	}
	raw, ok := m[field]
	if !ok {
		return "", fmt.Errorf("%w: %q", types.ErrMissingTagField, field)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%q: %w", field, types.ErrWantString)
	}
	return s, nil
}

// underListenItem reports whether p is a listener table, i.e. a list
// element of one of the per-type listener lists.
func underListenItem(p types.Path) bool {
	return len(p) >= 3 &&
		p[0].Kind == types.SegmentItem &&
		p[2].Kind == types.SegmentKey && p[2].Key == "listen"
}

// inSection reports whether any segment of p carries the given key.
func inSection(p types.Path, section string) bool {
	for _, s := range p {
		if s.Key == section {
			return true
		}
	}
	return false
}
