// Package types provides domain models shared across the configuration
// subsystem.
//
// Zero-dependency design: every other package (compiler, loader, state,
// cmd) imports these models, so nothing here may import anything beyond
// the standard library.
//
// The configuration document itself is represented with the generic
// shapes the tokenizers produce and is never wrapped in a dedicated tree
// type: tables are map[string]any, lists are []any, scalars are string,
// int64, bool or float64. The tree is read-only input for the compiler.
package types

// SegmentKind discriminates the three path segment variants.
type SegmentKind int

const (
	// SegmentKey is a table entry visited under its document key.
	SegmentKey SegmentKind = iota

	// SegmentItem is a positional list element with no human meaning.
	SegmentItem

	// SegmentTag is a contextual segment: the nominal key (if any) plus a
	// tag computed from sibling data, e.g. a TLS module name, a connection
	// driver, or a tenant identity discovered inside a list element.
	SegmentTag
)

// Segment is one step of a traversal path.
// For SegmentTag, Key holds the document key that was rewritten ("tls",
// "connection") and is empty for synthetic segments such as tenant items.
type Segment struct {
	Kind SegmentKind
	Key  string
	Tag  string
}

// KeySegment returns a plain table-key segment.
func KeySegment(key string) Segment {
	return Segment{Kind: SegmentKey, Key: key}
}

// ItemSegment returns a positional list-element segment.
func ItemSegment() Segment {
	return Segment{Kind: SegmentItem}
}

// TagSegment returns a contextual segment. key may be empty for segments
// with no document key of their own (tenant items).
func TagSegment(key, tag string) Segment {
	return Segment{Kind: SegmentTag, Key: key, Tag: tag}
}

// Path is the traversal trail from the current node back to the root,
// most-recently-visited segment first. It is both the dispatch key
// (matched by suffix against handler patterns) and the basis for
// diagnostics.
type Path []Segment

// Push returns a new path with seg as the most recent segment. The
// receiver is never mutated; subtrees sharing a parent path must not
// observe each other's extensions.
func (p Path) Push(seg Segment) Path {
	next := make(Path, 0, len(p)+1)
	next = append(next, seg)
	return append(next, p...)
}

// Render produces the human-readable dotted form of the path, root
// first. Segments with no document key (list positions, tenant tags)
// are elided, so the rendered path is exactly the trail of real keys.
func (p Path) Render() string {
	var buf []byte
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Key == "" {
			continue
		}
		if len(buf) > 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, p[i].Key...)
	}
	return string(buf)
}

// Key returns the document key of the most recent segment, or "" when
// the node was reached positionally.
func (p Path) Key() string {
	if len(p) == 0 {
		return ""
	}
	return p[0].Key
}

// IsTenantID reports whether s is a well-formed tenant (virtual host)
// identifier: non-empty lowercase DNS-style labels separated by dots,
// each label made of [a-z0-9-] and not starting or ending with a hyphen.
func IsTenantID(s string) bool {
	if s == "" || len(s) > 253 {
		return false
	}
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != '.' {
			continue
		}
		label := s[start:i]
		if !validLabel(label) {
			return false
		}
		start = i + 1
	}
	return true
}

func validLabel(label string) bool {
	if label == "" || len(label) > 63 {
		return false
	}
	if label[0] == '-' || label[len(label)-1] == '-' {
		return false
	}
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return false
		}
	}
	return true
}
