// internal/compiler/dispatch_test.go
package compiler

import (
	"testing"

	"github.com/hateftavakkoli/MongooseIM/internal/types"
)

func listenerPath(extra ...types.Segment) types.Path {
	p := types.Path{}.
		Push(types.KeySegment("listen")).
		Push(types.KeySegment("c2s")).
		Push(types.ItemSegment())
	for _, s := range extra {
		p = p.Push(s)
	}
	return p
}

func TestMatchSuffix(t *testing.T) {
	tests := []struct {
		name    string
		pattern []patSeg
		path    types.Path
		want    bool
	}{
		{
			name:    "exact key suffix",
			pattern: []patSeg{key("port"), item(), anyKey(), key("listen")},
			path:    listenerPath(types.KeySegment("port")),
			want:    true,
		},
		{
			name:    "wildcard key position",
			pattern: []patSeg{anyKey(), key("listen")},
			path:    types.Path{}.Push(types.KeySegment("listen")).Push(types.KeySegment("http")),
			want:    true,
		},
		{
			name:    "pattern longer than path",
			pattern: []patSeg{key("port"), item(), anyKey(), key("listen")},
			path:    types.Path{}.Push(types.KeySegment("port")),
			want:    false,
		},
		{
			name:    "tag matched exactly",
			pattern: []patSeg{key("verify_peer"), tag("tls", "just_tls")},
			path:    listenerPath(types.TagSegment("tls", "just_tls"), types.KeySegment("verify_peer")),
			want:    true,
		},
		{
			name:    "tag mismatch",
			pattern: []patSeg{key("verify_peer"), tag("tls", "just_tls")},
			path:    listenerPath(types.TagSegment("tls", "fast_tls"), types.KeySegment("verify_peer")),
			want:    false,
		},
		{
			name:    "anyTag matches either module",
			pattern: []patSeg{key("certfile"), anyTag("tls")},
			path:    listenerPath(types.TagSegment("tls", "fast_tls"), types.KeySegment("certfile")),
			want:    true,
		},
		{
			name:    "tenant tag matches only keyless tags",
			pattern: []patSeg{tenant(), key("host_config")},
			path:    types.Path{}.Push(types.KeySegment("host_config")).Push(types.TagSegment("", "a.example")),
			want:    true,
		},
		{
			name:    "tenant pattern rejects keyed tags",
			pattern: []patSeg{tenant(), key("host_config")},
			path:    types.Path{}.Push(types.KeySegment("host_config")).Push(types.TagSegment("tls", "just_tls")),
			want:    false,
		},
		{
			name:    "item pattern rejects key segment",
			pattern: []patSeg{item(), key("hosts")},
			path:    types.Path{}.Push(types.KeySegment("hosts")).Push(types.KeySegment("x")),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchSuffix(tt.pattern, tt.path); got != tt.want {
				t.Errorf("matchSuffix() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The table scan is first-match-wins: a module-specific TLS entry must
// shadow the shared fallback for the same key, and a deeper entry must
// shadow a section root sharing its final key.
func TestResolve_SpecificBeforeGeneral(t *testing.T) {
	c := &compiler{validator: DefaultValidator()}
	c.table = c.buildTable()

	verifyPeer := listenerPath(types.TagSegment("tls", "just_tls"), types.KeySegment("verify_peer"))
	if _, ok := c.resolve(verifyPeer); !ok {
		t.Fatalf("resolve(%s) missed", verifyPeer.Render())
	}

	// verify_peer belongs to just_tls only
	wrongModule := listenerPath(types.TagSegment("tls", "fast_tls"), types.KeySegment("verify_peer"))
	if _, ok := c.resolve(wrongModule); ok {
		t.Errorf("resolve() matched verify_peer under fast_tls, want a miss")
	}

	// a listener leaf named "access" must not fall through to the
	// access section root entry
	leaf := listenerPath(types.KeySegment("access"))
	h, ok := c.resolve(leaf)
	if !ok {
		t.Fatalf("resolve(%s) missed", leaf.Render())
	}
	opts, err := h(leaf, "c2s")
	if err != nil {
		t.Fatalf("handler error = %v, want nil", err)
	}
	if len(opts) != 1 {
		t.Fatalf("len(opts) = %d, want 1", len(opts))
	}
	if d := opts[0].(types.GlobalDirective); d.Key != "access" || d.Value != "c2s" {
		t.Errorf("directive = %+v, want access=c2s scalar", d)
	}
}

func TestResolve_RootAndMisses(t *testing.T) {
	c := &compiler{validator: DefaultValidator()}
	c.table = c.buildTable()

	if _, ok := c.resolve(types.Path{}); !ok {
		t.Errorf("resolve(root) missed, want the root handler")
	}
	bogus := types.Path{}.Push(types.KeySegment("general")).Push(types.KeySegment("no_such_option"))
	if _, ok := c.resolve(bogus); ok {
		t.Errorf("resolve(%s) matched, want a miss", bogus.Render())
	}
}
