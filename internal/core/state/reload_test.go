// internal/core/state/reload_test.go
package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hateftavakkoli/MongooseIM/internal/compiler"
)

func TestReloader_SwapsOnCleanDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mongooseim.toml")
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}
	}

	write("[general]\nhosts = [\"a.example\"]\n")
	store := NewStore(Assemble(&compiler.Result{Tenants: []string{"old.example"}}))
	r := NewReloader(path, store)

	r.reload()
	if got := store.Current().Tenants; len(got) != 1 || got[0] != "a.example" {
		t.Fatalf("Tenants after reload = %v, want [a.example]", got)
	}

	// a broken document must not replace the live state
	write("[general]\nloglevel = \"warning\"\n")
	before := store.Current()
	r.reload()
	if store.Current() != before {
		t.Fatalf("broken document replaced the live state")
	}
}
