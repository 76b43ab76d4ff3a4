// internal/core/config/loader.go
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/hateftavakkoli/MongooseIM/internal/compiler"
)

/*
 * The loader is the file-facing edge of the configuration pipeline.
 * It owns exactly three jobs: read the document bytes, tokenize them
 * into the generic value tree, and hand that tree to the compiler.
 * Everything downstream is format-agnostic; a YAML document and a TOML
 * document with the same shape compile to the same options.
 */

// Load reads and compiles the configuration document at path. Every
// error record the compiler produced is logged individually and folded
// into the returned error; a nil error means the document is clean and
// the result is safe to apply.
func Load(path string) (*compiler.Result, error) {
	loadID := uuid.NewString()
	log := slog.With("load_id", loadID, "path", path)

	doc, err := ReadDocument(path)
	if err != nil {
		log.Error("failed to read configuration document", "err", err)
		return nil, err
	}

	res := compiler.Compile(doc)
	if len(res.Errors) == 0 {
		log.Info("configuration compiled",
			"tenants", len(res.Tenants),
			"options", len(res.Options),
			"overrides", len(res.Overrides))
		return &res, nil
	}

	var merr *multierror.Error
	for _, e := range res.Errors {
		log.Error("configuration error",
			"what", e.What,
			"class", string(e.Class),
			"option_path", e.Path,
			"reason", e.Reason)
		merr = multierror.Append(merr, fmt.Errorf("%s at %s: %s", e.Text, e.Path, e.Reason))
	}
	return &res, merr.ErrorOrNil()
}

// ReadDocument reads path and tokenizes it into the generic value
// tree. The format is picked by extension: .toml, .yaml or .yml.
func ReadDocument(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var doc map[string]any
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("tokenize %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("tokenize %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported document format %q", ext)
	}

	normalized, ok := normalize(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("tokenize %s: document root is not a table", path)
	}
	return normalized, nil
}

// normalize rewrites tokenizer output into the canonical tree: tables
// are map[string]any, lists are []any, integers are int. The two
// tokenizers disagree on concrete types (TOML emits int64 and typed
// slices, YAML emits map[string]any but may nest differently), and the
// compiler dispatch only wants to see one shape.
func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = normalize(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			out[i] = normalize(item)
		}
		return out
	case int64:
		return int(x)
	default:
		return v
	}
}
