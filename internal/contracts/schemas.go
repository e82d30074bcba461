package contracts

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"listing-service/internal/contracts/schemas"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	StoredListingV1            = "StoredListing/1.0.0"
	CacheInvalidationCommandV1 = "CacheInvalidationCommand/1.0.0"
)

// Registry хранит скомпилированные схемы по ключу "Name/1.0.0".
type Registry struct {
	schemas map[string]*jsonschema.Schema
}

// NewRegistry компилирует все встроенные схемы. Ошибка компиляции любой схемы фатальна.
func NewRegistry() (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemas.SchemasFS, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		file, err := schemas.SchemasFS.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		if err := compiler.AddResource(path, file); err != nil {
			return fmt.Errorf("add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load schemas: %w", err)
	}

	r := &Registry{schemas: make(map[string]*jsonschema.Schema, len(paths))}
	for _, path := range paths {
		schema, err := compiler.Compile(path)
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", path, err)
		}
		r.schemas[keyFromPath(path)] = schema
	}
	return r, nil
}

// keyFromPath: "stored-listing/v1.json" -> "StoredListing/1.0.0"
func keyFromPath(path string) string {
	parts := strings.Split(strings.TrimSuffix(path, ".json"), "/")
	if len(parts) != 2 {
		return path
	}
	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	return fmt.Sprintf("%s/%s.0.0", name.String(), strings.TrimPrefix(parts[1], "v"))
}

// ValidateJSON проверяет сырое JSON-тело по схеме key.
func (r *Registry) ValidateJSON(key string, body []byte) error {
	schema, ok := r.schemas[key]
	if !ok {
		return fmt.Errorf("no schema registered for %s", key)
	}
	var doc interface{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("schema %s: %w", key, err)
	}
	return nil
}
