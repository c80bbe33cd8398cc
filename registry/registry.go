// Package registry stores schema documents for validation by reference.
//
// A Registry is populated once at startup, frozen before traffic begins,
// and read-only thereafter. Each document is keyed by a name derived from
// its title; registering two documents that derive the same name fails
// loudly rather than silently overwriting the first.
package registry

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"go.yaml.in/yaml/v4"

	"github.com/bguiz/schwag/routes"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrDuplicateSchema indicates a schema with the same derived name
	// was already registered.
	ErrDuplicateSchema = errors.New("duplicate schema name")

	// ErrNoTitle indicates the document carries no title to derive a
	// name from.
	ErrNoTitle = errors.New("schema document has no title")

	// ErrFrozen indicates an attempted registration after Freeze.
	ErrFrozen = errors.New("registry is frozen")

	// ErrUnknownSchema indicates a reference named a schema that was
	// never registered.
	ErrUnknownSchema = errors.New("unknown schema")

	// ErrUnresolvedRef indicates a reference pointer that does not
	// resolve inside its schema document.
	ErrUnresolvedRef = errors.New("unresolved reference")
)

// Option configures a Registry.
type Option func(*Registry)

// WithNormalizedNames derives registry keys by collapsing the document
// title into a single PascalCase identifier ("pet store api" becomes
// "PetStoreApi"). Without this option titles are used verbatim.
func WithNormalizedNames() Option {
	return func(r *Registry) {
		r.normalizeNames = true
	}
}

// Registry holds registered schema documents keyed by derived name.
type Registry struct {
	mu             sync.RWMutex
	schemas        map[string]map[string]any
	frozen         bool
	normalizeNames bool
}

// New creates an empty Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		schemas: make(map[string]map[string]any),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers a parsed schema document under a name derived from its
// title. It fails if the registry is frozen, if no title can be derived,
// or if a document with the same derived name was already registered;
// on failure the existing entries are left untouched.
func (r *Registry) Add(doc map[string]any) error {
	name, err := r.DeriveName(doc)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("registry: cannot add schema %q: %w", name, ErrFrozen)
	}
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("registry: schema %q: %w", name, ErrDuplicateSchema)
	}

	r.schemas[name] = doc
	return nil
}

// AddDocument parses a YAML or JSON schema document and registers it.
func (r *Registry) AddDocument(data []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("registry: failed to parse schema document: %w", err)
	}
	return r.Add(doc)
}

// AddFile reads a YAML or JSON schema document from disk and registers it.
func (r *Registry) AddFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("registry: failed to read %s: %w", path, err)
	}
	return r.AddDocument(data)
}

// DeriveName returns the registry key that Add would use for the given
// document: the top-level "title" field, falling back to "info.title"
// for Swagger-shaped documents.
func (r *Registry) DeriveName(doc map[string]any) (string, error) {
	title := ""
	if t, ok := doc["title"].(string); ok {
		title = t
	} else if info, ok := doc["info"].(map[string]any); ok {
		if t, ok := info["title"].(string); ok {
			title = t
		}
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("registry: %w", ErrNoTitle)
	}

	if r.normalizeNames {
		return normalizeTitle(title), nil
	}
	return title, nil
}

// Freeze marks the registry read-only. Subsequent Add calls fail with
// ErrFrozen. Freezing more than once is a no-op.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Get returns the registered document for the given name.
func (r *Registry) Get(name string) (map[string]any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.schemas[name]
	return doc, ok
}

// Names returns the names of all registered documents, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered documents.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.schemas)
}

// Resolve looks up a validation reference of the form
// "<schemaName>#/<pointer>" and returns the referenced node inside the
// registered document. Pointer tokens are unescaped per RFC 6901.
func (r *Registry) Resolve(ref string) (any, error) {
	name, pointer, found := strings.Cut(ref, "#")
	if !found {
		return nil, fmt.Errorf("registry: reference %q has no fragment: %w", ref, ErrUnresolvedRef)
	}

	doc, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("registry: reference %q: %w %q", ref, ErrUnknownSchema, name)
	}

	node, err := walkPointer(doc, pointer)
	if err != nil {
		return nil, fmt.Errorf("registry: reference %q: %w", ref, err)
	}
	return node, nil
}

// walkPointer traverses a document following a JSON Pointer fragment.
func walkPointer(doc any, pointer string) (any, error) {
	pointer = strings.TrimPrefix(pointer, "/")
	if pointer == "" {
		return doc, nil
	}

	current := doc
	for _, token := range strings.Split(pointer, "/") {
		token = routes.UnescapePointerToken(token)

		switch node := current.(type) {
		case map[string]any:
			next, ok := node[token]
			if !ok {
				return nil, fmt.Errorf("%w: no member %q", ErrUnresolvedRef, token)
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(token)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, fmt.Errorf("%w: bad array index %q", ErrUnresolvedRef, token)
			}
			current = node[idx]
		default:
			return nil, fmt.Errorf("%w: cannot descend into %T at %q", ErrUnresolvedRef, current, token)
		}
	}

	return current, nil
}
