package docshift

import (
	"fmt"
	"sort"
	"sync"
)

// Encoder converts one document into the textual form of a named output
// format. Encoders must be pure functions of their input document.
type Encoder func(doc any) (string, error)

// Registry maps format names to encoders. It is the dispatch surface a
// surrounding tool converts through ("give me this document as xml"). The
// zero value is not usable; construct via NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Encoder
}

func newRegistry() *Registry {
	return &Registry{entries: make(map[string]Encoder)}
}

// Register adds an encoder under name. Registering the same name twice is an
// error; replacing a format silently would make output depend on
// registration order.
func (r *Registry) Register(name string, enc Encoder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if name == "" {
		return fmt.Errorf("format name must not be empty")
	}
	if enc == nil {
		return fmt.Errorf("format %q: nil encoder", name)
	}
	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("format %q already registered", name)
	}

	r.entries[name] = enc
	return nil
}

// Encode converts doc using the encoder registered under name.
func (r *Registry) Encode(name string, doc any) (string, error) {
	r.mu.RLock()
	enc, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("format %q not registered", name)
	}

	out, err := enc(doc)
	if err != nil {
		return "", fmt.Errorf("format %q encode: %w", name, err)
	}
	return out, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MustRegister is Register panicking on error, for package-level wiring of
// formats that must not fail.
func MustRegister(r *Registry, name string, enc Encoder) {
	if err := r.Register(name, enc); err != nil {
		panic(err)
	}
}
