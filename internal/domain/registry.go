package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Registry maps library names to their snapshots. It is the unit of
// persistence: every save serializes the whole registry, every load replaces
// it wholesale. Enumeration order is insertion order, and that order survives
// a serialize/deserialize round trip.
type Registry struct {
	names []string
	libs  map[string]*Library
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		names: []string{},
		libs:  make(map[string]*Library),
	}
}

// Len returns the number of libraries.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the library names in insertion order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// First returns the first library name, or "" when the registry is empty.
// The first library is the one activated after a load.
func (r *Registry) First() string {
	if len(r.names) == 0 {
		return ""
	}
	return r.names[0]
}

// Contains reports whether a library with the given name exists.
// Matching is case-sensitive and exact.
func (r *Registry) Contains(name string) bool {
	_, ok := r.libs[name]
	return ok
}

// Get returns the library with the given name, or nil.
func (r *Registry) Get(name string) *Library {
	return r.libs[name]
}

// Put stores a library snapshot under its name, appending the name on first
// insert and replacing the snapshot on subsequent ones.
func (r *Registry) Put(lib *Library) {
	if _, ok := r.libs[lib.Name]; !ok {
		r.names = append(r.names, lib.Name)
	}
	r.libs[lib.Name] = lib
}

// Clone returns a deep copy of the registry.
func (r *Registry) Clone() *Registry {
	out := NewRegistry()
	for _, name := range r.names {
		out.Put(r.libs[name].Clone())
	}
	return out
}

// libraryPayload is the persisted value for one library. The name lives in
// the enclosing object's key, not in the payload.
type libraryPayload struct {
	Books        []Book    `json:"books"`
	Chapters     []Chapter `json:"chapters"`
	Details      []Detail  `json:"details"`
	CustomGenres []string  `json:"customGenres"`
}

// MarshalJSON serializes the registry as a JSON object keyed by library name.
// The object's keys appear in insertion order, which stock map marshalling
// cannot guarantee, hence the hand-rolled encoder.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range r.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, fmt.Errorf("marshal library name %q: %w", name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		lib := r.libs[name]
		payload, err := json.Marshal(libraryPayload{
			Books:        lib.Books,
			Chapters:     lib.Chapters,
			Details:      lib.Details,
			CustomGenres: lib.CustomGenres,
		})
		if err != nil {
			return nil, fmt.Errorf("marshal library %q: %w", name, err)
		}
		buf.Write(payload)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes the persisted object, recovering library insertion
// order from the document's key order.
func (r *Registry) UnmarshalJSON(data []byte) error {
	r.names = []string{}
	r.libs = make(map[string]*Library)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read registry document: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("registry document is not a JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read library name: %w", err)
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("library name is not a string")
		}

		var payload libraryPayload
		if err := dec.Decode(&payload); err != nil {
			return fmt.Errorf("decode library %q: %w", name, err)
		}

		lib := &Library{
			Name:         name,
			Books:        payload.Books,
			Chapters:     payload.Chapters,
			Details:      payload.Details,
			CustomGenres: payload.CustomGenres,
		}
		lib.normalize()
		r.Put(lib)
	}

	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read registry document end: %w", err)
	}
	return nil
}
