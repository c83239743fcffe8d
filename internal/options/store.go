// Package options keeps per-namespace tables of named, dash-prefixed
// configuration values with defaults-then-override semantics.
package options

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"

	apperrors "github.com/clustereng/provwrap/internal/errors"
)

// Store holds one option table per namespace. It is owned by the
// application and assumes externally serialized access.
type Store struct {
	namespaces map[string]map[string]string
}

func New() *Store {
	return &Store{namespaces: make(map[string]map[string]string)}
}

// Canonical returns the option name with its leading dash marker.
func Canonical(name string) string {
	if strings.HasPrefix(name, "-") {
		return name
	}
	return "-" + name
}

// Register seeds a namespace with its recognized options and their
// defaults. Registering an existing namespace merges in any options it
// does not already carry without touching current values.
func (s *Store) Register(namespace string, defaults map[string]string) {
	ns, ok := s.namespaces[namespace]
	if !ok {
		ns = make(map[string]string, len(defaults))
		s.namespaces[namespace] = ns
	}
	for name, value := range defaults {
		canonical := Canonical(name)
		if _, exists := ns[canonical]; !exists {
			ns[canonical] = value
		}
	}
}

// Defaults applies an alternating key/value list to a namespace and
// returns a copy of its full current option set. Keys may omit the dash
// marker; keys the namespace does not recognize are ignored silently. An
// odd trailing key is ignored. An empty list is a plain read.
func (s *Store) Defaults(namespace string, kv ...string) map[string]string {
	ns := s.namespaces[namespace]
	if ns == nil {
		ns = make(map[string]string)
		s.namespaces[namespace] = ns
	}

	for i := 0; i+1 < len(kv); i += 2 {
		canonical := Canonical(kv[i])
		if _, known := ns[canonical]; known {
			ns[canonical] = kv[i+1]
		}
	}

	current := make(map[string]string, len(ns))
	for name, value := range ns {
		current[name] = value
	}
	return current
}

// Get reads a single option, dash optional on the name.
func (s *Store) Get(namespace, name string) (string, bool) {
	ns := s.namespaces[namespace]
	if ns == nil {
		return "", false
	}
	value, ok := ns[Canonical(name)]
	return value, ok
}

// Namespaces lists the registered namespaces.
func (s *Store) Namespaces() []string {
	names := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		names = append(names, name)
	}
	return names
}

// Decode maps a namespace's options, dash markers stripped, onto a
// struct using weakly typed decoding.
func (s *Store) Decode(namespace string, out any) error {
	ns := s.namespaces[namespace]
	stripped := make(map[string]any, len(ns))
	for name, value := range ns {
		stripped[strings.TrimPrefix(name, "-")] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return apperrors.Wrap(err, apperrors.CodeInternal, "building options decoder")
	}
	if err := decoder.Decode(stripped); err != nil {
		return apperrors.Wrap(err, apperrors.CodeConfigParseError, "decoding options for namespace "+namespace)
	}
	return nil
}
