package docshift

// Registration is a deferred format registration. Packages that define
// output formats expose values of this type so callers opt in explicitly
// instead of relying on import side-effects (init functions).
//
// For example, in a package "tomlfmt":
//
//	var TOML = docshift.NewFormat("toml", func(doc any) (string, error) { ... })
//
// Usage:
//
//	r, _ := docshift.NewRegistry(docshift.Builtin(), tomlfmt.TOML)
//
// This keeps dependencies explicit and avoids global mutation at import time.
type Registration func(r *Registry) error

// NewFormat wraps Register into a Registration closure so that dependent
// packages can expose named formats without performing side effects at
// import time.
func NewFormat(name string, enc Encoder) Registration {
	return func(r *Registry) error {
		return r.Register(name, enc)
	}
}

// Group groups multiple registrations into one. This allows fluent usage
// without variadic expansion, e.g.:
//
//	docshift.Apply(r, docshift.Group(docshift.JSONFormat, docshift.XMLFormat), other)
//
// or with the builtin bundle:
//
//	docshift.Apply(r, docshift.Builtin(), other)
func Group(regs ...Registration) Registration {
	return func(r *Registry) error { return Apply(r, regs...) }
}

// Apply applies one or more registrations to an existing registry. Stops at
// the first error and returns it.
func Apply(r *Registry, regs ...Registration) error {
	for _, reg := range regs {
		if err := reg(r); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry constructs a new registry and applies the provided
// registrations.
func NewRegistry(regs ...Registration) (*Registry, error) {
	r := newRegistry()
	if err := Apply(r, regs...); err != nil {
		return nil, err
	}
	return r, nil
}
