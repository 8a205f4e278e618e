package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ctse-tools/nodebin/errs"
)

//go:embed profiles.yaml
var builtinProfiles []byte

// Set is a named collection of validated profiles.
type Set struct {
	profiles map[string]*Profile
}

type document struct {
	Profiles map[string]*Profile `yaml:"profiles"`
}

// Parse decodes and validates a profiles document.
//
// Unknown keys are rejected so that a typo in a column or table name fails
// loudly instead of silently producing a different binary.
func Parse(data []byte) (*Set, error) {
	var doc document

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidProfile, err)
	}

	if len(doc.Profiles) == 0 {
		return nil, fmt.Errorf("%w: no profiles defined", errs.ErrInvalidProfile)
	}

	for name, p := range doc.Profiles {
		if p == nil {
			return nil, fmt.Errorf("%w: %s: empty profile", errs.ErrInvalidProfile, name)
		}

		p.Name = name
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	return &Set{profiles: doc.Profiles}, nil
}

// Get returns the profile with the given name.
func (s *Set) Get(name string) (*Profile, error) {
	p, ok := s.profiles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %v)", errs.ErrUnknownProfile, name, s.Names())
	}

	return p, nil
}

// Names returns the profile names in sorted order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

var (
	builtinOnce sync.Once
	builtinSet  *Set
	builtinErr  error
)

// Builtin returns the embedded profile set. It is parsed once.
func Builtin() (*Set, error) {
	builtinOnce.Do(func() {
		builtinSet, builtinErr = Parse(builtinProfiles)
	})

	return builtinSet, builtinErr
}

// Load returns a built-in profile by name.
func Load(name string) (*Profile, error) {
	set, err := Builtin()
	if err != nil {
		return nil, err
	}

	return set.Get(name)
}
