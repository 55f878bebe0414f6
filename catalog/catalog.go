// Package catalog loads named error kinds from YAML files.
//
// A catalog file looks like:
//
//	name: Billing Error        # optional family name, defaults to jsuerror.DefaultName
//	kinds:
//	  - id: card_declined
//	    template: "Card {0} was declined"
//	  - id: quota
//	    template: "Quota of {0} exceeded"
//	    name: Quota Error      # optional per-kind name
//
// Each entry becomes one *jsuerror.Kind, created once when the catalog loads.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	jsuerror "github.com/xgx-io/jsu-error"
	"gopkg.in/yaml.v3"
)

// Built-in ids used by Default.
const (
	IDWrongTypeArgs       = "wrong_type_args"
	IDWrongNumberArgs     = "wrong_number_args"
	IDUnreachableResource = "unreachable_resource"
	IDNamespaceNotVoid    = "namespace_not_void"
)

// ErrInvalid is wrapped by every catalog validation failure.
var ErrInvalid = errors.New("invalid catalog")

// File is the on-disk shape of a catalog.
type File struct {
	Name  string  `yaml:"name"`
	Kinds []Entry `yaml:"kinds"`
}

// Entry describes a single kind.
type Entry struct {
	ID       string `yaml:"id"`
	Template string `yaml:"template"`
	Name     string `yaml:"name,omitempty"`
}

// Catalog is an immutable id → kind index.
type Catalog struct {
	kinds map[string]*jsuerror.Kind
	order []string
}

// Default returns a catalog of the four predefined kinds. Lookups return the
// shared process-wide kinds, so errors.Is matches instances built elsewhere.
func Default() *Catalog {
	c := &Catalog{kinds: make(map[string]*jsuerror.Kind, 4)}
	c.add(IDWrongTypeArgs, jsuerror.WrongTypeArgs())
	c.add(IDWrongNumberArgs, jsuerror.WrongNumberArgs())
	c.add(IDUnreachableResource, jsuerror.UnreachableResource())
	c.add(IDNamespaceNotVoid, jsuerror.NamespaceNotVoid())
	return c
}

// Load decodes a catalog from r. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &Catalog{kinds: map[string]*jsuerror.Kind{}}, nil
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return FromFile(f)
}

// LoadFile reads and decodes the catalog at path.
func LoadFile(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer fh.Close()

	c, err := Load(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// FromFile builds a catalog from an already decoded File. Every entry needs a
// unique, non-empty id.
func FromFile(f File) (*Catalog, error) {
	c := &Catalog{kinds: make(map[string]*jsuerror.Kind, len(f.Kinds))}
	var errs []error
	for i, e := range f.Kinds {
		if e.ID == "" {
			errs = append(errs, fmt.Errorf("%w: kinds[%d]: %w", ErrInvalid, i,
				jsuerror.WrongTypeArgs().NewMsg("Wrong type of arguments: id must be a non-empty string")))
			continue
		}
		if _, dup := c.kinds[e.ID]; dup {
			errs = append(errs, fmt.Errorf("%w: kinds[%d]: duplicate id %q", ErrInvalid, i, e.ID))
			continue
		}
		name := e.Name
		if name == "" {
			name = f.Name
		}
		c.add(e.ID, jsuerror.NewKind(e.Template, jsuerror.WithName(name)))
	}
	if err := jsuerror.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) add(id string, k *jsuerror.Kind) {
	c.kinds[id] = k
	c.order = append(c.order, id)
}

// Lookup returns the kind registered under id.
func (c *Catalog) Lookup(id string) (*jsuerror.Kind, bool) {
	k, ok := c.kinds[id]
	return k, ok
}

// IDs returns the ids in file order.
func (c *Catalog) IDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// SortedIDs returns the ids in lexical order.
func (c *Catalog) SortedIDs() []string {
	out := c.IDs()
	sort.Strings(out)
	return out
}

// Len returns the number of kinds. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.order)
}

// Merge returns a new catalog holding c's kinds overlaid with other's. Ids in
// other replace ids in c and keep c's position; new ids are appended. A nil
// other yields a copy of c.
func (c *Catalog) Merge(other *Catalog) *Catalog {
	out := &Catalog{kinds: make(map[string]*jsuerror.Kind, c.Len()+other.Len())}
	for _, id := range c.order {
		out.add(id, c.kinds[id])
	}
	if other == nil {
		return out
	}
	for _, id := range other.order {
		if _, ok := out.kinds[id]; ok {
			out.kinds[id] = other.kinds[id]
			continue
		}
		out.add(id, other.kinds[id])
	}
	return out
}
