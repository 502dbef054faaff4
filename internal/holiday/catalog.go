package holiday

import (
	_ "embed"
	"fmt"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// Catalog provides holiday metadata by key.
type Catalog interface {
	Lookup(key string) (Info, bool)
	All() []Info
}

// MemoryCatalog is an immutable in-memory Catalog. It is safe for
// concurrent use.
type MemoryCatalog struct {
	byKey map[string]Info
	order []string
}

// NewCatalog validates infos and builds a catalog that preserves their order.
func NewCatalog(infos []Info) (*MemoryCatalog, error) {
	c := &MemoryCatalog{byKey: make(map[string]Info, len(infos))}
	for _, info := range infos {
		if err := info.Validate(); err != nil {
			return nil, err
		}
		if _, dup := c.byKey[info.Key]; dup {
			return nil, fmt.Errorf("duplicate holiday key %q", info.Key)
		}
		c.byKey[info.Key] = info.clone()
		c.order = append(c.order, info.Key)
	}
	return c, nil
}

// Lookup returns a copy of the holiday stored under key.
func (c *MemoryCatalog) Lookup(key string) (Info, bool) {
	info, ok := c.byKey[key]
	if !ok {
		return Info{}, false
	}
	return info.clone(), true
}

// All returns copies of every holiday in catalog order.
func (c *MemoryCatalog) All() []Info {
	out := make([]Info, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.byKey[key].clone())
	}
	return out
}

// Len returns the number of holidays.
func (c *MemoryCatalog) Len() int {
	return len(c.order)
}

func (i Info) clone() Info {
	i.Tags = slices.Clone(i.Tags)
	i.Name = maps.Clone(i.Name)
	i.Description = maps.Clone(i.Description)
	return i
}

// catalogFile is the YAML layout of a holiday catalog.
type catalogFile struct {
	Holidays []Info `yaml:"holidays"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*MemoryCatalog, error) {
	infos, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return NewCatalog(infos)
}

// Decode reads the holiday records of a YAML catalog document without
// building a catalog.
func Decode(data []byte) ([]Info, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse holiday catalog: %w", err)
	}
	if len(file.Holidays) == 0 {
		return nil, fmt.Errorf("parse holiday catalog: no holidays")
	}
	return file.Holidays, nil
}

//go:embed holidays.yaml
var defaultCatalogYAML []byte

// DefaultYAML returns the embedded catalog document.
func DefaultYAML() []byte {
	return slices.Clone(defaultCatalogYAML)
}

var defaultCatalog = sync.OnceValue(func() *MemoryCatalog {
	c, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("holiday: embedded catalog: %v", err))
	}
	return c
})

// Default returns the catalog embedded in the binary.
func Default() *MemoryCatalog {
	return defaultCatalog()
}
