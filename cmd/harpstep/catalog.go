// cmd/harpstep/catalog.go
package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tamzrod/harp-stepper/internal/catalog"
)

type catalogEntry struct {
	Address     uint8    `yaml:"address"`
	Name        string   `yaml:"name"`
	Shape       string   `yaml:"shape"`
	Count       int      `yaml:"count"`
	Access      string   `yaml:"access"`
	Min         *float64 `yaml:"min,omitempty"`
	Max         *float64 `yaml:"max,omitempty"`
	Default     *float64 `yaml:"default,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

func catalogListing() []catalogEntry {
	all := catalog.All()
	out := make([]catalogEntry, 0, len(all))
	for _, e := range all {
		ce := catalogEntry{
			Address:     e.Address,
			Name:        e.Name,
			Shape:       e.Shape.String(),
			Count:       e.Count,
			Access:      e.Access.String(),
			Description: e.Description,
		}
		if l, ok := e.Limits(); ok {
			ce.Min, ce.Max, ce.Default = &l.Min, &l.Max, &l.Default
		}
		out = append(out, ce)
	}
	return out
}

func runCatalog(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(catalogListing()); err != nil {
		return err
	}
	return enc.Close()
}
