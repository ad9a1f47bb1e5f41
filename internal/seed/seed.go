// Package seed loads declarative YAML seed files describing the catalog to
// replay against a Saleor instance.
package seed

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// File is the root of a seed document. Every input map is passed through to
// the API as-is, merged over the loader defaults, so the YAML keys follow the
// Saleor GraphQL input types directly.
type File struct {
	Shop          map[string]interface{}   `yaml:"shop,omitempty"`
	Channels      []map[string]interface{} `yaml:"channels,omitempty"`
	Warehouses    []map[string]interface{} `yaml:"warehouses,omitempty"`
	ShippingZones []map[string]interface{} `yaml:"shippingZones,omitempty"`
	Attributes    []Attribute              `yaml:"attributes,omitempty"`
	ProductTypes  []map[string]interface{} `yaml:"productTypes,omitempty"`
	Products      []Product                `yaml:"products,omitempty"`
}

// Attribute declares an attribute and the values to add to it.
type Attribute struct {
	Input  map[string]interface{}   `yaml:"input"`
	Values []map[string]interface{} `yaml:"values,omitempty"`
}

// Product declares a product, its variants and its media. Type names a
// product type declared earlier in the same file, or holds a raw id.
type Product struct {
	Type     string                 `yaml:"type"`
	Input    map[string]interface{} `yaml:"input"`
	Variants []Variant              `yaml:"variants,omitempty"`
	Media    []Media                `yaml:"media,omitempty"`
}

// Variant declares a product variant with its channel prices and stocks.
type Variant struct {
	Input           map[string]interface{}   `yaml:"input"`
	ChannelListings []map[string]interface{} `yaml:"channelListings,omitempty"`
	Stocks          []map[string]interface{} `yaml:"stocks,omitempty"`
}

// Media declares one media attachment, either a local file to upload or a
// URL to pass through.
type Media struct {
	Path string `yaml:"path,omitempty"`
	URL  string `yaml:"url,omitempty"`
	Alt  string `yaml:"alt,omitempty"`
}

// Load reads the seed document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read seed file")
	}
	return Parse(data)
}

// Parse decodes a seed document, expanding ${VAR} environment references
// first so secrets and hosts can stay out of the file.
func Parse(data []byte) (*File, error) {
	expanded := os.Expand(string(data), os.Getenv)
	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, errors.Wrap(err, "parse seed file")
	}
	return &f, nil
}
