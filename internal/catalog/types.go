package catalog

// Item is a single extension entry. Name is its identity.
type Item struct {
	Name        string `json:"name" yaml:"name" validate:"required,max=64"`
	Logo        string `json:"logo" yaml:"logo"`
	Description string `json:"description" yaml:"description" validate:"max=280"`
	IsActive    bool   `json:"isActive" yaml:"isActive"`
}

// File is the on-disk seed format, in either YAML or JSON.
type File struct {
	Version    string `json:"version,omitempty" yaml:"version,omitempty"`
	Extensions []Item `json:"extensions" yaml:"extensions" validate:"dive"`
}
