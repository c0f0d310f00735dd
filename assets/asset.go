package assets

import (
	"path"

	"github.com/google/uuid"
)

// Asset is a registry entry. Resource holds the decoded value once Loaded.
type Asset struct {
	ID       uuid.UUID
	Name     string
	URL      string
	Kind     Kind
	Resource any
	Loaded   bool
	Err      error
}

func newAsset(url string, kind Kind) *Asset {
	return &Asset{
		ID:   uuid.New(),
		Name: path.Base(cleanAssetPath(url)),
		URL:  url,
		Kind: kind,
	}
}

// Model returns the decoded model, or nil.
func (a *Asset) Model() *Model {
	if a == nil {
		return nil
	}
	m, _ := a.Resource.(*Model)
	return m
}

// Material returns the decoded material, or nil.
func (a *Asset) Material() *Material {
	if a == nil {
		return nil
	}
	m, _ := a.Resource.(*Material)
	return m
}

// Texture returns the decoded texture, or nil.
func (a *Asset) Texture() *Texture {
	if a == nil {
		return nil
	}
	t, _ := a.Resource.(*Texture)
	return t
}

// Font returns the decoded font, or nil.
func (a *Asset) Font() *Font {
	if a == nil {
		return nil
	}
	f, _ := a.Resource.(*Font)
	return f
}
