package assets

// Kind is the asset type a loader decodes a file as.
type Kind string

const (
	KindModel    Kind = "model"
	KindMaterial Kind = "material"
	KindScript   Kind = "script"
	KindTexture  Kind = "texture"
	KindFont     Kind = "font"
)

func (k Kind) Valid() bool {
	switch k {
	case KindModel, KindMaterial, KindScript, KindTexture, KindFont:
		return true
	}
	return false
}

// Request names one asset to load.
type Request struct {
	URL  string
	Kind Kind
}
