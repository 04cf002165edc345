package render

// DefaultHeader is the banner title emitted above the generated blocks when
// Options does not override it.
const DefaultHeader = "ADDITIONAL ERC-20 TOKENS"

// Options carries per-request rendering overrides. The zero value reproduces
// the legacy generator output byte for byte.
type Options struct {
	// Header replaces the banner title in the leading comment line. Renderers
	// that have no banner (snapshot output) ignore it.
	Header string
}

// HeaderOrDefault resolves the banner title for renderers that emit one.
func (o Options) HeaderOrDefault() string {
	if o.Header == "" {
		return DefaultHeader
	}
	return o.Header
}
