package cache

// Keyer generates cache keys for the pipeline's cache levels.
//
// Implementations must be deterministic: the same inputs always produce the
// same key, so identical layout requests share cache entries.
type Keyer interface {
	// DocumentKey generates a key for a stored document snapshot.
	DocumentKey(id string) string

	// LayoutKey generates a key for a layout result.
	// mapHash is the content hash of the mind map being laid out.
	LayoutKey(mapHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact.
	// layoutHash is the content hash of the positioned layout.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the layout parameters that affect node positions.
// Any field change must produce a different cache key.
type LayoutKeyOpts struct {
	Strategy string  `json:"strategy"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Padding  float64 `json:"padding"`
}

// ArtifactKeyOpts are the render parameters that affect artifact bytes.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Theme  string `json:"theme,omitempty"`
}

// DefaultKeyer is the standard Keyer implementation. Keys are namespaced by
// level and hashed so arbitrary input never produces unbounded or unsafe
// key strings.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DocumentKey generates a key for a stored document snapshot.
func (k *DefaultKeyer) DocumentKey(id string) string {
	return "doc:" + id
}

// LayoutKey generates a key for a layout result.
func (k *DefaultKeyer) LayoutKey(mapHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", mapHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
