package assets

// Option configures an AssetRegistry during creation.
//
// Example:
//
//	// Default on-disk walker
//	reg, err := assets.New("content", abs, queue)
//
//	// Custom walker (dependency injection)
//	reg, err := assets.New("content", abs, queue, assets.WithWalker(w))
type Option func(*registryOptions)

// registryOptions holds optional configuration for registry creation.
type registryOptions struct {
	walker Walker
	newUID func() uint64
}

// WithWalker sets a custom directory walker for the registry.
// Use this to scan virtual filesystems or to control visit order in tests.
func WithWalker(w Walker) Option {
	return func(o *registryOptions) {
		o.walker = w
	}
}

// WithUIDSource sets the source of asset identifiers. The registry re-rolls
// values that are zero or already assigned, so the source does not need to
// guarantee uniqueness. The default source is math/rand/v2.
func WithUIDSource(next func() uint64) Option {
	return func(o *registryOptions) {
		o.newUID = next
	}
}
