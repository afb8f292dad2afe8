package taste

// Config tunes the runtime side of the engine.
type Config struct {
	// TopProducts caps the products returned per selected category.
	TopProducts int

	// Revalidate re-runs the hard filter against the live catalog before
	// serving a precomputed list. Products that changed specs or went off
	// sale since the build drop out.
	Revalidate bool
}

const (
	defaultTopProducts = 3
)

func DefaultConfig() Config {
	return Config{
		TopProducts: defaultTopProducts,
		Revalidate:  true,
	}
}
