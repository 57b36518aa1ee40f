package config

// NewInputLoaderWithEnviron creates an InputLoader reading a fixed environment.
func NewInputLoaderWithEnviron(environ []string) *InputLoader {
	return &InputLoader{environ: func() []string { return environ }}
}
