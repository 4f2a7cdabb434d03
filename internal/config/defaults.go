package config

// Default returns the built-in configuration written on first run.
// Each call builds fresh slices so callers can never alter the defaults.
func Default() *Config {
	return &Config{
		Vite: DependencySet{
			Dev:     []string{"tailwindcss", "postcss", "autoprefixer"},
			Project: []string{"react-router-dom"},
		},
		Next: DependencySet{
			Dev:     []string{"tailwindcss", "postcss", "autoprefixer"},
			Project: []string{},
		},
	}
}
