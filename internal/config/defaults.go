package config

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		Host:         "simon-ws",
		SiteURL:      "https://github.com/Ssbullock",
		ContactEmail: "simonscholar155@gmail.com",
		Theme:        ThemeDark,
		NarrowWidth:  100,
	}
}
