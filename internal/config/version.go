package config

// Overridden at build time via -ldflags
var (
	version = "0.1.0"
	build   = "dev"
)

func GetFullVersion() string {
	if build == "" {
		return version
	}
	return version + "+" + build
}
