package config

// ProductionEnv is the NODE_ENV value that selects production mode.
const ProductionEnv = "production"

// IsProduction reports whether env names the production environment.
// The comparison is exact: "Production" or " production" do not count.
func IsProduction(env string) bool { return env == ProductionEnv }

// BasePath returns the asset base path the front end is built against.
func BasePath(production bool) string {
	if production {
		return "./"
	}
	return "/"
}
