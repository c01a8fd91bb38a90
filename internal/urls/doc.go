// Package urls provides centralized constants for the external URLs aion
// points users to.
//
// All URLs are defined here so they can be updated in a single location
// before release.
//
// Usage:
//
//	import "github.com/aion-dev/aion/internal/urls"
//
//	fmt.Printf("Get an API key at: %s\n", urls.ForProvider(cfg.Provider.Kind))
package urls
