package reclaim

import "strings"

// IsDemoEnvironment reports whether an environment name follows the demo
// naming convention. The en-dash and hyphen forms are subsumed by the plain
// substring match.
func IsDemoEnvironment(name string) bool {
	lowered := strings.ToLower(name)
	return strings.Contains(lowered, "demo environment") ||
		strings.Contains(lowered, "– demo environment") ||
		strings.Contains(lowered, " - demo environment")
}

// IsDemoCollection reports whether a collection name follows the demo
// naming convention.
func IsDemoCollection(name string) bool {
	lowered := strings.ToLower(name)
	return strings.HasPrefix(lowered, "enterprise –") ||
		strings.HasPrefix(lowered, "enterprise -") ||
		strings.Contains(lowered, "demo collection")
}
