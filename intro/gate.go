package intro

// ShouldShow decides at mount time whether the overlay is displayed
func ShouldShow(enabled, showEveryVisit, seen bool) bool {
	return enabled && (showEveryVisit || !seen)
}
