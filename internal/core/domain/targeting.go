package domain

// Targeting describes who a campaign is aimed at.
type Targeting struct {
	Categories []string `json:"targetCategories"`
	Regions    []string `json:"targetRegions"`
}
