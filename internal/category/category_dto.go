package category

// NavMenu feeds the category navigation. SelectedCategory echoes the
// request so the client can highlight it; it is not checked against
// Categories.
type NavMenu struct {
	Categories       []string `json:"categories"`
	SelectedCategory *string  `json:"selectedCategory"`
}
