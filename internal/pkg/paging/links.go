package paging

// Link points at one page of a listing.
type Link struct {
	Page     int    `json:"page"`
	URL      string `json:"url"`
	Selected bool   `json:"selected"`
}

// Links builds one link per page, marking the current page as selected.
func Links(info Info, pageURL func(page int) string) []Link {
	total := info.TotalPages()
	links := make([]Link, 0, total)
	for p := 1; p <= total; p++ {
		links = append(links, Link{
			Page:     p,
			URL:      pageURL(p),
			Selected: p == info.CurrentPage,
		})
	}
	return links
}
