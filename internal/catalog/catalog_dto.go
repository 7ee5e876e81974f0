package catalog

// BrowseRequest is what a collection page posts: the current filter
// sidebar state plus the display-count cursor it already holds. Count 0
// means first visit; LoadMore asks the server to advance the cursor.
type BrowseRequest struct {
	Filters  *FilterState `json:"filters"`
	Count    int          `json:"count"`
	LoadMore bool         `json:"loadMore"`
}

type BrowseResponse struct {
	Items        []Product `json:"items"`
	Total        int       `json:"total"`
	DisplayCount int       `json:"displayCount"`
	HasMore      bool      `json:"hasMore"`
}
