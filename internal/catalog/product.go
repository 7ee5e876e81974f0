package catalog

// Product is read-only reference data: the dataset is fixed for the
// lifetime of the process and shared by every feature package.
type Product struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Slug          string         `json:"slug"`
	Description   string         `json:"description"`
	Price         int            `json:"price"`
	OriginalPrice int            `json:"originalPrice,omitempty"`
	Images        []string       `json:"images"`
	Category      string         `json:"category"`
	CategorySlug  string         `json:"categorySlug"`
	Collection    string         `json:"collection,omitempty"`
	Fabric        string         `json:"fabric"`
	Colors        []ProductColor `json:"colors"`
	Sizes         []ProductSize  `json:"sizes"`
	Stock         int            `json:"stock"`
	IsNew         bool           `json:"isNew,omitempty"`
	IsTrending    bool           `json:"isTrending,omitempty"`
	IsSale        bool           `json:"isSale,omitempty"`
	Rating        float64        `json:"rating"`
	ReviewCount   int            `json:"reviewCount"`
	Features      []string       `json:"features,omitempty"`
	ModelInfo     string         `json:"modelInfo,omitempty"`
}

type ProductColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

type ProductSize struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

type Collection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	ProductCount int    `json:"productCount"`
}

type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ProductCount int    `json:"productCount"`
}

type SortOption string

const (
	SortFeatured     SortOption = "featured"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortNewest       SortOption = "newest"
	SortBestSelling  SortOption = "best-selling"
)

// FilterState mirrors the criteria the storefront sends: inclusive price
// bounds plus accepted-value sets where an empty set means unconstrained.
type FilterState struct {
	PriceRange  [2]int     `json:"priceRange"`
	FabricTypes []string   `json:"fabricTypes"`
	Sizes       []string   `json:"sizes"`
	Colors      []string   `json:"colors"`
	SortBy      SortOption `json:"sortBy"`
}

const MaxPrice = 100000

// DefaultFilters is the reset state used by the filter sidebar.
func DefaultFilters() FilterState {
	return FilterState{
		PriceRange:  [2]int{0, MaxPrice},
		FabricTypes: []string{},
		Sizes:       []string{},
		Colors:      []string{},
		SortBy:      SortFeatured,
	}
}
