package catalog

// FabricTypes is the fixed set the filter sidebar offers.
var FabricTypes = []string{"Lawn", "Cotton", "Silk", "Chiffon", "Organza", "Velvet"}

var Collections = []Collection{
	{ID: "c1", Name: "The Festive Edit", Slug: "festive-edit", Description: "Statement pieces for shaadi season and beyond.", Image: "/images/collections/festive-edit.jpg", ProductCount: 4},
	{ID: "c2", Name: "Summer Lawn", Slug: "summer-lawn", Description: "Breathable lawn prints for the warm months.", Image: "/images/collections/summer-lawn.jpg", ProductCount: 3},
	{ID: "c3", Name: "Bridal Heirloom", Slug: "bridal-heirloom", Description: "Hand-embellished bridals made to be kept.", Image: "/images/collections/bridal-heirloom.jpg", ProductCount: 3},
}

var Categories = []Category{
	{ID: "cat1", Name: "Kurtas", Slug: "kurtas", Description: "Everyday and occasion kurtas.", ProductCount: 3},
	{ID: "cat2", Name: "Unstitched", Slug: "unstitched", Description: "Three-piece unstitched suits.", ProductCount: 3},
	{ID: "cat3", Name: "Formals", Slug: "formals", Description: "Evening and festive formals.", ProductCount: 3},
	{ID: "cat4", Name: "Bridal", Slug: "bridal", Description: "Bridal lehengas and gowns.", ProductCount: 3},
}

var sizesAll = []ProductSize{
	{Name: "XS", Available: true},
	{Name: "S", Available: true},
	{Name: "M", Available: true},
	{Name: "L", Available: true},
	{Name: "XL", Available: true},
}

var Products = []Product{
	{
		ID: "p1", Name: "Zainab Embroidered Kurta", Slug: "zainab-embroidered-kurta",
		Description: "A-line cotton kurta with tilla embroidery on the neckline.",
		Price:       4500, Images: []string{"/images/products/zainab-1.jpg", "/images/products/zainab-2.jpg"},
		Category: "Kurtas", CategorySlug: "kurtas", Fabric: "Cotton",
		Colors: []ProductColor{{Name: "Ivory", Hex: "#F8F4E9"}, {Name: "Rust", Hex: "#B7410E"}},
		Sizes:  sizesAll, Stock: 24, IsNew: true, Rating: 4.6, ReviewCount: 112,
		Features: []string{"Pure cotton", "Tilla handwork", "Relaxed fit"},
	},
	{
		ID: "p2", Name: "Mahnoor Lawn Suit", Slug: "mahnoor-lawn-suit",
		Description: "Digital-printed three-piece lawn with chiffon dupatta.",
		Price:       6800, OriginalPrice: 8500,
		Images:   []string{"/images/products/mahnoor-1.jpg"},
		Category: "Unstitched", CategorySlug: "unstitched", Collection: "Summer Lawn", Fabric: "Lawn",
		Colors: []ProductColor{{Name: "Mint", Hex: "#AAF0D1"}, {Name: "Coral", Hex: "#FF7F50"}},
		Sizes:  []ProductSize{{Name: "Unstitched", Available: true}},
		Stock:  40, IsSale: true, Rating: 4.4, ReviewCount: 268,
	},
	{
		ID: "p3", Name: "Noor Chiffon Maxi", Slug: "noor-chiffon-maxi",
		Description: "Floor-length chiffon maxi with sequinned bodice.",
		Price:       18500, Images: []string{"/images/products/noor-1.jpg"},
		Category: "Formals", CategorySlug: "formals", Collection: "The Festive Edit", Fabric: "Chiffon",
		Colors: []ProductColor{{Name: "Emerald", Hex: "#046307"}, {Name: "Wine", Hex: "#722F37"}},
		Sizes: []ProductSize{
			{Name: "XS", Available: false}, {Name: "S", Available: true},
			{Name: "M", Available: true}, {Name: "L", Available: true}, {Name: "XL", Available: false},
		},
		Stock: 12, IsTrending: true, Rating: 4.8, ReviewCount: 341,
		ModelInfo: "Model wears size S, height 5'7\"",
	},
	{
		ID: "p4", Name: "Gulbahar Velvet Shawl Suit", Slug: "gulbahar-velvet-shawl-suit",
		Description: "Winter velvet suit with embroidered shawl.",
		Price:       12900, OriginalPrice: 15500,
		Images:   []string{"/images/products/gulbahar-1.jpg"},
		Category: "Unstitched", CategorySlug: "unstitched", Collection: "The Festive Edit", Fabric: "Velvet",
		Colors: []ProductColor{{Name: "Maroon", Hex: "#800000"}, {Name: "Midnight", Hex: "#191970"}},
		Sizes:  []ProductSize{{Name: "Unstitched", Available: true}},
		Stock:  18, IsSale: true, Rating: 4.5, ReviewCount: 97,
	},
	{
		ID: "p5", Name: "Rania Bridal Lehenga", Slug: "rania-bridal-lehenga",
		Description: "Heirloom lehenga with dabka and kora work on pure silk.",
		Price:       185000, Images: []string{"/images/products/rania-1.jpg", "/images/products/rania-2.jpg"},
		Category: "Bridal", CategorySlug: "bridal", Collection: "Bridal Heirloom", Fabric: "Silk",
		Colors: []ProductColor{{Name: "Deep Red", Hex: "#850101"}, {Name: "Blush", Hex: "#DE5D83"}},
		Sizes: []ProductSize{
			{Name: "XS", Available: true}, {Name: "S", Available: true},
			{Name: "M", Available: true}, {Name: "L", Available: false}, {Name: "XL", Available: false},
		},
		Stock: 4, Rating: 4.9, ReviewCount: 58,
		Features: []string{"Pure raw silk", "Hand-set dabka", "Made to order alterations"},
	},
	{
		ID: "p6", Name: "Seher Organza Sari", Slug: "seher-organza-sari",
		Description: "Featherweight organza sari with scalloped borders.",
		Price:       23400, Images: []string{"/images/products/seher-1.jpg"},
		Category: "Formals", CategorySlug: "formals", Collection: "The Festive Edit", Fabric: "Organza",
		Colors: []ProductColor{{Name: "Champagne", Hex: "#F7E7CE"}, {Name: "Sage", Hex: "#9CAF88"}},
		Sizes:  []ProductSize{{Name: "Free Size", Available: true}},
		Stock:  9, IsNew: true, IsTrending: true, Rating: 4.7, ReviewCount: 183,
	},
	{
		ID: "p7", Name: "Dua Printed Lawn Kurta", Slug: "dua-printed-lawn-kurta",
		Description: "Boxy-fit printed lawn kurta for everyday wear.",
		Price:       3200, OriginalPrice: 4200,
		Images:   []string{"/images/products/dua-1.jpg"},
		Category: "Kurtas", CategorySlug: "kurtas", Collection: "Summer Lawn", Fabric: "Lawn",
		Colors: []ProductColor{{Name: "Sky", Hex: "#87CEEB"}, {Name: "Lemon", Hex: "#FFF44F"}},
		Sizes:  sizesAll, Stock: 55, IsSale: true, Rating: 4.2, ReviewCount: 426,
	},
	{
		ID: "p8", Name: "Amal Silk Shalwar Kameez", Slug: "amal-silk-shalwar-kameez",
		Description: "Raw silk shalwar kameez with mirror-work sleeves.",
		Price:       15800, Images: []string{"/images/products/amal-1.jpg"},
		Category: "Formals", CategorySlug: "formals", Fabric: "Silk",
		Colors: []ProductColor{{Name: "Teal", Hex: "#008080"}, {Name: "Mustard", Hex: "#FFDB58"}},
		Sizes: []ProductSize{
			{Name: "S", Available: true}, {Name: "M", Available: true},
			{Name: "L", Available: true},
		},
		Stock: 14, IsNew: true, Rating: 4.6, ReviewCount: 142,
	},
	{
		ID: "p9", Name: "Hoorain Walima Gown", Slug: "hoorain-walima-gown",
		Description: "Tail gown in pastel organza with pearl spray work.",
		Price:       96000, Images: []string{"/images/products/hoorain-1.jpg"},
		Category: "Bridal", CategorySlug: "bridal", Collection: "Bridal Heirloom", Fabric: "Organza",
		Colors: []ProductColor{{Name: "Pistachio", Hex: "#93C572"}, {Name: "Silver", Hex: "#C0C0C0"}},
		Sizes: []ProductSize{
			{Name: "XS", Available: true}, {Name: "S", Available: true},
			{Name: "M", Available: false}, {Name: "L", Available: true},
		},
		Stock: 6, IsNew: true, Rating: 4.8, ReviewCount: 34,
	},
	{
		ID: "p10", Name: "Layla Cotton Co-ord", Slug: "layla-cotton-co-ord",
		Description: "Two-piece cotton co-ord with block-printed trousers.",
		Price:       5400, Images: []string{"/images/products/layla-1.jpg"},
		Category: "Kurtas", CategorySlug: "kurtas", Fabric: "Cotton",
		Colors: []ProductColor{{Name: "Indigo", Hex: "#4B0082"}, {Name: "Sand", Hex: "#C2B280"}},
		Sizes:  sizesAll, Stock: 31, IsTrending: true, Rating: 4.3, ReviewCount: 204,
	},
	{
		ID: "p11", Name: "Mehr Nikkah Sharara", Slug: "mehr-nikkah-sharara",
		Description: "Ivory sharara set with gota detailing and net dupatta.",
		Price:       68000, OriginalPrice: 74000,
		Images:   []string{"/images/products/mehr-1.jpg"},
		Category: "Bridal", CategorySlug: "bridal", Collection: "Bridal Heirloom", Fabric: "Chiffon",
		Colors: []ProductColor{{Name: "Ivory", Hex: "#F8F4E9"}, {Name: "Gold", Hex: "#D4AF37"}},
		Sizes: []ProductSize{
			{Name: "S", Available: true}, {Name: "M", Available: true}, {Name: "L", Available: true},
		},
		Stock: 7, IsSale: true, Rating: 4.7, ReviewCount: 76,
	},
	{
		ID: "p12", Name: "Falak Lawn Three-Piece", Slug: "falak-lawn-three-piece",
		Description: "Embroidered lawn shirt with printed silk dupatta.",
		Price:       7900, Images: []string{"/images/products/falak-1.jpg"},
		Category: "Unstitched", CategorySlug: "unstitched", Collection: "Summer Lawn", Fabric: "Lawn",
		Colors: []ProductColor{{Name: "Peach", Hex: "#FFE5B4"}, {Name: "Olive", Hex: "#808000"}},
		Sizes:  []ProductSize{{Name: "Unstitched", Available: true}},
		Stock:  27, IsNew: true, Rating: 4.5, ReviewCount: 158,
	},
}
