package models

// Product is a catalog record fetched from the upstream product API. It is
// read-only inside this service; cart lines and favorites keep snapshots of
// its fields instead of live references.
type Product struct {
	ID                  int      `json:"id"`
	Title               string   `json:"title"`
	Brand               string   `json:"brand"`
	Category            string   `json:"category"`
	Price               float64  `json:"price"`
	DiscountPercentage  float64  `json:"discountPercentage"`
	Rating              float64  `json:"rating"`
	Stock               int      `json:"stock"`
	Thumbnail           string   `json:"thumbnail"`
	Images              []string `json:"images"`
	Description         string   `json:"description"`
	WarrantyInformation string   `json:"warrantyInformation"`
	ReturnPolicy        string   `json:"returnPolicy"`
}

// DiscountedPrice returns the unit price after applying the discount
// percentage. A missing discount counts as zero.
func (p Product) DiscountedPrice() float64 {
	return p.Price * (100 - p.DiscountPercentage) / 100
}
