package catalog

// Rating is the review summary attached to a product.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// RawProduct is a product as served by the external catalog. It is untrusted:
// Rating may be missing.
type RawProduct struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      *Rating `json:"rating,omitempty"`
}

// RatingOrZero returns the rating, defaulting to {0, 0} when absent.
func (p RawProduct) RatingOrZero() Rating {
	if p.Rating == nil {
		return Rating{}
	}
	return *p.Rating
}

// DisplayProduct is the localized product shown on a card. Values are built
// once per fetch and never modified.
type DisplayProduct struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Rating      Rating  `json:"rating"`
}
