package offer

import "sort"

// Offer representa un resultado de búsqueda normalizado, listo para el cliente.
// Los campos ausentes en el origen quedan en null en el JSON.
type Offer struct {
	Title    string   `json:"title"`
	Price    *float64 `json:"price"`
	Currency *string  `json:"currency"`
	Image    *string  `json:"image"`
	Link     *string  `json:"link"`
	Merchant *string  `json:"merchant"`
	Raw      any      `json:"raw"`
}

// SortByPrice orders offers ascending by price, in place. The sort is stable:
// offers with equal price keep their original relative order. Offers without a
// price (possible on the fallback path only in theory) sort last.
func SortByPrice(offers []Offer) {
	sort.SliceStable(offers, func(i, j int) bool {
		pi, pj := offers[i].Price, offers[j].Price
		if pi == nil {
			return false
		}
		if pj == nil {
			return true
		}
		return *pi < *pj
	})
}
