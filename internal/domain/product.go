package domain

import "fmt"

// Product is a catalog entry. Prices are stored in cents so totals
// never accumulate float error.
type Product struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
}

// FormatCents renders an amount in cents as a dollar string, e.g. 3999 -> "$39.99".
func FormatCents(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	return fmt.Sprintf("%s$%d.%02d", sign, n/100, n%100)
}

func (p Product) DisplayPrice() string { return FormatCents(p.Price) }
