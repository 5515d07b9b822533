package domain

import (
	"net/url"
	"strings"
)

// Car represents a rental car from the backend catalog
type Car struct {
	ID           int64   `json:"id"`
	Brand        string  `json:"brand"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Transmission string  `json:"transmission"`
	Color        string  `json:"color"`
	ModelYear    int     `json:"modelYear"`
	Price        float64 `json:"price"` // цена за сутки
	Description  string  `json:"description"`
	ImageURL     string  `json:"imageUrl"`
}

// Title returns "<brand> <name>"
func (c Car) Title() string {
	return strings.TrimSpace(c.Brand + " " + c.Name)
}

// Image returns the car image or the placeholder if none is set
func (c Car) Image() string {
	if c.ImageURL == "" {
		return PlaceholderImageURL
	}
	return c.ImageURL
}

// CarFilter фильтр поиска автомобилей
// Пустые поля не ограничивают поиск
type CarFilter struct {
	Brand        string
	Type         string
	Transmission string
}

// IsEmpty returns true if no filter field is set
func (f CarFilter) IsEmpty() bool {
	return strings.TrimSpace(f.Brand) == "" &&
		strings.TrimSpace(f.Type) == "" &&
		strings.TrimSpace(f.Transmission) == ""
}

// Query собирает query-параметры, пропуская пустые поля
func (f CarFilter) Query() url.Values {
	q := url.Values{}
	if v := strings.TrimSpace(f.Brand); v != "" {
		q.Set("brand", v)
	}
	if v := strings.TrimSpace(f.Type); v != "" {
		q.Set("type", v)
	}
	if v := strings.TrimSpace(f.Transmission); v != "" {
		q.Set("transmission", v)
	}
	return q
}
