package domain

// Role markers
const (
	RoleAdmin = "ROLE_ADMIN"
	RoleUser  = "ROLE_USER"
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // формат дат в теле бронирования
)

// PlaceholderImageURL изображение для автомобилей без imageUrl
const PlaceholderImageURL = "https://images.unsplash.com/photo-1511918984145-48de785d4c4e?auto=format&fit=crop&w=800&q=80"

// CarTypes типы кузова, предлагаемые в фильтре каталога
var CarTypes = []string{"Sedan", "SUV", "Sports"}

// Transmissions типы коробки передач для фильтра каталога
var Transmissions = []string{"Automatic", "Manual"}
