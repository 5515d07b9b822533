package rentalapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

var (
	opCarsList   = operation{name: "cars.list", fallback: "Failed to fetch cars. Please try again later."}
	opCarsGet    = operation{name: "cars.get", fallback: "Failed to fetch car details. Please try again later."}
	opCarsSearch = operation{name: "cars.search", fallback: "Failed to filter cars. Please try again."}
	opCarsCreate = operation{name: "cars.create", fallback: "Error adding car"}
	opCarsUpdate = operation{name: "cars.update", fallback: "Error updating car"}
	opCarsDelete = operation{name: "cars.delete", fallback: "Error deleting car"}
)

// CarService вызовы каталога автомобилей
// Мутации не возвращают обновленный список: вызывающий перечитывает его сам
type CarService struct {
	client *Client
}

// List GET /cars
func (s *CarService) List(ctx context.Context) ([]domain.Car, error) {
	cars := []domain.Car{}
	if err := s.client.do(ctx, opCarsList, http.MethodGet, "/cars", nil, nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetByID GET /cars/{id}
func (s *CarService) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	var car *domain.Car
	if err := s.client.do(ctx, opCarsGet, http.MethodGet, fmt.Sprintf("/cars/%d", id), nil, nil, &car); err != nil {
		return nil, err
	}
	if car == nil {
		// пустое тело при 200 трактуем как отсутствие записи
		return nil, &APIError{Op: opCarsGet.name, StatusCode: http.StatusOK, Message: "Car not found", kind: ErrNotFound}
	}
	return car, nil
}

// Search GET /cars/search; пустые поля фильтра не попадают в query
func (s *CarService) Search(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	cars := []domain.Car{}
	if err := s.client.do(ctx, opCarsSearch, http.MethodGet, "/cars/search", filter.Query(), nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// Create POST /cars
func (s *CarService) Create(ctx context.Context, car domain.Car) (*domain.Car, error) {
	var created domain.Car
	if err := s.client.do(ctx, opCarsCreate, http.MethodPost, "/cars", nil, car, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update PUT /cars/{id}
func (s *CarService) Update(ctx context.Context, id int64, car domain.Car) (*domain.Car, error) {
	var updated domain.Car
	if err := s.client.do(ctx, opCarsUpdate, http.MethodPut, fmt.Sprintf("/cars/%d", id), nil, car, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete DELETE /cars/{id}
func (s *CarService) Delete(ctx context.Context, id int64) error {
	return s.client.do(ctx, opCarsDelete, http.MethodDelete, fmt.Sprintf("/cars/%d", id), nil, nil, nil)
}
