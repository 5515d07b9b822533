package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

// CarForm значения формы автомобиля для повторного показа
type CarForm struct {
	Action       string
	Submit       string
	Brand        string
	Name         string
	Type         string
	Transmission string
	Color        string
	ModelYear    string
	Price        string
	ImageURL     string
	Description  string

	// подсказки для полей type и transmission, backend принимает любые значения
	CarTypes      []string
	Transmissions []string
}

type carInput struct {
	Brand        string  `label:"Brand" validate:"required,max=64"`
	Name         string  `label:"Name" validate:"required,max=64"`
	Type         string  `label:"Type" validate:"required,max=32"`
	Transmission string  `label:"Transmission" validate:"required,max=32"`
	Color        string  `label:"Color" validate:"max=32"`
	ModelYear    int     `label:"Model year" validate:"omitempty,gte=1900,lte=2100"`
	Price        float64 `label:"Price" validate:"gt=0"`
	ImageURL     string  `label:"Image URL" validate:"omitempty,url"`
}

// NewCarForm возвращает пустую форму с подсказками
func NewCarForm(action, submit string) CarForm {
	return CarForm{
		Action:        action,
		Submit:        submit,
		CarTypes:      domain.CarTypes,
		Transmissions: domain.Transmissions,
	}
}

// CarFormFrom заполняет форму данными существующего автомобиля
func CarFormFrom(car domain.Car, action, submit string) CarForm {
	form := NewCarForm(action, submit)
	form.Brand = car.Brand
	form.Name = car.Name
	form.Type = car.Type
	form.Transmission = car.Transmission
	form.Color = car.Color
	if car.ModelYear != 0 {
		form.ModelYear = strconv.Itoa(car.ModelYear)
	}
	form.Price = strconv.FormatFloat(car.Price, 'f', -1, 64)
	form.ImageURL = car.ImageURL
	form.Description = car.Description
	return form
}

// ParseCarForm читает и проверяет форму автомобиля
// Возвращает заполненную форму (для повторного показа), автомобиль и сообщение об ошибке
func ParseCarForm(r *http.Request, action, submit string) (CarForm, domain.Car, string) {
	form := NewCarForm(action, submit)
	if err := r.ParseForm(); err != nil {
		return form, domain.Car{}, "Invalid form data."
	}

	form.Brand = strings.TrimSpace(r.PostFormValue("brand"))
	form.Name = strings.TrimSpace(r.PostFormValue("name"))
	form.Type = strings.TrimSpace(r.PostFormValue("type"))
	form.Transmission = strings.TrimSpace(r.PostFormValue("transmission"))
	form.Color = strings.TrimSpace(r.PostFormValue("color"))
	form.ModelYear = strings.TrimSpace(r.PostFormValue("modelYear"))
	form.Price = strings.TrimSpace(r.PostFormValue("price"))
	form.ImageURL = strings.TrimSpace(r.PostFormValue("imageUrl"))
	form.Description = strings.TrimSpace(r.PostFormValue("description"))

	input := carInput{
		Brand:        form.Brand,
		Name:         form.Name,
		Type:         form.Type,
		Transmission: form.Transmission,
		Color:        form.Color,
		ImageURL:     form.ImageURL,
	}

	if form.ModelYear != "" {
		year, err := strconv.Atoi(form.ModelYear)
		if err != nil {
			return form, domain.Car{}, "Model year must be a number."
		}
		input.ModelYear = year
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil {
		return form, domain.Car{}, "Price must be a number."
	}
	input.Price = price

	if msg := ValidateForm(input); msg != "" {
		return form, domain.Car{}, msg
	}

	return form, domain.Car{
		Brand:        input.Brand,
		Name:         input.Name,
		Type:         input.Type,
		Transmission: input.Transmission,
		Color:        input.Color,
		ModelYear:    input.ModelYear,
		Price:        input.Price,
		Description:  form.Description,
		ImageURL:     input.ImageURL,
	}, ""
}
