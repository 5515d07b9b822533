package register

import (
	"net/http"
	"strings"
)

// DefaultRole роль, с которой регистрируется пользователь из формы
const DefaultRole = "user"

// PageData данные страницы регистрации
type PageData struct {
	Username string
	Email    string
	Error    string
}

// RegisterForm форма регистрации
type RegisterForm struct {
	Username string `label:"Username" validate:"required,min=3,max=20"`
	Email    string `label:"Email" validate:"required,email,max=50"`
	Password string `label:"Password" validate:"required,min=6,max=40"`
}

func parseRegisterForm(r *http.Request) RegisterForm {
	return RegisterForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}
