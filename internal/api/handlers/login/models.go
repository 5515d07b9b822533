package login

import (
	"net/http"
	"strings"
)

// PageData данные страницы входа
type PageData struct {
	Username string
	Error    string
}

// LoginForm форма входа
type LoginForm struct {
	Username string `label:"Username" validate:"required"`
	Password string `label:"Password" validate:"required"`
}

func parseLoginForm(r *http.Request) LoginForm {
	return LoginForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Password: r.PostFormValue("password"),
	}
}
