package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-CarRental/internal/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	layoutFile   = "layout.html"
	partialsFile = "_partials.html"
)

// Nav состояние навигационной панели
type Nav struct {
	LoggedIn bool
	Username string
	IsAdmin  bool
}

// Notice уведомление, показываемое над содержимым страницы
type Notice struct {
	Message  string
	Severity string
}

// Page общие данные любой страницы
type Page struct {
	Title  string
	Nav    Nav
	Notice *Notice
	Data   interface{}
}

// Renderer рендерит страницы из встроенных шаблонов
type Renderer struct {
	pages map[string]*template.Template
}

// New разбирает все шаблоны страниц вместе с общим layout
func New() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("views: list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := path.Base(file)
		if name == layoutFile || name == partialsFile {
			continue
		}

		tmpl, err := template.New(layoutFile).Funcs(funcs()).ParseFS(templatesFS,
			"templates/"+layoutFile, "templates/"+partialsFile, file)
		if err != nil {
			return nil, fmt.Errorf("views: parse %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render рендерит страницу с указанным HTTP статусом
// Шаблон исполняется в буфер, чтобы ошибка не оставила полуотправленный ответ
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, page Page) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: unknown page %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", page); err != nil {
		return fmt.Errorf("views: render %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"money": Money,
		"date":  Date,
		"statusColor": func(status domain.BookingStatus) string {
			return string(domain.ColorForStatus(string(status)))
		},
	}
}

// Money форматирует цену в долларах с точностью до цента, целые суммы без ".00":
// 80 -> "$80", 12.5 -> "$12.50", 0.1*3 -> "$0.30"
func Money(v float64) string {
	return "$" + strings.TrimSuffix(strconv.FormatFloat(v, 'f', 2, 64), ".00")
}

// Date возвращает дату без времени: "2024-03-01T00:00:00" -> "2024-03-01"
func Date(v string) string {
	if len(v) > len(domain.DateFormat) {
		return v[:len(domain.DateFormat)]
	}
	return v
}
