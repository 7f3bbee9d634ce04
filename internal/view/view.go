package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/octobees/vacation-recommendations/web/internal/dto"
	"github.com/octobees/vacation-recommendations/web/internal/entity"
	"github.com/octobees/vacation-recommendations/web/internal/service"
)

// IndexTemplate is the single page served at /.
const IndexTemplate = "index.html"

//go:embed templates/*.html
var templatesFS embed.FS

// Page is the data model of the index template.
type Page struct {
	Categories    []entity.Category
	VacationTypes []entity.VacationType
	Cities        []string
	MinRating     int
	MaxRating     int

	Snapshot     service.Snapshot
	Notification *service.Notification

	Ratings      dto.RatingsForm
	CostForm     dto.CostForm
	CityInfoForm dto.CityInfoForm

	RatingErrors   map[string]string
	CostErrors     map[string]string
	CityInfoErrors map[string]string

	Contact service.ContactInfo
	Year    int
}

// NewPage fills the fixed parts of the page.
func NewPage(cities *entity.CityList, contact service.ContactInfo, year int) *Page {
	if cities == nil {
		cities = entity.NewCityList(nil)
	}
	return &Page{
		Categories:    entity.Categories(),
		VacationTypes: entity.VacationTypes(),
		Cities:        cities.Names(),
		MinRating:     entity.MinRating,
		MaxRating:     entity.MaxRating,
		Contact:       contact,
		Year:          year,
	}
}

// Renderer renders the embedded html templates for echo.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render implements echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"formatCost": formatCost,
	"telURL":     telURL,
}

func formatCost(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

// telURL marks tel: links as safe; anything else is dropped.
func telURL(link string) template.URL {
	if !strings.HasPrefix(link, "tel:+") {
		return ""
	}
	return template.URL(link)
}
