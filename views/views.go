package views

import (
	"embed"
	"html/template"
	"io"
	"recruitment-dashboard/lib/admin/formconfig"
	"recruitment-dashboard/lib/charts"
	"recruitment-dashboard/lib/details"
	"recruitment-dashboard/lib/table"
	"recruitment-dashboard/lib/utils/helpers"
	"recruitment-dashboard/models"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	statusapimodels "recruitment-dashboard/models/api/status"
	usersapimodels "recruitment-dashboard/models/api/users"
	"strconv"

	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"formatName": helpers.FormatFieldName,
	"number": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
	"safeURL": func(link string) template.URL {
		return template.URL(link)
	},
	"add": func(a, b int) int {
		return a + b
	},
	"isDetailLink": func(kind table.CellKind) bool {
		return kind == table.CellDetailLink
	},
	"isResumeLink": func(kind table.CellKind) bool {
		return kind == table.CellResumeLink
	},
}

var templates = template.Must(template.New("views").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))

const (
	PageDashboard = "dashboard.html"
	PageDetails   = "details.html"
	PageStatus    = "status.html"
	PageUsers     = "users.html"
	PageForm      = "form.html"
)

func Render(w io.Writer, page string, data interface{}) error {
	if err := templates.ExecuteTemplate(w, page, data); err != nil {
		return errors.Wrapf(err, "ошибка отрисовки страницы %s", page)
	}
	return nil
}

// Flash уведомление после редиректа
type Flash struct {
	Notice string
	Error  string
}

type KPICard struct {
	Label string
	Value float64
}

type FilterSelect struct {
	Key      string
	Options  []string
	Selected string
	IsDate   bool
}

type ColumnToggle struct {
	Name    string
	Checked bool
}

type ChartImage struct {
	Name  string
	Title string
	Kind  charts.Kind
	URL   string
	Empty bool
}

type DashboardPage struct {
	Flash
	Banner  string
	Loading bool
	KPIs    []KPICard
	Filters []FilterSelect
	Columns []ColumnToggle
	Charts  []ChartImage
	Table   *table.Table
}

type DetailsPage struct {
	Row        int
	PrintDelay int
	View       *details.View
}

type StatusPage struct {
	Flash
	Candidates []statusapimodels.Candidate
	Statuses   []models.CandidateStatus
}

type UsersPage struct {
	Flash
	Users []usersapimodels.User
}

type FormPage struct {
	Flash
	View         *formconfig.View
	FieldTypes   []models.FieldType
	SectionIcons []string
	Rules        []string
}

// NewFilterSelects панель фильтров в фиксированном порядке
func NewFilterSelects(options *dashboardapimodels.FilterOptions, selected dashboardapimodels.Filters) []FilterSelect {
	result := make([]FilterSelect, 0, len(dashboardapimodels.FilterKeys))
	for _, key := range dashboardapimodels.FilterKeys {
		filter := FilterSelect{
			Key:      key,
			Selected: selected[key],
			IsDate:   key == dashboardapimodels.FilterStartDate || key == dashboardapimodels.FilterEndDate,
		}
		if !filter.IsDate {
			filter.Options = options.ByFilter(key)
			if filter.Selected == "" {
				filter.Selected = dashboardapimodels.FilterAll
			}
		}
		result = append(result, filter)
	}
	return result
}

// NewKPICards отсутствующий показатель выводится как 0
func NewKPICards(values map[string]float64) []KPICard {
	result := make([]KPICard, 0, len(dashboardapimodels.KPIs))
	for _, kpi := range dashboardapimodels.KPIs {
		result = append(result, KPICard{Label: kpi.Label, Value: values[kpi.Key]})
	}
	return result
}
