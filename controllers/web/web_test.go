package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/lib/dashboard/fetcher"
	"recruitment-dashboard/lib/details"
	xlsexport "recruitment-dashboard/lib/export/xls"
	"recruitment-dashboard/lib/resume"
	"recruitment-dashboard/lib/status"
	apimodels "recruitment-dashboard/models/api"
	dashboardapimodels "recruitment-dashboard/models/api/dashboard"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

const dataPayload = `{"kpis":{"applications":2},"charts":{"apps_per_company":{"Acme":2}},
	"table_data":[{"name":"Ann","email":"ann@x.io","Status":"Hired"},{"name":"Bob","email":"bob@x.io","Status":""}],
	"filters":{"locations":["NY"]},
	"all_columns":["name","email","Status"],"default_columns":["name"]}`

const formConfigPayload = `[{"id":1,"name":"name","label":"Full Name","type":"text","subsection":"Personal Details","field_order":1},
	{"id":2,"name":"email","label":"Email","type":"email","subsection":"Contact & Position","field_order":1}]`

func fakeBackend(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/data":
			_, _ = w.Write([]byte(dataPayload))
		case "/api/form/config":
			_, _ = w.Write([]byte(formConfigPayload))
		case "/api/update_status":
			_, _ = w.Write([]byte(`{"success":true,"message":"Status updated"}`))
		case "/uploads/cv.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error":"Not found"}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestApp(t *testing.T) (*fiber.App, *dashboard.State) {
	client := backend.NewClient(fakeBackend(t).URL, nil, "")
	backend.Instance = client
	state := dashboard.NewState()
	fetcher.Instance = fetcher.NewInstance(state, client)
	status.Instance = status.NewInstance(state, client)
	details.Instance = details.NewInstance(client, nil)
	resume.Instance = nil
	xlsexport.NewHandler()

	app := fiber.New()
	InitDashboardRouters(app, state)
	InitExportRouters(app, state)
	InitChartsRouters(app, state, 320, 200, 2)
	InitDetailsRouters(app, state, 250*time.Millisecond)
	InitStatusRouters(app)
	InitUploadsRouters(app)
	return app, state
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, string) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	return resp, string(data)
}

func apiResponse(t *testing.T, body string) apimodels.Response {
	var resp apimodels.Response
	require.Nil(t, json.Unmarshal([]byte(body), &resp))
	return resp
}

func TestDashboard(t *testing.T) {
	t.Run(`first open loads data`, func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, body := do(t, app, fiber.MethodGet, "/", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Ann")
		require.Contains(t, body, "/charts/appsPerCompanyChart.png?v=")

		_, body = do(t, app, fiber.MethodGet, "/api/state", "")
		var state dashboardapimodels.StateResponse
		require.Nil(t, json.Unmarshal([]byte(body), &state))
		require.Equal(t, 2, state.Rows)
		require.True(t, state.FiltersPopulated)
		require.Equal(t, []string{"name"}, state.CheckedColumns)
	})

	t.Run(`column toggle survives plain reopen`, func(t *testing.T) {
		app, state := newTestApp(t)
		do(t, app, fiber.MethodGet, "/", "")
		resp, _ := do(t, app, fiber.MethodPost, "/columns", `{"column":"email","visible":true}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, []string{"name", "email"}, state.CheckedColumns())

		do(t, app, fiber.MethodGet, "/", "")
		require.Equal(t, []string{"name", "email"}, state.CheckedColumns())

		do(t, app, fiber.MethodGet, "/?refresh=1", "")
		require.Equal(t, []string{"name"}, state.CheckedColumns())
	})

	t.Run(`unknown column`, func(t *testing.T) {
		app, _ := newTestApp(t)
		do(t, app, fiber.MethodGet, "/", "")
		resp, body := do(t, app, fiber.MethodPost, "/columns", `{"column":"salary","visible":true}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(ErrUnknownColumn), apiResponse(t, body).Message)
	})

	t.Run(`browser gets redirect`, func(t *testing.T) {
		app, _ := newTestApp(t)
		req := httptest.NewRequest(fiber.MethodPost, "/filters/reset", nil)
		resp, err := app.Test(req, -1)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		require.Equal(t, "/", resp.Header.Get(fiber.HeaderLocation))
	})
}

func TestExport(t *testing.T) {
	t.Run(`no data`, func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, body := do(t, app, fiber.MethodGet, "/export/csv", "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(ErrNoData), apiResponse(t, body).Message)

		resp, _ = do(t, app, fiber.MethodGet, "/export/xlsx", "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`checked columns`, func(t *testing.T) {
		app, _ := newTestApp(t)
		do(t, app, fiber.MethodGet, "/", "")
		resp, body := do(t, app, fiber.MethodGet, "/export/csv", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "name\nAnn\nBob", body)
		require.Equal(t, `attachment; filename="recruitment_data.csv"`, resp.Header.Get(fiber.HeaderContentDisposition))

		resp, body = do(t, app, fiber.MethodGet, "/export/xlsx", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.True(t, strings.HasPrefix(body, "PK"))
	})
}

func TestCharts(t *testing.T) {
	app, _ := newTestApp(t)
	resp, _ := do(t, app, fiber.MethodGet, "/charts/unknownChart.png", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodGet, "/charts/genderDiversityChart.png", "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestDetails(t *testing.T) {
	app, _ := newTestApp(t)
	do(t, app, fiber.MethodGet, "/", "")

	t.Run(`page`, func(t *testing.T) {
		resp, body := do(t, app, fiber.MethodGet, "/candidates/0", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Ann")
		require.Contains(t, body, "mailto:ann@x.io")
	})

	t.Run(`print`, func(t *testing.T) {
		resp, body := do(t, app, fiber.MethodGet, "/candidates/1/print", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, body, "Bob")
		require.Contains(t, body, "250")
	})

	t.Run(`pdf`, func(t *testing.T) {
		resp, body := do(t, app, fiber.MethodGet, "/candidates/0/pdf", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.True(t, strings.HasPrefix(body, "%PDF"))
	})

	t.Run(`unknown row`, func(t *testing.T) {
		resp, body := do(t, app, fiber.MethodGet, "/candidates/7", "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(ErrCandidateNotFound), apiResponse(t, body).Message)

		resp, _ = do(t, app, fiber.MethodGet, "/candidates/abc", "")
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestStatus(t *testing.T) {
	app, _ := newTestApp(t)
	do(t, app, fiber.MethodGet, "/", "")

	resp, body := do(t, app, fiber.MethodGet, "/status", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Contains(t, body, "ann@x.io")

	resp, body = do(t, app, fiber.MethodPost, "/status", `{"email":"ann@x.io","name":"Ann","status":"Offered"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, status.FeedbackSaved, apiResponse(t, body).Data)

	resp, _ = do(t, app, fiber.MethodPost, "/status", `{"email":"ann@x.io","name":"Ann","status":"Pending"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, fiber.MethodPost, "/status/close", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUploads(t *testing.T) {
	app, _ := newTestApp(t)
	resp, body := do(t, app, fiber.MethodGet, "/uploads/cv.pdf", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	require.Equal(t, "%PDF-1.4", body)

	resp, _ = do(t, app, fiber.MethodGet, "/uploads/missing.pdf", "")
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
