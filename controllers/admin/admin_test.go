package admin

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"recruitment-dashboard/lib/admin/formconfig"
	"recruitment-dashboard/lib/admin/users"
	"recruitment-dashboard/lib/backend"
	"recruitment-dashboard/lib/dashboard"
	"recruitment-dashboard/lib/dashboard/fetcher"
	apimodels "recruitment-dashboard/models/api"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func newTestApp(t *testing.T) (*fiber.App, *recorder) {
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			rec.add(r.Method + " " + r.URL.Path)
		}
		switch {
		case r.URL.Path == "/api/users" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"email":"admin@x.io","role":"admin"},{"id":2,"email":"viewer@x.io","role":"viewer"}]`))
		case r.URL.Path == "/api/users" && r.Method == http.MethodPost:
			_, _ = w.Write([]byte(`{"success":true,"message":"User created successfully."}`))
		case r.URL.Path == "/api/form/config" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`[{"id":1,"name":"name","label":"Name","type":"text","subsection":"Basic Information","field_order":1,"required":1,"is_core":1},
				{"id":2,"name":"hobby","label":"Hobby","type":"text","subsection":"Additional Information","field_order":2,"required":0,"is_core":0}]`))
		case r.URL.Path == "/api/form/sections" && r.Method == http.MethodGet:
			_, _ = w.Write([]byte(`["Basic Information","Additional Information"]`))
		case r.URL.Path == "/api/data":
			_, _ = w.Write([]byte(`{"kpis":{},"charts":{},"table_data":[],"all_columns":[],"default_columns":[]}`))
		default:
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		}
	}))
	t.Cleanup(server.Close)

	client := backend.NewClient(server.URL, nil, "")
	state := dashboard.NewState()
	users.Instance = users.NewInstance(client)
	formconfig.Instance = formconfig.NewInstance(state, client)
	fetcher.Instance = fetcher.NewInstance(state, client)

	app := fiber.New()
	group := app.Group("/admin")
	InitUsersRouters(group)
	InitFormRouters(group)
	return app, rec
}

func do(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, apimodels.Response) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.Nil(t, err)
	data, err := io.ReadAll(resp.Body)
	require.Nil(t, err)
	var out apimodels.Response
	_ = json.Unmarshal(data, &out)
	return resp, out
}

func TestUsers(t *testing.T) {
	app, rec := newTestApp(t)

	resp, out := do(t, app, fiber.MethodGet, "/admin/users", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, out.Data, 2)

	t.Run(`add returns backend message`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/users/add", `{"email":" new@x.io ","password":"secret"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, "User created successfully.", out.Data)

		resp, _ = do(t, app, fiber.MethodPost, "/admin/users/add", `{"email":"","password":""}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`delete rules`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/users/delete", `{"id":1,"confirm":true}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(users.ErrAdminDelete), out.Message)

		resp, out = do(t, app, fiber.MethodPost, "/admin/users/delete", `{"id":2}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(users.ErrConfirmationRequired), out.Message)

		resp, _ = do(t, app, fiber.MethodPost, "/admin/users/delete", `{"id":2,"confirm":true}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, rec.list(), "POST /api/users/delete")
	})
}

func TestForm(t *testing.T) {
	app, rec := newTestApp(t)
	resp, _ := do(t, app, fiber.MethodGet, "/admin/form", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	t.Run(`order routes do not collide with field id`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/form/fields/order/move", `{"from":1,"to":0}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, MsgOrderChanged, out.Data)

		resp, _ = do(t, app, fiber.MethodPost, "/admin/form/fields/order/move", `{"from":5,"to":0}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

		resp, out = do(t, app, fiber.MethodPost, "/admin/form/fields/order/save", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Equal(t, formconfig.MsgFieldOrderSaved, out.Data)
		require.Contains(t, rec.list(), "POST /api/form/config/reorder")
	})

	t.Run(`field edit`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/form/fields/2", `{}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(formconfig.ErrNoFieldChanges), out.Message)

		resp, _ = do(t, app, fiber.MethodPost, "/admin/form/fields/2", `{"label":"Hobbies","required":"true"}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		resp, out = do(t, app, fiber.MethodPost, "/admin/form/fields/1/required", `{"required":false}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(formconfig.ErrCoreFieldOptional), out.Message)
	})

	t.Run(`field delete needs confirm`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/form/fields/2/delete", `{}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Equal(t, string(formconfig.ErrFieldDeleteNotConfirmed), out.Message)

		resp, _ = do(t, app, fiber.MethodPost, "/admin/form/fields/2/delete", `{"confirm":true}`)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		require.Contains(t, rec.list(), "DELETE /api/form/config/2")
	})

	t.Run(`section with fields is kept`, func(t *testing.T) {
		resp, out := do(t, app, fiber.MethodPost, "/admin/form/sections/delete", `{"name":"Basic Information","confirm":true}`)
		require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		require.Contains(t, out.Message, "contains 1 field(s)")
	})

	t.Run(`close reloads dashboard`, func(t *testing.T) {
		resp, _ := do(t, app, fiber.MethodPost, "/admin/form/close", "")
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
