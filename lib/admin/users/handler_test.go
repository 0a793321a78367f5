package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"recruitment-dashboard/lib/backend"
	usersapimodels "recruitment-dashboard/models/api/users"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	deleteCalls int
	createCalls int
}

func (f *fakeBackend) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/users":
			_, _ = w.Write([]byte(`[{"id":1,"email":"admin@x","role":"admin"},{"id":2,"email":"v@x","role":"viewer"}]`))
		case r.Method == http.MethodPost && r.URL.Path == "/api/users":
			f.createCalls++
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"User with email 'v@x' already exists."}`))
		case r.URL.Path == "/api/users/delete":
			f.deleteCalls++
			_, _ = w.Write([]byte(`{"success":true,"message":"User deleted."}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestUsers(t *testing.T) {
	fake := &fakeBackend{}
	server := fake.server()
	defer server.Close()
	handler := NewInstance(backend.NewClient(server.URL, nil, ""))

	list, err := handler.List(context.TODO())
	require.Nil(t, err)
	require.Len(t, list, 2)
	require.False(t, list[0].CanDelete())

	t.Run(`admin cannot be deleted`, func(t *testing.T) {
		err := handler.Delete(context.TODO(), 1, true)
		require.Equal(t, ErrAdminDelete, err)
		require.Equal(t, 0, fake.deleteCalls)
	})

	t.Run(`confirmation required`, func(t *testing.T) {
		err := handler.Delete(context.TODO(), 2, false)
		require.Equal(t, ErrConfirmationRequired, err)
		require.Equal(t, 0, fake.deleteCalls)
	})

	t.Run(`viewer deleted`, func(t *testing.T) {
		require.Nil(t, handler.Delete(context.TODO(), 2, true))
		require.Equal(t, 1, fake.deleteCalls)
	})

	t.Run(`unknown user not deleted`, func(t *testing.T) {
		calls := fake.deleteCalls
		require.Equal(t, ErrUserNotFound, handler.Delete(context.TODO(), 42, true))
		require.Equal(t, calls, fake.deleteCalls)
	})

	t.Run(`add validation`, func(t *testing.T) {
		_, err := handler.Add(context.TODO(), usersapimodels.CreateRequest{Email: "  ", Password: "x"})
		require.NotNil(t, err)
		require.Equal(t, "Email and password are required.", backend.UserMessage(err))
		require.Equal(t, 0, fake.createCalls)
	})

	t.Run(`add server error surfaced`, func(t *testing.T) {
		_, err := handler.Add(context.TODO(), usersapimodels.CreateRequest{Email: "v@x", Password: "x"})
		require.NotNil(t, err)
		require.Equal(t, "User with email 'v@x' already exists.", backend.UserMessage(err))
	})
}

func TestDeleteBeforeList(t *testing.T) {
	t.Run(`admin protected without opened list`, func(t *testing.T) {
		fake := &fakeBackend{}
		server := fake.server()
		defer server.Close()
		handler := NewInstance(backend.NewClient(server.URL, nil, ""))

		require.Equal(t, ErrAdminDelete, handler.Delete(context.TODO(), 1, true))
		require.Equal(t, 0, fake.deleteCalls)
	})

	t.Run(`viewer deleted after list loaded`, func(t *testing.T) {
		fake := &fakeBackend{}
		server := fake.server()
		defer server.Close()
		handler := NewInstance(backend.NewClient(server.URL, nil, ""))

		require.Nil(t, handler.Delete(context.TODO(), 2, true))
		require.Equal(t, 1, fake.deleteCalls)
	})

	t.Run(`list failure blocks delete`, func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"error":"Admin access required."}`))
		}))
		defer server.Close()
		handler := NewInstance(backend.NewClient(server.URL, nil, ""))

		err := handler.Delete(context.TODO(), 2, true)
		require.NotNil(t, err)
		require.Equal(t, "Admin access required.", backend.UserMessage(err))
	})
}
