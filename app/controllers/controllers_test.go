package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"checkboard/app/controllers"
	"checkboard/app/dto"
	jwtutil "checkboard/app/jwt"
	"checkboard/app/kv"
	"checkboard/app/middleware"
	"checkboard/app/services"
	"checkboard/router"

	"github.com/rs/zerolog"
)

func newTestServer(t *testing.T) (*httptest.Server, *services.DatabaseService) {
	t.Helper()
	db := services.NewDatabaseService(kv.NewMemoryStore(), services.Options{Logger: zerolog.Nop()})
	require.NoError(t, db.Initialize())

	signer := &jwtutil.Signer{Secret: []byte("test-secret"), Issuer: "checkboard", ExpMin: 5}
	mw := &middleware.Auth{Signer: signer}
	h := router.NewRouter(
		controllers.NewHTTPController(),
		controllers.NewAuthController(db, signer),
		controllers.NewAdminController(db),
		controllers.NewChecklistController(),
		controllers.NewAssignmentController(db),
		controllers.NewProgressController(db),
		controllers.NewMaintenanceController(db),
		mw,
	)
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, db
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, srv *httptest.Server, username, password string) dto.TokenResponse {
	t.Helper()
	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "", dto.LoginRequest{Username: username, Password: password})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tok dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	return tok
}

func TestLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	tok := login(t, srv, "admin", "admin")
	assert.NotEmpty(t, tok.AccessToken)
	require.NotNil(t, tok.User)
	assert.Equal(t, "admin", tok.User.Role)

	resp := doJSON(t, http.MethodPost, srv.URL+"/login", "", dto.LoginRequest{Username: "admin", Password: "wrong"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var r dto.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	assert.False(t, r.Success)
	assert.Equal(t, "Invalid username or password", r.Message)
}

func TestChecklistsArePublic(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/checklists")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin", "admin")

	// create a regular user
	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/users", admin.AccessToken,
		dto.RegisterRequest{Username: "bob", Password: "pw"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bob := login(t, srv, "bob", "pw")
	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/users", bob.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/users", "", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin", "admin")

	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/users", admin.AccessToken,
		dto.RegisterRequest{Username: "bob", Password: "pw"})
	var created dto.UserResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, created.User)
	assert.Equal(t, "admin-1", created.User.CreatedBy)

	// duplicate username is refused
	resp = doJSON(t, http.MethodPost, srv.URL+"/admin/users", admin.AccessToken,
		dto.RegisterRequest{Username: "bob", Password: "other"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// assign a checklist to bob
	resp = doJSON(t, http.MethodPost, srv.URL+"/admin/assignments", admin.AccessToken,
		dto.AssignRequest{UserID: created.User.ID, ChecklistID: "2", Priority: "high"})
	var assigned dto.AssignmentResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&assigned))
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, assigned.Assignment)

	// bob sees exactly that assignment
	bob := login(t, srv, "bob", "pw")
	resp = doJSON(t, http.MethodGet, srv.URL+"/assignments", bob.AccessToken, nil)
	var mine []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&mine))
	resp.Body.Close()
	require.Len(t, mine, 1)
	assert.Equal(t, "2", mine[0]["checklistId"])

	// delete bob cascades his assignment
	resp = doJSON(t, http.MethodDelete, srv.URL+"/admin/users?id="+created.User.ID, admin.AccessToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/admin/users?id="+created.User.ID, admin.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteAdminIsRefused(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin", "admin")

	resp := doJSON(t, http.MethodDelete, srv.URL+"/admin/users?id=admin-1", admin.AccessToken, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	var r dto.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	assert.Equal(t, "Administrator accounts cannot be deleted", r.Message)
}

func TestProgressOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin", "admin")

	resp := doJSON(t, http.MethodPost, srv.URL+"/progress", admin.AccessToken,
		dto.SaveProgressRequest{ChecklistID: "1", CompletedItems: []string{"1-1", "1-2"}})
	var saved dto.ProgressResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&saved))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, saved.Progress)

	resp = doJSON(t, http.MethodGet, srv.URL+"/progress?checklistId=1", admin.AccessToken, nil)
	var got map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", got["checklistId"])

	resp = doJSON(t, http.MethodGet, srv.URL+"/progress?checklistId=99", admin.AccessToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/stats", admin.AccessToken, nil)
	var stats services.UserStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	assert.Equal(t, 1, stats.TotalChecklists)
	assert.Equal(t, 2, stats.CompletedItems)
}

func TestExportImportResetOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)
	admin := login(t, srv, "admin", "admin")

	resp := doJSON(t, http.MethodPost, srv.URL+"/admin/users", admin.AccessToken,
		dto.RegisterRequest{Username: "bob", Password: "pw"})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/export", admin.AccessToken, nil)
	var snap services.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, snap.Users, 2)

	resp = doJSON(t, http.MethodPost, srv.URL+"/admin/reset", admin.AccessToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/export", admin.AccessToken, nil)
	var after services.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&after))
	resp.Body.Close()
	assert.Len(t, after.Users, 1)

	resp = doJSON(t, http.MethodPost, srv.URL+"/admin/import", admin.AccessToken, snap)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/admin/export", admin.AccessToken, nil)
	var restored services.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&restored))
	resp.Body.Close()
	assert.ElementsMatch(t, snap.Users, restored.Users)
}
