//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"testtrack/internal/app"
	"testtrack/internal/config"
	userdomain "testtrack/internal/domain/user"
	"testtrack/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	app    *app.App
	users  map[string]*userdomain.User
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	if err := cleanDB(dsn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	cfg := config.Config{
		Env: "test",
		DB:  config.DBConfig{DSN: dsn},
		Session: config.SessionConfig{
			Secret:     "e2e-secret",
			TTL:        time.Hour,
			CookieName: "session_token",
		},
	}

	application, err := app.New(cfg, logger.Discard())
	if err != nil {
		t.Fatalf("app init: %v", err)
	}
	if _, err := application.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	env := &testEnv{
		server: httptest.NewServer(application.HTTPServer().Handler),
		app:    application,
		users:  make(map[string]*userdomain.User),
	}

	for _, input := range []userdomain.CreateInput{
		{Name: "Support One", Email: "support1@example.com", Password: "password", Role: userdomain.RoleSupport},
		{Name: "Tester One", Email: "tester1@example.com", Password: "password", Role: userdomain.RoleTester},
		{Name: "Tester Two", Email: "tester2@example.com", Password: "password", Role: userdomain.RoleTester},
	} {
		created, err := application.Users.Bootstrap(context.Background(), input)
		if err != nil {
			t.Fatalf("bootstrap %s: %v", input.Email, err)
		}
		env.users[input.Email] = created
	}

	return env
}

func (e *testEnv) Close() {
	e.server.Close()
	_ = e.app.Close()
}

func cleanDB(dsn string) error {
	dbConn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := dbConn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	var exists bool
	if err := dbConn.Raw("SELECT to_regclass('public.users') IS NOT NULL").Scan(&exists).Error; err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := dbConn.Exec("TRUNCATE TABLE test_case_transition_logs, test_case_assignments, test_cases, users RESTART IDENTITY CASCADE").Error; err != nil {
		return err
	}
	return dbConn.Exec("ALTER SEQUENCE test_case_number_seq RESTART WITH 1").Error
}

// signIn returns a client whose cookie jar carries the session.
func (e *testEnv) signIn(t *testing.T, email string) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	client := &http.Client{Timeout: 5 * time.Second, Jar: jar}

	resp, body := requestJSON(t, client, http.MethodPost, e.server.URL+"/api/auth/sign-in", map[string]string{
		"email":    email,
		"password": "password",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign in %s: expected 200, got %d: %s", email, resp.StatusCode, string(body))
	}
	return client
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type summaryResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	TesterUpdate  string `json:"testerUpdate"`
	SupportUpdate string `json:"supportUpdate"`
}

type detailResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	TesterUpdate    string `json:"testerUpdate"`
	SupportUpdate   string `json:"supportUpdate"`
	AssignedTesters []struct {
		ID string `json:"id"`
	} `json:"assignedTesters"`
	TransitionTimeline []struct {
		Status       string `json:"status"`
		TransitionBy struct {
			ID string `json:"id"`
		} `json:"transitionBy"`
	} `json:"transitionTimeline"`
}

func decode(t *testing.T, body []byte, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(body, dst); err != nil {
		t.Fatalf("decode %s: %v", string(body), err)
	}
}

func TestE2EPingAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/ping", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", resp.StatusCode)
	}
	var ping map[string]string
	decode(t, body, &ping)
	if ping["message"] != "pong" || ping["dbStatus"] != "connected" {
		t.Fatalf("unexpected ping body: %s", string(body))
	}

	resp, _ = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/test-case/", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without session, got %d", resp.StatusCode)
	}

	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/auth/sign-in", map[string]string{
		"email":    "tester1@example.com",
		"password": "wrong-password",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", resp.StatusCode)
	}
}

func TestE2EWorkflow(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	support := env.signIn(t, "support1@example.com")
	tester1 := env.signIn(t, "tester1@example.com")
	tester2 := env.signIn(t, "tester2@example.com")
	tester1ID := env.users["tester1@example.com"].ID

	resp, body := requestJSON(t, support, http.MethodPost, env.server.URL+"/api/test-case/", map[string]interface{}{
		"title":       "fix login bug",
		"description": "<p>steps</p>",
		"testerIds":   []string{tester1ID},
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var created summaryResponse
	decode(t, body, &created)
	if created.ID != "TC-00001" || created.Title != "Fix login bug" {
		t.Fatalf("unexpected summary: %+v", created)
	}
	detailURL := env.server.URL + "/api/test-case/" + created.ID

	resp, _ = requestJSON(t, tester2, http.MethodGet, detailURL, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unassigned read: expected 403, got %d", resp.StatusCode)
	}

	resp, _ = requestJSON(t, tester2, http.MethodPatch, detailURL, map[string]string{
		"action":       "tester-update",
		"testerUpdate": "complete",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("unassigned update: expected 403, got %d", resp.StatusCode)
	}

	resp, body = requestJSON(t, tester1, http.MethodPatch, detailURL, map[string]string{
		"action":       "tester-update",
		"testerUpdate": "complete",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("tester update: expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, support, http.MethodPatch, detailURL, map[string]string{
		"action":        "support-update",
		"supportUpdate": "retest",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("support update: expected 200, got %d: %s", resp.StatusCode, string(body))
	}
	var detail detailResponse
	decode(t, body, &detail)
	if detail.TesterUpdate != "pending" || detail.SupportUpdate != "retest" {
		t.Fatalf("retest must reset tester status, got %+v", detail)
	}

	statuses := make([]string, 0, len(detail.TransitionTimeline))
	for _, entry := range detail.TransitionTimeline {
		statuses = append(statuses, entry.Status)
	}
	want := []string{"initiated", "complete", "retest"}
	if len(statuses) != len(want) {
		t.Fatalf("timeline: expected %v, got %v", want, statuses)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Fatalf("timeline: expected %v, got %v", want, statuses)
		}
	}

	resp, body = requestJSON(t, tester1, http.MethodGet, env.server.URL+"/api/test-case/assigned-to-me", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("assigned-to-me: expected 200, got %d", resp.StatusCode)
	}
	var mine struct {
		TestCases []summaryResponse `json:"testCases"`
	}
	decode(t, body, &mine)
	if len(mine.TestCases) != 1 || mine.TestCases[0].ID != created.ID {
		t.Fatalf("unexpected assigned list: %s", string(body))
	}

	resp, body = requestJSON(t, support, http.MethodGet, env.server.URL+"/api/test-case/", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var grouped struct {
		Testers []struct {
			ID        string            `json:"id"`
			TestCases []summaryResponse `json:"testCases"`
		} `json:"testers"`
	}
	decode(t, body, &grouped)
	if len(grouped.Testers) != 2 {
		t.Fatalf("expected both testers in grouped list, got %s", string(body))
	}

	resp, _ = requestJSON(t, support, http.MethodGet, env.server.URL+"/api/test-case/TC-99999", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", resp.StatusCode)
	}
}
