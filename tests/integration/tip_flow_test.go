package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tipjar/internal/client"
	"tipjar/internal/testutil"
)

func TestCreateThenGetFlow(t *testing.T) {
	app := setupApp(t)

	rec := app.request(t, "POST", "/api/create-tip-page",
		`{"displayName":"Alice","paymentMethods":{"bitcoin":{"enabled":true,"address":"bc1xyz"}}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("create: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode(t, rec)
	if created["success"] != true {
		t.Fatalf("create: expected success, got %s", rec.Body.String())
	}
	token, ok := created["token"].(string)
	if !ok || token == "" {
		t.Fatalf("create: no token in %s", rec.Body.String())
	}

	rec = app.request(t, "GET", "/api/tip/"+token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	page := decode(t, rec)
	if page["displayName"] != "Alice" {
		t.Errorf("expected displayName Alice, got %v", page["displayName"])
	}
	if page["message"] != "Support my work anonymously" {
		t.Errorf("expected default message, got %v", page["message"])
	}
	methods := page["paymentMethods"].(map[string]interface{})
	btc := methods["bitcoin"].(map[string]interface{})
	if btc["enabled"] != true || btc["address"] != "bc1xyz" {
		t.Errorf("unexpected bitcoin method %v", btc)
	}
}

func TestInvalidCreateIssuesNoToken(t *testing.T) {
	app := setupApp(t)

	rec := app.request(t, "POST", "/api/create-tip-page", `{"displayName":"","paymentMethods":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	result := decode(t, rec)
	if result["success"] != false || result["error"] != "Invalid data" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	if _, ok := result["token"]; ok {
		t.Error("rejected create must not issue a token")
	}
}

func TestUnknownTokenIsNotFound(t *testing.T) {
	app := setupApp(t)

	rec := app.request(t, "GET", "/api/tip/nonexistent-token", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
	result := decode(t, rec)
	if result["success"] != false || result["error"] != "Tip page not found" {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestResponsesCarryPrivacyHeaders(t *testing.T) {
	app := setupApp(t)

	rec := app.request(t, "GET", "/api/tip/nonexistent-token", "")
	want := map[string]string{
		"X-Frame-Options":        "DENY",
		"X-Content-Type-Options": "nosniff",
		"Referrer-Policy":        "no-referrer",
		"Permissions-Policy":     "interest-cohort=()",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("expected %s: %q, got %q", header, value, got)
		}
	}
}

func TestClientAgainstRealBackend(t *testing.T) {
	app := setupApp(t)
	srv := httptest.NewServer(app.Router)
	t.Cleanup(srv.Close)

	cli, err := client.New(client.Options{BaseURL: srv.URL, Timeout: time.Second, Dir: t.TempDir()})
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	ctx := context.Background()

	res, err := cli.CreateTipPage(ctx, testutil.ValidInput())
	testutil.AssertNoError(t, err)
	if res.Origin != client.OriginRemote {
		t.Fatalf("expected remote origin, got %q", res.Origin)
	}

	// The page is shareable: the authoritative store resolves it directly.
	if _, err := app.Store.Get(res.Token); err != nil {
		t.Errorf("backend store does not know token %q: %v", res.Token, err)
	}

	got, err := cli.GetTipPage(ctx, res.Token)
	testutil.AssertNoError(t, err)
	if got.DisplayName != "Alice" || got.Origin != client.OriginRemote {
		t.Errorf("unexpected result %+v", got)
	}

	// The creating device bookmarked the page.
	links, err := cli.Links()
	testutil.AssertNoError(t, err)
	if len(links) != 1 || links[0].Token != res.Token {
		t.Errorf("unexpected bookmark list %+v", links)
	}

	// Once the backend goes away, creation degrades instead of failing.
	srv.Close()
	offline, err := cli.CreateTipPage(ctx, testutil.ValidInput())
	testutil.AssertNoError(t, err)
	if offline.Origin != client.OriginLocal {
		t.Errorf("expected local origin after backend loss, got %q", offline.Origin)
	}
	if _, err := app.Store.Get(offline.Token); err == nil {
		t.Error("offline page must not reach the authoritative store")
	}
}
