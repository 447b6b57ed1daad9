package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/mlintula/fitplan/internal/e2etest"
	"github.com/mlintula/fitplan/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "FITPLAN_SQLITE_URL":
		return ":memory:", true
	case "FITPLAN_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("Initial state", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if doc.Find("a[href='/intake/about']").Length() == 0 {
			t.Error("Expected a link to start the intake")
		}
		if doc.Find("a[href='/plan']").Length() != 0 {
			t.Error("Expected no plan link before a plan has been generated")
		}
	})

	t.Run("After plan generation", func(t *testing.T) {
		if _, err := completeIntake(ctx, t, client); err != nil {
			t.Fatalf("Failed to complete intake: %v", err)
		}

		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if doc.Find("a[href='/plan']").Length() == 0 {
			t.Error("Expected a plan link after the plan has been generated")
		}
	})
}

func Test_crossOriginProtection(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// Simulate a cross-origin form submission. The request must be rejected
	// before it reaches the handler.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, server.URL()+"/intake/about",
		strings.NewReader("name=Mallory"))
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Sec-Fetch-Site", "cross-site")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Failed to do request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected cross-origin request to be rejected with 403, got %d", resp.StatusCode)
	}
}
