package main

import (
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/mlintula/fitplan/internal/e2etest"
	"github.com/mlintula/fitplan/internal/testhelpers"
)

func Test_application_plan_requires_intake(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	// Without a generated plan the visitor is sent to the intake wizard.
	doc, err := server.Client().GetDoc(ctx, "/plan")
	if err != nil {
		t.Fatalf("Failed to get plan page: %v", err)
	}

	if got := doc.Find("h1").First().Text(); !strings.Contains(got, "About you") {
		t.Errorf("Expected redirect to the intake wizard, got heading %q", got)
	}
}

func Test_application_plan_download(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = completeIntake(ctx, t, client); err != nil {
		t.Fatalf("Failed to complete intake: %v", err)
	}

	resp, err := client.Get(ctx, "/plan/download")
	if err != nil {
		t.Fatalf("Failed to download plan: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200 for plan download, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "workout-plan.md") {
		t.Errorf("Expected attachment disposition, got %q", got)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read download body: %v", err)
	}
	markdown := string(body)
	if !strings.HasPrefix(markdown, "# Workout Plan for Maija") {
		t.Errorf("Expected Markdown document header, got: %.80s", markdown)
	}
	for _, want := range []string{"## Monday", "### Main exercises", "## Progression"} {
		if !strings.Contains(markdown, want) {
			t.Errorf("Expected downloaded plan to contain %q", want)
		}
	}
}

func Test_application_plan_regenerate(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	if _, err = completeIntake(ctx, t, client); err != nil {
		t.Fatalf("Failed to complete intake: %v", err)
	}

	doc, err := client.PostForm(ctx, "/plan/regenerate", url.Values{})
	if err != nil {
		t.Fatalf("Failed to regenerate plan: %v", err)
	}

	if got := doc.Find("h1").First().Text(); !strings.Contains(got, "Your weekly plan") {
		t.Errorf("Expected to land back on the plan page, got heading %q", got)
	}
	if body := doc.Text(); !strings.Contains(body, "Maija") {
		t.Error("Expected regenerated plan to keep the original profile")
	}
}
