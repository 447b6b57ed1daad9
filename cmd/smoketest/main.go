package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/mlintula/fitplan/internal/e2etest"
	"github.com/mlintula/fitplan/internal/logging"
	"github.com/mlintula/fitplan/internal/testhelpers"
	"golang.org/x/sync/errgroup"
)

const scenarioTimeout = 30 * time.Second

// TestHome checks that the landing page renders with a way into the intake.
func TestHome(ctx context.Context, client *e2etest.Client) error {
	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		return fmt.Errorf("get home page: %w", err)
	}
	if doc.Find("a[href='/intake/about']").Length() == 0 {
		return fmt.Errorf("home page has no intake link")
	}
	return nil
}

// TestPlanFlow walks the whole intake wizard and verifies that a plan comes
// out at the end and can be downloaded.
func TestPlanFlow(ctx context.Context, client *e2etest.Client) error {
	doc, err := client.GetDoc(ctx, "/intake/about")
	if err != nil {
		return fmt.Errorf("get about step: %w", err)
	}
	if doc, err = client.SubmitForm(ctx, doc, "/intake/about", map[string]string{
		"Name":   "Smoke Tester",
		"Age":    "30",
		"Gender": "Other",
	}); err != nil {
		return fmt.Errorf("submit about step: %w", err)
	}
	if _, err = client.SubmitForm(ctx, doc, "/intake/medical", map[string]string{
		"Medical conditions":   "",
		"Physical limitations": "",
	}); err != nil {
		return fmt.Errorf("submit medical step: %w", err)
	}
	if _, err = client.PostForm(ctx, "/intake/equipment", url.Values{
		"location":      {"Home"},
		"equipment":     {"Dumbbell", "Mat"},
		"fitness_level": {"2"},
	}); err != nil {
		return fmt.Errorf("submit equipment step: %w", err)
	}
	if doc, err = client.PostForm(ctx, "/intake/schedule", url.Values{
		"target_areas":    {"Full Body"},
		"session_minutes": {"30"},
		"days":            {"Tuesday", "Thursday"},
	}); err != nil {
		return fmt.Errorf("submit schedule step: %w", err)
	}
	if heading := doc.Find("h1").First().Text(); !strings.Contains(heading, "Your weekly plan") {
		return fmt.Errorf("expected plan page, got heading %q", heading)
	}

	resp, err := client.Get(ctx, "/plan/download")
	if err != nil {
		return fmt.Errorf("download plan: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != 200 { //nolint:mnd // HTTP OK
		return fmt.Errorf("download plan: unexpected status code %d", resp.StatusCode)
	}
	return nil
}

func main() {
	logger := testhelpers.NewLogger(os.Stdout)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		hostname = os.Args[1]
		err      error
		start    = time.Now()
	)
	ctx = logging.WithAttrs(ctx, slog.String("hostname", hostname))
	serverURL := "https://" + hostname
	if strings.Contains(hostname, "localhost") {
		serverURL = "http://" + hostname
	}

	var readyClient *e2etest.Client
	if readyClient, err = e2etest.NewClient(serverURL); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", slog.Any("error", err))
		os.Exit(1)
	}
	if err = readyClient.WaitForReady(ctx, "/api/healthy"); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server not ready in time", slog.Any("error", err))
		os.Exit(1)
	}

	// Each scenario gets its own client so that the sessions stay independent.
	scenarios := []struct {
		name string
		run  func(context.Context, *e2etest.Client) error
	}{
		{name: "home", run: TestHome},
		{name: "plan flow", run: TestPlanFlow},
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, scenario := range scenarios {
		g.Go(func() error {
			scenarioCtx, cancel := context.WithTimeout(gctx, scenarioTimeout)
			defer cancel()

			client, clientErr := e2etest.NewClient(serverURL)
			if clientErr != nil {
				return fmt.Errorf("creating client for scenario %s: %w", scenario.name, clientErr)
			}
			if runErr := scenario.run(scenarioCtx, client); runErr != nil {
				return fmt.Errorf("scenario %s: %w", scenario.name, runErr)
			}
			logger.LogAttrs(gctx, slog.LevelInfo, "scenario passed", slog.String("scenario", scenario.name))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "smoke test failed", slog.Any("error", err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌", slog.Duration("duration", time.Since(start)))
	os.Exit(0)
}
