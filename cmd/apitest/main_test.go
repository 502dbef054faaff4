package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/api"
	"github.com/zapponejosh/bahire-hasab/internal/config"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Port:            8080,
		Env:             config.EnvDevelopment,
		ShutdownTimeout: time.Second,
		DefaultLanguage: "en",
		LogLevel:        "error",
		LogFormat:       "text",
	}

	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(almanac.Default(), nil, cfg, log), log))
	t.Cleanup(srv.Close)
	return srv
}

func TestRunnerPassesAgainstServer(t *testing.T) {
	srv := newServer(t)

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL+"/", srv.Client(), &out, true)
	runner.Run()

	if runner.Failed() {
		t.Fatalf("smoke checks failed:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "All checks passed!") {
		t.Errorf("summary missing from output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "fasika") {
		t.Errorf("verbose output should list movable feasts:\n%s", out.String())
	}
	for _, line := range []string{"Holidays 2016: ", "Muslim holidays 2016: "} {
		if !strings.Contains(out.String(), line) {
			t.Errorf("output missing %q:\n%s", line, out.String())
		}
	}
}

func TestRunnerReportsFailures(t *testing.T) {
	srv := newServer(t)
	srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, nil, &out, false)
	runner.Run()

	if !runner.Failed() {
		t.Fatal("expected failures against a closed server")
	}
	if !strings.Contains(out.String(), "Failures:") {
		t.Errorf("failures not listed:\n%s", out.String())
	}
}
