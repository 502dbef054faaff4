// Command apitest runs smoke checks against a running calendar API.
//
// Usage:
//
//	go run ./cmd/apitest -url http://localhost:8080
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/almanac"
	"github.com/zapponejosh/bahire-hasab/internal/api"
	"github.com/zapponejosh/bahire-hasab/internal/bahirehasab"
	"github.com/zapponejosh/bahire-hasab/internal/calendar"
)

// =============================================================================
// Response Types
// =============================================================================

// APIResponse is the envelope with the payload left raw.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	out          io.Writer
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, client *http.Client, out io.Writer, verbose bool) *TestRunner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
		out:     out,
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Calendar API Smoke Test")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testConversions()
	tr.testBahireHasab()
	tr.testHolidays()
	tr.testCalendarExport()
	tr.testErrors()

	tr.printSummary()
}

// Failed reports whether any check failed.
func (tr *TestRunner) Failed() bool {
	return tr.errorCount > 0
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health api.HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess(fmt.Sprintf("Health check passed (%s catalog, %d holidays)", health.Catalog, health.Holidays))
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testConversions() {
	tr.printSection("Conversions")

	testCases := []struct {
		name      string
		path      string
		body      map[string]int
		ethiopian calendar.EthiopianDate
		gregorian calendar.GregorianDate
	}{
		{
			name:      "New Year 2016",
			path:      "/api/v1/convert/to-gregorian?lang=en",
			body:      map[string]int{"year": 2016, "month": 1, "day": 1},
			ethiopian: calendar.EthiopianDate{Year: 2016, Month: 1, Day: 1},
			gregorian: calendar.GregorianDate{Year: 2023, Month: 9, Day: 12},
		},
		{
			name:      "Pagume 6 2015",
			path:      "/api/v1/convert/to-gregorian?lang=en",
			body:      map[string]int{"year": 2015, "month": 13, "day": 6},
			ethiopian: calendar.EthiopianDate{Year: 2015, Month: 13, Day: 6},
			gregorian: calendar.GregorianDate{Year: 2023, Month: 9, Day: 11},
		},
		{
			name:      "Fasika 2016",
			path:      "/api/v1/convert/to-ethiopian?lang=en",
			body:      map[string]int{"year": 2024, "month": 5, "day": 5},
			ethiopian: calendar.EthiopianDate{Year: 2016, Month: 8, Day: 27},
			gregorian: calendar.GregorianDate{Year: 2024, Month: 5, Day: 5},
		},
	}

	for _, tc := range testCases {
		var info almanac.DateInfo
		if err := tr.postData(tc.path, tc.body, &info); err != nil {
			tr.recordError(tc.name, err.Error())
			continue
		}
		if info.Ethiopian != tc.ethiopian || info.Gregorian != tc.gregorian {
			tr.recordError(tc.name, fmt.Sprintf("got %s / %s, want %s / %s",
				info.Ethiopian, info.Gregorian, tc.ethiopian, tc.gregorian))
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %s = %s (%s)", tc.name, info.Ethiopian, info.Gregorian, info.Weekday))
	}

	var today almanac.DateInfo
	if err := tr.getData("/api/v1/today?lang=en", &today); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today: %s %s (%s)", today.Ethiopian, today.MonthName, today.Gregorian))
}

func (tr *TestRunner) testBahireHasab() {
	tr.printSection("Bahire Hasab")

	// Published Fasika dates.
	testCases := []struct {
		year int
		want calendar.GregorianDate
	}{
		{2012, calendar.GregorianDate{Year: 2020, Month: 4, Day: 19}},
		{2016, calendar.GregorianDate{Year: 2024, Month: 5, Day: 5}},
		{2017, calendar.GregorianDate{Year: 2025, Month: 4, Day: 20}},
	}

	for _, tc := range testCases {
		var result bahirehasab.Result
		if err := tr.getData(fmt.Sprintf("/api/v1/bahire-hasab/%d?lang=en", tc.year), &result); err != nil {
			tr.recordError(fmt.Sprintf("Bahire Hasab %d", tc.year), err.Error())
			continue
		}

		fasika, ok := result.MovableFeasts["fasika"]
		switch {
		case !ok:
			tr.recordError(fmt.Sprintf("Bahire Hasab %d", tc.year), "no fasika in movable feasts")
		case fasika.Gregorian != tc.want:
			tr.recordError(fmt.Sprintf("Bahire Hasab %d", tc.year), fmt.Sprintf("fasika %s, want %s", fasika.Gregorian, tc.want))
		default:
			tr.recordSuccess(fmt.Sprintf("%d: %s, metqi %d, fasika %s", tc.year, result.Evangelist.Name, result.Metqi, fasika.Gregorian))
		}

		if tr.verbose {
			for _, f := range result.Feasts() {
				fmt.Fprintf(tr.out, "      - %-14s %s  %s\n", f.Key, f.Ethiopian, f.Gregorian)
			}
		}
	}
}

func (tr *TestRunner) testHolidays() {
	tr.printSection("Holidays")

	var year api.HolidaysResponse
	if err := tr.getData("/api/v1/holidays/2016?lang=en", &year); err != nil {
		tr.recordError("Holidays 2016", err.Error())
		return
	}
	if year.Year != 2016 || len(year.Holidays) == 0 {
		tr.recordError("Holidays 2016", fmt.Sprintf("got year %d with %d holidays", year.Year, len(year.Holidays)))
		return
	}
	first := year.Holidays[0]
	tr.recordSuccess(fmt.Sprintf("Holidays 2016: %d entries, first %s on %s", len(year.Holidays), first.Key, first.Ethiopian))

	var muslim api.HolidaysResponse
	if err := tr.getData("/api/v1/holidays/2016?tags=muslim", &muslim); err != nil {
		tr.recordError("Holidays 2016 muslim", err.Error())
	} else if len(muslim.Holidays) == 0 {
		tr.recordError("Holidays 2016 muslim", "empty list")
	} else {
		tr.recordSuccess(fmt.Sprintf("Muslim holidays 2016: %d", len(muslim.Holidays)))
	}

	var month almanac.MonthView
	if err := tr.getData("/api/v1/holidays/2016/13", &month); err != nil {
		tr.recordError("Pagume 2016", err.Error())
	} else if len(month.Days) != 5 {
		tr.recordError("Pagume 2016", fmt.Sprintf("got %d days, want 5", len(month.Days)))
	} else {
		tr.recordSuccess("Pagume 2016 has 5 days")
	}

	if err := tr.getData("/api/v1/holiday/meskel?lang=en", &json.RawMessage{}); err != nil {
		tr.recordError("Holiday meskel", err.Error())
	} else {
		tr.recordSuccess("Holiday detail: meskel")
	}
}

func (tr *TestRunner) testCalendarExport() {
	tr.printSection("Calendar Export")

	resp, err := tr.getRaw("/api/v1/calendar/2016")
	if err != nil {
		tr.recordError("Calendar 2016", err.Error())
		return
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode != http.StatusOK:
		tr.recordError("Calendar 2016", fmt.Sprintf("HTTP %d", resp.StatusCode))
	case !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/calendar"):
		tr.recordError("Calendar 2016", "Content-Type "+resp.Header.Get("Content-Type"))
	default:
		tr.recordSuccess(fmt.Sprintf("Calendar 2016: %d events", strings.Count(string(body), "BEGIN:VEVENT")))
	}
}

func (tr *TestRunner) testErrors() {
	tr.printSection("Error Cases")

	testCases := []struct {
		name   string
		path   string
		status int
		code   string
	}{
		{"Invalid date format", "/api/v1/dates/2016.01.01", http.StatusBadRequest, api.CodeInvalidDateFormat},
		{"Pagume 6 in common year", "/api/v1/dates/2016-13-06", http.StatusBadRequest, api.CodeInvalidEthiopianDate},
		{"Non-numeric year", "/api/v1/bahire-hasab/abc", http.StatusBadRequest, api.CodeInvalidInputType},
		{"Unknown feast", "/api/v1/bahire-hasab/2016/feasts/christmas", http.StatusNotFound, api.CodeUnknownHoliday},
		{"Unknown language", "/api/v1/today?lang=fr", http.StatusBadRequest, api.CodeUnsupportedLanguage},
	}

	for _, tc := range testCases {
		resp, err := tr.getRaw(tc.path)
		if err != nil {
			tr.recordError(tc.name, err.Error())
			continue
		}

		var apiResp APIResponse
		err = json.NewDecoder(resp.Body).Decode(&apiResp)
		resp.Body.Close()

		switch {
		case err != nil:
			tr.recordError(tc.name, fmt.Sprintf("parse error: %v", err))
		case resp.StatusCode != tc.status:
			tr.recordError(tc.name, fmt.Sprintf("HTTP %d, want %d", resp.StatusCode, tc.status))
		case apiResp.Error == nil || apiResp.Error.Code != tc.code:
			tr.recordError(tc.name, fmt.Sprintf("error %+v, want code %s", apiResp.Error, tc.code))
		default:
			tr.recordSuccess(fmt.Sprintf("%s -> %d %s", tc.name, resp.StatusCode, tc.code))
		}
	}
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return err
	}
	return decodeData(resp, target)
}

func (tr *TestRunner) postData(path string, body, target any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	resp, err := tr.client.Post(tr.baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		return err
	}
	return decodeData(resp, target)
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

// decodeData unwraps a successful envelope into target.
func decodeData(resp *http.Response, target any) error {
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode, errMsg)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintln(tr.out)
	fmt.Fprintf(tr.out, "--- %s ---\n", name)
	fmt.Fprintln(tr.out)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n", tr.errorCount)
	fmt.Fprintln(tr.out)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "Failures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintln(tr.out)
		fmt.Fprintf(tr.out, "Checks completed with %d failure(s)\n", tr.errorCount)
		return
	}

	fmt.Fprintln(tr.out, "All checks passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (list movable feasts)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, nil, os.Stdout, *verbose)
	runner.Run()

	if runner.Failed() {
		os.Exit(1)
	}
}
