// Command coverage sweeps every Gregorian day in a range and checks that the
// calendar conversions agree with each other:
//
//   - Gregorian -> Ethiopian -> Gregorian returns the starting day
//   - Gregorian -> Hijri -> Gregorian returns the starting day
//   - consecutive days are exactly one Ethiopian day apart, except where
//     Pagume 6 shares its Gregorian day with the next New Year
//
// Usage:
//
//	go run ./cmd/coverage -start 1900 -years 201 -o coverage.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/zapponejosh/bahire-hasab/internal/calendar"
)

// TestResult holds the result for a single date
type TestResult struct {
	Date      string `json:"date"`
	Success   bool   `json:"success"`
	Ethiopian string `json:"ethiopian,omitempty"`
	Hijri     string `json:"hijri,omitempty"`
	Error     string `json:"error,omitempty"`

	month int
	year  int
}

// MonthStats tracks statistics for each Ethiopian month
type MonthStats struct {
	Month       int      `json:"month"`
	TotalDays   int      `json:"total_days"`
	SuccessDays int      `json:"success_days"`
	FailedDays  int      `json:"failed_days"`
	FailedDates []string `json:"failed_dates,omitempty"`
}

type YearStats struct {
	Year        int
	TotalDays   int
	SuccessDays int
	FailedDays  int
}

type Analysis struct {
	TotalDays    int
	TotalSuccess int
	TotalFailed  int
	ByMonth      map[int]*MonthStats
	ByYear       map[int]*YearStats
	AllFailures  []TestResult
}

func main() {
	startYear := flag.Int("start", 1900, "First Gregorian year")
	years := flag.Int("years", 201, "Number of years to sweep")
	verbose := flag.Bool("v", false, "Verbose output (show each date)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Calendar Conversion Coverage")
	fmt.Println("================================================================")
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Printf("Total Years: %d\n", *years)
	fmt.Println()

	results := testAllDates(os.Stdout, *startYear, endYear, *verbose)
	analysis := analyzeResults(results)

	printSummary(os.Stdout, analysis, *startYear, endYear)
	printFailuresByMonth(os.Stdout, analysis)

	if *outputFile != "" {
		if err := saveResults(*outputFile, analysis); err != nil {
			fmt.Printf("Error saving results: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Results saved to: %s\n", *outputFile)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

func testAllDates(w io.Writer, startYear, endYear int, verbose bool) []TestResult {
	var results []TestResult

	start := time.Date(startYear, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(endYear, 12, 31, 0, 0, 0, 0, time.UTC)
	totalDays := int(end.Sub(start).Hours()/24) + 1

	fmt.Fprintf(w, "Testing %d days...\n\n", totalDays)

	tested := 0
	failed := 0
	lastProgress := -1
	var previous *calendar.EthiopianDate

	for current := start; !current.After(end); current = current.AddDate(0, 0, 1) {
		result, eth := testDate(current, previous)
		results = append(results, result)
		previous = eth

		tested++
		if !result.Success {
			failed++
		}

		progress := (tested * 100) / totalDays
		if progress != lastProgress && progress%10 == 0 {
			fmt.Fprintf(w, "  Progress: %d%% (%d/%d) - Failures: %d\n", progress, tested, totalDays, failed)
			lastProgress = progress
		}

		if verbose || !result.Success {
			status := "✓"
			if !result.Success {
				status = "✗"
			}
			fmt.Fprintf(w, "  %s %s: %s / %s\n", status, result.Date, result.Ethiopian, result.Hijri)
			if !result.Success {
				fmt.Fprintf(w, "      Error: %s\n", result.Error)
			}
		}
	}

	fmt.Fprintln(w)
	return results
}

// testDate checks one day. previous is the Ethiopian form of the day
// before, or nil at the start of the sweep.
func testDate(day time.Time, previous *calendar.EthiopianDate) (TestResult, *calendar.EthiopianDate) {
	greg := calendar.GregorianDate{Year: day.Year(), Month: int(day.Month()), Day: day.Day()}
	result := TestResult{Date: greg.String(), year: greg.Year}

	eth, err := calendar.ToEthiopian(greg.Year, greg.Month, greg.Day)
	if err != nil {
		result.Error = fmt.Sprintf("to ethiopian: %v", err)
		return result, nil
	}
	result.Ethiopian = eth.String()
	result.month = eth.Month

	back, err := calendar.ToGregorian(eth.Year, eth.Month, eth.Day)
	if err != nil {
		result.Error = fmt.Sprintf("to gregorian: %v", err)
		return result, &eth
	}
	if back != greg {
		result.Error = fmt.Sprintf("round trip returned %s", back)
		return result, &eth
	}

	hijri, err := calendar.GregorianToHijri(greg.Year, greg.Month, greg.Day)
	if err != nil {
		result.Error = fmt.Sprintf("to hijri: %v", err)
		return result, &eth
	}
	result.Hijri = hijri.String()

	fromHijri, ok := calendar.HijriToGregorian(hijri.Year, hijri.Month, hijri.Day, greg.Year)
	if !ok || fromHijri != greg {
		result.Error = fmt.Sprintf("hijri %s maps back to %s (found=%t)", hijri, fromHijri, ok)
		return result, &eth
	}

	if previous != nil {
		n, err := calendar.DiffInDays(eth, *previous)
		if err == nil && n == 2 && sharesDay(*previous, greg) {
			n = 1
		}
		if err != nil || n != 1 {
			result.Error = fmt.Sprintf("%s is %d days after %s (%v)", eth, n, previous, err)
			return result, &eth
		}
	}

	result.Success = true
	return result, &eth
}

// sharesDay reports whether the Ethiopian day after previous falls on greg.
// Pagume 6 of 2091 and Meskerem 1 of 2092 are both 2099-09-11, so the sweep
// never sees the former.
func sharesDay(previous calendar.EthiopianDate, greg calendar.GregorianDate) bool {
	skipped, err := calendar.AddDays(previous, 1)
	if err != nil {
		return false
	}
	g, err := skipped.Gregorian()
	return err == nil && g == greg
}

func analyzeResults(results []TestResult) *Analysis {
	analysis := &Analysis{
		ByMonth: make(map[int]*MonthStats),
		ByYear:  make(map[int]*YearStats),
	}

	for _, r := range results {
		analysis.TotalDays++

		if _, ok := analysis.ByYear[r.year]; !ok {
			analysis.ByYear[r.year] = &YearStats{Year: r.year}
		}
		analysis.ByYear[r.year].TotalDays++

		if _, ok := analysis.ByMonth[r.month]; !ok {
			analysis.ByMonth[r.month] = &MonthStats{Month: r.month}
		}
		analysis.ByMonth[r.month].TotalDays++

		if r.Success {
			analysis.TotalSuccess++
			analysis.ByYear[r.year].SuccessDays++
			analysis.ByMonth[r.month].SuccessDays++
		} else {
			analysis.TotalFailed++
			analysis.ByYear[r.year].FailedDays++
			analysis.ByMonth[r.month].FailedDays++
			analysis.ByMonth[r.month].FailedDates = append(analysis.ByMonth[r.month].FailedDates, r.Date)
			analysis.AllFailures = append(analysis.AllFailures, r)
		}
	}

	return analysis
}

func printSummary(w io.Writer, analysis *Analysis, startYear, endYear int) {
	fmt.Fprintln(w, "================================================================")
	fmt.Fprintln(w, "SUMMARY")
	fmt.Fprintln(w, "================================================================")
	fmt.Fprintf(w, "Total Days Tested: %d\n", analysis.TotalDays)
	fmt.Fprintf(w, "Successful:        %d (%.1f%%)\n", analysis.TotalSuccess, percent(analysis.TotalSuccess, analysis.TotalDays))
	fmt.Fprintf(w, "Failed:            %d (%.1f%%)\n", analysis.TotalFailed, percent(analysis.TotalFailed, analysis.TotalDays))
	fmt.Fprintln(w)

	var failedYears []int
	for year := startYear; year <= endYear; year++ {
		if stats, ok := analysis.ByYear[year]; ok && stats.FailedDays > 0 {
			failedYears = append(failedYears, year)
		}
	}
	if len(failedYears) == 0 {
		fmt.Fprintf(w, "All %d years passed.\n\n", endYear-startYear+1)
		return
	}

	fmt.Fprintln(w, "Years with failures:")
	for _, year := range failedYears {
		stats := analysis.ByYear[year]
		fmt.Fprintf(w, "  ✗ %d: %d/%d days\n", year, stats.SuccessDays, stats.TotalDays)
	}
	fmt.Fprintln(w)
}

func printFailuresByMonth(w io.Writer, analysis *Analysis) {
	if analysis.TotalFailed == 0 {
		fmt.Fprintln(w, "No failures!")
		return
	}

	months := make([]int, 0, len(analysis.ByMonth))
	for m, stats := range analysis.ByMonth {
		if stats.FailedDays > 0 {
			months = append(months, m)
		}
	}
	sort.Ints(months)

	fmt.Fprintln(w, "Failures by Ethiopian month:")
	for _, m := range months {
		stats := analysis.ByMonth[m]
		fmt.Fprintf(w, "  month %2d: %d failed of %d\n", m, stats.FailedDays, stats.TotalDays)
	}
	fmt.Fprintln(w)
}

func saveResults(filename string, analysis *Analysis) error {
	output := struct {
		GeneratedAt string              `json:"generated_at"`
		Summary     map[string]any      `json:"summary"`
		ByMonth     map[int]*MonthStats `json:"by_month"`
		Failures    []TestResult        `json:"failures"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary: map[string]any{
			"total_days":    analysis.TotalDays,
			"total_success": analysis.TotalSuccess,
			"total_failed":  analysis.TotalFailed,
			"success_rate":  fmt.Sprintf("%.2f%%", percent(analysis.TotalSuccess, analysis.TotalDays)),
		},
		ByMonth:  analysis.ByMonth,
		Failures: analysis.AllFailures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
