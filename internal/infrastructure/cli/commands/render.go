package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/doeshing/nltklayer/internal/domain"
)

// styles renders status markers. Colors are dropped when out is not a terminal.
type styles struct {
	ok   lipgloss.Style
	warn lipgloss.Style
	fail lipgloss.Style
	head lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		ok:   r.NewStyle().Foreground(lipgloss.Color("2")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")),
		head: r.NewStyle().Bold(true),
	}
}

func (s styles) marker(status domain.HealthStatus) string {
	switch status {
	case domain.HealthOK:
		return s.ok.Render("✓")
	case domain.HealthWarn:
		return s.warn.Render("⚠")
	default:
		return s.fail.Render("✗")
	}
}

// displayFetchReport prints download and verification outcomes per resource.
func displayFetchReport(out io.Writer, report domain.FetchReport) {
	st := newStyles(out)
	fmt.Fprintf(out, "Downloading NLTK data to: %s\n", report.TargetDir)
	for _, r := range report.Acquisitions {
		fmt.Fprintf(out, "Downloading %s...\n", r.Name)
		if r.Passed() {
			fmt.Fprintf(out, "%s %s downloaded successfully (%s)\n", st.marker(r.Status), r.Name, r.Details)
		} else {
			fmt.Fprintf(out, "%s Failed to download %s: %s\n", st.marker(r.Status), r.Name, r.Details)
		}
	}
	downloaded := report.Downloaded()
	fmt.Fprintf(out, "\nDownload complete: %d/%d packages successful\n", downloaded.Passed, downloaded.Total)

	fmt.Fprintln(out, "\nVerifying downloads...")
	for _, r := range report.Verifications {
		if r.Passed() {
			fmt.Fprintf(out, "%s %s verified\n", st.marker(r.Status), r.Name)
		} else {
			fmt.Fprintf(out, "%s %s verification failed: %s\n", st.marker(r.Status), r.Name, r.Details)
		}
	}
	verified := report.Verified()
	fmt.Fprintf(out, "\nVerification complete: %d/%d packages verified\n", verified.Passed, verified.Total)

	if report.OK() {
		fmt.Fprintln(out, st.ok.Render(MsgAllVerified))
	} else {
		fmt.Fprintln(out, st.fail.Render(MsgSomeUnverified))
	}
}

// displayVerifyReport prints each check with its evidence lines and the tally.
func displayVerifyReport(out io.Writer, report domain.VerifyReport) {
	st := newStyles(out)
	fmt.Fprintln(out, st.head.Render(SuiteTitle))
	fmt.Fprintln(out, strings.Repeat("=", len(SuiteTitle)))

	for _, c := range report.Checks {
		fmt.Fprintf(out, "\n--- %s ---\n", c.Name)
		if len(c.Items) > 0 {
			fmt.Fprintf(out, "  %s\n", c.Details)
			for _, it := range c.Items {
				fmt.Fprintf(out, "  %s %s\n", st.marker(it.Status), it.Message)
			}
		} else {
			fmt.Fprintf(out, "%s %s\n", st.marker(c.Status), c.Details)
		}
		if !c.Passed() {
			fmt.Fprintf(out, "%s %s failed\n", st.marker(domain.HealthError), c.Name)
		}
	}

	summary := report.Summary()
	fmt.Fprintf(out, "\nTest Results: %d/%d tests passed\n", summary.Passed, summary.Total)
	if report.OK() {
		fmt.Fprintln(out, st.ok.Render(MsgLayerReady))
	} else {
		fmt.Fprintln(out, st.fail.Render(MsgLayerBroken))
	}
}

// displayHealthReport prints one line per diagnostic.
func displayHealthReport(out io.Writer, report domain.HealthReport) {
	st := newStyles(out)
	for _, c := range report.Checks {
		fmt.Fprintf(out, "%s %s: %s\n", st.marker(c.Status), c.Name, c.Details)
		for _, it := range c.Items {
			fmt.Fprintf(out, "    %s %s\n", st.marker(it.Status), it.Message)
		}
	}
}

func displayRunRecords(out io.Writer, records []domain.RunRecord) {
	st := newStyles(out)
	for _, rec := range records {
		status := domain.HealthOK
		if !rec.OK() {
			status = domain.HealthError
		}
		line := fmt.Sprintf("%s %s %-6s %d/%d %s",
			st.marker(status),
			rec.Timestamp.Local().Format(domain.TimestampFormat),
			rec.Kind,
			rec.Passed,
			rec.Total,
			rec.Target)
		if len(rec.Failures) > 0 {
			line += " failed: " + strings.Join(rec.Failures, ", ")
		}
		fmt.Fprintln(out, line)
	}
}
