package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/qa-radar/qaradar/internal/model"
)

// TextWriter outputs human-readable briefs for terminal display.
//
// Design decision: plain ASCII formatting rather than ANSI colors
// because it works in every terminal and pipes cleanly into files and
// other tools.
type TextWriter struct {
	baseWriter

	// showEmpty controls whether trust domains without pages are shown.
	showEmpty bool

	// verbose enables per-signal rationale lines.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithShowEmpty configures the writer to show empty domain groups.
func WithShowEmpty(show bool) TextWriterOption {
	return func(w *TextWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables signal rationale lines in the output.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the brief as human-readable text.
func (w *TextWriter) Write(brief *model.DiscoveryBrief) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, brief)
	w.writeSummary(&sb, brief)
	w.writeGroups(&sb, brief)
	w.writeFetchErrors(&sb, brief)
	w.writeFooter(&sb, brief)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the banner and run identification.
func (w *TextWriter) writeHeader(sb *strings.Builder, brief *model.DiscoveryBrief) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                      QA RADAR DISCOVERY BRIEF\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	if brief.Doctrine.Banner != "" {
		sb.WriteString(wrapText(brief.Doctrine.Banner, 70))
		sb.WriteString("\n\n")
	}

	sb.WriteString(fmt.Sprintf("Origin:           %s\n", brief.Origin))
	sb.WriteString(fmt.Sprintf("Discovery Date:   %s\n", brief.Timestamp.Format("2006-01-02 15:04:05 MST")))
	sb.WriteString(fmt.Sprintf("Site Archetype:   %s (advisory only)\n", brief.Archetype))
	sb.WriteString(fmt.Sprintf("Discovery Health: %s\n", brief.DiscoveryHealth))
	sb.WriteString("\n")
}

// writeSummary writes the attention band tally.
func (w *TextWriter) writeSummary(sb *strings.Builder, brief *model.DiscoveryBrief) {
	counts := brief.BandCounts()

	sb.WriteString("ATTENTION BAND SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	for _, band := range []model.AttentionBand{
		model.BandCritical, model.BandHigh, model.BandMedium, model.BandLow,
	} {
		sb.WriteString(fmt.Sprintf("  %-10s %d\n", band.String()+":", counts[band]))
	}
	sb.WriteString(fmt.Sprintf("  %-10s %d\n", "Pages:", brief.PageCount()))
	sb.WriteString("\n")
}

// writeGroups writes each trust domain's pages.
func (w *TextWriter) writeGroups(sb *strings.Builder, brief *model.DiscoveryBrief) {
	for _, group := range brief.Groups {
		if len(group.Pages) == 0 && !w.showEmpty {
			continue
		}

		sb.WriteString(fmt.Sprintf("%s (%d pages)\n", strings.ToUpper(group.Domain.String()), len(group.Pages)))
		sb.WriteString(strings.Repeat("-", 70))
		sb.WriteString("\n")

		if len(group.Pages) == 0 {
			sb.WriteString("  (no pages)\n\n")
			continue
		}

		for _, page := range group.Pages {
			sb.WriteString(fmt.Sprintf("  %s\n", page.URL))
			sb.WriteString(fmt.Sprintf("    Attention Band: %s (confidence: %s)\n",
				page.AttentionBand, page.Confidence))

			if len(page.Signals) == 0 {
				sb.WriteString("    Signals:        none\n")
			} else {
				sb.WriteString(fmt.Sprintf("    Signals:        %d\n", len(page.Signals)))
				for _, sig := range page.Signals {
					sb.WriteString(fmt.Sprintf("      - %s [%s, %s]\n",
						sig.Description, sig.EvidenceType, sig.Confidence))
					if w.verbose && sig.Rationale != "" {
						sb.WriteString(fmt.Sprintf("        %s\n", sig.Rationale))
					}
				}
			}

			sb.WriteString(fmt.Sprintf("    Review Prompt:  %s\n", page.ReviewPrompt))
			sb.WriteString("\n")
		}
	}
}

// writeFetchErrors writes the unreachable page list.
func (w *TextWriter) writeFetchErrors(sb *strings.Builder, brief *model.DiscoveryBrief) {
	if len(brief.FetchErrors) == 0 {
		return
	}

	sb.WriteString("FETCH ERRORS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	for _, fe := range brief.FetchErrors {
		if fe.Status != 0 {
			sb.WriteString(fmt.Sprintf("  %s (status %d): %s\n", fe.URL, fe.Status, fe.Error))
		} else {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", fe.URL, fe.Error))
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes the scope exclusions.
func (w *TextWriter) writeFooter(sb *strings.Builder, brief *model.DiscoveryBrief) {
	if len(brief.Doctrine.ScopeExclusions) == 0 {
		return
	}

	sb.WriteString("OUT OF SCOPE\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	for _, excl := range brief.Doctrine.ScopeExclusions {
		sb.WriteString(fmt.Sprintf("  - %s\n", excl))
	}
	sb.WriteString("\n")
}

// wrapText wraps text at the given width, breaking on spaces.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if i > 0 {
			if lineLen+1+len(word) > width {
				sb.WriteString("\n")
				lineLen = 0
			} else {
				sb.WriteString(" ")
				lineLen++
			}
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
