package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/qa-radar/qaradar/internal/model"
)

// MarkdownWriter outputs briefs in Markdown format, designed for
// documentation and sharing.
//
// Design decision: the nao1215/markdown library gives type-safe
// generation of tables, alerts, and mermaid charts, which beats
// hand-concatenated markdown strings for anything table-heavy.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the brief as Markdown.
func (w *MarkdownWriter) Write(brief *model.DiscoveryBrief) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, brief)
	w.writeSummary(md, brief)
	w.writeGroups(md, brief)
	w.writeFetchErrors(md, brief)
	w.writeFooter(md, brief)

	return len(md.String()), md.Build()
}

// writeHeader writes the brief header with run information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, brief *model.DiscoveryBrief) {
	md.H1("QA Radar Discovery Brief")
	md.PlainText("")

	if brief.Doctrine.Banner != "" {
		md.Note(brief.Doctrine.Banner)
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Origin", "`" + brief.Origin + "`"},
			{"Discovery Date", brief.Timestamp.Format("2006-01-02 15:04:05 MST")},
			{"Site Archetype", brief.Archetype + " (advisory only)"},
			{"Discovery Health", brief.DiscoveryHealth.String()},
			{"Pages Analyzed", strconv.Itoa(brief.PageCount())},
		},
	})
	md.PlainText("")
}

// writeSummary writes the attention band tally and distribution chart.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, brief *model.DiscoveryBrief) {
	counts := brief.BandCounts()

	md.H2("Attention Band Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Attention Band", "Pages"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(counts[model.BandCritical])},
			{"🟠 High", strconv.Itoa(counts[model.BandHigh])},
			{"🟡 Medium", strconv.Itoa(counts[model.BandMedium])},
			{"🔵 Low", strconv.Itoa(counts[model.BandLow])},
		},
	})
	md.PlainText("")

	if brief.PageCount() > 0 {
		w.writePieChart(md, counts)
	}
}

// writePieChart writes a mermaid pie chart of the band distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, counts map[model.AttentionBand]int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Attention Band Distribution"),
		piechart.WithShowData(true),
	)

	for _, band := range []model.AttentionBand{
		model.BandCritical, model.BandHigh, model.BandMedium, model.BandLow,
	} {
		if counts[band] > 0 {
			chart.LabelAndIntValue(band.String(), uint64(counts[band]))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeGroups writes one section per trust domain with pages.
func (w *MarkdownWriter) writeGroups(md *markdown.Markdown, brief *model.DiscoveryBrief) {
	for _, group := range brief.Groups {
		if len(group.Pages) == 0 {
			continue
		}

		md.H2(group.Domain.String())
		md.PlainText("")

		rows := make([][]string, len(group.Pages))
		for i, page := range group.Pages {
			rows[i] = []string{
				"`" + page.URL + "`",
				page.AttentionBand.String(),
				page.Confidence.String(),
				strconv.Itoa(len(page.Signals)),
			}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Page", "Attention Band", "Confidence", "Signals"},
			Rows:   rows,
		})
		md.PlainText("")

		for _, page := range group.Pages {
			if len(page.Signals) == 0 {
				continue
			}
			details := ""
			for _, sig := range page.Signals {
				details += "- " + sig.Description +
					" (" + sig.EvidenceType.String() + ", " + sig.Confidence.String() + "): " +
					sig.Rationale + "\n"
			}
			md.Details(page.URL, details)
		}
		md.PlainText("")

		if prompt := model.ReviewPrompt(group.Domain); prompt != "" {
			md.Importantf("Review prompt: %s", prompt)
			md.PlainText("")
		}
	}
}

// writeFetchErrors writes the unreachable page table.
func (w *MarkdownWriter) writeFetchErrors(md *markdown.Markdown, brief *model.DiscoveryBrief) {
	if len(brief.FetchErrors) == 0 {
		return
	}

	md.H2("Fetch Errors")
	md.PlainText("")

	rows := make([][]string, len(brief.FetchErrors))
	for i, fe := range brief.FetchErrors {
		status := "-"
		if fe.Status != 0 {
			status = strconv.Itoa(fe.Status)
		}
		rows[i] = []string{"`" + fe.URL + "`", status, fe.Error}
	}
	md.Table(markdown.TableSet{
		Header: []string{"URL", "Status", "Error"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the scope exclusions.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown, brief *model.DiscoveryBrief) {
	if len(brief.Doctrine.ScopeExclusions) == 0 {
		return
	}

	md.H2("Out of Scope")
	md.PlainText("")
	md.BulletList(brief.Doctrine.ScopeExclusions...)
	md.PlainText("")
}
