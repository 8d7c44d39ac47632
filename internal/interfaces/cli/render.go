package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lite-lake/infra-r53/internal/domain/entity"
)

func renderTable(w io.Writer, headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, t.String())
}

func renderZones(w io.Writer, zones []entity.HostedZone) {
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, []string{z.ID, z.Name})
	}
	renderTable(w, []string{"Id", "Name"}, rows)
}

func renderRecordSets(w io.Writer, records []entity.ResourceRecordSet) {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{r.Name, string(r.Type), fmt.Sprintf("%d", r.TTL), recordValues(r)})
	}
	renderTable(w, []string{"Name", "Type", "TTL", "Values"}, rows)
}

func recordValues(r entity.ResourceRecordSet) string {
	if r.Alias != nil {
		return "ALIAS " + r.Alias.DNSName
	}
	return strings.Join(r.Values, ", ")
}

type detailLine struct {
	label string
	value string
}

// renderDetails prints one "Label: value" line per field, labels title-cased
// and aligned.
func renderDetails(w io.Writer, title string, lines []detailLine) {
	caser := cases.Title(language.English)

	width := 0
	for _, l := range lines {
		if n := len(l.label); n > width {
			width = n
		}
	}

	fmt.Fprintln(w, TitleStyle.Render(title))
	for _, l := range lines {
		label := fmt.Sprintf("%-*s", width+1, caser.String(l.label)+":")
		fmt.Fprintf(w, "  %s %s\n", LabelStyle.Render(label), l.value)
	}
}
