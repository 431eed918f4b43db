package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// UnitRow mirrors catalog.UnitInfo to avoid circular imports.
type UnitRow struct {
	Name        string
	Abbr        string
	NameAndAbbr string
	Scale       float64
	Offset      float64
	Base        bool
}

// KindTable mirrors one catalog.Kind.
type KindTable struct {
	Kind  string
	Units []UnitRow
}

// ConversionView is a finished conversion with its magnitudes already formatted.
type ConversionView struct {
	Kind   string
	Input  string
	Output string
	From   UnitRow
	To     UnitRow
}

// BatchEntryView is one line of a batch report.
type BatchEntryView struct {
	Request string
	Result  string
	Err     string
}

// BatchSummary mirrors batch.Report.
type BatchSummary struct {
	Serial  string
	Version string
	Entries []BatchEntryView
}

// ConvertUI renders conversion results and unit tables.
type ConvertUI struct {
	writer io.Writer
	quiet  bool
}

// NewConvertUI creates a renderer writing to w. A quiet renderer prints nothing.
func NewConvertUI(w io.Writer, quiet bool) *ConvertUI {
	return &ConvertUI{writer: w, quiet: quiet}
}

// PrintConversion renders a boxed conversion result.
func (c *ConvertUI) PrintConversion(v ConversionView) {
	if c.quiet {
		return
	}

	var sb strings.Builder
	sb.WriteString(SectionHeader.Render(v.Kind))
	sb.WriteString("\n\n")
	sb.WriteString(Bold.Render(v.Input+" "+v.From.Abbr) + Dim.Render("  =  ") + Highlight.Render(v.Output+" "+v.To.Abbr))
	sb.WriteString("\n\n")
	sb.WriteString(FormatKeyValue("From", v.From.Name+" "+Muted.Render(describeFactor(v.From))))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("To", v.To.Name+" "+Muted.Render(describeFactor(v.To))))

	fmt.Fprintln(c.writer, SuccessBox.Render(sb.String()))
}

// PrintUnits renders one table per kind.
func (c *ConvertUI) PrintUnits(tables []KindTable) {
	if c.quiet {
		return
	}
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(c.writer)
		}
		fmt.Fprintln(c.writer, Box.Render(renderTable(t)))
	}
}

// PrintKinds renders a one-line summary per kind.
func (c *ConvertUI) PrintKinds(tables []KindTable) {
	if c.quiet {
		return
	}
	var sb strings.Builder
	sb.WriteString(Title.Render("Quantity kinds"))
	sb.WriteString("\n\n")
	for _, t := range tables {
		base := ""
		for _, u := range t.Units {
			if u.Base {
				base = u.NameAndAbbr
			}
		}
		sb.WriteString(GetBullet() + " " + Bold.Width(14).Render(t.Kind))
		sb.WriteString(Dim.Render(fmt.Sprintf("%d units, base ", len(t.Units))) + base)
		sb.WriteString("\n")
	}
	fmt.Fprint(c.writer, Box.Render(strings.TrimRight(sb.String(), "\n"))+"\n")
}

// PrintBatch renders a batch run summary.
func (c *ConvertUI) PrintBatch(s BatchSummary) {
	if c.quiet {
		return
	}
	var sb strings.Builder
	failed := 0
	for _, e := range s.Entries {
		if e.Err != "" {
			failed++
			sb.WriteString(GetCrossMark() + " " + e.Request + Dim.Render(" → ") + Error.Render(e.Err))
		} else {
			sb.WriteString(GetCheckMark() + " " + e.Request + Dim.Render(" → ") + e.Result)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Serial", s.Serial))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Converted", fmt.Sprintf("%d/%d", len(s.Entries)-failed, len(s.Entries))))

	box := SuccessBox
	if failed > 0 {
		box = ErrorBox
	}
	fmt.Fprintln(c.writer, box.Render(sb.String()))
}

func renderTable(t KindTable) string {
	nameW, abbrW := len("Name"), len("Abbr")
	for _, u := range t.Units {
		nameW = max(nameW, len(u.Name))
		abbrW = max(abbrW, len([]rune(u.Abbr)))
	}

	var sb strings.Builder
	sb.WriteString(SectionHeader.Render(t.Kind))
	sb.WriteString("\n")
	sb.WriteString(Dim.Width(nameW + 2).Render("Name"))
	sb.WriteString(Dim.Width(abbrW + 2).Render("Abbr"))
	sb.WriteString(Dim.Render("Definition"))
	for _, u := range t.Units {
		sb.WriteString("\n")
		name := Plain.Width(nameW + 2).Render(u.Name)
		if u.Base {
			name = Highlight.Width(nameW + 2).Render(u.Name)
		}
		sb.WriteString(name)
		sb.WriteString(Secondary.Width(abbrW + 2).Render(u.Abbr))
		sb.WriteString(Muted.Render(describeFactor(u)))
	}
	return sb.String()
}

// describeFactor explains a unit relative to its kind's base unit.
func describeFactor(u UnitRow) string {
	if u.Base {
		return "base unit"
	}
	s := "× " + strconv.FormatFloat(u.Scale, 'g', 10, 64)
	if u.Offset != 0 {
		s += " + " + strconv.FormatFloat(u.Offset, 'g', 10, 64)
	}
	return s
}
