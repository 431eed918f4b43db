package catalog

import "github.com/idlab-discover/uom-cli/internal/ui"

// Tables converts kinds to the ui package's table rows.
func Tables(kinds []Kind) []ui.KindTable {
	out := make([]ui.KindTable, len(kinds))
	for i, k := range kinds {
		rows := make([]ui.UnitRow, len(k.Units))
		for j, u := range k.Units {
			rows[j] = row(u)
		}
		out[i] = ui.KindTable{Kind: k.Name, Units: rows}
	}
	return out
}

// View formats r for the ui renderers.
func (r Result) View(precision int) ui.ConversionView {
	in, out := r.Format(precision)
	return ui.ConversionView{
		Kind:   r.Kind,
		Input:  in,
		Output: out,
		From:   row(r.From),
		To:     row(r.To),
	}
}

func row(u UnitInfo) ui.UnitRow {
	return ui.UnitRow{
		Name:        u.Name,
		Abbr:        u.Abbr,
		NameAndAbbr: u.NameAndAbbr,
		Scale:       u.Scale,
		Offset:      u.Offset,
		Base:        u.Base,
	}
}
