package batch

import "github.com/idlab-discover/uom-cli/internal/ui"

// Summary converts rep for ui.ConvertUI.PrintBatch.
func (r Report) Summary() ui.BatchSummary {
	s := ui.BatchSummary{Serial: r.SerialNumber, Version: r.Version}
	for _, e := range r.Entries {
		v := ui.BatchEntryView{Request: e.Request.String(), Err: e.Error}
		if e.Result != nil {
			_, out := e.Result.Format(-1)
			v.Result = out + " " + e.Result.To.Abbr
		}
		s.Entries = append(s.Entries, v)
	}
	return s
}
