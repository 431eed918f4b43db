// Package batch runs files of conversion requests and writes reports for them.
package batch

import (
	"time"

	"github.com/google/uuid"
	"github.com/idlab-discover/uom-cli/internal/catalog"
)

// File is the on-disk request document:
//
//	conversions:
//	  - {value: 10, from: m, to: ft}
//	  - {kind: temperature, value: 20, from: °C, to: °F}
type File struct {
	Conversions []catalog.Request `json:"conversions" yaml:"conversions"`
}

// Entry is the outcome of one request. Exactly one of Result and Error is set.
type Entry struct {
	Request catalog.Request `json:"request" yaml:"request"`
	Result  *catalog.Result `json:"result,omitempty" yaml:"result,omitempty"`
	Error   string          `json:"error,omitempty" yaml:"error,omitempty"`
}

// Report is the document written after a batch run.
type Report struct {
	SerialNumber string  `json:"serialNumber" yaml:"serialNumber"`
	Timestamp    string  `json:"timestamp" yaml:"timestamp"`
	Tool         string  `json:"tool" yaml:"tool"`
	Version      string  `json:"version" yaml:"version"`
	Entries      []Entry `json:"entries" yaml:"entries"`
}

const ToolName = "uom-cli"

// Failed returns the number of entries that did not convert.
func (r Report) Failed() int {
	n := 0
	for _, e := range r.Entries {
		if e.Error != "" {
			n++
		}
	}
	return n
}

var (
	newSerial = func() string { return "urn:uuid:" + uuid.New().String() }
	now       = time.Now
)

// Run converts every request against kinds. A failing request is recorded in its
// entry and does not stop the run.
func Run(kinds []catalog.Kind, reqs []catalog.Request, version string) Report {
	rep := Report{
		SerialNumber: newSerial(),
		Timestamp:    now().Format(time.RFC3339),
		Tool:         ToolName,
		Version:      version,
		Entries:      make([]Entry, 0, len(reqs)),
	}
	for i, req := range reqs {
		e := Entry{Request: req}
		res, err := catalog.Convert(kinds, req)
		if err != nil {
			e.Error = err.Error()
			logf(req.Kind, "entry %d %s failed: %v", i, req, err)
		} else {
			e.Result = &res
			logf(res.Kind, "entry %d %s", i, res)
		}
		rep.Entries = append(rep.Entries, e)
	}
	return rep
}
