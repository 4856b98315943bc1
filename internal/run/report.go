package run

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"
)

// Report is the record of one completed run.
type Report struct {
	Label   string
	Policy  string
	Mode    Mode
	Files   int
	Lines   int
	Elapsed time.Duration
}

// Summary aggregates the reports of one invocation.
//
// Canonical representation: reports are sorted by label (labels are unique
// per invocation), and JSON field order is fixed by a custom marshaler, so
// two invocations over the same inputs differ only in the elapsed figures.
type Summary struct {
	Reports []Report
}

// Validate checks basic invariants and returns a descriptive error.
func (s *Summary) Validate() error {
	if s == nil {
		return errors.New("summary is nil")
	}
	seen := make(map[string]bool, len(s.Reports))
	for i, r := range s.Reports {
		if r.Label == "" {
			return fmt.Errorf("reports[%d].label is required", i)
		}
		if seen[r.Label] {
			return fmt.Errorf("duplicate report label %q", r.Label)
		}
		seen[r.Label] = true
	}
	return nil
}

// Canonicalize sorts the reports into their canonical (label) order.
func (s *Summary) Canonicalize() {
	if s == nil {
		return
	}
	sort.SliceStable(s.Reports, func(i, j int) bool {
		return s.Reports[i].Label < s.Reports[j].Label
	})
}

// CanonicalJSON returns the canonical JSON encoding of the summary.
// It canonicalizes a copy to avoid mutating the caller's slice.
func (s Summary) CanonicalJSON() ([]byte, error) {
	cp := Summary{Reports: make([]Report, len(s.Reports))}
	copy(cp.Reports, s.Reports)
	cp.Canonicalize()
	if err := cp.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(&cp)
}

// MarshalJSON fixes field ordering so the encoding is byte-stable.
func (s Summary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("{\"reports\":[")
	for i := range s.Reports {
		if i > 0 {
			buf.WriteByte(',')
		}
		rb, err := json.Marshal(s.Reports[i])
		if err != nil {
			return nil, err
		}
		buf.Write(rb)
	}
	buf.WriteString("]}")
	return buf.Bytes(), nil
}

// MarshalJSON fixes field ordering and encodes elapsed time in milliseconds.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Label == "" {
		return nil, errors.New("label is required")
	}
	var buf bytes.Buffer
	buf.WriteByte('{')

	buf.WriteString("\"label\":")
	lb, _ := json.Marshal(r.Label)
	buf.Write(lb)

	buf.WriteString(",\"policy\":")
	pb, _ := json.Marshal(r.Policy)
	buf.Write(pb)

	buf.WriteString(",\"mode\":")
	mb, _ := json.Marshal(string(r.Mode))
	buf.Write(mb)

	fmt.Fprintf(&buf, ",\"files\":%d", r.Files)
	fmt.Fprintf(&buf, ",\"lines\":%d", r.Lines)
	fmt.Fprintf(&buf, ",\"elapsedMs\":%.3f", float64(r.Elapsed)/float64(time.Millisecond))

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
