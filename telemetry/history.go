package telemetry

// History is a bounded ring of the most recent mutation records.
type History struct {
	records []Record
	size    int
}

// NewHistory creates a history keeping up to size records. A size of
// zero or less disables retention.
func NewHistory(size int) *History {
	return &History{size: size}
}

// Add appends a record, evicting the oldest when full.
func (h *History) Add(r Record) {
	if h.size <= 0 {
		return
	}
	if len(h.records) == h.size {
		copy(h.records, h.records[1:])
		h.records[len(h.records)-1] = r
		return
	}
	h.records = append(h.records, r)
}

// Len returns the number of retained records.
func (h *History) Len() int { return len(h.records) }

// Last returns the most recent record.
func (h *History) Last() (Record, bool) {
	if len(h.records) == 0 {
		return Record{}, false
	}
	return h.records[len(h.records)-1], true
}

// Records returns the retained records, oldest first.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)
	return out
}

// OverallTrend returns the overall score of each retained record,
// oldest first, for sparkline-style display.
func (h *History) OverallTrend() []float64 {
	out := make([]float64, len(h.records))
	for i, r := range h.records {
		out[i] = r.Overall
	}
	return out
}
