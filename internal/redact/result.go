package redact

import "sort"

// Detection reports one redacted span against the original text.
type Detection struct {
	Type  string `json:"type"`
	Value string `json:"value"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Result is the outcome of a single redaction call.
type Result struct {
	RedactedText string      `json:"redactedText"`
	DetectedData []Detection `json:"detectedData"`
}

// TypeCount is the number of detections sharing a type label.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

func assemble(redacted string, detections []Detection) Result {
	if detections == nil {
		detections = []Detection{}
	}
	sort.SliceStable(detections, func(i, j int) bool {
		return detections[i].Start < detections[j].Start
	})
	return Result{RedactedText: redacted, DetectedData: detections}
}

// CountByType tallies detections per type, in order of first appearance.
func (r Result) CountByType() []TypeCount {
	var out []TypeCount
	index := make(map[string]int)
	for _, d := range r.DetectedData {
		if i, ok := index[d.Type]; ok {
			out[i].Count++
			continue
		}
		index[d.Type] = len(out)
		out = append(out, TypeCount{Type: d.Type, Count: 1})
	}
	return out
}

func (r Result) clone() Result {
	r.DetectedData = append([]Detection{}, r.DetectedData...)
	return r
}
