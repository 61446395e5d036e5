package ui

import (
	"strings"
	"testing"

	"github.com/suryansh-23/redactkit/internal/redact"
)

func TestSummarizeOrdersByCategory(t *testing.T) {
	res := redact.Result{
		RedactedText: "xx",
		DetectedData: []redact.Detection{
			{Type: "SSN"},
			{Type: "Address+Name"},
			{Type: "Email"},
			{Type: "SSN"},
		},
	}
	s := Summarize("héllo", res)
	if s.Total != 4 {
		t.Fatalf("total = %d", s.Total)
	}
	got := make([]string, len(s.Counts))
	for i, tc := range s.Counts {
		got[i] = tc.Type
	}
	if strings.Join(got, ",") != "Email,SSN,Address+Name" {
		t.Fatalf("order = %v", got)
	}
	if s.Counts[1].Count != 2 {
		t.Fatalf("ssn count = %d", s.Counts[1].Count)
	}
	if s.InputChars != 5 || s.OutputChars != 2 {
		t.Fatalf("chars = %d/%d", s.InputChars, s.OutputChars)
	}
}

func TestHeadline(t *testing.T) {
	cases := map[int]string{
		0: "No sensitive data detected",
		1: "1 sensitive item detected",
		3: "3 sensitive items detected",
	}
	for total, want := range cases {
		if got := (Stats{Total: total}).Headline(); got != want {
			t.Fatalf("Headline(%d) = %q", total, got)
		}
	}
}

func TestPlainSummary(t *testing.T) {
	in := "mail a@b.com"
	res := redact.Redact(in, redact.DefaultOptions())
	out := Summarize(in, res).Plain()
	for _, want := range []string{"1 sensitive item detected", "  Email: 1", "Characters: 12 in, 12 out"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary %q missing %q", out, want)
		}
	}
}

func TestRenderContainsCounts(t *testing.T) {
	s := Stats{Total: 2, Counts: []redact.TypeCount{{Type: "Email", Count: 2}}}
	if out := s.Render(); !strings.Contains(out, "Email: 2") {
		t.Fatalf("render = %q", out)
	}
}
