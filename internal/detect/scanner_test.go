package detect

import (
	"testing"

	"github.com/suryansh-23/redactkit/internal/types"
)

func onlySelector(enabled ...types.Category) Selector {
	return SelectorFunc(func(c types.Category) bool {
		for _, e := range enabled {
			if e == c {
				return true
			}
		}
		return false
	})
}

func TestScanSkipsDisabledCategories(t *testing.T) {
	s := NewScanner(nil)
	text := "a@b.com 123-45-6789"
	found := s.Scan(text, onlySelector(types.CategorySSN))
	if _, ok := found[types.CategoryEmail]; ok {
		t.Fatalf("email scanned while disabled")
	}
	if len(found[types.CategorySSN]) != 1 {
		t.Fatalf("ssn matches = %d", len(found[types.CategorySSN]))
	}
	if found.Count() != 1 {
		t.Fatalf("count = %d", found.Count())
	}
}

func TestScanEmptyText(t *testing.T) {
	found := NewScanner(nil).Scan("", onlySelector(types.Categories()...))
	if len(found) != 0 {
		t.Fatalf("expected no matches, got %v", found)
	}
}

func TestScanReportsCodepointOffsets(t *testing.T) {
	text := "héllo ✉ a@b.com"
	found := NewScanner(nil).Scan(text, onlySelector(types.CategoryEmail))
	list := found[types.CategoryEmail]
	if len(list) != 1 {
		t.Fatalf("matches = %d", len(list))
	}
	m := list[0]
	if m.Start != 8 || m.End != 15 {
		t.Fatalf("span = [%d,%d), want [8,15)", m.Start, m.End)
	}
	if got := string([]rune(text)[m.Start:m.End]); got != m.Value {
		t.Fatalf("runes[start:end] = %q, value = %q", got, m.Value)
	}
}

func TestScanMultipleMatchesLeftToRight(t *testing.T) {
	text := "x@y.io, é@no, ünï z@w.org"
	list := NewScanner(nil).Scan(text, onlySelector(types.CategoryEmail))[types.CategoryEmail]
	if len(list) != 2 {
		t.Fatalf("matches = %d", len(list))
	}
	runes := []rune(text)
	for i, m := range list {
		if string(runes[m.Start:m.End]) != m.Value {
			t.Fatalf("match %d: runes = %q, value = %q", i, string(runes[m.Start:m.End]), m.Value)
		}
	}
	if list[0].Start >= list[1].Start {
		t.Fatalf("matches out of order: %v", list)
	}
}

func TestDetectorSequenceRestarts(t *testing.T) {
	det, _ := DefaultRegistry().Lookup(types.CategorySSN)
	text := "111-22-3333 444-55-6666"
	seq := det.All(text)

	var first []string
	for m := range seq {
		first = append(first, m.Value)
		break
	}
	var all []string
	for m := range seq {
		all = append(all, m.Value)
	}
	if len(first) != 1 || first[0] != "111-22-3333" {
		t.Fatalf("first = %q", first)
	}
	if len(all) != 2 || all[0] != "111-22-3333" {
		t.Fatalf("restart = %q", all)
	}
}

func TestScanWithSyntheticRegistry(t *testing.T) {
	reg, err := NewRegistry(Definition{Category: "ticket", Label: "Ticket", Pattern: `T-\d+`})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	found := NewScanner(reg).Scan("see T-12 and T-345", SelectorFunc(func(types.Category) bool { return true }))
	list := found["ticket"]
	if len(list) != 2 || list[1].Value != "T-345" || list[1].Label != "Ticket" {
		t.Fatalf("matches = %+v", list)
	}
}

func TestScanUnicodeSpaceSeparators(t *testing.T) {
	cases := []struct {
		category types.Category
		text     string
		want     string
	}{
		{types.CategoryPhoneNumber, "call (555)\u00a0123-4567", "(555)\u00a0123-4567"},
		{types.CategoryPhoneNumber, "ring 555\u202f123\u202f4567 now", "555\u202f123\u202f4567"},
		{types.CategoryCreditCard, "card 4532\u00a01234\u00a05678\u00a09012.", "4532\u00a01234\u00a05678\u00a09012"},
		{types.CategoryAddress, "at 12\u00a0Elm\u3000Street today", "12\u00a0Elm\u3000Street"},
		{types.CategoryPhoneNumber, "tab 555\v123\v4567", "555\v123\v4567"},
	}
	s := NewScanner(nil)
	for _, tc := range cases {
		list := s.Scan(tc.text, onlySelector(tc.category))[tc.category]
		if len(list) != 1 || list[0].Value != tc.want {
			t.Fatalf("%s in %q: matches = %+v, want %q", tc.category, tc.text, list, tc.want)
		}
	}
}

func TestScanKeepsByteSpan(t *testing.T) {
	text := "bin\xff é a@b.com"
	list := NewScanner(nil).Scan(text, onlySelector(types.CategoryEmail))[types.CategoryEmail]
	if len(list) != 1 {
		t.Fatalf("matches = %d", len(list))
	}
	start, end, ok := list[0].ByteSpan()
	if !ok || text[start:end] != "a@b.com" {
		t.Fatalf("byte span = [%d,%d) ok=%v", start, end, ok)
	}
	if list[0].Start != 7 || list[0].End != 14 {
		t.Fatalf("span = [%d,%d), want [7,14)", list[0].Start, list[0].End)
	}
	if _, _, ok := (Match{Start: 1, End: 3, Value: "ab"}).ByteSpan(); ok {
		t.Fatalf("hand-built match reported a byte span")
	}
}
