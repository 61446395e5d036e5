package detect

import (
	"testing"

	"github.com/suryansh-23/redactkit/internal/types"
)

func span(c types.Category, start, end int, value string) Match {
	return Match{Category: c, Label: c.Label(), Start: start, End: end, Value: value}
}

func TestResolveDescendingWithStableTies(t *testing.T) {
	found := Matches{
		types.CategoryPhoneNumber: {span(types.CategoryPhoneNumber, 0, 3, "abc"), span(types.CategoryPhoneNumber, 10, 12, "kl")},
		types.CategoryEmail:       {span(types.CategoryEmail, 0, 5, "abcde")},
	}
	got := Resolve(found, types.Categories(), types.OverlapSplice)
	if len(got) != 3 {
		t.Fatalf("resolved = %d", len(got))
	}
	if got[0].Start != 10 {
		t.Fatalf("first start = %d", got[0].Start)
	}
	if got[1].Category != types.CategoryEmail || got[2].Category != types.CategoryPhoneNumber {
		t.Fatalf("tie order = %s, %s", got[1].Category, got[2].Category)
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(nil, types.Categories(), types.OverlapSplice); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestResolvePriorityKeepsEarlierCategory(t *testing.T) {
	found := Matches{
		types.CategoryAddress:     {span(types.CategoryAddress, 0, 20, "01234567890123456789")},
		types.CategoryPhoneNumber: {span(types.CategoryPhoneNumber, 2, 8, "234567")},
		types.CategorySSN:         {span(types.CategorySSN, 25, 30, "abcde")},
	}
	got := Resolve(found, types.Categories(), types.OverlapPriority)
	if len(got) != 2 {
		t.Fatalf("resolved = %+v", got)
	}
	if got[0].Category != types.CategorySSN || got[1].Category != types.CategoryPhoneNumber {
		t.Fatalf("resolved = %s, %s", got[0].Category, got[1].Category)
	}
}

func TestResolvePriorityNonOverlapping(t *testing.T) {
	found := Matches{
		types.CategoryEmail:       {span(types.CategoryEmail, 0, 5, "abcde")},
		types.CategoryPhoneNumber: {span(types.CategoryPhoneNumber, 0, 3, "abc"), span(types.CategoryPhoneNumber, 10, 12, "kl")},
	}
	got := Resolve(found, types.Categories(), types.OverlapPriority)
	for i := 1; i < len(got); i++ {
		if got[i].Overlaps(got[i-1]) {
			t.Fatalf("overlap between %+v and %+v", got[i-1], got[i])
		}
		if got[i].Start > got[i-1].Start {
			t.Fatalf("not descending: %+v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("resolved = %+v", got)
	}
}

func TestResolveMergeUnionsSpans(t *testing.T) {
	found := Matches{
		types.CategoryEmail:       {span(types.CategoryEmail, 0, 5, "abcde")},
		types.CategoryPhoneNumber: {span(types.CategoryPhoneNumber, 3, 8, "defgh")},
		types.CategorySSN:         {span(types.CategorySSN, 9, 10, "j")},
	}
	got := Resolve(found, types.Categories(), types.OverlapMerge)
	if len(got) != 2 {
		t.Fatalf("resolved = %+v", got)
	}
	merged := got[1]
	if merged.Start != 0 || merged.End != 8 {
		t.Fatalf("merged span = [%d,%d)", merged.Start, merged.End)
	}
	if merged.Value != "abcdefgh" {
		t.Fatalf("merged value = %q", merged.Value)
	}
	if merged.Label != "Email+Phone Number" {
		t.Fatalf("merged label = %q", merged.Label)
	}
	if merged.Category != types.CategoryEmail {
		t.Fatalf("merged category = %q", merged.Category)
	}
}

func TestResolveMergeContainedSpan(t *testing.T) {
	found := Matches{
		types.CategoryPhoneNumber: {span(types.CategoryPhoneNumber, 2, 4, "cd")},
		types.CategoryAddress:     {span(types.CategoryAddress, 0, 8, "abcdefgh")},
	}
	got := Resolve(found, types.Categories(), types.OverlapMerge)
	if len(got) != 1 {
		t.Fatalf("resolved = %+v", got)
	}
	if got[0].Value != "abcdefgh" || got[0].Label != "Address+Phone Number" {
		t.Fatalf("merged = %+v", got[0])
	}
}

func TestResolveMergeKeepsInvalidBytes(t *testing.T) {
	text := "é\xffab\xfecd"
	first := Match{Category: types.CategoryName, Label: "Name", Start: 1, End: 4, Value: text[2:5], byteStart: 2, byteEnd: 5}
	second := Match{Category: types.CategoryAddress, Label: "Address", Start: 3, End: 7, Value: text[4:8], byteStart: 4, byteEnd: 8}
	got := Resolve(Matches{
		types.CategoryName:    {first},
		types.CategoryAddress: {second},
	}, types.Categories(), types.OverlapMerge)
	if len(got) != 1 {
		t.Fatalf("resolved = %+v", got)
	}
	m := got[0]
	if m.Value != "\xffab\xfecd" || m.Start != 1 || m.End != 7 {
		t.Fatalf("merged = %+v", m)
	}
	if start, end, ok := m.ByteSpan(); !ok || start != 2 || end != 8 {
		t.Fatalf("byte span = [%d,%d) ok=%v", start, end, ok)
	}
}
