package ansi

import "testing"

func TestStripTextOnly(t *testing.T) {
	if got := string(Strip([]byte("hello world"))); got != "hello world" {
		t.Fatalf("strip = %q", got)
	}
}

func TestStripCSI(t *testing.T) {
	in := "mail \x1b[1;31ma@b.com\x1b[0m done"
	if got := string(Strip([]byte(in))); got != "mail a@b.com done" {
		t.Fatalf("strip = %q", got)
	}
}

func TestStripOSC(t *testing.T) {
	cases := map[string]string{
		"pre\x1b]0;title\x07post":     "prepost",
		"pre\x1b]8;;http://x\x1b\\ln": "preln",
		"a\x1bPdata\x1b\\b":           "ab",
	}
	for in, want := range cases {
		if got := string(Strip([]byte(in))); got != want {
			t.Fatalf("Strip(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStripSingleEscape(t *testing.T) {
	if got := string(Strip([]byte("a\x1bcb"))); got != "ab" {
		t.Fatalf("strip = %q", got)
	}
}

func TestStripUnterminated(t *testing.T) {
	if got := string(Strip([]byte("ok\x1b[31"))); got != "ok" {
		t.Fatalf("strip = %q", got)
	}
}

func TestClean(t *testing.T) {
	in := "line one\r\n\x1b[32mline two\x1b[0m\r\n"
	if got := string(Clean([]byte(in))); got != "line one\nline two\n" {
		t.Fatalf("clean = %q", got)
	}
}
