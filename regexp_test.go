package rgx

import (
	"strings"
	"testing"
)

func TestMatchSimple(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "xabcx", true},
		{"abc", "ab", false},
		{"", "anything", true},
		{"", "", true},
	}
	for _, c := range cases {
		re := MustCompile(c.pattern)
		if got := re.MatchString(c.input); got != c.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestMatchAlternation(t *testing.T) {
	re := MustCompile("cat|dog|bird")
	for _, s := range []string{"cat", "dog", "bird", "a dog ran"} {
		if !re.MatchString(s) {
			t.Errorf("expected match for %q", s)
		}
	}
	if re.MatchString("fish") {
		t.Error("did not expect match for fish")
	}
}

func TestMatchCharClass(t *testing.T) {
	re := MustCompile("[a-z]+")
	if !re.MatchString("hello") {
		t.Error("expected match")
	}
	re = MustCompile("[^0-9]+")
	if re.MatchString("12345") {
		t.Error("did not expect match")
	}
	if !re.MatchString("abc") {
		t.Error("expected match")
	}
}

func TestMatchShorthandClasses(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"\\d+", "42", true},
		{"\\d+", "abc", false},
		{"\\D+", "abc", true},
		{"\\w+", "foo_1", true},
		{"\\W+", "   ", true},
		{"\\s+", "  \t", true},
		{"\\S+", "abc", true},
		{"[^\\d]", "5", false},
		{"[^\\d]", "x", true},
	}
	for _, c := range cases {
		re := MustCompile(c.pattern)
		if got := re.MatchString(c.input); got != c.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestMatchAnchors(t *testing.T) {
	re := MustCompile("^abc$")
	if !re.MatchString("abc") {
		t.Error("expected match")
	}
	if re.MatchString("xabc") || re.MatchString("abcx") {
		t.Error("anchors should reject extra context")
	}
}

func TestMatchQuantifiers(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a+", "", false},
		{"a+", "a", true},
		{"a?", "", true},
		{"a?", "a", true},
		{"a{3}", "aaa", true},
		{"a{3}", "aa", false},
		{"a{2,4}", "aaa", true},
		{"a{2,4}", "a", false},
		{"a{2,}", "aaaaaa", true},
	}
	for _, c := range cases {
		re := MustCompile(c.pattern)
		if got := re.MatchString(c.input); got != c.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestBoundedQuantifiers(t *testing.T) {
	re := MustCompile("^a{2,4}$")
	for in, want := range map[string]bool{
		"a":     false,
		"aa":    true,
		"aaa":   true,
		"aaaa":  true,
		"aaaaa": false,
	} {
		if got := re.MatchString(in); got != want {
			t.Errorf("MatchString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNonGreedyQuantifiers(t *testing.T) {
	re := MustCompile("a.*?b")
	if got := re.FindString("axxbxxb"); got != "axxb" {
		t.Errorf("got %q, want shortest match axxb", got)
	}

	greedy := MustCompile("a.*b")
	if got := greedy.FindString("axxbxxb"); got != "axxbxxb" {
		t.Errorf("got %q, want longest match axxbxxb", got)
	}
}

func TestExtendedEscapes(t *testing.T) {
	re := MustCompile("a\\nb")
	if !re.MatchString("a\nb") {
		t.Error("expected literal newline to match")
	}
	re = MustCompile("a\\.b")
	if !re.MatchString("a.b") || re.MatchString("aXb") {
		t.Error("escaped dot should be literal")
	}
}

func TestEmptyMatchesAndZeroWidth(t *testing.T) {
	re := MustCompile("")
	all := re.FindAllStringIndex("ab", -1)
	if len(all) != 3 {
		t.Fatalf("got %d empty matches, want 3: %v", len(all), all)
	}

	re = MustCompile("a?")
	if got := re.FindString(""); got != "" {
		t.Errorf("got %q, want empty match", got)
	}

	re = MustCompile("a|")
	if got := re.FindString("b"); got != "" {
		t.Errorf("got %q, want empty alternation branch match", got)
	}
}

func TestEmptyStringMatching(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"", "", true},
		{"a?", "", true},
		{"a*", "", true},
		{"a+", "", false},
		{"()", "", true},
		{"(?:)", "", true},
		{"^$", "", true},
	}
	for _, c := range cases {
		re := MustCompile(c.pattern)
		if got := re.MatchString(c.input); got != c.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestMatchReader(t *testing.T) {
	re := MustCompile("hello")
	ok, err := re.MatchReader(strings.NewReader("say hello there"))
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("expected match via reader")
	}
}
