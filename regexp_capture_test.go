package rgx

import (
	"reflect"
	"testing"
)

func TestFindStringSubmatch(t *testing.T) {
	re := MustCompile("(first:\\w+) (last:\\w+)")
	got := re.FindStringSubmatch("John Smith")
	want := []string{"John Smith", "John", "Smith"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSubexpNames(t *testing.T) {
	re := MustCompile("(a)(b:x)(c)")
	want := []string{"", "", "b", ""}
	if got := re.SubexpNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if idx := re.SubexpIndex("b"); idx != 2 {
		t.Fatalf("SubexpIndex(b) = %d, want 2", idx)
	}
	if idx := re.SubexpIndex("nope"); idx != -1 {
		t.Fatalf("SubexpIndex(nope) = %d, want -1", idx)
	}
}

func TestNonCapturingGroups(t *testing.T) {
	re := MustCompile("(?:abc)+(x:def)")
	if re.NumSubexp() != 1 {
		t.Fatalf("NumSubexp() = %d, want 1", re.NumSubexp())
	}
	m := re.Find("abcabcdef")
	if m == nil {
		t.Fatal("expected match")
	}
	if got, ok := m.NamedGroup("x"); !ok || got != "def" {
		t.Fatalf("got %q, %v", got, ok)
	}
}

func TestNestedCaptureGroups(t *testing.T) {
	re := MustCompile("((a)(b))")
	m := re.Find("ab")
	if m == nil {
		t.Fatal("expected match")
	}
	if s, _ := m.Group(1); s != "ab" {
		t.Errorf("group 1 = %q, want ab", s)
	}
	if s, _ := m.Group(2); s != "a" {
		t.Errorf("group 2 = %q, want a", s)
	}
	if s, _ := m.Group(3); s != "b" {
		t.Errorf("group 3 = %q, want b", s)
	}
}

func TestOptionalGroupsAndBackrefs(t *testing.T) {
	cases := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"(a)?(b)\\1", "ab", false}, // group 1 never participated, backref must fail
		{"(a)?(b)\\1", "aba", true},
		{"(.)(.)(.)\\3\\2\\1", "abccba", true},
		{"(.)(.)(.)\\3\\2\\1", "abcabc", false},
		{"(a)\\1|b", "aa", true},
		{"(a)\\1|b", "b", true},
	}
	for _, c := range cases {
		re := MustCompile(c.pattern)
		if got := re.MatchString(c.input); got != c.want {
			t.Errorf("MatchString(%q, %q) = %v, want %v", c.pattern, c.input, got, c.want)
		}
	}
}

func TestTagMatchingBackreference(t *testing.T) {
	re := MustCompile("<([a-z1-6]+)>.*?</\\1>")
	if !re.MatchString("<div>hello</div>") {
		t.Error("expected matching tag pair to match")
	}
	if re.MatchString("<div>hello</span>") {
		t.Error("mismatched tag pair should not match")
	}
}

func TestBackrefByNameAndRelative(t *testing.T) {
	re := MustCompile("(year:\\d{4})-\\g{year}")
	if !re.MatchString("2024-2024") {
		t.Error("expected named backref match")
	}
	if re.MatchString("2024-2025") {
		t.Error("mismatched named backref should not match")
	}

	re = MustCompile("(a)(b)\\g{-1}")
	if !re.MatchString("abb") {
		t.Error("expected relative backref -1 to target group 2")
	}
	if re.MatchString("aba") {
		t.Error("relative backref -1 should not match group 1's text")
	}
}

func TestUnsetGroupBackrefFails(t *testing.T) {
	re := MustCompile("(a)?\\1b")
	if re.MatchString("b") {
		t.Error("unset capture backreference must fail, not match empty")
	}
}

func TestConvert(t *testing.T) {
	re := MustCompile("(name:\\w+)-\\g{name}")
	got, err := re.Convert()
	if err != nil {
		t.Fatal(err)
	}
	want := "(?<name>\\w+)-\\k<name>"
	if got != want {
		t.Fatalf("Convert() = %q, want %q", got, want)
	}
}
