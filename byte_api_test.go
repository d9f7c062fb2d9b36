package rgx

import (
	"bytes"
	"testing"
)

func TestFindBytes(t *testing.T) {
	re := MustCompile("[0-9]+")
	got := re.FindBytes([]byte("abc123def"))
	if !bytes.Equal(got, []byte("123")) {
		t.Fatalf("got %q", got)
	}
	if got := re.FindBytes([]byte("no digits")); got != nil {
		t.Fatalf("got %q, want nil", got)
	}
}

func TestFindBytesIndex(t *testing.T) {
	re := MustCompile("b+")
	loc := re.FindBytesIndex([]byte("abbbc"))
	if loc == nil || loc[0] != 1 || loc[1] != 4 {
		t.Fatalf("got %v", loc)
	}
}

func TestFindBytesSubmatch(t *testing.T) {
	re := MustCompile("(k:\\w+)=(v:\\w+)")
	got := re.FindBytesSubmatch([]byte("key=value"))
	if got == nil {
		t.Fatal("expected match")
	}
	if string(got[1]) != "key" || string(got[2]) != "value" {
		t.Fatalf("got %v", got)
	}
}

func TestFindAllBytes(t *testing.T) {
	re := MustCompile("a+")
	got := re.FindAllBytes([]byte("aa b aaa"), -1)
	if len(got) != 2 || string(got[0]) != "aa" || string(got[1]) != "aaa" {
		t.Fatalf("got %v", got)
	}
}

func TestFindAllBytesIndex(t *testing.T) {
	re := MustCompile("a+")
	got := re.FindAllBytesIndex([]byte("aa b aaa"), -1)
	if len(got) != 2 {
		t.Fatalf("got %v", got)
	}
}

func TestFindAllBytesSubmatch(t *testing.T) {
	re := MustCompile("(\\w)=(\\w)")
	got := re.FindAllBytesSubmatch([]byte("a=1 b=2"), -1)
	if len(got) != 2 {
		t.Fatalf("got %d groups of matches, want 2", len(got))
	}
	if string(got[0][1]) != "a" || string(got[0][2]) != "1" {
		t.Fatalf("got %v", got[0])
	}
}

func TestMatchBytes(t *testing.T) {
	re := MustCompile("^[a-z]+$")
	if !re.MatchBytes([]byte("hello")) {
		t.Error("expected match")
	}
	if re.MatchBytes([]byte("Hello")) {
		t.Error("did not expect match")
	}
}
