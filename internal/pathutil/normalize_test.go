package pathutil

import (
	"reflect"
	"testing"
)

func TestRel(t *testing.T) {
	cases := []struct {
		base, target string
		want         string
		ok           bool
	}{
		{"/repo", "/repo/a/b", "a/b", true},
		{"/repo", "/repo", "", true},
		{"/repo/", "/repo/a", "a", true},
		{"/repo", "/other/a", "", false},
		{"/repo", "/repository/a", "", false},
		{"/repo/sub", "/repo", "", false},
	}
	for _, tc := range cases {
		got, ok := Rel(tc.base, tc.target)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Rel(%q, %q) = %q, %v; want %q, %v", tc.base, tc.target, got, ok, tc.want, tc.ok)
		}
	}
}

func TestComponents(t *testing.T) {
	if got := Components(""); got != nil {
		t.Fatalf("expected nil for empty path, got %v", got)
	}
	got := Components("a/b/c/")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected components: %v", got)
	}
	got = Components("mydir/")
	if !reflect.DeepEqual(got, []string{"mydir"}) {
		t.Fatalf("trailing slash should not add a component: %v", got)
	}
}

func TestNormalize(t *testing.T) {
	if Normalize("") != "" {
		t.Fatalf("empty path should stay empty")
	}
	if got := Normalize("/a/b/../c/"); got != "/a/c" {
		t.Fatalf("unexpected normalize result: %s", got)
	}
}
