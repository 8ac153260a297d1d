package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics(t *testing.T) {
	t.Parallel()

	want := []string{"keys", "overview"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v; got %v", want, got)
	}
}

func TestGet(t *testing.T) {
	t.Parallel()

	body, ok := Get(" Keys ")
	if !ok {
		t.Fatalf("expected keys topic")
	}
	if !strings.Contains(body, "ctrl+s") {
		t.Fatalf("expected keys topic to mention ctrl+s")
	}
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to be missing")
	}
	if _, ok := Get("../docs"); ok {
		t.Fatalf("expected path-like topic to be rejected")
	}
}
