package confirm

import (
	"bytes"
	"strings"
	"testing"
)

func withInteractive(t *testing.T, v bool) {
	t.Helper()
	prev := isInteractive
	isInteractive = func() bool { return v }
	t.Cleanup(func() { isInteractive = prev })
}

func TestContinueAutoDeclinesWhenNotInteractive(t *testing.T) {
	withInteractive(t, false)

	var out bytes.Buffer
	got := Continue(&out, strings.NewReader("y\n"), "about to shred 3 files")
	if got {
		t.Fatal("expected auto-decline on non-interactive stdin regardless of input content")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompt printed on auto-decline, got %q", out.String())
	}
}

func TestContinueAcceptsYAndYes(t *testing.T) {
	withInteractive(t, true)

	for _, reply := range []string{"y\n", "Y\n", "yes\n", "YES\n", " yes \n"} {
		var out bytes.Buffer
		if !Continue(&out, strings.NewReader(reply), "") {
			t.Fatalf("reply %q: expected true", reply)
		}
	}
}

func TestContinueDeclinesOnAnythingElse(t *testing.T) {
	withInteractive(t, true)

	for _, reply := range []string{"n\n", "no\n", "\n", "maybe\n"} {
		var out bytes.Buffer
		if Continue(&out, strings.NewReader(reply), "") {
			t.Fatalf("reply %q: expected false", reply)
		}
	}
}

func TestContinuePrintsPromptThenQuestion(t *testing.T) {
	withInteractive(t, true)

	var out bytes.Buffer
	Continue(&out, strings.NewReader("y\n"), "3 files will be shredded")
	got := out.String()
	if !strings.Contains(got, "3 files will be shredded\n") {
		t.Fatalf("expected prompt text in output, got %q", got)
	}
	if !strings.Contains(got, "Continue? (y/N) ") {
		t.Fatalf("expected question in output, got %q", got)
	}
}

func TestContinueOmitsBlankPrompt(t *testing.T) {
	withInteractive(t, true)

	var out bytes.Buffer
	Continue(&out, strings.NewReader("y\n"), "")
	got := out.String()
	if got != "Continue? (y/N) " {
		t.Fatalf("expected only the question with no prompt line, got %q", got)
	}
}

func TestContinueDeclinesOnEmptyRead(t *testing.T) {
	withInteractive(t, true)

	var out bytes.Buffer
	if Continue(&out, strings.NewReader(""), "") {
		t.Fatal("expected false when stdin produces no input")
	}
}
