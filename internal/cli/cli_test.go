package cli

import (
	"bytes"
	"strings"
	"testing"
)

// TestRunNoArgsPrintsUsage verifies bare invocation shows usage.
func TestRunNoArgsPrintsUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run(nil, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stdout.String(), "prepdeck <command>") {
		t.Fatalf("expected usage text, got %q", stdout.String())
	}
}

// TestRunUnknownCommand verifies an unknown command is rejected.
func TestRunUnknownCommand(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"bogus"}, &stdout, &stderr); code != ExitUsage {
		t.Fatalf("expected usage exit, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Unknown command: bogus") {
		t.Fatalf("expected unknown command message, got %q", stderr.String())
	}
}

// TestRunHelp verifies help flags succeed.
func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		var stdout, stderr bytes.Buffer
		if code := Run([]string{arg}, &stdout, &stderr); code != ExitOK {
			t.Fatalf("%s: expected ok exit, got %d", arg, code)
		}
	}
}

// TestCommandHelp verifies per-command help.
func TestCommandHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := Run([]string{"study", "--help"}, &stdout, &stderr); code != ExitOK {
		t.Fatalf("expected ok exit, got %d", code)
	}
	if !strings.Contains(stdout.String(), "prepdeck study") {
		t.Fatalf("expected study usage, got %q", stdout.String())
	}
}
