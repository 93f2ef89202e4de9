package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goico "github.com/sergeymakinen/go-ico"
)

func TestRunWritesIcon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_icon.ico")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-o", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v (stderr: %s)", err, stderr.String())
	}

	want := "Icon created successfully: " + path + "\n"
	if stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %s", stderr.String())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = f.Close()
	}()
	frames, err := goico.DecodeAll(f)
	if err != nil {
		t.Fatalf("output is not an icon: %v", err)
	}
	if len(frames) != 6 {
		t.Errorf("got %d frames, want 6", len(frames))
	}
}

func TestRunVerbose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_icon.ico")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-v", "-o", path}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	for _, want := range []string{"icon written", "output size", "kB"} {
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("verbose output missing %q:\n%s", want, stderr.String())
		}
	}
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-nope"}, &stdout, &stderr); err == nil {
		t.Error("run should reject unknown flags")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty", stdout.String())
	}
}

func TestRunUnwritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "app_icon.ico")

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-o", path}, &stdout, &stderr); err == nil {
		t.Error("run should fail when the output directory does not exist")
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty on failure", stdout.String())
	}
}

func TestUsageMentionsGoRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	_ = run([]string{"-h"}, &stdout, &stderr)

	if !strings.Contains(stderr.String(), "go run") {
		t.Errorf("usage should explain -o under go run:\n%s", stderr.String())
	}
}
