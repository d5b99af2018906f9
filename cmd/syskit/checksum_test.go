package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePayload(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "payload.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestChecksumCommand_DefaultAlgorithm(t *testing.T) {
	path := writePayload(t)

	out, _, err := runCommand(t, "", "checksum", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	expected := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9  " + path
	if got := strings.TrimSpace(out); got != expected {
		t.Errorf("output = %q; want %q", got, expected)
	}
}

func TestChecksumCommand_AlgorithmFlag(t *testing.T) {
	path := writePayload(t)

	out, _, err := runCommand(t, "", "checksum", "-a", "md5", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "5eb63bbbe01eeed093cb22bb8f5acdc3") {
		t.Errorf("output = %q; want md5 digest prefix", out)
	}
}

func TestChecksumCommand_SettingsAlgorithm(t *testing.T) {
	path := writePayload(t)

	out, _, err := runCommandWithSettings(t, "algorithm: sha1\n", "checksum", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "2aae6c35c94fcfb415dbe95f408b9ce91ee846ed") {
		t.Errorf("output = %q; want sha1 digest prefix", out)
	}
}

func TestChecksumCommand_MissingFile(t *testing.T) {
	_, _, err := runCommand(t, "", "checksum", filepath.Join(t.TempDir(), "absent"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestChecksumCommand_UnknownAlgorithm(t *testing.T) {
	path := writePayload(t)

	_, _, err := runCommand(t, "", "checksum", "-a", "crc32", path)
	if err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}
