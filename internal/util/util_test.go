// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// ATOMIC WRITE TESTS
// =============================================================================

func TestAtomicWriteFile_Basic(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")
	data := []byte("hello, world!")

	err := AtomicWriteFile(path, data, 0644)
	if err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file: %v", err)
	}
	if string(content) != string(data) {
		t.Errorf("Content mismatch: got %q, want %q", string(content), string(data))
	}
}

func TestAtomicWriteFile_CreatesParentDir(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "subdir", "deep", "test.txt")

	if err := AtomicWriteFile(path, []byte("test data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("File not created: %v", err)
	}
}

func TestAtomicWriteFile_Overwrites(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := AtomicWriteFile(path, []byte("initial"), 0644); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if err := AtomicWriteFile(path, []byte("replaced"), 0644); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}

	content, _ := os.ReadFile(path)
	if string(content) != "replaced" {
		t.Errorf("Content = %q, want %q", string(content), "replaced")
	}
}

func TestAtomicWriteFile_NoTempFileLeft(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "test.txt")

	if err := AtomicWriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile failed: %v", err)
	}

	entries, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file, found %d entries", len(entries))
	}
}

// =============================================================================
// STRING TESTS
// =============================================================================

func TestTruncateWidth_DoubleWidthChars(t *testing.T) {
	// Each CJK character is 2 columns wide.
	result := TruncateWidth("日本語テスト", 7)
	if w := runewidth.StringWidth(result); w > 7 {
		t.Errorf("TruncateWidth exceeded budget: %q is %d wide", result, w)
	}

	if got := TruncateWidth("short", 20); got != "short" {
		t.Errorf("TruncateWidth should not touch fitting strings, got %q", got)
	}

	if got := TruncateWidth("anything", 0); got != "" {
		t.Errorf("TruncateWidth with zero budget = %q, want empty", got)
	}
}

func TestPadWidth(t *testing.T) {
	if got := PadWidth("ab", 5); got != "ab   " {
		t.Errorf("PadWidth(ab, 5) = %q", got)
	}
	if got := runewidth.StringWidth(PadWidth("日本語テスト", 5)); got != 5 {
		t.Errorf("PadWidth should clamp wide strings to the budget, got width %d", got)
	}
}

// =============================================================================
// CONVERSION TESTS
// =============================================================================

func TestFloatToStringPrec(t *testing.T) {
	if got := FloatToStringPrec(3.14159, 4); got != "3.1416" {
		t.Errorf("FloatToStringPrec = %q", got)
	}
	if got := FloatToStringPrec(2.5, 0); got != "2" {
		t.Errorf("FloatToStringPrec with zero precision = %q", got)
	}
}
