// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes query results and conversation transcripts to disk.
package export

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files are saved.
	// Default: current working directory.
	OutputDir string

	// OpenAfterExport opens the file in the default application.
	OpenAfterExport bool

	// Now supplies the timestamp used in filenames. Tests override it;
	// nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
	}
}

func (o *Options) timestamp() string {
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}
	return now().Format("20060102_150405")
}

// =============================================================================
// FILE WRITING
// =============================================================================

// writeExport writes content under OutputDir with a timestamped name built
// from the descriptive base. Returns the output file path.
func writeExport(base, ext string, content []byte, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	filename := fmt.Sprintf("floatchat-%s-%s%s", sanitizeFilename(base), opts.timestamp(), ext)

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, filename)
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	if opts.OpenAfterExport {
		if err := openFile(outputPath); err != nil {
			// Non-fatal, the file was still created.
			fmt.Printf("Warning: could not open file: %v\n", err)
		}
	}

	return outputPath, nil
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// sanitizeFilename removes or replaces characters that are invalid in filenames.
func sanitizeFilename(s string) string {
	maxLen := 50
	runes := []rune(s)
	if len(runes) > maxLen {
		s = string(runes[:maxLen])
	}

	// Problematic on Windows or Unix.
	replacer := map[rune]rune{
		'/':  '-',
		'\\': '-',
		':':  '-',
		'*':  '-',
		'?':  '-',
		'"':  '-',
		'<':  '-',
		'>':  '-',
		'|':  '-',
		' ':  '_',
		'\t': '_',
		'\n': '_',
		'\r': '_',
	}

	result := []rune{}
	for _, r := range s {
		if replacement, found := replacer[r]; found {
			result = append(result, replacement)
		} else if r < 32 || r == 127 {
			result = append(result, '-')
		} else {
			result = append(result, r)
		}
	}

	if len(result) == 0 {
		return "results"
	}

	return string(result)
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
