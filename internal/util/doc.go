// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the FloatChat TUI.
//
// This package contains common helper functions used throughout the application
// for string manipulation, type conversion, and file operations.
//
// # Key Functions
//
// String Utilities:
//   - TruncateWidth: Display-width truncation for terminal cells
//   - PadWidth: Width-aware padding for table alignment
//
// Type Conversion:
//   - FloatToStringPrec: Float formatting with fixed precision
//
// File Operations:
//   - AtomicWriteFile: Crash-safe file writing with fsync
//
// # Usage
//
//	// Align a cell to a fixed terminal width
//	cell := util.PadWidth(value, 12)
//
//	// Write files atomically to prevent data loss
//	err := util.AtomicWriteFile(path, data, 0644)
package util
