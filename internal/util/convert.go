// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions for the FloatChat TUI.
package util

import "strconv"

// FloatToStringPrec converts a float64 to string with the given decimal precision.
func FloatToStringPrec(f float64, prec int) string {
	return strconv.FormatFloat(f, 'f', prec, 64)
}
