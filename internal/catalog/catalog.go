// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package catalog provides pure filtering over the float collection.
package catalog

import (
	"sort"
	"strings"

	"github.com/floatchat/floatchat-tui/internal/api"
)

// All is the wildcard value that disables a dropdown filter.
const All = "all"

// Filter narrows the float collection by free-text search plus status and
// region dropdowns. The search term matches case-insensitive substrings of
// the float ID, ocean region, and country. Filter never mutates its input
// and preserves the original ordering.
func Filter(floats []api.FloatRecord, search, status, region string) []api.FloatRecord {
	search = strings.ToLower(strings.TrimSpace(search))

	out := make([]api.FloatRecord, 0, len(floats))
	for _, f := range floats {
		if search != "" && !matchesSearch(f, search) {
			continue
		}
		if status != "" && status != All && string(f.Status) != status {
			continue
		}
		if region != "" && region != All && f.OceanRegion != region {
			continue
		}
		out = append(out, f)
	}
	return out
}

func matchesSearch(f api.FloatRecord, term string) bool {
	return strings.Contains(strings.ToLower(f.FloatID), term) ||
		strings.Contains(strings.ToLower(f.OceanRegion), term) ||
		strings.Contains(strings.ToLower(f.Country), term)
}

// Regions enumerates the distinct ocean regions present in the collection,
// sorted for stable dropdown ordering. Floats without a region are skipped.
func Regions(floats []api.FloatRecord) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, f := range floats {
		if f.OceanRegion == "" || seen[f.OceanRegion] {
			continue
		}
		seen[f.OceanRegion] = true
		regions = append(regions, f.OceanRegion)
	}
	sort.Strings(regions)
	return regions
}

// Statuses enumerates the distinct statuses present in the collection,
// sorted for stable dropdown ordering.
func Statuses(floats []api.FloatRecord) []string {
	seen := make(map[string]bool)
	var statuses []string
	for _, f := range floats {
		s := string(f.Status)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)
	return statuses
}
