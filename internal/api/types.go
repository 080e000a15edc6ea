// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the FloatChat backend API.
package api

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// COORDINATE TYPE
// =============================================================================

// Coordinate is a decimal-degree latitude or longitude value.
//
// The backend is not consistent about encoding: some records carry
// coordinates as JSON numbers, others as strings ("15.5"). Coercion happens
// here, at the decode boundary, so the rest of the application only ever
// sees a parsed value or an explicitly invalid one.
type Coordinate struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts a JSON number, a numeric string, or null.
// Anything unparsable yields an invalid coordinate rather than an error,
// so a single bad record cannot fail a whole catalog fetch.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*c = Coordinate{}
		return nil
	}

	// String-encoded number
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*c = Coordinate{}
			return nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			*c = Coordinate{}
			return nil
		}
		*c = Coordinate{Value: v, Valid: true}
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*c = Coordinate{}
		return nil
	}
	*c = Coordinate{Value: v, Valid: true}
	return nil
}

// MarshalJSON writes the numeric value, or null when invalid.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(c.Value)
}

// Format renders the coordinate to four decimal places with a hemisphere
// suffix ("15.5000°N"), or "N/A" when invalid.
func (c Coordinate) Format(suffix string) string {
	if !c.Valid {
		return "N/A"
	}
	return fmt.Sprintf("%.4f°%s", c.Value, suffix)
}

// =============================================================================
// FLOAT RECORD
// =============================================================================

// FloatStatus is the operational state of a float.
type FloatStatus string

const (
	StatusActive   FloatStatus = "active"
	StatusInactive FloatStatus = "inactive"
	StatusLost     FloatStatus = "lost"
	StatusUnknown  FloatStatus = "unknown"
)

// FloatRecord describes one autonomous profiling float from the catalog.
// Records are replaced wholesale on refresh; nothing mutates them in place.
type FloatRecord struct {
	FloatID         string      `json:"float_id"`
	WMOID           string      `json:"wmo_id"`
	Latitude        Coordinate  `json:"latitude"`
	Longitude       Coordinate  `json:"longitude"`
	Status          FloatStatus `json:"status"`
	OceanRegion     string      `json:"ocean_region,omitempty"`
	TotalProfiles   int         `json:"total_profiles"`
	DeploymentDate  string      `json:"deployment_date,omitempty"`
	LastProfileDate string      `json:"last_profile_date,omitempty"`
	Institution     string      `json:"institution,omitempty"`
	Country         string      `json:"country,omitempty"`
}

// HasPosition reports whether both coordinates parsed to usable values.
func (f FloatRecord) HasPosition() bool {
	return f.Latitude.Valid && f.Longitude.Valid
}

// FormatDate renders an ISO date string as "Jan 2, 2006", with "N/A" for
// absent or unparsable dates.
func FormatDate(iso string) string {
	if iso == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return "N/A"
}

// =============================================================================
// PROFILE RECORD
// =============================================================================

// ProfileRecord is one depth-indexed measurement for a float.
// The metric fields are nullable: a level may carry any subset of them.
type ProfileRecord struct {
	Depth       float64  `json:"depth"`
	Temperature *float64 `json:"temperature"`
	Salinity    *float64 `json:"salinity"`
	Oxygen      *float64 `json:"oxygen"`
}

// =============================================================================
// QUERY RESULT
// =============================================================================

// Row is one generic result row: column name to scalar value.
type Row = map[string]any

// QueryResult is the normalized output of a natural-language query.
// It is immutable after decode and is shared by reference between the chat
// transcript, the chart panel, and the map.
type QueryResult struct {
	Results      []Row  `json:"results"`
	Count        int    `json:"count"`
	Summary      string `json:"summary,omitempty"`
	NaturalQuery string `json:"naturalQuery,omitempty"`
	SQLQuery     string `json:"sqlQuery,omitempty"`
}

// IsFloatShaped reports whether the result rows look like float catalog
// records (keyed by float_id), meaning they can drive the map and list.
func (r *QueryResult) IsFloatShaped() bool {
	if r == nil || len(r.Results) == 0 {
		return false
	}
	_, ok := r.Results[0]["float_id"]
	return ok
}

// FloatsFromResult converts float-shaped result rows into FloatRecords by
// re-decoding them through the same boundary types as the catalog endpoint,
// so string-encoded coordinates get the same treatment either way.
// Returns false when the rows are not float-shaped.
func FloatsFromResult(r *QueryResult) ([]FloatRecord, bool) {
	if !r.IsFloatShaped() {
		return nil, false
	}
	raw, err := json.Marshal(r.Results)
	if err != nil {
		return nil, false
	}
	var floats []FloatRecord
	if err := json.Unmarshal(raw, &floats); err != nil {
		return nil, false
	}
	return floats, true
}

// =============================================================================
// INGEST RESULT
// =============================================================================

// IngestResult is the backend's response to a NetCDF upload.
type IngestResult struct {
	Float            FloatRecord `json:"float"`
	InsertedProfiles int         `json:"insertedProfiles"`
}

// =============================================================================
// WIRE ENVELOPE
// =============================================================================

// envelope is the JSON wrapper every backend endpoint uses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}
