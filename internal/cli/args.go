// args.go - shared argument parsing for CLI subcommands.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "strings"

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser splits raw arguments into a subcommand, flags, and positional
// arguments. It handles the common flag formats consistently:
//
//	--flag value     long flag with space-separated value
//	--flag=value     long flag with equals sign
//	--flag           boolean flag
//	-f value         short flag
type ArgParser struct {
	subcommand string
	flags      map[string]string
	boolFlags  map[string]bool
	positional []string
}

// NewArgParser parses raw arguments. The first positional argument is the
// subcommand.
func NewArgParser(raw []string) *ArgParser {
	parser := &ArgParser{
		flags:     make(map[string]string),
		boolFlags: make(map[string]bool),
	}

	i := 0
	for i < len(raw) {
		arg := raw[i]
		if !strings.HasPrefix(arg, "-") {
			parser.positional = append(parser.positional, arg)
			i++
			continue
		}

		if name, value, ok := strings.Cut(strings.TrimLeft(arg, "-"), "="); ok {
			if value == "true" || value == "false" {
				parser.boolFlags[name] = value == "true"
			} else {
				parser.flags[name] = value
			}
			i++
			continue
		}

		name := strings.TrimLeft(arg, "-")
		if i+1 < len(raw) && !strings.HasPrefix(raw[i+1], "-") {
			parser.flags[name] = raw[i+1]
			i += 2
		} else {
			parser.boolFlags[name] = true
			i++
		}
	}

	if len(parser.positional) > 0 {
		parser.subcommand = parser.positional[0]
	}
	return parser
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a string flag, or "".
func (p *ArgParser) Flag(name string) string {
	return p.flags[strings.TrimLeft(name, "-")]
}

// FlagOrDefault returns the flag value or a default if not set.
func (p *ArgParser) FlagOrDefault(name, defaultValue string) string {
	if val := p.Flag(name); val != "" {
		return val
	}
	return defaultValue
}

// BoolFlag returns the value of a boolean flag, or false.
func (p *ArgParser) BoolFlag(name string) bool {
	return p.boolFlags[strings.TrimLeft(name, "-")]
}

// Positional returns the positional argument at index, or "". Index 0 is
// the subcommand.
func (p *ArgParser) Positional(index int) string {
	if index < 0 || index >= len(p.positional) {
		return ""
	}
	return p.positional[index]
}

// PositionalFrom returns all positional arguments starting at index.
func (p *ArgParser) PositionalFrom(index int) []string {
	if index < 0 || index >= len(p.positional) {
		return nil
	}
	return p.positional[index:]
}

// HasFlag reports whether the flag was given in either form.
func (p *ArgParser) HasFlag(name string) bool {
	name = strings.TrimLeft(name, "-")
	_, hasString := p.flags[name]
	_, hasBool := p.boolFlags[name]
	return hasString || hasBool
}
