// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the FloatChat TUI.
package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/floatchat/floatchat-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock represents a rendered code block.
type CodeBlock struct {
	Language string
	Code     string
	MaxWidth int
}

// NewCodeBlock creates a new code block.
func NewCodeBlock(language, code string) CodeBlock {
	return CodeBlock{
		Language: language,
		Code:     code,
		MaxWidth: 80,
	}
}

// SetMaxWidth sets the maximum width for the code block.
func (c *CodeBlock) SetMaxWidth(width int) {
	c.MaxWidth = width
}

// Render renders the code block with syntax highlighting and line numbers.
func (c CodeBlock) Render() string {
	code := strings.TrimSpace(c.Code)

	language := c.Language
	if language == "" {
		language = detectLanguage(code)
	}

	// Highlighting falls back to plain text on failure
	highlightedCode := highlightCode(code, language)
	lines := strings.Split(highlightedCode, "\n")

	var renderedLines []string

	lineNumStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(4).
		Align(lipgloss.Right).
		MarginRight(1)

	for i, line := range lines {
		lineNum := lineNumStyle.Render(toStr(i + 1))
		renderedLines = append(renderedLines, lineNum+line)
	}

	codeContent := strings.Join(renderedLines, "\n")

	var header string
	if c.Language != "" {
		langBadge := lipgloss.NewStyle().
			Foreground(styles.TextMuted).
			Background(styles.OverlayDim).
			Padding(0, 1).
			Bold(true).
			Render(c.Language)
		header = langBadge + "\n"
	}

	maxWidth := c.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	block := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.Overlay).
		Padding(1, 2).
		MaxWidth(maxWidth).
		Render(header + codeContent)

	return block
}

// =============================================================================
// SQL RENDERING
// =============================================================================

// RenderSQL renders a generated SQL statement as a highlighted code block.
// Used by the /sql command and the explain view.
func RenderSQL(sql string, maxWidth int) string {
	cb := NewCodeBlock("sql", sql)
	cb.SetMaxWidth(maxWidth)
	return cb.Render()
}

// =============================================================================
// MARKDOWN CODE BLOCK PARSER
// =============================================================================

// ParseCodeBlocks extracts fenced code blocks from markdown text.
// Returns the text with code blocks replaced by rendered versions.
func ParseCodeBlocks(text string, maxWidth int) string {
	lines := strings.Split(text, "\n")
	var result []string
	var inCodeBlock bool
	var codeLines []string
	var language string

	for _, line := range lines {
		if strings.HasPrefix(line, "```") {
			if inCodeBlock {
				code := strings.Join(codeLines, "\n")
				cb := NewCodeBlock(language, code)
				cb.SetMaxWidth(maxWidth)
				result = append(result, cb.Render())
				codeLines = nil
				language = ""
				inCodeBlock = false
			} else {
				language = strings.TrimPrefix(line, "```")
				language = strings.TrimSpace(language)
				inCodeBlock = true
			}
		} else if inCodeBlock {
			codeLines = append(codeLines, line)
		} else {
			result = append(result, line)
		}
	}

	// Handle unclosed code block
	if inCodeBlock && len(codeLines) > 0 {
		code := strings.Join(codeLines, "\n")
		cb := NewCodeBlock(language, code)
		cb.SetMaxWidth(maxWidth)
		result = append(result, cb.Render())
	}

	return strings.Join(result, "\n")
}

// =============================================================================
// INLINE CODE RENDERER
// =============================================================================

// RenderInlineCode renders inline code with a subtle background.
func RenderInlineCode(code string) string {
	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.Ocean).
		Padding(0, 1).
		Render(code)
}

// ParseInlineCode replaces `code` with styled inline code.
func ParseInlineCode(text string) string {
	var result strings.Builder
	var inCode bool
	var codeBuffer strings.Builder

	for _, r := range text {
		if r == '`' {
			if inCode {
				result.WriteString(RenderInlineCode(codeBuffer.String()))
				codeBuffer.Reset()
				inCode = false
			} else {
				inCode = true
			}
		} else if inCode {
			codeBuffer.WriteRune(r)
		} else {
			result.WriteRune(r)
		}
	}

	// Handle unclosed inline code
	if inCode {
		result.WriteString("`")
		result.WriteString(codeBuffer.String())
	}

	return result.String()
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightCode applies syntax highlighting to code using the chroma library.
// This provides ANSI-safe syntax highlighting for terminal output.
func highlightCode(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code // Fallback to plain text
	}

	var buf strings.Builder
	err = formatter.Format(&buf, style, iterator)
	if err != nil {
		return code
	}

	return buf.String()
}

// detectLanguage attempts to detect the language of the given code.
func detectLanguage(code string) string {
	lexer := lexers.Analyse(code)
	if lexer != nil {
		return lexer.Config().Name
	}
	return ""
}
