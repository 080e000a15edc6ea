// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"strings"

	"github.com/floatchat/floatchat-tui/internal/model"
)

// MarkdownContent renders a conversation transcript as Markdown, with a
// metadata header followed by one section per turn.
func MarkdownContent(conv *model.Conversation) ([]byte, error) {
	if conv == nil || conv.IsEmpty() {
		return nil, ErrNoResults
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("# %s\n\n", conv.GetTitle()))
	b.WriteString(fmt.Sprintf("**Session:** %s\n", conv.ID))
	b.WriteString(fmt.Sprintf("**Started:** %s\n", conv.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("**Turns:** %d\n\n---\n\n", conv.TurnCount()))

	for _, turn := range conv.Turns {
		b.WriteString(fmt.Sprintf("### %s (%s)\n\n", turn.Role.DisplayName(), turn.Timestamp.Format("15:04:05")))
		b.WriteString(turn.Content)
		b.WriteString("\n\n")

		if turn.HasResults() && turn.Data.SQLQuery != "" {
			b.WriteString("```sql\n")
			b.WriteString(turn.Data.SQLQuery)
			b.WriteString("\n```\n\n")
		}
	}

	return []byte(b.String()), nil
}

// WriteTranscript exports a conversation transcript to a Markdown file named
// after the session title. Returns the output file path.
func WriteTranscript(conv *model.Conversation, opts *Options) (string, error) {
	content, err := MarkdownContent(conv)
	if err != nil {
		return "", err
	}
	return writeExport(conv.GetTitle(), ".md", content, opts)
}
