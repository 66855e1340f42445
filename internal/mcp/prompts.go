// ABOUTME: MCP prompts for common note-taking workflows.
// ABOUTME: Each prompt steers the agent toward the notebook tools.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "create-meeting-notes",
		Description: "Create structured meeting notes with attendees, agenda, and action items",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "meeting_title",
				Description: "Title of the meeting",
				Required:    true,
			},
		},
	}, s.getMeetingNotesPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "summarize-note",
		Description: "Summarize an existing note and keep the original as a version",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "note_id",
				Description: "ID of the note to summarize",
				Required:    true,
			},
		},
	}, s.getSummarizeNotePrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "triage-notes",
		Description: "Review active notes and suggest categories, priorities, and pins",
	}, s.getTriageNotesPrompt)
}

func userPrompt(text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: text,
				},
			},
		},
	}
}

func (s *Server) getMeetingNotesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	meetingTitle, ok := req.Params.Arguments["meeting_title"]
	if !ok || meetingTitle == "" {
		meetingTitle = "Meeting"
	}

	return userPrompt(fmt.Sprintf(`Create meeting notes for: %s

Write the description as HTML with these sections, each an <h2>:

Attendees, Agenda, Discussion, Decisions, Action Items (as a <ul>).

Use the create_note tool with category "Work" and priority "medium".
Raise the priority to "high" if any action item is due within a week.`, meetingTitle)), nil
}

func (s *Server) getSummarizeNotePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	noteID, ok := req.Params.Arguments["note_id"]
	if !ok || noteID == "" {
		return nil, fmt.Errorf("note_id argument is required")
	}

	return userPrompt(fmt.Sprintf(`Please summarize the note with ID: %s

1. Use the get_note tool to retrieve the note
2. Write a concise summary covering the main topic, key points, and action items
3. Use the update_note tool to replace the description with a <p> summary followed by the original body

The previous description is kept in the note's version history and can be
brought back with restore_version.`, noteID)), nil
}

func (s *Server) getTriageNotesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return userPrompt(`Help me triage my notes:

1. Use the list_notes tool to see all active notes
2. Flag notes whose category (Personal, Work, Study, Ideas) looks wrong
3. Suggest a priority (low, medium, high) for each note
4. Recommend at most three notes to pin with toggle_pin
5. List notes that look obsolete and could be moved to the trash with delete_note

Reference notes by ID and ask before changing anything.`), nil
}
