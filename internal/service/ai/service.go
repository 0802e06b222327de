package ai

import (
	"context"
	"fmt"
	"log"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/xivix/landing/backend/internal/analysis/sanitize"
	"github.com/xivix/landing/backend/internal/gemini"
	"github.com/xivix/landing/backend/internal/model/chat"
	"github.com/xivix/landing/backend/internal/model/persona"
)

// Service encapsulates persona-driven reply generation: it runs the sales
// persona chain against Gemini and sanitizes the output before it leaves
// the server.
type Service struct {
	persona  persona.Persona
	contact  persona.Contact
	pipeline sanitize.Pipeline
	chain    compose.Runnable[map[string]any, *schema.Message]
}

// NewService compiles the persona chat chain over the given Gemini client.
func NewService(ctx context.Context, client *gemini.Client, p persona.Persona, contact persona.Contact) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.MessagesPlaceholder("history", true),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(newGeminiChatModel(client, p))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		persona:  p,
		contact:  contact,
		pipeline: sanitize.NewStrict(contact),
		chain:    runnable,
	}, nil
}

// Reply generates a sanitized persona reply for the user message and
// bounded conversation history.
func (s *Service) Reply(ctx context.Context, message string, history []chat.Turn) (string, error) {
	input := map[string]any{
		"system":  s.persona.SystemPrompt,
		"history": s.buildHistoryMessages(history),
		"query":   message,
	}

	response, err := s.chain.Invoke(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run AI chain: %w", err)
	}

	reply := s.pipeline.Apply(response.Content)
	log.Printf("[ai] generated reply, raw=%d sanitized=%d", len(response.Content), len(reply))
	return reply, nil
}

func (s *Service) buildHistoryMessages(turns []chat.Turn) []*schema.Message {
	const historyLimit = 10

	if len(turns) == 0 {
		return nil
	}

	startIdx := 0
	if len(turns) > historyLimit {
		startIdx = len(turns) - historyLimit
	}

	history := make([]*schema.Message, 0, len(turns)-startIdx)
	for _, turn := range turns[startIdx:] {
		switch turn.Role {
		case chat.RoleUser:
			history = append(history, schema.UserMessage(turn.Content))
		case chat.RoleAssistant:
			history = append(history, schema.AssistantMessage(turn.Content, nil))
		}
	}

	return history
}
