package ai

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/xivix/landing/backend/internal/gemini"
	"github.com/xivix/landing/backend/internal/model/persona"
)

// geminiChatModel adapts the Gemini REST client to eino's chat model
// interface so it can sit inside a compose chain.
type geminiChatModel struct {
	client  *gemini.Client
	persona persona.Persona
}

func newGeminiChatModel(client *gemini.Client, p persona.Persona) *geminiChatModel {
	return &geminiChatModel{client: client, persona: p}
}

// Generate converts the chain's messages into a generateContent request and
// returns the first candidate as an assistant message.
func (m *geminiChatModel) Generate(ctx context.Context, input []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	req := m.buildRequest(input)

	text, err := m.client.GenerateText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	return schema.AssistantMessage(text, nil), nil
}

// Stream satisfies the chat model interface; the upstream call is unary, so
// the full reply is emitted as a single chunk.
func (m *geminiChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := m.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func (m *geminiChatModel) buildRequest(input []*schema.Message) *gemini.GenerateRequest {
	req := &gemini.GenerateRequest{
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      m.persona.Temperature,
			TopK:             m.persona.TopK,
			TopP:             m.persona.TopP,
			MaxOutputTokens:  m.persona.MaxOutputTokens,
			ResponseMIMEType: m.persona.ResponseMIMEType,
		},
	}

	for _, msg := range input {
		switch msg.Role {
		case schema.System:
			req.SystemInstruction = &gemini.Content{
				Parts: []gemini.Part{{Text: msg.Content}},
			}
		case schema.Assistant:
			req.Contents = append(req.Contents, gemini.Content{
				Role:  "model",
				Parts: []gemini.Part{{Text: msg.Content}},
			})
		default:
			req.Contents = append(req.Contents, gemini.Content{
				Role:  "user",
				Parts: []gemini.Part{{Text: msg.Content}},
			})
		}
	}

	return req
}
