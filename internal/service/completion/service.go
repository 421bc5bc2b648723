package completion

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/itf-dev/schedule-masters/internal/config"
	"github.com/itf-dev/schedule-masters/internal/model/chat"
	"github.com/itf-dev/schedule-masters/internal/model/topic"
)

// fallbackPrompt is sent when the conversation carries no user-authored turn.
const fallbackPrompt = "Hello"

// Service answers completion requests by selecting a topic persona and
// forwarding a single prompt to the model provider. It holds no per-request
// state; invocations are independent.
type Service struct {
	catalog topic.Catalog
	chain   compose.Runnable[map[string]any, *schema.Message]
}

// NewService creates the gateway with a provider model built from config.
func NewService(ctx context.Context, catalog topic.Catalog, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return NewServiceWithModel(ctx, catalog, chatModel)
}

// NewServiceWithModel creates the gateway around an existing model instance.
func NewServiceWithModel(ctx context.Context, catalog topic.Catalog, chatModel model.ChatModel) (*Service, error) {
	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile completion chain: %w", err)
	}

	return &Service{catalog: catalog, chain: runnable}, nil
}

// Stream forwards the latest user message to the provider under the topic's
// system prompt and returns the provider's output stream as-is.
func (s *Service) Stream(ctx context.Context, topicID string, conversation []chat.Message) (*schema.StreamReader[*schema.Message], error) {
	stream, err := s.chain.Stream(ctx, s.buildChainInput(topicID, conversation))
	if err != nil {
		return nil, fmt.Errorf("failed to stream completion: %w", err)
	}

	return stream, nil
}

// Generate is the blocking variant of Stream, returning the full response.
func (s *Service) Generate(ctx context.Context, topicID string, conversation []chat.Message) (*schema.Message, error) {
	response, err := s.chain.Invoke(ctx, s.buildChainInput(topicID, conversation))
	if err != nil {
		return nil, fmt.Errorf("failed to generate completion: %w", err)
	}

	return response, nil
}

func (s *Service) buildChainInput(topicID string, conversation []chat.Message) map[string]any {
	return map[string]any{
		"system": s.resolveTopic(topicID).SystemPrompt,
		"query":  latestUserPrompt(conversation),
	}
}

// resolveTopic degrades an unknown topic to the default persona.
func (s *Service) resolveTopic(id string) topic.Topic {
	if t, ok := s.catalog.Lookup(id); ok {
		return t
	}

	log.Printf("[completion] unknown topic %q, using default persona", id)
	return topic.Default()
}

// latestUserPrompt picks the most recent user-authored message as the prompt
// payload. Earlier turns ride along in the request but are not sent to the
// model.
func latestUserPrompt(conversation []chat.Message) string {
	for i := len(conversation) - 1; i >= 0; i-- {
		if conversation[i].Role != chat.RoleUser {
			continue
		}
		if content := strings.TrimSpace(conversation[i].Content); content != "" {
			return content
		}
	}
	return fallbackPrompt
}
