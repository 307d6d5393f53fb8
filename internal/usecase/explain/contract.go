package explain

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// ChatClient is the chat-completion surface the explanation service needs.
// *openai.Client satisfies it.
type ChatClient interface {
	CreateChatCompletion(
		ctx context.Context, req openai.ChatCompletionRequest,
	) (openai.ChatCompletionResponse, error)
}
