// Package explain generates recruiter-facing explanations of a
// candidate-job match, grounded in the evidence the ranking engine
// collected. It receives the sensitive findings only so the prompt can
// instruct the model to avoid them; they must never surface in the output.
package explain

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/hirelens/hirelens/internal/domain"
)

// maxMissingSkills caps how many gaps the prompt lists.
const maxMissingSkills = 12

const systemPrompt = "You produce fair, structured, recruiter-ready explanations."

// Request carries the context for one explanation.
type Request struct {
	JDText           string
	MatchedSkills    []string
	MissingSkills    []string
	EvidenceSnippets []string
	SensitiveFound   domain.SensitiveFindings
}

// Service generates explanations via a chat-completion model.
type Service struct {
	client ChatClient
	model  string
	logger *zap.Logger
}

// New creates an explanation service.
func New(client ChatClient, model string, logger *zap.Logger) *Service {
	return &Service{client: client, model: model, logger: logger}
}

// Explain returns a bullet-list explanation of the match. Provider failures
// wrap domain.ErrExplanationProviderError.
func (s *Service) Explain(ctx context.Context, req Request) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w: %w", err, domain.ErrExplanationProviderError)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty chat completion response: %w", domain.ErrExplanationProviderError)
	}

	s.logger.Debug("Generated explanation",
		zap.String("model", s.model),
		zap.Int("prompt_tokens", resp.Usage.PromptTokens),
		zap.Int("completion_tokens", resp.Usage.CompletionTokens),
	)
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an ATS assistant helping a recruiter understand a candidate-job match.\n")
	b.WriteString("Write 6-10 concise bullets that are:\n")
	b.WriteString("- specific (mention matched skills and relevant experience)\n")
	b.WriteString("- honest about gaps (missing skills)\n")
	b.WriteString("- grounded in the evidence snippets provided\n")
	b.WriteString("- neutral and fair (do NOT mention age/gender/nationality/religion even if present)\n\n")

	b.WriteString("JOB DESCRIPTION:\n")
	b.WriteString(req.JDText)
	b.WriteString("\n\n")

	b.WriteString("EVIDENCE SNIPPETS FROM RESUME:\n")
	if len(req.EvidenceSnippets) == 0 {
		b.WriteString("- (No direct snippet matches found)\n")
	}
	for _, s := range req.EvidenceSnippets {
		b.WriteString("- " + s + "\n")
	}
	b.WriteString("\n")

	b.WriteString("MATCHED SKILLS:\n")
	b.WriteString(orNone(strings.Join(req.MatchedSkills, ", "), "(none detected)"))
	b.WriteString("\n\n")

	missing := req.MissingSkills
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}
	b.WriteString("MISSING / UNCLEAR SKILLS:\n")
	b.WriteString(orNone(strings.Join(missing, ", "), "(none)"))
	b.WriteString("\n\n")

	b.WriteString("SENSITIVE INFO DETECTED (for bias review only; do not reference in explanation):\n")
	if len(req.SensitiveFound) == 0 {
		b.WriteString("(none)\n")
	}
	for _, cat := range domain.Categories() {
		if hits := req.SensitiveFound[cat]; len(hits) > 0 {
			b.WriteString(string(cat) + ": " + strings.Join(hits, ", ") + "\n")
		}
	}
	b.WriteString("\nReturn only the bullets.")

	return b.String()
}

func orNone(s, none string) string {
	if s == "" {
		return none
	}
	return s
}
