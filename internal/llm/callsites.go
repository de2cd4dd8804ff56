package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Role-specialized call sites with fixed sampling. Interview turns run hot
// and conversational; plan generation runs cooler with a large token budget
// to fit the full nested document.

// IntakeTurn sends the accumulated interview history for the next reply.
func IntakeTurn(ctx context.Context, g Gateway, turns []Turn, systemPrompt string) (string, error) {
	return g.Generate(ctx, turns, systemPrompt, Options{
		Temperature: 0.9,
		MaxTokens:   2000,
		TopP:        0.95,
	})
}

// GeneratePlanText makes the single-shot plan call, embedding the intake
// document as structured input in one user message.
func GeneratePlanText(ctx context.Context, g Gateway, intakeDoc interface{}, systemPrompt string) (string, error) {
	blob, err := json.MarshalIndent(intakeDoc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	turns := []Turn{{
		Role:    RoleUser,
		Content: fmt.Sprintf("Here is the intake data:\n\n%s\n\nPlease create a comprehensive year plan.", blob),
	}}
	return g.Generate(ctx, turns, systemPrompt, Options{
		Temperature: 0.7,
		MaxTokens:   8000,
		TopP:        0.95,
	})
}

// CoachReply asks for the short daily check-in message.
func CoachReply(ctx context.Context, g Gateway, contextDoc interface{}, userMessage, systemPrompt string) (string, error) {
	blob, err := json.MarshalIndent(contextDoc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	turns := []Turn{{
		Role:    RoleUser,
		Content: fmt.Sprintf("Context:\n%s\n\nUser message: %s", blob, userMessage),
	}}
	return g.Generate(ctx, turns, systemPrompt, Options{
		Temperature: 0.8,
		MaxTokens:   500,
		TopP:        0.95,
	})
}

// AdaptationReply asks for plan adjustment options given completion history.
func AdaptationReply(ctx context.Context, g Gateway, currentPlan, history interface{}, reason, systemPrompt string) (string, error) {
	planBlob, err := json.MarshalIndent(currentPlan, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	historyBlob, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	turns := []Turn{{
		Role: RoleUser,
		Content: fmt.Sprintf("Current plan:\n%s\n\nCompletion history:\n%s\n\nReason for adaptation: %s\n\nPlease suggest adaptations.",
			planBlob, historyBlob, reason),
	}}
	return g.Generate(ctx, turns, systemPrompt, Options{
		Temperature: 0.7,
		MaxTokens:   3000,
		TopP:        0.95,
	})
}
