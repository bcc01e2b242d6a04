package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"twm/internal/generator"
	"twm/internal/models"
	"twm/internal/store"
)

const (
	// ChatModel is the model chat replies are generated with.
	ChatModel = "gpt-4"
	// NoAnswerReply is sent when the generated payload carries no text.
	NoAnswerReply = "Entschuldigung, ich konnte keine Antwort generieren."
	// ErrorReply is sent when generation fails.
	ErrorReply = "Es ist ein Fehler aufgetreten. Bitte versuchen Sie es erneut."
)

// ChatService runs the conversational view on top of the generator.
type ChatService struct {
	gen     *GenerationService
	history store.ChatHistoryStore
}

func NewChatService(gen *GenerationService, history store.ChatHistoryStore) *ChatService {
	return &ChatService{gen: gen, history: history}
}

// Send appends the user message and the assistant reply to the history and
// returns the reply.
func (s *ChatService) Send(ctx context.Context, text string) (*models.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: message is empty", models.ErrValidation)
	}
	question := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleUser,
		Content:   text,
		Timestamp: time.Now().UTC(),
	}

	reply := s.reply(ctx, text)
	// The pair is appended together so concurrent conversations never
	// interleave a question with someone else's answer.
	if err := s.history.AppendChatMessages(ctx, question, reply); err != nil {
		return nil, fmt.Errorf("save chat history: %w", err)
	}
	return &reply, nil
}

func (s *ChatService) reply(ctx context.Context, text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Role:      models.ChatRoleAssistant,
		Timestamp: time.Now().UTC(),
	}
	content, err := s.gen.Generate(ctx, GenerateParams{Prompt: text, Model: ChatModel})
	if err != nil {
		log.Errorf("Chat generation failed: %v", err)
		msg.Content = ErrorReply
		return msg
	}

	answer := ""
	if tp, ok := content.Content.(generator.TextPayload); ok {
		answer = tp.Content
	}
	basis := answer
	if basis == "" {
		basis = text
		msg.Content = NoAnswerReply
	} else {
		msg.Content = answer
	}

	questions, err := s.gen.FollowUps(ctx, basis)
	if err != nil {
		log.Warnf("Follow-up questions unavailable: %v", err)
	}
	msg.FollowUpQuestions = questions
	return msg
}

func (s *ChatService) History(ctx context.Context) ([]models.ChatMessage, error) {
	return s.history.GetChatHistory(ctx)
}

func (s *ChatService) Clear(ctx context.Context) error {
	return s.history.ClearChatHistory(ctx)
}
