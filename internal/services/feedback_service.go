package services

import (
	"context"
	"fmt"
	"strings"

	"triptalk/internal/models/response_models"
	"triptalk/internal/parser"
	"triptalk/pkg/ai"
	"triptalk/pkg/logger"
	"triptalk/pkg/utils"
)

type FeedbackServiceInterface interface {
	Revise(ctx context.Context, sessionID, message string) (*response_models.FeedbackReply, error)
}

// FeedbackService revises a session's live draft. The stored trip is not
// touched; only a new creation request re-syncs the store.
type FeedbackService struct {
	generator     ai.Generator
	conversations *ConversationStore
	archive       PlanArchive
	log           *logger.Logger
}

func NewFeedbackService(
	generator ai.Generator,
	conversations *ConversationStore,
	archive PlanArchive,
	log *logger.Logger,
) *FeedbackService {
	return &FeedbackService{
		generator:     generator,
		conversations: conversations,
		archive:       archive,
		log:           log,
	}
}

// Revise fails with utils.ErrNoActivePlan, leaving the session unchanged, when
// the session has no plan yet.
func (s *FeedbackService) Revise(ctx context.Context, sessionID, message string) (*response_models.FeedbackReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is empty", utils.ErrInvalidInput)
	}

	var doc string
	var turn int
	err := s.conversations.WithSession(sessionID, func(conv *Conversation) error {
		if conv.LatestPlan == nil {
			return utils.ErrNoActivePlan
		}

		prompt := BuildFeedbackPrompt(*conv.LatestPlan, conv.FeedbackHistory, message)
		generated, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			return wrapGeneration(err)
		}
		conv.Revise(message, generated)
		doc = generated
		turn = len(conv.FeedbackHistory)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.archive.WriteLatest(doc)
	s.log.Info("plan revised", "session", NormalizeSessionID(sessionID), "turn", turn)
	return &response_models.FeedbackReply{Reply: parser.StripFencedBlocks(doc)}, nil
}
