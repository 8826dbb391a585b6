package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"triptalk/internal/infra"
	"triptalk/internal/models/request_models"
	"triptalk/internal/models/response_models"
	"triptalk/internal/models/trip_models"
	"triptalk/internal/parser"
	"triptalk/internal/repositories"
	"triptalk/pkg/ai"
	"triptalk/pkg/logger"
	"triptalk/pkg/utils"
)

// PlanArchive receives every successfully generated document.
type PlanArchive interface {
	WriteLatest(content string)
}

type TravelServiceInterface interface {
	CreatePlan(ctx context.Context, sessionID string, req request_models.TravelInput) (*response_models.TravelPlanResponse, error)
	GetSummary(ctx context.Context, id string) (trip_models.TripPlanResponse, error)
	ListSummaries(ctx context.Context) response_models.TravelSummaryList
	GetFullPlan(ctx context.Context, id string) (response_models.FullPlanResponse, error)
	DeleteTrip(ctx context.Context, id string) error
	SyncTrip(ctx context.Context, id string) (infra.SinkResult, error)
}

type TravelService struct {
	generator     ai.Generator
	store         repositories.TripStoreInterface
	conversations *ConversationStore
	archive       PlanArchive
	sink          infra.SinkClientInterface
	log           *logger.Logger

	// serializes find-or-create so equal requests cannot both insert
	upsertMu sync.Mutex
}

func NewTravelService(
	generator ai.Generator,
	store repositories.TripStoreInterface,
	conversations *ConversationStore,
	archive PlanArchive,
	sink infra.SinkClientInterface,
	log *logger.Logger,
) *TravelService {
	return &TravelService{
		generator:     generator,
		store:         store,
		conversations: conversations,
		archive:       archive,
		sink:          sink,
		log:           log,
	}
}

// CreatePlan generates a new plan for req and stores it, replacing the stored
// trip with the same dedup key if there is one. The session's draft is reset
// before generation, so a failed generation still clears its history.
func (s *TravelService) CreatePlan(ctx context.Context, sessionID string, req request_models.TravelInput) (*response_models.TravelPlanResponse, error) {
	if err := validateTravelInput(req); err != nil {
		return nil, err
	}

	var doc string
	err := s.conversations.WithSession(sessionID, func(conv *Conversation) error {
		conv.Reset()

		generated, err := s.generator.Generate(ctx, BuildPlanPrompt(req))
		if err != nil {
			return wrapGeneration(err)
		}
		conv.SetPlan(generated)
		doc = generated
		return nil
	})
	if err != nil {
		s.log.Warn("plan generation failed", "session", NormalizeSessionID(sessionID), "destination", req.Destination, "error", err)
		return nil, err
	}
	s.archive.WriteLatest(doc)

	plan := parser.AssembleTripPlan(doc, req)

	s.upsertMu.Lock()
	message := response_models.MsgPlanCreated
	if existingID, ok := s.store.FindExisting(req); ok {
		plan.ID = existingID
		message = response_models.MsgPlanUpdated
	}
	err = s.store.Upsert(ctx, plan.ID, plan)
	s.upsertMu.Unlock()
	if err != nil {
		return nil, err
	}

	s.log.Info("travel plan stored",
		"trip_id", plan.ID,
		"updated", message == response_models.MsgPlanUpdated,
		"days", len(plan.DailySchedules),
		"accommodations", len(plan.Accommodations),
	)

	resp := &response_models.TravelPlanResponse{
		Plan:     parser.StripFencedBlocks(doc),
		TravelID: plan.ID,
		Message:  message,
		Summary:  plan.ToResponse(),
	}
	if s.sink.Enabled() {
		result := s.sink.Send(ctx, plan)
		resp.Sync = &result
	}
	return resp, nil
}

func (s *TravelService) GetSummary(ctx context.Context, id string) (trip_models.TripPlanResponse, error) {
	plan, err := s.store.Get(id)
	if err != nil {
		return trip_models.TripPlanResponse{}, err
	}
	return plan.ToResponse(), nil
}

func (s *TravelService) ListSummaries(ctx context.Context) response_models.TravelSummaryList {
	plans := s.store.List()
	out := make([]trip_models.TripPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, p.ToResponse())
	}
	return response_models.TravelSummaryList{Summaries: out, Total: len(out)}
}

func (s *TravelService) GetFullPlan(ctx context.Context, id string) (response_models.FullPlanResponse, error) {
	plan, err := s.store.Get(id)
	if err != nil {
		return response_models.FullPlanResponse{}, err
	}
	return response_models.FullPlanResponse{ID: plan.ID, Plan: plan.FullPlan}, nil
}

func (s *TravelService) DeleteTrip(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("trip deleted", "trip_id", id)
	return nil
}

// SyncTrip sends a stored trip to the downstream sink on demand.
func (s *TravelService) SyncTrip(ctx context.Context, id string) (infra.SinkResult, error) {
	if !s.sink.Enabled() {
		return infra.SinkResult{}, utils.ErrSinkDisabled
	}
	plan, err := s.store.Get(id)
	if err != nil {
		return infra.SinkResult{}, err
	}
	return s.sink.Send(ctx, plan), nil
}

func validateTravelInput(req request_models.TravelInput) error {
	var missing []string
	for name, v := range map[string]string{
		"companions":  req.Companions,
		"departure":   req.Departure,
		"destination": req.Destination,
		"start_date":  req.StartDate,
		"end_date":    req.EndDate,
		"budget":      req.Budget,
	} {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return fmt.Errorf("%w: missing %s", utils.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if len(req.Style) == 0 {
		return fmt.Errorf("%w: style must name at least one travel style", utils.ErrInvalidInput)
	}
	for _, style := range req.Style {
		if !style.Valid() {
			return fmt.Errorf("%w: unknown travel style %q", utils.ErrInvalidInput, style)
		}
	}
	return nil
}

// wrapGeneration keeps the sentinel chain intact for errors the generator
// already classified.
func wrapGeneration(err error) error {
	if errors.Is(err, utils.ErrGenerationFailed) || errors.Is(err, utils.ErrEmptyGeneration) {
		return err
	}
	return fmt.Errorf("%w: %v", utils.ErrGenerationFailed, err)
}
