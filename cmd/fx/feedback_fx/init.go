package feedback_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/api/controllers"
	"triptalk/internal/services"
	"triptalk/pkg/ai"
	"triptalk/pkg/logger"
)

var Module = fx.Provide(
	provideFeedbackService, provideFeedbackController,
)

func provideFeedbackService(
	generator ai.Generator,
	conversations *services.ConversationStore,
	archive services.PlanArchive,
	log *logger.Logger,
) services.FeedbackServiceInterface {
	return services.NewFeedbackService(generator, conversations, archive, log.With("component", "feedback"))
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
