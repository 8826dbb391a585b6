package travel_fx

import (
	"go.uber.org/fx"
	"triptalk/internal/api/controllers"
	"triptalk/internal/infra"
	"triptalk/internal/repositories"
	"triptalk/internal/services"
	"triptalk/pkg/ai"
	"triptalk/pkg/logger"
)

var Module = fx.Provide(
	services.NewConversationStore, provideTravelService, provideTravelController,
)

func provideTravelService(
	generator ai.Generator,
	store repositories.TripStoreInterface,
	conversations *services.ConversationStore,
	archive services.PlanArchive,
	sink infra.SinkClientInterface,
	log *logger.Logger,
) services.TravelServiceInterface {
	return services.NewTravelService(generator, store, conversations, archive, sink, log.With("component", "travel"))
}

func provideTravelController(travelService services.TravelServiceInterface) *controllers.TravelController {
	return controllers.NewTravelController(travelService)
}
