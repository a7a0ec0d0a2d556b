package usecase

import (
	"time"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/router"
	"cognitive-router/internal/router/catalog"
)

// turn is the routing state accumulated over one turn.
type turn struct {
	userID        string
	languageHint  string
	intent        catalog.Intent
	isCorrection  bool
	entities      entities
	queueNext     []string
	missing       []string
	clarification *dialogue.Clarification
}

func (uc *implUseCase) assemble(t turn, spec catalog.Spec) router.RoutingResult {
	resolved := t.entities.resolved()
	resolved[router.EntitySourceOfTime] = t.entities[router.EntitySourceOfTime]
	resolved[router.EntitySourceOfTask] = router.SourceOfTask

	var queueNext []string
	if len(t.queueNext) > 0 {
		queueNext = t.queueNext
	}

	return router.RoutingResult{
		RoutingMeta: router.RoutingMeta{
			Timestamp:     uc.now().UTC().Format(time.RFC3339),
			UserID:        t.userID,
			InteractionID: uc.interactionID(),
			LanguageHint:  t.languageHint,
		},
		IntentPacket: router.IntentPacket{
			PrimaryIntent:   t.intent,
			IsCorrection:    t.isCorrection,
			ConfidenceScore: uc.opt.ConfidenceScore,
		},
		EntitiesResolved: resolved,
		MemoryOperations: router.MemoryOperations{
			Read:                  spec.MemoryRead,
			Write:                 spec.MemoryWrite,
			VectorSearchPerformed: t.intent.UsesVectorSearch(),
		},
		ExecutionDirectives: router.ExecutionDirectives{
			RequiresConfirmation: spec.RequiresConfirmation,
			QueueNext:            queueNext,
			MissingSlots:         t.missing,
		},
		Clarification: t.clarification,
	}
}

func (uc *implUseCase) interactionID() string {
	id := uc.newID()
	if len(id) > router.InteractionIDLength {
		id = id[:router.InteractionIDLength]
	}
	return id
}
