package usecase

import (
	"context"
	"fmt"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/router"
	"cognitive-router/internal/router/catalog"
)

// Route runs one turn: preprocess, segment, classify, extract, disambiguate,
// validate, update the context stack and assemble the result. Turns of the
// same conversation run one at a time.
func (uc *implUseCase) Route(ctx context.Context, input router.RouteInput) (router.RoutingResult, error) {
	if input.UserID == "" {
		return router.RoutingResult{}, router.ErrMissingUserID
	}
	key := dialogue.Key{UserID: input.UserID, SessionID: input.SessionID}

	unlock := uc.locks.lock(key)
	defer unlock()

	pre, err := uc.pre.Process(ctx, input.Message)
	if err != nil {
		return router.RoutingResult{}, fmt.Errorf("%s: preprocess: %w", router.LogPrefixRoute, err)
	}

	segments := segment(pre.RawText)
	primary := segments[0]
	u := newUtterance(primary)

	t := turn{
		userID:       input.UserID,
		languageHint: pre.LanguageHint,
		queueNext:    segments[1:],
		intent:       classify(u),
	}
	uc.l.Debugf(ctx, "%s: %q -> %s", router.LogPrefixClassify, primary, t.intent)

	resumed := false
	if t.intent == catalog.IntentCasualChat {
		if resumed, err = uc.resumeSelection(ctx, key, u, &t); err != nil {
			return router.RoutingResult{}, err
		}
	}

	if !resumed {
		if t.intent == catalog.IntentTaskCreate && negated(u) {
			t.intent = catalog.IntentTaskCancel
			t.isCorrection = true
		}
		if t.intent == catalog.IntentCorrection {
			t.isCorrection = true
		}

		t.entities = uc.extractEntities(t.intent, primary, u, uc.now(), input.Timezone)

		if t.intent == catalog.IntentCorrection {
			top, err := uc.stack.Peek(ctx, key)
			if err != nil {
				return router.RoutingResult{}, fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
			}
			if top != nil {
				retargetCorrection(top.Intent, t.entities)
			}
		}

		if t.intent.Mutating() {
			if t.clarification, err = uc.disambiguate(ctx, input.UserID, primary, t.entities); err != nil {
				return router.RoutingResult{}, err
			}
		}
	}

	spec := catalog.Lookup(t.intent)
	t.missing = missingSlots(spec, t.entities)

	if err := uc.applyMeta(ctx, key, t); err != nil {
		return router.RoutingResult{}, err
	}
	if err := uc.recordFrame(ctx, key, t, spec); err != nil {
		return router.RoutingResult{}, err
	}

	result := uc.assemble(t, spec)
	uc.l.Infof(ctx, "%s: user=%s session=%s intent=%s missing=%v deferred=%d clarification=%t",
		router.LogPrefixRoute, input.UserID, input.SessionID, t.intent, t.missing, len(t.queueNext), t.clarification != nil)
	return result, nil
}

// resumeSelection treats u as the answer to an open task_selection question.
// On a match the clarification frame is popped and its intent resumes with
// the chosen task.
func (uc *implUseCase) resumeSelection(ctx context.Context, key dialogue.Key, u utterance, t *turn) (bool, error) {
	top, err := uc.stack.Peek(ctx, key)
	if err != nil {
		return false, fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
	}
	if top == nil || top.Type != dialogue.FrameClarification || top.Clarification == nil {
		return false, nil
	}

	choice, ok := selectOption(u, top.Clarification.Options)
	if !ok {
		return false, nil
	}
	if _, err := uc.stack.Pop(ctx, key); err != nil {
		return false, fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
	}

	t.intent = top.Intent
	t.entities = entities{}
	for k, v := range top.Entities {
		t.entities[k] = v
	}
	t.entities[catalog.SlotTaskID] = choice.TaskID
	t.entities[catalog.SlotTaskName] = choice.Description
	t.isCorrection = top.IsCorrection

	uc.l.Infof(ctx, "%s: %s resumed with task %s", router.LogPrefixRoute, t.intent, choice.TaskID)
	return true, nil
}

// applyMeta runs the stop and correction short-circuits against the stack.
func (uc *implUseCase) applyMeta(ctx context.Context, key dialogue.Key, t turn) error {
	switch t.intent {
	case catalog.IntentStop:
		if err := uc.stack.Clear(ctx, key); err != nil {
			return fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
		}

	case catalog.IntentCorrection:
		slot, _ := t.entities[catalog.SlotSlotName].(string)
		value := t.entities[catalog.SlotSlotValue]
		source, timed := t.entities[router.EntitySourceOfTime]
		patched, err := uc.stack.PatchTop(ctx, key, func(f *dialogue.Frame) bool {
			f.Entities[slot] = value
			if timed {
				f.Entities[router.EntitySourceOfTime] = source
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
		}
		if !patched {
			uc.l.Debugf(ctx, "%s: correction with nothing to correct on %s", router.LogPrefixRoute, key)
		}
	}
	return nil
}

// recordFrame remembers open questions and actions awaiting confirmation so
// later turns can answer, correct or stop them.
func (uc *implUseCase) recordFrame(ctx context.Context, key dialogue.Key, t turn, spec catalog.Spec) error {
	var frame dialogue.Frame
	switch {
	case t.clarification != nil:
		frame = dialogue.NewClarificationFrame(t.intent, t.entities.resolved(), *t.clarification)
	case spec.RequiresConfirmation:
		frame = dialogue.NewPendingAction(t.intent, t.entities.resolved())
	default:
		return nil
	}
	frame.IsCorrection = t.isCorrection

	if err := uc.stack.Push(ctx, key, frame); err != nil {
		return fmt.Errorf("%s: context stack: %w", router.LogPrefixRoute, err)
	}
	return nil
}
