package usecase

import (
	"strings"
	"time"

	"cognitive-router/internal/router"
	"cognitive-router/internal/router/catalog"
)

// entities maps slot names to values; a nil value is an explicitly unresolved slot.
type entities map[string]any

// extractEntities fills the intent-specific slots from the primary segment,
// which is copied verbatim and never paraphrased.
func (uc *implUseCase) extractEntities(intent catalog.Intent, primary string, u utterance, ref time.Time, tz string) entities {
	e := entities{}

	switch intent {
	case catalog.IntentTaskCreate:
		res := uc.resolver.Resolve(primary, ref, tz)
		e[catalog.SlotTaskName] = primary
		e[catalog.SlotTargetTime] = derefOrNil(res.TargetTimeISO)
		e[router.EntitySourceOfTime] = derefOrNil(res.SourceOfTime)

	case catalog.IntentTaskUpdate:
		res := uc.resolver.Resolve(primary, ref, tz)
		e[catalog.SlotNewValue] = primary
		e[router.EntityNewTimeISO] = derefOrNil(res.TargetTimeISO)
		e[router.EntitySourceOfTime] = derefOrNil(res.SourceOfTime)

	case catalog.IntentTaskCancel:
		e[catalog.SlotTaskID] = nil

	case catalog.IntentTaskList:
		e[catalog.SlotStatus] = listingStatus(u)

	case catalog.IntentWebSearch, catalog.IntentRecallMemory, catalog.IntentDeepResearch:
		e[catalog.SlotQuery] = primary

	case catalog.IntentCorrection:
		remainder, _ := correctionLead(primary)
		remainder = strings.TrimRight(remainder, ".!?")
		res := uc.resolver.Resolve(remainder, ref, tz)
		if res.Grounded() {
			e[catalog.SlotSlotName] = catalog.SlotTargetTime
			e[catalog.SlotSlotValue] = *res.TargetTimeISO
			e[router.EntitySourceOfTime] = *res.SourceOfTime
		} else {
			e[catalog.SlotSlotName] = catalog.SlotTaskName
			e[catalog.SlotSlotValue] = remainder
		}
	}

	return e
}

// retargetCorrection points a correction at the slot the corrected intent
// actually carries: an update keeps its time in new_time_iso and its text in new_value.
func retargetCorrection(target catalog.Intent, e entities) {
	if target != catalog.IntentTaskUpdate {
		return
	}
	if e[catalog.SlotSlotName] == catalog.SlotTargetTime {
		e[catalog.SlotSlotName] = router.EntityNewTimeISO
	} else {
		e[catalog.SlotSlotName] = catalog.SlotNewValue
	}
}

// listingStatus reads the status filter from literal keywords, defaulting to all.
func listingStatus(u utterance) string {
	switch {
	case u.hasWord(router.StatusPending):
		return router.StatusPending
	case u.hasWord(router.StatusCompleted):
		return router.StatusCompleted
	default:
		return router.StatusAll
	}
}

// missingSlots lists required slots that are absent, nil or empty, in catalog order.
func missingSlots(spec catalog.Spec, e entities) []string {
	var missing []string
	for _, slot := range spec.RequiredSlots {
		if !present(e[slot]) {
			missing = append(missing, slot)
		}
	}
	return missing
}

func present(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	default:
		return true
	}
}

// resolved returns the non-null entities.
func (e entities) resolved() entities {
	out := make(entities, len(e))
	for k, v := range e {
		if v != nil {
			out[k] = v
		}
	}
	return out
}

func derefOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

