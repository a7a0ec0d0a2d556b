package usecase

import (
	"context"
	"fmt"

	"cognitive-router/internal/dialogue"
	"cognitive-router/internal/model"
	"cognitive-router/internal/router"
	"cognitive-router/internal/router/catalog"
	"cognitive-router/internal/task"
)

// disambiguate resolves task_id for update and cancel turns. One match is
// taken silently; several produce a task_selection clarification and leave
// task_id unset; none leaves it unset.
func (uc *implUseCase) disambiguate(ctx context.Context, userID, primary string, e entities) (*dialogue.Clarification, error) {
	if present(e[catalog.SlotTaskID]) {
		return nil, nil
	}

	out, err := uc.matcher.Match(ctx, model.Scope{UserID: userID}, task.MatchInput{
		Text:   primary,
		Status: model.TaskStatusPending,
		Limit:  uc.opt.MatchLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: matcher: %w", router.LogPrefixDisambiguate, err)
	}

	switch len(out.Candidates) {
	case 0:
		uc.l.Debugf(ctx, "%s: no task matches %q", router.LogPrefixDisambiguate, primary)
		return nil, nil
	case 1:
		e[catalog.SlotTaskID] = out.Candidates[0].TaskID
		e[catalog.SlotTaskName] = out.Candidates[0].Description
		return nil, nil
	}

	c := &dialogue.Clarification{
		Type:     dialogue.ClarificationTaskSelection,
		Question: router.DisambiguationQuestion,
		Options:  make([]dialogue.Option, 0, len(out.Candidates)),
	}
	for _, cand := range out.Candidates {
		c.Options = append(c.Options, dialogue.Option{TaskID: cand.TaskID, Description: cand.Description})
	}
	uc.l.Infof(ctx, "%s: %d candidates, asking the user", router.LogPrefixDisambiguate, len(c.Options))
	return c, nil
}
