package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/sahilm/fuzzy"

	"cognitive-router/internal/model"
	"cognitive-router/internal/task"
	"cognitive-router/internal/task/repository"
)

type scoredTask struct {
	index int
	hits  int
	score int
}

// Match ranks the caller's tasks against the content words of input.Text.
// Tasks matching more words rank first, then by summed fuzzy score; ties keep
// creation order.
func (uc *implUseCase) Match(ctx context.Context, sc model.Scope, input task.MatchInput) (task.MatchOutput, error) {
	if sc.UserID == "" {
		return task.MatchOutput{}, task.ErrEmptyOwner
	}

	status := input.Status
	if status == "" {
		status = model.TaskStatusPending
	}
	if !status.Valid() {
		return task.MatchOutput{}, task.ErrInvalidStatus
	}
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultMatchLimit
	}

	words := contentWords(input.Text)
	if len(words) == 0 {
		return task.MatchOutput{Candidates: []task.Candidate{}}, nil
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{OwnerID: sc.UserID, Status: status})
	if err != nil {
		return task.MatchOutput{}, fmt.Errorf("failed to load tasks: %w", err)
	}

	descriptions := make([]string, len(tasks))
	for i, t := range tasks {
		descriptions[i] = strings.ToLower(t.Description)
	}

	scores := make(map[int]*scoredTask)
	for _, w := range words {
		for _, m := range fuzzy.Find(w, descriptions) {
			if !tight(m, w) {
				continue
			}
			s, ok := scores[m.Index]
			if !ok {
				s = &scoredTask{index: m.Index}
				scores[m.Index] = s
			}
			s.hits++
			s.score += m.Score
		}
	}

	ranked := make([]*scoredTask, 0, len(scores))
	for _, s := range scores {
		ranked = append(ranked, s)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].hits != ranked[j].hits {
			return ranked[i].hits > ranked[j].hits
		}
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].index < ranked[j].index
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := task.MatchOutput{Candidates: make([]task.Candidate, 0, len(ranked))}
	for _, s := range ranked {
		t := tasks[s.index]
		out.Candidates = append(out.Candidates, task.Candidate{
			TaskID:      t.ID,
			Description: t.Description,
			Score:       s.score,
		})
	}

	uc.l.Debugf(ctx, "internal.task.usecase.Match: user=%s words=%v candidates=%d", sc.UserID, words, len(out.Candidates))
	return out, nil
}

// tight rejects subsequence matches scattered across a description.
func tight(m fuzzy.Match, word string) bool {
	if len(m.MatchedIndexes) == 0 {
		return false
	}
	first, last := m.MatchedIndexes[0], m.MatchedIndexes[len(m.MatchedIndexes)-1]
	return last-first+1 <= len(word)+maxMatchSpread
}

// contentWords lower-cases text and keeps the distinct words that identify a task.
func contentWords(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'")
		if len(f) < 2 {
			continue
		}
		if _, skip := ignoredWords[f]; skip {
			continue
		}
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		words = append(words, f)
	}
	return words
}
