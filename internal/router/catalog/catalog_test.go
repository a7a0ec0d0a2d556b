package catalog_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"cognitive-router/internal/router/catalog"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		intent catalog.Intent
		want   catalog.Spec
	}{
		{
			intent: catalog.IntentTaskCreate,
			want: catalog.Spec{
				RequiredSlots:        []string{"task_name", "target_time"},
				MemoryRead:           []catalog.MemoryTag{catalog.MemoryShortTermHistory},
				MemoryWrite:          []catalog.MemoryTag{catalog.MemoryTaskStore},
				RequiresConfirmation: true,
			},
		},
		{
			intent: catalog.IntentTaskUpdate,
			want: catalog.Spec{
				RequiredSlots:        []string{"task_id", "new_value"},
				MemoryRead:           []catalog.MemoryTag{catalog.MemoryShortTermHistory, catalog.MemoryTaskStore},
				MemoryWrite:          []catalog.MemoryTag{catalog.MemoryTaskStore},
				RequiresConfirmation: true,
			},
		},
		{
			intent: catalog.IntentTaskCancel,
			want: catalog.Spec{
				RequiredSlots:        []string{"task_id"},
				MemoryRead:           []catalog.MemoryTag{catalog.MemoryShortTermHistory, catalog.MemoryTaskStore},
				MemoryWrite:          []catalog.MemoryTag{catalog.MemoryTaskStore},
				RequiresConfirmation: true,
			},
		},
		{
			intent: catalog.IntentTaskList,
			want:   catalog.Spec{RequiredSlots: []string{"status"}, MemoryRead: []catalog.MemoryTag{}, MemoryWrite: []catalog.MemoryTag{}},
		},
		{
			intent: catalog.IntentCasualChat,
			want:   catalog.DefaultSpec(),
		},
		{
			intent: catalog.IntentRecallMemory,
			want:   catalog.Spec{RequiredSlots: []string{"query"}, MemoryRead: []catalog.MemoryTag{catalog.MemoryVectorStore}, MemoryWrite: []catalog.MemoryTag{}},
		},
		{
			intent: catalog.IntentWebSearch,
			want:   catalog.Spec{RequiredSlots: []string{"query"}, MemoryRead: []catalog.MemoryTag{}, MemoryWrite: []catalog.MemoryTag{}},
		},
		{
			intent: catalog.IntentDeepResearch,
			want: catalog.Spec{
				RequiredSlots:        []string{"query"},
				MemoryRead:           []catalog.MemoryTag{catalog.MemoryVectorStore},
				MemoryWrite:          []catalog.MemoryTag{},
				RequiresConfirmation: true,
			},
		},
		{
			intent: catalog.IntentCorrection,
			want: catalog.Spec{
				RequiredSlots: []string{"slot_name", "slot_value"},
				MemoryRead:    []catalog.MemoryTag{catalog.MemoryContextStack},
				MemoryWrite:   []catalog.MemoryTag{catalog.MemoryContextStack},
			},
		},
		{
			intent: catalog.IntentStop,
			want: catalog.Spec{
				RequiredSlots: []string{},
				MemoryRead:    []catalog.MemoryTag{catalog.MemoryContextStack},
				MemoryWrite:   []catalog.MemoryTag{catalog.MemoryContextStack},
			},
		},
		{
			intent: catalog.Intent("unknown_key"),
			want:   catalog.DefaultSpec(),
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, catalog.Lookup(tt.intent)); diff != "" {
				t.Errorf("Lookup(%s) mismatch (-want +got):\n%s", tt.intent, diff)
			}
		})
	}
}

func TestLookup_Idempotent(t *testing.T) {
	first := catalog.Lookup(catalog.IntentTaskCreate)
	first.RequiredSlots[0] = "mutated"
	first.MemoryRead = append(first.MemoryRead, catalog.MemoryVectorStore)
	first.RequiresConfirmation = false

	second := catalog.Lookup(catalog.IntentTaskCreate)
	third := catalog.Lookup(catalog.IntentTaskCreate)
	if diff := cmp.Diff(second, third); diff != "" {
		t.Errorf("lookups differ (-second +third):\n%s", diff)
	}
	if second.RequiredSlots[0] != "task_name" || !second.RequiresConfirmation {
		t.Errorf("catalog was mutated through a returned spec: %+v", second)
	}
}

func TestIntentPredicates(t *testing.T) {
	if !catalog.IntentRecallMemory.UsesVectorSearch() || !catalog.IntentDeepResearch.UsesVectorSearch() {
		t.Error("recall and research must use vector search")
	}
	if catalog.IntentWebSearch.UsesVectorSearch() {
		t.Error("web search must not use vector search")
	}
	if !catalog.IntentTaskCancel.Mutating() || catalog.IntentTaskCreate.Mutating() {
		t.Error("unexpected Mutating result")
	}
	if catalog.Intent("nope").Known() || !catalog.IntentStop.Known() {
		t.Error("unexpected Known result")
	}
}
