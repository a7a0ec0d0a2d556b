package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cognitive-router/internal/preprocess"
	"cognitive-router/pkg/log"
)

func TestProcess(t *testing.T) {
	p := New(log.NewNop(), 0)

	tests := []struct {
		name string
		in   string
		want preprocess.Output
	}{
		{
			name: "english keeps case in raw text",
			in:   "  Remind me to call Mom   tomorrow ",
			want: preprocess.Output{
				RawText:      "Remind me to call Mom tomorrow",
				WorkingText:  "remind me to call mom tomorrow",
				LanguageHint: "en",
			},
		},
		{
			name: "compatibility forms are normalized",
			in:   "ｃａｌｌ ｍｏｍ at 5",
			want: preprocess.Output{
				RawText:      "call mom at 5",
				WorkingText:  "call mom at 5",
				LanguageHint: "en",
			},
		},
		{
			name: "vietnamese",
			in:   "Nhắc tôi gọi điện cho mẹ",
			want: preprocess.Output{
				RawText:      "Nhắc tôi gọi điện cho mẹ",
				WorkingText:  "nhac toi goi dien cho me",
				LanguageHint: "vi",
			},
		},
		{
			name: "accents without vietnamese marks",
			in:   "Café crème",
			want: preprocess.Output{
				RawText:      "Café crème",
				WorkingText:  "cafe creme",
				LanguageHint: "und",
			},
		},
		{
			name: "no letters",
			in:   "123",
			want: preprocess.Output{RawText: "123", WorkingText: "123", LanguageHint: "und"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Process(context.Background(), tt.in)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestProcess_TooLong(t *testing.T) {
	p := New(log.NewNop(), 8)
	_, err := p.Process(context.Background(), strings.Repeat("a", 9))
	if !errors.Is(err, preprocess.ErrInputTooLong) {
		t.Errorf("err = %v, want ErrInputTooLong", err)
	}
}
