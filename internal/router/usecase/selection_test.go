package usecase

import (
	"testing"

	"cognitive-router/internal/dialogue"
)

func TestSelectOption(t *testing.T) {
	options := []dialogue.Option{
		{TaskID: "t1", Description: "Call the dentist"},
		{TaskID: "t2", Description: "Call mom"},
		{TaskID: "t3", Description: "Email the report"},
	}

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{in: "2", want: "t2", wantOK: true},
		{in: "#3", want: "t3", wantOK: true},
		{in: "option 1", want: "t1", wantOK: true},
		{in: "Number 2.", want: "t2", wantOK: true},
		{in: "the second one", want: "t2", wantOK: true},
		{in: "first", want: "t1", wantOK: true},
		{in: "the last one", want: "t3", wantOK: true},
		{in: "3rd", want: "t3", wantOK: true},
		{in: "the dentist one", want: "t1", wantOK: true},
		{in: "email the report please", want: "t3", wantOK: true},
		{in: "4", wantOK: false},
		{in: "0", wantOK: false},
		{in: "the fifth one", wantOK: false},
		{in: "call", wantOK: false},
		{in: "the one", wantOK: false},
		{in: "hello", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := selectOption(newUtterance(tt.in), options)
			if ok != tt.wantOK {
				t.Fatalf("selectOption(%q) ok = %t, want %t", tt.in, ok, tt.wantOK)
			}
			if ok && got.TaskID != tt.want {
				t.Errorf("selectOption(%q) = %s, want %s", tt.in, got.TaskID, tt.want)
			}
		})
	}
}

func TestSelectOption_NoOptions(t *testing.T) {
	if _, ok := selectOption(newUtterance("1"), nil); ok {
		t.Error("no options must never select")
	}
}
