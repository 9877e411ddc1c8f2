package intent

import (
	"testing"

	"github.com/pluang/hrbuddy/internal/domain"
)

func TestClassifyPriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		message string
		mem     domain.SessionMemory
		want    Kind
	}{
		{
			name:    "leave inquiry",
			message: "When did I take sick leave?",
			want:    KindLeaveInquiry,
		},
		{
			name:    "leave application",
			message: "Apply sick leave for 5 Feb",
			want:    KindLeaveApplication,
		},
		{
			name:    "application outranks pending date",
			message: "Apply casual leave for 3 Mar",
			mem:     domain.SessionMemory{Context: domain.ContextAwaitingLeaveDate},
			want:    KindLeaveApplication,
		},
		{
			name:    "inquiry outranks application keywords",
			message: "when do I apply sick leave",
			want:    KindLeaveInquiry,
		},
		{
			name:    "pending date continuation",
			message: "Feb 10",
			mem:     domain.SessionMemory{Context: domain.ContextAwaitingLeaveDate},
			want:    KindPendingDate,
		},
		{
			name:    "pending date continuation without a date",
			message: "hmm let me think",
			mem:     domain.SessionMemory{Context: domain.ContextAwaitingLeaveDate},
			want:    KindPendingDate,
		},
		{
			name:    "repeat with cached reply",
			message: "say that again please",
			mem:     domain.SessionMemory{LastAIMessage: "previous answer"},
			want:    KindRepeat,
		},
		{
			name:    "repeat without cached reply falls through",
			message: "repeat that",
			want:    KindFallback,
		},
		{
			name:    "plain question",
			message: "What are the public holidays this year?",
			want:    KindFallback,
		},
		{
			name:    "empty message",
			message: "",
			want:    KindFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message, tt.mem)
			if got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestLeaveTypeOf(t *testing.T) {
	tests := []struct {
		message string
		want    domain.LeaveType
	}{
		{"Apply sick leave for 5 Feb", domain.LeaveSick},
		{"apply casual leave", domain.LeaveCasual},
		{"apply leave for 7 Jul", domain.LeaveUnspecified},
		{"apply sick casual leave", domain.LeaveSick}, // sick wins
	}

	for _, tt := range tests {
		if got := LeaveTypeOf(tt.message); got != tt.want {
			t.Errorf("LeaveTypeOf(%q) = %v, want %v", tt.message, got, tt.want)
		}
	}
}
