package genset

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateCandidates_ValidBatch(t *testing.T) {
	cands := mustValidate(t, validBatch())

	if len(cands) != 20 {
		t.Fatalf("len = %d, want 20", len(cands))
	}
	for i, c := range cands {
		if c.Pos != i+1 {
			t.Errorf("cands[%d].Pos = %d, want %d", i, c.Pos, i+1)
		}
	}
	if cands[0].Kind != KindBoss || cands[0].Mentor != "" {
		t.Errorf("first candidate = %+v, want boss without mentor", cands[0])
	}
	if cands[5].Kind != KindMain || cands[5].Mentor != testMentors[0] {
		t.Errorf("sixth candidate = %+v, want main for %s", cands[5], testMentors[0])
	}
}

func TestValidateCandidates_TrimsFields(t *testing.T) {
	items := validBatch()
	items[5].Question = "  padded question?  "
	items[5].Options = []string{" A ", "B", "C", "D"}

	cands := mustValidate(t, items)
	if cands[5].Question != "padded question?" {
		t.Errorf("question = %q, not trimmed", cands[5].Question)
	}
	if cands[5].Options[0] != "A" {
		t.Errorf("option = %q, not trimmed", cands[5].Options[0])
	}
}

func TestValidateCandidates_CoercesFloatAnswerIndex(t *testing.T) {
	items := validBatch()
	items[0].AnswerIndex = 3.0

	cands := mustValidate(t, items)
	if cands[0].AnswerIndex != 3 {
		t.Errorf("answer index = %d, want 3", cands[0].AnswerIndex)
	}
}

func TestValidateCandidates_PositionInErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(items []testElem)
		want   string
	}{
		{
			name:   "empty question",
			mutate: func(items []testElem) { items[6].Question = "   " },
			want:   "candidate 7",
		},
		{
			name:   "three options",
			mutate: func(items []testElem) { items[2].Options = []string{"A", "B", "C"} },
			want:   "candidate 3",
		},
		{
			name:   "answer index out of range",
			mutate: func(items []testElem) { items[9].AnswerIndex = 5 },
			want:   "candidate 10",
		},
		{
			name:   "fractional answer index",
			mutate: func(items []testElem) { items[9].AnswerIndex = 2.5 },
			want:   "candidate 10",
		},
		{
			name:   "empty explanation",
			mutate: func(items []testElem) { items[11].Explanation = "" },
			want:   "candidate 12",
		},
		{
			name:   "boss with mentor",
			mutate: func(items []testElem) { items[1].MentorName = "Nyra" },
			want:   "candidate 2",
		},
		{
			name:   "main without mentor",
			mutate: func(items []testElem) { items[5].MentorName = nil },
			want:   "candidate 6",
		},
		{
			name:   "unknown mentor",
			mutate: func(items []testElem) { items[5].MentorName = "Zed" },
			want:   "candidate 6",
		},
		{
			name:   "bad kind",
			mutate: func(items []testElem) { items[4].Kind = "epic" },
			want:   "candidate 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := validBatch()
			tt.mutate(items)

			_, err := ValidateCandidates(batchJSON(t, items), testMentors)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var batchErr *ErrInvalidBatch
			if !errors.As(err, &batchErr) {
				t.Fatalf("expected *ErrInvalidBatch, got %T: %v", err, err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should name the offending position %q", err, tt.want)
			}
		})
	}
}

func TestValidateCandidates_KeepsExcessElements(t *testing.T) {
	items := validBatch()
	items = append(items, elem("main", "Kael", 21), elem("boss", "", 22))

	cands := mustValidate(t, items)
	if len(cands) != 22 {
		t.Fatalf("len = %d, want 22", len(cands))
	}
	if cands[21].Pos != 22 {
		t.Errorf("last pos = %d, want 22", cands[21].Pos)
	}
}
