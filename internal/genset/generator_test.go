package genset

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/gauntlet/internal/llm"
)

func goodResponse(t *testing.T) llm.MockResponse {
	t.Helper()
	return llm.MockResponse{Content: json.RawMessage(batchJSON(t, validBatch()))}
}

func testInput() GenerateInput {
	return GenerateInput{Tier: TierJunior, Mentors: testMentors}
}

func TestGenerateSet_FirstAttempt(t *testing.T) {
	mock := llm.NewMockProvider(goodResponse(t))
	gen := New(mock, DefaultConfig())

	items, err := gen.GenerateSet(context.Background(), testInput())
	if err != nil {
		t.Fatalf("GenerateSet: %v", err)
	}
	if len(items) != TotalItems {
		t.Fatalf("len = %d, want %d", len(items), TotalItems)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerateSet_RetriesThenSucceeds(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Err: errors.New("transient upstream failure")},
		goodResponse(t),
	)
	gen := New(mock, DefaultConfig())

	items, err := gen.GenerateSet(context.Background(), testInput())
	if err != nil {
		t.Fatalf("GenerateSet: %v", err)
	}
	if len(items) != TotalItems {
		t.Fatalf("len = %d, want %d", len(items), TotalItems)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestGenerateSet_SameRequestEveryAttempt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		goodResponse(t),
	)
	gen := New(mock, DefaultConfig())

	if _, err := gen.GenerateSet(context.Background(), testInput()); err != nil {
		t.Fatalf("GenerateSet: %v", err)
	}
	if len(mock.Calls) != 3 {
		t.Fatalf("calls = %d, want 3", len(mock.Calls))
	}
	first := mock.Calls[0]
	for i, call := range mock.Calls[1:] {
		if call.System != first.System ||
			call.MaxTokens != first.MaxTokens ||
			call.Temperature != first.Temperature ||
			len(call.Messages) != len(first.Messages) ||
			call.Messages[0].Content != first.Messages[0].Content {
			t.Errorf("attempt %d request differs from the first", i+2)
		}
	}
}

func TestGenerateSet_LastErrorSurfaced(t *testing.T) {
	wrong := errors.New("model melted down")
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: json.RawMessage(`{"oops":1}`)},
		llm.MockResponse{Err: wrong},
	)
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateSet(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if !errors.Is(err, wrong) {
		t.Errorf("err = %v, want the final attempt's error", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestGenerateSet_ValidationErrorKept(t *testing.T) {
	items := validBatch()
	items[3].AnswerIndex = 9
	bad := llm.MockResponse{Content: json.RawMessage(batchJSON(t, items))}
	mock := llm.NewMockProvider(bad, bad, bad)
	gen := New(mock, DefaultConfig())

	_, err := gen.GenerateSet(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var batchErr *ErrInvalidBatch
	if !errors.As(err, &batchErr) {
		t.Fatalf("expected *ErrInvalidBatch, got %T: %v", err, err)
	}
	if !strings.Contains(err.Error(), "candidate 4") {
		t.Errorf("error %q should name the offending position", err)
	}
}

func TestBuildUserMessage_ShrinksTemplate(t *testing.T) {
	cfg := DefaultConfig()
	input := testInput()
	input.Template = strings.Repeat("word  \n\t ", 10_000)

	msg := buildUserMessage(input, cfg)
	if len(msg) > cfg.MaxPromptChars+1024 {
		t.Errorf("message length %d, template was not capped", len(msg))
	}
	if strings.Contains(msg, "  ") {
		t.Error("template whitespace was not collapsed")
	}
}
