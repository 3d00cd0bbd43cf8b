package genset

import (
	"encoding/json"
	"fmt"
	"testing"
)

// Shared fixtures for validation and composition tests.

var testMentors = []string{"Nyra", "Kael", "Thorne", "Iris", "Voss"}

// testElem mirrors the generator's JSON element shape.
type testElem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex any      `json:"answer_index"`
	Explanation string   `json:"explanation"`
	Kind        string   `json:"kind"`
	MentorName  any      `json:"mentorName"`
}

func elem(kind, mentor string, n int) testElem {
	var m any
	if mentor != "" {
		m = mentor
	}
	return testElem{
		Question:    fmt.Sprintf("Challenge %d?", n),
		Options:     []string{"A", "B", "C", "D"},
		AnswerIndex: 2,
		Explanation: fmt.Sprintf("Because of reason %d.", n),
		Kind:        kind,
		MentorName:  m,
	}
}

// validBatch returns 20 elements: 5 boss first, then 2 main + 1 random
// per mentor.
func validBatch() []testElem {
	var out []testElem
	n := 0
	for i := 0; i < BossCount; i++ {
		n++
		out = append(out, elem("boss", "", n))
	}
	for _, mentor := range testMentors {
		for i := 0; i < MainsPerMentor; i++ {
			n++
			out = append(out, elem("main", mentor, n))
		}
		n++
		out = append(out, elem("random", mentor, n))
	}
	return out
}

func batchJSON(t *testing.T, items []testElem) string {
	t.Helper()
	b, err := json.Marshal(items)
	if err != nil {
		t.Fatalf("marshal batch: %v", err)
	}
	return string(b)
}

// mustValidate runs ValidateCandidates and fails the test on error.
func mustValidate(t *testing.T, items []testElem) []Candidate {
	t.Helper()
	cands, err := ValidateCandidates(batchJSON(t, items), testMentors)
	if err != nil {
		t.Fatalf("ValidateCandidates: %v", err)
	}
	return cands
}
