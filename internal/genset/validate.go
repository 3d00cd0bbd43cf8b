package genset

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// rawCandidate mirrors one element of the generator's JSON array.
type rawCandidate struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex float64  `json:"answer_index"`
	Explanation string   `json:"explanation"`
	Kind        string   `json:"kind"`
	MentorName  *string  `json:"mentorName"`
}

// ValidateCandidates parses raw generator output and validates every
// element, returning normalized candidates tagged with their original
// 1-based position.
func ValidateCandidates(raw string, mentors []string) ([]Candidate, error) {
	elems, err := ParseCandidates(raw)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(mentors))
	for _, m := range mentors {
		allowed[m] = true
	}

	schema, err := compiledCandidateSchema()
	if err != nil {
		return nil, fmt.Errorf("candidate schema: %w", err)
	}

	out := make([]Candidate, 0, len(elems))
	for i, elem := range elems {
		pos := i + 1

		var value any
		if err := json.Unmarshal(elem, &value); err != nil {
			return nil, &ErrInvalidBatch{Position: pos, Reason: "not a JSON object", Err: err}
		}
		if err := schema.Validate(value); err != nil {
			return nil, &ErrInvalidBatch{Position: pos, Reason: "malformed candidate", Err: err}
		}

		var rc rawCandidate
		if err := json.Unmarshal(elem, &rc); err != nil {
			return nil, &ErrInvalidBatch{Position: pos, Reason: "malformed candidate", Err: err}
		}

		cand, verr := normalizeCandidate(pos, rc, allowed)
		if verr != nil {
			return nil, verr
		}
		out = append(out, *cand)
	}

	return out, nil
}

// normalizeCandidate applies the checks the schema cannot express and
// trims/coerces fields into canonical form.
func normalizeCandidate(pos int, rc rawCandidate, allowed map[string]bool) (*Candidate, error) {
	question := strings.TrimSpace(rc.Question)
	if question == "" {
		return nil, &ErrInvalidBatch{Position: pos, Reason: `"question" is empty`}
	}

	if len(rc.Options) != 4 {
		return nil, &ErrInvalidBatch{Position: pos, Reason: `"options" must be an array of 4 strings`}
	}
	options := make([]string, 4)
	for i, opt := range rc.Options {
		trimmed := strings.TrimSpace(opt)
		if trimmed == "" {
			return nil, &ErrInvalidBatch{Position: pos, Reason: fmt.Sprintf("option %d is empty", i+1)}
		}
		options[i] = trimmed
	}

	if rc.AnswerIndex != math.Trunc(rc.AnswerIndex) {
		return nil, &ErrInvalidBatch{Position: pos, Reason: `"answer_index" must be an integer in 1..4`}
	}
	ansIdx := int(rc.AnswerIndex)
	if ansIdx < 1 || ansIdx > 4 {
		return nil, &ErrInvalidBatch{Position: pos, Reason: `"answer_index" must be an integer in 1..4`}
	}

	explanation := strings.TrimSpace(rc.Explanation)
	if explanation == "" {
		return nil, &ErrInvalidBatch{Position: pos, Reason: `"explanation" is empty`}
	}

	kind := Kind(rc.Kind)
	var mentorName string
	switch kind {
	case KindBoss:
		if rc.MentorName != nil {
			return nil, &ErrInvalidBatch{Position: pos, Reason: `boss candidates must have "mentorName": null`}
		}
	case KindMain, KindRandom:
		if rc.MentorName == nil || !allowed[strings.TrimSpace(*rc.MentorName)] {
			got := "null"
			if rc.MentorName != nil {
				got = *rc.MentorName
			}
			return nil, &ErrInvalidBatch{Position: pos, Reason: fmt.Sprintf("unknown mentor %q", got)}
		}
		mentorName = strings.TrimSpace(*rc.MentorName)
	default:
		return nil, &ErrInvalidBatch{Position: pos, Reason: fmt.Sprintf("invalid kind %q (want main|random|boss)", rc.Kind)}
	}

	return &Candidate{
		Pos:         pos,
		Kind:        kind,
		Mentor:      mentorName,
		Question:    question,
		Options:     options,
		AnswerIndex: ansIdx,
		Explanation: explanation,
	}, nil
}
