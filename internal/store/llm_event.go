package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gauntlet/ent"
	"github.com/abhisek/gauntlet/ent/llmrequestevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seqNum).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}

	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	q := r.client.LLMRequestEvent.Query()

	if opts.After > 0 {
		q = q.Where(llmrequestevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(llmrequestevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(llmrequestevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(llmrequestevent.TimestampLTE(opts.To))
	}

	q = q.Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	events := make([]LLMEvent, len(rows))
	for i, row := range rows {
		events[i] = *llmEventFromEnt(row)
	}
	return events, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	return llmEventFromEnt(row), nil
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error) {
	var rows []struct {
		Purpose      string  `json:"purpose"`
		Calls        int     `json:"calls"`
		InputTokens  int     `json:"input_tokens"`
		OutputTokens int     `json:"output_tokens"`
		AvgLatencyMs float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by purpose: %w", err)
	}

	out := make([]LLMPurposeUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMPurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
			AvgLatencyMs: int64(row.AvgLatencyMs),
		}
	}
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error) {
	var rows []struct {
		Model        string `json:"model"`
		Calls        int    `json:"calls"`
		InputTokens  int    `json:"input_tokens"`
		OutputTokens int    `json:"output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.As(ent.Count(), "calls"),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage by model: %w", err)
	}

	out := make([]LLMModelUsage, len(rows))
	for i, row := range rows {
		out[i] = LLMModelUsage{
			Model:        row.Model,
			Calls:        row.Calls,
			InputTokens:  row.InputTokens,
			OutputTokens: row.OutputTokens,
		}
	}
	return out, nil
}

func llmEventFromEnt(row *ent.LLMRequestEvent) *LLMEvent {
	return &LLMEvent{
		ID:           row.ID,
		Sequence:     row.Sequence,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}
