// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/gauntlet/ent/attempt"
	"github.com/abhisek/gauntlet/ent/generateditem"
	"github.com/abhisek/gauntlet/ent/generatedset"
	"github.com/abhisek/gauntlet/ent/llmrequestevent"
	"github.com/abhisek/gauntlet/ent/mentor"
	"github.com/abhisek/gauntlet/ent/playerstate"
	"github.com/abhisek/gauntlet/ent/prompttemplate"
	"github.com/abhisek/gauntlet/ent/ratebucket"
	"github.com/abhisek/gauntlet/ent/schema"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attemptFields := schema.Attempt{}.Fields()
	_ = attemptFields
	// attemptDescUserID is the schema descriptor for user_id field.
	attemptDescUserID := attemptFields[2].Descriptor()
	// attempt.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attempt.UserIDValidator = attemptDescUserID.Validators[0].(func(string) error)
	// attemptDescItemIndex is the schema descriptor for item_index field.
	attemptDescItemIndex := attemptFields[3].Descriptor()
	// attempt.ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	attempt.ItemIndexValidator = func() func(int) error {
		validators := attemptDescItemIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(item_index int) error {
			for _, fn := range fns {
				if err := fn(item_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescAnswerGiven is the schema descriptor for answer_given field.
	attemptDescAnswerGiven := attemptFields[4].Descriptor()
	// attempt.AnswerGivenValidator is a validator for the "answer_given" field. It is called by the builders before save.
	attempt.AnswerGivenValidator = func() func(int) error {
		validators := attemptDescAnswerGiven.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(answer_given int) error {
			for _, fn := range fns {
				if err := fn(answer_given); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// attemptDescCreatedAt is the schema descriptor for created_at field.
	attemptDescCreatedAt := attemptFields[6].Descriptor()
	// attempt.DefaultCreatedAt holds the default value on creation for the created_at field.
	attempt.DefaultCreatedAt = attemptDescCreatedAt.Default.(func() time.Time)
	// attemptDescID is the schema descriptor for id field.
	attemptDescID := attemptFields[0].Descriptor()
	// attempt.DefaultID holds the default value on creation for the id field.
	attempt.DefaultID = attemptDescID.Default.(func() uuid.UUID)
	generateditemFields := schema.GeneratedItem{}.Fields()
	_ = generateditemFields
	// generateditemDescItemIndex is the schema descriptor for item_index field.
	generateditemDescItemIndex := generateditemFields[2].Descriptor()
	// generateditem.ItemIndexValidator is a validator for the "item_index" field. It is called by the builders before save.
	generateditem.ItemIndexValidator = func() func(int) error {
		validators := generateditemDescItemIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(item_index int) error {
			for _, fn := range fns {
				if err := fn(item_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generateditemDescQuestion is the schema descriptor for question field.
	generateditemDescQuestion := generateditemFields[5].Descriptor()
	// generateditem.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	generateditem.QuestionValidator = generateditemDescQuestion.Validators[0].(func(string) error)
	// generateditemDescAnswerIndex is the schema descriptor for answer_index field.
	generateditemDescAnswerIndex := generateditemFields[7].Descriptor()
	// generateditem.AnswerIndexValidator is a validator for the "answer_index" field. It is called by the builders before save.
	generateditem.AnswerIndexValidator = func() func(int) error {
		validators := generateditemDescAnswerIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(answer_index int) error {
			for _, fn := range fns {
				if err := fn(answer_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generateditemDescExplanation is the schema descriptor for explanation field.
	generateditemDescExplanation := generateditemFields[8].Descriptor()
	// generateditem.ExplanationValidator is a validator for the "explanation" field. It is called by the builders before save.
	generateditem.ExplanationValidator = generateditemDescExplanation.Validators[0].(func(string) error)
	// generateditemDescID is the schema descriptor for id field.
	generateditemDescID := generateditemFields[0].Descriptor()
	// generateditem.DefaultID holds the default value on creation for the id field.
	generateditem.DefaultID = generateditemDescID.Default.(func() uuid.UUID)
	generatedsetFields := schema.GeneratedSet{}.Fields()
	_ = generatedsetFields
	// generatedsetDescUserID is the schema descriptor for user_id field.
	generatedsetDescUserID := generatedsetFields[1].Descriptor()
	// generatedset.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	generatedset.UserIDValidator = generatedsetDescUserID.Validators[0].(func(string) error)
	// generatedsetDescTier is the schema descriptor for tier field.
	generatedsetDescTier := generatedsetFields[2].Descriptor()
	// generatedset.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	generatedset.TierValidator = generatedsetDescTier.Validators[0].(func(string) error)
	// generatedsetDescNextIndex is the schema descriptor for next_index field.
	generatedsetDescNextIndex := generatedsetFields[4].Descriptor()
	// generatedset.DefaultNextIndex holds the default value on creation for the next_index field.
	generatedset.DefaultNextIndex = generatedsetDescNextIndex.Default.(int)
	// generatedset.NextIndexValidator is a validator for the "next_index" field. It is called by the builders before save.
	generatedset.NextIndexValidator = func() func(int) error {
		validators := generatedsetDescNextIndex.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(next_index int) error {
			for _, fn := range fns {
				if err := fn(next_index); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// generatedsetDescBossUnlocked is the schema descriptor for boss_unlocked field.
	generatedsetDescBossUnlocked := generatedsetFields[5].Descriptor()
	// generatedset.DefaultBossUnlocked holds the default value on creation for the boss_unlocked field.
	generatedset.DefaultBossUnlocked = generatedsetDescBossUnlocked.Default.(bool)
	// generatedsetDescCreatedAt is the schema descriptor for created_at field.
	generatedsetDescCreatedAt := generatedsetFields[6].Descriptor()
	// generatedset.DefaultCreatedAt holds the default value on creation for the created_at field.
	generatedset.DefaultCreatedAt = generatedsetDescCreatedAt.Default.(func() time.Time)
	// generatedsetDescUpdatedAt is the schema descriptor for updated_at field.
	generatedsetDescUpdatedAt := generatedsetFields[7].Descriptor()
	// generatedset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	generatedset.DefaultUpdatedAt = generatedsetDescUpdatedAt.Default.(func() time.Time)
	// generatedset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	generatedset.UpdateDefaultUpdatedAt = generatedsetDescUpdatedAt.UpdateDefault.(func() time.Time)
	// generatedsetDescID is the schema descriptor for id field.
	generatedsetDescID := generatedsetFields[0].Descriptor()
	// generatedset.DefaultID holds the default value on creation for the id field.
	generatedset.DefaultID = generatedsetDescID.Default.(func() uuid.UUID)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	mentorFields := schema.Mentor{}.Fields()
	_ = mentorFields
	// mentorDescName is the schema descriptor for name field.
	mentorDescName := mentorFields[0].Descriptor()
	// mentor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	mentor.NameValidator = mentorDescName.Validators[0].(func(string) error)
	// mentorDescTier is the schema descriptor for tier field.
	mentorDescTier := mentorFields[1].Descriptor()
	// mentor.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	mentor.TierValidator = mentorDescTier.Validators[0].(func(string) error)
	// mentorDescDisplayName is the schema descriptor for display_name field.
	mentorDescDisplayName := mentorFields[2].Descriptor()
	// mentor.DisplayNameValidator is a validator for the "display_name" field. It is called by the builders before save.
	mentor.DisplayNameValidator = mentorDescDisplayName.Validators[0].(func(string) error)
	// mentorDescPosition is the schema descriptor for position field.
	mentorDescPosition := mentorFields[3].Descriptor()
	// mentor.PositionValidator is a validator for the "position" field. It is called by the builders before save.
	mentor.PositionValidator = mentorDescPosition.Validators[0].(func(int) error)
	// mentorDescFlavor is the schema descriptor for flavor field.
	mentorDescFlavor := mentorFields[4].Descriptor()
	// mentor.DefaultFlavor holds the default value on creation for the flavor field.
	mentor.DefaultFlavor = mentorDescFlavor.Default.(string)
	playerstateFields := schema.PlayerState{}.Fields()
	_ = playerstateFields
	// playerstateDescUserID is the schema descriptor for user_id field.
	playerstateDescUserID := playerstateFields[0].Descriptor()
	// playerstate.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	playerstate.UserIDValidator = playerstateDescUserID.Validators[0].(func(string) error)
	// playerstateDescTier is the schema descriptor for tier field.
	playerstateDescTier := playerstateFields[1].Descriptor()
	// playerstate.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	playerstate.TierValidator = playerstateDescTier.Validators[0].(func(string) error)
	// playerstateDescScore is the schema descriptor for score field.
	playerstateDescScore := playerstateFields[2].Descriptor()
	// playerstate.DefaultScore holds the default value on creation for the score field.
	playerstate.DefaultScore = playerstateDescScore.Default.(int)
	// playerstate.ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	playerstate.ScoreValidator = playerstateDescScore.Validators[0].(func(int) error)
	// playerstateDescUpdatedAt is the schema descriptor for updated_at field.
	playerstateDescUpdatedAt := playerstateFields[4].Descriptor()
	// playerstate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	playerstate.DefaultUpdatedAt = playerstateDescUpdatedAt.Default.(func() time.Time)
	// playerstate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	playerstate.UpdateDefaultUpdatedAt = playerstateDescUpdatedAt.UpdateDefault.(func() time.Time)
	prompttemplateFields := schema.PromptTemplate{}.Fields()
	_ = prompttemplateFields
	// prompttemplateDescKey is the schema descriptor for key field.
	prompttemplateDescKey := prompttemplateFields[0].Descriptor()
	// prompttemplate.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	prompttemplate.KeyValidator = prompttemplateDescKey.Validators[0].(func(string) error)
	// prompttemplateDescBody is the schema descriptor for body field.
	prompttemplateDescBody := prompttemplateFields[1].Descriptor()
	// prompttemplate.BodyValidator is a validator for the "body" field. It is called by the builders before save.
	prompttemplate.BodyValidator = prompttemplateDescBody.Validators[0].(func(string) error)
	// prompttemplateDescUpdatedAt is the schema descriptor for updated_at field.
	prompttemplateDescUpdatedAt := prompttemplateFields[2].Descriptor()
	// prompttemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	prompttemplate.DefaultUpdatedAt = prompttemplateDescUpdatedAt.Default.(func() time.Time)
	// prompttemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	prompttemplate.UpdateDefaultUpdatedAt = prompttemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratebucketFields := schema.RateBucket{}.Fields()
	_ = ratebucketFields
	// ratebucketDescKey is the schema descriptor for key field.
	ratebucketDescKey := ratebucketFields[0].Descriptor()
	// ratebucket.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	ratebucket.KeyValidator = ratebucketDescKey.Validators[0].(func(string) error)
	// ratebucketDescWindowStart is the schema descriptor for window_start field.
	ratebucketDescWindowStart := ratebucketFields[1].Descriptor()
	// ratebucket.DefaultWindowStart holds the default value on creation for the window_start field.
	ratebucket.DefaultWindowStart = ratebucketDescWindowStart.Default.(func() time.Time)
	// ratebucketDescCount is the schema descriptor for count field.
	ratebucketDescCount := ratebucketFields[2].Descriptor()
	// ratebucket.DefaultCount holds the default value on creation for the count field.
	ratebucket.DefaultCount = ratebucketDescCount.Default.(int)
	// ratebucket.CountValidator is a validator for the "count" field. It is called by the builders before save.
	ratebucket.CountValidator = ratebucketDescCount.Validators[0].(func(int) error)
}
