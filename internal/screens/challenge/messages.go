package challenge

import "github.com/abhisek/gauntlet/internal/game"

// nextItemMsg is sent when the mentor's next item has been resolved.
type nextItemMsg struct {
	Next *game.NextItem
	Err  error
}

// answeredMsg is sent when an answer has been recorded.
type answeredMsg struct {
	Result *game.AnswerResult
	Err    error
}
