package telegram

import (
	"errors"

	"atrova/internal/extraction"
)

const dueLayout = "Mon Jan 2, 3:04 PM"

const (
	msgStart            = "Hi %s! I am your Atrova task assistant. Send me a message to add tasks."
	msgHelp             = "You can send me messages like: \"Remind me to buy groceries tomorrow at 5pm\"\n\n/tasks lists your next open tasks."
	msgUnknownCommand   = "I don't know that command. Try /help."
	msgNoTasks          = "You have no open tasks."
	msgRephrase         = "Sorry, I couldn't work out the task and its time from that. Try something like \"Call mom on Friday at 6pm\"."
	msgModelUnavailable = "I can't reach the language model right now. Please try again in a minute."
	msgFailure          = "Something went wrong while handling your message. Please try again."
)

// isExtractionFailure reports whether the model answered but its reply could not be used.
func isExtractionFailure(err error) bool {
	return errors.Is(err, extraction.ErrNoJSONFound) ||
		errors.Is(err, extraction.ErrMalformedJSON) ||
		errors.Is(err, extraction.ErrMissingKey)
}
