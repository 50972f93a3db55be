package extraction

import (
	"fmt"
	"time"
)

const (
	instOpen  = "[INST]"
	instClose = "[/INST]"
)

// TaskNamePrompt builds the instruction asking for {"task": "..."} only.
func TaskNamePrompt(text string) string {
	return fmt.Sprintf(`%s You read a chat message and name the task the user wants to do.

Message: %s

Reply with ONLY a single JSON object that has exactly one key, "task", whose value is a short name for the task.
Example: {"task": "buy milk"}
Do not add any explanation, notes or other text before or after the JSON object. %s`, instOpen, text, instClose)
}

// TimestampPrompt builds the instruction asking for {"date": "YYYY-MM-DD HH:MM:SS"} only,
// with now as the reference for relative phrases.
func TimestampPrompt(text string, now time.Time) string {
	return fmt.Sprintf(`%s The current date and time is %s.

Message: %s

Work out the date and time at which the task in the message happens. Resolve relative phrases such as "tomorrow" or "in two hours" against the current date and time.
Reply with ONLY a single JSON object that has exactly one key, "date", whose value uses the format YYYY-MM-DD HH:MM:SS.
The value must always contain both the date and the time, even if the message mentions only one of them.
Example: {"date": "2024-01-02 17:00:00"}
Do not add any explanation, notes or other text before or after the JSON object. %s`, instOpen, now.Format(TimestampLayout), text, instClose)
}
