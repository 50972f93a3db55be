package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"atrova/internal/extraction"
	"atrova/internal/model"
	"atrova/internal/task"
	pkgResponse "atrova/pkg/response"
	pkgTelegram "atrova/pkg/telegram"
)

const tasksCommandLimit = 10

// HandleWebhook responds with 200 immediately and processes the message in a goroutine,
// since Telegram retries webhooks that do not answer within a few seconds.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "task.delivery.telegram.HandleWebhook: parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	go h.HandleMessage(context.Background(), msg)

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// HandleMessage processes one message and reports failures back to the chat.
func (h *handler) HandleMessage(ctx context.Context, msg *pkgTelegram.Message) {
	if msg == nil || msg.Chat == nil {
		return
	}
	if err := h.processMessage(ctx, msg); err != nil {
		h.l.Errorf(ctx, "task.delivery.telegram.HandleMessage: chat %d: %v", msg.Chat.ID, err)
		if sendErr := h.sender.SendMessage(msg.Chat.ID, msgFailure); sendErr != nil {
			h.l.Warnf(ctx, "task.delivery.telegram.HandleMessage: send failure notice: %v", sendErr)
		}
	}
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	sc := h.scope(msg)

	if cmd, _, ok := msg.Command(); ok {
		return h.handleCommand(ctx, sc, msg, cmd)
	}

	output, err := h.uc.CreateFromText(ctx, sc, task.CreateFromTextInput{Text: text, ReceivedAt: msg.SentAt()})
	if err != nil {
		if reply, ok := replyForError(err); ok {
			h.l.Warnf(ctx, "task.delivery.telegram.processMessage: %v", err)
			return h.sender.SendMessage(msg.Chat.ID, reply)
		}
		return err
	}

	return h.sender.SendMessage(msg.Chat.ID, h.formatCreated(output.Task))
}

func (h *handler) handleCommand(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, cmd string) error {
	switch cmd {
	case "/start":
		return h.sender.SendMessage(msg.Chat.ID, fmt.Sprintf(msgStart, msg.SenderName("there")))
	case "/help":
		return h.sender.SendMessage(msg.Chat.ID, msgHelp)
	case "/tasks":
		return h.handleTasks(ctx, sc, msg.Chat.ID)
	default:
		return h.sender.SendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

func (h *handler) handleTasks(ctx context.Context, sc model.Scope, chatID int64) error {
	open := false
	out, err := h.uc.List(ctx, sc, task.ListInput{Completed: &open, SortByDue: true, Limit: tasksCommandLimit})
	if err != nil {
		return err
	}
	if len(out.Tasks) == 0 {
		return h.sender.SendMessage(chatID, msgNoTasks)
	}

	var b strings.Builder
	b.WriteString("Your open tasks:\n")
	for i, t := range out.Tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t.Title)
		if t.DueAt != nil {
			fmt.Fprintf(&b, " (%s)", t.DueAt.In(h.loc).Format(dueLayout))
		}
	}
	return h.sender.SendMessage(chatID, b.String())
}

func (h *handler) formatCreated(t model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Added: %s", t.Title)
	if t.DueAt != nil {
		fmt.Fprintf(&b, "\nDue: %s", t.DueAt.In(h.loc).Format(dueLayout))
	}
	if t.CalendarLink != "" {
		fmt.Fprintf(&b, "\nCalendar: %s", t.CalendarLink)
	}
	return b.String()
}

// scope derives the task owner from the sender; channel posts fall back to the chat.
func (h *handler) scope(msg *pkgTelegram.Message) model.Scope {
	id := msg.Chat.ID
	if msg.From != nil {
		id = msg.From.ID
	}
	return model.Scope{UserID: model.TelegramOwnerID(id), Source: model.SourceTelegram}
}

// replyForError returns the chat reply for failures the user can act on.
func replyForError(err error) (string, bool) {
	switch {
	case errors.Is(err, extraction.ErrExtraction):
		return msgModelUnavailable, true
	case isExtractionFailure(err), errors.Is(err, task.ErrInvalidTimestamp):
		return msgRephrase, true
	case errors.Is(err, task.ErrEmptyInput):
		return msgHelp, true
	}
	return "", false
}
