package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/geoattend/internal/logging"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ErrQueueFull is returned by Telegram.Notify when the delivery queue is
// saturated; the event is dropped.
var ErrQueueFull = errors.New("notification queue full")

const defaultQueueSize = 64

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var newBotAPI = func(token string) (sender, error) {
	return tgbotapi.NewBotAPI(token)
}

// Telegram posts events to a single chat. Notify only enqueues; Run owns
// the bot connection and must be running for messages to go out.
type Telegram struct {
	bot    sender
	chatID int64
	queue  chan Event
	logger logging.Logger
}

func NewTelegram(token string, chatID int64, logger logging.Logger) (*Telegram, error) {
	bot, err := newBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram bot: %w", err)
	}
	return newTelegram(bot, chatID, defaultQueueSize, logger), nil
}

func newTelegram(bot sender, chatID int64, size int, logger logging.Logger) *Telegram {
	return &Telegram{
		bot:    bot,
		chatID: chatID,
		queue:  make(chan Event, size),
		logger: logger.With("module", "telegram"),
	}
}

func (t *Telegram) Notify(ctx context.Context, e Event) error {
	select {
	case t.queue <- e:
		return nil
	default:
		t.logger.Warn(ctx, "dropping notification", "employee_id", e.EmployeeID, "kind", e.Kind)
		return ErrQueueFull
	}
}

// Run sends queued events until ctx is done.
func (t *Telegram) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case e := <-t.queue:
			msg := tgbotapi.NewMessage(t.chatID, FormatEvent(e))
			if _, err := t.bot.Send(msg); err != nil {
				t.logger.Error(ctx, "telegram send failed", "error", err, "employee_id", e.EmployeeID)
			}
		}
	}
}

// FormatEvent renders an event as a one-line chat message.
func FormatEvent(e Event) string {
	var b strings.Builder

	name := e.EmployeeName
	if name == "" {
		name = e.EmployeeID
	}

	switch e.Kind {
	case EventClockIn:
		b.WriteString("Clock-in")
	case EventClockOut:
		b.WriteString("Clock-out")
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Rejection != "" {
		b.WriteString(" rejected")
	}
	b.WriteString(": ")

	fmt.Fprintf(&b, "%s (%s), %s session, %s at %s", name, e.EmployeeID, e.SessionType, e.Day, e.Time.Format("15:04:05"))
	if e.LocationID != nil {
		fmt.Fprintf(&b, ", location #%d", *e.LocationID)
	}
	if e.Rejection != "" {
		fmt.Fprintf(&b, " (%s)", e.Rejection)
	}
	return b.String()
}
