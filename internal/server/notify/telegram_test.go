package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/geoattend/internal/common"
	"github.com/dmitrijs2005/geoattend/internal/logging"
	"github.com/dmitrijs2005/geoattend/internal/server/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent chan tgbotapi.MessageConfig
	err  error
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sent <- msg
	}
	return tgbotapi.Message{}, f.err
}

func sampleEvent() Event {
	loc := int64(3)
	return Event{
		Kind:         EventClockIn,
		EmployeeID:   "E1001",
		EmployeeName: "Ada",
		SessionType:  models.SessionMorning,
		Day:          "2026-10-15",
		Time:         time.Date(2026, 10, 15, 8, 57, 3, 0, time.UTC),
		LocationID:   &loc,
	}
}

func TestTelegram_DeliversQueuedEvents(t *testing.T) {
	fs := &fakeSender{sent: make(chan tgbotapi.MessageConfig, 1), err: errors.New("ignored")}
	tg := newTelegram(fs, 42, 4, logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go tg.Run(ctx)

	require.NoError(t, tg.Notify(ctx, sampleEvent()))

	select {
	case msg := <-fs.sent:
		assert.Equal(t, int64(42), msg.ChatID)
		assert.Equal(t, "Clock-in: Ada (E1001), morning session, 2026-10-15 at 08:57:03, location #3", msg.Text)
	case <-time.After(time.Second):
		t.Fatal("message was not sent")
	}
}

func TestTelegram_QueueFull(t *testing.T) {
	tg := newTelegram(&fakeSender{sent: make(chan tgbotapi.MessageConfig, 1)}, 1, 1, logging.Nop{})

	require.NoError(t, tg.Notify(context.Background(), sampleEvent()))
	assert.ErrorIs(t, tg.Notify(context.Background(), sampleEvent()), ErrQueueFull)
}

func TestNewTelegram(t *testing.T) {
	orig := newBotAPI
	t.Cleanup(func() { newBotAPI = orig })

	newBotAPI = func(string) (sender, error) { return nil, errors.New("unauthorized") }
	_, err := NewTelegram("bad", 1, logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram bot: unauthorized")

	newBotAPI = func(string) (sender, error) { return &fakeSender{}, nil }
	tg, err := NewTelegram("ok", 1, logging.Nop{})
	require.NoError(t, err)
	assert.NotNil(t, tg)
}

func TestFormatEvent(t *testing.T) {
	e := sampleEvent()
	e.Kind = EventClockOut
	e.EmployeeName = ""
	e.LocationID = nil

	assert.Equal(t, "Clock-out: E1001 (E1001), morning session, 2026-10-15 at 08:57:03", FormatEvent(e))
}

func TestFormatEvent_Rejected(t *testing.T) {
	e := sampleEvent()
	e.LocationID = nil
	e.Rejection = common.ReasonLocationRejected

	assert.Equal(t, "Clock-in rejected: Ada (E1001), morning session, 2026-10-15 at 08:57:03 (LocationRejected)", FormatEvent(e))
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Notify(context.Background(), sampleEvent()))
}
