package reporter

import (
	"fmt"
	"html"

	"vacancy-stats/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// telegram rejects longer messages
const maxMessageLen = 4096

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramReporter struct {
	bot    sender
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for <pre> blocks
	_, err := t.bot.Send(msg)
	return err
}

// SendTable posts a rendered table as a preformatted block.
func (t *TelegramReporter) SendTable(table string) error {
	return t.SendMessage(formatTable(table))
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>Vacancy stats error</b>:\n%s", html.EscapeString(errReq.Error()))
	return t.SendMessage(text)
}

func formatTable(table string) string {
	const open, closing = "<pre>", "</pre>"
	escaped := html.EscapeString(table)
	limit := maxMessageLen - len(open) - len(closing)
	if len(escaped) > limit {
		escaped = truncateRunes(escaped, limit)
	}
	return open + escaped + closing
}

// truncateRunes cuts s to at most n bytes without splitting a rune or an
// HTML entity.
func truncateRunes(s string, n int) string {
	cut := 0
	for i := range s {
		if i > n {
			break
		}
		cut = i
	}
	for j := cut - 1; j >= 0 && j > cut-8; j-- {
		if s[j] == ';' {
			break
		}
		if s[j] == '&' {
			cut = j
			break
		}
	}
	return s[:cut]
}
