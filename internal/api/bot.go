package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	app "resistor-bot/internal/application"
	"resistor-bot/internal/container"
	"resistor-bot/internal/domain/entity"
)

var errPhotoTooLarge = errors.New("photo is too large")

const (
	callbackMode = "mode:"
	callbackLang = "lang:"
)

// Options настройки бота
type Options struct {
	AdminID        int64         // получает /stats; 0 — команда отключена
	MaxPhotoSize   int64         // максимальный размер скачиваемого фото, байт
	RequestTimeout time.Duration // таймаут обработки одного сообщения
}

// stats счётчики обработанных запросов
type stats struct {
	texts  atomic.Int64
	photos atomic.Int64
	failed atomic.Int64
}

// Bot представляет Telegram-бота
type Bot struct {
	api    *tgbotapi.BotAPI
	users  *app.UserService
	values *app.ResistorService
	photos *app.PhotoService
	opts   Options
	client *http.Client
	log    *zap.Logger
	stats  stats
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container, opts Options, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:    api,
		users:  c.UserService,
		values: c.ResistorService,
		photos: c.PhotoService,
		opts:   opts,
		client: &http.Client{Timeout: opts.RequestTimeout},
		log:    log,
	}, nil
}

// Run запускает основной цикл обработки сообщений до отмены контекста
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if b.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.opts.RequestTimeout)
		defer cancel()
	}

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		b.log.Error("get user", zap.Int64("user_id", msg.From.ID), zap.Error(err))
		b.sendMessage(msg.Chat.ID, textsRU.InternalError)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	if msg.Text != "" {
		b.handleText(msg, user)
		return
	}

	b.sendMessage(msg.Chat.ID, textsFor(user.Language).ErrConversion)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	t := textsFor(user.Language)

	switch msg.Command() {
	case "start":
		if _, err := b.users.Reset(ctx, user.ID, user.ChatID); err != nil {
			b.log.Error("reset user", zap.Int64("user_id", user.ID), zap.Error(err))
		}
		b.sendMenu(msg.Chat.ID, user.Language, t.Start)

	case "help":
		b.sendMessage(msg.Chat.ID, t.Help)

	case "auto":
		b.switchMode(ctx, msg.Chat.ID, user, entity.ModeAuto)
	case "throughhole":
		b.switchMode(ctx, msg.Chat.ID, user, entity.ModeThroughHole)
	case "smd":
		b.switchMode(ctx, msg.Chat.ID, user, entity.ModeSMD)
	case "photo":
		b.switchMode(ctx, msg.Chat.ID, user, entity.ModePhoto)

	case "lang":
		lang := entity.ParseLanguage(strings.TrimSpace(msg.CommandArguments()))
		if msg.CommandArguments() == "" {
			lang = otherLanguage(user.Language)
		}
		b.switchLanguage(ctx, msg.Chat.ID, user, lang)

	case "stats":
		if b.opts.AdminID == 0 || user.ID != b.opts.AdminID {
			b.sendMessage(msg.Chat.ID, t.Forbidden)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("texts: %d\nphotos: %d\nfailed: %d",
			b.stats.texts.Load(), b.stats.photos.Load(), b.stats.failed.Load()))

	default:
		b.sendMessage(msg.Chat.ID, t.UnknownCommand)
	}
}

// handleCallback обрабатывает нажатия кнопок меню
func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if _, err := b.api.Request(tgbotapi.NewCallback(q.ID, "")); err != nil {
		b.log.Warn("answer callback", zap.Error(err))
	}
	if q.Message == nil || q.From == nil {
		return
	}

	user, err := b.users.Get(ctx, q.From.ID, q.Message.Chat.ID)
	if err != nil {
		b.log.Error("get user", zap.Int64("user_id", q.From.ID), zap.Error(err))
		return
	}

	switch {
	case strings.HasPrefix(q.Data, callbackMode):
		mode := entity.UserMode(strings.TrimPrefix(q.Data, callbackMode))
		if !mode.Valid() {
			b.log.Warn("unknown mode in callback", zap.String("data", q.Data))
			return
		}
		b.switchMode(ctx, q.Message.Chat.ID, user, mode)

	case strings.HasPrefix(q.Data, callbackLang):
		b.switchLanguage(ctx, q.Message.Chat.ID, user, entity.ParseLanguage(strings.TrimPrefix(q.Data, callbackLang)))
	}
}

func (b *Bot) switchMode(ctx context.Context, chatID int64, user *entity.User, mode entity.UserMode) {
	t := textsFor(user.Language)
	if _, err := b.users.SetMode(ctx, user.ID, chatID, mode); err != nil {
		b.log.Error("set mode", zap.Int64("user_id", user.ID), zap.String("mode", string(mode)), zap.Error(err))
		b.sendMessage(chatID, t.InternalError)
		return
	}

	var text string
	switch mode {
	case entity.ModeThroughHole:
		text = t.ModeThroughHole
	case entity.ModeSMD:
		text = t.ModeSMD
	case entity.ModePhoto:
		text = t.ModePhoto
	default:
		text = t.ModeAuto
	}
	b.sendMessage(chatID, text)
}

func (b *Bot) switchLanguage(ctx context.Context, chatID int64, user *entity.User, lang entity.Language) {
	updated, err := b.users.SetLanguage(ctx, user.ID, chatID, lang)
	if err != nil {
		b.log.Error("set language", zap.Int64("user_id", user.ID), zap.Error(err))
		b.sendMessage(chatID, textsFor(user.Language).InternalError)
		return
	}
	b.sendMenu(chatID, updated.Language, textsFor(updated.Language).LangChanged)
}

func otherLanguage(lang entity.Language) entity.Language {
	if lang == entity.LangEN {
		return entity.LangRU
	}
	return entity.LangEN
}

// handleText расшифровывает цвета, SMD-код или номинал
func (b *Bot) handleText(msg *tgbotapi.Message, user *entity.User) {
	b.stats.texts.Add(1)

	out := b.values.Handle(user.Mode, msg.Text)
	if out.Kind == app.OutcomeFailed {
		b.stats.failed.Add(1)
	}
	if out.Kind == app.OutcomeBandsDecoded {
		b.log.Debug("bands decoded",
			zap.Int64("user_id", user.ID),
			zap.String("layout", layoutName(out.Bands)),
			zap.Strings("bands", out.Bands.Names()))
	}

	b.sendMessage(msg.Chat.ID, formatOutcome(textsFor(user.Language), out))
}

// handlePhoto распознаёт резистор на фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	t := textsFor(user.Language)
	b.stats.photos.Add(1)

	b.sendMessage(msg.Chat.ID, t.Processing)

	photo, ok := pickPhoto(msg.Photo, b.opts.MaxPhotoSize)
	if !ok {
		b.stats.failed.Add(1)
		b.sendMessage(msg.Chat.ID, t.PhotoTooLarge)
		return
	}

	imageData, err := b.downloadFile(ctx, photo.FileID)
	if err != nil {
		b.stats.failed.Add(1)
		b.log.Error("download photo", zap.Int64("user_id", user.ID), zap.Error(err))
		b.sendMessage(msg.Chat.ID, formatPhotoError(t, err))
		return
	}

	out, err := b.photos.Recognize(ctx, imageData)
	if err != nil {
		b.stats.failed.Add(1)
		b.log.Info("photo not recognized", zap.Int64("user_id", user.ID), zap.Error(err))
		b.sendMessage(msg.Chat.ID, formatPhotoError(t, err))
		return
	}

	b.log.Info("photo recognized",
		zap.Int64("user_id", user.ID),
		zap.String("method", string(out.Method)),
		zap.Strings("bands", out.Bands.Names()))

	caption := formatPhoto(t, out)
	if len(out.Highlighted) > 0 {
		b.sendPhoto(msg.Chat.ID, out.Highlighted, caption)
		return
	}
	b.sendMessage(msg.Chat.ID, caption)
}

// pickPhoto выбирает самое крупное фото, которое укладывается в лимит.
// Telegram присылает размеры по возрастанию.
func pickPhoto(sizes []tgbotapi.PhotoSize, limit int64) (tgbotapi.PhotoSize, bool) {
	for i := len(sizes) - 1; i >= 0; i-- {
		if limit <= 0 || int64(sizes[i].FileSize) <= limit {
			return sizes[i], true
		}
	}
	return tgbotapi.PhotoSize{}, false
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	return readLimited(resp.Body, b.opts.MaxPhotoSize)
}

// readLimited читает не больше limit байт; limit <= 0 снимает ограничение
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}

	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, errPhotoTooLarge
	}
	return data, nil
}

// menu клавиатура выбора режима и языка
func menu(lang entity.Language) tgbotapi.InlineKeyboardMarkup {
	t := textsFor(lang)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.BtnAuto, callbackMode+string(entity.ModeAuto)),
			tgbotapi.NewInlineKeyboardButtonData(t.BtnThroughHole, callbackMode+string(entity.ModeThroughHole)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.BtnSMD, callbackMode+string(entity.ModeSMD)),
			tgbotapi.NewInlineKeyboardButtonData(t.BtnPhoto, callbackMode+string(entity.ModePhoto)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.BtnLang, callbackLang+string(otherLanguage(lang))),
		),
	)
}

// sendMenu отправляет сообщение с клавиатурой режимов
func (b *Bot) sendMenu(chatID int64, lang entity.Language, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = menu(lang)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send message", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// sendPhoto отправляет JPEG с подписью
func (b *Bot) sendPhoto(chatID int64, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "bands.jpg", Bytes: data})
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.api.Send(photo); err != nil {
		b.log.Error("send photo", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}
