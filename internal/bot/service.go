package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ruslanamed/clinic-go/internal/config"
)

// Service runs both bots: the patient-facing search bot and the operator
// bot that posts into the doctor channel.
type Service struct {
	patient  *tgbotapi.BotAPI
	operator *tgbotapi.BotAPI
	matcher  Matcher
	relay    *Relay
	cfg      *config.BotConfig
	logger   *slog.Logger
}

// NewService authenticates both bots against the Telegram API.
func NewService(cfg *config.BotConfig, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}

	patient, err := tgbotapi.NewBotAPI(cfg.PatientBotToken)
	if err != nil {
		return nil, fmt.Errorf("connecting patient bot: %w", err)
	}
	operator, err := tgbotapi.NewBotAPI(cfg.OperatorBotToken)
	if err != nil {
		return nil, fmt.Errorf("connecting operator bot: %w", err)
	}

	logger.Info("bots authorized",
		"patient_bot", patient.Self.UserName,
		"operator_bot", operator.Self.UserName,
		"operator_chat", cfg.OperatorChatID)

	return &Service{
		patient:  patient,
		operator: operator,
		relay:    NewRelay(&telegramNotifier{bot: operator}, cfg.OperatorChatID),
		cfg:      cfg,
		logger:   logger,
	}, nil
}

// Run polls both bots until the context is canceled.
func (s *Service) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		s.poll(ctx, s.patient, s.handlePatientMessage)
	}()
	go func() {
		defer wg.Done()
		s.poll(ctx, s.operator, s.handleOperatorMessage)
	}()

	wg.Wait()
	return nil
}

func (s *Service) poll(ctx context.Context, bot *tgbotapi.BotAPI, handle func(*tgbotapi.Message)) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			bot.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.From == nil {
				continue
			}
			handle(update.Message)
		}
	}
}

func (s *Service) handlePatientMessage(msg *tgbotapi.Message) {
	switch msg.Command() {
	case "start":
		s.reply(s.patient, msg.Chat.ID, patientWelcome)
		return
	case "help":
		s.reply(s.patient, msg.Chat.ID, patientHelp(s.cfg.SiteURL))
		return
	}
	if msg.Text == "" {
		return
	}

	if !s.matcher.WantsDoctor(msg.Text) {
		s.reply(s.patient, msg.Chat.ID, searchReply(s.cfg.SiteURL))
		return
	}

	patient := Patient{
		ID:        msg.From.ID,
		FirstName: msg.From.FirstName,
		LastName:  msg.From.LastName,
		Username:  msg.From.UserName,
	}
	questionID, err := s.relay.ForwardQuestion(patient, msg.Text)
	if err != nil {
		s.logger.Error("question relay failed", "patient", patient.ID, "error", err)
		s.reply(s.patient, msg.Chat.ID, questionNotForwarded)
		return
	}

	s.logger.Info("question relayed", "question_id", questionID, "patient", patient.ID)
	s.reply(s.patient, msg.Chat.ID, questionForwarded)
}

func (s *Service) handleOperatorMessage(msg *tgbotapi.Message) {
	if msg.Command() == "start" {
		s.reply(s.operator, msg.Chat.ID, operatorWelcome)
	}
}

func (s *Service) reply(bot *tgbotapi.BotAPI, chatID int64, text string) {
	out := tgbotapi.NewMessage(chatID, text)
	out.ParseMode = tgbotapi.ModeMarkdown
	if _, err := bot.Send(out); err != nil {
		s.logger.Error("reply failed", "chat", chatID, "error", err)
	}
}

// telegramNotifier adapts the Telegram client to the Notifier interface.
type telegramNotifier struct {
	bot *tgbotapi.BotAPI
}

func (n *telegramNotifier) Send(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := n.bot.Send(msg)
	return err
}
