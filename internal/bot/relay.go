package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Patient identifies the Telegram user who asked a question.
type Patient struct {
	ID        int64
	FirstName string
	LastName  string
	Username  string
}

// Notifier delivers a formatted message to a chat. The production
// implementation wraps the Telegram client; tests substitute a fake.
type Notifier interface {
	Send(chatID int64, text string) error
}

// Relay forwards patient questions to the operator channel.
type Relay struct {
	notifier Notifier
	chatID   int64
	now      func() time.Time
}

// NewRelay builds a relay targeting the operator chat.
func NewRelay(notifier Notifier, chatID int64) *Relay {
	return &Relay{notifier: notifier, chatID: chatID, now: time.Now}
}

// kyivLocation is best-effort; UTC keeps timestamps consistent when the
// container image ships without tzdata.
var kyivLocation = func() *time.Location {
	loc, err := time.LoadLocation("Europe/Kyiv")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// ForwardQuestion formats and sends one patient question to the operator
// channel. The returned id is only a correlation handle for the doctors;
// nothing is stored under it.
func (r *Relay) ForwardQuestion(patient Patient, question string) (string, error) {
	questionID := uuid.NewString()
	msg := formatQuestion(questionID, r.now().In(kyivLocation), patient, question)

	if err := r.notifier.Send(r.chatID, msg); err != nil {
		return "", fmt.Errorf("forwarding question %s: %w", questionID, err)
	}
	return questionID, nil
}

func formatQuestion(id string, at time.Time, patient Patient, question string) string {
	var b strings.Builder

	b.WriteString("❓ *НОВЕ ПИТАННЯ ВІД ПАЦІЄНТА*\n\n")
	fmt.Fprintf(&b, "🆔 *ID питання:* %s\n", id)
	fmt.Fprintf(&b, "📅 *Дата:* %s\n\n", at.Format("02.01.2006, 15:04:05"))
	b.WriteString("👤 *Пацієнт:*\n")
	b.WriteString(formatPatient(patient))
	fmt.Fprintf(&b, "\n❓ *Питання:*\n%s\n\n", question)
	b.WriteString("📊 *Статус:* Очікує відповіді\n\n")
	b.WriteString("💬 *Для відповіді:* Відповідь на це повідомлення")

	return b.String()
}

func formatPatient(p Patient) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🆔 ID: %d\n", p.ID)
	if p.FirstName != "" {
		fmt.Fprintf(&b, "👤 Ім'я: %s", p.FirstName)
		if p.LastName != "" {
			fmt.Fprintf(&b, " %s", p.LastName)
		}
		b.WriteString("\n")
	}
	if p.Username != "" {
		fmt.Fprintf(&b, "📱 Username: @%s\n", p.Username)
	}
	return b.String()
}
