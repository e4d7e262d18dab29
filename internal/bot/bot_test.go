package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherRecognizesDoctorRequests(t *testing.T) {
	m := Matcher{}

	for _, text := range []string{
		"запитати лікаря",
		"Хочу ЗАПИТАТИ ЛІКАРЯ про симптоми",
		"чи може лікар подивитись знімок",
		"маю питання щодо діагнозу",
	} {
		assert.True(t, m.WantsDoctor(text), text)
	}

	for _, text := range []string{
		"симптоми раку",
		"діагностика",
		"привіт",
	} {
		assert.False(t, m.WantsDoctor(text), text)
	}
}

type fakeNotifier struct {
	chatID int64
	texts  []string
	err    error
}

func (f *fakeNotifier) Send(chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.chatID = chatID
	f.texts = append(f.texts, text)
	return nil
}

func TestForwardQuestionFormatsOperatorMessage(t *testing.T) {
	notifier := &fakeNotifier{}
	relay := NewRelay(notifier, -100123)
	relay.now = func() time.Time { return time.Date(2025, time.June, 1, 12, 30, 0, 0, time.UTC) }

	patient := Patient{ID: 42, FirstName: "Ольга", LastName: "Петренко", Username: "olha_p"}
	id, err := relay.ForwardQuestion(patient, "Чи потрібна біопсія?")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.Len(t, notifier.texts, 1)
	msg := notifier.texts[0]
	assert.Equal(t, int64(-100123), notifier.chatID)
	assert.Contains(t, msg, "НОВЕ ПИТАННЯ ВІД ПАЦІЄНТА")
	assert.Contains(t, msg, id)
	assert.Contains(t, msg, "🆔 ID: 42")
	assert.Contains(t, msg, "Ім'я: Ольга Петренко")
	assert.Contains(t, msg, "Username: @olha_p")
	assert.Contains(t, msg, "Чи потрібна біопсія?")
	assert.Contains(t, msg, "Очікує відповіді")
}

func TestForwardQuestionOmitsEmptyIdentityFields(t *testing.T) {
	notifier := &fakeNotifier{}
	relay := NewRelay(notifier, -100123)

	_, err := relay.ForwardQuestion(Patient{ID: 7}, "питання")
	require.NoError(t, err)

	msg := notifier.texts[0]
	assert.NotContains(t, msg, "Ім'я:")
	assert.NotContains(t, msg, "Username:")
}

func TestForwardQuestionIDsAreUnique(t *testing.T) {
	notifier := &fakeNotifier{}
	relay := NewRelay(notifier, 1)

	a, err := relay.ForwardQuestion(Patient{ID: 1}, "перше")
	require.NoError(t, err)
	b, err := relay.ForwardQuestion(Patient{ID: 1}, "друге")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestForwardQuestionPropagatesSendError(t *testing.T) {
	relay := NewRelay(&fakeNotifier{err: errors.New("telegram: bad gateway")}, 1)

	_, err := relay.ForwardQuestion(Patient{ID: 1}, "питання")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "forwarding question")
}

func TestCannedRepliesIncludeSiteURL(t *testing.T) {
	site := "https://rus-production.up.railway.app"
	assert.Contains(t, patientHelp(site), site)
	assert.Contains(t, searchReply(site), site)
}
