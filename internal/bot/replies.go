package bot

import "fmt"

// Canned replies for the patient-facing bot. The search reply does not
// actually search; it points at the site and offers the doctor escalation.

const patientWelcome = `🏥 *Вітаємо в медичному боті Руслани Москаленко!*

Я допоможу вам знайти корисну інформацію про:
• Рак легень та його діагностику
• Сучасні методи лікування
• Профілактику захворювань
• Хірургічні процедури
• Реабілітацію після лікування

🔍 *Як користуватися:*
• Напишіть ключові слова для пошуку
• Якщо не знайшли потрібну інформацію - напишіть "запитати лікаря"

_Лікар-онколог Руслана Москаленко спеціалізується на торакальній хірургії та онкології легень._`

const patientHelpFormat = `📖 *Довідка по боту*

🔍 *Пошук статей:*
• Напишіть будь-яке питання або ключові слова
• Наприклад: "симптоми раку", "діагностика", "лікування"

❓ *Якщо не знайшли відповідь:*
• Напишіть "запитати лікаря"
• Ваше питання буде передано доктору
• Ви отримаєте персональну відповідь

🌐 *Повна інформація на сайті:*
%s`

const questionForwarded = "✅ *Ваше питання відправлено лікарю!*\n\n⏰ Ви отримаєте відповідь протягом 24-48 годин."

const questionNotForwarded = "⚠️ Не вдалося передати питання. Спробуйте, будь ласка, пізніше."

const searchReplyFormat = `🔍 *Шукаю інформацію...*

📝 За вашим запитом знайдено кілька статей. Перегляньте їх на сайті: %s

❓ *Не знайшли потрібну інформацію?* Напишіть "запитати лікаря"`

const operatorWelcome = `👩‍⚕️ *Бот для питань до лікаря*

Цей бот призначений для отримання питань від пацієнтів та їх передачі лікарю Руслані Москаленко.

🔗 *Пов'язаний з основним ботом:* @moskalenko_helper_bot`

func patientHelp(siteURL string) string {
	return fmt.Sprintf(patientHelpFormat, siteURL)
}

func searchReply(siteURL string) string {
	return fmt.Sprintf(searchReplyFormat, siteURL)
}
