// Package bot relays patient questions from the public Telegram bot to the
// doctors' operator channel. It keeps no state between messages; a relayed
// question carries everything the doctor needs to answer out of band.
package bot

import "strings"

// doctorKeywords route a message to the doctor channel instead of the
// article-search reply. Matching is a lowercase substring check, so
// «лікар» also catches «запитати лікаря» on its own.
var doctorKeywords = []string{
	"запитати лікаря",
	"лікар",
	"питання",
}

// Matcher classifies incoming patient messages.
type Matcher struct{}

// WantsDoctor reports whether the text asks to reach the doctor.
func (Matcher) WantsDoctor(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range doctorKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
