package normalize

import (
	"regexp"
	"strings"
)

// fuzzyRule правило замены нечеткого слова на каноничное время
type fuzzyRule struct {
	word        string
	replacement string
	wordRe      *regexp.Regexp // слово целиком
	guardRe     *regexp.Regexp // слово, за которым дальше в строке идет цифра
}

func newFuzzyRule(word, replacement string) fuzzyRule {
	quoted := regexp.QuoteMeta(word)
	return fuzzyRule{
		word:        word,
		replacement: replacement,
		wordRe:      regexp.MustCompile(`\b` + quoted + `\b`),
		guardRe:     regexp.MustCompile(quoted + `.*\d`),
	}
}

// Порядок правил фиксирован: замены применяются последовательно,
// и каждая замена видит результат предыдущей
var fuzzyRules = []fuzzyRule{
	newFuzzyRule("morning", "10 AM"),
	newFuzzyRule("afternoon", "2 PM"),
	newFuzzyRule("evening", "6 PM"),
	newFuzzyRule("night", "8 PM"),
	newFuzzyRule("noon", "12 PM"),
	newFuzzyRule("midnight", "12 AM"),
}

const tonightReplacement = "today at 6 PM"

// Normalize rewrites informal time words into canonical clock-time phrases
// so the downstream parser sees an explicit time. The input is expected to be
// lowercased. Pure text transform, idempotent over its own output.
//
// A fuzzy word is replaced only when no digit appears after it anywhere in
// the rest of the string: "morning at 9" is left for the parser as is.
func Normalize(message string) string {
	// "tonight" заменяется первым, до пословных правил: иначе guard для
	// "night" сработал бы на цифре из "6 PM"
	message = strings.ReplaceAll(message, "tonight", tonightReplacement)

	for _, rule := range fuzzyRules {
		if rule.wordRe.MatchString(message) && !rule.guardRe.MatchString(message) {
			message = rule.wordRe.ReplaceAllLiteralString(message, "at "+rule.replacement)
		}
	}

	return message
}
