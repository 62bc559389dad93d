package finance

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// shortMonths holds the abbreviated month names per supported language.
var shortMonths = map[language.Tag][12]string{
	language.English: {"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	language.Polish:  {"sty", "lut", "mar", "kwi", "maj", "cze", "lip", "sie", "wrz", "paź", "lis", "gru"},
	language.German:  {"Jan", "Feb", "Mär", "Apr", "Mai", "Jun", "Jul", "Aug", "Sep", "Okt", "Nov", "Dez"},
}

var supported = []language.Tag{language.English, language.Polish, language.German}

var matcher = language.NewMatcher(supported)

// Labeler formats bucket labels for one language.
type Labeler struct {
	tag    language.Tag
	months [12]string
}

// NewLabeler returns a Labeler for the best supported match of locale.
// Unknown or unparseable locales fall back to English.
func NewLabeler(locale string) Labeler {
	tag := language.English

	if parsed, err := language.Parse(locale); err == nil {
		_, index, confidence := matcher.Match(parsed)
		if confidence != language.No {
			tag = supported[index]
		}
	}

	return Labeler{tag: tag, months: shortMonths[tag]}
}

// Language returns the language the labels are formatted in.
func (l Labeler) Language() language.Tag {
	return l.tag
}

// Month returns the label for a month bucket, e.g. "Mar 2024".
func (l Labeler) Month(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", l.months[month-1], year)
}

// Day returns the label for a day bucket, e.g. "05 Mar".
func (l Labeler) Day(month time.Month, day int) string {
	return fmt.Sprintf("%02d %s", day, l.months[month-1])
}
