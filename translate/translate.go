// Package translate formats the error messages of bftw for the user's
// locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bftw: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats a diagnostic. The key is the en-US Sprintf() format used as
// the message identifier, for example "line %d column %d %v" for the
// location of a bracket error.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
