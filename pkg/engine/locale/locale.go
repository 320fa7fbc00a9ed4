// Package locale loads the embedded message catalogs into gotext so that
// gotext.Get resolves translation keys anywhere in the program.
package locale

import (
	"embed"
	"fmt"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

//go:embed po/*.po
var catalogs embed.FS

// Supported lists the languages a catalog exists for. The first is the
// fallback.
var Supported = []language.Tag{language.English, language.German}

var matcher = language.NewMatcher(Supported)

// Match returns the supported language closest to tag.
func Match(tag language.Tag) language.Tag {
	_, i, _ := matcher.Match(tag)
	return Supported[i]
}

// Setup installs the catalog closest to tag as gotext's global storage and
// returns the language chosen.
func Setup(tag language.Tag) (language.Tag, error) {
	chosen := Match(tag)
	base, _ := chosen.Base()
	name := base.String()

	data, err := catalogs.ReadFile("po/" + name + ".po")
	if err != nil {
		return chosen, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	po := gotext.NewPo()
	po.Parse(data)

	l := gotext.NewLocale("", name)
	l.AddTranslator("default", po)
	gotext.SetStorage(l)

	return chosen, nil
}
