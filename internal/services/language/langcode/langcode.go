// Package langcode maps wire language codes to backend and display forms.
package langcode

import (
	"golang.org/x/text/language"

	languagepb "github.com/itsHabib/grpc-translate-service/api/gen/go/language"
)

type entry struct {
	tag     language.Tag
	speech  string
	display string
}

// Speech codes are the locale variants accepted by speech backends. The
// translate form is the bare ISO 639-1 code derived from the tag.
var entries = map[languagepb.LanguageCode]entry{
	languagepb.LanguageCode_ZH: {tag: language.Chinese, speech: "cmn-CN", display: "Mandarin"},
	languagepb.LanguageCode_EN: {tag: language.English, speech: "en-US", display: "English"},
	languagepb.LanguageCode_FR: {tag: language.French, speech: "fr-FR", display: "French"},
	languagepb.LanguageCode_DE: {tag: language.German, speech: "de-DE", display: "German"},
	languagepb.LanguageCode_ES: {tag: language.Spanish, speech: "es-ES", display: "Spanish"},
	languagepb.LanguageCode_PT: {tag: language.Portuguese, speech: "pt-PT", display: "Portuguese"},
}

// menuOrder lists supported codes in the order interactive menus present them.
var menuOrder = []languagepb.LanguageCode{
	languagepb.LanguageCode_ZH,
	languagepb.LanguageCode_EN,
	languagepb.LanguageCode_FR,
	languagepb.LanguageCode_DE,
	languagepb.LanguageCode_ES,
	languagepb.LanguageCode_PT,
}

// Known reports whether code names a language this service supports.
// UNKNOWN and out-of-range values are not known.
func Known(code languagepb.LanguageCode) bool {
	_, ok := entries[code]
	return ok
}

// Tag returns the BCP 47 tag for code.
func Tag(code languagepb.LanguageCode) (language.Tag, bool) {
	e, ok := entries[code]
	if !ok {
		return language.Und, false
	}
	return e.tag, true
}

// TranslateCode returns the ISO 639-1 code sent to translation backends.
func TranslateCode(code languagepb.LanguageCode) (string, bool) {
	e, ok := entries[code]
	if !ok {
		return "", false
	}
	return e.tag.String(), true
}

// SpeechCode returns the locale variant sent to speech backends.
func SpeechCode(code languagepb.LanguageCode) (string, bool) {
	e, ok := entries[code]
	if !ok {
		return "", false
	}
	return e.speech, true
}

// DisplayName returns the label shown in interactive menus. Unknown codes
// render as "Unknown".
func DisplayName(code languagepb.LanguageCode) string {
	e, ok := entries[code]
	if !ok {
		return "Unknown"
	}
	return e.display
}

// MenuOrder lists supported codes in menu presentation order.
func MenuOrder() []languagepb.LanguageCode {
	out := make([]languagepb.LanguageCode, len(menuOrder))
	copy(out, menuOrder)
	return out
}
