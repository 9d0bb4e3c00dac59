package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "path" or "draft").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var messages = map[string]map[string]string{
	"en": {
		"unresolvable_node": "no adapter for node",
		"unsupported_draft": "unsupported draft version",
		"adapter_failed":    "adapter failed",
		"invalid_adapter":   "invalid adapter registration",
	},
	"ja": {
		"unresolvable_node": "ノードに対応するアダプタがありません",
		"unsupported_draft": "サポートされていないドラフトバージョンです",
		"adapter_failed":    "アダプタの実行に失敗しました",
		"invalid_adapter":   "アダプタの登録が不正です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := messages[t.lang][code]
	if !ok {
		return code
	}
	if v := data["detail"]; v != "" {
		return msg + " (" + v + ")"
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	lang = strings.ToLower(lang)
	if _, ok := messages[lang]; !ok {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
