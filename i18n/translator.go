package i18n

import "strings"

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "expected", "got" or "want").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	var msg string
	switch t.lang {
	case "ja":
		switch code {
		case "parse_error":
			msg = "解析エラー"
		case "not_object":
			msg = "オブジェクトではありません"
		case "invalid_type":
			msg = "型が不正です（期待値: {want}）"
		case "required":
			msg = "必須プロパティが不足しています"
		case "invalid_length":
			msg = "要素数が不正です（期待値: {want}、実際: {got}）"
		case "duplicate_key":
			msg = "キーが重複しています"
		case "truncated":
			msg = "入力サイズの上限を超えました"
		case "version_mismatch":
			msg = "c3t のバージョンが不正です（期待値: {expected}、実際: {got}）"
		case "write_failed":
			msg = "{path} へ書き込めません"
		}
	default: // "en"
		switch code {
		case "parse_error":
			msg = "parse error"
		case "not_object":
			msg = "not an object"
		case "invalid_type":
			msg = "invalid type, want {want}"
		case "required":
			msg = "required property missing"
		case "invalid_length":
			msg = "invalid length, want {want} got {got}"
		case "duplicate_key":
			msg = "duplicate key"
		case "truncated":
			msg = "input size limit exceeded"
		case "version_mismatch":
			msg = "bad c3t version {got}, {expected} expected"
		case "write_failed":
			msg = "unable to write {path}"
		}
	}
	if msg == "" {
		return code
	}
	return expand(msg, data)
}

// expand substitutes {key} placeholders. Placeholders without data are removed.
func expand(msg string, data map[string]string) string {
	if !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	msg = strings.NewReplacer(pairs...).Replace(msg)
	for {
		i := strings.IndexByte(msg, '{')
		if i < 0 {
			return msg
		}
		j := strings.IndexByte(msg[i:], '}')
		if j < 0 {
			return msg
		}
		msg = msg[:i] + msg[i+j+1:]
	}
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
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
