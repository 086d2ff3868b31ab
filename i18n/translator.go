package i18n

// Translator retrieves localized messages for decode failure codes.
// data provides optional metadata to embed in the message (for example,
// "length" or "tag").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "expected_boolean":
			return "真偽値が必要です"
		case "expected_number":
			return "数値が必要です"
		case "expected_integer":
			return "整数が必要です"
		case "expected_string":
			return "文字列が必要です"
		case "expected_array":
			return "配列が必要です"
		case "expected_array_length":
			return "長さ " + data["length"] + " の配列が必要です"
		case "expected_object":
			return "オブジェクトが必要です"
		case "expected_type":
			return data["type"] + " 型の値が必要です"
		case "expected_case":
			return data["field"] + " が " + data["tag"] + " ではありません"
		case "no_valid_choices":
			return "有効な選択肢がありません"
		case "expected_rfc3339":
			return "RFC3339 形式のタイムスタンプが必要です"
		}
	default: // "en"
		switch code {
		case "expected_boolean":
			return "Expected a boolean"
		case "expected_number":
			return "Expected a number"
		case "expected_integer":
			return "Expected an integer"
		case "expected_string":
			return "Expected a string"
		case "expected_array":
			return "Expected an array"
		case "expected_array_length":
			return "Expected an array of length " + data["length"]
		case "expected_object":
			return "Expected an object"
		case "expected_type":
			return "Expected a value of type " + data["type"]
		case "expected_case":
			return "Expected " + data["field"] + ": " + data["tag"]
		case "no_valid_choices":
			return "No valid choices"
		case "expected_rfc3339":
			return "Expected an RFC3339 timestamp"
		}
	}
	return code
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
