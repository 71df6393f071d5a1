package language

import (
	"regexp"

	"github.com/pemistahl/lingua-go"
)

// DefaultLanguage is used when detection fails or the input is too short.
const DefaultLanguage = "en"

const (
	// minDetectableLength is the minimum input length for statistical detection.
	minDetectableLength = 3

	// minHistoryLength is the minimum summary length considered a usable
	// history-language signal.
	minHistoryLength = 10

	// minSwitchLength is the minimum current-message length for a language
	// switch away from the history language to be honored.
	minSwitchLength = 20
)

// supportedLanguages maps language codes to human-readable names.
var supportedLanguages = map[string]string{
	"en":    "English",
	"zh-cn": "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
	"ja":    "Japanese",
	"ko":    "Korean",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"ar":    "Arabic",
	"hi":    "Hindi",
	"th":    "Thai",
	"vi":    "Vietnamese",
}

// detectableLanguages restricts the statistical classifier to the supported set.
// Traditional Chinese is only reachable via the explicit language parameter.
var detectableLanguages = []lingua.Language{
	lingua.English,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Korean,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Russian,
	lingua.Arabic,
	lingua.Hindi,
	lingua.Thai,
	lingua.Vietnamese,
}

// isoToCode maps ISO 639-1 codes reported by the classifier to supported codes.
var isoToCode = map[string]string{
	"EN": "en",
	"ZH": "zh-cn",
	"JA": "ja",
	"KO": "ko",
	"ES": "es",
	"FR": "fr",
	"DE": "de",
	"IT": "it",
	"PT": "pt",
	"RU": "ru",
	"AR": "ar",
	"HI": "hi",
	"TH": "th",
	"VI": "vi",
}

// languageInstructions are the per-language response directives for the model.
var languageInstructions = map[string]string{
	"en":    "Please respond in English.",
	"zh-cn": "请用中文简体回复。",
	"zh-tw": "請用繁體中文回覆。",
	"ja":    "日本語で回答してください。",
	"ko":    "한국어로 답변해 주세요.",
	"es":    "Por favor responde en español.",
	"fr":    "Veuillez répondre en français.",
	"de":    "Bitte antworten Sie auf Deutsch.",
	"it":    "Si prega di rispondere in italiano.",
	"pt":    "Por favor, responda em português.",
	"ru":    "Пожалуйста, ответьте на русском языке.",
	"ar":    "يرجى الرد باللغة العربية.",
	"hi":    "कृपया हिंदी में उत्तर दें।",
	"th":    "กรุณาตอบเป็นภาษาไทย",
	"vi":    "Vui lòng trả lời bằng tiếng Việt.",
}

// cjkPattern matches CJK Unified Ideographs. Short Chinese spans are
// under-detected by the statistical classifier, so their presence forces zh-cn.
var cjkPattern = regexp.MustCompile(`[\x{4e00}-\x{9fff}]`)

// switchPatterns are per-language lexical cues used to confirm that a
// mid-conversation language change is deliberate and not a stray phrase.
var switchPatterns = map[string][]*regexp.Regexp{
	"en": {
		regexp.MustCompile(`(?i)\b(please|thank you|hello|hi|how|what|where|when|why|can you|could you)\b`),
		regexp.MustCompile(`(?i)\b(dog|cat|pet|help|need|want|like|love)\b`),
		regexp.MustCompile(`(?i)\b(is|are|was|were|have|has|had|will|would|should|could)\b`),
	},
	"zh-cn": {
		regexp.MustCompile(`[请谢谢你好怎么什么哪里为什么]`),
		regexp.MustCompile(`[狗猫咪宠物帮助需要想要喜欢爱]`),
		regexp.MustCompile(`[是不有没会应该可以]`),
	},
}
