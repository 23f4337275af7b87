package translate

import (
	"context"
	"fmt"
	"log"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Language codes with dictionary coverage
const (
	LangEnglish = "en"
	LangRussian = "ru"
)

// staticDictionary holds the built-in en-ru word pairs.
var staticDictionary = map[string]string{
	"hello":     "привет",
	"world":     "мир",
	"cat":       "кошка",
	"dog":       "собака",
	"house":     "дом",
	"water":     "вода",
	"book":      "книга",
	"friend":    "друг",
	"good":      "хороший",
	"morning":   "утро",
	"evening":   "вечер",
	"thanks":    "спасибо",
	"please":    "пожалуйста",
	"yes":       "да",
	"no":        "нет",
	"translate": "переводить",
	"language":  "язык",
	"word":      "слово",
	"time":      "время",
	"day":       "день",
}

// StaticTranslator is an in-memory Translator backed by a small fixed
// dictionary. It keeps the UI fully functional without a network backend;
// words outside the dictionary pass through unchanged.
type StaticTranslator struct{}

// NewStaticTranslator creates the built-in dictionary translator
func NewStaticTranslator() *StaticTranslator {
	return &StaticTranslator{}
}

// Translate translates text word by word using the built-in dictionary.
// Only the en-ru pair has dictionary coverage; any other pair echoes the
// input so the caller still gets a renderable result.
func (t *StaticTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, fmt.Errorf("nothing to translate")
	}

	result := &Result{
		SourceText: trimmed,
		SourceLang: sourceLang,
		TargetLang: targetLang,
	}

	if sourceLang != LangEnglish || targetLang != LangRussian {
		log.Printf("No dictionary for %s-%s, echoing input", sourceLang, targetLang)
		result.Translated = trimmed
		return result, nil
	}

	words := strings.Fields(trimmed)
	translated := make([]string, 0, len(words))
	for _, word := range words {
		translated = append(translated, translateWord(word))
	}
	result.Translated = strings.Join(translated, " ")
	return result, nil
}

// translateWord looks up a single word, keeping surrounding punctuation and
// the capitalization of the first letter.
func translateWord(word string) string {
	core := strings.TrimFunc(word, unicode.IsPunct)
	if core == "" {
		return word
	}

	match, ok := staticDictionary[strings.ToLower(core)]
	if !ok {
		return word
	}

	if first, _ := utf8.DecodeRuneInString(core); unicode.IsUpper(first) {
		match = capitalize(match)
	}
	return strings.Replace(word, core, match, 1)
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
