package translate

import (
	"context"
	"testing"
)

func TestTranslateKnownWords(t *testing.T) {
	translator := NewStaticTranslator()

	result, err := translator.Translate(context.Background(), "hello world", LangEnglish, LangRussian)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Translated != "привет мир" {
		t.Errorf("Expected 'привет мир', got '%s'", result.Translated)
	}

	if result.SourceText != "hello world" {
		t.Errorf("Expected source text to be preserved, got '%s'", result.SourceText)
	}

	if result.SourceLang != LangEnglish || result.TargetLang != LangRussian {
		t.Errorf("Expected language pair en-ru, got %s-%s", result.SourceLang, result.TargetLang)
	}
}

func TestTranslatePreservesUnknownWords(t *testing.T) {
	translator := NewStaticTranslator()

	result, err := translator.Translate(context.Background(), "hello quasar", LangEnglish, LangRussian)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Translated != "привет quasar" {
		t.Errorf("Expected unknown word to pass through, got '%s'", result.Translated)
	}
}

func TestTranslateCapitalizationAndPunctuation(t *testing.T) {
	translator := NewStaticTranslator()

	tests := []struct {
		input    string
		expected string
	}{
		{"Hello", "Привет"},
		{"hello!", "привет!"},
		{"Hello, world!", "Привет, мир!"},
		{"GOOD morning", "Хороший утро"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := translator.Translate(context.Background(), tt.input, LangEnglish, LangRussian)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if result.Translated != tt.expected {
				t.Errorf("Translate(%q) = %q, expected %q", tt.input, result.Translated, tt.expected)
			}
		})
	}
}

func TestTranslateEchoesUnsupportedPair(t *testing.T) {
	translator := NewStaticTranslator()

	result, err := translator.Translate(context.Background(), "hello world", "de", "es")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.Translated != "hello world" {
		t.Errorf("Expected unsupported pair to echo input, got '%s'", result.Translated)
	}
}

func TestTranslateRejectsEmptyInput(t *testing.T) {
	translator := NewStaticTranslator()

	_, err := translator.Translate(context.Background(), "   ", LangEnglish, LangRussian)
	if err == nil {
		t.Error("Expected error for blank input, got nil")
	}
}

func TestTranslateHonorsCancelledContext(t *testing.T) {
	translator := NewStaticTranslator()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := translator.Translate(ctx, "hello", LangEnglish, LangRussian)
	if err == nil {
		t.Error("Expected error for cancelled context, got nil")
	}
}
