package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"solosync/internal/analyzer"
)

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"dollar sign with separators and cents", "Invoice for $1,250.50 due Friday", 1250.50},
		{"usd suffix without space", "Hi, this is John, need a logo by tomorrow, budget 500usd", 500},
		{"dollars word", "I can pay 500 dollars", 500},
		{"dollar sign", "budget is $500", 500},
		{"uppercase currency", "500 USD max", 500},
		{"plain four digits", "budget 1500", 1500},
		{"grouped millions", "$1,000,000 deal", 1000000},
		{"fraction truncated to two digits", "costs 12.345", 12.34},
		{"single fraction digit ignored", "12.5 dollars", 12},
		{"first match only", "$200 now and $300 later", 200},
		{"broken separator group", "12,34 units", 12},
		{"no digits", "Need a website asap", 0},
		{"empty", "", 0},
		{"amount beyond float64 range", "budget $" + strings.Repeat("9", 400), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, extractBudget(tt.text), 1e-9)
		})
	}
}

func TestExtractBudgetNoDigitsIsZero(t *testing.T) {
	for _, text := range []string{"", "hello", "$", "usd dollars", "one thousand bucks", "?!,."} {
		assert.Equal(t, 0.0, extractBudget(text), text)
	}
}

func TestExtractClient(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"greeting skipped", "Hi, this is John, need a logo by tomorrow, budget 500usd", "John"},
		{"first capitalized word", "Invoice for $1,250.50 due Friday", "Invoice"},
		{"stoplist is case-insensitive", "HELLO Please URGENT Acme needs a site", "Acme"},
		{"pronoun skipped", "I want We to build it for Globex", "Globex"},
		{"punctuation trimmed both ends", "need help from ...Initech!?", "Initech"},
		{"punctuation-only tokens skipped", "... !!! ?? Umbrella", "Umbrella"},
		{"no capitalized words", "need a logo by friday", analyzer.DefaultClient},
		{"only stoplist words", "Hi Hello Hey Please", analyzer.DefaultClient},
		{"empty", "", analyzer.DefaultClient},
		{"non-ascii uppercase", "xin chào Đức", "Đức"},
		{"first qualifying word wins", "Thanks, O'Brien.", "Thanks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractClient(tt.text))
		})
	}
}

func TestClassifyTask(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"logo", "Need a LOGO", "Logo Design"},
		{"logo beats website", "logo and website please", "Logo Design"},
		{"website", "build my website", "Website Development"},
		{"web", "some web work", "Website Development"},
		{"web beats app", "web app", "Website Development"},
		{"app", "an iOS app", "Mobile App Development"},
		{"app substring", "I am happy to pay", "Mobile App Development"},
		{"write", "please write a blog post", "Content Writing"},
		{"content", "Content for newsletter", "Content Writing"},
		{"design", "poster design", "Graphic Design"},
		{"default", "Invoice for $1,250.50 due Friday", analyzer.DefaultTask},
		{"empty", "", analyzer.DefaultTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTask(tt.text))
		})
	}
}

func TestTaskRulesOrder(t *testing.T) {
	labels := make([]string, 0, len(taskRules))
	for _, r := range taskRules {
		labels = append(labels, r.label)
	}
	assert.Equal(t, []string{
		"Logo Design",
		"Website Development",
		"Mobile App Development",
		"Content Writing",
		"Graphic Design",
	}, labels)
}
