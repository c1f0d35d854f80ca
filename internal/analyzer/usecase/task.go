package usecase

import (
	"strings"

	"solosync/internal/analyzer"
)

// classifyTask maps text to a task label using taskRules.
func classifyTask(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range taskRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return analyzer.DefaultTask
}
