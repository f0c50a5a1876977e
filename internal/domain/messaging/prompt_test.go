package messaging

import (
	"strings"
	"testing"

	"gym_attendance_notifier/internal/domain/attendance"
)

func TestBuildPromptContainsProfile(t *testing.T) {
	for _, category := range []attendance.Category{
		attendance.CategoryPraise,
		attendance.CategoryEncouragement,
		attendance.CategoryMotivation,
	} {
		prompt := BuildPrompt(category, "Mina", "weight loss")
		if !strings.Contains(prompt, "Mina") {
			t.Errorf("%s prompt missing member name", category)
		}
		if !strings.Contains(prompt, "weight loss") {
			t.Errorf("%s prompt missing member goal", category)
		}
	}
}

func TestBuildPromptVariesByCategory(t *testing.T) {
	praise := BuildPrompt(attendance.CategoryPraise, "Jun", "health maintenance")
	encouragement := BuildPrompt(attendance.CategoryEncouragement, "Jun", "health maintenance")
	motivation := BuildPrompt(attendance.CategoryMotivation, "Jun", "health maintenance")

	if praise == encouragement || encouragement == motivation || praise == motivation {
		t.Error("prompts for different categories must differ")
	}
	if !strings.Contains(praise, "Congratulate") {
		t.Error("praise prompt missing its instruction")
	}
	if !strings.Contains(motivation, "Motivate") {
		t.Error("motivation prompt missing its instruction")
	}
}
