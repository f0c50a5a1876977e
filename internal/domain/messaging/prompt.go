package messaging

import (
	"fmt"

	"gym_attendance_notifier/internal/domain/attendance"
)

const basePrompt = `You are a friendly gym assistant writing a short push notification for a member.

Member name: %s
Member goal: %s

Guidelines:
- Address the member by name
- Tie the message to their goal naturally
- One or two sentences, under 200 characters
- Warm and personal, never generic or preachy
- Respond with ONLY the message text, no quotes, no markdown
`

// BuildPrompt returns the generation prompt for a message category. The
// category decides the tone; name and goal personalize it.
func BuildPrompt(category attendance.Category, name, goal string) string {
	header := fmt.Sprintf(basePrompt, name, goal)

	switch category {
	case attendance.CategoryPraise:
		return header + `
They attended almost every planned session this week. Congratulate them and encourage them to keep the streak going.`
	case attendance.CategoryEncouragement:
		return header + `
They attended a decent share of their planned sessions this week. Acknowledge the effort and gently nudge them toward full attendance.`
	default: // motivation
		return header + `
They missed most of their planned sessions this week. Motivate them to come back without guilt-tripping them.`
	}
}
