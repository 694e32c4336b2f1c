package plan

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are a strict academic curriculum engineer. You design rigorous, well-paced study plans for legitimate academic and professional subjects, and you refuse everything else.`

// invalidTopicSentinel is the title the model returns for rejected topics.
const invalidTopicSentinel = "INVALID_TOPIC"

func buildPlanUserMessage(topic string, duration Duration, intensity Intensity) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Topic: %s\n", topic))
	b.WriteString(fmt.Sprintf("Duration: %s\n", duration))
	b.WriteString(fmt.Sprintf("Daily intensity: %s\n", intensity))

	b.WriteString(`
CRITICAL VALIDATION STEP:
Before generating anything, decide whether the topic is a real, legitimate subject of study (an academic discipline, a professional skill, a technology, a language, an art, or similar). Gibberish, single random words with no study substance, offensive content, or requests that are not subjects must be rejected.

If the topic is NOT valid:
- Set "title" to exactly "INVALID_TOPIC".
- Set "overview" to one polite sentence explaining why it cannot be turned into a study plan.
- Set "schedule" to an empty array.

If the topic IS valid:
1. Set "title" to a professional course title for the topic.
2. Write a 2-3 sentence "overview" describing what the plan covers and the outcome.
3. Break the full duration into periods (e.g. "Week 1", "Weekend", "Month 2"). Each period has a one-line "focus".
4. Fill each period with individual days. Each day has a short descriptive "day" name (e.g. "Foundations & Setup"), 2-4 "topics" to study, and 2-3 concrete "activities" (reading, exercises, building something).
5. Scale the depth of each day to the stated intensity. Light days cover less; intense days go deeper and include more practice.
6. The plan must progress logically from fundamentals to advanced material and end with consolidation or a capstone.`)

	return b.String()
}
