package llm

import (
	"context"

	"yearcompass/internal/prompts"
)

// MockGateway is the scripted stand-in for local development: same interface,
// no credential needed. It walks a fixed interview script keyed off how many
// user turns have accumulated, and returns canned documents for the
// structured call sites.
type MockGateway struct{}

func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

var mockInterviewScript = map[int]string{
	1:  "Let's start with the big picture. Imagine it's next December, and you're genuinely proud of your year. What happened? Tell me about your wins in career, health, money, relationships, learning, spirituality - whatever matters to you. Don't filter, just dream out loud.",
	2:  "Beautiful. Now let's ground this in reality. Walk me through a typical week. What's your work schedule? What are your non-negotiable commitments?",
	3:  "When do you have the most energy? Are you a morning person or night owl? When do you typically crash during the day?",
	4:  "Got it. Let's talk career. What does progress look like for you? Promotion? New job? Building specific skills? Be as specific as you can.",
	5:  "And health - what's your relationship with exercise and wellness right now? Are we building from zero or getting back on track?",
	6:  "Perfect. What about learning? Is there a skill, language, or subject you want to tackle this year? And realistically, how much time can you give it weekly?",
	7:  "Money goals - what are we aiming for? Savings target? Debt payoff? What's your current monthly surplus or deficit?",
	8:  "This is important: what usually derails your plans? Be brutally honest - is it energy, discipline, unexpected chaos, lack of clarity?",
	9:  "If you could only achieve 3 things this year and had to drop everything else, which 3 would you choose? This helps me understand your true priorities.",
	10: "Last question: do you want me to push you hard, or do you need me to help you be gentle with yourself? What kind of coaching style actually works for you?",
}

const mockSummary = `Let me make sure I've got this right:

- You want meaningful growth across career, health, and personal development
- You're working full-time with limited energy and need a plan that respects your real constraints
- Your top priorities are career growth, health, and financial security
- You want firm but compassionate coaching

Does that capture it? Anything I'm missing?`

const mockIntakeJSON = `Perfect. I have what I need to build your plan.

{
  "intake_complete": true,
  "aspirations": {
    "career": "Get promoted and build new skills",
    "health": "Exercise 3x per week and eat better",
    "finance": "Save $10,000 this year",
    "learning": "Learn Spanish to B1 level",
    "spirituality": "Daily meditation practice",
    "lifestyle": "Better work-life balance"
  },
  "constraints": {
    "work_schedule": "9-6 Monday to Friday with 30-min commute",
    "energy_patterns": "Morning person, crash around 3pm, second wind at 7pm",
    "commitments": "Family dinner on Sundays",
    "available_daily_time": "2-3 hours on weekdays, 6-8 hours on weekends"
  },
  "derailment_factors": ["work stress", "lack of motivation", "unexpected events"],
  "top_3_priorities": ["Career growth", "Health improvement", "Financial security"],
  "coaching_style": "Firm but compassionate - push me but recognize when I'm struggling"
}`

const mockPlanJSON = `{
  "year": 2026,
  "vision": "The year I became someone who shows up for myself daily",
  "quarters": [
    {
      "quarter": 1,
      "theme": "Foundation & Rhythm",
      "focus_areas": ["Morning routine", "Health basics", "Career clarity"],
      "months": [
        {
          "month": 1,
          "name": "January",
          "primary_focus": "Morning Routine",
          "supporting_focus": ["Sleep", "Movement"],
          "milestones": ["30-day wake streak", "Establish pre-work ritual"],
          "weeks": [
            {
              "week": 1,
              "theme": "Just show up",
              "focus_rotation": {
                "monday": ["health", "spirituality"],
                "tuesday": ["career", "learning"],
                "wednesday": ["health", "finance"],
                "thursday": ["career", "spirituality"],
                "friday": ["learning", "health"],
                "saturday": ["finance", "lifestyle"],
                "sunday": ["rest", "reflection"]
              },
              "sample_tasks": {
                "monday": [
                  {"title": "Wake at 6am", "area": "health", "duration": 0, "time": "6:00 AM", "why": "Anchor for your morning routine", "priority": 1},
                  {"title": "Morning meditation (10 min)", "area": "spirituality", "duration": 10, "time": "6:05 AM", "why": "Calm foundation for the day"},
                  {"title": "15-min walk outside (no phone)", "area": "health", "duration": 15, "time": "6:20 AM", "why": "Energy and clarity"}
                ],
                "tuesday": [
                  {"title": "Write down one career win to chase this week", "area": "career", "duration": 10, "time": "8:00 AM", "why": "Keeps the big goal concrete"},
                  {"title": "15 min Spanish practice", "area": "learning", "duration": 15, "time": "7:00 PM", "why": "Consistency beats intensity"}
                ],
                "wednesday": [
                  {"title": "15-min walk", "area": "health", "duration": 15, "time": "6:20 AM", "why": "Keep the chain alive"},
                  {"title": "Review this week's spending", "area": "finance", "duration": 10, "time": "8:00 PM", "why": "Awareness before optimization"}
                ],
                "thursday": [
                  {"title": "30 min on promotion case notes", "area": "career", "duration": 30, "time": "7:30 AM", "why": "Document wins while fresh"}
                ],
                "friday": [
                  {"title": "15 min Spanish practice", "area": "learning", "duration": 15, "time": "7:00 PM", "why": "End the week with a rep"},
                  {"title": "Stretch before bed", "area": "health", "duration": 10, "time": "10:00 PM", "why": "Recovery is training too"}
                ],
                "saturday": [
                  {"title": "Weekly budget check-in", "area": "finance", "duration": 20, "time": "10:00 AM", "why": "Track progress toward the savings goal"}
                ],
                "sunday": [
                  {"title": "Plan next week in 15 minutes", "area": "reflection", "duration": 15, "time": "6:00 PM", "why": "Decide once, execute all week"}
                ]
              }
            }
          ]
        }
      ]
    }
  ]
}`

const mockCoachReply = "You showed up again today. That's the whole game. Today's tasks are light - knock out the quick win first and let momentum do the rest."

const mockAdaptationJSON = `{
  "analysis": "The morning tasks are landing but evening tasks keep slipping, which suggests the plan is fighting your energy curve rather than your motivation.",
  "options": [
    {"id": "A", "title": "Shift evening tasks to mornings", "description": "Move Spanish practice to right after your walk.", "changes": {"learning": "07:00 AM slot"}},
    {"id": "B", "title": "Reduce to 3 evenings a week", "description": "Keep Mon/Wed/Fri only, drop the rest guilt-free.", "changes": {"frequency": "3x/week"}},
    {"id": "C", "title": "Pause evenings for two weeks", "description": "Protect the morning streak, revisit after the crunch.", "changes": {"pause": "14 days"}}
  ]
}`

func (m *MockGateway) Generate(_ context.Context, turns []Turn, systemPrompt string, _ Options) (string, error) {
	switch systemPrompt {
	case prompts.PlanGeneration:
		return mockPlanJSON, nil
	case prompts.DailyCoach:
		return mockCoachReply, nil
	case prompts.Adaptation:
		return mockAdaptationJSON, nil
	}

	// Interview: the reply depends only on how many user turns exist so far.
	userTurns := 0
	for _, t := range turns {
		if t.Role == RoleUser {
			userTurns++
		}
	}
	switch {
	case userTurns == 0:
		return "Tell me about what you want for your year. What would make you proud when December comes around?", nil
	case userTurns <= 10:
		return mockInterviewScript[userTurns], nil
	case userTurns == 11:
		return mockSummary, nil
	default:
		return mockIntakeJSON, nil
	}
}
