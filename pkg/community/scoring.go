// Package community scores user activity for the leaderboard and profile.
package community

const (
	InteractionCopy     = "copy"
	InteractionDownload = "download"
	InteractionComment  = "comment"
)

// XP per level. Level 1 starts at 0 XP.
const XPPerLevel = 250

// PointsFor returns the XP awarded for one interaction of the given type.
func PointsFor(interactionType string) int64 {
	switch interactionType {
	case InteractionComment:
		return 3
	case InteractionDownload:
		return 2
	case InteractionCopy:
		return 1
	default:
		return 0
	}
}

// Level converts XP into a level and the XP still missing for the next one.
func Level(xp int64) (level int, toNext int64) {
	if xp < 0 {
		xp = 0
	}
	level = int(xp/XPPerLevel) + 1
	toNext = int64(level)*XPPerLevel - xp
	return level, toNext
}

// Title is the badge shown next to a user on the leaderboard.
func Title(level int) string {
	switch {
	case level >= 40:
		return "Grant Master"
	case level >= 25:
		return "Funding Expert"
	case level >= 10:
		return "Research Innovator"
	case level >= 3:
		return "Rising Writer"
	default:
		return "Newcomer"
	}
}

// Stats are the per-user counters achievements are computed from.
type Stats struct {
	PromptsCopied       int64
	TemplatesDownloaded int64
	Comments            int64
	WorkflowsCompleted  int64
}

type Achievement struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// Achievements evaluates every known achievement against s, in display order.
func Achievements(s Stats) []Achievement {
	return []Achievement{
		{
			Key:         "first-steps",
			Title:       "First Steps",
			Description: "Completed your first workflow",
			Unlocked:    s.WorkflowsCompleted >= 1,
		},
		{
			Key:         "copy-master",
			Title:       "Copy Master",
			Description: "Copied 100+ prompts",
			Unlocked:    s.PromptsCopied >= 100,
		},
		{
			Key:         "template-collector",
			Title:       "Template Collector",
			Description: "Downloaded 20+ templates",
			Unlocked:    s.TemplatesDownloaded >= 20,
		},
		{
			Key:         "community-helper",
			Title:       "Community Helper",
			Description: "Posted 10+ comments",
			Unlocked:    s.Comments >= 10,
		},
	}
}
