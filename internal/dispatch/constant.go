package dispatch

import (
	"time"

	"pet-agent-service/internal/agent"
)

// DefaultTransferDelay paces the stream between the transfer notice and the
// specialist answer so the UI can render the handoff.
const DefaultTransferDelay = 500 * time.Millisecond

// specialistKeywords identify which specialist a conversation summary is
// already about. Matching is case-insensitive substring search; the sets mix
// languages because summaries arrive in the user's language.
var specialistKeywords = map[agent.Target][]string{
	agent.TargetDoctor:       {"医生", "兽医", "health", "medical", "doctor"},
	agent.TargetNutritionist: {"营养师", "营养", "nutrition", "diet", "food"},
	agent.TargetTrainer:      {"训犬师", "训练师", "训练", "trainer", "training", "behavior"},
	agent.TargetFAQ:          {"常见问题", "faq", "help"},
	agent.TargetAvatar:       {"头像", "avatar", "image", "generate"},
}

// keywordOrder fixes the scan order so overlapping summaries resolve
// deterministically.
var keywordOrder = []agent.Target{
	agent.TargetDoctor,
	agent.TargetNutritionist,
	agent.TargetTrainer,
	agent.TargetFAQ,
	agent.TargetAvatar,
}
