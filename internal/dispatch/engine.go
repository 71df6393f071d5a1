package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pet-agent-service/internal/agent"
	"pet-agent-service/internal/agent/registry"
	"pet-agent-service/internal/model"
)

// Dispatch runs one conversational turn and emits its ordered event stream
// through emit. The turn always concludes with some specialist content; only
// a broken outbound stream or an empty turn aborts it.
func (e *Engine) Dispatch(ctx context.Context, turn *model.Turn, emit EmitFunc) error {
	if turn == nil || strings.TrimSpace(turn.UserMessage) == "" {
		return ErrEmptyTurn
	}

	lang := e.language.DetermineResponseLanguage(turn.UserMessage, turn.ConversationSummary, turn.ExplicitLanguage)
	directive := e.language.LanguageDirective(lang, turn.ConversationSummary)

	decision, routeErr := e.route(ctx, turn, directive)
	if routeErr != nil {
		e.l.Warnf(ctx, "dispatch: routing failed, using safe default: %v", routeErr)
		if err := e.emit(emit, EventError, "", &ErrorNotice{Message: "routing failed, answering generically"}); err != nil {
			return err
		}
		decision = registry.DefaultRoutingDecision()
	}

	if err := e.emit(emit, EventRouter, agent.TargetRouter, decision); err != nil {
		return err
	}

	target := decision.Next
	selfAnswer := target == agent.TargetRouter
	if selfAnswer {
		// General-knowledge turn: answer through the FAQ specialist with
		// no transfer notice.
		target = agent.TargetFAQ
	}
	if !target.IsSpecialist() {
		return nil
	}

	if !selfAnswer {
		if current := currentSpecialist(turn.ConversationSummary); current != target {
			notice := &TransferNotice{
				Message:     decision.TransferMessage,
				TargetAgent: target,
			}
			if notice.Message == "" {
				notice.Message = fmt.Sprintf("Transferring you to %s specialist...", strings.ToUpper(string(target)))
			}
			if err := e.emit(emit, EventTransfer, target, notice); err != nil {
				return err
			}
		} else {
			e.l.Debugf(ctx, "dispatch: already with %s, transfer notice suppressed", target)
		}
		// Pacing pause so the UI can render the handoff.
		time.Sleep(e.transferDelay)
	}

	content := e.consult(ctx, turn, target, directive)
	return e.emit(emit, EventSpecialist, target, content)
}

// route asks the router specialist for a routing decision. The caller
// absorbs any failure into a safe default; routing never ends the turn.
func (e *Engine) route(ctx context.Context, turn *model.Turn, directive string) (*agent.RoutingDecision, error) {
	spec, err := e.registry.Get(agent.TargetRouter)
	if err != nil {
		return nil, err
	}

	text, err := e.gateway.Generate(ctx, spec.SystemPrompt(directive), spec.UserInput(turn), spec.Temperature)
	if err != nil {
		return nil, fmt.Errorf("router call: %w", err)
	}
	decision, err := e.normalizer.Router(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("router response: %w", err)
	}
	return decision, nil
}

// consult produces the specialist answer. It degrades in three steps:
// main prompt, then the specialist's recovery prompt at low temperature,
// then a static canned answer. It never fails.
func (e *Engine) consult(ctx context.Context, turn *model.Turn, target agent.Target, directive string) any {
	spec, err := e.registry.Get(target)
	if err != nil {
		e.l.Errorf(ctx, "dispatch: unresolvable specialist %s: %v", target, err)
		return e.staticDefault(target)
	}

	switch target {
	case agent.TargetFAQ:
		if question, answer, ok := e.registry.LookupFAQ(turn.UserMessage); ok {
			e.l.Infof(ctx, "dispatch: builtin FAQ %q answered the turn", question)
			return &agent.FAQAnswer{Answer: answer, Source: "builtin", SafetyNote: agent.FAQSafetyNote}
		}
	case agent.TargetAvatar:
		if !turn.PetPhotoUploaded {
			e.l.Infof(ctx, "dispatch: no pet photo uploaded, avatar short-circuit")
			return registry.PhotoMissingAvatarAnswer()
		}
	}

	text, err := e.gateway.Generate(ctx, spec.SystemPrompt(directive), spec.UserInput(turn), spec.Temperature)
	if err == nil {
		content, nerr := e.normalizeFor(ctx, target, text)
		if nerr == nil {
			return content
		}
		err = nerr
	}
	e.l.Warnf(ctx, "dispatch: %s main prompt failed: %v", target, err)

	if prompt := spec.FallbackPrompt(turn); prompt != "" {
		text, ferr := e.gateway.Generate(ctx, prompt, "", registry.FallbackTemperature)
		if ferr == nil {
			content, nerr := e.normalizeFor(ctx, target, text)
			if nerr == nil {
				return content
			}
			ferr = nerr
		}
		e.l.Warnf(ctx, "dispatch: %s recovery prompt failed: %v", target, ferr)
	}

	e.l.Errorf(ctx, "dispatch: %s degraded to static answer", target)
	return e.staticDefault(target)
}

func (e *Engine) normalizeFor(ctx context.Context, target agent.Target, text string) (any, error) {
	switch target {
	case agent.TargetDoctor:
		return e.normalizer.Doctor(ctx, text)
	case agent.TargetNutritionist:
		return e.normalizer.Nutritionist(ctx, text)
	case agent.TargetTrainer:
		return e.normalizer.Trainer(ctx, text)
	case agent.TargetFAQ:
		return e.normalizer.FAQ(ctx, text)
	case agent.TargetAvatar:
		return e.normalizer.Avatar(ctx, text)
	}
	return nil, fmt.Errorf("no schema for target %q", target)
}

func (e *Engine) staticDefault(target agent.Target) any {
	switch target {
	case agent.TargetDoctor:
		return registry.DefaultDoctorAnswer()
	case agent.TargetNutritionist:
		return registry.DefaultNutritionistAnswer()
	case agent.TargetTrainer:
		return registry.DefaultTrainerAnswer()
	case agent.TargetAvatar:
		return registry.DefaultAvatarAnswer()
	default:
		return registry.DefaultFAQAnswer()
	}
}

func (e *Engine) emit(emit EmitFunc, typ EventType, target agent.Target, content any) error {
	ev := Event{
		ID:        uuid.NewString(),
		Type:      typ,
		Agent:     target,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	if err := emit(ev); err != nil {
		return fmt.Errorf("%w: %v", ErrStreamClosed, err)
	}
	return nil
}

// currentSpecialist derives which specialist the conversation is already
// with from keyword hits over the summary text. Heuristic only; an empty
// summary or no hit means no continuity.
func currentSpecialist(conversationSummary string) agent.Target {
	if conversationSummary == "" {
		return ""
	}
	summary := strings.ToLower(conversationSummary)
	for _, target := range keywordOrder {
		for _, kw := range specialistKeywords[target] {
			if strings.Contains(summary, kw) {
				return target
			}
		}
	}
	return ""
}
