package registry

import (
	"strings"
	"testing"

	"pet-agent-service/internal/agent"
	"pet-agent-service/internal/model"
)

func TestRegistryLookup(t *testing.T) {
	r := New()

	t.Run("all targets registered", func(t *testing.T) {
		for _, target := range []agent.Target{
			agent.TargetRouter, agent.TargetDoctor, agent.TargetNutritionist,
			agent.TargetTrainer, agent.TargetFAQ, agent.TargetAvatar,
		} {
			s, err := r.Get(target)
			if err != nil {
				t.Fatalf("Get(%s): %v", target, err)
			}
			if s.Name == "" || s.Temperature == 0 {
				t.Errorf("%s: incomplete definition %+v", target, s)
			}
			if len(s.RequiredFields()) == 0 {
				t.Errorf("%s: no required fields", target)
			}
		}
	})

	t.Run("unknown target rejected", func(t *testing.T) {
		if _, err := r.Get("groomer"); err == nil {
			t.Fatal("expected error for unknown target")
		}
	})

	t.Run("temperatures", func(t *testing.T) {
		cases := map[agent.Target]float64{
			agent.TargetRouter:       0.3,
			agent.TargetDoctor:       0.5,
			agent.TargetNutritionist: 0.5,
			agent.TargetTrainer:      0.5,
			agent.TargetFAQ:          0.3,
			agent.TargetAvatar:       0.5,
		}
		for target, want := range cases {
			s, _ := r.Get(target)
			if s.Temperature != want {
				t.Errorf("%s: temperature %v, want %v", target, s.Temperature, want)
			}
		}
	})

	t.Run("registration order stable", func(t *testing.T) {
		all := r.Specialists()
		if len(all) != 6 || all[0].Target != agent.TargetRouter {
			t.Errorf("unexpected order: %v", all)
		}
	})
}

func TestPromptAssembly(t *testing.T) {
	r := New()
	turn := &model.Turn{
		UserMessage:         "My dog keeps vomiting",
		ConversationSummary: "earlier asked about appetite loss",
		PetProfile:          &model.PetProfile{Breed: "corgi", AgeMonths: 24, WeightKg: 10.5},
	}

	t.Run("language directive appended last", func(t *testing.T) {
		s, _ := r.Get(agent.TargetDoctor)
		prompt := s.SystemPrompt("RESPOND IN ENGLISH")
		if !strings.HasSuffix(prompt, "RESPOND IN ENGLISH") {
			t.Errorf("directive not last:\n%s", prompt)
		}
		if !strings.Contains(prompt, "risk_level") {
			t.Error("developer prompt missing from assembly")
		}
	})

	t.Run("empty directive omitted", func(t *testing.T) {
		s, _ := r.Get(agent.TargetRouter)
		prompt := s.SystemPrompt("")
		if strings.HasSuffix(prompt, "\n\n") {
			t.Error("trailing separator with empty directive")
		}
	})

	t.Run("doctor input carries profile and stats", func(t *testing.T) {
		s, _ := r.Get(agent.TargetDoctor)
		in := s.UserInput(turn)
		for _, want := range []string{"last_user_msg", "conversation_summary", "pet_profile", "window_stats", "corgi"} {
			if !strings.Contains(in, want) {
				t.Errorf("input missing %q:\n%s", want, in)
			}
		}
	})

	t.Run("faq input is message only", func(t *testing.T) {
		s, _ := r.Get(agent.TargetFAQ)
		in := s.UserInput(turn)
		if strings.Contains(in, "pet_profile") || strings.Contains(in, "conversation_summary") {
			t.Errorf("faq input carries extra context:\n%s", in)
		}
	})

	t.Run("avatar input carries photo flag and catalog", func(t *testing.T) {
		s, _ := r.Get(agent.TargetAvatar)
		in := s.UserInput(&model.Turn{UserMessage: "make a cartoon avatar", PetPhotoUploaded: true})
		for _, want := range []string{"pet_photo_uploaded", "style_catalog", "cartoon_neo"} {
			if !strings.Contains(in, want) {
				t.Errorf("input missing %q:\n%s", want, in)
			}
		}
	})

	t.Run("fallback prompt folds in the question", func(t *testing.T) {
		s, _ := r.Get(agent.TargetNutritionist)
		p := s.FallbackPrompt(turn)
		if !strings.Contains(p, "My dog keeps vomiting") || !strings.Contains(p, "meal_plan") {
			t.Errorf("incomplete fallback prompt:\n%s", p)
		}
	})

	t.Run("router has no recovery prompt", func(t *testing.T) {
		s, _ := r.Get(agent.TargetRouter)
		if p := s.FallbackPrompt(turn); p != "" {
			t.Errorf("expected empty fallback, got %q", p)
		}
	})
}

func TestLookupFAQ(t *testing.T) {
	r := New()

	cases := []struct {
		name         string
		msg          string
		wantHit      bool
		wantQuestion string
	}{
		{"cleaning question", "How do I clean the collar?", true, "How to clean collar"},
		{"pairing question", "bluetooth Pairing keeps failing", true, "How to pair device"},
		{"chinese charging question", "项圈怎么充电", true, "Charging method"},
		{"health question misses", "my dog is vomiting", false, ""},
		{"empty message misses", "   ", false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			question, answer, ok := r.LookupFAQ(tc.msg)
			if ok != tc.wantHit {
				t.Fatalf("hit=%v, want %v", ok, tc.wantHit)
			}
			if question != tc.wantQuestion {
				t.Errorf("matched question %q, want %q", question, tc.wantQuestion)
			}
			if ok && answer == "" {
				t.Error("empty canned answer")
			}
		})
	}
}

func TestStaticDefaults(t *testing.T) {
	t.Run("routing decision keeps turn on router", func(t *testing.T) {
		d := DefaultRoutingDecision()
		if d.Next != agent.TargetRouter || d.Confidence != 0.1 {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("doctor default is medium risk with safety note", func(t *testing.T) {
		d := DefaultDoctorAnswer()
		if d.RiskLevel != "medium" || d.SafetyNote == "" {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("photo missing short circuit", func(t *testing.T) {
		a := PhotoMissingAvatarAnswer()
		if a.OkToGenerate || a.Handoff != string(agent.TargetRouter) {
			t.Errorf("got %+v", a)
		}
	})
}
