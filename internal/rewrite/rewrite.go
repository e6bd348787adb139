// File path: internal/rewrite/rewrite.go

// Package rewrite is the adapter around the external text-rewriting service.
// It turns a frozen answer set into a "projet de vie" narrative in the
// institutional register. The adapter never fails the composition flow: every
// error path collapses into an Outcome with Unavailable set, and the caller
// keeps the locally composed text.
package rewrite

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/acambier/plume/internal/common"
	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/phrases"
	"github.com/acambier/plume/internal/rewrite/providers"
)

type Provider = providers.Provider

// maxOutputTokens bounds the rewritten narrative.
const maxOutputTokens = 1500

// systemInstruction is fixed: the service must write as an administrative
// dossier would, and must not frame the child in employment or productivity
// terms.
const systemInstruction = `Tu rédiges, à la première personne d'un parent, le volet « projet de vie » d'un dossier administratif de demande de droits pour un enfant en situation de handicap.
Registre institutionnel, phrases sobres et factuelles, sans pathos.
Interdictions strictes : aucune référence à l'employabilité, à la productivité ou au potentiel économique de l'enfant ; aucune invention de faits absents du contexte fourni.
Réponds uniquement par le texte rédigé, sans titre ni commentaire.`

// Outcome is the typed result of a rewrite attempt. Exactly one branch is
// meaningful: either Text carries the rewritten narrative, or Unavailable is
// set with the reason the service could not be used.
type Outcome struct {
	Text        string
	Unavailable bool
	Reason      string
}

func unavailable(reason string) Outcome {
	return Outcome{Unavailable: true, Reason: reason}
}

// NewProvider selects the backend from the environment. Missing credentials
// fail closed: no provider is returned and the adapter reports unavailable
// instead of sending unauthenticated requests.
func NewProvider() Provider {
	logger := common.Logger()
	switch strings.ToLower(strings.TrimSpace(os.Getenv("REWRITE_PROVIDER"))) {
	case "", "openai":
		apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
		if apiKey == "" {
			logger.Warn("rewrite: OPENAI_API_KEY not set; rewriting disabled")
			return nil
		}
		return providers.NewOpenAIProvider(apiKey)
	case "ollama":
		provider, err := providers.NewOllamaProvider(os.Getenv("OLLAMA_MODEL"))
		if err != nil {
			logger.Warn("rewrite: ollama provider unavailable", "error", err)
			return nil
		}
		return provider
	default:
		logger.Warn("rewrite: unknown REWRITE_PROVIDER; rewriting disabled",
			"value", os.Getenv("REWRITE_PROVIDER"))
		return nil
	}
}

// Adapter wraps a provider with the timeout and fallback policy.
type Adapter struct {
	provider Provider
	timeout  time.Duration
}

func NewAdapter(provider Provider, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Adapter{provider: provider, timeout: timeout}
}

// Rewrite attempts the external rewrite of the expectations narrative. The
// call is bounded by the adapter timeout; a timeout resolves to the same
// unavailable outcome as any other failure.
func (a *Adapter) Rewrite(ctx context.Context, answers dossier.AnswerSet) Outcome {
	logger := common.Logger()
	if a == nil || a.provider == nil {
		return unavailable("no provider configured")
	}
	notes := strings.TrimSpace(answers.ExpectationsNote)
	if notes == "" {
		return unavailable("no expectations note provided")
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	req := providers.Request{
		System:    systemInstruction,
		Prompt:    buildPrompt(answers, notes),
		MaxTokens: maxOutputTokens,
	}
	text, err := a.provider.Rewrite(ctx, req)
	if err != nil {
		logger.Warn("rewrite: falling back to composed text", "provider", a.provider.Name(), "error", err)
		return unavailable(err.Error())
	}
	logger.Info("rewrite: narrative rewritten", "provider", a.provider.Name(), "length", len(text))
	return Outcome{Text: text}
}

// buildPrompt summarises the child context alongside the guardian's own
// words. Only set answers are included.
func buildPrompt(a dossier.AnswerSet, notes string) string {
	var b strings.Builder
	b.WriteString("Contexte de l'enfant :\n")
	if a.Diagnosis != "" {
		fmt.Fprintf(&b, "- Diagnostic : %s\n", a.Diagnosis)
	}
	if a.Grade != "" {
		fmt.Fprintf(&b, "- Scolarité : %s\n", a.Grade)
	}
	if a.HasAide {
		fmt.Fprintf(&b, "- Accompagnement AESH : %.1f heures par semaine\n", a.AideWeeklyHours)
	}
	var difficulties []string
	for _, tag := range a.SchoolDifficulties {
		if p := phrases.SchoolDifficulty(tag); p != "" {
			difficulties = append(difficulties, p)
		}
	}
	if len(difficulties) > 0 {
		fmt.Fprintf(&b, "- Difficultés scolaires : %s\n", strings.Join(difficulties, ", "))
	}
	if p := phrases.WorkImpact(a.WorkImpact); p != "" {
		fmt.Fprintf(&b, "- Retentissement professionnel : %s\n", p)
	}
	if p := phrases.SocialImpact(a.SocialImpact); p != "" {
		fmt.Fprintf(&b, "- Vie sociale : %s\n", p)
	}
	b.WriteString("\nMots du parent :\n")
	b.WriteString(notes)
	return b.String()
}
