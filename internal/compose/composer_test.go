// File path: internal/compose/composer_test.go
package compose

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/acambier/plume/internal/dossier"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func sectionTitles(doc Document) []string {
	titles := make([]string, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		titles = append(titles, s.Title)
	}
	return titles
}

func findSection(t *testing.T, doc Document, title string) Section {
	t.Helper()
	for _, s := range doc.Sections {
		if s.Title == title {
			return s
		}
	}
	t.Fatalf("section %q not found in %v", title, sectionTitles(doc))
	return Section{}
}

func TestBuildIdentityOnly(t *testing.T) {
	a := dossier.AnswerSet{FirstName: "Léo", LastName: "Martin"}
	doc := Build(a, Options{Now: fixedNow})

	want := []string{"Présentation de l'enfant", "Communication et relations"}
	if got := sectionTitles(doc); !reflect.DeepEqual(got, want) {
		t.Fatalf("sections = %v, want %v", got, want)
	}
	identity := doc.Sections[0]
	if len(identity.Blocks) == 0 {
		t.Fatal("identity section has no blocks")
	}
	if !strings.Contains(identity.Blocks[0].Text, "Léo Martin") {
		t.Fatalf("identity block %q does not name the child", identity.Blocks[0].Text)
	}
	// No answers beyond identity: the communication section stays empty
	// rather than fabricating sentences.
	if got := len(doc.Sections[1].Blocks); got != 0 {
		t.Fatalf("communication blocks = %d, want 0", got)
	}
}

func TestBuildEmptyAnswersDoesNotPanic(t *testing.T) {
	doc := Build(dossier.AnswerSet{}, Options{Now: fixedNow})
	if len(doc.Sections) == 0 {
		t.Fatal("expected at least the identity section")
	}
	if !strings.Contains(doc.Sections[0].Blocks[0].Text, "L'enfant") {
		t.Fatalf("anonymous identity = %q", doc.Sections[0].Blocks[0].Text)
	}
}

func TestBuildIsIdempotentAtFixedDate(t *testing.T) {
	a := fullAnswerSet()
	first := Build(a, Options{Now: fixedNow})
	second := Build(a, Options{Now: fixedNow})
	if !reflect.DeepEqual(first, second) {
		t.Fatal("two builds of the same answers at the same date differ")
	}
	if first.Render() != second.Render() {
		t.Fatal("rendered text differs between identical builds")
	}
}

func TestBehaviorSectionGatedOnCrises(t *testing.T) {
	a := fullAnswerSet()
	a.HasCrises = false
	doc := Build(a, Options{Now: fixedNow})
	for _, title := range sectionTitles(doc) {
		if title == "Comportement" {
			t.Fatal("behavior section present although has_crises is false")
		}
	}
}

func TestBehaviorSentence(t *testing.T) {
	a := dossier.AnswerSet{
		HasCrises:         true,
		CrisisFrequency:   dossier.CrisisWeekly,
		CrisisDuration:    dossier.DurationMedium,
		HasRigidities:     true,
		EmotionRegulation: dossier.RegulationDifficult,
		CrisisExample:     "Un changement de salle de classe a déclenché une crise de 20 minutes.",
	}
	doc := Build(a, Options{Now: fixedNow})
	behavior := findSection(t, doc, "Comportement")

	first := behavior.Blocks[0].Text
	if !strings.Contains(first, "plusieurs fois par semaine") || !strings.Contains(first, "15 à 30 minutes") {
		t.Fatalf("crisis sentence = %q", first)
	}
	joined := sectionText(behavior)
	if !strings.Contains(joined, "rigidités importantes") {
		t.Fatalf("rigidity sentence missing:\n%s", joined)
	}
	if !strings.Contains(joined, "très difficile") {
		t.Fatalf("emotion regulation qualifier missing:\n%s", joined)
	}
	last := behavior.Blocks[len(behavior.Blocks)-1]
	if last.Kind != BlockCallout {
		t.Fatalf("crisis example kind = %q, want callout", last.Kind)
	}
	if !strings.Contains(last.Text, "changement de salle") {
		t.Fatalf("callout text = %q", last.Text)
	}
}

// An easy emotion regulation is the neutral answer: no qualifier sentence.
func TestBehaviorOmitsQualifierWhenRegulationEasy(t *testing.T) {
	a := dossier.AnswerSet{
		HasCrises:         true,
		CrisisFrequency:   dossier.CrisisWeekly,
		EmotionRegulation: dossier.RegulationEasy,
	}
	doc := Build(a, Options{Now: fixedNow})
	behavior := findSection(t, doc, "Comportement")
	joined := sectionText(behavior)
	if strings.Contains(joined, "émotions") {
		t.Fatalf("unexpected emotion regulation sentence:\n%s", joined)
	}
	if strings.Contains(joined, "rigidités") {
		t.Fatalf("unexpected rigidity sentence:\n%s", joined)
	}
}

func sectionText(s Section) string {
	parts := make([]string, 0, len(s.Blocks))
	for _, b := range s.Blocks {
		parts = append(parts, b.Text)
	}
	return strings.Join(parts, "\n")
}

// A rewritten life-project narrative replaces the schooling and family-impact
// sections wholesale. The two never coexist with it.
func TestRewrittenReplacesSchoolingAndFamily(t *testing.T) {
	a := fullAnswerSet()

	composed := Build(a, Options{Now: fixedNow})
	titles := sectionTitles(composed)
	if !contains(titles, "Scolarité") || !contains(titles, "Retentissement sur la vie familiale") {
		t.Fatalf("expected computed schooling/family sections, got %v", titles)
	}
	if contains(titles, "Projet de vie") {
		t.Fatalf("unexpected rewritten section without rewrite: %v", titles)
	}

	rewritten := Build(a, Options{Now: fixedNow, Rewritten: "Nous souhaitons que Léo grandisse sereinement."})
	titles = sectionTitles(rewritten)
	if !contains(titles, "Projet de vie") {
		t.Fatalf("rewritten section missing: %v", titles)
	}
	if contains(titles, "Scolarité") || contains(titles, "Retentissement sur la vie familiale") {
		t.Fatalf("computed sections survived the rewrite: %v", titles)
	}
	section := findSection(t, rewritten, "Projet de vie")
	if got, want := section.Blocks[0].Text, "Nous souhaitons que Léo grandisse sereinement."; got != want {
		t.Fatalf("rewritten text = %q, want %q", got, want)
	}
}

func TestCareCostsSection(t *testing.T) {
	a := dossier.AnswerSet{Care: map[dossier.Profession]dossier.CareItem{
		dossier.ProfessionSpeechTherapist: {Present: true, Frequency: "2 séances par semaine", MonthlyCost: "120"},
		dossier.ProfessionPsychologist:    {Present: true, Reimbursed: true},
	}}
	doc := Build(a, Options{Now: fixedNow})
	section := findSection(t, doc, "Suivis et frais de prise en charge")

	text := make([]string, 0, len(section.Blocks))
	for _, b := range section.Blocks {
		text = append(text, b.Text)
	}
	joined := strings.Join(text, "\n")
	if !strings.Contains(joined, "Orthophoniste : 2 séances par semaine, 120 € par mois restant à charge") {
		t.Fatalf("speech therapist row missing:\n%s", joined)
	}
	if !strings.Contains(joined, "Psychologue : fréquence variable, entièrement remboursé") {
		t.Fatalf("psychologist row missing:\n%s", joined)
	}
	if !strings.Contains(joined, "Total mensuel restant à la charge de la famille : 120 €.") {
		t.Fatalf("total row missing:\n%s", joined)
	}
}

func TestAttachmentsExpiryFlags(t *testing.T) {
	expired := fixedNow.AddDate(0, 0, -1)
	soon := fixedNow.AddDate(0, 2, 0)
	current := fixedNow.AddDate(0, 4, 0)
	docs := []dossier.SupportingDocument{
		{Filename: "certificat.pdf", Kind: "certificat médical", ExpiresOn: &expired},
		{Filename: "bilan.pdf", ExpiresOn: &soon},
		{Filename: "notification.pdf", ExpiresOn: &current},
		{Filename: "photo.jpg"},
	}
	doc := Build(dossier.AnswerSet{}, Options{Now: fixedNow, Documents: docs})
	section := findSection(t, doc, "Pièces jointes")

	if got := len(section.Blocks); got != 4 {
		t.Fatalf("attachment rows = %d, want 4", got)
	}
	if !strings.Contains(section.Blocks[0].Text, "document expiré, à renouveler") {
		t.Fatalf("expired flag missing: %q", section.Blocks[0].Text)
	}
	if !strings.Contains(section.Blocks[1].Text, "à renouveler prochainement") {
		t.Fatalf("expiring-soon flag missing: %q", section.Blocks[1].Text)
	}
	if strings.Contains(section.Blocks[2].Text, "renouveler") {
		t.Fatalf("current document wrongly flagged: %q", section.Blocks[2].Text)
	}
	if strings.Contains(section.Blocks[3].Text, "renouveler") {
		t.Fatalf("undated document wrongly flagged: %q", section.Blocks[3].Text)
	}
}

func TestRenderLayout(t *testing.T) {
	a := dossier.AnswerSet{FirstName: "Léo", AutonomyNote: "Il refuse tout vêtement neuf.", Dressing: dossier.AutonomyFullHelp}
	out := Build(a, Options{Now: fixedNow}).Render()

	if !strings.Contains(out, "SYNTHÈSE DU DOSSIER") {
		t.Fatalf("header missing:\n%s", out)
	}
	if !strings.Contains(out, "  - ") {
		t.Fatalf("bullet prefix missing:\n%s", out)
	}
	if !strings.Contains(out, "« Il refuse tout vêtement neuf. »") {
		t.Fatalf("callout quoting missing:\n%s", out)
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func fullAnswerSet() dossier.AnswerSet {
	return dossier.AnswerSet{
		FirstName:     "Léo",
		LastName:      "Martin",
		BirthDate:     "2017-03-12",
		Grade:         "CE2",
		SchoolKind:    dossier.SchoolPublic,
		Diagnosis:     "trouble du spectre de l'autisme",
		DiagnosisDate: "2021-09-01",

		Dressing:     dossier.AutonomyPartialHelp,
		Bathing:      dossier.AutonomyFullHelp,
		StayingAlone: dossier.AutonomyFullHelp,

		HasCrises:         true,
		CrisisFrequency:   dossier.CrisisWeekly,
		CrisisDuration:    dossier.DurationMedium,
		HasRigidities:     true,
		EmotionRegulation: dossier.RegulationDifficult,

		Expression:      dossier.ExpressionSimplePhrases,
		Comprehension:   dossier.ComprehensionSimple,
		PeerInteraction: dossier.InteractionWithdrawn,
		EyeContact:      dossier.EyeContactFleet,

		SchoolDifficulties: []dossier.DifficultyTag{dossier.DifficultyConcentration, dossier.DifficultyFatigue},
		HasAide:            true,
		AideWeeklyHours:    12,
		AideSufficient:     false,
		Accommodations:     []dossier.AccommodationTag{dossier.AccommodationExtraTime},

		ChildSleep:    dossier.SleepDisrupted,
		ParentSleep:   dossier.ParentSleepUnder4,
		WorkImpact:    dossier.WorkImpactPartTime,
		SiblingImpact: dossier.SiblingImpactTension,
		SocialImpact:  dossier.SocialImpactVeryReduced,

		Care: map[dossier.Profession]dossier.CareItem{
			dossier.ProfessionSpeechTherapist: {Present: true, Frequency: "2 séances par semaine", MonthlyCost: "120"},
		},

		RequestAllowance:    true,
		AllowanceCategory:   "3",
		RequestCompensation: true,
		RequestAideHours:    true,
		AideHoursKind:       dossier.AideMoreHours,
		RequestEquipment:    true,
	}
}
