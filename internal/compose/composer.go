// File path: internal/compose/composer.go
package compose

import (
	"fmt"
	"strings"
	"time"

	"github.com/acambier/plume/internal/dossier"
	"github.com/acambier/plume/internal/phrases"
)

// Options carries the request-scoped inputs of a composition run.
type Options struct {
	// Now is the generation date used for the stamp and for expiry
	// classification of supporting documents.
	Now time.Time
	// Rewritten, when non-empty, is the externally rewritten life-project
	// narrative. It replaces the schooling and family-impact sections
	// wholesale; the computed versions of those two sections and the
	// rewritten block never appear together.
	Rewritten string
	// Documents lists the uploaded evidence metadata to be summarised in the
	// attachments section.
	Documents []dossier.SupportingDocument
}

// Build assembles the full narrative document from a frozen answer set.
// Missing answers silently shrink the output; only the identity section is
// always present.
func Build(a dossier.AnswerSet, opts Options) Document {
	doc := Document{GeneratedAt: opts.Now}

	doc.Sections = append(doc.Sections, buildIdentity(a))
	if s, ok := buildAutonomy(a); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := buildBehavior(a); ok {
		doc.Sections = append(doc.Sections, s)
	}
	doc.Sections = append(doc.Sections, buildCommunication(a))

	if strings.TrimSpace(opts.Rewritten) != "" {
		doc.Sections = append(doc.Sections, Section{
			Title:  "Projet de vie",
			Blocks: []Block{paragraph(strings.TrimSpace(opts.Rewritten))},
		})
	} else {
		if s, ok := buildSchooling(a); ok {
			doc.Sections = append(doc.Sections, s)
		}
		if s, ok := buildFamilyImpact(a); ok {
			doc.Sections = append(doc.Sections, s)
		}
	}

	if s, ok := buildCareCosts(a); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := buildRequests(a); ok {
		doc.Sections = append(doc.Sections, s)
	}
	if s, ok := buildAttachments(opts.Documents, opts.Now); ok {
		doc.Sections = append(doc.Sections, s)
	}
	return doc
}

func buildIdentity(a dossier.AnswerSet) Section {
	section := Section{Title: "Présentation de l'enfant"}

	name := strings.TrimSpace(strings.TrimSpace(a.FirstName) + " " + strings.TrimSpace(a.LastName))
	intro := name
	if intro == "" {
		intro = "L'enfant"
	}
	sentence := intro
	if a.BirthDate != "" {
		sentence += ", né(e) le " + formatDate(a.BirthDate)
	}
	if a.Diagnosis != "" {
		sentence += ", présente un diagnostic de " + a.Diagnosis
		if a.DiagnosisDate != "" {
			sentence += " posé le " + formatDate(a.DiagnosisDate)
		}
	}
	sentence += "."
	section.Blocks = append(section.Blocks, paragraph(sentence))

	if a.Grade != "" {
		schooling := "Il/elle est actuellement scolarisé(e) en " + a.Grade
		if kind := phrases.SchoolKind(a.SchoolKind); kind != "" {
			schooling += " " + kind
		}
		schooling += "."
		section.Blocks = append(section.Blocks, paragraph(schooling))
	}

	if a.Renewal {
		section.Blocks = append(section.Blocks, paragraph(
			"Le présent dossier est déposé dans le cadre d'un renouvellement des droits existants."))
	} else {
		section.Blocks = append(section.Blocks, paragraph(
			"Le présent dossier est déposé dans le cadre d'une attribution de nouveaux droits."))
	}
	return section
}

func buildAutonomy(a dossier.AnswerSet) (Section, bool) {
	section := Section{Title: "Autonomie dans la vie quotidienne"}

	acts := []struct {
		act   dossier.AutonomyAct
		level dossier.AutonomyLevel
	}{
		{dossier.ActDressing, a.Dressing},
		{dossier.ActBathing, a.Bathing},
		{dossier.ActEating, a.Eating},
		{dossier.ActStayingAlone, a.StayingAlone},
	}
	for _, entry := range acts {
		if phrase := phrases.Autonomy(entry.act, entry.level); phrase != "" {
			section.Blocks = append(section.Blocks, bullet("L'enfant "+phrase+"."))
		}
	}
	if note := strings.TrimSpace(a.AutonomyNote); note != "" {
		section.Blocks = append(section.Blocks, callout(note))
	}
	return section, len(section.Blocks) > 0
}

func buildBehavior(a dossier.AnswerSet) (Section, bool) {
	if !a.HasCrises {
		return Section{}, false
	}
	section := Section{Title: "Comportement"}

	sentence := "L'enfant présente des crises"
	if freq := phrases.CrisisFrequency(a.CrisisFrequency); freq != "" {
		sentence += " " + freq
	}
	if dur := phrases.CrisisDuration(a.CrisisDuration); dur != "" {
		sentence += ", durant généralement " + dur
	}
	sentence += "."
	section.Blocks = append(section.Blocks, paragraph(sentence))

	if a.HasRigidities {
		section.Blocks = append(section.Blocks, paragraph(
			"Il/elle présente par ailleurs des rigidités importantes : tout changement dans ses habitudes peut déclencher une crise."))
	}
	if qualifier := phrases.EmotionRegulation(a.EmotionRegulation); qualifier != "" {
		section.Blocks = append(section.Blocks, paragraph(qualifier))
	}
	if example := strings.TrimSpace(a.CrisisExample); example != "" {
		section.Blocks = append(section.Blocks, callout(example))
	}
	return section, true
}

// buildCommunication is always emitted; each clause is dropped independently
// when its source answer is unset.
func buildCommunication(a dossier.AnswerSet) Section {
	section := Section{Title: "Communication et relations"}

	var clauses []string
	if p := phrases.Expression(a.Expression); p != "" {
		clauses = append(clauses, p)
	}
	if p := phrases.Comprehension(a.Comprehension); p != "" {
		clauses = append(clauses, p)
	}
	if p := phrases.PeerInteraction(a.PeerInteraction); p != "" {
		clauses = append(clauses, p)
	}
	if p := phrases.EyeContact(a.EyeContact); p != "" {
		clauses = append(clauses, p)
	}
	if len(clauses) > 0 {
		section.Blocks = append(section.Blocks, paragraph("L'enfant "+strings.Join(clauses, " ; ")+"."))
	}
	return section
}

func buildSchooling(a dossier.AnswerSet) (Section, bool) {
	section := Section{Title: "Scolarité"}

	if a.Grade != "" {
		section.Blocks = append(section.Blocks, paragraph("L'enfant est scolarisé(e) en "+a.Grade+"."))
	}

	var difficulties []string
	for _, tag := range a.SchoolDifficulties {
		if p := phrases.SchoolDifficulty(tag); p != "" {
			difficulties = append(difficulties, p)
		}
	}
	if len(difficulties) > 0 {
		section.Blocks = append(section.Blocks, paragraph(
			"L'équipe enseignante constate "+strings.Join(difficulties, ", ")+"."))
	}

	if a.HasAide {
		sentence := fmt.Sprintf("L'enfant bénéficie d'un accompagnement AESH à hauteur de %s heures par semaine",
			formatHours(a.AideWeeklyHours))
		if !a.AideSufficient {
			sentence += ", un volume aujourd'hui insuffisant au regard de ses besoins"
		}
		sentence += "."
		section.Blocks = append(section.Blocks, paragraph(sentence))
	}

	var accommodations []string
	for _, tag := range a.Accommodations {
		if p := phrases.Accommodation(tag); p != "" {
			accommodations = append(accommodations, p)
		}
	}
	if len(accommodations) > 0 {
		section.Blocks = append(section.Blocks, paragraph(
			"Aménagements actuellement en place : "+strings.Join(accommodations, ", ")+"."))
	}
	return section, len(section.Blocks) > 0
}

func buildFamilyImpact(a dossier.AnswerSet) (Section, bool) {
	section := Section{Title: "Retentissement sur la vie familiale"}

	if p := phrases.ChildSleep(a.ChildSleep); p != "" {
		section.Blocks = append(section.Blocks, paragraph(p))
	}
	if p := phrases.ParentSleep(a.ParentSleep); p != "" {
		section.Blocks = append(section.Blocks, paragraph(p))
	}
	if p := phrases.WorkImpact(a.WorkImpact); p != "" {
		section.Blocks = append(section.Blocks, paragraph(p))
	}
	if p := phrases.SiblingImpact(a.SiblingImpact); p != "" {
		section.Blocks = append(section.Blocks, paragraph(p))
	}
	if p := phrases.SocialImpact(a.SocialImpact); p != "" {
		section.Blocks = append(section.Blocks, paragraph(p))
	}
	return section, len(section.Blocks) > 0
}

func buildCareCosts(a dossier.AnswerSet) (Section, bool) {
	section := Section{Title: "Suivis et frais de prise en charge"}

	for _, prof := range dossier.CareProfessions {
		item, ok := a.Care[prof]
		if !ok || !item.Present {
			continue
		}
		frequency := strings.TrimSpace(item.Frequency)
		if frequency == "" {
			frequency = "fréquence variable"
		}
		cost := "entièrement remboursé"
		if !item.Reimbursed {
			cost = fmt.Sprintf("%s € par mois restant à charge", formatEuros(dossier.ParseCost(item.MonthlyCost)))
		}
		section.Blocks = append(section.Blocks, bullet(
			fmt.Sprintf("%s : %s, %s", phrases.ProfessionLabel(prof), frequency, cost)))
	}
	if len(section.Blocks) == 0 {
		return Section{}, false
	}
	section.Blocks = append(section.Blocks, paragraph(fmt.Sprintf(
		"Total mensuel restant à la charge de la famille : %s €.", formatEuros(a.TotalMonthlyCost()))))
	return section, true
}

func buildRequests(a dossier.AnswerSet) (Section, bool) {
	section := Section{Title: "Demandes"}

	if a.RequestAllowance {
		text := "Allocation d'éducation de l'enfant handicapé (AEEH)"
		if p := phrases.AllowanceCategory(a.AllowanceCategory); p != "" {
			text += ", avec " + p
		}
		section.Blocks = append(section.Blocks, bullet(text+"."))
	}
	if a.RequestCompensation {
		section.Blocks = append(section.Blocks, bullet("Prestation de compensation du handicap (PCH)."))
	}
	if a.RequestAideHours {
		text := "Renforcement de l'accompagnement humain en classe"
		if p := phrases.AideHoursKind(a.AideHoursKind); p != "" {
			text += ", " + p
		}
		section.Blocks = append(section.Blocks, bullet(text+"."))
	}
	if a.RequestEquipment {
		section.Blocks = append(section.Blocks, bullet("Attribution de matériel pédagogique adapté."))
	}
	if len(section.Blocks) == 0 {
		return Section{}, false
	}
	if note := strings.TrimSpace(a.FinalNote); note != "" {
		section.Blocks = append(section.Blocks, callout(note))
	}
	return section, true
}

// buildAttachments lists the uploaded evidence and flags dated documents that
// are expired or about to expire at generation time.
func buildAttachments(docs []dossier.SupportingDocument, now time.Time) (Section, bool) {
	if len(docs) == 0 {
		return Section{}, false
	}
	section := Section{Title: "Pièces jointes"}
	for _, doc := range docs {
		text := doc.Filename
		if doc.Kind != "" {
			text = doc.Kind + " — " + doc.Filename
		}
		if doc.ExpiresOn != nil {
			switch dossier.ClassifyExpiry(*doc.ExpiresOn, now) {
			case dossier.ExpiryExpired:
				text += " (document expiré, à renouveler)"
			case dossier.ExpiryExpiringSoon:
				text += " (expire le " + doc.ExpiresOn.Format("02/01/2006") + ", à renouveler prochainement)"
			}
		}
		section.Blocks = append(section.Blocks, bullet(text))
	}
	return section, true
}

// formatDate renders an ISO interview date as the French administrative form.
// Unparseable input is kept verbatim rather than dropped.
func formatDate(iso string) string {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(iso))
	if err != nil {
		return strings.TrimSpace(iso)
	}
	return t.Format("02/01/2006")
}

func formatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%d", int64(h))
	}
	return strings.Replace(fmt.Sprintf("%.1f", h), ".", ",", 1)
}

func formatEuros(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
