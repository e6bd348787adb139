// File path: internal/dossier/derive.go
package dossier

import (
	"strconv"
	"strings"
	"time"
)

// ExpiryStatus classifies a dated supporting document against the generation
// date.
type ExpiryStatus string

const (
	ExpiryCurrent      ExpiryStatus = "current"
	ExpiryExpiringSoon ExpiryStatus = "expiring_soon"
	ExpiryExpired      ExpiryStatus = "expired"
)

// expiryWarningWindow is how far ahead a document is reported as expiring.
const expiryWarningWindow = 3 // months

// TotalMonthlyCost sums the monthly out-of-pocket costs of the professionals
// flagged present. Reimbursed follow-ups and unparseable amounts contribute
// zero.
func (a AnswerSet) TotalMonthlyCost() float64 {
	var total float64
	for _, prof := range CareProfessions {
		item, ok := a.Care[prof]
		if !ok || !item.Present || item.Reimbursed {
			continue
		}
		total += ParseCost(item.MonthlyCost)
	}
	return total
}

// ParseCost converts a guardian-entered amount to euros. Amounts arrive as
// free text ("120", "120,50", "120 €"); anything unparseable counts as zero.
func ParseCost(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimSuffix(cleaned, "€")
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ClassifyExpiry reports whether a document expiring at the given date is
// already expired, expiring within the warning window, or still current.
func ClassifyExpiry(expiresOn, now time.Time) ExpiryStatus {
	if expiresOn.Before(now) {
		return ExpiryExpired
	}
	if !expiresOn.After(now.AddDate(0, expiryWarningWindow, 0)) {
		return ExpiryExpiringSoon
	}
	return ExpiryCurrent
}

// Merge overlays the non-zero fields of the patch onto the receiver and
// returns the result. It backs the interview UI's autosave endpoint: the UI
// sends only the fields it changed. Boolean fields ride along with their
// section's marker fields so that unanswered sections stay unanswered.
func (a AnswerSet) Merge(patch AnswerSet) AnswerSet {
	out := a

	if patch.FirstName != "" {
		out.FirstName = patch.FirstName
	}
	if patch.LastName != "" {
		out.LastName = patch.LastName
	}
	if patch.BirthDate != "" {
		out.BirthDate = patch.BirthDate
	}
	if patch.Grade != "" {
		out.Grade = patch.Grade
	}
	if patch.SchoolKind != "" {
		out.SchoolKind = patch.SchoolKind
	}
	if patch.Diagnosis != "" {
		out.Diagnosis = patch.Diagnosis
	}
	if patch.DiagnosisDate != "" {
		out.DiagnosisDate = patch.DiagnosisDate
	}
	if patch.Renewal {
		out.Renewal = true
	}

	if patch.Dressing != "" {
		out.Dressing = patch.Dressing
	}
	if patch.Bathing != "" {
		out.Bathing = patch.Bathing
	}
	if patch.Eating != "" {
		out.Eating = patch.Eating
	}
	if patch.StayingAlone != "" {
		out.StayingAlone = patch.StayingAlone
	}
	if patch.AutonomyNote != "" {
		out.AutonomyNote = patch.AutonomyNote
	}

	if patch.HasCrises {
		out.HasCrises = true
	}
	if patch.CrisisFrequency != "" {
		out.CrisisFrequency = patch.CrisisFrequency
	}
	if patch.CrisisDuration != "" {
		out.CrisisDuration = patch.CrisisDuration
	}
	if patch.HasRigidities {
		out.HasRigidities = true
	}
	if patch.EmotionRegulation != "" {
		out.EmotionRegulation = patch.EmotionRegulation
	}
	if patch.CrisisExample != "" {
		out.CrisisExample = patch.CrisisExample
	}

	if patch.Expression != "" {
		out.Expression = patch.Expression
	}
	if patch.Comprehension != "" {
		out.Comprehension = patch.Comprehension
	}
	if patch.PeerInteraction != "" {
		out.PeerInteraction = patch.PeerInteraction
	}
	if patch.EyeContact != "" {
		out.EyeContact = patch.EyeContact
	}

	if len(patch.SchoolDifficulties) > 0 {
		out.SchoolDifficulties = append([]DifficultyTag(nil), patch.SchoolDifficulties...)
	}
	if patch.HasAide {
		out.HasAide = true
		out.AideWeeklyHours = patch.AideWeeklyHours
		out.AideSufficient = patch.AideSufficient
	}
	if len(patch.Accommodations) > 0 {
		out.Accommodations = append([]AccommodationTag(nil), patch.Accommodations...)
	}

	if patch.ChildSleep != "" {
		out.ChildSleep = patch.ChildSleep
	}
	if patch.ParentSleep != "" {
		out.ParentSleep = patch.ParentSleep
	}
	if patch.WorkImpact != "" {
		out.WorkImpact = patch.WorkImpact
	}
	if patch.SiblingImpact != "" {
		out.SiblingImpact = patch.SiblingImpact
	}
	if patch.SocialImpact != "" {
		out.SocialImpact = patch.SocialImpact
	}
	if patch.ExpectationsNote != "" {
		out.ExpectationsNote = patch.ExpectationsNote
	}

	if len(patch.Care) > 0 {
		if out.Care == nil {
			out.Care = make(map[Profession]CareItem, len(patch.Care))
		} else {
			merged := make(map[Profession]CareItem, len(out.Care)+len(patch.Care))
			for k, v := range out.Care {
				merged[k] = v
			}
			out.Care = merged
		}
		for prof, item := range patch.Care {
			out.Care[prof] = item
		}
	}

	if patch.RequestAllowance {
		out.RequestAllowance = true
	}
	if patch.AllowanceCategory != "" {
		out.AllowanceCategory = patch.AllowanceCategory
	}
	if patch.RequestCompensation {
		out.RequestCompensation = true
	}
	if patch.RequestAideHours {
		out.RequestAideHours = true
	}
	if patch.AideHoursKind != "" {
		out.AideHoursKind = patch.AideHoursKind
	}
	if patch.RequestEquipment {
		out.RequestEquipment = true
	}
	if patch.FinalNote != "" {
		out.FinalNote = patch.FinalNote
	}

	return out
}
