// File path: internal/phrases/phrases.go

// Package phrases maps interview answer codes to canonical administrative
// phrases. Every lookup is an exhaustive switch with an explicit empty-string
// default: an unknown or unset code always yields "", never an error, so the
// composer can concatenate results without guarding each call.
package phrases

import (
	"github.com/acambier/plume/internal/dossier"
)

// Autonomy phrases one daily-life act at the given dependency level.
// Independent acts phrase to nothing: the narrative only surfaces needs.
func Autonomy(act dossier.AutonomyAct, level dossier.AutonomyLevel) string {
	switch act {
	case dossier.ActDressing:
		switch level {
		case dossier.AutonomyPartialHelp:
			return "a besoin d'une aide partielle pour s'habiller"
		case dossier.AutonomyFullHelp:
			return "doit être entièrement habillé par un adulte"
		default:
			return ""
		}
	case dossier.ActBathing:
		switch level {
		case dossier.AutonomyPartialHelp:
			return "a besoin d'une supervision et d'une aide partielle pour la toilette"
		case dossier.AutonomyFullHelp:
			return "dépend entièrement d'un adulte pour la toilette"
		default:
			return ""
		}
	case dossier.ActEating:
		switch level {
		case dossier.AutonomyPartialHelp:
			return "a besoin d'être accompagné pendant les repas"
		case dossier.AutonomyFullHelp:
			return "doit être nourri par un adulte"
		default:
			return ""
		}
	case dossier.ActStayingAlone:
		switch level {
		case dossier.AutonomyPartialHelp:
			return "ne peut rester seul que de courts instants sous surveillance rapprochée"
		case dossier.AutonomyFullHelp:
			return "ne peut en aucun cas rester seul"
		default:
			return ""
		}
	default:
		return ""
	}
}

func CrisisFrequency(code dossier.CrisisFrequency) string {
	switch code {
	case dossier.CrisisDaily:
		return "tous les jours"
	case dossier.CrisisWeekly:
		return "plusieurs fois par semaine"
	case dossier.CrisisMonthly:
		return "plusieurs fois par mois"
	case dossier.CrisisRare:
		return "de manière occasionnelle"
	default:
		return ""
	}
}

func CrisisDuration(code dossier.CrisisDuration) string {
	switch code {
	case dossier.DurationShort:
		return "moins de 15 minutes"
	case dossier.DurationMedium:
		return "15 à 30 minutes"
	case dossier.DurationLong:
		return "plus de 30 minutes"
	default:
		return ""
	}
}

// EmotionRegulation qualifies emotional self-regulation. The best level
// phrases to nothing: the narrative only mentions regulation when it is a
// difficulty.
func EmotionRegulation(code dossier.EmotionRegulation) string {
	switch code {
	case dossier.RegulationModerate:
		return "La gestion de ses émotions reste fragile et nécessite un accompagnement régulier."
	case dossier.RegulationDifficult:
		return "La gestion de ses émotions est très difficile, y compris avec l'accompagnement d'un adulte."
	default:
		return ""
	}
}

func Expression(code dossier.ExpressiveLanguage) string {
	switch code {
	case dossier.ExpressionFluent:
		return "s'exprime de manière fluide"
	case dossier.ExpressionSimplePhrases:
		return "s'exprime par phrases simples"
	case dossier.ExpressionIsolatedWords:
		return "s'exprime par mots isolés"
	case dossier.ExpressionNonVerbal:
		return "ne communique pas verbalement"
	default:
		return ""
	}
}

func Comprehension(code dossier.Comprehension) string {
	switch code {
	case dossier.ComprehensionGood:
		return "comprend bien les consignes qui lui sont données"
	case dossier.ComprehensionSimple:
		return "ne comprend que les consignes simples et courtes"
	case dossier.ComprehensionLimited:
		return "présente une compréhension très limitée des consignes"
	default:
		return ""
	}
}

func PeerInteraction(code dossier.PeerInteraction) string {
	switch code {
	case dossier.InteractionEasy:
		return "entre facilement en relation avec les autres enfants"
	case dossier.InteractionWithdrawn:
		return "reste en retrait des autres enfants"
	case dossier.InteractionConflictual:
		return "entre difficilement en relation avec ses pairs, avec des conflits fréquents"
	case dossier.InteractionAbsent:
		return "n'a pas d'interaction avec les autres enfants"
	default:
		return ""
	}
}

func EyeContact(code dossier.EyeContact) string {
	switch code {
	case dossier.EyeContactPresent:
		return "le contact visuel est présent"
	case dossier.EyeContactFleet:
		return "le contact visuel est fuyant"
	case dossier.EyeContactAbsent:
		return "le contact visuel est absent"
	default:
		return ""
	}
}

func ChildSleep(code dossier.SleepQuality) string {
	switch code {
	case dossier.SleepGood:
		return "Le sommeil de l'enfant est de bonne qualité."
	case dossier.SleepAgitated:
		return "Le sommeil de l'enfant est agité."
	case dossier.SleepFrequent:
		return "Le sommeil de l'enfant est entrecoupé de réveils fréquents."
	case dossier.SleepDisrupted:
		return "Le sommeil de l'enfant est très perturbé, avec des nuits très incomplètes."
	default:
		return ""
	}
}

func ParentSleep(code dossier.ParentSleepBand) string {
	switch code {
	case dossier.ParentSleepUnder4:
		return "Les parents dorment moins de 4 heures par nuit."
	case dossier.ParentSleep4To6:
		return "Les parents dorment entre 4 et 6 heures par nuit."
	case dossier.ParentSleep6To8:
		return "Les parents dorment entre 6 et 8 heures par nuit."
	case dossier.ParentSleepOver8:
		return "Le sommeil des parents est préservé."
	default:
		return ""
	}
}

// WorkImpact phrases the professional repercussions. "aucun" phrases to
// nothing and the sentence is omitted.
func WorkImpact(code dossier.WorkImpact) string {
	switch code {
	case dossier.WorkImpactArrangement:
		return "La situation a nécessité un aménagement du temps de travail d'un des parents."
	case dossier.WorkImpactPartTime:
		return "Un des parents a dû réduire son activité professionnelle à temps partiel."
	case dossier.WorkImpactStopped:
		return "Un des parents a dû cesser son activité professionnelle."
	default:
		return ""
	}
}

func SiblingImpact(code dossier.SiblingImpact) string {
	switch code {
	case dossier.SiblingImpactTension:
		return "La fratrie est exposée à des tensions quotidiennes."
	case dossier.SiblingImpactJealousy:
		return "La fratrie exprime un sentiment de jalousie lié à l'attention constante que requiert l'enfant."
	case dossier.SiblingImpactIsolation:
		return "Les frères et sœurs souffrent d'un isolement au sein de la famille."
	default:
		return ""
	}
}

func SocialImpact(code dossier.SocialImpact) string {
	switch code {
	case dossier.SocialImpactReduced:
		return "La vie sociale de la famille est réduite."
	case dossier.SocialImpactVeryReduced:
		return "La vie sociale de la famille est très fortement réduite."
	case dossier.SocialImpactAbsent:
		return "La famille n'a plus de vie sociale."
	default:
		return ""
	}
}

func SchoolDifficulty(tag dossier.DifficultyTag) string {
	switch tag {
	case dossier.DifficultyConcentration:
		return "des difficultés de concentration"
	case dossier.DifficultyReading:
		return "des difficultés en lecture"
	case dossier.DifficultyWriting:
		return "des difficultés à l'écrit"
	case dossier.DifficultyMath:
		return "des difficultés en mathématiques"
	case dossier.DifficultyPeers:
		return "des difficultés relationnelles avec les autres élèves"
	case dossier.DifficultyFatigue:
		return "une fatigabilité importante en classe"
	default:
		return ""
	}
}

func Accommodation(tag dossier.AccommodationTag) string {
	switch tag {
	case dossier.AccommodationExtraTime:
		return "tiers temps aux évaluations"
	case dossier.AccommodationMaterial:
		return "matériel pédagogique adapté"
	case dossier.AccommodationInstructions:
		return "consignes adaptées et reformulées"
	case dossier.AccommodationAdaptedSeat:
		return "placement aménagé dans la classe"
	case dossier.AccommodationReducedHomework:
		return "travail à la maison allégé"
	default:
		return ""
	}
}

func SchoolKind(code dossier.SchoolKind) string {
	switch code {
	case dossier.SchoolPublic:
		return "dans un établissement public"
	case dossier.SchoolPrivate:
		return "dans un établissement privé"
	case dossier.SchoolSpecialized:
		return "dans un établissement spécialisé"
	default:
		return ""
	}
}

// AllowanceCategory phrases the ordinal severity tier attached to the cash
// allowance request.
func AllowanceCategory(code string) string {
	switch code {
	case "1":
		return "complément de 1ère catégorie"
	case "2":
		return "complément de 2ème catégorie"
	case "3":
		return "complément de 3ème catégorie"
	case "4":
		return "complément de 4ème catégorie"
	case "5":
		return "complément de 5ème catégorie"
	case "6":
		return "complément de 6ème catégorie"
	default:
		return ""
	}
}

func AideHoursKind(code dossier.AideHoursKind) string {
	switch code {
	case dossier.AideIndividualized:
		return "sous forme d'un accompagnement individualisé"
	case dossier.AideMoreHours:
		return "avec un volume horaire hebdomadaire augmenté"
	default:
		return ""
	}
}

// ProfessionLabel is the display label of a care professional.
func ProfessionLabel(p dossier.Profession) string {
	switch p {
	case dossier.ProfessionPsychologist:
		return "Psychologue"
	case dossier.ProfessionSpeechTherapist:
		return "Orthophoniste"
	case dossier.ProfessionOccupational:
		return "Ergothérapeute"
	case dossier.ProfessionPsychomotor:
		return "Psychomotricien"
	case dossier.ProfessionPsychiatrist:
		return "Pédopsychiatre"
	default:
		return ""
	}
}
