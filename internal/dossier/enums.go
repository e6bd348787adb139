// File path: internal/dossier/enums.go
package dossier

// Status tracks a dossier through the interview lifecycle.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// SchoolKind is the establishment category declared for the child.
type SchoolKind string

const (
	SchoolPublic      SchoolKind = "publique"
	SchoolPrivate     SchoolKind = "privee"
	SchoolSpecialized SchoolKind = "specialisee"
)

// AutonomyLevel describes how much help a daily-life act requires. The empty
// string is a valid "not answered" state everywhere an AutonomyLevel appears.
type AutonomyLevel string

const (
	AutonomyIndependent AutonomyLevel = "autonome"
	AutonomyPartialHelp AutonomyLevel = "aide_partielle"
	AutonomyFullHelp    AutonomyLevel = "aide_totale"
)

// AutonomyAct identifies one of the daily-life acts covered by the interview.
type AutonomyAct string

const (
	ActDressing     AutonomyAct = "habillage"
	ActBathing      AutonomyAct = "toilette"
	ActEating       AutonomyAct = "repas"
	ActStayingAlone AutonomyAct = "rester_seul"
)

type CrisisFrequency string

const (
	CrisisDaily   CrisisFrequency = "quotidiennes"
	CrisisWeekly  CrisisFrequency = "hebdomadaires"
	CrisisMonthly CrisisFrequency = "mensuelles"
	CrisisRare    CrisisFrequency = "rares"
)

type CrisisDuration string

const (
	DurationShort  CrisisDuration = "<15min"
	DurationMedium CrisisDuration = "15-30min"
	DurationLong   CrisisDuration = ">30min"
)

// EmotionRegulation grades how the child manages emotional overload.
// RegulationEasy is the best level and produces no qualifier in the narrative.
type EmotionRegulation string

const (
	RegulationEasy      EmotionRegulation = "facile"
	RegulationModerate  EmotionRegulation = "moyenne"
	RegulationDifficult EmotionRegulation = "difficile"
)

type ExpressiveLanguage string

const (
	ExpressionFluent        ExpressiveLanguage = "fluide"
	ExpressionSimplePhrases ExpressiveLanguage = "phrases_simples"
	ExpressionIsolatedWords ExpressiveLanguage = "mots_isoles"
	ExpressionNonVerbal     ExpressiveLanguage = "non_verbal"
)

type Comprehension string

const (
	ComprehensionGood    Comprehension = "bonne"
	ComprehensionSimple  Comprehension = "consignes_simples"
	ComprehensionLimited Comprehension = "limitee"
)

type PeerInteraction string

const (
	InteractionEasy        PeerInteraction = "facile"
	InteractionWithdrawn   PeerInteraction = "en_retrait"
	InteractionConflictual PeerInteraction = "conflictuelle"
	InteractionAbsent      PeerInteraction = "inexistante"
)

type EyeContact string

const (
	EyeContactPresent EyeContact = "present"
	EyeContactFleet   EyeContact = "fuyant"
	EyeContactAbsent  EyeContact = "absent"
)

type SleepQuality string

const (
	SleepGood      SleepQuality = "bon"
	SleepAgitated  SleepQuality = "agite"
	SleepFrequent  SleepQuality = "reveils_frequents"
	SleepDisrupted SleepQuality = "tres_perturbe"
)

// ParentSleepBand is the declared nightly sleep band of the guardian.
type ParentSleepBand string

const (
	ParentSleepUnder4 ParentSleepBand = "moins_4h"
	ParentSleep4To6   ParentSleepBand = "4_6h"
	ParentSleep6To8   ParentSleepBand = "6_8h"
	ParentSleepOver8  ParentSleepBand = "plus_8h"
)

type WorkImpact string

const (
	WorkImpactNone        WorkImpact = "aucun"
	WorkImpactArrangement WorkImpact = "amenagement"
	WorkImpactPartTime    WorkImpact = "temps_partiel"
	WorkImpactStopped     WorkImpact = "arret"
)

type SiblingImpact string

const (
	SiblingImpactNone      SiblingImpact = "aucun"
	SiblingImpactTension   SiblingImpact = "tensions"
	SiblingImpactJealousy  SiblingImpact = "jalousie"
	SiblingImpactIsolation SiblingImpact = "isolement"
)

type SocialImpact string

const (
	SocialImpactNormal      SocialImpact = "normale"
	SocialImpactReduced     SocialImpact = "reduite"
	SocialImpactVeryReduced SocialImpact = "tres_reduite"
	SocialImpactAbsent      SocialImpact = "inexistante"
)

// DifficultyTag is one entry of the multi-select school difficulty question.
// Insertion order is preserved for output, with no semantic meaning.
type DifficultyTag string

const (
	DifficultyConcentration DifficultyTag = "concentration"
	DifficultyReading       DifficultyTag = "lecture"
	DifficultyWriting       DifficultyTag = "ecriture"
	DifficultyMath          DifficultyTag = "mathematiques"
	DifficultyPeers         DifficultyTag = "relations"
	DifficultyFatigue       DifficultyTag = "fatigue"
)

type AccommodationTag string

const (
	AccommodationExtraTime       AccommodationTag = "tiers_temps"
	AccommodationMaterial        AccommodationTag = "materiel_adapte"
	AccommodationInstructions    AccommodationTag = "consignes_adaptees"
	AccommodationAdaptedSeat     AccommodationTag = "place_amenagee"
	AccommodationReducedHomework AccommodationTag = "devoirs_alleges"
)

// AideHoursKind distinguishes the two flavours of the aide-hours request.
type AideHoursKind string

const (
	AideIndividualized AideHoursKind = "individualisee"
	AideMoreHours      AideHoursKind = "heures_supplementaires"
)

// Profession identifies one of the care professionals tracked by the cost
// section. The composer iterates them in CareProfessions order.
type Profession string

const (
	ProfessionPsychologist    Profession = "psychologue"
	ProfessionSpeechTherapist Profession = "orthophoniste"
	ProfessionOccupational    Profession = "ergotherapeute"
	ProfessionPsychomotor     Profession = "psychomotricien"
	ProfessionPsychiatrist    Profession = "pedopsychiatre"
)

// CareProfessions fixes the display order of care-cost rows.
var CareProfessions = []Profession{
	ProfessionPsychologist,
	ProfessionSpeechTherapist,
	ProfessionOccupational,
	ProfessionPsychomotor,
	ProfessionPsychiatrist,
}
