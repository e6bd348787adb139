// File path: internal/dossier/model.go
package dossier

import (
	"time"
)

// AnswerSet is the frozen record of one interview. It is the immutable input
// of the composer: every field may legitimately be unset, and unset always
// means "omit the dependent sentence", never an error. The interview UI
// patches it incrementally while the dossier is a draft.
type AnswerSet struct {
	// Identity.
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	BirthDate     string     `json:"birth_date"` // YYYY-MM-DD
	Grade         string     `json:"grade"`
	SchoolKind    SchoolKind `json:"school_kind"`
	Diagnosis     string     `json:"diagnosis"`
	DiagnosisDate string     `json:"diagnosis_date"`
	Renewal       bool       `json:"renewal"`

	// Autonomy.
	Dressing     AutonomyLevel `json:"dressing"`
	Bathing      AutonomyLevel `json:"bathing"`
	Eating       AutonomyLevel `json:"eating"`
	StayingAlone AutonomyLevel `json:"staying_alone"`
	AutonomyNote string        `json:"autonomy_note"`

	// Behavior.
	HasCrises         bool              `json:"has_crises"`
	CrisisFrequency   CrisisFrequency   `json:"crisis_frequency"`
	CrisisDuration    CrisisDuration    `json:"crisis_duration"`
	HasRigidities     bool              `json:"has_rigidities"`
	EmotionRegulation EmotionRegulation `json:"emotion_regulation"`
	CrisisExample     string            `json:"crisis_example"`

	// Communication.
	Expression      ExpressiveLanguage `json:"expression"`
	Comprehension   Comprehension      `json:"comprehension"`
	PeerInteraction PeerInteraction    `json:"peer_interaction"`
	EyeContact      EyeContact         `json:"eye_contact"`

	// Schooling.
	SchoolDifficulties []DifficultyTag    `json:"school_difficulties"`
	HasAide            bool               `json:"has_aide"`
	AideWeeklyHours    float64            `json:"aide_weekly_hours"`
	AideSufficient     bool               `json:"aide_sufficient"`
	Accommodations     []AccommodationTag `json:"accommodations"`

	// Family impact.
	ChildSleep       SleepQuality    `json:"child_sleep"`
	ParentSleep      ParentSleepBand `json:"parent_sleep"`
	WorkImpact       WorkImpact      `json:"work_impact"`
	SiblingImpact    SiblingImpact   `json:"sibling_impact"`
	SocialImpact     SocialImpact    `json:"social_impact"`
	ExpectationsNote string          `json:"expectations_note"`

	// Care costs, keyed by profession. Absent entry means not followed.
	Care map[Profession]CareItem `json:"care"`

	// Requests.
	RequestAllowance   bool          `json:"request_allowance"`
	AllowanceCategory  string        `json:"allowance_category"` // ordinal tier "1".."6"
	RequestCompensation bool         `json:"request_compensation"`
	RequestAideHours   bool          `json:"request_aide_hours"`
	AideHoursKind      AideHoursKind `json:"aide_hours_kind"`
	RequestEquipment   bool          `json:"request_equipment"`
	FinalNote          string        `json:"final_note"`
}

// CareItem describes the follow-up with one care professional.
type CareItem struct {
	Present     bool   `json:"present"`
	Frequency   string `json:"frequency"`    // free text, e.g. "2 séances par semaine"
	MonthlyCost string `json:"monthly_cost"` // euros as entered; empty or garbage counts as 0
	Reimbursed  bool   `json:"reimbursed"`
}

// Dossier is one child's case as persisted by the store.
type Dossier struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	Premium   bool      `json:"premium"`
	Answers   AnswerSet `json:"answers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SupportingDocument is metadata for one uploaded evidence file. The binary
// lives in the blob store; only the descriptive row is kept here.
type SupportingDocument struct {
	ID        int64      `json:"id"`
	DossierID string     `json:"dossier_id"`
	Kind      string     `json:"kind"` // e.g. "certificat_medical", "bilan_orthophonique"
	Filename  string     `json:"filename"`
	ObjectKey string     `json:"object_key"`
	ExpiresOn *time.Time `json:"expires_on,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
