package store

import "time"

// Analysis status constants
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Activity type constants
const (
	ActivityResumeUploaded     = "resume_uploaded"
	ActivityAnalysisCompleted  = "analysis_completed"
	ActivityJobPositionCreated = "job_position_created"
	ActivityBulkUpload         = "bulk_upload"
)

// JobPosition represents an open role that resumes are screened against.
type JobPosition struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// Candidate represents one uploaded resume. Name/email/phone start as
// placeholders and are filled in once analysis completes.
type Candidate struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	ResumeText string    `json:"resume_text"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ResumeAnalysis holds the scoring output for a candidate. JobPositionID is
// zero when the resume was screened without a target position.
type ResumeAnalysis struct {
	ID              int            `json:"id"`
	CandidateID     int            `json:"candidate_id"`
	JobPositionID   int            `json:"job_position_id,omitempty"`
	OverallScore    int            `json:"overall_score"`
	SkillsScore     int            `json:"skills_score"`
	ExperienceScore int            `json:"experience_score"`
	EducationScore  int            `json:"education_score"`
	ExtractedSkills []string       `json:"extracted_skills"`
	KeyPoints       []string       `json:"key_points"`
	Recommendations string         `json:"recommendations"`
	RawAnalysis     map[string]any `json:"raw_analysis,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
}

// ProcessingItem tracks the lifecycle of one resume through the pipeline.
type ProcessingItem struct {
	ID           int       `json:"id"`
	CandidateID  int       `json:"candidate_id"`
	Status       string    `json:"status"`
	Progress     int       `json:"progress"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Activity is an audit log entry shown on the dashboard feed.
type Activity struct {
	ID            int       `json:"id"`
	Type          string    `json:"type"`
	Description   string    `json:"description"`
	CandidateID   int       `json:"candidate_id,omitempty"`
	JobPositionID int       `json:"job_position_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// JobPositionInput is used when creating a new job position. The store
// assigns the id and creation timestamp.
type JobPositionInput struct {
	Title        string
	Department   string
	Description  string
	Requirements []string
	IsActive     bool
}

// CandidateInput is used when creating a new candidate record.
type CandidateInput struct {
	Name       string
	Email      string
	Phone      string
	ResumeText string
	Filename   string
	FileSize   int64
}

// AnalysisInput is used when recording a completed analysis.
type AnalysisInput struct {
	CandidateID     int
	JobPositionID   int
	OverallScore    int
	SkillsScore     int
	ExperienceScore int
	EducationScore  int
	ExtractedSkills []string
	KeyPoints       []string
	Recommendations string
	RawAnalysis     map[string]any
	Status          string
}

// ProcessingItemInput is used when enqueuing a processing record.
type ProcessingItemInput struct {
	CandidateID  int
	Status       string
	Progress     int
	ErrorMessage string
}

// ActivityInput is used when logging an activity.
type ActivityInput struct {
	Type          string
	Description   string
	CandidateID   int
	JobPositionID int
}

// JobPositionPatch holds optional field updates for a job position.
// Nil fields are left unchanged.
type JobPositionPatch struct {
	Title        *string
	Department   *string
	Description  *string
	Requirements *[]string
	IsActive     *bool
}

// CandidatePatch holds optional field updates for a candidate.
type CandidatePatch struct {
	Name  *string
	Email *string
	Phone *string
}

// AnalysisPatch holds optional field updates for an analysis.
type AnalysisPatch struct {
	Status          *string
	Recommendations *string
}

// ProcessingItemPatch holds optional field updates for a processing item.
// UpdatedAt is bumped by the store on every successful patch.
type ProcessingItemPatch struct {
	Status       *string
	Progress     *int
	ErrorMessage *string
}

// CandidateView is a candidate flattened together with its analysis scores
// for the candidate list and dashboard. Score fields are zero and
// ExtractedSkills empty when no analysis exists yet.
type CandidateView struct {
	Candidate
	OverallScore    int             `json:"overall_score"`
	SkillsScore     int             `json:"skills_score"`
	ExperienceScore int             `json:"experience_score"`
	EducationScore  int             `json:"education_score"`
	ExtractedSkills []string        `json:"extracted_skills"`
	JobPositionID   int             `json:"job_position_id,omitempty"`
	Analysis        *ResumeAnalysis `json:"analysis,omitempty"`
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneMap(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// copyJobPosition returns a detached copy safe to hand to callers.
func copyJobPosition(j JobPosition) JobPosition {
	j.Requirements = cloneStrings(j.Requirements)
	return j
}

func copyAnalysis(a ResumeAnalysis) ResumeAnalysis {
	a.ExtractedSkills = cloneStrings(a.ExtractedSkills)
	a.KeyPoints = cloneStrings(a.KeyPoints)
	a.RawAnalysis = cloneMap(a.RawAnalysis)
	return a
}
