package types

import "github.com/go-playground/validator/v10"

// AnalyzeRequest asks for extraction of one document. Type selects the
// extraction profile; it defaults to "resume" when empty.
type AnalyzeRequest struct {
	Content string `json:"content" validate:"required,min=1"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=resume job"`
}

// MatchRequest asks for a match score between a resume and a job posting.
type MatchRequest struct {
	ResumeContent  string `json:"resume_content" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
}

// OptimizeRequest asks for the full optimization report.
type OptimizeRequest struct {
	ResumeContent  string `json:"resume_content" validate:"required,min=1"`
	JobDescription string `json:"job_description" validate:"required,min=1"`
	JobTitle       string `json:"job_title,omitempty"`
	CompanyName    string `json:"company_name,omitempty"`
}

// FetchJobRequest asks the server to retrieve a job posting from a URL and
// return its extracted plain text.
type FetchJobRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the MatchRequest using the validator.
func (r *MatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the FetchJobRequest using the validator.
func (r *FetchJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
