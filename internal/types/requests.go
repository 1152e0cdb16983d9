package types

import (
	"github.com/go-playground/validator/v10"
)

// ProcessResumeRequest starts a pipeline run for a stored document.
// Exactly one of JobDescription and JobURL should be set; when both
// are present the inline description wins.
type ProcessResumeRequest struct {
	Bucket         string `json:"bucket" validate:"required,min=1"`
	Key            string `json:"key" validate:"required,min=1"`
	ResumeID       string `json:"resume_id,omitempty"`
	JobDescription string `json:"job_description,omitempty"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	RequesterID    string `json:"requester_id,omitempty"`
}

// Validate validates the ProcessResumeRequest using the validator.
func (r *ProcessResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates an InvocationPayload received by the analysis
// stage.
func (p *InvocationPayload) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
