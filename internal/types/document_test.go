package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyFileType(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want FileType
	}{
		{"pdf lowercase", "resumes/john.pdf", FileTypePdf},
		{"pdf uppercase", "resumes/JOHN.PDF", FileTypePdf},
		{"pdf mixed case", "resumes/John.Pdf", FileTypePdf},
		{"docx lowercase", "resumes/jane.docx", FileTypeDocx},
		{"docx uppercase", "resumes/JANE.DOCX", FileTypeDocx},
		{"doc is not docx", "resumes/old.doc", FileTypeUnknown},
		{"txt", "resumes/plain.txt", FileTypeUnknown},
		{"no extension", "resumes/noext", FileTypeUnknown},
		{"empty key", "", FileTypeUnknown},
		{"pdf in middle of name", "my.pdf.backup", FileTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFileType(tt.key))
		})
	}
}

func TestNewDocumentIdentity(t *testing.T) {
	identity := NewDocumentIdentity("resumes", "john.PDF")

	assert.Equal(t, "resumes", identity.Bucket)
	assert.Equal(t, "john.PDF", identity.Key)
	assert.Equal(t, FileTypePdf, identity.FileType)
}

func TestCountEntities(t *testing.T) {
	tests := []struct {
		name     string
		entities ExtractedEntities
		want     int
	}{
		{
			"all fields present",
			ExtractedEntities{Name: "John Doe", Email: "j@example.com", Phone: "555-123-4567", Skills: []string{"Python", "AWS"}},
			5,
		},
		{
			"skills only",
			ExtractedEntities{Skills: []string{"Python"}},
			1,
		},
		{
			"empty",
			ExtractedEntities{},
			0,
		},
		{
			"name and email only",
			ExtractedEntities{Name: "Jane", Email: "jane@example.com"},
			2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entities.CountEntities())
		})
	}
}

func TestProcessResumeRequest_Validate(t *testing.T) {
	valid := ProcessResumeRequest{Bucket: "resumes", Key: "cv.pdf"}
	assert.NoError(t, valid.Validate())

	missingKey := ProcessResumeRequest{Bucket: "resumes"}
	assert.Error(t, missingKey.Validate())

	badURL := ProcessResumeRequest{Bucket: "resumes", Key: "cv.pdf", JobURL: "not a url"}
	assert.Error(t, badURL.Validate())
}

func TestInvocationPayload_Validate(t *testing.T) {
	valid := InvocationPayload{CorrelationID: "corr-1", ResumeID: "resume-1", Text: "text"}
	assert.NoError(t, valid.Validate())

	missingText := InvocationPayload{CorrelationID: "corr-1", ResumeID: "resume-1"}
	assert.Error(t, missingText.Validate())
}
