// file: internals/features/learning/projects/dto/project_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	pmodel "tutorialku_backend/internals/features/learning/projects/model"
)

/* ==========================================================================================
   REQUEST — PROJECT (admin)
========================================================================================== */

type CreateProjectRequest struct {
	ProjectTitle          string  `json:"project_title" validate:"required,min=3,max=120"`
	ProjectDescription    *string `json:"project_description" validate:"omitempty,max=5000"`
	ProjectRequiresReview bool    `json:"project_requires_review"`
}

func (r *CreateProjectRequest) ToModel() *pmodel.ProjectModel {
	return &pmodel.ProjectModel{
		ProjectTitle:          r.ProjectTitle,
		ProjectDescription:    r.ProjectDescription,
		ProjectRequiresReview: r.ProjectRequiresReview,
	}
}

type UpdateProjectRequest struct {
	ProjectTitle          *string `json:"project_title" validate:"omitempty,min=3,max=120"`
	ProjectDescription    *string `json:"project_description" validate:"omitempty,max=5000"`
	ProjectRequiresReview *bool   `json:"project_requires_review" validate:"omitempty"`
	ProjectIsPublished    *bool   `json:"project_is_published" validate:"omitempty"`
}

func (r *UpdateProjectRequest) ApplyToModel(m *pmodel.ProjectModel) {
	if r.ProjectTitle != nil {
		m.ProjectTitle = *r.ProjectTitle
	}
	if r.ProjectDescription != nil {
		m.ProjectDescription = r.ProjectDescription
	}
	if r.ProjectRequiresReview != nil {
		m.ProjectRequiresReview = *r.ProjectRequiresReview
	}
	if r.ProjectIsPublished != nil {
		m.ProjectIsPublished = *r.ProjectIsPublished
	}
}

/* ==========================================================================================
   REQUEST — STEP (admin)
========================================================================================== */

type StepHintRequest struct {
	Level              int    `json:"level" validate:"gte=1"`
	Text               string `json:"text" validate:"required"`
	UnlockAfterMinutes int    `json:"unlock_after_minutes" validate:"gte=0"`
}

type StepCodeSnippetRequest struct {
	Language string `json:"language" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

type CreateProjectStepRequest struct {
	ProjectStepProjectID   uuid.UUID               `json:"project_step_project_id" validate:"required"`
	ProjectStepOrderIndex  int                     `json:"project_step_order_index" validate:"gte=0"`
	ProjectStepTitle       string                  `json:"project_step_title" validate:"required,min=3,max=120"`
	ProjectStepDescription *string                 `json:"project_step_description" validate:"omitempty,max=10000"`
	ProjectStepHints       []StepHintRequest       `json:"project_step_hints" validate:"omitempty,dive"`
	ProjectStepCodeSnippet *StepCodeSnippetRequest `json:"project_step_code_snippet" validate:"omitempty"`
	ProjectStepIsPublished bool                    `json:"project_step_is_published"`
}

func (r *CreateProjectStepRequest) ToModel() (*pmodel.ProjectStepModel, error) {
	m := &pmodel.ProjectStepModel{
		ProjectStepProjectID:   r.ProjectStepProjectID,
		ProjectStepOrderIndex:  r.ProjectStepOrderIndex,
		ProjectStepTitle:       r.ProjectStepTitle,
		ProjectStepDescription: r.ProjectStepDescription,
		ProjectStepIsPublished: r.ProjectStepIsPublished,
	}
	if len(r.ProjectStepHints) > 0 {
		hints := make([]pmodel.StepHint, 0, len(r.ProjectStepHints))
		for _, h := range r.ProjectStepHints {
			hints = append(hints, pmodel.StepHint{
				Level:              h.Level,
				Text:               h.Text,
				UnlockAfterMinutes: h.UnlockAfterMinutes,
			})
		}
		if err := m.SetHints(hints); err != nil {
			return nil, err
		}
	}
	if r.ProjectStepCodeSnippet != nil {
		if err := m.SetCodeSnippet(pmodel.StepCodeSnippet{
			Language: r.ProjectStepCodeSnippet.Language,
			Content:  r.ProjectStepCodeSnippet.Content,
		}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

type UpdateProjectStepRequest struct {
	ProjectStepOrderIndex  *int                    `json:"project_step_order_index" validate:"omitempty,gte=0"`
	ProjectStepTitle       *string                 `json:"project_step_title" validate:"omitempty,min=3,max=120"`
	ProjectStepDescription *string                 `json:"project_step_description" validate:"omitempty,max=10000"`
	ProjectStepHints       []StepHintRequest       `json:"project_step_hints" validate:"omitempty,dive"`
	ProjectStepCodeSnippet *StepCodeSnippetRequest `json:"project_step_code_snippet" validate:"omitempty"`
	ProjectStepIsPublished *bool                   `json:"project_step_is_published" validate:"omitempty"`
}

func (r *UpdateProjectStepRequest) ApplyToModel(m *pmodel.ProjectStepModel) error {
	if r.ProjectStepOrderIndex != nil {
		m.ProjectStepOrderIndex = *r.ProjectStepOrderIndex
	}
	if r.ProjectStepTitle != nil {
		m.ProjectStepTitle = *r.ProjectStepTitle
	}
	if r.ProjectStepDescription != nil {
		m.ProjectStepDescription = r.ProjectStepDescription
	}
	if r.ProjectStepHints != nil {
		hints := make([]pmodel.StepHint, 0, len(r.ProjectStepHints))
		for _, h := range r.ProjectStepHints {
			hints = append(hints, pmodel.StepHint{
				Level:              h.Level,
				Text:               h.Text,
				UnlockAfterMinutes: h.UnlockAfterMinutes,
			})
		}
		if err := m.SetHints(hints); err != nil {
			return err
		}
	}
	if r.ProjectStepCodeSnippet != nil {
		if err := m.SetCodeSnippet(pmodel.StepCodeSnippet{
			Language: r.ProjectStepCodeSnippet.Language,
			Content:  r.ProjectStepCodeSnippet.Content,
		}); err != nil {
			return err
		}
	}
	if r.ProjectStepIsPublished != nil {
		m.ProjectStepIsPublished = *r.ProjectStepIsPublished
	}
	return nil
}

/* ==========================================================================================
   RESPONSE
========================================================================================== */

type ProjectResponse struct {
	ProjectID             uuid.UUID `json:"project_id"`
	ProjectSlug           string    `json:"project_slug"`
	ProjectTitle          string    `json:"project_title"`
	ProjectDescription    *string   `json:"project_description,omitempty"`
	ProjectRequiresReview bool      `json:"project_requires_review"`
	ProjectIsPublished    bool      `json:"project_is_published"`
	ProjectCreatedAt      time.Time `json:"project_created_at"`
}

func FromModelProject(m *pmodel.ProjectModel) ProjectResponse {
	return ProjectResponse{
		ProjectID:             m.ProjectID,
		ProjectSlug:           m.ProjectSlug,
		ProjectTitle:          m.ProjectTitle,
		ProjectDescription:    m.ProjectDescription,
		ProjectRequiresReview: m.ProjectRequiresReview,
		ProjectIsPublished:    m.ProjectIsPublished,
		ProjectCreatedAt:      m.ProjectCreatedAt,
	}
}

func FromModelProjects(ms []pmodel.ProjectModel) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelProject(&ms[i]))
	}
	return out
}

type ProjectStepResponse struct {
	ProjectStepID          uuid.UUID          `json:"project_step_id"`
	ProjectStepProjectID   uuid.UUID          `json:"project_step_project_id"`
	ProjectStepOrderIndex  int                `json:"project_step_order_index"`
	ProjectStepTitle       string             `json:"project_step_title"`
	ProjectStepDescription *string            `json:"project_step_description,omitempty"`
	ProjectStepHints       []pmodel.StepHint  `json:"project_step_hints,omitempty"`
	ProjectStepIsPublished bool               `json:"project_step_is_published"`
}

func FromModelProjectStep(m *pmodel.ProjectStepModel) ProjectStepResponse {
	hints, _ := m.Hints()
	return ProjectStepResponse{
		ProjectStepID:          m.ProjectStepID,
		ProjectStepProjectID:   m.ProjectStepProjectID,
		ProjectStepOrderIndex:  m.ProjectStepOrderIndex,
		ProjectStepTitle:       m.ProjectStepTitle,
		ProjectStepDescription: m.ProjectStepDescription,
		ProjectStepHints:       hints,
		ProjectStepIsPublished: m.ProjectStepIsPublished,
	}
}

func FromModelProjectSteps(ms []pmodel.ProjectStepModel) []ProjectStepResponse {
	out := make([]ProjectStepResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModelProjectStep(&ms[i]))
	}
	return out
}
