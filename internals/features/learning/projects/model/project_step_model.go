// file: internals/features/learning/projects/model/project_step_model.go
package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =============================================================================
   MODEL: project_steps
   Catatan:
   - order index unik per project (idx_project_steps_order).
   - hints & code snippet disimpan JSONB tapi WAJIB lewat setter bertipe di
     bawah; konten rusak ditolak saat tulis, bukan saat baca.
   - step yang sudah published tidak diubah oleh engine progres.
============================================================================= */
type ProjectStepModel struct {
	// PK
	ProjectStepID uuid.UUID `json:"project_step_id" gorm:"column:project_step_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// FK
	ProjectStepProjectID uuid.UUID `json:"project_step_project_id" gorm:"column:project_step_project_id;type:uuid;not null;index:idx_project_steps_order,priority:1,unique"`

	// Urutan dalam project (unik per project)
	ProjectStepOrderIndex int `json:"project_step_order_index" gorm:"column:project_step_order_index;not null;index:idx_project_steps_order,priority:2,unique"`

	ProjectStepTitle       string  `json:"project_step_title" gorm:"column:project_step_title;type:varchar(120);not null"`
	ProjectStepDescription *string `json:"project_step_description,omitempty" gorm:"column:project_step_description;type:text"`

	// Konten terstruktur (diisi lewat setter bertipe)
	ProjectStepHints       datatypes.JSON `json:"project_step_hints,omitempty" gorm:"column:project_step_hints;type:jsonb"`
	ProjectStepCodeSnippet datatypes.JSON `json:"project_step_code_snippet,omitempty" gorm:"column:project_step_code_snippet;type:jsonb"`

	ProjectStepIsPublished bool `json:"project_step_is_published" gorm:"column:project_step_is_published;not null;default:false"`

	// Audit
	ProjectStepCreatedAt time.Time      `json:"project_step_created_at" gorm:"column:project_step_created_at;type:timestamptz;not null;default:now()"`
	ProjectStepUpdatedAt time.Time      `json:"project_step_updated_at" gorm:"column:project_step_updated_at;type:timestamptz;not null;default:now()"`
	ProjectStepDeletedAt gorm.DeletedAt `json:"project_step_deleted_at,omitempty" gorm:"column:project_step_deleted_at;index"`
}

func (ProjectStepModel) TableName() string { return "project_steps" }

func (m *ProjectStepModel) BeforeSave(_ *gorm.DB) error {
	m.ProjectStepUpdatedAt = time.Now()
	return nil
}

/* ===================================================================
   Tagged records — hint & code snippet
   (bukan blob bebas; divalidasi saat set)
=================================================================== */

type StepHint struct {
	Level              int    `json:"level"`
	Text               string `json:"text"`
	UnlockAfterMinutes int    `json:"unlock_after_minutes"`
}

type StepCodeSnippet struct {
	Language string `json:"language"`
	Content  string `json:"content"`
}

// SetHints memvalidasi lalu menyimpan hint bertingkat.
// Level harus 1..n berurutan, text wajib, unlock tidak boleh negatif.
func (m *ProjectStepModel) SetHints(hints []StepHint) error {
	for i, h := range hints {
		if h.Level != i+1 {
			return errors.New("level hint harus berurutan mulai dari 1")
		}
		if strings.TrimSpace(h.Text) == "" {
			return errors.New("text hint tidak boleh kosong")
		}
		if h.UnlockAfterMinutes < 0 {
			return errors.New("unlock_after_minutes tidak boleh negatif")
		}
	}
	b, err := json.Marshal(hints)
	if err != nil {
		return err
	}
	m.ProjectStepHints = datatypes.JSON(b)
	return nil
}

func (m *ProjectStepModel) Hints() ([]StepHint, error) {
	if len(m.ProjectStepHints) == 0 {
		return nil, nil
	}
	var hints []StepHint
	if err := json.Unmarshal(m.ProjectStepHints, &hints); err != nil {
		return nil, err
	}
	return hints, nil
}

// SetCodeSnippet memvalidasi lalu menyimpan potongan kode step.
func (m *ProjectStepModel) SetCodeSnippet(s StepCodeSnippet) error {
	if strings.TrimSpace(s.Language) == "" {
		return errors.New("language snippet wajib diisi")
	}
	if strings.TrimSpace(s.Content) == "" {
		return errors.New("content snippet tidak boleh kosong")
	}
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	m.ProjectStepCodeSnippet = datatypes.JSON(b)
	return nil
}
