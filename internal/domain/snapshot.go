package domain

import (
	"strings"
	"time"

	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Snapshot is a resume saved through /api/resumes. Snapshots live for the
// lifetime of the process only.
type Snapshot struct {
	ID        uuid.UUID        `json:"id"`
	Key       string           `json:"key"`
	Title     string           `json:"title"`
	CreatedAt time.Time        `json:"created_at"`
	Resume    model.ResumeData `json:"resume"`
}

// SnapshotTitle names a snapshot after the person, falling back to the
// target role and then to "Resume".
func SnapshotTitle(r model.ResumeData) string {
	if name := r.PersonalInfo.FullName(); name != "" {
		return name
	}
	if role, ok := model.LookupRole(r.SelectedRole); ok {
		return role.Title + " Resume"
	}
	if t := strings.TrimSpace(r.PersonalInfo.Title); t != "" {
		return t
	}
	return "Resume"
}
