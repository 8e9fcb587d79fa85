package models

// OwnedItem is implemented by every entity that belongs to exactly one user
// and is managed through the generic owned-collection stack (repository,
// service, handler). Skills, experience items and education items share that
// stack instead of carrying three copies of the same CRUD code.
type OwnedItem interface {
	ItemID() string
	OwnerID() string
}

// Skill is a single skill tag on a profile. Create/delete only.
type Skill struct {
	BaseModel
	UserID string `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"skill_name"`
}

func (s Skill) ItemID() string  { return s.ID }
func (s Skill) OwnerID() string { return s.UserID }

// ExperienceItem is one entry in the experience section.
type ExperienceItem struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
}

func (e ExperienceItem) ItemID() string  { return e.ID }
func (e ExperienceItem) OwnerID() string { return e.UserID }

// EducationItem is one entry in the education section. Same shape as
// ExperienceItem but stored in its own table so section caps and ordering
// stay independent.
type EducationItem struct {
	BaseModel
	UserID      string `gorm:"not null;index" json:"user_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `json:"description"`
}

func (e EducationItem) ItemID() string  { return e.ID }
func (e EducationItem) OwnerID() string { return e.UserID }
