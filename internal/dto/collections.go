package dto

// CreateSkillRequest adds one skill tag. Skills have no update operation;
// clients delete and re-create instead.
type CreateSkillRequest struct {
	Name string `json:"skill_name" validate:"required,max=50"`
}

// CreateTimelineItemRequest adds one experience or education entry; the two
// collections share a schema and the whole generic stack.
type CreateTimelineItemRequest struct {
	Title       string `json:"title" validate:"required,max=150"`
	Description string `json:"description" validate:"max=2000"`
}

// UpdateTimelineItemRequest patches an experience or education entry. Only
// present fields are written.
type UpdateTimelineItemRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
}
