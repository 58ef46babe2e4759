package dto

type CreateTeamDTO struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	MemberIDs   []uint64 `json:"member_ids"`
}

// UpdateTeamDTO replaces the member list wholesale, matching the original
// edit form semantics.
type UpdateTeamDTO struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description"`
	MemberIDs   []uint64 `json:"member_ids"`
}
