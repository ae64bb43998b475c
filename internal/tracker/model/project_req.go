package model

import (
	"slices"
	"strings"
)

type CreateProjectReq struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=5000"`
	MemberIDs   []int64 `json:"member_ids" validate:"omitempty,dive,gt=0"`
}

func (r *CreateProjectReq) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.MemberIDs = uniqueIDs(r.MemberIDs)

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// UpdateProjectReq serves PUT (full) and PATCH (partial) updates.
// MemberIDs replaces the member set when present and is left alone otherwise, on PUT as well.
type UpdateProjectReq struct {
	ProjectID   int64    `param:"project_id" json:"-" validate:"required,gt=0"`
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	Description *string  `json:"description" validate:"omitempty,max=5000"`
	MemberIDs   *[]int64 `json:"member_ids"`
	Partial     bool     `json:"-"`
}

func (r *UpdateProjectReq) Validate() error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Description != nil {
		trimmed := strings.TrimSpace(*r.Description)
		r.Description = &trimmed
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if (!r.Partial && r.Name == nil) || (r.Name != nil && *r.Name == "") {
		return NewFieldError("name", "this field is required")
	}
	if r.MemberIDs != nil {
		ids := uniqueIDs(*r.MemberIDs)
		for _, id := range ids {
			if id <= 0 {
				return NewFieldError("member_ids", "must be greater than 0")
			}
		}
		r.MemberIDs = &ids
	}
	return nil
}

// Apply copies the requested changes onto p. A full update resets omitted fields.
// The owner stays a member whatever member_ids says.
func (r *UpdateProjectReq) Apply(p *Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	} else if !r.Partial {
		p.Description = ""
	}
	if r.MemberIDs != nil {
		members := []int64{p.OwnerID}
		for _, id := range *r.MemberIDs {
			if id != p.OwnerID {
				members = append(members, id)
			}
		}
		p.MemberIDs = members
	}
}

type ProjectIDReq struct {
	ProjectID int64 `param:"project_id" json:"-" validate:"required,gt=0"`
}

func (r *ProjectIDReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type MemberReq struct {
	ProjectID int64 `param:"project_id" json:"-" validate:"required,gt=0"`
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
}

func (r *MemberReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type ListProjectsReq struct {
	Search string `query:"search" validate:"max=255"`
	Role   string `query:"role"`
}

func (r *ListProjectsReq) Validate() error {
	r.Search = strings.TrimSpace(r.Search)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

// ToFilter resolves the request against the caller. Unknown roles are ignored.
func (r *ListProjectsReq) ToFilter(callerID int64) ProjectFilter {
	filter := ProjectFilter{Search: r.Search}
	if r.Role == RoleFilterOwner || r.Role == RoleFilterMember {
		filter.Role = r.Role
		filter.RoleUserID = callerID
	}
	return filter
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return ids
	}
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}
