package model

// ListActivityReq lists the activity of a project, or of one of its tasks when TaskID is set.
type ListActivityReq struct {
	ProjectID int64 `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID    int64 `param:"task_id" json:"-" validate:"omitempty,gt=0"`

	// Pagination
	Page int `query:"page" json:"-" validate:"omitempty,min=1,max=100000"`
	Size int `query:"size" json:"-" validate:"omitempty,min=1"`
}

func (r *ListActivityReq) Validate() error {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = DefaultPageSize
	}
	if r.Size > MaxPageSize {
		r.Size = MaxPageSize
	}

	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
