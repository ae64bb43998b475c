package model

import "strings"

type CreateCommentReq struct {
	ProjectID int64  `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID    int64  `param:"task_id" json:"-" validate:"required,gt=0"`
	Body      string `json:"body" validate:"required,max=10000"`
}

func (r *CreateCommentReq) Validate() error {
	r.Body = strings.TrimSpace(r.Body)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateCommentReq struct {
	ProjectID int64   `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID    int64   `param:"task_id" json:"-" validate:"required,gt=0"`
	CommentID int64   `param:"comment_id" json:"-" validate:"required,gt=0"`
	Body      *string `json:"body" validate:"omitempty,max=10000"`
	Partial   bool    `json:"-"`
}

func (r *UpdateCommentReq) Validate() error {
	r.Body = trimPtr(r.Body, strings.TrimSpace)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if (!r.Partial && r.Body == nil) || (r.Body != nil && *r.Body == "") {
		return NewFieldError("body", "this field is required")
	}
	return nil
}

type CommentIDReq struct {
	ProjectID int64 `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID    int64 `param:"task_id" json:"-" validate:"required,gt=0"`
	CommentID int64 `param:"comment_id" json:"-" validate:"required,gt=0"`
}

func (r *CommentIDReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
