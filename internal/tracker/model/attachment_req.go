package model

import "strings"

type CreateAttachmentReq struct {
	ProjectID   int64  `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID      int64  `param:"task_id" json:"-" validate:"required,gt=0"`
	File        string `json:"file" validate:"required,max=1024"`
	Description string `json:"description" validate:"max=255"`
}

func (r *CreateAttachmentReq) Validate() error {
	r.File = strings.TrimSpace(r.File)
	r.Description = strings.TrimSpace(r.Description)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}

type UpdateAttachmentReq struct {
	ProjectID    int64   `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID       int64   `param:"task_id" json:"-" validate:"required,gt=0"`
	AttachmentID int64   `param:"attachment_id" json:"-" validate:"required,gt=0"`
	File         *string `json:"file" validate:"omitempty,max=1024"`
	Description  *string `json:"description" validate:"omitempty,max=255"`
	Partial      bool    `json:"-"`
}

func (r *UpdateAttachmentReq) Validate() error {
	r.File = trimPtr(r.File, strings.TrimSpace)
	r.Description = trimPtr(r.Description, strings.TrimSpace)
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	if (!r.Partial && r.File == nil) || (r.File != nil && *r.File == "") {
		return NewFieldError("file", "this field is required")
	}
	return nil
}

// Apply copies the requested changes onto a. A full update clears an omitted description.
func (r *UpdateAttachmentReq) Apply(a *Attachment) {
	if r.File != nil {
		a.File = *r.File
	}
	if r.Description != nil {
		a.Description = *r.Description
	} else if !r.Partial {
		a.Description = ""
	}
}

type AttachmentIDReq struct {
	ProjectID    int64 `param:"project_id" json:"-" validate:"required,gt=0"`
	TaskID       int64 `param:"task_id" json:"-" validate:"required,gt=0"`
	AttachmentID int64 `param:"attachment_id" json:"-" validate:"required,gt=0"`
}

func (r *AttachmentIDReq) Validate() error {
	if err := GetValidator().Struct(r); err != nil {
		return FormatValidationError(err)
	}
	return nil
}
