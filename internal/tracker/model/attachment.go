package model

import "time"

type Attachment struct {
	ID          int64     `bson:"_id" json:"id"`
	TaskID      int64     `bson:"task_id" json:"task"`
	File        string    `bson:"file" json:"file"`
	Description string    `bson:"description" json:"description"`
	UploaderID  *int64    `bson:"uploader_id" json:"uploader_id"`
	UploadedAt  time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

func (a *Attachment) AuthoredBy() *int64 {
	return a.UploaderID
}

type AttachmentResponse struct {
	ID          int64        `json:"id"`
	Task        int64        `json:"task"`
	File        string       `json:"file"`
	Description string       `json:"description"`
	Uploader    *UserSummary `json:"uploader"`
	UploadedAt  time.Time    `json:"uploaded_at"`
}
