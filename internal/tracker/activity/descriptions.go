package activity

import "fmt"

// Descriptions stored in the activity log
const (
	projectCreated    = "Tạo dự án mới: %s"
	projectUpdated    = "Cập nhật dự án: %s"
	projectDeleted    = "Xóa dự án: %s"
	memberAdded       = "Thêm thành viên %s vào dự án %s"
	memberRemoved     = "Xóa thành viên %s khỏi dự án %s"
	taskCreated       = "Tạo công việc mới: %s"
	taskUpdated       = "Cập nhật công việc: %s"
	taskDeleted       = "Xóa công việc: %s"
	commentCreated    = "Bình luận về công việc: %s"
	commentUpdated    = "Sửa bình luận trong công việc: %s"
	commentDeleted    = "Xóa bình luận trong công việc: %s"
	attachmentCreated = "Tải lên tệp đính kèm cho công việc: %s"
	attachmentUpdated = "Cập nhật tệp đính kèm của công việc: %s"
	attachmentDeleted = "Xóa tệp đính kèm của công việc: %s"
)

func ProjectCreated(name string) string { return fmt.Sprintf(projectCreated, name) }
func ProjectUpdated(name string) string { return fmt.Sprintf(projectUpdated, name) }
func ProjectDeleted(name string) string { return fmt.Sprintf(projectDeleted, name) }

func MemberAdded(username, project string) string {
	return fmt.Sprintf(memberAdded, username, project)
}

func MemberRemoved(username, project string) string {
	return fmt.Sprintf(memberRemoved, username, project)
}

func TaskCreated(title string) string      { return fmt.Sprintf(taskCreated, title) }
func TaskUpdated(title string) string      { return fmt.Sprintf(taskUpdated, title) }
func TaskDeleted(title string) string      { return fmt.Sprintf(taskDeleted, title) }
func CommentCreated(task string) string    { return fmt.Sprintf(commentCreated, task) }
func CommentUpdated(task string) string    { return fmt.Sprintf(commentUpdated, task) }
func CommentDeleted(task string) string    { return fmt.Sprintf(commentDeleted, task) }
func AttachmentCreated(task string) string { return fmt.Sprintf(attachmentCreated, task) }
func AttachmentUpdated(task string) string { return fmt.Sprintf(attachmentUpdated, task) }
func AttachmentDeleted(task string) string { return fmt.Sprintf(attachmentDeleted, task) }
