package constants

// ユーザーロール
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// 画面に表示するメッセージ
const (
	MsgLoginPrompt      = "Please log in to access your task list."
	MsgRegisterPrompt   = "Please register to access task list."
	MsgWelcome          = "Welcome, %s!"
	MsgGoodbye          = "Goodbye %s..."
	MsgRegistered       = "Registration completed. You can login now!"
	MsgTaskCreated      = "New task created!"
	MsgTaskCompleted    = "Task is complete. Good job!"
	MsgTaskDeleted      = "Task deleted!"
	MsgNotYoursToUpdate = "You can only update yours tasks."
	MsgNotYoursToDelete = "You can only delete yours tasks."
)

// エラーメッセージ
const (
	ErrLoginRequired     = "You need to log in first."
	ErrInvalidCredential = "Invalid credential. Please try again."
	ErrUserExists        = "Username or email already exist."
	ErrTaskNotFound      = "Element does not exist."
	ErrNothingHere       = "Sorry. There's nothing here."
	ErrUnexpected        = "Unexpected error"
	ErrInvalidID         = "Invalid id"
	ErrInvalidInput      = "Invalid input"
)
