package vault

import "context"

// Record 一条密码记录，字段与服务端 JSON 对齐
// id 与 created_at 由服务端分配，客户端只读
type Record struct {
	ID        uint   `json:"id"`
	Website   string `json:"website"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at"`
}

// Payload 新增/修改时提交的可编辑字段（整体替换，不支持局部更新）
type Payload struct {
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
	Notes    string `json:"notes"`
}

// Form 新增与编辑共用的表单缓冲区
type Form struct {
	Website  string
	Username string
	Password string
	Notes    string
}

// Severity 通知级别
type Severity int

const (
	SeverityNormal Severity = iota
	SeverityDestructive
)

// Message 一条瞬时通知
type Message struct {
	Title       string
	Description string
	Severity    Severity
}

// Store 远端密码表接口，集合由服务端按当前登录用户隔离
// List 返回的顺序由服务端保证 (created_at 倒序)
type Store interface {
	List(ctx context.Context) ([]Record, error)
	Insert(ctx context.Context, payload Payload) (*Record, error)
	Update(ctx context.Context, id uint, payload Payload) error
	Delete(ctx context.Context, id uint) error
}

// Notifier 通知接收方，即发即忘
type Notifier interface {
	Notify(msg Message)
}

// Clipboard 平台剪贴板
type Clipboard interface {
	WriteText(text string) error
}

// Session 会话接口，SignOut 使当前会话失效
type Session interface {
	SignOut(ctx context.Context) error
}
