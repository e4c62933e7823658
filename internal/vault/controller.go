package vault

import (
	"context"
	"math/rand/v2"
	"sync"
)

// secretAlphabet 密码生成字符集：大小写字母、数字和常用符号
const secretAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"

// secretLength 生成密码的固定长度
const secretLength = 16

// Controller 管理密码列表的本地快照和表单状态
// 所有持久化与查询都委托给远端 Store，变更成功后整表重新拉取，
// 不做增量合并，远端永远是唯一事实来源
type Controller struct {
	mu sync.Mutex

	store     Store
	notifier  Notifier
	clipboard Clipboard
	session   Session

	records    []Record
	loading    bool
	visible    map[uint]bool
	editTarget *Record
	form       Form
	createOpen bool

	// busy 为 true 时拒绝新的变更操作，防止重复提交
	busy bool

	// closed 置位后丢弃所有在途调用的结果
	closed bool
}

func NewController(store Store, notifier Notifier, clipboard Clipboard, session Session) *Controller {
	return &Controller{
		store:     store,
		notifier:  notifier,
		clipboard: clipboard,
		session:   session,
		loading:   true,
		visible:   make(map[uint]bool),
	}
}

// Refresh 拉取完整列表并整体替换本地快照
// 失败时保留旧列表，只发一条通知
func (c *Controller) Refresh(ctx context.Context) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	list, err := c.store.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if err != nil {
		c.notifier.Notify(Message{Title: "Failed to load passwords", Severity: SeverityDestructive})
		return
	}
	c.records = list
	c.loading = false
}

// GenerateSecret 生成 16 位随机密码并写入表单缓冲区
// 逐位独立采样，仅作便捷填充，不保证每类字符都出现
func (c *Controller) GenerateSecret() string {
	buf := make([]byte, secretLength)
	for i := range buf {
		buf[i] = secretAlphabet[rand.IntN(len(secretAlphabet))]
	}
	secret := string(buf)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return secret
	}
	c.form.Password = secret
	return secret
}

// Submit 根据是否存在编辑目标决定走修改还是新增
// 失败时保留表单内容和编辑目标，成功后清空表单并重新拉取列表
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.closed || c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	target := c.editTarget
	payload := Payload{
		Website:  c.form.Website,
		Username: c.form.Username,
		Password: c.form.Password,
		Notes:    c.form.Notes,
	}
	c.mu.Unlock()

	var err error
	var failTitle, successTitle string
	if target != nil {
		err = c.store.Update(ctx, target.ID, payload)
		failTitle = "Failed to update password"
		successTitle = "Password updated successfully"
	} else {
		_, err = c.store.Insert(ctx, payload)
		failTitle = "Failed to add password"
		successTitle = "Password added successfully"
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.busy = false
	if err != nil {
		c.notifier.Notify(Message{Title: failTitle, Severity: SeverityDestructive})
		c.mu.Unlock()
		return
	}
	c.editTarget = nil
	c.createOpen = false
	c.form = Form{}
	c.notifier.Notify(Message{Title: successTitle})
	c.mu.Unlock()

	c.Refresh(ctx)
}

// Remove 删除一条记录，成功后重新拉取列表
func (c *Controller) Remove(ctx context.Context, id uint) {
	c.mu.Lock()
	if c.closed || c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.mu.Unlock()

	err := c.store.Delete(ctx, id)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.busy = false
	if err != nil {
		c.notifier.Notify(Message{Title: "Failed to delete password", Severity: SeverityDestructive})
		c.mu.Unlock()
		return
	}
	c.notifier.Notify(Message{Title: "Password deleted"})
	c.mu.Unlock()

	c.Refresh(ctx)
}

// BeginEdit 进入编辑模式，把目标记录的字段拷入表单缓冲区
// 只用内存快照，不发起远端请求
func (c *Controller) BeginEdit(record Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	target := record
	c.editTarget = &target
	c.createOpen = false
	c.form = Form{
		Website:  record.Website,
		Username: record.Username,
		Password: record.Password,
		Notes:    record.Notes,
	}
}

// OpenCreate 进入新增模式，清掉残留的编辑目标
func (c *Controller) OpenCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.editTarget = nil
	c.createOpen = true
	c.form = Form{}
}

// Cancel 放弃当前的新增/编辑流程
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.editTarget = nil
	c.createOpen = false
	c.form = Form{}
}

// ToggleVisibility 翻转某条记录的密码可见性，纯本地状态
func (c *Controller) ToggleVisibility(id uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.visible[id] = !c.visible[id]
}

// CopySecret 把值写入剪贴板并发一条确认通知
// 剪贴板写入失败在此设计中不可观测，不做处理
func (c *Controller) CopySecret(value, label string) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	_ = c.clipboard.WriteText(value)
	c.notifier.Notify(Message{Title: label + " copied to clipboard"})
}

// SignOut 委托会话端点退出登录，随后调用完成回调
// 退出失败不阻塞回调：本地视角下会话总是结束的
func (c *Controller) SignOut(ctx context.Context, done func()) {
	_ = c.session.SignOut(ctx)
	if done != nil {
		done()
	}
}

// Close 终止控制器，之后所有在途调用的结果都会被丢弃
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

// Records 返回当前快照的副本
func (c *Controller) Records() []Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Loading 仅在首次拉取完成前为 true
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Visible 查询某条记录的密码是否明文展示，未翻转过的默认隐藏
func (c *Controller) Visible(id uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.visible[id]
}

// EditTarget 返回当前编辑目标的副本，未在编辑时返回 nil
func (c *Controller) EditTarget() *Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editTarget == nil {
		return nil
	}
	target := *c.editTarget
	return &target
}

// Form 返回表单缓冲区的当前值
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm 整体替换表单缓冲区（终端客户端逐字段收集后写入）
func (c *Controller) SetForm(form Form) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.form = form
}

// CreateOpen 新增流程是否处于打开状态
func (c *Controller) CreateOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.createOpen
}
