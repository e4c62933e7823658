package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/crumpledflowers/vault-guard-cli/internal/consts"
	"github.com/crumpledflowers/vault-guard-cli/internal/vault"

	osc52 "github.com/aymanbagabas/go-osc52/v2"
)

// TerminalNotifier 把控制器的通知打印到终端
type TerminalNotifier struct{}

func (TerminalNotifier) Notify(msg vault.Message) {
	icon := "✅"
	if msg.Severity == vault.SeverityDestructive {
		icon = "❌"
	}
	if msg.Description != "" {
		fmt.Printf("%s %s: %s\n", icon, msg.Title, msg.Description)
		return
	}
	fmt.Printf("%s %s\n", icon, msg.Title)
}

// OSC52Clipboard 通过 OSC 52 转义序列写入终端宿主的剪贴板
// 写到 stderr，避免污染可能被重定向的 stdout
type OSC52Clipboard struct{}

func (OSC52Clipboard) WriteText(text string) error {
	_, err := osc52.New(text).WriteTo(os.Stderr)
	return err
}

func main() {
	server := flag.String("server", "http://localhost:8080", "服务端地址")
	username := flag.String("user", "", "登录用户名")
	flag.Parse()

	reader := bufio.NewScanner(os.Stdin)
	ctx := context.Background()

	if *username == "" {
		fmt.Print("用户名: ")
		if !reader.Scan() {
			return
		}
		*username = strings.TrimSpace(reader.Text())
	}
	fmt.Print("密码: ")
	if !reader.Scan() {
		return
	}
	password := reader.Text()

	session := vault.NewAPISession(*server)
	token, err := session.Login(ctx, *username, password)
	if err != nil {
		fmt.Printf("❌ 登录失败: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("🔐 已登录 %s (%s v%s)\n", *server, consts.ApplicationName, consts.ApplicationVersion)

	store := vault.NewAPIStore(*server, token)
	controller := vault.NewController(store, TerminalNotifier{}, OSC52Clipboard{}, session)
	defer controller.Close()

	controller.Refresh(ctx)

	printHelp()
	for {
		fmt.Print("> ")
		if !reader.Scan() {
			break
		}
		fields := strings.Fields(reader.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "list", "ls":
			printRecords(controller)
		case "show":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			controller.ToggleVisibility(id)
			printRecords(controller)
		case "add":
			controller.OpenCreate()
			controller.SetForm(promptForm(reader, controller, vault.Form{}))
			controller.Submit(ctx)
		case "edit":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			record, found := findRecord(controller, id)
			if !found {
				fmt.Println("❌ 没有这条记录")
				continue
			}
			controller.BeginEdit(record)
			controller.SetForm(promptForm(reader, controller, controller.Form()))
			controller.Submit(ctx)
		case "del", "rm":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			controller.Remove(ctx, id)
		case "copy":
			if len(fields) < 3 {
				fmt.Println("用法: copy <id> user|pass")
				continue
			}
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			record, found := findRecord(controller, id)
			if !found {
				fmt.Println("❌ 没有这条记录")
				continue
			}
			if fields[2] == "user" {
				controller.CopySecret(record.Username, "Username")
			} else {
				controller.CopySecret(record.Password, "Password")
			}
		case "gen":
			fmt.Printf("🎲 %s\n", controller.GenerateSecret())
		case "refresh":
			controller.Refresh(ctx)
			printRecords(controller)
		case "logout", "quit", "exit":
			controller.SignOut(ctx, func() {
				fmt.Println("👋 已退出登录")
			})
			return
		case "help":
			printHelp()
		default:
			fmt.Println("未知命令，输入 help 查看帮助")
		}
	}
}

func parseID(fields []string) (uint, bool) {
	if len(fields) < 2 {
		fmt.Println("缺少记录 ID")
		return 0, false
	}
	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		fmt.Println("无效的记录 ID")
		return 0, false
	}
	return uint(id), true
}

func findRecord(c *vault.Controller, id uint) (vault.Record, bool) {
	for _, record := range c.Records() {
		if record.ID == id {
			return record, true
		}
	}
	return vault.Record{}, false
}

func printRecords(c *vault.Controller) {
	records := c.Records()
	if len(records) == 0 {
		fmt.Println("📭 暂无密码记录")
		return
	}
	for _, record := range records {
		password := "********"
		if c.Visible(record.ID) {
			password = record.Password
		}
		fmt.Printf("  [%d] %s  %s  %s", record.ID, record.Website, record.Username, password)
		if record.Notes != "" {
			fmt.Printf("  (%s)", record.Notes)
		}
		fmt.Println()
	}
}

// promptForm 逐字段收集输入，直接回车保留 base 中的原值
// 密码字段输入 "!" 会改用随机生成
func promptForm(reader *bufio.Scanner, c *vault.Controller, base vault.Form) vault.Form {
	form := base
	form.Website = promptField(reader, "网站", base.Website)
	form.Username = promptField(reader, "用户名", base.Username)
	password := promptField(reader, "密码 (输入 ! 随机生成)", base.Password)
	if password == "!" {
		password = c.GenerateSecret()
		fmt.Printf("🎲 %s\n", password)
	}
	form.Password = password
	form.Notes = promptField(reader, "备注", base.Notes)
	return form
}

func promptField(reader *bufio.Scanner, label, current string) string {
	if current != "" {
		fmt.Printf("%s [%s]: ", label, current)
	} else {
		fmt.Printf("%s: ", label)
	}
	if !reader.Scan() {
		return current
	}
	text := strings.TrimSpace(reader.Text())
	if text == "" {
		return current
	}
	return text
}

func printHelp() {
	fmt.Println("命令: list | show <id> | add | edit <id> | del <id> | copy <id> user|pass | gen | refresh | logout | help")
}
