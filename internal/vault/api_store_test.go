package vault

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIStore_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/user/passwords" {
			t.Errorf("意外的请求: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("期望携带 Bearer Token，实际为 %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list":[{"id":2,"website":"b.com","username":"u2","password":"p2","notes":"","created_at":"2026-08-26T11:00:00Z"},{"id":1,"website":"a.com","username":"u1","password":"p1","notes":"n","created_at":"2026-08-26T10:00:00Z"}],"total":2}`))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "test-token")
	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("期望成功，实际出错: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("期望 2 条记录，实际为 %d", len(records))
	}
	if records[0].ID != 2 || records[0].Website != "b.com" {
		t.Errorf("第一条记录解析错误: %+v", records[0])
	}
	if records[1].Notes != "n" || records[1].CreatedAt != "2026-08-26T10:00:00Z" {
		t.Errorf("第二条记录解析错误: %+v", records[1])
	}
}

func TestAPIStore_ListEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"list":[],"total":0}`))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "t")
	records, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("空列表不是错误: %v", err)
	}
	if records == nil || len(records) != 0 {
		t.Errorf("期望非 nil 空切片，实际为 %v", records)
	}
}

func TestAPIStore_Insert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/user/passwords" {
			t.Errorf("意外的请求: %s %s", r.Method, r.URL.Path)
		}
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("请求体解析失败: %v", err)
		}
		if payload.Website != "example.com" || payload.Password != "x" {
			t.Errorf("请求载荷不符: %+v", payload)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"添加成功","credential":{"id":7,"website":"example.com","username":"a@b.com","password":"x","notes":"","created_at":"2026-08-26T12:00:00Z"}}`))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "t")
	record, err := store.Insert(context.Background(), Payload{Website: "example.com", Username: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("期望成功，实际出错: %v", err)
	}
	if record.ID != 7 || record.CreatedAt == "" {
		t.Errorf("服务端分配的 id/created_at 未解析: %+v", record)
	}
}

func TestAPIStore_UpdateNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/user/passwords/99" {
			t.Errorf("意外的请求: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"密码不存在或无权修改"}`))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "t")
	err := store.Update(context.Background(), 99, Payload{Website: "x"})
	if err == nil {
		t.Fatal("期望出错，实际成功")
	}
	if !strings.Contains(err.Error(), "密码不存在或无权修改") {
		t.Errorf("错误应携带服务端消息，实际为 %v", err)
	}
}

func TestAPIStore_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/user/passwords/3" {
			t.Errorf("意外的请求: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"删除成功"}`))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "t")
	if err := store.Delete(context.Background(), 3); err != nil {
		t.Fatalf("期望成功，实际出错: %v", err)
	}
}

func TestAPIStore_NonJSONErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer server.Close()

	store := NewAPIStore(server.URL, "t")
	_, err := store.List(context.Background())
	if err == nil {
		t.Fatal("期望出错，实际成功")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("错误应包含状态码，实际为 %v", err)
	}
}

func TestAPISession_LoginAndSignOut(t *testing.T) {
	var sawLogout bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/login":
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["username"] != "alice" || req["password"] != "secret123" {
				t.Errorf("登录载荷不符: %v", req)
			}
			w.Write([]byte(`{"token":"jwt-abc","message":"登录成功"}`))
		case "/api/logout":
			sawLogout = true
			if got := r.Header.Get("Authorization"); got != "Bearer jwt-abc" {
				t.Errorf("退出应携带登录获取的 Token，实际为 %q", got)
			}
			w.Write([]byte(`{"message":"已退出登录"}`))
		default:
			t.Errorf("意外的请求路径: %s", r.URL.Path)
		}
	}))
	defer server.Close()

	session := NewAPISession(server.URL)
	token, err := session.Login(context.Background(), "alice", "secret123")
	if err != nil {
		t.Fatalf("登录失败: %v", err)
	}
	if token != "jwt-abc" || session.Token() != "jwt-abc" {
		t.Errorf("Token 未正确保存: %q", token)
	}

	if err := session.SignOut(context.Background()); err != nil {
		t.Fatalf("退出失败: %v", err)
	}
	if !sawLogout {
		t.Error("应调用服务端的退出接口")
	}
}

func TestAPISession_LoginRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"用户名或密码错误"}`))
	}))
	defer server.Close()

	session := NewAPISession(server.URL)
	_, err := session.Login(context.Background(), "alice", "wrong")
	if err == nil {
		t.Fatal("期望登录失败")
	}
	if !strings.Contains(err.Error(), "用户名或密码错误") {
		t.Errorf("错误应携带服务端消息，实际为 %v", err)
	}
}
