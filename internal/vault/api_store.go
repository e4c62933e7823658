package vault

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// APIStore 通过服务端 HTTP API 实现 Store 接口
// 携带 Bearer Token，集合隔离由服务端完成
type APIStore struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewAPIStore(baseURL, token string) *APIStore {
	return &APIStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type listResponse struct {
	List  []Record `json:"list"`
	Total int      `json:"total"`
}

type insertResponse struct {
	Message    string `json:"message"`
	Credential Record `json:"credential"`
}

// errorResponse 服务端统一错误体 {"error": "..."}
type errorResponse struct {
	Error string `json:"error"`
}

func (s *APIStore) List(ctx context.Context) ([]Record, error) {
	var resp listResponse
	if err := s.do(ctx, http.MethodGet, "/api/user/passwords", nil, &resp); err != nil {
		return nil, err
	}
	if resp.List == nil {
		// 空集合是正常结果，区别于错误
		return []Record{}, nil
	}
	return resp.List, nil
}

func (s *APIStore) Insert(ctx context.Context, payload Payload) (*Record, error) {
	var resp insertResponse
	if err := s.do(ctx, http.MethodPost, "/api/user/passwords", payload, &resp); err != nil {
		return nil, err
	}
	return &resp.Credential, nil
}

func (s *APIStore) Update(ctx context.Context, id uint, payload Payload) error {
	return s.do(ctx, http.MethodPut, fmt.Sprintf("/api/user/passwords/%d", id), payload, nil)
}

func (s *APIStore) Delete(ctx context.Context, id uint) error {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/passwords/%d", id), nil, nil)
}

// do 发送一次请求：JSON 编解码、鉴权头和非 2xx 的错误提取都在这里
func (s *APIStore) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var body errorResponse
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return fmt.Errorf("服务端返回 %d: %s", resp.StatusCode, body.Error)
	}
	return fmt.Errorf("服务端返回 %d", resp.StatusCode)
}
