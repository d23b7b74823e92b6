// Package client 提供數量服務 HTTP API 的 Go 客戶端。
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	qtyapi "recipe-quantity/internal/api/handlers/quantity"
	"recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const apiPrefix = "/api/v1"

// Client 數量服務客戶端
type Client struct {
	client *resty.Client
}

// New 創建客戶端，baseURL 例如 "http://localhost:8080"
func New(baseURL string, timeout time.Duration) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")+apiPrefix).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "qty-cli")

	return &Client{client: client}
}

// Units 列出所有單位
func (c *Client) Units(ctx context.Context) ([]qtyapi.UnitInfo, error) {
	var out struct {
		Units []qtyapi.UnitInfo `json:"units"`
	}
	if err := c.do(ctx, resty.MethodGet, "/units", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Units, nil
}

// Unit 查詢單一單位
func (c *Client) Unit(ctx context.Context, unit string) (*qtyapi.UnitInfo, error) {
	var out qtyapi.UnitInfo
	if err := c.do(ctx, resty.MethodGet, "/units/"+unit, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Parse 解析數量文字
func (c *Client) Parse(ctx context.Context, amount string) (*qtyapi.ParseResponse, error) {
	var out qtyapi.ParseResponse
	if err := c.do(ctx, resty.MethodPost, "/quantity/parse", nil, qtyapi.ParseRequest{Amount: amount}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Format 將數值格式化為易讀文字
func (c *Client) Format(ctx context.Context, value float64) (string, error) {
	var out qtyapi.FormatResponse
	if err := c.do(ctx, resty.MethodPost, "/quantity/format", nil, qtyapi.FormatRequest{Value: &value}, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// Scale 依倍率縮放單一數量
func (c *Client) Scale(ctx context.Context, amount string, multiplier float64) (*qtyapi.ScaleResponse, error) {
	var out qtyapi.ScaleResponse
	req := qtyapi.ScaleRequest{Amount: amount, Multiplier: &multiplier}
	if err := c.do(ctx, resty.MethodPost, "/quantity/scale", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Conversions 查詢替代單位
func (c *Client) Conversions(ctx context.Context, unit, amount string) (*recipe.ConversionSet, error) {
	var out recipe.ConversionSet
	query := map[string]string{"unit": unit, "amount": amount}
	if err := c.do(ctx, resty.MethodGet, "/conversions", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ScaleRecipe 依份量縮放整份食材列表
func (c *Client) ScaleRecipe(ctx context.Context, req recipe.ScaleRequest) (*recipe.ScaleResult, error) {
	var out recipe.ScaleResult
	if err := c.do(ctx, resty.MethodPost, "/recipe/scale", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do 發送請求；非 2xx 回應轉為帶錯誤代碼的 *common.CustomError
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, result interface{}) error {
	var apiErr common.ErrorResponse
	req := c.client.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&apiErr)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return common.ErrServiceUnavailable.WithErr(fmt.Errorf("%s %s: %w", method, path, err))
	}

	common.LogDebug("API 回應",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("latency", resp.Time()),
		zap.String("request_id", resp.Header().Get("X-Request-ID")),
	)

	if resp.IsError() {
		if apiErr.Code == "" {
			apiErr.Code = common.ErrCodeInternalError
			apiErr.Message = resp.Status()
		}
		return common.NewError(apiErr.Code, apiErr.Message, resp.StatusCode(), nil)
	}
	return nil
}
