// Package quantity 提供數量解析、格式化、換算與份量縮放的 HTTP 處理器。
package quantity

import (
	"net/http"

	"recipe-quantity/internal/core/quantity"
	"recipe-quantity/internal/core/recipe"
	"recipe-quantity/internal/pkg/common"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 數量處理程序
type Handler struct {
	ingredientService *recipe.IngredientService
}

// NewHandler 創建新的數量處理程序
func NewHandler(ingredientService *recipe.IngredientService) *Handler {
	return &Handler{
		ingredientService: ingredientService,
	}
}

// ListUnits 返回所有單位
func (h *Handler) ListUnits(c *gin.Context) {
	units := quantity.Units()
	out := make([]UnitInfo, 0, len(units))
	for _, u := range units {
		out = append(out, NewUnitInfo(u))
	}
	c.JSON(http.StatusOK, gin.H{"units": out})
}

// GetUnit 返回單一單位，接受代碼、全名與別名
func (h *Handler) GetUnit(c *gin.Context) {
	text := c.Param("unit")
	u, ok := quantity.ParseUnit(text)
	if !ok {
		common.WriteError(c, common.NewError(common.ErrCodeUnknownUnit, "unknown unit: "+text, http.StatusNotFound, nil))
		return
	}
	c.JSON(http.StatusOK, NewUnitInfo(u))
}

// Parse 解析數量文字
func (h *Handler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, bindError(err))
		return
	}

	resp := ParseResponse{Amount: req.Amount}
	if v, ok := quantity.ParseAmount(req.Amount); ok {
		resp.Value = &v
		resp.Parsable = true
		resp.Formatted = quantity.FormatAmount(v)
	}
	c.JSON(http.StatusOK, resp)
}

// Format 將數值格式化為易讀文字
func (h *Handler) Format(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, bindError(err))
		return
	}
	c.JSON(http.StatusOK, FormatResponse{Text: quantity.FormatAmount(*req.Value)})
}

// Scale 依倍率縮放單一數量
func (h *Handler) Scale(c *gin.Context) {
	var req ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, bindError(err))
		return
	}

	scaled, parsable, err := h.ingredientService.ScaleAmount(req.Amount, *req.Multiplier)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, ScaleResponse{
		Amount:   req.Amount,
		Scaled:   scaled,
		Parsable: parsable,
	})
}

// Conversions 返回替代單位，amount 預設為 1
func (h *Handler) Conversions(c *gin.Context) {
	unit := c.Query("unit")
	if unit == "" {
		common.WriteError(c, common.ErrInvalidRequest.WithErr(common.NewValidationError("unit is required")))
		return
	}
	amount := c.DefaultQuery("amount", "1")

	set, err := h.ingredientService.Conversions(c.Request.Context(), unit, amount)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, set)
}

// ScaleRecipe 依份量縮放整份食材列表
func (h *Handler) ScaleRecipe(c *gin.Context) {
	var req recipe.ScaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.WriteError(c, bindError(err))
		return
	}

	common.LogDebug("開始處理份量縮放請求",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("original_servings", req.OriginalServings),
		zap.Int("target_servings", req.TargetServings),
	)

	result, err := h.ingredientService.Scale(c.Request.Context(), req)
	if err != nil {
		common.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// bindError 將綁定錯誤包裝為 400，請求體過大時保留原錯誤交給 WriteError 判斷
func bindError(err error) error {
	return common.ErrInvalidRequest.WithErr(err)
}
