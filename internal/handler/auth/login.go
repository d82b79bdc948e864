// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"

	"ride-auth/internal/api"
	"ride-auth/internal/service"
	"ride-auth/internal/validation"

	"github.com/labstack/echo/v4"
)

// Login 使用 Email/Password 驗證並回傳 JWT
// @Summary     登入使用者
// @Description 依序檢查使用者是否存在、密碼是否正確、簽章金鑰是否設定，成功回傳 1 小時有效的 token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.LoginRequest true "登入資料"
// @Success     200  {object} api.LoginResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     401  {object} api.MessageResponse
// @Failure     404  {object} api.MessageResponse
// @Failure     500  {object} api.MessageResponse
// @Router      /login [post]
func (h *Handler) Login(c echo.Context) error {
	var req api.LoginRequest
	res := validation.Invalid[validation.LoginInput](validation.MsgInvalidBody)
	if err := c.Bind(&req); err == nil {
		res = h.validator.Login(req)
	}
	if !res.OK() {
		return c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: res.Violations()})
	}

	ctx := c.Request().Context()
	token, err := h.creds.Login(ctx, res.Value())
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, api.LoginResponse{Token: token})
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, api.MessageResponse{Message: msgUserNotFound})
	case errors.Is(err, service.ErrInvalidPassword):
		return c.JSON(http.StatusUnauthorized, api.MessageResponse{Message: msgInvalidPassword})
	default:
		// 設定錯誤與儲存錯誤都不對外透露細節
		h.logger.ErrorContext(ctx, "login failed", "error", err)
		return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgLoginFailed})
	}
}
