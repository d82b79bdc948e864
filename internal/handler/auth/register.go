// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"ride-auth/internal/api"
	"ride-auth/internal/validation"

	"github.com/labstack/echo/v4"
)

// Register 建立新使用者
// @Summary     註冊使用者
// @Description 驗證欄位後以 bcrypt 雜湊密碼並建立使用者
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body     api.RegisterRequest true "註冊資料"
// @Success     201  {object} api.UserResponse
// @Failure     400  {object} api.ValidationErrorResponse
// @Failure     500  {object} api.MessageResponse
// @Router      /register [post]
func (h *Handler) Register(c echo.Context) error {
	var req api.RegisterRequest
	res := validation.Invalid[validation.RegisterInput](validation.MsgInvalidBody)
	if err := c.Bind(&req); err == nil {
		res = h.validator.Register(req)
	}
	if !res.OK() {
		return c.JSON(http.StatusBadRequest, api.ValidationErrorResponse{Errors: res.Violations()})
	}

	ctx := c.Request().Context()
	user, err := h.creds.Register(ctx, res.Value())
	if err != nil {
		h.logger.ErrorContext(ctx, "register failed", "error", err)
		return c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgRegisterFailed})
	}

	return c.JSON(http.StatusCreated, api.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Password:  user.Password,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	})
}
