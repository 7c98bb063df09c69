package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email  string `json:"email"  binding:"required"`
	Passwd string `json:"passwd" binding:"required"`
}

// TokenResponse 登录成功响应
type TokenResponse struct {
	Token string `json:"token"`
}

// ChangePasswordRequest 修改密码请求（两次输入须一致）
type ChangePasswordRequest struct {
	Passwd1 string `json:"passwd1" binding:"required,max=72"`
	Passwd2 string `json:"passwd2" binding:"required,max=72"`
}
