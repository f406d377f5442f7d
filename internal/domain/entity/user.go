package entity

// Estados válidos para User.
const (
	UserStatusDisabled = 0
	UserStatusActive   = 1
)

// User representa un usuario de la consola. PasswordHash nunca sale por el cable.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, solo lo usa el backend mock
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	Status       int    `json:"status,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
	Del          int    `json:"del,omitempty"`
	CreateTime   string `json:"createTime,omitempty"`
	UpdateTime   string `json:"updateTime,omitempty"`
	Token        string `json:"token,omitempty"`
}
