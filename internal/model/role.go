// File: internal/model/role.go
package model

// Role 使用者身分，註冊時決定後不再變更
type Role string

const (
	RolePassenger Role = "PASSENGER"
	RoleDriver    Role = "DRIVER"
)

// Valid 回報 r 是否為已知身分
func (r Role) Valid() bool {
	switch r {
	case RolePassenger, RoleDriver:
		return true
	}
	return false
}
