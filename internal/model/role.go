package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Role 用户角色（封闭枚举）
//
// 线上传输与数据库存储均为字面字符串 "Developer" | "Admin" | "Director" | "User"。
// 任何无法识别的输入一律解析为 RoleUser（见 ParseRole），以兼容既有客户端。
type Role string

const (
	RoleDeveloper Role = "Developer"
	RoleAdmin     Role = "Admin"
	RoleDirector  Role = "Director"
	RoleUser      Role = "User"
)

// Roles 全部角色，按权限从高到低
var Roles = []Role{RoleDeveloper, RoleAdmin, RoleDirector, RoleUser}

// ParseRole 将线上字符串解析为角色；未识别的值回退为 RoleUser
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleDeveloper:
		return RoleDeveloper
	case RoleAdmin:
		return RoleAdmin
	case RoleDirector:
		return RoleDirector
	default:
		return RoleUser
	}
}

// IsValid 是否为已知角色
func (r Role) IsValid() bool {
	switch r {
	case RoleDeveloper, RoleAdmin, RoleDirector, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// RequiresOrganization Director 与 User 必须归属于某个组织
func (r Role) RequiresOrganization() bool {
	return r == RoleDirector || r == RoleUser
}

// UnmarshalJSON 通过 ParseRole 解码，非字符串输入报错，未知字符串回退为 User
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("role 必须为字符串: %w", err)
	}
	*r = ParseRole(s)
	return nil
}

// Scan 实现 sql.Scanner（PostgreSQL enum 以文本返回）
func (r *Role) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*r = ParseRole(v)
	case []byte:
		*r = ParseRole(string(v))
	case nil:
		*r = RoleUser
	default:
		return fmt.Errorf("Role.Scan: unsupported type %T", src)
	}
	return nil
}

// Value 实现 driver.Valuer
func (r Role) Value() (driver.Value, error) {
	if !r.IsValid() {
		return string(RoleUser), nil
	}
	return string(r), nil
}
