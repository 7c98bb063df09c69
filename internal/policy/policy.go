// Package policy 授权策略：角色判定与组织范围规则
//
// 所有函数均为纯函数（无 I/O），由各 Service 在操作开始处统一调用。
package policy

import (
	"time"

	"github.com/stalexsm/pas/internal/model"
)

// IsElevated 平台级权限（Developer / Admin），不受组织范围限制
func IsElevated(role model.Role) bool {
	return role == model.RoleDeveloper || role == model.RoleAdmin
}

// HasManagementAccess 组织级管理权限（平台级权限或 Director）
func HasManagementAccess(role model.Role) bool {
	return IsElevated(role) || role == model.RoleDirector
}

// CanAssignRole 操作者能否为目标账号设置该角色
// 非平台级操作者只能授予 Director / User
func CanAssignRole(actor, target model.Role) bool {
	if IsElevated(actor) {
		return true
	}
	return target.RequiresOrganization()
}

// CanManageUser 操作者能否编辑目标账号
// 非平台级操作者不能修改平台级账号
func CanManageUser(actor, target model.Role) bool {
	return IsElevated(actor) || !IsElevated(target)
}

// ── 读取范围 ──

// Scope 读取范围
//
// Restricted=false 表示不加组织过滤；Restricted=true 且 OrganizationID 为空时
// 不匹配任何记录。AuthorID / From / To 仅用于生产记录。
type Scope struct {
	Restricted     bool
	OrganizationID *int64
	AuthorID       *int64
	From           *time.Time // 含
	To             *time.Time // 不含
}

// Unscoped 不加任何过滤的范围
func Unscoped() Scope { return Scope{} }

// Organization 限定到指定组织的范围
func Organization(id int64) Scope {
	return Scope{Restricted: true, OrganizationID: &id}
}

// ReadScope 列表/详情的组织范围
// 平台级主体不过滤；其他主体强制为自身组织，忽略客户端传入的过滤条件
func ReadScope(u *model.CurrentUser) Scope {
	if IsElevated(u.Role) {
		return Unscoped()
	}
	s := Scope{Restricted: true}
	if u.OrganizationID != nil {
		id := *u.OrganizationID
		s.OrganizationID = &id
	}
	return s
}

// ProducedGoodsScope 生产记录的读取范围
// 在组织范围之上，User 角色仅能看到本人当天（loc 时区的自然日）创建的记录
func ProducedGoodsScope(u *model.CurrentUser, now time.Time, loc *time.Location) Scope {
	s := ReadScope(u)
	if u.Role != model.RoleUser {
		return s
	}

	author := u.ID
	from, to := DayBounds(now, loc)
	s.AuthorID = &author
	s.From = &from
	s.To = &to
	return s
}

// DayBounds 返回 now 在 loc 时区所在自然日的 [00:00, 次日 00:00)，以 UTC 表示
func DayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start.UTC(), start.AddDate(0, 0, 1).UTC()
}

// ── 写入归属 ──

// AssignOrganization 写入时的组织归属
// 平台级主体使用请求体中的值（可为空）；其他主体强制为自身组织
func AssignOrganization(u *model.CurrentUser, requested *int64) *int64 {
	if IsElevated(u.Role) {
		if requested == nil {
			return nil
		}
		id := *requested
		return &id
	}
	if u.OrganizationID == nil {
		return nil
	}
	id := *u.OrganizationID
	return &id
}
