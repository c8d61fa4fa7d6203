package model

// 角色
const (
	RoleAdmin    = "ADMIN"
	RoleBusiness = "BUSINESS"
	RoleCustomer = "CUSTOMER"
)

// Claims 已验证令牌中携带的身份信息
// 只在单次请求内存在，不落库
type Claims struct {
	UserID            string `json:"user_id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	CustomerSupportID string `json:"customer_support_id,omitempty"`
}

// IsAdmin 判断是否管理员
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// HasPermission 判断是否具备指定角色权限，ADMIN 覆盖其余角色
func (c *Claims) HasPermission(required string) bool {
	switch required {
	case RoleAdmin:
		return c.Role == RoleAdmin
	case RoleBusiness:
		return c.Role == RoleAdmin || c.Role == RoleBusiness
	case RoleCustomer:
		return c.Role == RoleAdmin || c.Role == RoleCustomer
	}
	return false
}
