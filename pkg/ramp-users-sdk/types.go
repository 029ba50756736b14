package rampuserssdk

// Role 是 Ramp 用户在企业内的角色。
type Role string

const (
	RoleAdmin      Role = "BUSINESS_ADMIN"
	RoleUser       Role = "BUSINESS_USER"
	RoleOwner      Role = "BUSINESS_OWNER"
	RoleBookkeeper Role = "BUSINESS_BOOKKEEPER"
)

// User 是企业内的一个 Ramp 用户。
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Role         Role   `json:"role"`
	Status       string `json:"status"`
	BusinessID   string `json:"business_id"`
	DepartmentID string `json:"department_id"`
	LocationID   string `json:"location_id"`
	ManagerID    string `json:"manager_id"`
	IsManager    bool   `json:"is_manager"`
}

// UsersPage 是 GET /users 的响应包裹：data 里是本页条目，page.next 是下一页的
// 完整地址（最后一页为 null）。
type UsersPage struct {
	Data []User   `json:"data"`
	Page PageInfo `json:"page"`
}

type PageInfo struct {
	Next string `json:"next"`
}

// UpdateUserRequest 是 PATCH /users/{id} 的请求体。所有字段都可选，
// 省略的字段不会被修改。
type UpdateUserRequest struct {
	Role            Role   `json:"role,omitempty"`
	DepartmentID    string `json:"department_id,omitempty"`
	LocationID      string `json:"location_id,omitempty"`
	DirectManagerID string `json:"direct_manager_id,omitempty"`
}

// DeferredUserRequest 是 POST /users/deferred 的请求体。
type DeferredUserRequest struct {
	Email           string `json:"email"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Role            Role   `json:"role"`
	Phone           string `json:"phone,omitempty"`
	DepartmentID    string `json:"department_id,omitempty"`
	LocationID      string `json:"location_id,omitempty"`
	DirectManagerID string `json:"direct_manager_id,omitempty"`
	// IdempotencyKey 用于服务端对重复提交去重。
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

// DeferredTaskStatus 是邀请任务的执行状态。
type DeferredTaskStatus struct {
	ID     string           `json:"id"`
	Status string           `json:"status"`
	Data   DeferredTaskData `json:"data"`
}

type DeferredTaskData struct {
	UserID string `json:"user_id"`
}
