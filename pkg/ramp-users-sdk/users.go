package rampuserssdk

import (
	"context"

	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

// Users 聚合 `/users` 下的所有接口。
type Users struct {
	http *restclient.Client
}

// ListUsersOptions 是 GET /users 的查询参数。零值字段一律不携带。
type ListUsersOptions struct {
	// Start 是上一页最后一个实体的 ID（游标），用于取下一页。
	Start string
	// PageSize 为每页条数，取值 2～10000，不指定时服务端默认 1000。
	PageSize     int
	DepartmentID string
	LocationID   string
}

// listQuery 按 Ramp 文档约定的顺序组装参数：department_id、location_id、
// page_size、start。
func (o ListUsersOptions) listQuery() *restclient.Query {
	return restclient.NewQuery().
		Add("department_id", o.DepartmentID).
		Add("location_id", o.LocationID).
		AddInt("page_size", int64(o.PageSize)).
		Add("start", o.Start)
}

// Get 按用户 ID 获取用户信息。
func (u Users) Get(ctx context.Context, userID string) (*User, error) {
	var out User
	if err := u.http.Get(ctx, restclient.EscapePath("/users/%s", userID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Suspend 停用用户（不会删除用户的卡）。目前该操作不可逆。
func (u Users) Suspend(ctx context.Context, userID string) error {
	return u.http.Delete(ctx, restclient.EscapePath("/users/%s", userID), restclient.NoBody(), nil)
}

// Update 修改用户信息（角色、部门、负责人等），成功时服务端不返回内容。
func (u Users) Update(ctx context.Context, userID string, body *UpdateUserRequest) error {
	path := restclient.EscapePath("/users/%s", userID)
	return u.http.Patch(ctx, path, restclient.JSONBody(body), nil)
}

// List 取单页用户列表并拆掉 data 包裹；翻页游标由调用方通过 opts.Start 控制。
// 要一次取全，用 ListAll。
func (u Users) List(ctx context.Context, opts ListUsersOptions) ([]User, error) {
	var out UsersPage
	path := opts.listQuery().Appended("/users")
	if err := u.http.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// ListAll 沿 data 包裹里的游标取回所有用户，顺序与服务端一致。
func (u Users) ListAll(ctx context.Context, departmentID, locationID string) ([]User, error) {
	path := ListUsersOptions{DepartmentID: departmentID, LocationID: locationID}.
		listQuery().Appended("/users")
	return restclient.GetAllPages(ctx, u.http, path, restclient.DataEnvelopePages[User]())
}

// InviteDeferred 给用户创建邀请（可同时指定部门、地点与负责人）。
// 接口是异步的，返回的任务状态通过 GetDeferredStatus 查询。
func (u Users) InviteDeferred(ctx context.Context, body *DeferredUserRequest) (*User, error) {
	var out User
	if err := u.http.Post(ctx, "/users/deferred", restclient.JSONBody(body), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetDeferredStatus 查询邀请任务的执行状态。
func (u Users) GetDeferredStatus(ctx context.Context, taskID string) (*DeferredTaskStatus, error) {
	var out DeferredTaskStatus
	path := restclient.EscapePath("/users/deferred/status/%s", taskID)
	if err := u.http.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
