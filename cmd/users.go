package cmd

import (
	"context"

	"github.com/spf13/cobra"

	rampuserssdk "github.com/wangdayong228/rest-sdk-client/pkg/ramp-users-sdk"
	"github.com/wangdayong228/rest-sdk-client/pkg/restclient"
)

var (
	usersDepartmentID string
	usersLocationID   string

	inviteEmail     string
	inviteFirstName string
	inviteLastName  string
	inviteRole      string
)

func init() {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Ramp Users 相关操作",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "列出企业内所有用户（自动翻完所有页）",
		RunE:  runUsersList,
	}
	listCmd.Flags().StringVar(&usersDepartmentID, "department-id", "", "按部门过滤（可选）")
	listCmd.Flags().StringVar(&usersLocationID, "location-id", "", "按地点过滤（可选）")

	getCmd := &cobra.Command{
		Use:   "get <user_id>",
		Short: "获取单个用户信息",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := usersClient().Users.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(user)
		},
	}

	suspendCmd := &cobra.Command{
		Use:   "suspend <user_id>",
		Short: "停用用户（注意：目前不可逆）",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return usersClient().Users.Suspend(context.Background(), args[0])
		},
	}

	inviteCmd := &cobra.Command{
		Use:   "invite",
		Short: "邀请新用户加入企业",
		RunE:  runUsersInvite,
	}
	inviteCmd.Flags().StringVar(&inviteEmail, "email", "", "被邀请人邮箱")
	inviteCmd.Flags().StringVar(&inviteFirstName, "first-name", "", "名")
	inviteCmd.Flags().StringVar(&inviteLastName, "last-name", "", "姓")
	inviteCmd.Flags().StringVar(&inviteRole, "role", string(rampuserssdk.RoleUser), "角色（BUSINESS_ADMIN / BUSINESS_USER / ...）")
	for _, name := range []string{"email", "first-name", "last-name"} {
		if err := inviteCmd.MarkFlagRequired(name); err != nil {
			panic(err)
		}
	}

	statusCmd := &cobra.Command{
		Use:   "invite-status <task_id>",
		Short: "查询邀请任务的执行状态",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := usersClient().Users.GetDeferredStatus(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(st)
		},
	}

	usersCmd.AddCommand(listCmd, getCmd, suspendCmd, inviteCmd, statusCmd)
	rootCmd.AddCommand(usersCmd)
}

func usersClient() *rampuserssdk.Client {
	cfg := loadConfig()
	return rampuserssdk.New(cfg.Ramp.BaseURL,
		restclient.WithBearerToken(cfg.Ramp.Token),
		restclient.WithTimeout(cfg.Timeout()),
		restclient.WithMaxPages(cfg.MaxPages),
	)
}

func runUsersList(cmd *cobra.Command, args []string) error {
	users, err := usersClient().Users.ListAll(context.Background(), usersDepartmentID, usersLocationID)
	if err != nil {
		return err
	}
	return printJSON(users)
}

func runUsersInvite(cmd *cobra.Command, args []string) error {
	user, err := usersClient().Users.InviteDeferred(context.Background(), &rampuserssdk.DeferredUserRequest{
		Email:     inviteEmail,
		FirstName: inviteFirstName,
		LastName:  inviteLastName,
		Role:      rampuserssdk.Role(inviteRole),
	})
	if err != nil {
		return err
	}
	return printJSON(user)
}
