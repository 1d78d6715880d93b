package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/PriyankaYambem/cloud-manager/internal/api/request"
	"github.com/PriyankaYambem/cloud-manager/internal/api/response"
)

func newRegisterCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.MessageResponse
			err := client.Do(http.MethodPost, "/api/register", request.RegisterRequest{
				Username: username,
				Password: password,
			}, &resp)
			if err != nil {
				return err
			}

			printResult([]string{resp.Message}, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.MessageResponse
			tok, err := client.DoWithSessionCookie(http.MethodPost, "/api/login", request.LoginRequest{
				Username: username,
				Password: password,
			}, &resp)
			if err != nil {
				return err
			}
			if tok == "" {
				return fmt.Errorf("server did not return a session token")
			}

			if err := cfg.SaveToken(tok); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}
			client.SetToken(tok)

			printResult([]string{resp.Message, "Session token saved to " + cfg.TokenFile}, resp)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var resp response.MessageResponse
			if err := client.Do(http.MethodPost, "/api/logout", nil, &resp); err != nil {
				return err
			}

			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to remove token file: %w", err)
			}

			printResult([]string{resp.Message}, resp)
			return nil
		},
	}
}
