package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type messageResult struct {
	Message string `json:"message"`
}

func newRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Register a new player credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result messageResult
			req := credentialsRequest{Username: args[0], Password: args[1]}
			if err := client.Post("/register", req, &result); err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		},
	}
}

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Verify a player credential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result messageResult
			req := credentialsRequest{Username: args[0], Password: args[1]}
			if err := client.Post("/login", req, &result); err != nil {
				return err
			}
			fmt.Println(result.Message)
			return nil
		},
	}
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Status string `json:"status"`
			}
			if err := client.Get("/health", &result); err != nil {
				return err
			}
			fmt.Println(result.Status)
			return nil
		},
	}
}
