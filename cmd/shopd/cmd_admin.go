package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/divakardiva1011-cell/TAMILAN-CHEMICAL/pkg/auth"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Admin account utilities",
}

// shopd admin hash-password — produce the bcrypt hash for
// ADMIN_PASSWORD_HASH. The server never stores or compares plaintext;
// the operator generates a hash once and puts it in the environment.
var adminHashPasswordCmd = &cobra.Command{
	Use:   "hash-password [password]",
	Short: "Generate a bcrypt hash for the ADMIN_PASSWORD_HASH setting",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var password string
		if len(args) == 1 {
			password = args[0]
		} else {
			fmt.Fprint(os.Stderr, "Password: ")
			reader := bufio.NewReader(os.Stdin)
			line, err := reader.ReadString('\n')
			if err != nil {
				return err
			}
			password = strings.TrimRight(line, "\r\n")
		}

		if password == "" {
			return fmt.Errorf("password must not be empty")
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}

		fmt.Println(hash)
		fmt.Fprintln(os.Stderr, "\nSet this in your environment:")
		fmt.Fprintln(os.Stderr, "  ADMIN_USERNAME=<username>")
		fmt.Fprintf(os.Stderr, "  ADMIN_PASSWORD_HASH=%s\n", hash)
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminHashPasswordCmd)
}
