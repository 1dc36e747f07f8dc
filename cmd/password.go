package cmd

import (
	"github.com/negative-space-software/fileshare-cli/pkg/conf"

	"github.com/spf13/cobra"
)

var passwordCmd = &cobra.Command{
	Use:           "password",
	Short:         "Password-protects shared files (not supported)",
	Args:          cobra.NoArgs,
	RunE:          runPassword,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(passwordCmd)
}

func runPassword(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	// Protecting downloads needs an auth file managed by the web server
	// on the remote host, which this tool does not provision.
	env.console.PrintlnWarnStep("Password protection is not supported")
	env.console.PrintlnInfoStep("It requires configuring basic auth on the web server that serves %s", env.settings.Get(conf.KeyServerDir))
	return nil
}
