package cmd

import (
	"github.com/negative-space-software/fileshare-cli/pkg/conf"

	"github.com/spf13/cobra"
)

var aboutCmd = &cobra.Command{
	Use:           "about",
	Short:         "Shows tool and connection info",
	Args:          cobra.NoArgs,
	RunE:          runAbout,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(cmd *cobra.Command, args []string) error {
	env, err := newCmdEnv()
	if err != nil {
		return err
	}

	env.console.Println("Fileshare - self-hosted file sharing over SFTP")
	env.console.Rule()
	env.console.Details("Build", [][2]string{
		{"Version", conf.Version},
		{"Commit", conf.Commit},
	})
	env.console.Details("Connection", [][2]string{
		{"Host", env.settings.Get(conf.KeyServerHost)},
		{"Port", env.settings.Get(conf.KeyServerPort)},
		{"User", env.settings.Get(conf.KeyServerUser)},
		{"Directory", env.settings.Get(conf.KeyServerDir)},
		{"Key file", env.settings.KeyPath()},
		{"Public base", env.settings.PublicBase()},
	})

	if env.settings.IsConfigured() {
		env.console.PrintlnOkStep("SSH key found")
	} else {
		env.console.PrintlnWarnStep("SSH key missing, run \"fileshare setup\"")
	}
	return nil
}
