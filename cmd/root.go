package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "askme",
		Short:         "askme: ask and answer questions between accounts",
		Long:          "askme keeps accounts and question threads in two flat files. Accounts ask each other questions, optionally anonymously, answer the questions addressed to them and follow threads of replies.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp(os.Stderr)
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	actor := &actorFlags{}
	actor.bind(rootCmd)

	rootCmd.AddCommand(
		newVersionCmd(),
		newConfigCmd(app),
		newAccountCmd(app, actor),
		newAskCmd(app, actor),
		newAnswerCmd(app, actor),
		newDeleteCmd(app, actor),
		newThreadCmd(app, actor),
		newFeedCmd(app, actor),
		newQuestionsCmd(app, actor),
	)

	return rootCmd
}
