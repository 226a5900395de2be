package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/C0deXG/model-evalV7/pkg/prefs"
)

func newPrefsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or update persisted viewer preferences",
	}
	cmd.AddCommand(newPrefsShowCommand())
	cmd.AddCommand(newPrefsSetCommand())
	return cmd
}

func newPrefsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefs.NewStore(appConfig.Prefs)
			if err != nil {
				return err
			}
			current, err := store.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "font-size: %d\n", current.FontSize)
			fmt.Fprintf(out, "theme:     %s\n", current.Theme)
			fmt.Fprintf(out, "view:      %s\n", current.View)
			return nil
		},
	}
}

func newPrefsSetCommand() *cobra.Command {
	var (
		fontSize int
		theme    string
		view     string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := prefs.NewStore(appConfig.Prefs)
			if err != nil {
				return err
			}
			current, err := store.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("font-size") {
				current.FontSize = fontSize
			}
			if cmd.Flags().Changed("theme") {
				current.Theme = theme
			}
			if cmd.Flags().Changed("view") {
				current.View = view
			}
			return store.Save(current)
		},
	}

	cmd.Flags().IntVar(&fontSize, "font-size", 0, "display font size")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme (dark, light)")
	cmd.Flags().StringVar(&view, "view", "", "layout (cards, table)")

	return cmd
}
