package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

func newHistoryCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "history",
		Short: "Manage the search history",
	}
	command.AddCommand(
		newHistoryListCommand(),
		newHistoryDeleteCommand(),
		newHistoryClearCommand(),
	)
	return command
}

func newHistoryListCommand() *cobra.Command {
	var limit int
	command := &cobra.Command{
		Use:   "list",
		Short: "Show past searches, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			records, err := application.historyRepo.List(ctx, limit)
			if err != nil {
				return fmt.Errorf("historyRepo.List() > %w", err)
			}
			for _, record := range records {
				fmt.Printf("%d\t%s\t%s\t%s\n",
					record.ID,
					record.CreatedAt.Local().Format(time.DateTime),
					record.SourceLang,
					record.Word)
			}
			return nil
		},
	}
	command.Flags().IntVar(&limit, "limit", 50, "maximum number of entries to show")
	return command
}

func newHistoryDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one history entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid history id: %s", args[0])
			}

			ctx := cmd.Context()
			application, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.historyRepo.Delete(ctx, id)
		},
	}
}

func newHistoryClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the whole search history",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			application, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer application.Close()

			return application.historyRepo.Clear(ctx)
		},
	}
}
