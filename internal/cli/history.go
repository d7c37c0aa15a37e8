// history.go implements the 'saya history' command for inspecting and
// clearing saved conversations outside the TUI.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/saya-chit/saya/internal/chat"
	"github.com/saya-chit/saya/internal/config"
	"github.com/saya-chit/saya/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		conversations, err := store.List()
		if err != nil {
			return fmt.Errorf("listing conversations: %w", err)
		}

		if len(conversations) == 0 {
			fmt.Println("No saved conversations.")
			return nil
		}

		for _, c := range conversations {
			ts := time.UnixMilli(c.Timestamp).Local().Format("2006-01-02 15:04")
			fmt.Printf("%s  %s  %s\n", shortID(c.ID), ts, c.InitialQuery)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a saved conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		conversations, err := store.List()
		if err != nil {
			return fmt.Errorf("listing conversations: %w", err)
		}

		for _, c := range conversations {
			if c.ID == args[0] || (len(c.ID) >= len(args[0]) && c.ID[:len(args[0])] == args[0]) {
				printConversation(c)
				return nil
			}
		}
		return fmt.Errorf("no conversation with id %q", args[0])
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all saved conversations",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeStore, err := openHistory()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := store.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		fmt.Println("History cleared.")
		return nil
	},
}

// openHistory opens the durable store for CLI inspection. Unlike the TUI
// it does not degrade to memory: an unreadable database is an error worth
// reporting.
func openHistory() (*history.SQLiteStore, func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolving home directory: %w", err)
	}

	cfg, err := config.ReadConfig(home)
	if err != nil {
		cfg = config.DefaultConfig()
	}

	dbPath := filepath.Join(config.Dir(home), cfg.History.File)
	store, err := history.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening history database: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

// shortID abbreviates a conversation id for list output. Stored ids are
// not guaranteed to be UUID-length.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printConversation(c chat.Conversation) {
	ts := time.UnixMilli(c.Timestamp).Local().Format("2006-01-02 15:04")
	fmt.Printf("%s  %s\n\n", c.ID, ts)
	for _, m := range c.Messages {
		switch m.Kind {
		case chat.KindUser, chat.KindUserAnswer:
			text := m.Text
			if m.Kind == chat.KindUserAnswer {
				text = m.Answer
			}
			fmt.Printf("you > %s\n", text)
		case chat.KindIntro, chat.KindError:
			fmt.Printf("saya > %s\n", m.Text)
		case chat.KindQuestion:
			if m.Question != nil {
				fmt.Printf("saya > %s\n", m.Question.Title)
				for _, opt := range m.Question.Options {
					fmt.Printf("        %s. %s\n", opt.Key, opt.Value)
				}
			}
		case chat.KindResponse:
			fmt.Printf("saya >\n%s\n", m.Content)
		}
	}
}

func init() {
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
}
