package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamp/internal/annotations"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

func (c *cli) newHighlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "highlight",
		Short: "Manage verse highlights",
	}

	var color string
	add := &cobra.Command{
		Use:     "add <reference>",
		Short:   "Highlight a verse",
		Example: `  lamp highlight add John 3:16 --color "#90EE90"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				v, err := s.resolveVerse(cmd, referenceArg(args))
				if err != nil {
					return err
				}
				h, err := s.annotations.SaveHighlight(cmd.Context(), v.VerseID(), color)
				if err != nil {
					return storageErr("save highlight", err)
				}
				return c.emit(cmd, h, func(w io.Writer) {
					fmt.Fprintf(w, "Highlighted %s (%s)\n", v.VerseID(), h.ID)
				})
			})
		},
	}
	add.Flags().StringVar(&color, "color", annotations.DefaultHighlightColor, "highlight color")

	var toggleColor string
	toggle := &cobra.Command{
		Use:   "toggle <reference>",
		Short: "Highlight a verse, or remove its highlight",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				v, err := s.resolveVerse(cmd, referenceArg(args))
				if err != nil {
					return err
				}
				on, err := s.annotations.ToggleHighlight(cmd.Context(), v.VerseID(), toggleColor)
				if err != nil {
					return storageErr("toggle highlight", err)
				}
				return c.emit(cmd, map[string]any{"verseId": v.VerseID(), "highlighted": on}, func(w io.Writer) {
					if on {
						fmt.Fprintf(w, "%s is highlighted\n", v.VerseID())
					} else {
						fmt.Fprintf(w, "%s is no longer highlighted\n", v.VerseID())
					}
				})
			})
		},
	}
	toggle.Flags().StringVar(&toggleColor, "color", annotations.DefaultHighlightColor, "highlight color")

	list := &cobra.Command{
		Use:   "list",
		Short: "List highlights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				highlights := s.annotations.Highlights(cmd.Context())
				return c.emit(cmd, highlights, func(w io.Writer) {
					for _, h := range highlights {
						fmt.Fprintf(w, "%s  %-10s %s\n", h.ID, h.VerseID, h.Color)
					}
				})
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a highlight by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				return storageErr("remove highlight", s.annotations.RemoveHighlight(cmd.Context(), args[0]))
			})
		},
	}

	cmd.AddCommand(add, toggle, list, remove)
	return cmd
}

func (c *cli) newNoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage verse notes",
	}

	add := &cobra.Command{
		Use:     "add <reference> <text>",
		Short:   "Attach a note to a verse",
		Example: `  lamp note add "Psalms 23:1" "Read at grandmother's service"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				v, err := s.resolveVerse(cmd, args[0])
				if err != nil {
					return err
				}
				n, err := s.annotations.SaveNote(cmd.Context(), v.VerseID(), args[1])
				if err != nil {
					return storageErr("save note", err)
				}
				return c.emit(cmd, n, func(w io.Writer) {
					fmt.Fprintf(w, "Saved note %s on %s\n", n.ID, v.VerseID())
				})
			})
		},
	}

	var verseRef string
	list := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				var notes []types.Note
				if verseRef == "" {
					notes = s.annotations.Notes(cmd.Context())
				} else {
					v, err := s.resolveVerse(cmd, verseRef)
					if err != nil {
						return err
					}
					notes = s.annotations.NotesForVerse(cmd.Context(), v.VerseID())
				}
				return c.emit(cmd, notes, func(w io.Writer) {
					for _, n := range notes {
						fmt.Fprintf(w, "%s  %-10s %s\n", n.ID, n.VerseID, n.Text)
					}
				})
			})
		},
	}
	list.Flags().StringVar(&verseRef, "verse", "", "only notes on this verse")

	update := &cobra.Command{
		Use:   "update <id> <text>",
		Short: "Replace the text of a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				return storageErr("update note", s.annotations.UpdateNote(cmd.Context(), args[0], args[1]))
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a note by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				return storageErr("remove note", s.annotations.RemoveNote(cmd.Context(), args[0]))
			})
		},
	}

	cmd.AddCommand(add, list, update, remove)
	return cmd
}

func (c *cli) newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmark",
		Short: "Manage bookmarks",
	}

	add := &cobra.Command{
		Use:   "add <reference>",
		Short: "Bookmark a verse",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				v, err := s.resolveVerse(cmd, referenceArg(args))
				if err != nil {
					return err
				}
				b, err := s.annotations.SaveBookmark(cmd.Context(), v.VerseID(), v.BookName, v.Chapter, v.Verse, v.Text)
				if err != nil {
					return storageErr("save bookmark", err)
				}
				return c.emit(cmd, b, func(w io.Writer) {
					fmt.Fprintf(w, "Bookmarked %s %d:%d (%s)\n", b.BookName, b.Chapter, b.Verse, b.ID)
				})
			})
		},
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				bookmarks := s.annotations.Bookmarks(cmd.Context())
				return c.emit(cmd, bookmarks, func(w io.Writer) {
					for _, b := range bookmarks {
						fmt.Fprintf(w, "%s  %s %d:%d  %s\n", b.ID, b.BookName, b.Chapter, b.Verse, b.Text)
					}
				})
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a bookmark by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				return storageErr("remove bookmark", s.annotations.RemoveBookmark(cmd.Context(), args[0]))
			})
		},
	}

	cmd.AddCommand(add, list, remove)
	return cmd
}

func (c *cli) newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear reading history",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List recently read verses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				history := s.annotations.History(cmd.Context())
				return c.emit(cmd, history, func(w io.Writer) {
					for _, h := range history {
						fmt.Fprintf(w, "%s %d:%d  %s\n", h.BookName, h.Chapter, h.Verse, h.Text)
					}
				})
			})
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Forget all reading history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				return storageErr("clear history", s.annotations.ClearHistory(cmd.Context()))
			})
		},
	}

	cmd.AddCommand(list, clearCmd)
	return cmd
}

func (c *cli) newClearCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all highlights, notes, bookmarks and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errConfirmationRequired
			}
			return c.withSession(cmd, func(s session) error {
				if err := s.annotations.ClearAll(cmd.Context()); err != nil {
					return storageErr("clear annotations", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "All annotations cleared")
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting every annotation")
	return cmd
}
