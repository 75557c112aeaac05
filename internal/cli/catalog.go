package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamp/internal/devotional"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

func (c *cli) newBooksCmd() *cobra.Command {
	var testament string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the books of the Bible",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				var (
					books []types.Book
					err   error
				)
				if testament == "" {
					books, err = s.catalog.Books(cmd.Context())
				} else {
					books, err = s.catalog.BooksByTestament(cmd.Context(), types.Testament(testament))
				}
				if err != nil {
					return err
				}
				return c.emit(cmd, books, func(w io.Writer) {
					for _, b := range books {
						fmt.Fprintf(w, "%2d  %-16s %-8s %3d chapters  %s\n",
							b.ID, b.Name, devotional.Abbreviation(b.Name), b.ChapterCount, devotional.TestamentName(b.Testament))
					}
				})
			})
		},
	}
	cmd.Flags().StringVar(&testament, "testament", "", "only list books of one testament (old or new)")
	return cmd
}

func (c *cli) newChaptersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <book>",
		Short: "List the chapters of a book that have verses",
		Example: `  lamp chapters John
  lamp chapters 19`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				book, err := s.resolveBook(cmd, args[0])
				if err != nil {
					return err
				}
				chapters, err := s.catalog.Chapters(cmd.Context(), book.ID)
				if err != nil {
					return err
				}
				return c.emit(cmd, chapters, func(w io.Writer) {
					fmt.Fprintf(w, "%s (%d chapters)\n", book.Name, book.ChapterCount)
					for _, ch := range chapters {
						fmt.Fprintf(w, "  %d\n", ch)
					}
				})
			})
		},
	}
}

func (c *cli) newReadCmd() *cobra.Command {
	var noHistory bool
	cmd := &cobra.Command{
		Use:   "read <book> <chapter> [verse]",
		Short: "Read a chapter or a single verse",
		Long: "Read prints a whole chapter, or one verse when a verse number is given.\n" +
			"Reading a single verse records it in the reading history.",
		Example: `  lamp read John 3
  lamp read "1 John" 4 8
  lamp read 19 23 1 --no-history`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapter, err := strconv.Atoi(args[1])
			if err != nil || chapter < 1 {
				return fmt.Errorf("%w: chapter %q", types.ErrInvalidReference, args[1])
			}
			return c.withSession(cmd, func(s session) error {
				book, err := s.resolveBook(cmd, args[0])
				if err != nil {
					return err
				}
				if len(args) == 2 {
					return c.readChapter(cmd, s, book, chapter)
				}
				verse, err := strconv.Atoi(args[2])
				if err != nil || verse < 1 {
					return fmt.Errorf("%w: verse %q", types.ErrInvalidReference, args[2])
				}
				return c.readVerse(cmd, s, book, chapter, verse, !noHistory)
			})
		},
	}
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "do not record the verse in reading history")
	return cmd
}

func (c *cli) readChapter(cmd *cobra.Command, s session, book *types.Book, chapter int) error {
	ctx := cmd.Context()
	ch, err := s.catalog.Chapter(ctx, book.ID, chapter)
	if err != nil {
		return err
	}
	return c.emit(cmd, ch, func(w io.Writer) {
		fmt.Fprintf(w, "%s %d\n\n", book.Name, chapter)
		if len(ch.Verses) == 0 {
			fmt.Fprintln(w, "No verses available for this chapter.")
			return
		}
		for _, v := range ch.Verses {
			marker := " "
			if s.annotations.IsHighlighted(ctx, v.VerseID()) {
				marker = "*"
			}
			fmt.Fprintf(w, "%s %s\n", marker, devotional.FormatVerseText(v))
		}
	})
}

func (c *cli) readVerse(cmd *cobra.Command, s session, book *types.Book, chapter, verse int, record bool) error {
	ctx := cmd.Context()
	v, err := s.catalog.Verse(ctx, book.ID, chapter, verse)
	if err != nil {
		return err
	}
	if v == nil {
		return fmt.Errorf("%w: %s %d:%d", errVerseNotFound, book.Name, chapter, verse)
	}
	if record {
		err := s.annotations.AddToHistory(ctx, v.VerseID(), v.BookName, v.Chapter, v.Verse, v.Text)
		if err != nil {
			return storageErr("record history", err)
		}
	}

	notes := s.annotations.NotesForVerse(ctx, v.VerseID())
	view := struct {
		types.Verse
		Highlighted bool         `json:"highlighted"`
		Bookmarked  bool         `json:"bookmarked"`
		Notes       []types.Note `json:"notes"`
	}{*v, s.annotations.IsHighlighted(ctx, v.VerseID()), s.annotations.IsBookmarked(ctx, v.VerseID()), notes}

	return c.emit(cmd, view, func(w io.Writer) {
		writeVerse(w, *v)
		for _, n := range notes {
			fmt.Fprintf(w, "  note: %s\n", n.Text)
		}
	})
}

func (c *cli) newSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find verses containing a word or phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword := referenceArg(args)
			return c.withSession(cmd, func(s session) error {
				verses, err := s.catalog.Search(cmd.Context(), keyword)
				if err != nil {
					return err
				}
				return c.emit(cmd, verses, func(w io.Writer) {
					for _, v := range verses {
						writeVerse(w, v)
					}
					fmt.Fprintf(w, "%d verses\n", len(verses))
				})
			})
		},
	}
}

func (c *cli) newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show the verse of the day with a prayer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withSession(cmd, func(s session) error {
				daily, err := s.app.VerseOfTheDay(cmd.Context())
				if err != nil {
					return err
				}
				return c.emit(cmd, daily, func(w io.Writer) {
					fmt.Fprintln(w, devotional.FormatReference(daily.Verse))
					fmt.Fprintln(w, daily.Verse.Text)
					fmt.Fprintln(w)
					fmt.Fprintln(w, daily.Prayer)
				})
			})
		},
	}
}
