package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lamp/internal/app"
	"github.com/mesh-intelligence/lamp/internal/devotional"
	"github.com/mesh-intelligence/lamp/pkg/types"
)

// CLI errors.
var (
	errStorage              = errors.New("storage failure")
	errVerseNotFound        = errors.New("verse not found")
	errConfirmationRequired = errors.New("refusing to clear annotations without --yes")
)

// session is an attached application handed to a command body.
type session struct {
	app         *app.App
	catalog     types.Catalog
	annotations types.Annotations
}

// withSession attaches an App for the duration of fn and detaches it
// afterwards, also when fn fails.
func (c *cli) withSession(cmd *cobra.Command, fn func(s session) error) (err error) {
	cfg, err := c.appConfig()
	if err != nil {
		return err
	}

	a := app.New()
	if err := a.Attach(cmd.Context(), cfg); err != nil {
		return fmt.Errorf("open lamp: %w", err)
	}
	defer func() {
		if derr := a.Detach(); derr != nil {
			err = errors.Join(err, fmt.Errorf("%w: close lamp: %w", errStorage, derr))
		}
	}()

	cat, err := a.Catalog()
	if err != nil {
		return err
	}
	ann, err := a.Annotations()
	if err != nil {
		return err
	}
	return fn(session{app: a, catalog: cat, annotations: ann})
}

// storageErr marks a failed write so Execute exits with exitSysError.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", errStorage, op, err)
}

// emit writes v as indented JSON in --json mode, otherwise calls text.
func (c *cli) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if c.flags.jsonMode {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal output: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	text(w)
	return nil
}

// resolveBook accepts a book id or a book name.
func (s session) resolveBook(cmd *cobra.Command, arg string) (*types.Book, error) {
	ctx := cmd.Context()

	var (
		book *types.Book
		err  error
	)
	if id, convErr := strconv.Atoi(arg); convErr == nil {
		book, err = s.catalog.Book(ctx, id)
	} else {
		book, err = s.catalog.BookByName(ctx, arg)
	}
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, fmt.Errorf("%w: %q", types.ErrBookNotFound, arg)
	}
	return book, nil
}

// resolveVerse accepts a verse id ("43-3-16") or a reference ("John 3:16").
func (s session) resolveVerse(cmd *cobra.Command, ref string) (*types.Verse, error) {
	ctx := cmd.Context()
	ref = strings.TrimSpace(ref)

	bookID, chapter, verse, err := types.ParseVerseID(ref)
	if err != nil {
		name, ch, vs, refErr := devotional.ParseReference(ref)
		if refErr != nil {
			return nil, refErr
		}
		if vs == 0 {
			return nil, fmt.Errorf("%w: %q names a chapter, not a verse", types.ErrInvalidReference, ref)
		}
		book, bookErr := s.resolveBook(cmd, name)
		if bookErr != nil {
			return nil, bookErr
		}
		bookID, chapter, verse = book.ID, ch, vs
	}

	v, err := s.catalog.Verse(ctx, bookID, chapter, verse)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", errVerseNotFound, ref)
	}
	return v, nil
}

// referenceArg joins positional arguments so unquoted references such as
// `lamp bookmark add 1 John 3:16` still parse.
func referenceArg(args []string) string {
	return strings.Join(args, " ")
}

// writeVerse prints "John 3:16  text".
func writeVerse(w io.Writer, v types.Verse) {
	fmt.Fprintf(w, "%s  %s\n", devotional.FormatReference(v), v.Text)
}
