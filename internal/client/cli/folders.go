package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/filekeeper/internal/client/client"
	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return client.ErrNotLoggedIn
	}
	return nil
}

// ListFolders prints every folder as an aligned table.
func (a *App) ListFolders(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	folders, err := a.api.ListFolders(ctx)
	if err != nil {
		return err
	}
	a.printFolders(folders)
	return nil
}

// CreateFolder creates a folder named by the remaining arguments. When no
// name is given the user is prompted for one.
func (a *App) CreateFolder(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	name := strings.Join(args, " ")
	if name == "" {
		var err error
		name, err = getSimpleText(a.reader, "Folder name", a.out)
		if err != nil {
			return err
		}
	}

	f, err := a.api.CreateFolder(ctx, name, a.now().UTC())
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Folder %d created\n", f.ID)
	return nil
}

func (a *App) RenameFolder(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return usage("renamedir <id> <name>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	f, err := a.api.RenameFolder(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Folder %d renamed to %q\n", f.ID, f.Name)
	return nil
}

func (a *App) DeleteFolder(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return usage("rmdir <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.api.DeleteFolder(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Folder %d deleted\n", id)
	return nil
}

func (a *App) printFolders(folders []*models.Folder) {
	if len(folders) == 0 {
		fmt.Fprintln(a.out, "No folders")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tMODIFIED")
	for _, f := range folders {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", f.ID, f.Name, f.DateModified.Format(dateLayout))
	}
	tw.Flush()
}
