package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/filekeeper/internal/client/models"
)

const dateLayout = "2006-01-02 15:04"

func (a *App) ListFiles(ctx context.Context, _ []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	files, err := a.api.ListFiles(ctx)
	if err != nil {
		return err
	}
	a.printFiles(files)
	return nil
}

// ListFolderFiles prints the files whose parent is the given folder.
func (a *App) ListFolderFiles(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return usage("ls <folderID>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	files, err := a.api.ListFolderFiles(ctx, id)
	if err != nil {
		return err
	}
	a.printFiles(files)
	return nil
}

// CreateFile records a file with the given name and size, optionally under a folder.
func (a *App) CreateFile(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 || len(args) > 3 {
		return usage("touch <name> <size> [folderID]")
	}

	size, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil || size < 0 {
		return fmt.Errorf("invalid size %q", args[1])
	}

	var parentID *int64
	if len(args) == 3 {
		id, err := parseID(args[2])
		if err != nil {
			return err
		}
		parentID = &id
	}

	f, err := a.api.CreateFile(ctx, args[0], size, a.now().UTC(), parentID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "File %d created\n", f.ID)
	return nil
}

func (a *App) RenameFile(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) < 2 {
		return usage("rename <id> <name>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	f, err := a.api.RenameFile(ctx, id, strings.Join(args[1:], " "))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "File %d renamed to %q\n", f.ID, f.Name)
	return nil
}

func (a *App) DeleteFile(ctx context.Context, args []string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if len(args) != 1 {
		return usage("rm <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.api.DeleteFile(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "File %d deleted\n", id)
	return nil
}

func (a *App) printFiles(files []*models.File) {
	if len(files) == 0 {
		fmt.Fprintln(a.out, "No files")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSIZE\tFOLDER\tMODIFIED")
	for _, f := range files {
		parent := "-"
		if f.ParentID != nil {
			parent = strconv.FormatInt(*f.ParentID, 10)
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", f.ID, f.Name, f.Size, parent, f.DateModified.Format(dateLayout))
	}
	tw.Flush()
}
