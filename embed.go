// Package addrbook provides embedded runtime resources (the command reference)
// and an overlay filesystem that checks local disk first, falling back to embedded.
package addrbook

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// HelpFile is the name of the command reference inside Help.
const HelpFile = "commands.txt"

//go:embed help/commands.txt
var rawHelp embed.FS

// Help is the embedded help filesystem with the "help/" prefix stripped.
var Help = mustSub(rawHelp, "help")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// HelpText reads the command reference from fsys.
func HelpText(fsys fs.FS) (string, error) {
	data, err := fs.ReadFile(fsys, HelpFile)
	if err != nil {
		return "", fmt.Errorf("help: reading %s: %w", HelpFile, err)
	}
	return string(data), nil
}

// OverlayFS returns a filesystem that checks localDir on disk first,
// falling back to the embedded filesystem for files not found locally.
func OverlayFS(localDir string, embedded fs.FS) fs.FS {
	return overlayFS{localDir: localDir, embedded: embedded}
}

type overlayFS struct {
	localDir string
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	if o.localDir != "" {
		f, err := os.Open(filepath.Join(o.localDir, filepath.FromSlash(name)))
		if err == nil {
			return f, nil
		}
	}
	return o.embedded.Open(name)
}
