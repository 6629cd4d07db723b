package gui

import (
	"errors"

	nativedialog "github.com/sqweek/dialog"
)

// ErrPickCancelled is returned when the user closes a file dialog
var ErrPickCancelled = errors.New("file selection cancelled")

// FileFilter restricts a file dialog to some extensions
type FileFilter struct {
	Description string
	Extensions  []string
}

var (
	presetFilter = FileFilter{Description: "Preset files", Extensions: []string{"yaml", "yml"}}
	iniFilter    = FileFilter{Description: "Options files", Extensions: []string{"ini"}}
	imageFilter  = FileFilter{Description: "Images", Extensions: []string{"png", "jpg", "jpeg", "gif"}}
)

// FilePicker asks the user for a file to read or write
type FilePicker interface {
	Load(title string, filter FileFilter) (string, error)
	Save(title string, filter FileFilter) (string, error)
}

// NativePicker uses the operating system's file dialogs
type NativePicker struct {
	StartDir string
}

// NewNativePicker creates a picker that opens in startDir
func NewNativePicker(startDir string) *NativePicker {
	return &NativePicker{StartDir: startDir}
}

func (n *NativePicker) builder(title string, filter FileFilter) *nativedialog.FileBuilder {
	b := nativedialog.File().Title(title).Filter(filter.Description, filter.Extensions...)
	if n.StartDir != "" {
		b = b.SetStartDir(n.StartDir)
	}
	return b
}

// Load blocks until the user picks an existing file
func (n *NativePicker) Load(title string, filter FileFilter) (string, error) {
	path, err := n.builder(title, filter).Load()
	return path, pickError(err)
}

// Save blocks until the user picks a file to write
func (n *NativePicker) Save(title string, filter FileFilter) (string, error) {
	path, err := n.builder(title, filter).Save()
	return path, pickError(err)
}

func pickError(err error) error {
	if errors.Is(err, nativedialog.Cancelled) {
		return ErrPickCancelled
	}
	return err
}
