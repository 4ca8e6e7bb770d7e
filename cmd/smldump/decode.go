package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arloliu/go-sml/message"
)

type decodedFile struct {
	Path     string        `json:"path" yaml:"path"`
	Messages *message.File `json:"messages" yaml:"messages"`
}

func newDecodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [files...]",
		Short: "Print the messages of SML files",
		Long: `Print the messages of SML files. A file name of "-" reads from stdin.
Without arguments stdin is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecode(cmd.InOrStdin(), args)
		},
	}
}

func (a *app) runDecode(stdin io.Reader, paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	var files []decodedFile
	defer func() {
		for _, f := range files {
			f.Messages.Free()
		}
	}()

	for _, path := range paths {
		file, err := a.decodeFile(path, stdin)
		if err != nil {
			return err
		}
		files = append(files, decodedFile{Path: path, Messages: file})
	}

	if a.cfg.Format != "text" {
		return writeStructured(a.out, a.cfg.Format, files)
	}

	for _, f := range files {
		fmt.Fprintf(a.out, "# %s\n", f.Path)
		fmt.Fprint(a.out, f.Messages.String())
	}

	return nil
}

func (a *app) decodeFile(path string, stdin io.Reader) (*message.File, error) {
	data, err := readInput(path, a.cfg.Input, stdin)
	if err != nil {
		return nil, err
	}

	a.log.Debug("decoding sml file", "path", path, "size", len(data))
	file, err := message.DecodeFile(data, a.decodeOptions()...)
	if err != nil {
		file.Free()
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return file, nil
}
