package scripts

import (
	"context"
	"fmt"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/fileio"
)

func (s *set) read(ctx context.Context, in domain.Input) error {
	path, err := required(in, 0, "file")
	if err != nil {
		return err
	}
	content, err := fileio.Read(path)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, content)
	return err
}

func (s *set) write(ctx context.Context, in domain.Input) error {
	path, err := required(in, 0, "file")
	if err != nil {
		return err
	}
	content, _ := in.Arg(1)
	if err := fileio.Write(path, content); err != nil {
		return fail(in.Stdout, err)
	}
	return nil
}

func (s *set) appendText(ctx context.Context, in domain.Input) error {
	path, err := required(in, 0, "file")
	if err != nil {
		return err
	}
	text, _ := in.Arg(1)
	n, err := fileio.Append(path, text)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, n)
	return err
}

func (s *set) addItem(ctx context.Context, in domain.Input) error {
	list, err := fileio.AddItems(s.Config.ItemsFile, in.Args...)
	if err != nil {
		return fail(in.Stdout, err)
	}
	s.Logger.Debug("items saved", "file", s.Config.ItemsFile, "count", len(list))
	return nil
}
