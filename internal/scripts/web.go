package scripts

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/aretw0/drills/pkg/fetch"
	"github.com/aretw0/drills/pkg/fileio"
	"github.com/aretw0/drills/pkg/widget"
	json "github.com/goccy/go-json"
)

func (s *set) status(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "url")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, false)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintf(in.Stdout, "code: %d\n", resp.Status)
	return err
}

func (s *set) title(ctx context.Context, in domain.Input) error {
	id, err := required(in, 0, "film-id")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, fetch.FilmURL(s.Config.SwapiURL, id), true)
	if err != nil {
		return fail(in.Stdout, err)
	}
	title, err := fetch.Title(resp.Body)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, title)
	return err
}

func (s *set) count(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "films-url")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, true)
	if err != nil {
		return fail(in.Stdout, err)
	}
	n, err := fetch.CountCharacter(resp.Body, s.Config.CharacterID)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, n)
	return err
}

func (s *set) store(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "url")
	if err != nil {
		return err
	}
	path, err := required(in, 1, "file")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, false)
	if err != nil {
		return fail(in.Stdout, err)
	}
	if len(resp.Body) == 0 {
		s.Logger.Debug("empty body, nothing stored", "url", target)
		return nil
	}
	if err := fileio.Write(path, string(resp.Body)); err != nil {
		return fail(in.Stdout, err)
	}
	return nil
}

func (s *set) tasks(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "todos-url")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, true)
	if err != nil {
		return fail(in.Stdout, err)
	}
	tally, err := fetch.CompletedByUser(resp.Body)
	if err != nil {
		return fail(in.Stdout, err)
	}

	if s.Render != nil {
		out, err := s.Render(tallyTable(tally))
		if err == nil {
			_, err = fmt.Fprint(in.Stdout, out)
			return err
		}
		s.Logger.Warn("markdown rendering failed, falling back to JSON", "err", err)
	}

	data, err := json.MarshalIndent(tally, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(in.Stdout, string(data))
	return err
}

func tallyTable(t *fetch.Tally) string {
	var b strings.Builder
	b.WriteString("| User | Completed |\n|---|---|\n")
	for _, k := range t.Keys() {
		fmt.Fprintf(&b, "| %s | %d |\n", k, t.Get(k))
	}
	return b.String()
}

func (s *set) header(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "url")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, false)
	if err != nil {
		return fail(in.Stdout, err)
	}
	id, ok := fetch.RequestID(resp)
	if !ok {
		return nil
	}
	_, err = fmt.Fprintln(in.Stdout, id)
	return err
}

func (s *set) postEmail(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "url")
	if err != nil {
		return err
	}
	email, err := required(in, 1, "email")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.PostForm(ctx, target, url.Values{"email": {email}})
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, string(resp.Body))
	return err
}

func (s *set) errorCode(ctx context.Context, in domain.Input) error {
	target, err := required(in, 0, "url")
	if err != nil {
		return err
	}
	resp, err := s.Fetcher.Get(ctx, target, false)
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, fetch.ErrorCode(resp))
	return err
}

func (s *set) searchUser(ctx context.Context, in domain.Input) error {
	letter, _ := in.Arg(0)
	resp, err := s.Fetcher.PostForm(ctx, s.Config.SearchURL, url.Values{"q": {letter}})
	if err != nil {
		return fail(in.Stdout, err)
	}
	_, err = fmt.Fprintln(in.Stdout, fetch.SearchUser(resp.Body))
	return err
}

func (s *set) widget(ctx context.Context, in domain.Input) error {
	element, err := required(in, 0, "element")
	if err != nil {
		return err
	}
	b, ok := s.Config.Binding(element)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrUnknownBinding, element)
	}
	input, _ := in.Arg(1)

	res, err := widget.Resolve(ctx, s.Fetcher, b, input)
	if err != nil {
		s.Logger.Debug("binding failed", "element", element, "err", err)
	}
	for _, text := range res.Texts {
		if _, err := fmt.Fprintln(in.Stdout, text); err != nil {
			return err
		}
	}
	return nil
}
