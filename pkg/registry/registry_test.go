package registry

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/aretw0/drills/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echo(ctx context.Context, in domain.Input) error {
	_, err := fmt.Fprintln(in.Stdout, in.Args)
	return err
}

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry()
	r.Register(Script{Name: "echo", Group: "misc", Run: echo})

	var buf bytes.Buffer
	err := r.Execute(context.Background(), "echo", domain.Input{Args: []string{"a", "b"}, Stdout: &buf})
	require.NoError(t, err)
	assert.Equal(t, "[a b]\n", buf.String())

	err = r.Execute(context.Background(), "missing", domain.Input{Stdout: &buf})
	assert.ErrorIs(t, err, domain.ErrUnknownScript)
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	r.Register(Script{Name: "title", Group: "web", Run: echo})
	r.Register(Script{Name: "add", Group: "numbers", Run: echo})
	r.Register(Script{Name: "factorial", Group: "numbers", Run: echo})
	r.Register(Script{Name: "add", Group: "numbers", Short: "replaced", Run: echo})

	var names []string
	for _, s := range r.List() {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"add", "factorial", "title"}, names)

	s, ok := r.Get("add")
	require.True(t, ok)
	assert.Equal(t, "replaced", s.Short)
}
