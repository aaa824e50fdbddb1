package main

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petuhovskiy/notepick/internal/app"
	"github.com/petuhovskiy/notepick/internal/bgjobs"
	"github.com/petuhovskiy/notepick/internal/conf"
)

func Test_serveLines(t *testing.T) {
	in := strings.NewReader("pick-random-note\n\n  set-priority thesis 3 \nbroken\ndue-flashcards\n")

	var got [][]string
	err := serveLines(context.Background(), in, func(_ context.Context, id string, args []string) error {
		got = append(got, append([]string{id}, args...))
		if id == "broken" {
			return errors.New("unknown")
		}
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"pick-random-note"},
		{"set-priority", "thesis", "3"},
		{"broken"},
		{"due-flashcards"},
	}, got)
}

func Test_serveLinesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := serveLines(ctx, strings.NewReader(""), func(context.Context, string, []string) error {
		t.Fatal("must not run")
		return nil
	})
	assert.NoError(t, err)
}

func Test_serveStopsMetricsOnEOF(t *testing.T) {
	a := &app.App{
		Config:   &conf.App{PrometheusBind: "127.0.0.1:0"},
		Register: bgjobs.NewRegister(),
	}

	var ran []string
	done := make(chan error, 1)
	go func() {
		done <- serve(context.Background(), a, strings.NewReader("due-flashcards\n"), func(_ context.Context, id string, _ []string) error {
			ran = append(ran, id)
			return nil
		})
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after input was exhausted")
	}
	assert.Equal(t, []string{"due-flashcards"}, ran)
	assert.EqualValues(t, 0, a.Register.Running())
}
