package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(&Config{DataDir: t.TempDir(), SearchLimit: 10})
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func writeNote(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestIndexDirAndSearch(t *testing.T) {
	svc := newTestService(t)
	notesDir := t.TempDir()

	writeNote(t, notesDir, "auth-flow.md", `---
id: 20240111-auth-flow
title: Auth Flow
tags: [project/backend]
---

# Auth Flow

Notes on the login handshake.
`)
	writeNote(t, notesDir, "groceries.md", "# Groceries\n\nMilk and #errands eggs.\n")
	writeNote(t, notesDir, "ignored.txt", "not markdown")

	count, err := svc.IndexDir(notesDir)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	results, err := svc.Search("handshake")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "20240111-auth-flow", results[0].ID)
	assert.Equal(t, "Auth Flow", results[0].Title)

	tags, err := svc.Tags()
	require.NoError(t, err)
	assert.Equal(t, []string{"errands", "project/backend"}, tags)
}

func TestIndexDirDerivesTitleFromSlug(t *testing.T) {
	svc := newTestService(t)
	notesDir := t.TempDir()
	writeNote(t, notesDir, "meeting-notes_2024.md", "weekly sync agenda\n")

	_, err := svc.IndexDir(notesDir)
	require.NoError(t, err)

	results, err := svc.Search("agenda")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Meeting Notes 2024", results[0].Title)
}

func TestCompleteEndToEnd(t *testing.T) {
	svc := newTestService(t)
	notesDir := t.TempDir()
	writeNote(t, notesDir, "auth.md", "# Auth\n\nlogin handshake\n")
	_, err := svc.IndexDir(notesDir)
	require.NoError(t, err)

	t.Run("note trigger", func(t *testing.T) {
		text := "see [[auth"
		res := svc.Complete(text, len(text))
		require.NotNil(t, res)
		assert.Equal(t, len("see "), res.Anchor)
		require.NotEmpty(t, res.Options)
		assert.True(t, strings.HasPrefix(res.Options[0].Label, "# Auth"))
	})

	t.Run("tag trigger", func(t *testing.T) {
		// The indexed note carries no tags, so only the date and note
		// providers could answer; a bare # with no tags yields nothing.
		text := "#x"
		assert.Nil(t, svc.Complete(text, len(text)))
	})

	t.Run("date trigger", func(t *testing.T) {
		text := "due tomorrow"
		res := svc.Complete(text, len(text))
		require.NotNil(t, res)
		require.Len(t, res.Options, 1)
		assert.Contains(t, res.Options[0].Detail, "from now")
	})
}

func TestTitleFromSlug(t *testing.T) {
	tests := []struct {
		slug string
		want string
	}{
		{"meeting-notes_2024", "Meeting Notes 2024"},
		{"auth", "Auth"},
		{"a-b-c", "A B C"},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Equal(t, tt.want, TitleFromSlug(tt.slug))
		})
	}
}
