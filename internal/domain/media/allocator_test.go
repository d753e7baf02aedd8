package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"emogo/internal/domain"
)

func TestAllocateNameAllowedExtensions(t *testing.T) {
	t.Parallel()

	for _, filename := range []string{
		"clip.mp4", "clip.avi", "clip.mov", "clip.mkv", "clip.webm", "clip.m4v",
	} {
		name, err := AllocateName(filename)
		require.NoError(t, err, filename)
		require.True(t, ValidStoredName(name), name)
	}
}

func TestAllocateNameRejectsUnsupportedExtensions(t *testing.T) {
	t.Parallel()

	for _, filename := range []string{
		"notes.txt", "archive.zip", "clip.mp3", "clip", "", ".mp4.exe",
	} {
		_, err := AllocateName(filename)

		var mediaTypeErr domain.UnsupportedMediaTypeError
		require.ErrorAs(t, err, &mediaTypeErr, filename)
	}
}

func TestAllocateNameLowercasesExtension(t *testing.T) {
	t.Parallel()

	name, err := AllocateName("HOLIDAY.MP4")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(name, ".mp4"))
}

func TestAllocateNameNeverReusesClientBaseName(t *testing.T) {
	t.Parallel()

	name, err := AllocateName("clip.mp4")
	require.NoError(t, err)
	require.NotContains(t, name, "clip")
}

func TestAllocateNameIsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		name, err := AllocateName("clip.mp4")
		require.NoError(t, err)

		_, dup := seen[name]
		require.False(t, dup, "duplicate storage name %s", name)
		seen[name] = struct{}{}
	}
}

func TestValidStoredName(t *testing.T) {
	t.Parallel()

	valid, err := AllocateName("clip.webm")
	require.NoError(t, err)

	tests := []struct {
		name string
		ok   bool
	}{
		{name: valid, ok: true},
		{name: "", ok: false},
		{name: "../../etc/passwd", ok: false},
		{name: "sub/dir.mp4", ok: false},
		{name: `sub\dir.mp4`, ok: false},
		{name: ".hidden.mp4", ok: false},
		{name: "video.txt", ok: false},
	}

	for _, tt := range tests {
		require.Equal(t, tt.ok, ValidStoredName(tt.name), tt.name)
	}
}
