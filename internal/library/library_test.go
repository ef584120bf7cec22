package library

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// id3v23 builds a minimal ID3v2.3 tag holding ISO-8859-1 text frames.
func id3v23(frames map[string]string) []byte {
	var body bytes.Buffer
	for _, id := range []string{"TIT2", "TPE1", "TALB"} {
		text, ok := frames[id]
		if !ok {
			continue
		}
		body.WriteString(id)
		_ = binary.Write(&body, binary.BigEndian, uint32(len(text)+1))
		body.Write([]byte{0, 0}) // flags
		body.WriteByte(0)        // encoding
		body.WriteString(text)
	}

	size := body.Len()
	var out bytes.Buffer
	out.WriteString("ID3")
	out.Write([]byte{3, 0, 0})
	out.Write([]byte{
		byte(size >> 21 & 0x7f),
		byte(size >> 14 & 0x7f),
		byte(size >> 7 & 0x7f),
		byte(size & 0x7f),
	})
	out.Write(body.Bytes())
	out.Write(make([]byte, 64))
	return out.Bytes()
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestIsAudio(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.FLAC", true},
		{"a/b/song.opus", true},
		{"song.m4a", true},
		{"cover.jpg", false},
		{"notes", false},
		{"mp3", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudio(tt.path))
		})
	}
}

func TestScan_ReadsTags(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "01.mp3", id3v23(map[string]string{
		"TIT2": "So What",
		"TPE1": "Miles Davis",
		"TALB": "Kind of Blue",
	}))

	songs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, songs, 1)

	assert.Equal(t, "So What", songs[0].Title)
	assert.Equal(t, "Miles Davis", songs[0].Artist)
	assert.Equal(t, "Kind of Blue", songs[0].Album)
	assert.Equal(t, "01.mp3", songs[0].FileName())
}

func TestScan_UntaggedFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "take five.wav", []byte("RIFF not really"))

	songs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, songs, 1)

	assert.Equal(t, "take five.wav", songs[0].Title)
	assert.Empty(t, songs[0].Artist)
}

func TestScan_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.flac", nil)
	writeFile(t, dir, "a.mp3", nil)
	writeFile(t, dir, "cover.jpg", nil)
	writeFile(t, dir, "b.OGG", nil)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp3"), 0o755))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	writeFile(t, sub, "deep.mp3", nil)

	songs, err := Scan(dir)
	require.NoError(t, err)

	var names []string
	for _, s := range songs {
		names = append(names, s.FileName())
	}
	assert.Equal(t, []string{"a.mp3", "b.OGG", "c.flac"}, names)
}

func TestScan_ManyFiles(t *testing.T) {
	dir := t.TempDir()
	for i := range 40 {
		writeFile(t, dir, string(rune('a'+i%26))+string(rune('a'+i/26))+".mp3", nil)
	}

	songs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, songs, 40)
	for i := 1; i < len(songs); i++ {
		assert.Less(t, songs[i-1].Path, songs[i].Path)
	}
}

func TestScan_EmptyDirectory(t *testing.T) {
	songs, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, songs)
}

func TestScan_MissingDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSong_Labels(t *testing.T) {
	s := Song{Size: 1536, Modified: time.Now().Add(-3 * time.Hour)}

	assert.Equal(t, "1.5 KiB", s.SizeLabel())
	assert.Equal(t, "3 hours ago", s.ModifiedLabel())

	assert.Empty(t, Song{}.ModifiedLabel())
	assert.Equal(t, "0 B", Song{}.SizeLabel())
}

func TestScan_SizeAndModified(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.mp3", make([]byte, 2048))
	when := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(path, when, when))

	songs, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, songs, 1)

	assert.Equal(t, int64(2048), songs[0].Size)
	assert.Equal(t, "2.0 KiB", songs[0].SizeLabel())
	assert.True(t, songs[0].Modified.Equal(when))
}

func TestLookup(t *testing.T) {
	songs := []Song{{Path: "/m/a.mp3", Title: "A"}, {Path: "/m/b.mp3", Title: "B"}}

	byPath := Lookup(songs)

	assert.Len(t, byPath, 2)
	assert.Equal(t, "B", byPath["/m/b.mp3"].Title)
}
