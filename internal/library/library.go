// Package library reads the songs of the music directory.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dhowden/tag"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tunedeck/internal/ui/render"
)

const numWorkers = 8

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".m4a":  true,
	".wav":  true,
}

// Song is one audio file of the music directory.
type Song struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Size     int64
	Modified time.Time
}

// FileName returns the base name of the song's file.
func (s Song) FileName() string {
	return filepath.Base(s.Path)
}

// SizeLabel returns the file size in binary units, e.g. "4.2 MiB".
func (s Song) SizeLabel() string {
	if s.Size < 0 {
		return "?"
	}
	return humanize.IBytes(uint64(s.Size))
}

// ModifiedLabel returns the modification time relative to now, e.g. "3 days ago".
func (s Song) ModifiedLabel() string {
	if s.Modified.IsZero() {
		return ""
	}
	return humanize.Time(s.Modified)
}

// IsAudio reports whether path has a supported audio extension.
func IsAudio(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// Scan lists the audio files directly inside root, reading their tags in
// parallel. Subdirectories are not descended into. Songs are sorted by path.
func Scan(root string) ([]Song, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var files []fileEntry
	for _, e := range entries {
		if e.IsDir() || !IsAudio(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		files = append(files, fileEntry{
			path:     filepath.Join(root, e.Name()),
			size:     info.Size(),
			modified: info.ModTime(),
		})
	}

	songs := readAll(files)
	slices.SortFunc(songs, func(a, b Song) int {
		return strings.Compare(a.Path, b.Path)
	})
	return songs, nil
}

type fileEntry struct {
	path     string
	size     int64
	modified time.Time
}

func readAll(files []fileEntry) []Song {
	songs := make([]Song, len(files))
	workCh := make(chan int)

	var wg sync.WaitGroup
	for range min(numWorkers, len(files)) {
		wg.Go(func() {
			for i := range workCh {
				songs[i] = readSong(files[i])
			}
		})
	}

	for i := range files {
		workCh <- i
	}
	close(workCh)
	wg.Wait()

	return songs
}

// readSong never fails: files without readable tags keep their file name as title.
func readSong(f fileEntry) Song {
	s := Song{
		Path:     f.path,
		Title:    filepath.Base(f.path),
		Size:     f.size,
		Modified: f.modified,
	}

	m, err := readTags(f.path)
	if err != nil {
		return s
	}
	if title := render.Sanitize(strings.TrimSpace(m.Title())); title != "" {
		s.Title = title
	}
	s.Artist = render.Sanitize(strings.TrimSpace(m.Artist()))
	s.Album = render.Sanitize(strings.TrimSpace(m.Album()))
	return s
}

func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tag.ReadFrom(f)
}

// Lookup indexes songs by path.
func Lookup(songs []Song) map[string]Song {
	byPath := make(map[string]Song, len(songs))
	for _, s := range songs {
		byPath[s.Path] = s
	}
	return byPath
}
