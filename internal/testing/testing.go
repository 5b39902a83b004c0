// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/playgen/internal/models"
)

// MockSource is a test double for [catalog.Source]
type MockSource struct {
	Records  []models.TrackRecord
	Err      error
	Calls    int
	Accounts []string
}

func (m *MockSource) Tracks(ctx context.Context, account string) ([]models.TrackRecord, error) {
	m.Calls++
	m.Accounts = append(m.Accounts, account)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Records, nil
}

func (m *MockSource) Name() string { return "mock" }

// ScenarioRecords returns the three-song library used across tests:
// song1 {Rock, Indie}, song2 {Rock, Alternative}, song3 {Rap, Alternative}.
// Subgenres: song1 {Indie Rock}, song2 {Alt Rock, Grunge}, song3 {Alt Rap}.
func ScenarioRecords() []models.TrackRecord {
	return []models.TrackRecord{
		{Name: "song1", Link: "songLink", Liked: true, RecentPlayCount: 50, Genres: []string{"Rock", "Indie"}, Subgenres: []string{"Indie Rock"}},
		{Name: "song2", Link: "songLink", Liked: false, RecentPlayCount: 20, Genres: []string{"Rock", "Alternative"}, Subgenres: []string{"Alt Rock", "Grunge"}},
		{Name: "song3", Link: "songLink", Liked: false, RecentPlayCount: 20, Genres: []string{"Rap", "Alternative"}, Subgenres: []string{"Alt Rap"}},
	}
}

// ScenarioSongs converts [ScenarioRecords] into songs.
func ScenarioSongs() []models.Song {
	records := ScenarioRecords()
	songs := make([]models.Song, len(records))
	for i, r := range records {
		songs[i] = r.Song()
	}
	return songs
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
