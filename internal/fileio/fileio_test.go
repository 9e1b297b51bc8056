package fileio

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenOutOfRangeChannel(t *testing.T) {
	m := New()
	if err := m.Open("x.txt", 0, Ecriture); err == nil {
		t.Fatalf("expected an error for channel 0")
	}
	if err := m.Open("x.txt", maxChannels+1, Ecriture); err == nil {
		t.Fatalf("expected an error for channel %d", maxChannels+1)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	m := New()
	path := filepath.Join(t.TempDir(), "out.txt")

	if err := m.Open(path, 1, Ecriture); err != nil {
		t.Fatalf("Open(Ecriture): %v", err)
	}
	if err := m.WriteLine(1, "bonjour"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := m.WriteLine(1, "monde"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := m.Close(1); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if err := m.Open(path, 2, Lecture); err != nil {
		t.Fatalf("Open(Lecture): %v", err)
	}
	line, err := m.ReadLine(2)
	if err != nil || line != "bonjour" {
		t.Fatalf("got %q, %v, want bonjour", line, err)
	}
	eof, err := m.EOF(2)
	if err != nil || eof {
		t.Fatalf("got eof=%v err=%v, want more to read", eof, err)
	}
	line, err = m.ReadLine(2)
	if err != nil || line != "monde" {
		t.Fatalf("got %q, %v, want monde", line, err)
	}
	eof, err = m.EOF(2)
	if err != nil || !eof {
		t.Fatalf("got eof=%v err=%v, want eof", eof, err)
	}
	if _, err := m.ReadLine(2); err == nil {
		t.Fatalf("expected an error reading past end of file")
	}
}

func TestReadPastEOFFails(t *testing.T) {
	m := New()
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := m.Open(path, 1, Lecture); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := m.ReadLine(1); err == nil {
		t.Fatalf("expected an error reading past end of file")
	}
}

func TestOpenMissingFileForReadingFails(t *testing.T) {
	m := New()
	if err := m.Open(filepath.Join(t.TempDir(), "nope.txt"), 1, Lecture); err == nil {
		t.Fatalf("expected an error opening a missing file for reading")
	}
}

func TestReusingAnOpenChannelFails(t *testing.T) {
	m := New()
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := m.Open(path, 1, Ecriture); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := m.Open(path, 1, Ecriture); err == nil {
		t.Fatalf("expected an error re-using an open channel")
	}
}

func TestClosingAnUnopenedChannelFails(t *testing.T) {
	m := New()
	if err := m.Close(3); err == nil {
		t.Fatalf("expected an error closing a channel never opened")
	}
}

func TestAppendModeAddsToExistingContent(t *testing.T) {
	m := New()
	path := filepath.Join(t.TempDir(), "log.txt")
	if err := os.WriteFile(path, []byte("premiere\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := m.Open(path, 1, Ajout); err != nil {
		t.Fatalf("Open(Ajout): %v", err)
	}
	if err := m.WriteLine(1, "seconde"); err != nil {
		t.Fatalf("WriteLine: %v", err)
	}
	if err := m.Close(1); err != nil {
		t.Fatalf("Close: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	want := "premiere\nseconde\n"
	if string(content) != want {
		t.Fatalf("got %q, want %q", content, want)
	}
}

func TestCloseAllReleasesEveryChannel(t *testing.T) {
	m := New()
	dir := t.TempDir()
	if err := m.Open(filepath.Join(dir, "a.txt"), 1, Ecriture); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := m.Open(filepath.Join(dir, "b.txt"), 2, Ecriture); err != nil {
		t.Fatalf("Open: %v", err)
	}
	m.CloseAll()
	if err := m.Close(1); err == nil {
		t.Fatalf("expected channel 1 to already be closed")
	}
	if err := m.Close(2); err == nil {
		t.Fatalf("expected channel 2 to already be closed")
	}
}
