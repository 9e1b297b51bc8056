// Package fileio implements the numbered file-channel table behind the
// Ouvrir/Fermer/LireFichier/EcrireFichier statements (spec §4.5).
package fileio

import (
	"bufio"
	"fmt"
	"os"
)

// Mode selects how a channel is opened.
type Mode int

const (
	Lecture Mode = iota
	Ecriture
	Ajout
)

const maxChannels = 10

type channel struct {
	file   *os.File
	mode   Mode
	lines  []string // Lecture mode: eagerly loaded, consumed front to back
	writer *bufio.Writer
}

// Manager owns every open channel for one interpreter run.
type Manager struct {
	channels [maxChannels + 1]*channel
}

// New returns an empty channel table.
func New() *Manager {
	return &Manager{}
}

func (m *Manager) slot(ch int) (*channel, error) {
	if ch < 1 || ch > maxChannels {
		return nil, fmt.Errorf("canal %d hors limites", ch)
	}
	return m.channels[ch], nil
}

// Open attaches filename to ch under mode. Re-using a channel already in
// use, or opening a missing file for reading, fails.
func (m *Manager) Open(filename string, ch int, mode Mode) error {
	if ch < 1 || ch > maxChannels {
		return fmt.Errorf("canal %d hors limites", ch)
	}
	if m.channels[ch] != nil {
		return fmt.Errorf("canal %d déjà utilisé", ch)
	}
	switch mode {
	case Lecture:
		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("%s : %w", filename, err)
		}
		var lines []string
		sc := bufio.NewScanner(f)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for sc.Scan() {
			lines = append(lines, sc.Text())
		}
		f.Close()
		if err := sc.Err(); err != nil {
			return fmt.Errorf("%s : %w", filename, err)
		}
		m.channels[ch] = &channel{mode: mode, lines: lines}
	case Ecriture:
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("%s : %w", filename, err)
		}
		m.channels[ch] = &channel{file: f, mode: mode, writer: bufio.NewWriter(f)}
	case Ajout:
		f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("%s : %w", filename, err)
		}
		m.channels[ch] = &channel{file: f, mode: mode, writer: bufio.NewWriter(f)}
	default:
		return fmt.Errorf("mode de fichier inconnu")
	}
	return nil
}

// Close flushes and releases ch. Closing an unopened channel fails.
func (m *Manager) Close(ch int) error {
	c, err := m.slot(ch)
	if err != nil {
		return err
	}
	if c == nil {
		return fmt.Errorf("canal %d non ouvert", ch)
	}
	if c.writer != nil {
		if err := c.writer.Flush(); err != nil {
			return err
		}
	}
	if c.file != nil {
		c.file.Close()
	}
	m.channels[ch] = nil
	return nil
}

// ReadLine pops the next buffered line from ch (Lecture mode only).
func (m *Manager) ReadLine(ch int) (string, error) {
	c, err := m.slot(ch)
	if err != nil {
		return "", err
	}
	if c == nil || c.mode != Lecture {
		return "", fmt.Errorf("canal %d non ouvert en lecture", ch)
	}
	if len(c.lines) == 0 {
		return "", fmt.Errorf("fin de fichier atteinte")
	}
	line := c.lines[0]
	c.lines = c.lines[1:]
	return line, nil
}

// EOF reports whether ch has no more buffered lines.
func (m *Manager) EOF(ch int) (bool, error) {
	c, err := m.slot(ch)
	if err != nil {
		return false, err
	}
	if c == nil || c.mode != Lecture {
		return false, fmt.Errorf("canal %d non ouvert en lecture", ch)
	}
	return len(c.lines) == 0, nil
}

// WriteLine writes one line plus a trailing newline to ch and flushes
// immediately (Ecriture/Ajout modes only).
func (m *Manager) WriteLine(ch int, line string) error {
	c, err := m.slot(ch)
	if err != nil {
		return err
	}
	if c == nil || c.writer == nil {
		return fmt.Errorf("canal %d non ouvert en écriture", ch)
	}
	if _, err := c.writer.WriteString(line + "\n"); err != nil {
		return err
	}
	return c.writer.Flush()
}

// CloseAll releases every still-open channel, best effort, used on
// interpreter shutdown.
func (m *Manager) CloseAll() {
	for ch := 1; ch <= maxChannels; ch++ {
		if m.channels[ch] != nil {
			_ = m.Close(ch)
		}
	}
}
