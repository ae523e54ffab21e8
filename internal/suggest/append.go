package suggest

import (
	"fmt"
	"os"
)

// AppendPair appends one word to each of the two word lists so that they stay
// line-aligned. A missing trailing newline is added first. Both lists are
// opened before either is written, and the English list is truncated back
// when the Russian write fails.
func AppendPair(englishPath, russianPath string, s Suggestion) error {
	en, err := openWordList(englishPath)
	if err != nil {
		return err
	}
	defer en.f.Close()

	ru, err := openWordList(russianPath)
	if err != nil {
		return err
	}
	defer ru.f.Close()

	if err := en.append(s.English()); err != nil {
		en.rollback()
		return err
	}
	if err := ru.append(s.Russian()); err != nil {
		if rerr := en.rollback(); rerr != nil {
			return fmt.Errorf("%w (and failed to restore %s: %v)", err, en.path, rerr)
		}
		return err
	}
	return nil
}

// wordList is a word list file opened for appending
type wordList struct {
	f      *os.File
	path   string
	size   int64
	prefix string
}

func openWordList(path string) (*wordList, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat word list %s: %w", path, err)
	}

	w := &wordList{f: f, path: path, size: info.Size()}
	if w.size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, w.size-1); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
		}
		if last[0] != '\n' {
			w.prefix = "\n"
		}
	}
	return w, nil
}

func (w *wordList) append(word string) error {
	if _, err := w.f.WriteAt([]byte(w.prefix+word+"\n"), w.size); err != nil {
		return fmt.Errorf("failed to write word list %s: %w", w.path, err)
	}
	return nil
}

// rollback restores the size the list had when it was opened
func (w *wordList) rollback() error {
	return w.f.Truncate(w.size)
}
