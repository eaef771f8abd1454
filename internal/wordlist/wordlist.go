// Package wordlist loads vocabularies and custom texts from files.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadWords reads whitespace-separated words from path, keeping those that pass keep.
// A nil keep accepts every word.
func LoadWords(path string, keep FilterFunc) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		if keep != nil && !keep(word) {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadText reads a custom text from path with whitespace collapsed to single spaces.
func LoadText(path string) (string, error) {
	words, err := LoadWords(path, Typeable)
	if err != nil {
		return "", err
	}
	return strings.Join(words, " "), nil
}
