package main

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// postSaveCommand builds the command line of the post-save hook. %FILE% is
// replaced in every word after splitting so paths with spaces stay intact.
func postSaveCommand(command, pathname string) ([]string, error) {
	words, err := shellquote.Split(command)
	if err != nil {
		return nil, fmt.Errorf("syntax error in post-save command: %w", err)
	}
	if len(words) == 0 {
		return nil, nil
	}
	for i, word := range words {
		words[i] = strings.ReplaceAll(word, "%FILE%", pathname)
	}
	return words, nil
}

// runPostSaveCommand runs the post-save hook for pathname and waits for it.
func runPostSaveCommand(command, pathname string) error {
	commandLine, err := postSaveCommand(command, pathname)
	if err != nil || len(commandLine) == 0 {
		return err
	}
	output, err := exec.Command(commandLine[0], commandLine[1:]...).CombinedOutput()
	log.Printf("%s: %s", shellquote.Join(commandLine...), output)
	if err != nil {
		var exitErr *exec.ExitError
		lines := strings.Split(strings.TrimSpace(string(output)), "\n")
		if errors.As(err, &exitErr) && len(lines[len(lines)-1]) != 0 {
			return fmt.Errorf("%s: %s", commandLine[0], lines[len(lines)-1])
		}
		return fmt.Errorf("%s: %w", commandLine[0], err)
	}
	return nil
}
