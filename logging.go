package main

import (
	"io"
	"log"
	"os"
)

// redirectLog sends log output to the file at pathname, or discards it if
// pathname is empty, while the screen is owned by the editor. The returned
// function restores logging to standard error.
func redirectLog(pathname string) (func(), error) {
	restore := func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}
	if len(pathname) == 0 {
		log.SetOutput(io.Discard)
		return restore, nil
	}
	file, err := os.OpenFile(pathname, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)
	return func() {
		restore()
		file.Close()
	}, nil
}
