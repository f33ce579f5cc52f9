package main

import (
	"io"
	"os"

	"github.com/janpfeifer/hnefGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// decodedBoard read from a file.
type decodedBoard struct {
	filename string
	encoded  []byte
	board    *state.Board
}

// decodeFiles reads and decodes the boards in filenames concurrently. Results are
// returned in the same order as filenames; the first error aborts the decoding.
func decodeFiles(filenames []string, strict bool) ([]decodedBoard, error) {
	decode := state.DecodeBoard
	if strict {
		decode = state.DecodeBoardStrict
	}
	results := make([]decodedBoard, len(filenames))
	var wg errgroup.Group
	for ii, filename := range filenames {
		wg.Go(func() error {
			encoded, err := os.ReadFile(filename)
			if err != nil {
				return errors.Wrapf(err, "failed to read %q", filename)
			}
			board, err := decode(encoded)
			if err != nil {
				return errors.WithMessagef(err, "failed to decode %q", filename)
			}
			klog.V(1).Infof("Decoded %dx%d board from %q", board.Height(), board.Width(), filename)
			results[ii] = decodedBoard{filename: filename, encoded: encoded, board: board}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// openWriterAndBackup creates filename for writing, renaming any existing file to
// filename + "~".
func openWriterAndBackup(filename string) (io.WriteCloser, error) {
	if _, err := os.Stat(filename); err == nil {
		backupName := filename + "~"
		err = os.Rename(filename, backupName)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to rename %q to %q", filename, backupName)
		}
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %q", filename)
	}
	return file, nil
}

// writeBoard encodes board into filename.
func writeBoard(filename string, board *state.Board) error {
	encoded, err := board.MarshalBinary()
	if err != nil {
		return err
	}
	file, err := openWriterAndBackup(filename)
	if err != nil {
		return err
	}
	if _, err = file.Write(encoded); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, "failed to write board to %q", filename)
	}
	if err = file.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %q", filename)
	}
	return nil
}
