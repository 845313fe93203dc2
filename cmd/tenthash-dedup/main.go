// Command tenthash-dedup walks a directory tree, stores every regular
// file's contents in a TentHash content-addressable store, and reports
// (optionally removing) files whose content duplicates one already
// seen.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/cessen/tenthash/cas"
)

// duplicateReport is one line of the JSON-lines output for a file whose
// content was already present in the store under another path.
type duplicateReport struct {
	Digest string `json:"digest"`
	Path   string `json:"path"`
}

func main() {
	inPath := flag.String("in-path", ".", "directory to walk for duplicate detection")
	storePath := flag.String("store", ".tenthash-store", "directory used as the content-addressable store")
	deleteDuplicates := flag.Bool("delete", false, "remove duplicate files after their content is recorded")
	flag.Parse()

	store, err := cas.NewStore(*storePath, 4096)
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)

	walkErr := filepath.WalkDir(*inPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}
		return processFile(store, out, path, *deleteDuplicates)
	})

	out.Flush()
	if walkErr != nil {
		log.Fatal(walkErr)
	}
}

func processFile(store *cas.Store, out *bufio.Writer, path string, deleteDuplicates bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	digest, isNew, err := store.Put(data)
	if err != nil {
		return err
	}
	if isNew {
		return nil
	}

	report, err := json.Marshal(duplicateReport{Digest: digest, Path: path})
	if err != nil {
		return err
	}
	out.Write(report)
	out.WriteByte('\n')

	if deleteDuplicates {
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "tenthash-dedup: removing duplicate %s: %v\n", path, err)
		}
	}

	return nil
}
