// Command tenthash prints the TentHash digest of a file, stdin, or a
// literal string argument.
package main

import (
	"encoding/base64"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cessen/tenthash"
)

func main() {
	file := flag.String("file", "", "path to a file to hash; if omitted, reads stdin or the trailing argument")
	b64 := flag.Bool("base64", false, "print the digest as base64 instead of hex")
	flag.Parse()

	var input []byte
	var err error

	switch {
	case *file != "":
		input, err = os.ReadFile(*file)
	case flag.NArg() > 0 && flag.Arg(0) != "-":
		input = []byte(flag.Arg(0))
	default:
		input, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatal(err)
	}

	digest := tenthash.Sum(input)
	if *b64 {
		fmt.Println(base64.StdEncoding.EncodeToString(digest[:]))
	} else {
		fmt.Printf("%x\n", digest)
	}
}
