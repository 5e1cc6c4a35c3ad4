package main

import (
	"flag"
	"fmt"
	"os"

	"careerportal/internal/crypto"
)

func main() {
	out := flag.String("out", crypto.MasterKeyFile, "where to write the hex encoded key")
	force := flag.Bool("force", false, "overwrite an existing key file")
	flag.Parse()

	if _, err := os.Stat(*out); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: %s already exists. Refusing to overwrite.\n", *out)
		os.Exit(1)
	}
	hexKey, err := crypto.NewMasterKey()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating random key: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, []byte(hexKey+"\n"), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("Master key written to %s\n", *out)
}
