// Command textlzw compresses or expands stdin with fixed-width LZW.
//
//	textlzw - < book.txt > book.lzw
//	textlzw + < book.lzw > book.txt
//
// Run "textlzw -h" for the flags.
package main

import (
	"os"

	"github.com/arloliu/textlzw/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
