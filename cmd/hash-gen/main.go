package main

import (
	"fmt"
	"log"
	"os"

	"fx-bothub.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = crypto.HashPassword
	fatalfFn       = log.Fatalf
)

func main() {
	if len(os.Args) < 2 {
		fatalfFn("usage: hash-gen <password>")
		return
	}
	password := os.Args[1]

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}

	printfFn("Bcrypt Hash: %s\n", hash)
}
