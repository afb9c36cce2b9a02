package main

import (
	"log"
)

func main() {
	err := Execute()
	if err != nil {
		log.Fatalf("Failed to execute. Err: %v", err)
	}
}
