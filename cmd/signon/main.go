package main

import "github.com/nfrund/signon/cmd/signon/cmd"

func main() {
	cmd.Execute()
}
