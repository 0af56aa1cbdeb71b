package main

import "github.com/adamanr/corp_summary/internal/cmd"

func main() {
	cmd.Execute()
}
