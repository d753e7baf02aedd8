package commands

import "fmt"

func HandleHelp(_ []string) {
	fmt.Println(`emogo - lifelog collection backend

Usage:
  emogo run <config.yml>            start the HTTP server
  emogo seed <config.yml> [count]   reset and seed the store with demo data
  emogo version                     print version
  emogo help                        show this message`) //nolint
}
