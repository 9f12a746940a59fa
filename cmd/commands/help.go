package commands

import "fmt"

const usage = `photoadmin: local admin service for a static photo blog.

usage:
  photoadmin run <config.yml>   start the admin API
  photoadmin version            print the version
  photoadmin help               show this message
`

func HandleHelp(_ []string) {
	fmt.Print(usage) //nolint
}
