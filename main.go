package main

import "movie_catalog/cmd"

func main() {
	cmd.Execute()
}
