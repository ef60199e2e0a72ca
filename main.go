// main.go
package main

import "github.com/jciason/CMSScanner/cmd"

func main() {
	cmd.Execute()
}
