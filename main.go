// main.go
//
// Entry point; CLI handling lives in the cobra commands under cmd/.

package main

import "github.com/sheikhrachel/sparse-gol/cmd"

func main() {
	cmd.Execute()
}
