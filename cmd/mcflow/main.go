// Command mcflow solves minimum-cost flow problems described in text or YAML
// network files.
//
//	mcflow solve network.txt --source 0 --sink 3 --saturated
package main

import "github.com/katalvlaran/mcflow/cmd/mcflow/commands"

func main() {
	commands.Execute()
}
