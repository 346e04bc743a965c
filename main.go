package main

import "github.com/rodrigo/fitdeck/internal/commands"

func main() {
	commands.Execute()
}
