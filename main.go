package main

import (
	"github.com/luciocodeigniter/statechain/cmd/statechain"
)

func main() {
	statechain.Execute()
}
