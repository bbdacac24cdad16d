package main

import (
	"github.com/mj1618/object-viewer/cmd"
	_ "github.com/mj1618/object-viewer/internal/platform/fixture"
)

func main() {
	cmd.Execute()
}
