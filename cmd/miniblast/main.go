// cmd/miniblast/main.go
package main

import (
	"miniblast/internal/app"
	"miniblast/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
