// cmd/filter-contigs/main.go
package main

import (
	"contigfilter/internal/app"
	"contigfilter/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
