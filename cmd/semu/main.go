// Command semu loads, displays, expands, runs and debugs S-language
// programs. It is the single collaborator binary replacing the teacher's
// three separate mains (simulator, linker, objdump): this spec has no
// assembly/link stage of its own, so one binary covers the whole surface.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
