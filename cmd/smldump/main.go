// Command smldump decodes SML files and prints their messages or readings.
//
//	smldump decode meter.bin
//	smldump values --format json capture.hex
//	smldump values --config smldump.toml --metrics-file /var/lib/node_exporter/smldump.prom -
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
