// Package source selects the JSON driver used by mojifix. Importing it makes
// go-json the default; this lives outside the root package to avoid an import
// cycle.
package source

import (
	"fmt"
	"sort"

	"github.com/reoring/mojifix"
	drvgojson "github.com/reoring/mojifix/source/gojson"
)

// Driver names accepted by Use.
const (
	NameGoJSON     = "gojson"
	NameEncodingJS = "encoding/json"
)

func init() { mojifix.SetJSONDriver(drvgojson.Driver()) }

// Use installs the named driver as the global mojifix JSON driver. An empty
// name keeps the current driver.
func Use(name string) error {
	switch name {
	case "":
		return nil
	case NameGoJSON:
		mojifix.SetJSONDriver(drvgojson.Driver())
	case NameEncodingJS:
		mojifix.UseDefaultJSONDriver()
	default:
		return fmt.Errorf("unknown json driver %q (want one of %v)", name, Names())
	}
	return nil
}

// Names lists the accepted driver names.
func Names() []string {
	n := []string{NameGoJSON, NameEncodingJS}
	sort.Strings(n)
	return n
}
