package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Sort   bool
	Alias  bool
	Path   bool
	Filter bool
	Patch  bool
	Import bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("XMP_DEBUG_PARSE")
	d.Sort = boolEnv("XMP_DEBUG_SORT")
	d.Alias = boolEnv("XMP_DEBUG_ALIAS")
	d.Path = boolEnv("XMP_DEBUG_PATH")
	d.Filter = boolEnv("XMP_DEBUG_FILTER")
	d.Patch = boolEnv("XMP_DEBUG_PATCH")
	d.Import = boolEnv("XMP_DEBUG_IMPORT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Sort() bool {
	return d.Sort
}
func Alias() bool {
	return d.Alias
}
func Path() bool {
	return d.Path
}
func Filter() bool {
	return d.Filter
}
func Patch() bool {
	return d.Patch
}
func Import() bool {
	return d.Import
}
