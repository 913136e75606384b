// Package debug provides environment gated debug logging for valuefmt.
//
// Each flag is read once at init from a VF_DEBUG_* environment variable
// and parsed with strconv.ParseBool.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge    bool
	Convert  bool
	Pointer  bool
	Box      bool
	Template bool
	Diff     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("VF_DEBUG_MERGE")
	d.Convert = boolEnv("VF_DEBUG_CONVERT")
	d.Pointer = boolEnv("VF_DEBUG_POINTER")
	d.Box = boolEnv("VF_DEBUG_BOX")
	d.Template = boolEnv("VF_DEBUG_TEMPLATE")
	d.Diff = boolEnv("VF_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Convert() bool {
	return d.Convert
}
func Pointer() bool {
	return d.Pointer
}
func Box() bool {
	return d.Box
}
func Template() bool {
	return d.Template
}
func Diff() bool {
	return d.Diff
}
