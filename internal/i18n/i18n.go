// Package i18n holds the user-visible strings behind key lookups.
package i18n

import "log"

var translations = map[string]string{
	"APP.TITLE":              "Mandelbrot",
	"APP.STATUS":             "Status: %s",
	"APP.CURRZOOMLVL":        "Current zoom level: %d",
	"APP.HELP":               "Left mouse = Move, right mouse = Reset, mouse wheel or +/- keys = zoom in/out",
	"STATUS.PROCESSING":      "Processing...",
	"STATUS.PROCESSING_DONE": "Done processing in %.4f seconds.",
	"STATUS.FAILED":          "Processing failed: %v",
}

// Get returns the string for the given key, or the empty string for unknown
// keys.
func Get(key string) string {
	s, ok := translations[key]
	if !ok {
		log.Printf("no translation for key %q", key)
		return ""
	}
	return s
}
