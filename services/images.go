package services

import (
	"os"
	"path/filepath"
)

// itemImageFiles maps item codes to their product photo inside the image
// directory. Several codes share one photo. Codes without an entry fall
// back to DefaultImageFile.
var itemImageFiles = map[string]string{
	"A-1": "1.png", "A-2": "1.png", "A-3": "1.png",
	"A-4": "2.png", "A-5": "2.png", "A-6": "2.png", "A-7": "2.png",
	"A-8": "3.png", "A-9": "3.png", "A-10": "3.png",
	"A-11": "4.png", "A-12": "4.png", "A-13": "4.png",
	"A-14": "5.png", "A-15": "5.png",
	"A-16": "6.png", "A-17": "6.png", "A-18": "6.png",
	"A-19": "7.png", "A-20": "7.png", "A-21": "7.png",
	"A-22": "8.png",
	"A-23": "9.png",
	"A-24": "10.png", "A-25": "10.png",
	"A-26": "11.png", "A-27": "11.png", "A-28": "11.png",
	"A-29": "12.png", "A-30": "12.png",
	"A-31": "13.png",
	"A-32": "14.png",
	"A-33": "15.png",
	"B-1":  "16.png",
	"B-2":  "17.png",
	"B-3":  "18.png", "B-4": "18.png", "B-5": "18.png",
	"B-6":  "19.png",
	"B-7":  "20.png",
	"B-8":  "21.png",
	"B-9":  "22.png",
	"B-10": "23.png",
	"B-11": "24.png",
	"B-12": "25.png",
	"B-13": "26.png",
	"B-14": "27.png",
	"B-15": "28.png",
	"B-16": "29.png",
	"B-17": "30.png",
	"B-18": "31.png",
	"B-19": "32.png",
	"B-20": "33.png",
	"B-21": "34.png",
	"B-22": "35.png",
	"B-23": "36.png",
	"B-24": "37.png",
	"B-25": "38.png",
	"B-26": "39.png",
	"B-27": "40.png",
}

// DefaultImageFile is used when an item has no mapping or its mapped file
// is missing on disk.
const DefaultImageFile = "default.png"

// ImageOptions configures image placement during rendering. A zero Dir
// disables images entirely.
type ImageOptions struct {
	// Dir is the directory holding item photos and decorative images.
	Dir string
	// DecorativeFiles are the two fixed images anchored below the footer.
	DecorativeFiles [2]string
}

// DefaultImageOptions returns the image configuration for the given
// directory with the standard decorative pair.
func DefaultImageOptions(dir string) ImageOptions {
	return ImageOptions{
		Dir:             dir,
		DecorativeFiles: [2]string{"footer_1.png", "footer_2.png"},
	}
}

// ItemImagePath resolves the photo path for an item code: the mapped file
// if it exists, otherwise the default image, otherwise "". Callers treat
// "" as "no image for this row".
func ItemImagePath(dir, code string) string {
	if dir == "" {
		return ""
	}

	name, ok := itemImageFiles[code]
	if !ok {
		name = DefaultImageFile
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		path = filepath.Join(dir, DefaultImageFile)
		if _, err := os.Stat(path); err != nil {
			return ""
		}
	}
	return path
}
