package model

import (
	"fmt"
	"path"
	"slices"
	"strings"
	"time"
)

const (
	MaxFileSizeMB = 10

	objectRoot = "missionaries"
)

const (
	FilePhoto       = "photo"
	FileSpousePhoto = "spousePhoto"
	FileAttached    = "attached"
	FileFamilyPhoto = "familyPhoto"
)

var FileTypes = []string{FilePhoto, FileSpousePhoto, FileAttached, FileFamilyPhoto}

var AllowedMimeTypes = []string{
	"image/jpeg",
	"image/jpg",
	"image/png",
	"image/gif",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

func AllowedMimeType(mimeType string) bool {
	return slices.Contains(AllowedMimeTypes, mimeType)
}

// ObjectDirectory is the storage prefix of one kind of attachment: missionaries/{id}/{type}.
func ObjectDirectory(id int, fileType string) string {
	return path.Join(objectRoot, fmt.Sprint(id), fileType)
}

// StoredName prefixes the original base name with the upload time in milliseconds.
func StoredName(original string, at time.Time) string {
	name := path.Base(strings.ReplaceAll(original, "\\", "/"))

	return fmt.Sprintf("%d_%s", at.UnixMilli(), name)
}
