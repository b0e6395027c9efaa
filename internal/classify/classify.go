// Package classify maps project items to coarse categories from their kind,
// flags, and file extension. All functions are total; unmatched input falls
// through to the default Footage bucket rather than erroring.
package classify

import (
	"regexp"
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

var audioExtensions = map[string]bool{
	"aac": true, "aif": true, "aiff": true, "flac": true, "m4a": true,
	"mp2": true, "mp3": true, "ogg": true, "wav": true, "wma": true,
}

var imageExtensions = map[string]bool{
	"ai": true, "bmp": true, "gif": true, "heic": true, "jpeg": true,
	"jpg": true, "png": true, "psd": true, "svg": true, "tif": true,
	"tiff": true, "webp": true,
}

// CG still formats. Frames of a detected sequence route through the Footage
// sequence path instead; standalone frames count as plain images.
var cgStillExtensions = map[string]bool{
	"cin": true, "dds": true, "dpx": true, "exr": true, "hdr": true,
	"pic": true, "rla": true, "rpf": true, "sgi": true, "tga": true,
}

var (
	bracketFrameToken = regexp.MustCompile(`\.\[#+\]`)
	numericFrameToken = regexp.MustCompile(`\.\d{4,}\.`)
)

// ParseExtension extracts the lower-cased extension from an item name.
// Frame-number tokens are stripped first, so "shot.[####].exr" and
// "shot.0001.exr" both yield "exr". Names without a dot segment yield "".
func ParseExtension(name string) string {
	n := bracketFrameToken.ReplaceAllString(name, "")
	n = numericFrameToken.ReplaceAllString(n, ".")
	idx := strings.LastIndex(n, ".")
	if idx < 0 || idx == len(n)-1 {
		return ""
	}
	return strings.ToLower(n[idx+1:])
}

// ItemExtension returns the item's effective extension: the host-supplied
// one when present, otherwise parsed from the item name.
func ItemExtension(item model.ItemSnapshot) string {
	if ext := strings.ToLower(strings.TrimPrefix(item.Extension, ".")); ext != "" {
		return ext
	}
	return ParseExtension(item.Name)
}

// Class is the classification outcome for one item.
type Class struct {
	Category model.CategoryType
	// Sequence marks the distinguished Footage sub-case for image-sequence
	// frames; the orchestrator routes it through the sequence path.
	Sequence bool
}

// Classify resolves an item to its coarse category. detectSequences is the
// Footage rule's setting; with it off, sequence frames classify by extension
// like any other media. The second return is false for containers, which are
// never classified.
func Classify(item model.ItemSnapshot, detectSequences bool) (Class, bool) {
	switch item.Kind {
	case model.ItemKindContainer:
		return Class{}, false
	case model.ItemKindComposition:
		return Class{Category: model.CategoryComps}, true
	}
	if detectSequences && item.IsSequenceFrame {
		return Class{Category: model.CategoryFootage, Sequence: true}, true
	}
	if item.IsSolidOrNull {
		return Class{Category: model.CategorySolids}, true
	}
	return Class{Category: ByExtension(ItemExtension(item))}, true
}

// ByExtension maps a bare lower-cased extension to a category. Audio wins
// over image tables; unknown and empty extensions land in Footage.
func ByExtension(ext string) model.CategoryType {
	switch {
	case audioExtensions[ext]:
		return model.CategoryAudio
	case imageExtensions[ext]:
		return model.CategoryImages
	case cgStillExtensions[ext]:
		return model.CategoryImages
	default:
		return model.CategoryFootage
	}
}
