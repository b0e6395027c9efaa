package engine

import (
	"fmt"
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// categoryLeaf names the numbered category subfolder, e.g. "01_Footage".
func categoryLeaf(rank int, t model.CategoryType) string {
	return fmt.Sprintf("%02d_%s", rank, t)
}

// subcategoryLeaf names a matched subcategory's folder, e.g. "00_Plates".
func subcategoryLeaf(s *model.Subcategory) string {
	return fmt.Sprintf("%02d_%s", s.Order, s.Name)
}

// othersLeaf names the generated fallback bucket for items no subcategory
// claimed; n is the subcategory count.
func othersLeaf(n int) string {
	return fmt.Sprintf("%02d_Others", n+1)
}

// sequenceLeaf returns the two segments of an image-sequence bucket, e.g.
// "Sequences/EXR Sequence".
func sequenceLeaf(ext string) []string {
	return []string{"Sequences", strings.ToUpper(ext) + " Sequence"}
}

// extensionLeaf names the legacy flat extension bucket, e.g. "_MOV".
func extensionLeaf(ext string) string {
	return "_" + strings.ToUpper(ext)
}
