package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func TestParseExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain upper-case", in: "plain.MOV", want: "mov"},
		{name: "bracket frame token", in: "shot.[####].exr", want: "exr"},
		{name: "numeric frame token", in: "shot.0001.exr", want: "exr"},
		{name: "long numeric frame token", in: "shot.000123.dpx", want: "dpx"},
		{name: "short numeric run is kept", in: "v001.mp4", want: "mp4"},
		{name: "no extension", in: "solids", want: ""},
		{name: "trailing dot", in: "clip.", want: ""},
		{name: "bare bracket token", in: "shot.[####]", want: ""},
		{name: "double extension", in: "archive.tar.gz", want: "gz"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExtension(tt.in))
		})
	}
}

func TestItemExtension(t *testing.T) {
	// Host-supplied extension wins over the name.
	item := model.ItemSnapshot{Name: "clip.mp4", Extension: ".MXF", Kind: model.ItemKindMedia}
	assert.Equal(t, "mxf", ItemExtension(item))

	item = model.ItemSnapshot{Name: "clip.mp4", Kind: model.ItemKindMedia}
	assert.Equal(t, "mp4", ItemExtension(item))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name            string
		item            model.ItemSnapshot
		detectSequences bool
		want            Class
		wantOK          bool
	}{
		{
			name:   "container is never classified",
			item:   model.ItemSnapshot{Name: "Assets", Kind: model.ItemKindContainer},
			wantOK: false,
		},
		{
			name:   "composition",
			item:   model.ItemSnapshot{Name: "main_comp", Kind: model.ItemKindComposition},
			want:   Class{Category: model.CategoryComps},
			wantOK: true,
		},
		{
			name:   "solid before extension lookup",
			item:   model.ItemSnapshot{Name: "White Solid 1.png", Kind: model.ItemKindMedia, IsSolidOrNull: true},
			want:   Class{Category: model.CategorySolids},
			wantOK: true,
		},
		{
			name:            "sequence frame with detection on",
			item:            model.ItemSnapshot{Name: "render.[####].exr", Kind: model.ItemKindMedia, IsSequenceFrame: true},
			detectSequences: true,
			want:            Class{Category: model.CategoryFootage, Sequence: true},
			wantOK:          true,
		},
		{
			name:   "sequence frame with detection off falls back to extension",
			item:   model.ItemSnapshot{Name: "render.[####].exr", Kind: model.ItemKindMedia, IsSequenceFrame: true},
			want:   Class{Category: model.CategoryImages},
			wantOK: true,
		},
		{
			name:   "audio",
			item:   model.ItemSnapshot{Name: "score.wav", Kind: model.ItemKindMedia},
			want:   Class{Category: model.CategoryAudio},
			wantOK: true,
		},
		{
			name:   "image",
			item:   model.ItemSnapshot{Name: "photo.png", Kind: model.ItemKindMedia},
			want:   Class{Category: model.CategoryImages},
			wantOK: true,
		},
		{
			name:   "video defaults to footage",
			item:   model.ItemSnapshot{Name: "clip.mp4", Kind: model.ItemKindMedia},
			want:   Class{Category: model.CategoryFootage},
			wantOK: true,
		},
		{
			name:   "empty extension defaults to footage",
			item:   model.ItemSnapshot{Name: "captured take", Kind: model.ItemKindMedia},
			want:   Class{Category: model.CategoryFootage},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.item, tt.detectSequences)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestByExtensionCaseAgnosticCallers(t *testing.T) {
	// Callers always lower-case first; the tables themselves are lower-case.
	upper := model.ItemSnapshot{Name: "CLIP.MP4", Kind: model.ItemKindMedia}
	lower := model.ItemSnapshot{Name: "clip.mp4", Kind: model.ItemKindMedia}

	gotUpper, _ := Classify(upper, false)
	gotLower, _ := Classify(lower, false)
	assert.Equal(t, gotLower, gotUpper)
}
