package pdf

import (
	"bytes"
	"fmt"

	"github.com/rwcarlsen/goexif/exif"

	"github.com/ankit-chaubey/pdf-metadata-surgery/core"
)

// maxEmbeddedImages caps the scan; a report is a warning, not an audit.
const maxEmbeddedImages = 16

var (
	jpegSOI = []byte{0xFF, 0xD8, 0xFF}
	jpegEOI = []byte{0xFF, 0xD9}
)

// scanEmbeddedEXIF locates JPEG streams in the raw PDF bytes and decodes
// any EXIF blocks they carry. DCTDecode streams embed the JPEG verbatim,
// so a marker scan finds them without walking the object graph. Streams
// that are compressed or encrypted simply fail to decode and are skipped.
func scanEmbeddedEXIF(data []byte) []core.Field {
	var fields []core.Field
	for i, stream := range jpegStreams(data, maxEmbeddedImages) {
		fields = append(fields, exifFields(i+1, stream)...)
	}
	return fields
}

// jpegStreams returns up to limit byte ranges bracketed by JPEG SOI/EOI
// markers.
func jpegStreams(data []byte, limit int) [][]byte {
	var streams [][]byte
	off := 0
	for len(streams) < limit {
		start := bytes.Index(data[off:], jpegSOI)
		if start < 0 {
			break
		}
		start += off
		end := bytes.Index(data[start:], jpegEOI)
		if end < 0 {
			break
		}
		end += start + len(jpegEOI)
		streams = append(streams, data[start:end])
		off = end
	}
	return streams
}

// exifFields extracts the privacy-relevant EXIF tags from one JPEG.
func exifFields(imageNr int, jpeg []byte) []core.Field {
	x, err := exif.Decode(bytes.NewReader(jpeg))
	if err != nil {
		return nil
	}

	prefix := fmt.Sprintf("Image %d ", imageNr)
	var fields []core.Field
	add := func(key string, name exif.FieldName) {
		tag, err := x.Get(name)
		if err != nil {
			return
		}
		if s, err := tag.StringVal(); err == nil && s != "" {
			fields = append(fields, core.Field{
				Key:      prefix + key,
				Value:    s,
				Category: "Embedded JPEG EXIF",
			})
		}
	}
	add("Make", exif.Make)
	add("Model", exif.Model)
	add("DateTime", exif.DateTime)
	add("Software", exif.Software)

	if lat, long, err := x.LatLong(); err == nil {
		fields = append(fields, core.Field{
			Key:      prefix + "GPS",
			Value:    fmt.Sprintf("%.6f, %.6f", lat, long),
			Category: "Embedded JPEG EXIF",
		})
	}
	return fields
}
