package pdf

import (
	"os"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/ankit-chaubey/pdf-metadata-surgery/core"
)

// infoKeys are the standard Info dict keys, in display order.
var infoKeys = []string{
	"Title", "Author", "Subject", "Keywords",
	"Creator", "Producer", "CreationDate", "ModDate", "Trapped",
}

// Report collects what a strip run would remove: the Info dictionary
// fields, XMP presence, and EXIF blocks inside embedded JPEG streams.
func (d *document) Report() (*core.Report, error) {
	rep := &core.Report{
		Path:   d.path,
		Format: "PDF",
		Pages:  d.ctx.PageCount,
	}
	if d.ctx.HeaderVersion != nil {
		rep.Version = d.ctx.HeaderVersion.String()
	}

	rep.Fields = append(rep.Fields, infoFields(d.ctx)...)

	if rootDict, err := d.ctx.Catalog(); err == nil {
		_, rep.HasXMP = rootDict.Find("Metadata")
	}

	// EXIF travels with the image stream and survives Info/XMP
	// stripping, so surface it as a warning rather than a removal.
	if data, err := os.ReadFile(d.path); err == nil {
		rep.Fields = append(rep.Fields, scanEmbeddedEXIF(data)...)
	}

	return rep, nil
}

// infoFields reads the document information dictionary into report
// fields, standard keys first, any custom keys after them.
func infoFields(ctx *model.Context) []core.Field {
	if ctx.Info == nil {
		return nil
	}
	infoDict, err := ctx.DereferenceDict(*ctx.Info)
	if err != nil || infoDict == nil {
		return nil
	}

	var fields []core.Field
	std := map[string]bool{}
	for _, k := range infoKeys {
		std[k] = true
		if obj, ok := infoDict.Find(k); ok {
			fields = append(fields, core.Field{
				Key:      k,
				Value:    decodeString(ctx, obj),
				Category: "Info",
			})
		}
	}

	extra := []string{}
	for k := range infoDict {
		if !std[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		fields = append(fields, core.Field{
			Key:      k,
			Value:    decodeString(ctx, infoDict[k]),
			Category: "Info",
		})
	}
	return fields
}

// decodeString renders a PDF string object, following indirect
// references and decoding literal and hex forms.
func decodeString(ctx *model.Context, obj types.Object) string {
	o, err := ctx.Dereference(obj)
	if err != nil || o == nil {
		return obj.String()
	}
	switch s := o.(type) {
	case types.StringLiteral:
		if v, err := types.StringLiteralToString(s); err == nil {
			return v
		}
	case types.HexLiteral:
		if v, err := types.HexLiteralToString(s); err == nil {
			return v
		}
	}
	return o.String()
}
