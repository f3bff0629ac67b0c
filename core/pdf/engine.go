// Package pdf implements the core.Engine capability on top of pdfcpu.
package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/ankit-chaubey/pdf-metadata-surgery/core"
)

// Engine parses and serializes PDFs via pdfcpu.
type Engine struct{}

// NewEngine returns the pdfcpu-backed engine.
func NewEngine() *Engine { return &Engine{} }

// Open parses the document at path. An encrypted document whose
// credentials are unknown is returned unparsed; Decrypt completes the
// parse with the supplied password.
func (*Engine) Open(path string) (core.Document, error) {
	ctx, err := readContext(path, model.NewDefaultConfiguration())
	if err != nil {
		if isPasswordError(err) {
			return &document{path: path, encrypted: true}, nil
		}
		return nil, err
	}
	return &document{path: path, ctx: ctx, encrypted: ctx.Encrypt != nil}, nil
}

// readContext mirrors api.ReadContextFile but with a caller-supplied
// configuration, which is how passwords reach the parser.
func readContext(path string, conf *model.Configuration) (*model.Context, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ctx, err := api.ReadContext(f, conf)
	if err != nil {
		return nil, err
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// isPasswordError reports whether err is pdfcpu asking for credentials.
// pdfcpu signals missing and wrong passwords with the same message, so
// matching on the text is the only seam.
func isPasswordError(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "password")
}

// document is one parsed pdfcpu context. The context is already a
// writable object graph, so stripping mutates it directly and Write
// serializes the mutated graph.
type document struct {
	path      string
	ctx       *model.Context
	encrypted bool
	stripped  bool
}

func (d *document) Encrypted() bool { return d.encrypted }

// Decrypt re-reads the document with the password wired into the
// configuration. Cmd DECRYPT makes the writer drop the encryption
// dictionary on serialization.
func (d *document) Decrypt(password string) error {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.DECRYPT
	conf.UserPW = password
	conf.OwnerPW = password

	ctx, err := readContext(d.path, conf)
	if err != nil {
		if isPasswordError(err) {
			return core.ErrWrongPassword
		}
		return err
	}
	d.ctx = ctx
	return nil
}

// StripInfo drops the trailer's reference to the document information
// dictionary. pdfcpu's writer stamps a replacement on serialization, so
// Write erases that stamp again from the serialized bytes.
func (d *document) StripInfo() {
	d.ctx.Info = nil
	d.stripped = true
}

// StripXMP removes the /Metadata entry from the document catalog, which
// is where the XMP stream hangs.
func (d *document) StripXMP() error {
	rootDict, err := d.ctx.Catalog()
	if err != nil {
		return err
	}
	rootDict.Delete("Metadata")
	return nil
}

// Write serializes the document. For pre-2.0 PDFs pdfcpu's write path
// unconditionally re-creates an Info dictionary carrying Producer,
// CreationDate and ModDate, which would undo StripInfo, so a stripped
// document is serialized to a buffer first and the generated dictionary
// is erased from the bytes before they reach w.
func (d *document) Write(w io.Writer) error {
	if !d.stripped {
		return api.WriteContext(d.ctx, w)
	}

	var buf bytes.Buffer
	if err := api.WriteContext(d.ctx, &buf); err != nil {
		return err
	}
	// The writer records the dictionary it created in ctx.Info.
	_, err := w.Write(eraseInfoDict(buf.Bytes(), d.ctx.Info))
	return err
}

var infoRefRegexp = regexp.MustCompile(`/Info\s+\d+\s+\d+\s+R`)

// eraseInfoDict removes the document information dictionary from
// serialized PDF bytes: the trailer (or cross-reference stream
// dictionary) loses its /Info reference and the dictionary object
// itself is emptied. Every replacement preserves byte length so the
// recorded cross-reference offsets stay valid.
func eraseInfoDict(data []byte, info *types.IndirectRef) []byte {
	data = infoRefRegexp.ReplaceAllFunc(data, func(m []byte) []byte {
		return bytes.Repeat([]byte{' '}, len(m))
	})
	if info != nil {
		data = blankObject(data, info.ObjectNumber.Value())
	}
	return data
}

// blankObject replaces the body of top-level object objNr with an empty
// dictionary, padded with spaces to the original length. An object that
// was packed into an object stream is not found; it is unreachable
// once the /Info reference is gone.
func blankObject(data []byte, objNr int) []byte {
	re := regexp.MustCompile(fmt.Sprintf(`(?s)(?:^|[\s>])(%d\s+0\s+obj\b.*?\bendobj)`, objNr))
	loc := re.FindSubmatchIndex(data)
	if loc == nil {
		return data
	}
	start, end := loc[2], loc[3]
	repl := fmt.Sprintf("%d 0 obj\n<<>>\nendobj", objNr)
	if len(repl) > end-start {
		return data
	}
	out := make([]byte, len(data))
	copy(out, data)
	copy(out[start:], repl)
	for i := start + len(repl); i < end; i++ {
		out[i] = ' '
	}
	return out
}
