// Package xmlcodec reads and writes TJS documents, optionally compressed.
package xmlcodec

import (
	"bufio"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/encoding/htmlindex"

	"geotjs/internal/core/model"
	"geotjs/internal/domain/tjs10"
)

var tracer = otel.Tracer("geotjs/xmlcodec")

// ErrMalformed is returned for input that is not well-formed XML.
var ErrMalformed = errors.New("malformed document")

// Compression selects the content coding of an encoded document.
type Compression string

const (
	CompressionNone Compression = "none"
	CompressionGzip Compression = "gzip"
	CompressionZstd Compression = "zstd"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ParseCompression accepts the names above; the empty string means none.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(strings.TrimSpace(s))); c {
	case "", CompressionNone:
		return CompressionNone, nil
	case CompressionGzip, CompressionZstd:
		return c, nil
	}
	return "", fmt.Errorf("unknown compression %q", s)
}

// Options controls Encode.
type Options struct {
	// Indent pretty-prints with two spaces per level.
	Indent bool
	// Compression of the output; zero value writes plain XML.
	Compression Compression
	// OmitHeader drops the <?xml ...?> declaration.
	OmitHeader bool
}

// DecodeOptions controls Decode.
type DecodeOptions struct {
	// MaxBytes limits the decompressed document size; zero means no limit.
	MaxBytes int64
}

// Decode reads one TJS document from r. Gzip and zstd input is detected by
// its magic number and decompressed transparently.
func Decode(ctx context.Context, r io.Reader) (*tjs10.DocumentRoot, error) {
	return DecodeWithOptions(ctx, r, DecodeOptions{})
}

// DecodeWithOptions is Decode with limits.
func DecodeWithOptions(ctx context.Context, r io.Reader, opts DecodeOptions) (doc *tjs10.DocumentRoot, err error) {
	ctx, span := tracer.Start(ctx, "xmlcodec.decode")
	defer func() { endSpan(span, err) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	br := bufio.NewReader(r)
	src, compression, closeFn, err := decompress(br)
	if err != nil {
		return nil, err
	}
	defer closeFn()
	span.SetAttributes(attribute.String("tjs.compression", string(compression)))

	if opts.MaxBytes > 0 {
		src = &limitedReader{r: src, left: opts.MaxBytes}
	}
	counter := &countingReader{r: src}

	dec := xml.NewDecoder(counter)
	dec.CharsetReader = charsetReader

	doc = tjs10.NewDocumentRoot()
	if err := dec.Decode(doc); err != nil {
		return nil, classify(err)
	}

	name, _ := doc.Element()
	span.SetAttributes(
		attribute.String("tjs.element", name),
		attribute.Int64("tjs.bytes", counter.n),
	)
	return doc, nil
}

// DecodeBytes decodes a document held in memory.
func DecodeBytes(ctx context.Context, b []byte) (*tjs10.DocumentRoot, error) {
	return Decode(ctx, bytes.NewReader(b))
}

// Encode writes doc to w.
func Encode(ctx context.Context, w io.Writer, doc *tjs10.DocumentRoot, opts Options) (err error) {
	name, _ := doc.Element()
	_, span := tracer.Start(ctx, "xmlcodec.encode", trace.WithAttributes(
		attribute.String("tjs.element", name),
		attribute.String("tjs.compression", string(opts.Compression)),
	))
	defer func() { endSpan(span, err) }()

	if err := ctx.Err(); err != nil {
		return err
	}

	out, closeFn, err := compress(w, opts.Compression)
	if err != nil {
		return err
	}

	if !opts.OmitHeader {
		if _, err := io.WriteString(out, xml.Header); err != nil {
			return err
		}
	}

	enc := xml.NewEncoder(out)
	if opts.Indent {
		enc.Indent("", "  ")
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	if opts.Indent {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return closeFn()
}

// EncodeBytes encodes doc into memory.
func EncodeBytes(ctx context.Context, doc *tjs10.DocumentRoot, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(ctx, &buf, doc, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeFragment writes obj as a standalone element named local in the TJS
// namespace. It serves classes that never appear at the document root.
func EncodeFragment(ctx context.Context, w io.Writer, local string, obj any, opts Options) (err error) {
	_, span := tracer.Start(ctx, "xmlcodec.encode_fragment", trace.WithAttributes(
		attribute.String("tjs.element", local),
	))
	defer func() { endSpan(span, err) }()

	out, closeFn, err := compress(w, opts.Compression)
	if err != nil {
		return err
	}
	enc := xml.NewEncoder(out)
	if opts.Indent {
		enc.Indent("", "  ")
	}
	start := xml.StartElement{Name: xml.Name{Space: tjs10.Namespace, Local: local}}
	if err := enc.EncodeElement(obj, start); err != nil {
		return fmt.Errorf("encode %s: %w", local, err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return closeFn()
}

// EncodeInstance writes an empty or populated instance of class. Classes
// that have a root element become a complete document, the others a
// fragment named after the class. DocumentRoot itself has neither form.
func EncodeInstance(ctx context.Context, w io.Writer, class string, obj model.Object, opts Options) error {
	if _, ok := obj.(*tjs10.DocumentRoot); ok {
		return fmt.Errorf("%w: %s only wraps a root element, create one of the element classes instead",
			tjs10.ErrNoStandaloneForm, class)
	}
	element, ok := tjs10.ElementFor(obj)
	if !ok {
		return EncodeFragment(ctx, w, class, obj, opts)
	}
	doc, err := tjs10.NewDocument(element, obj)
	if err != nil {
		return err
	}
	return Encode(ctx, w, doc, opts)
}

// Detect reports the compression of a stream from its first bytes.
func Detect(head []byte) Compression {
	switch {
	case bytes.HasPrefix(head, gzipMagic):
		return CompressionGzip
	case bytes.HasPrefix(head, zstdMagic):
		return CompressionZstd
	}
	return CompressionNone
}

func decompress(br *bufio.Reader) (io.Reader, Compression, func(), error) {
	head, _ := br.Peek(len(zstdMagic))
	switch c := Detect(head); c {
	case CompressionGzip:
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, c, nil, fmt.Errorf("%w: gzip: %w", ErrMalformed, err)
		}
		return zr, c, func() { _ = zr.Close() }, nil
	case CompressionZstd:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, c, nil, fmt.Errorf("%w: zstd: %w", ErrMalformed, err)
		}
		return zr, c, zr.Close, nil
	}
	return br, CompressionNone, func() {}, nil
}

func compress(w io.Writer, c Compression) (io.Writer, func() error, error) {
	switch c {
	case "", CompressionNone:
		return w, func() error { return nil }, nil
	case CompressionGzip:
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, fmt.Errorf("create zstd encoder: %w", err)
		}
		return zw, zw.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown compression %q", c)
}

// charsetReader lets documents declare any WHATWG-known encoding,
// ISO-8859-1 being the common one besides UTF-8.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}

// classify marks syntax-level failures as ErrMalformed and leaves model
// errors (unknown element, bad enumerator) as they are.
func classify(err error) error {
	var syntax *xml.SyntaxError
	switch {
	case errors.As(err, &syntax), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, errTooLarge):
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return fmt.Errorf("decode document: %w", err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

var errTooLarge = errors.New("document exceeds size limit")

type limitedReader struct {
	r    io.Reader
	left int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.left <= 0 {
		// a document of exactly the limit still ends cleanly
		var probe [1]byte
		if n, err := l.r.Read(probe[:]); n == 0 && err != nil {
			return 0, err
		}
		return 0, errTooLarge
	}
	if int64(len(p)) > l.left {
		p = p[:l.left]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
