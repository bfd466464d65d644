package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeOCR struct {
	text string
	err  error
	mime string
}

func (f *fakeOCR) Transcribe(ctx context.Context, image []byte, mimeType string) (string, error) {
	f.mime = mimeType
	return f.text, f.err
}

func TestExtract_PlainTextPassthrough(t *testing.T) {
	e := New(nil, nil, 2)
	res, err := e.Extract(context.Background(), []byte("hello\nworld"), "text/plain")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "hello\nworld" {
		t.Errorf("expected passthrough, got %q", res.Text)
	}
	if res.Kind != KindDocument {
		t.Errorf("expected kind %q, got %q", KindDocument, res.Kind)
	}
}

func TestExtract_MimeParametersStripped(t *testing.T) {
	e := New(nil, nil, 2)
	res, err := e.Extract(context.Background(), []byte("hi"), "text/plain; charset=utf-8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "hi" {
		t.Errorf("expected %q, got %q", "hi", res.Text)
	}
}

func TestExtract_UnsupportedType(t *testing.T) {
	e := New(nil, nil, 2)
	data := []byte{0x00, 0x01, 0x02}
	orig := append([]byte(nil), data...)

	_, err := e.Extract(context.Background(), data, "application/zip")
	var unsupported *UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected *UnsupportedTypeError, got %T (%v)", err, err)
	}
	if unsupported.MimeType != "application/zip" {
		t.Errorf("unexpected mime in error: %q", unsupported.MimeType)
	}
	// The input buffer must come back untouched.
	for i := range data {
		if data[i] != orig[i] {
			t.Fatal("input buffer was modified")
		}
	}
}

func TestExtract_ImageUsesOCR(t *testing.T) {
	ocr := &fakeOCR{text: "  recognized text  "}
	e := New(ocr, nil, 2)
	res, err := e.Extract(context.Background(), []byte("jpegbytes"), "image/jpeg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "recognized text" {
		t.Errorf("expected trimmed OCR text, got %q", res.Text)
	}
	if res.Kind != KindImage {
		t.Errorf("expected kind %q, got %q", KindImage, res.Kind)
	}
	if ocr.mime != "image/jpeg" {
		t.Errorf("expected mime forwarded to OCR, got %q", ocr.mime)
	}
}

func TestExtract_ImageWithoutOCRConfigured(t *testing.T) {
	e := New(nil, nil, 2)
	_, err := e.Extract(context.Background(), []byte("png"), "image/png")
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Fatalf("expected *ExtractionError, got %T (%v)", err, err)
	}
}

func TestExtract_OCRFailureWrapped(t *testing.T) {
	sentinel := errors.New("upstream down")
	e := New(&fakeOCR{err: sentinel}, nil, 2)
	_, err := e.Extract(context.Background(), []byte("png"), "image/png")
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected wrapped OCR error, got %v", err)
	}
}

func TestExtract_InvalidUTF8Text(t *testing.T) {
	e := New(nil, nil, 2)
	_, err := e.Extract(context.Background(), []byte{0xff, 0xfe, 0xfd}, "text/plain")
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Fatalf("expected *ExtractionError, got %T (%v)", err, err)
	}
}

func TestExtract_CorruptPDF(t *testing.T) {
	e := New(nil, nil, 2)
	_, err := e.Extract(context.Background(), []byte("not a pdf"), "application/pdf")
	var extraction *ExtractionError
	if !errors.As(err, &extraction) {
		t.Fatalf("expected *ExtractionError, got %T (%v)", err, err)
	}
	if extraction.MimeType != "application/pdf" {
		t.Errorf("unexpected mime in error: %q", extraction.MimeType)
	}
}

func TestBatch_PartialFailure(t *testing.T) {
	e := New(nil, nil, 2)
	files := []FileInput{
		{Name: "good.txt", MimeType: "text/plain", Data: []byte("good content")},
		{Name: "bad.pdf", MimeType: "application/pdf", Data: []byte("corrupt")},
		{Name: "also-good.txt", MimeType: "text/plain", Data: []byte("more content")},
	}

	results := e.Batch(context.Background(), files)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[0].Name != "good.txt" || results[0].Text != "good content" || results[0].Error != "" {
		t.Errorf("unexpected result[0]: %+v", results[0])
	}
	if results[1].Name != "bad.pdf" || results[1].Error == "" {
		t.Errorf("expected error on result[1], got %+v", results[1])
	}
	if results[2].Text != "more content" {
		t.Errorf("unexpected result[2]: %+v", results[2])
	}
}

func TestBatch_PreservesUploadOrder(t *testing.T) {
	e := New(nil, nil, 8)
	var files []FileInput
	for _, name := range []string{"a", "b", "c", "d", "e", "f"} {
		files = append(files, FileInput{Name: name + ".txt", MimeType: "text/plain", Data: []byte(name)})
	}
	results := e.Batch(context.Background(), files)
	for i, f := range files {
		if results[i].Name != f.Name {
			t.Errorf("result[%d]: expected %q, got %q", i, f.Name, results[i].Name)
		}
		if results[i].Text != string(f.Data) {
			t.Errorf("result[%d]: expected text %q, got %q", i, f.Data, results[i].Text)
		}
	}
}

func TestJoinText_SkipsFailures(t *testing.T) {
	results := []FileResult{
		{Name: "a.txt", Text: "alpha"},
		{Name: "b.pdf", Error: "corrupt"},
		{Name: "c.txt", Text: "gamma"},
	}
	if got := JoinText(results); got != "alpha\n\ngamma" {
		t.Errorf("expected joined successful texts, got %q", got)
	}
}

func TestExtract_CSV(t *testing.T) {
	csvData := "name,score\nalice,90\nbob,85"
	e := New(nil, nil, 2)
	res, err := e.Extract(context.Background(), []byte(csvData), "text/csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Headers: name, score") {
		t.Errorf("expected header line, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "name: alice, score: 90") {
		t.Errorf("expected labelled row, got %q", res.Text)
	}
}

func TestExtract_Markdown(t *testing.T) {
	md := "# Title\n\nSome paragraph.\n\n- item one\n- item two"
	e := New(nil, nil, 2)
	res, err := e.Extract(context.Background(), []byte(md), "text/markdown")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Title") {
		t.Errorf("expected heading text, got %q", res.Text)
	}
	if !strings.Contains(res.Text, "Some paragraph.") {
		t.Errorf("expected paragraph text, got %q", res.Text)
	}
	if strings.Contains(res.Text, "#") {
		t.Errorf("markdown syntax should not survive extraction: %q", res.Text)
	}
}

func TestExtract_HTML(t *testing.T) {
	page := `<html><head><title>t</title><style>p{color:red}</style></head>
<body><nav>menu items</nav><h1>Heading</h1><p>Body paragraph.</p>
<script>alert(1)</script><footer>footer text</footer></body></html>`
	e := New(nil, nil, 2)
	res, err := e.Extract(context.Background(), []byte(page), "text/html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(res.Text, "Heading") || !strings.Contains(res.Text, "Body paragraph.") {
		t.Errorf("expected content text, got %q", res.Text)
	}
	for _, banned := range []string{"menu items", "alert(1)", "footer text", "color:red"} {
		if strings.Contains(res.Text, banned) {
			t.Errorf("expected %q to be excluded, got %q", banned, res.Text)
		}
	}
}
