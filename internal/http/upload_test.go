package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
)

func multipartImage(t *testing.T, field, filename, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf, w.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	app, _ := newTestApp(t)

	png := []byte("\x89PNG\r\n\x1a\nfakeimagedata")
	body, ct := multipartImage(t, "image", "product.png", "image/png", png)
	req := httptest.NewRequest("POST", "/upload-image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status %d", resp.StatusCode)
	}
	var out struct {
		Success   bool   `json:"success"`
		ImagePath string `json:"imagePath"`
		Filename  string `json:"filename"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Success || out.Filename == "" || out.ImagePath != "/images/"+out.Filename {
		t.Fatalf("upload response: %+v", out)
	}

	// uploaded file can be deleted by its returned name
	req = httptest.NewRequest("DELETE", "/delete-image/"+out.Filename, nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status %d", resp.StatusCode)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	app, _ := newTestApp(t)

	body, ct := multipartImage(t, "image", "payload.exe", "application/octet-stream", []byte("MZ"))
	req := httptest.NewRequest("POST", "/upload-image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("exe upload status %d", resp.StatusCode)
	}
}

func TestUploadRequiresImageField(t *testing.T) {
	app, _ := newTestApp(t)

	body, ct := multipartImage(t, "file", "a.png", "image/png", []byte("x"))
	req := httptest.NewRequest("POST", "/upload-image", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("wrong field status %d", resp.StatusCode)
	}
}

func TestDeleteImageGuardsFilename(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("DELETE", "/delete-image/a..b.png", nil)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("traversal name status %d", resp.StatusCode)
	}

	req = httptest.NewRequest("DELETE", "/delete-image/never-was-here.png", nil)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("missing file status %d", resp.StatusCode)
	}
}

func TestSendEmailAlwaysBestEffort(t *testing.T) {
	app, _ := newTestApp(t)

	// no SMTP configured: the endpoint still reports success
	resp := doJSON(t, app, "POST", "/send-email", map[string]string{
		"to": "customer@example.com", "subject": "Hi", "message": "Your order shipped",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("send-email status %d", resp.StatusCode)
	}
	var out struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if !out.Success {
		t.Fatal("send-email must report success")
	}

	resp = doJSON(t, app, "POST", "/send-email", map[string]string{"to": "not-an-email"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad recipient status %d", resp.StatusCode)
	}
}
