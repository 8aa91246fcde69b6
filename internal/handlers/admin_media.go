package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"folio/internal/models"
)

const (
	// maxUploadSize is the maximum allowed file upload size (16 MB).
	maxUploadSize = 16 << 20

	// screenshotDir and cvDir are the subdirectories of the uploads root
	// where project screenshots and the CV are stored.
	screenshotDir = "screenshots"
	cvDir         = "cv"
)

// allowedImageTypes defines MIME types accepted for screenshot uploads.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// allowedCVTypes defines MIME types accepted for CV uploads.
var allowedCVTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// detectFileType sniffs the real type of an uploaded file from its magic
// bytes and rewinds the reader. Unknown types return an empty string,
// which never appears in an allowlist.
func detectFileType(file io.ReadSeeker) (string, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	kind, err := filetype.Match(buf[:n])
	if err != nil || kind == filetype.Unknown {
		return "", nil
	}
	return kind.MIME.Value, nil
}

// --- Project screenshots ---

// ScreenshotUpload accepts a multipart image upload for a project. The
// declared extension is ignored; the file's magic bytes decide the type.
func (a *Admin) ScreenshotUpload(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	project, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	// Limit request body to maxUploadSize plus some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large (max 16 MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large (max 16 MB)")
		return
	}

	contentType, err := detectFileType(file)
	if err != nil {
		slog.Error("sniff upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !allowedImageTypes[contentType] {
		writeError(w, http.StatusBadRequest, "unsupported file type, expected an image (jpeg, png, gif or webp)")
		return
	}

	saved, err := a.storageClient.Save(screenshotDir, header.Filename, file)
	if err != nil {
		slog.Error("save screenshot file failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	sc := &models.Screenshot{
		ProjectID: id,
		Filename:  saved,
		Caption:   strings.TrimSpace(r.FormValue("caption")),
	}
	if err := a.projectStore.AddScreenshot(sc); err != nil {
		slog.Error("add screenshot failed", "error", err, "file", saved)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusCreated, sc)
}

// ScreenshotDelete removes a screenshot row and its backing file.
func (a *Admin) ScreenshotDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	project, err := a.projectStore.FindByID(id)
	if err != nil {
		slog.Error("find project failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if project == nil {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	deleted, err := a.projectStore.DeleteScreenshot(sid)
	if err != nil {
		slog.Error("delete screenshot failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if deleted == nil {
		writeError(w, http.StatusNotFound, "screenshot not found")
		return
	}

	if err := a.storageClient.Delete(screenshotDir, deleted.Filename); err != nil {
		slog.Warn("screenshot file delete failed", "file", deleted.Filename, "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// --- CV ---

// CVUpload stores a new CV and replaces the previous one, removing its
// file once the new reference is recorded.
func (a *Admin) CVUpload(w http.ResponseWriter, r *http.Request) {
	previous, err := a.personalStore.GetCV()
	if err != nil {
		slog.Error("get cv failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+1024)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large (max 16 MB)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		writeError(w, http.StatusRequestEntityTooLarge, "file too large (max 16 MB)")
		return
	}

	contentType, err := detectFileType(file)
	if err != nil {
		slog.Error("sniff upload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if !allowedCVTypes[contentType] {
		writeError(w, http.StatusBadRequest, "unsupported file type, expected a PDF or Word document")
		return
	}

	saved, err := a.storageClient.Save(cvDir, header.Filename, file)
	if err != nil {
		slog.Error("save cv file failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if err := a.personalStore.SetCV(saved); err != nil {
		slog.Error("set cv failed", "error", err)
		if err := a.storageClient.Delete(cvDir, saved); err != nil {
			slog.Warn("cv file cleanup failed", "file", saved, "error", err)
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if previous != nil && *previous != saved {
		if err := a.storageClient.Delete(cvDir, *previous); err != nil {
			slog.Warn("old cv file delete failed", "file", *previous, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"cv_file": saved})
}

// CVDelete removes the CV reference and its file.
func (a *Admin) CVDelete(w http.ResponseWriter, r *http.Request) {
	current, err := a.personalStore.GetCV()
	if err != nil {
		slog.Error("get cv failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if current == nil {
		writeError(w, http.StatusNotFound, "no CV has been uploaded")
		return
	}

	if err := a.personalStore.ClearCV(); err != nil {
		slog.Error("clear cv failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := a.storageClient.Delete(cvDir, *current); err != nil {
		slog.Warn("cv file delete failed", "file", *current, "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
