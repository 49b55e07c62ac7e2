package content

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gosec/site-backend/internal/uploads"
	"github.com/gosec/site-backend/pkg/metrics"
)

// Handler exposes the whole content surface from the Registry: one
// parameterized handler set instead of a copy per resource.
type Handler struct {
	svc   *Service
	files uploads.Store
}

func NewHandler(svc *Service, files uploads.Store) *Handler {
	return &Handler{svc: svc, files: files}
}

// Register wires every resource and singleton route onto the given
// group (mounted at /api). requireAdmin gates all mutating routes.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	for _, r := range Registry {
		rg.GET("/"+r.Name, h.list(r))
		rg.GET("/"+r.Name+"/:id", h.get(r))
		rg.POST("/"+r.Name, requireAdmin, h.create(r))
		rg.PUT("/"+r.Name+"/:id", requireAdmin, h.update(r))
		if !r.NoDelete {
			rg.DELETE("/"+r.Name+"/:id", requireAdmin, h.delete(r))
		}
		if r.OwnsUploads {
			rg.POST("/"+r.Name+"/upload", requireAdmin, h.upload(r))
			rg.POST("/"+r.Name+"/with-image", requireAdmin, h.createWithImage(r))
			rg.PUT("/"+r.Name+"/:id/with-image", requireAdmin, h.updateWithImage(r))
			rg.GET("/uploads/"+r.Name+"/:filename", h.serveUpload(r))
		}
	}
	for _, sg := range Singletons {
		rg.GET("/content/"+sg.Name, h.getSingleton(sg))
		rg.PUT("/content/"+sg.Name, requireAdmin, h.updateSingleton(sg))
	}
}

func (h *Handler) list(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.svc.List(c.Request.Context(), r)
		if err != nil {
			abortWithError(c, err)
			return
		}
		out := make([]bson.M, 0, len(docs))
		for _, d := range docs {
			out = append(out, toResponse(d))
		}
		c.JSON(http.StatusOK, out)
	}
}

func (h *Handler) get(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.svc.Get(c.Request.Context(), r, c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(doc))
	}
}

func (h *Handler) create(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		payload, err := buildPayload(r.Fields, raw, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := h.svc.Create(c.Request.Context(), r, payload)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toResponse(doc))
	}
}

func (h *Handler) update(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		set, err := buildPayload(r.Fields, raw, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := h.svc.Update(c.Request.Context(), r, c.Param("id"), set)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(doc))
	}
}

func (h *Handler) delete(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.svc.Delete(c.Request.Context(), r, c.Param("id")); err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "deleted"})
	}
}

// upload stores a standalone image and returns its public URL; the
// caller attaches it to a document in a follow-up request.
func (h *Handler) upload(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
			return
		}
		if !uploads.ValidExtension(fh.Filename) {
			c.JSON(http.StatusBadRequest, gin.H{"error": uploads.ErrBadExtension.Error()})
			return
		}
		filename, url, err := h.saveUpload(c, r, fh)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"filename": filename, "image_url": url, "message": "Image uploaded successfully"})
	}
}

func (h *Handler) createWithImage(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := buildFormPayload(c, r.Fields, false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if fh := formImage(c); fh != nil {
			if !uploads.ValidExtension(fh.Filename) {
				c.JSON(http.StatusBadRequest, gin.H{"error": uploads.ErrBadExtension.Error()})
				return
			}
			_, url, err := h.saveUpload(c, r, fh)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
				return
			}
			payload["image_url"] = url
		}
		doc, err := h.svc.Create(c.Request.Context(), r, payload)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusCreated, toResponse(doc))
	}
}

func (h *Handler) updateWithImage(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.svc.Get(c.Request.Context(), r, c.Param("id"))
		if err != nil {
			abortWithError(c, err)
			return
		}
		set, err := buildFormPayload(c, r.Fields, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if fh := formImage(c); fh != nil {
			if !uploads.ValidExtension(fh.Filename) {
				c.JSON(http.StatusBadRequest, gin.H{"error": uploads.ErrBadExtension.Error()})
				return
			}
			src, err := fh.Open()
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
				return
			}
			defer src.Close()
			oldURL, _ := doc["image_url"].(string)
			url, err := h.svc.ReplaceImage(c.Request.Context(), r, oldURL, fh.Filename, src, fh.Size)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save image"})
				return
			}
			set["image_url"] = url
		}
		updated, err := h.svc.Update(c.Request.Context(), r, c.Param("id"), set)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(updated))
	}
}

// serveUpload streams a stored file back with its derived content
// type. The extension was validated at upload time but the mapping
// still falls back to a generic binary type for anything unexpected.
func (h *Handler) serveUpload(r *Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		filename := c.Param("filename")
		rc, size, err := h.files.Open(c.Request.Context(), r.Name, filename)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}
		defer rc.Close()
		c.DataFromReader(http.StatusOK, size, uploads.ContentTypeFor(filename), rc, nil)
	}
}

func (h *Handler) getSingleton(sg *Singleton) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := h.svc.GetSingleton(c.Request.Context(), sg)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(doc))
	}
}

func (h *Handler) updateSingleton(sg *Singleton) gin.HandlerFunc {
	return func(c *gin.Context) {
		var raw map[string]interface{}
		if err := c.ShouldBindJSON(&raw); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		set, err := buildPayload(sg.Fields, raw, true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc, err := h.svc.UpdateSingleton(c.Request.Context(), sg, set)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.JSON(http.StatusOK, toResponse(doc))
	}
}

func (h *Handler) saveUpload(c *gin.Context, r *Resource, fh *multipart.FileHeader) (string, string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()
	filename, url, err := h.files.Save(c.Request.Context(), r.Name, fh.Filename, src, fh.Size)
	if err != nil {
		return "", "", err
	}
	metrics.UploadsStored.WithLabelValues(r.Name).Inc()
	return filename, url, nil
}

// formImage returns the optional "image" file part, nil when absent.
func formImage(c *gin.Context) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil || fh == nil || fh.Filename == "" {
		return nil
	}
	return fh
}

// buildFormPayload is the multipart twin of buildPayload: values come
// from form fields, absent fields are skipped in partial mode.
func buildFormPayload(c *gin.Context, fields []Field, partial bool) (bson.M, error) {
	raw := map[string]interface{}{}
	for _, f := range fields {
		if f.Kind == StringList {
			if vals, ok := c.GetPostFormArray(f.Name); ok {
				list := make([]interface{}, 0, len(vals))
				for _, v := range vals {
					list = append(list, v)
				}
				raw[f.Name] = list
			}
			continue
		}
		if v, ok := c.GetPostForm(f.Name); ok {
			raw[f.Name] = v
		}
	}
	return buildPayload(fields, raw, partial)
}

func abortWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, ErrNoFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrNoFields.Error()})
	case errors.Is(err, uploads.ErrBadExtension):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
