package forms

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Handler serves the public intake forms and their admin listings.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the form routes under the given group (mounted at
// /api). Submissions are public; listings require the admin gate.
func (h *Handler) Register(rg *gin.RouterGroup, requireAdmin gin.HandlerFunc) {
	g := rg.Group("/forms")
	g.POST("/join", h.submit("join_forms", func() binder { return &JoinForm{} }))
	g.GET("/join", requireAdmin, h.list("join_forms"))
	g.POST("/donate", h.submit("donate_forms", func() binder { return &DonateForm{} }))
	g.GET("/donate", requireAdmin, h.list("donate_forms"))
	g.POST("/contact", h.submit("contact_forms", func() binder { return &ContactForm{} }))
	g.GET("/contact", requireAdmin, h.list("contact_forms"))
}

type binder interface {
	document() bson.M
}

func (h *Handler) submit(collection string, newForm func() binder) gin.HandlerFunc {
	return func(c *gin.Context) {
		form := newForm()
		if err := c.ShouldBindJSON(form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		doc := stamp(form.document(), uuid.NewString(), time.Now())
		if err := h.repo.Insert(c.Request.Context(), collection, doc); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, toResponse(doc))
	}
}

func (h *Handler) list(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := h.repo.List(c.Request.Context(), collection)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		out := make([]bson.M, 0, len(docs))
		for _, d := range docs {
			out = append(out, toResponse(d))
		}
		c.JSON(http.StatusOK, out)
	}
}

func toResponse(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = fmt.Sprint(id)
	}
	return out
}
