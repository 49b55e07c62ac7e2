package content

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/gosec/site-backend/internal/uploads"
	"github.com/gosec/site-backend/pkg/logger"
	"github.com/gosec/site-backend/pkg/metrics"
)

// Service is the generalized CRUD engine. One instance serves every
// resource in the Registry; behavior differences come from the
// Resource descriptors, not from per-resource code.
type Service struct {
	store Store
	files uploads.Store
}

func NewService(store Store, files uploads.Store) *Service {
	return &Service{store: store, files: files}
}

// List returns all documents of a resource ordered by "order". An
// empty collection is seeded with the resource's default dataset
// first. The empty-check plus insert is not exclusive: two concurrent
// first reads can both seed, which duplicates display rows but breaks
// nothing (ids stay unique).
func (s *Service) List(ctx context.Context, r *Resource) ([]bson.M, error) {
	docs, err := s.store.List(ctx, r.Collection)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 || len(r.Defaults) == 0 {
		return docs, nil
	}
	for _, def := range r.Defaults {
		doc := copyDoc(def)
		if _, ok := doc["_id"]; !ok {
			doc["_id"] = uuid.NewString()
		}
		if err := s.store.Insert(ctx, r.Collection, doc); err != nil {
			return nil, fmt.Errorf("seed %s: %w", r.Collection, err)
		}
	}
	metrics.CollectionsSeeded.WithLabelValues(r.Collection).Inc()
	logger.Infof("seeded %s with %d default documents", r.Collection, len(r.Defaults))
	return s.store.List(ctx, r.Collection)
}

func (s *Service) Get(ctx context.Context, r *Resource, id string) (bson.M, error) {
	return s.store.Get(ctx, r.Collection, id)
}

// Create assigns a fresh id before first persistence and returns the
// stored document.
func (s *Service) Create(ctx context.Context, r *Resource, fields bson.M) (bson.M, error) {
	doc := copyDoc(fields)
	doc["_id"] = uuid.NewString()
	if err := s.store.Insert(ctx, r.Collection, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update merges the provided fields into an existing document. An
// empty merge set is rejected with ErrNoFields rather than silently
// accepted.
func (s *Service) Update(ctx context.Context, r *Resource, id string, set bson.M) (bson.M, error) {
	if len(set) == 0 {
		return nil, ErrNoFields
	}
	if err := s.store.Update(ctx, r.Collection, id, set); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, r.Collection, id)
}

// Delete removes a document and, when the resource owns uploads and
// the document's image_url points under the managed prefix, unlinks
// that file before acknowledging. A missing file is not an error.
func (s *Service) Delete(ctx context.Context, r *Resource, id string) error {
	doc, err := s.store.Get(ctx, r.Collection, id)
	if err != nil {
		return err
	}
	if r.OwnsUploads {
		if url, _ := doc["image_url"].(string); uploads.Owns(url) {
			if err := s.files.Remove(ctx, url); err != nil {
				logger.Warnf("failed to remove upload %s for %s/%s: %v", url, r.Name, id, err)
			} else {
				metrics.UploadsDeleted.WithLabelValues(r.Name).Inc()
			}
		}
	}
	return s.store.Delete(ctx, r.Collection, id)
}

// GetSingleton returns the single document of a singleton kind,
// inserting the default on first access.
func (s *Service) GetSingleton(ctx context.Context, sg *Singleton) (bson.M, error) {
	doc, err := s.store.FindOne(ctx, sg.Collection)
	if err == nil {
		return doc, nil
	}
	if err != ErrNotFound {
		return nil, err
	}
	doc = copyDoc(sg.Default)
	doc["_id"] = uuid.NewString()
	if err := s.store.Insert(ctx, sg.Collection, doc); err != nil {
		return nil, fmt.Errorf("seed %s: %w", sg.Collection, err)
	}
	metrics.CollectionsSeeded.WithLabelValues(sg.Collection).Inc()
	return doc, nil
}

// UpdateSingleton merges the provided fields into the existing
// document, or inserts a new document from the partial payload when
// the collection is still empty.
func (s *Service) UpdateSingleton(ctx context.Context, sg *Singleton, set bson.M) (bson.M, error) {
	if len(set) == 0 {
		return nil, ErrNoFields
	}
	doc, err := s.store.FindOne(ctx, sg.Collection)
	if err == ErrNotFound {
		doc = copyDoc(set)
		doc["_id"] = uuid.NewString()
		if err := s.store.Insert(ctx, sg.Collection, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, err
	}
	id, _ := doc["_id"].(string)
	if err := s.store.Update(ctx, sg.Collection, id, set); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, sg.Collection, id)
}

// ReplaceImage stores the new file first, then unlinks the previous
// one if it was managed. Store-then-delete ordering means a storage
// failure leaves the old file (and the document) untouched. External
// image URLs are never deleted.
func (s *Service) ReplaceImage(ctx context.Context, r *Resource, oldURL, originalFilename string, src io.Reader, size int64) (string, error) {
	_, url, err := s.files.Save(ctx, r.Name, originalFilename, src, size)
	if err != nil {
		return "", err
	}
	metrics.UploadsStored.WithLabelValues(r.Name).Inc()
	if uploads.Owns(oldURL) {
		if err := s.files.Remove(ctx, oldURL); err != nil {
			logger.Warnf("failed to remove superseded upload %s: %v", oldURL, err)
		} else {
			metrics.UploadsDeleted.WithLabelValues(r.Name).Inc()
		}
	}
	return url, nil
}

// toResponse exposes the public id: the internal identifier field is
// renamed, never duplicated.
func toResponse(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}
	out := copyDoc(doc)
	if id, ok := out["_id"]; ok {
		delete(out, "_id")
		out["id"] = fmt.Sprint(id)
	}
	return out
}
